package smiles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cx-luo/go-smiles/molgraph"
	"github.com/cx-luo/go-smiles/molgraph/element"
)

// WriteOptions tunes Write, grounded on the teacher's
// SmilesSaverOptions{Canonical, IgnoreHydrogens, WriteAromaticBonds,
// ChemAxonMode, WriteIsotopes, WriteCharges} (molecule/smiles_saver.go).
// Canonical, ChemAxonMode and IgnoreHydrogens have no counterpart here —
// this writer has one fixed atom ordering and no separate
// explicit-hydrogen atoms to drop — and isotopes/charges are always
// written (spec.md's bracket grammar has no way to omit them
// selectively), so only WriteAromaticBonds carries over.
type WriteOptions struct {
	// WriteAromaticBonds, if true, renders a Delocalized bond's ':'
	// character explicitly instead of leaving it implicit between
	// lowercase ring atoms. The default (false), matching the teacher's
	// DefaultSmilesSaverOptions, produces the bare "c1ccccc1" form.
	WriteAromaticBonds bool
}

// Write serializes mol back to a SMILES string (spec.md §4.7) using the
// zero-value (default) WriteOptions. See WriteWithOptions.
func Write(mol *molgraph.Molecule) string {
	return WriteWithOptions(mol, WriteOptions{})
}

// WriteWithOptions is Write with explicit WriteOptions. It treats
// atom-index order as the depth-first spanning tree the parser originally
// produced: each atom's tree parent is its largest lower-indexed neighbor,
// every other lower-indexed neighbor is a ring closure. Rendering that
// tree by recursion — children wrapped in parens except the last, which
// continues the line — reproduces the same serial-branch layout spec.md's
// retroactive paren-insertion description calls for (`FS(F)(F)(F)(F)F`,
// not `FS((((F)F)F)F)F`), grounded on the teacher's own recursive
// dfsWrite (molecule/smiles_saver.go).
func WriteWithOptions(mol *molgraph.Molecule, opts WriteOptions) string {
	n := len(mol.Atoms)
	if n == 0 {
		return ""
	}

	stubs := make([]string, n)
	for i, a := range mol.Atoms {
		stubs[i] = atomStub(a)
	}

	parent := make([]int, n)
	children := make([][]int, n)
	ringCounter := 1

	for i := 0; i < n; i++ {
		backward := backwardNeighbors(mol, i)
		if len(backward) == 0 {
			parent[i] = -1
			continue
		}

		pred := backward[len(backward)-1]
		parent[i] = pred
		children[pred] = append(children[pred], i)

		if be, ok, _ := mol.BondBetween(i, pred); ok {
			t := mol.Bonds[be].Type
			if needsBondChar(t, opts) {
				stubs[i] = bondChar(t) + stubs[i]
			}
		}

		for _, j := range backward[:len(backward)-1] {
			be, ok, _ := mol.BondBetween(i, j)
			if !ok {
				continue
			}
			t := mol.Bonds[be].Type
			label := ringLabel(ringCounter)
			ringCounter++

			// Single/Delocalized/Default carry no explicit character here
			// either, same as the tree-bond case just above: spec.md's
			// literal text only names Default as suppressed for ring
			// closures, but the worked round-trip examples (e.g.
			// "c1ccccc1", "C1CC1") only parse back correctly if
			// Delocalized and Single stay silent too, so this follows the
			// test table over the narrower prose reading.
			if needsBondChar(t, opts) {
				stubs[i] += bondChar(t)
			}
			stubs[i] += label
			stubs[j] += label
		}
	}

	var out strings.Builder
	for i := 0; i < n; i++ {
		if parent[i] == -1 {
			writeSubtree(&out, i, stubs, children)
		}
	}
	return out.String()
}

func writeSubtree(out *strings.Builder, atomIdx int, stubs []string, children [][]int) {
	out.WriteString(stubs[atomIdx])
	kids := children[atomIdx]
	for k, child := range kids {
		if k < len(kids)-1 {
			out.WriteByte('(')
			writeSubtree(out, child, stubs, children)
			out.WriteByte(')')
		} else {
			writeSubtree(out, child, stubs, children)
		}
	}
}

// backwardNeighbors returns i's neighbor atom indices less than i, sorted
// ascending (spec.md §4.7 step 2).
func backwardNeighbors(mol *molgraph.Molecule, i int) []int {
	var out []int
	// i ranges over mol.Atoms' own indices (the caller's for loop), so it
	// always names a real atom.
	neighbors, _ := mol.NeighborAtoms(i)
	for _, v := range neighbors {
		if v < i {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// needsBondChar reports whether t should be rendered explicitly. Single,
// Delocalized, and Default are ordinarily silent (the parser reconstructs
// them from context); opts.WriteAromaticBonds overrides that for
// Delocalized only, so a caller wanting an unambiguous aromatic-bond
// rendering can ask for ":" characters the way the teacher's
// WriteAromaticBonds saver option does.
func needsBondChar(t molgraph.BondType, opts WriteOptions) bool {
	switch t {
	case molgraph.Single, molgraph.Default:
		return false
	case molgraph.Delocalized:
		return opts.WriteAromaticBonds
	default:
		return true
	}
}

func bondChar(t molgraph.BondType) string {
	switch t {
	case molgraph.Single:
		return "-"
	case molgraph.Double:
		return "="
	case molgraph.Triple:
		return "#"
	case molgraph.Quadruple:
		return "$"
	case molgraph.Delocalized:
		return ":"
	case molgraph.Up:
		return "/"
	case molgraph.Down:
		return "\\"
	default:
		return ""
	}
}

func ringLabel(n int) string {
	if n <= 9 {
		return strconv.Itoa(n)
	}
	return "%" + strconv.Itoa(n)
}

// atomStub produces the stub string for one atom: a bare organic-subset
// letter when it fits, otherwise a bracket form (spec.md §4.7 step 1).
func atomStub(a molgraph.Atom) string {
	if isBareWritable(a) {
		if a.Element == element.Wildcard {
			return "*"
		}
		sym := element.Symbol(a.Element)
		if a.Delocalized {
			sym = strings.ToLower(sym)
		}
		return sym
	}
	return bracketStub(a)
}

// isBareWritable decides whether an atom can be written without brackets.
// Radical electrons have no representation in this SMILES subset (spec.md
// §6 lists no radical token), so an atom carrying any forces a bracket —
// it is still lossy on write, but at least visibly distinct rather than
// silently dropped.
func isBareWritable(a molgraph.Atom) bool {
	if a.Charge != 0 || a.Isotope != 0 || a.Chirality != molgraph.Undefined {
		return false
	}
	if a.HasRadicalElectrons() && a.RadicalElectrons != 0 {
		return false
	}
	if a.Element == element.Wildcard {
		return true
	}
	if !element.IsOrganicSubset(a.Element) {
		return false
	}
	// spec.md §9: aromatic nitrogen with one implicit H is forcibly
	// bracketed, since bare "n" can't be distinguished from "[nH]".
	if a.Delocalized && a.Element == element.N && a.HasImplicitH() && a.ImplicitH == 1 {
		return false
	}
	return true
}

func bracketStub(a molgraph.Atom) string {
	var b strings.Builder
	b.WriteByte('[')
	if a.Isotope > 0 {
		b.WriteString(strconv.Itoa(a.Isotope))
	}

	sym := element.Symbol(a.Element)
	if a.Delocalized {
		sym = strings.ToLower(sym)
	}
	b.WriteString(sym)

	switch a.Chirality {
	case molgraph.CounterClockwise:
		b.WriteByte('@')
	case molgraph.Clockwise:
		b.WriteString("@@")
	}

	if a.HasImplicitH() && a.ImplicitH > 0 {
		b.WriteByte('H')
		if a.ImplicitH > 1 {
			b.WriteString(strconv.Itoa(a.ImplicitH))
		}
	}

	if a.Charge > 0 {
		b.WriteByte('+')
		if a.Charge > 1 {
			b.WriteString(strconv.Itoa(a.Charge))
		}
	} else if a.Charge < 0 {
		b.WriteByte('-')
		if a.Charge < -1 {
			b.WriteString(strconv.Itoa(-a.Charge))
		}
	}

	b.WriteByte(']')
	return b.String()
}
