// Package kekulize resolves rings of Delocalized bonds into alternating
// Single/Double bonds (and back), the break/segment two-pass idea
// generalized from the teacher's src/molecule/dearomatizer.go (process
// rings, mark used bonds, alternate starting from a stable position) from
// a single fixed-length-6 ring to spec.md §4.4's arbitrary-ring, fused-
// system algorithm.
package kekulize

import "github.com/cx-luo/go-smiles/molgraph"

// Error reports that kekulization could not resolve every delocalized
// bond. It carries the partially-kekulized clone so a caller that also
// has access to a SMILES writer (this package deliberately does not, to
// avoid an import cycle back through the smiles package) can render it
// for diagnosis, per spec.md §7.
type Error struct {
	Partial *molgraph.Molecule
}

func (e *Error) Error() string {
	return "kekulize: unresolved delocalized bonds remain after processing all rings"
}

// Kekulize returns a clone of mol in which every Delocalized bond has
// become Single or Double and no atom is delocalized, or an *Error if some
// atom or bond could not be resolved. mol itself is never mutated
// (spec.md §4.4: "Returns a clone").
//
// Rings are processed smallest-first: mol.Rings is stored in descending
// length order (spec.md §4.2), so this walks it in reverse. There is no
// backtracking — spec.md §4.4's Open Question requires reproducing this
// exact deterministic behavior, including its known failures (a molecule
// like "c1cc1" is legitimately left unresolved), rather than inventing a
// smarter search.
func Kekulize(mol *molgraph.Molecule) (*molgraph.Molecule, error) {
	clone := mol.Clone()

	for i := len(clone.Rings) - 1; i >= 0; i-- {
		kekulizeRing(clone, clone.Rings[i])
	}

	if hasUnresolvedDelocalization(clone) {
		return nil, &Error{Partial: clone}
	}
	return clone, nil
}

func kekulizeRing(mol *molgraph.Molecule, ring molgraph.Ring) {
	l := len(ring)

	needsKek := make([]bool, l)
	for pos, atomIdx := range ring {
		needsKek[pos] = atomNeedsKekulization(mol, atomIdx)
	}

	var breaks []int
	for pos := range ring {
		if !needsKek[pos] {
			breaks = append(breaks, pos)
		}
	}

	for _, pos := range breaks {
		atomIdx := ring[pos]
		mol.Atoms[atomIdx].Delocalized = false
		for _, be := range mol.NeighborBonds(atomIdx) {
			if mol.Bonds[be].Type == molgraph.Delocalized {
				mol.Bonds[be].Type = molgraph.Single
			}
		}
	}

	for _, seg := range segments(l, breaks) {
		kekulizeSegment(mol, ring, seg)
	}
}

// atomNeedsKekulization is spec.md §4.4 step 1's per-atom predicate.
func atomNeedsKekulization(mol *molgraph.Molecule, atomIdx int) bool {
	a := mol.Atoms[atomIdx]
	if !a.Delocalized || mol.DoubleBondCount(atomIdx) != 0 {
		return false
	}
	implicitH := 0
	if a.HasImplicitH() {
		implicitH = a.ImplicitH
	}
	// atomIdx always names a real ring atom, so the bounds-check error
	// MaxValence exposes for external callers can't fire here.
	mv, _ := mol.MaxValence(atomIdx)
	return mol.ExplicitValence(atomIdx)+implicitH < mv
}

// segments turns a ring of length l with the given sorted break positions
// into the list of kekulizable position-runs, per spec.md §4.4 step 2.
func segments(l int, breaks []int) [][]int {
	switch len(breaks) {
	case 0:
		if l%2 != 0 {
			return nil // odd whole ring: deferred, no segment produced
		}
		full := make([]int, l)
		for i := range full {
			full[i] = i
		}
		return [][]int{full}

	case 1:
		b := breaks[0]
		seg := make([]int, 0, l-1)
		for k := 1; k < l; k++ {
			seg = append(seg, (b+k)%l)
		}
		return [][]int{seg}

	default:
		var out [][]int
		for bi := range breaks {
			start := breaks[bi]
			var end int
			if bi+1 < len(breaks) {
				end = breaks[bi+1]
			} else {
				end = breaks[0]
			}
			var seg []int
			for pos := (start + 1) % l; pos != end; pos = (pos + 1) % l {
				seg = append(seg, pos)
			}
			if len(seg) > 0 {
				out = append(out, seg)
			}
		}
		return out
	}
}

// kekulizeSegment is spec.md §4.4 step 3: skip odd segments (deferred),
// alternate Double/Single starting with Double on even ones, close the
// segment's own first-last bond to Single when longer than a pair.
func kekulizeSegment(mol *molgraph.Molecule, ring molgraph.Ring, seg []int) {
	if len(seg)%2 != 0 {
		return
	}

	bondType := molgraph.Double
	for k := 0; k < len(seg)-1; k++ {
		a, b := ring[seg[k]], ring[seg[k+1]]
		if be, ok, _ := mol.BondBetween(a, b); ok {
			mol.Bonds[be].Type = bondType
		}
		if bondType == molgraph.Double {
			bondType = molgraph.Single
		} else {
			bondType = molgraph.Double
		}
	}

	if len(seg) > 2 {
		first, last := ring[seg[0]], ring[seg[len(seg)-1]]
		if be, ok, _ := mol.BondBetween(first, last); ok {
			mol.Bonds[be].Type = molgraph.Single
		}
	}

	for _, pos := range seg {
		mol.Atoms[ring[pos]].Delocalized = false
	}
}

func hasUnresolvedDelocalization(mol *molgraph.Molecule) bool {
	for _, a := range mol.Atoms {
		if a.Delocalized {
			return true
		}
	}
	for _, b := range mol.Bonds {
		if b.Type == molgraph.Delocalized {
			return true
		}
	}
	return false
}
