package molgraph

import (
	"github.com/cx-luo/go-smiles/molgraph/element"
	"github.com/cx-luo/go-smiles/molgraph/valence"
)

// Molecule owns a dense, index-stable atom sequence and a bond set, same
// arena+index shape as the teacher's src/molecule.Molecule (Atoms, Bonds,
// Vertices slices; no atom ever owns a bond — traversal scans indices).
// Atoms and bonds are appended, never removed, for the lifetime of the
// value (spec.md §3 Lifecycle).
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
	Rings []Ring

	// RingsPerceived distinguishes "the ring perceiver ran and found no
	// rings" from "the ring perceiver has not run yet" — Rings alone can't,
	// since a ringless molecule legitimately leaves it nil either way.
	// Set exactly once by molgraph/ringperception.Perceive.
	RingsPerceived bool

	// vertices[i] holds the indices into Bonds incident to atom i. It is
	// maintained incrementally by AddBond; there is nothing to invalidate
	// since atoms/bonds are append-only.
	vertices [][]int
}

// New returns an empty molecule ready for parsing into.
func New() *Molecule {
	return &Molecule{}
}

// AddAtom appends a new atom with element e and returns its index.
func (m *Molecule) AddAtom(e element.Element) int {
	m.Atoms = append(m.Atoms, newAtom(e))
	m.vertices = append(m.vertices, nil)
	return len(m.Atoms) - 1
}

// AddBond appends a bond between i and j and returns its index. It panics
// on an out-of-range index, a self-loop (i == j), or a duplicate of an
// existing bond — all three are parser/caller bugs, never a condition a
// well-formed SMILES string can trigger, mirroring the teacher's AddBond
// panic-on-invalid-index contract (src/molecule/molecule.go).
func (m *Molecule) AddBond(i, j int, t BondType) int {
	if i < 0 || i >= len(m.Atoms) || j < 0 || j >= len(m.Atoms) {
		panic("molgraph: AddBond index out of range")
	}
	if i == j {
		panic("molgraph: AddBond self-loop")
	}
	// i and j were just bounds-checked above, so the only possible error
	// checkAtom could report is unreachable here.
	if _, ok, _ := m.BondBetween(i, j); ok {
		panic("molgraph: AddBond duplicate bond")
	}
	idx := len(m.Bonds)
	m.Bonds = append(m.Bonds, Bond{A: i, B: j, Type: t})
	m.vertices[i] = append(m.vertices[i], idx)
	m.vertices[j] = append(m.vertices[j], idx)
	return idx
}

// checkAtom reports a recoverable MisuseError when i does not name an atom
// in m — spec.md §7's "MisuseError{NoSuchAtom, NoSuchBond}, recoverable at
// the API boundary" — instead of letting a slice index panic.
func (m *Molecule) checkAtom(i int) error {
	if i < 0 || i >= len(m.Atoms) {
		return &MisuseError{Reason: NoSuchAtom, Index: i}
	}
	return nil
}

// NeighborAtoms returns the atom indices adjacent to i, in bond-append
// order.
func (m *Molecule) NeighborAtoms(i int) ([]int, error) {
	if err := m.checkAtom(i); err != nil {
		return nil, err
	}
	edges := m.vertices[i]
	out := make([]int, len(edges))
	for k, be := range edges {
		out[k] = m.Bonds[be].other(i)
	}
	return out, nil
}

// NeighborBonds returns the bond indices incident to atom i.
func (m *Molecule) NeighborBonds(i int) []int {
	return m.vertices[i]
}

// BondBetween returns the bond index connecting i and j, if one exists.
func (m *Molecule) BondBetween(i, j int) (int, bool, error) {
	if err := m.checkAtom(i); err != nil {
		return 0, false, err
	}
	if err := m.checkAtom(j); err != nil {
		return 0, false, err
	}
	for _, be := range m.vertices[i] {
		if m.Bonds[be].connects(i, j) {
			return be, true, nil
		}
	}
	return 0, false, nil
}

// ExplicitValence is the sum of bond orders incident to atom i, treating
// Delocalized as order 1 (spec.md Glossary, "Explicit valence").
func (m *Molecule) ExplicitValence(i int) int {
	total := 0
	for _, be := range m.vertices[i] {
		total += m.Bonds[be].Type.order()
	}
	return total
}

// DoubleBondCount counts bonds of type Double incident to atom i, the
// predicate the kekulizer's "needs kekulization" test relies on.
func (m *Molecule) DoubleBondCount(i int) int {
	n := 0
	for _, be := range m.vertices[i] {
		if m.Bonds[be].Type == Double {
			n++
		}
	}
	return n
}

// MaxValence is the maximum-valence oracle (molgraph/valence) applied to
// atom i's current element/charge/radical-electron state. Radical
// electrons are treated as zero when not yet perceived, since kekulization
// (which calls this) always runs before the implicit-H perceiver assigns
// them.
func (m *Molecule) MaxValence(i int) (int, error) {
	if err := m.checkAtom(i); err != nil {
		return 0, err
	}
	a := m.Atoms[i]
	rad := 0
	if a.HasRadicalElectrons() {
		rad = a.RadicalElectrons
	}
	mv, _ := valence.MaxValence(valence.Atom{Element: a.Element, Charge: a.Charge, RadicalElectrons: rad})
	return mv, nil
}

// SetCharge sets atom i's formal charge, clamped to the [-8, +8] range
// spec.md §3 names as the data model's invariant.
func (m *Molecule) SetCharge(i, charge int) error {
	if err := m.checkAtom(i); err != nil {
		return err
	}
	if charge > 8 {
		charge = 8
	}
	if charge < -8 {
		charge = -8
	}
	m.Atoms[i].Charge = charge
	return nil
}

// Clone returns a deep copy, used by Kekulize (which must not mutate its
// input — spec.md §4.4 "Returns a clone").
func (m *Molecule) Clone() *Molecule {
	out := &Molecule{
		Atoms:          append([]Atom(nil), m.Atoms...),
		Bonds:          append([]Bond(nil), m.Bonds...),
		RingsPerceived: m.RingsPerceived,
		vertices:       make([][]int, len(m.vertices)),
	}
	for i, edges := range m.vertices {
		out.vertices[i] = append([]int(nil), edges...)
	}
	if m.Rings != nil {
		out.Rings = make([]Ring, len(m.Rings))
		for i, r := range m.Rings {
			out.Rings[i] = append(Ring(nil), r...)
		}
	}
	return out
}
