// Package molgraph is the passive molecular graph model: atoms indexed
// [0, n), bonds as unordered index pairs, optional rings. It owns no
// parsing or perception logic — those live in sibling packages (smiles,
// molgraph/ringperception, molgraph/kekulize, molgraph/perceive) that
// build and mutate a *Molecule in place, the same arena+index shape the
// teacher's src/molecule package uses (Atoms/Bonds/Vertices slices,
// stable indices, no back-pointers).
package molgraph

import "github.com/cx-luo/go-smiles/molgraph/element"

// Chirality is the point-chirality tag of a bracket atom.
type Chirality int

const (
	Undefined Chirality = iota
	Clockwise
	CounterClockwise
)

// unset is the sentinel for "not yet perceived" on the optional integer
// atom fields, mirroring the teacher's Atom.ExplicitImplH convention
// (src/molecule/molecule.go: "-1 if not set").
const unset = -1

// Atom is one vertex of the molecular graph.
type Atom struct {
	Element element.Element
	// Isotope is the isotope mass number; 0 means natural abundance.
	Isotope int
	// Charge is the formal charge, constrained to [-8, +8] by SetCharge.
	Charge int
	// Delocalized is true iff the atom currently participates in a
	// delocalized ring system (some incident bond has type Delocalized).
	Delocalized bool
	// ImplicitH is the implicit hydrogen count, or unset before perception.
	ImplicitH int
	// RadicalElectrons is the radical electron count, or unset before
	// perception.
	RadicalElectrons int
	// Chirality is the point-chirality tag; Undefined unless a bracket
	// atom specified @ or @@.
	Chirality Chirality
}

// newAtom returns an atom with both perception-filled fields unset.
func newAtom(e element.Element) Atom {
	return Atom{
		Element:          e,
		ImplicitH:        unset,
		RadicalElectrons: unset,
	}
}

// HasImplicitH reports whether ImplicitH has been perceived.
func (a Atom) HasImplicitH() bool { return a.ImplicitH != unset }

// HasRadicalElectrons reports whether RadicalElectrons has been perceived.
func (a Atom) HasRadicalElectrons() bool { return a.RadicalElectrons != unset }
