package molgraph

import (
	"testing"

	"github.com/cx-luo/go-smiles/molgraph/element"
)

func TestMolecularWeightCountsImplicitHydrogens(t *testing.T) {
	m := New()
	c := m.AddAtom(element.C)
	m.Atoms[c].ImplicitH = 4 // methane, as implicit-H perception would leave it

	got := m.MolecularWeight()
	want := element.AtomicMass(element.C, 0) + 4*element.AtomicMass(element.H, 0)
	if got != want {
		t.Fatalf("MolecularWeight() = %v, want %v", got, want)
	}
}

func TestMolecularWeightIsotope(t *testing.T) {
	m := New()
	o := m.AddAtom(element.O)
	m.Atoms[o].Isotope = 18
	m.Atoms[o].ImplicitH = 0

	if got := m.MolecularWeight(); got != 18 {
		t.Fatalf("MolecularWeight() = %v, want 18 (isotope mass, no implicit H)", got)
	}
}
