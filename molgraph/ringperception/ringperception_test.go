package ringperception

import (
	"testing"

	"github.com/cx-luo/go-smiles/molgraph"
	"github.com/cx-luo/go-smiles/molgraph/element"
)

func TestPerceiveEmptyMolecule(t *testing.T) {
	m := molgraph.New()
	Perceive(m)
	if !m.RingsPerceived {
		t.Fatal("RingsPerceived should be true even for an empty molecule")
	}
	if len(m.Rings) != 0 {
		t.Fatalf("len(Rings) = %d, want 0", len(m.Rings))
	}
}

func TestPerceiveNoRings(t *testing.T) {
	m := molgraph.New()
	a := m.AddAtom(element.C)
	b := m.AddAtom(element.C)
	c := m.AddAtom(element.C)
	m.AddBond(a, b, molgraph.Single)
	m.AddBond(b, c, molgraph.Single)

	Perceive(m)
	if !m.RingsPerceived {
		t.Fatal("RingsPerceived should be true")
	}
	if len(m.Rings) != 0 {
		t.Fatalf("a linear chain should have no rings, got %d", len(m.Rings))
	}
}

func TestPerceiveSingleTriangle(t *testing.T) {
	m := molgraph.New()
	a := m.AddAtom(element.C)
	b := m.AddAtom(element.C)
	c := m.AddAtom(element.C)
	m.AddBond(a, b, molgraph.Single)
	m.AddBond(b, c, molgraph.Single)
	m.AddBond(c, a, molgraph.Single)

	Perceive(m)
	if len(m.Rings) != 1 {
		t.Fatalf("len(Rings) = %d, want 1", len(m.Rings))
	}
	if len(m.Rings[0]) != 3 {
		t.Fatalf("ring length = %d, want 3", len(m.Rings[0]))
	}
}

func TestPerceiveSixRing(t *testing.T) {
	m := molgraph.New()
	atoms := make([]int, 6)
	for i := range atoms {
		atoms[i] = m.AddAtom(element.C)
	}
	for i := 0; i < 6; i++ {
		m.AddBond(atoms[i], atoms[(i+1)%6], molgraph.Single)
	}

	Perceive(m)
	if len(m.Rings) != 1 {
		t.Fatalf("len(Rings) = %d, want 1 (one six-membered ring)", len(m.Rings))
	}
	if len(m.Rings[0]) != 6 {
		t.Fatalf("ring length = %d, want 6", len(m.Rings[0]))
	}
}

func TestPerceiveFusedRingsOverlappingCoverage(t *testing.T) {
	// Two triangles sharing edge 1-2 (bonds 0-1,1-2,2-0,2-3,3-1): this is
	// K4 minus the 0-3 edge, which has exactly three simple cycles — the
	// two triangles (0,1,2) and (1,2,3), plus the 4-cycle (0,1,3,2)
	// running around the outside. The ring perceiver must surface all
	// three (spec.md §4.2's "overlapping ring coverage is desired"), not
	// a minimal two-ring cycle basis.
	m := molgraph.New()
	for i := 0; i < 4; i++ {
		m.AddAtom(element.C)
	}
	m.AddBond(0, 1, molgraph.Single)
	m.AddBond(1, 2, molgraph.Single)
	m.AddBond(2, 0, molgraph.Single)
	m.AddBond(2, 3, molgraph.Single)
	m.AddBond(3, 1, molgraph.Single)

	Perceive(m)
	if len(m.Rings) != 3 {
		t.Fatalf("len(Rings) = %d, want 3 (two 3-rings plus the outer 4-ring)", len(m.Rings))
	}
	// Sorted descending by length: the 4-ring first, then both 3-rings.
	if len(m.Rings[0]) != 4 {
		t.Fatalf("Rings[0] length = %d, want 4 (descending-length order)", len(m.Rings[0]))
	}
	if len(m.Rings[1]) != 3 || len(m.Rings[2]) != 3 {
		t.Fatalf("Rings[1:] lengths = %d, %d, want 3, 3", len(m.Rings[1]), len(m.Rings[2]))
	}
}
