package molgraph

import "testing"

func TestBondTypeOrder(t *testing.T) {
	cases := map[BondType]int{
		Single:      1,
		Double:      2,
		Triple:      3,
		Quadruple:   4,
		Delocalized: 1,
		Up:          1,
		Down:        1,
		Default:     1,
	}
	for bt, want := range cases {
		if got := bt.order(); got != want {
			t.Fatalf("%v.order() = %d, want %d", bt, got, want)
		}
	}
}

func TestBondTypeString(t *testing.T) {
	if Double.String() != "Double" {
		t.Fatalf("Double.String() = %q", Double.String())
	}
	if BondType(99).String() != "Unknown" {
		t.Fatalf("unrecognized BondType.String() = %q, want Unknown", BondType(99).String())
	}
}

func TestBondOtherAndConnects(t *testing.T) {
	b := Bond{A: 2, B: 5, Type: Single}
	if b.other(2) != 5 {
		t.Fatalf("other(2) = %d, want 5", b.other(2))
	}
	if b.other(5) != 2 {
		t.Fatalf("other(5) = %d, want 2", b.other(5))
	}
	if !b.connects(2, 5) || !b.connects(5, 2) {
		t.Fatal("connects should be symmetric")
	}
	if b.connects(2, 6) {
		t.Fatal("connects(2, 6) should be false")
	}
}
