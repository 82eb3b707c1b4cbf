package valence

import (
	"testing"

	"github.com/cx-luo/go-smiles/molgraph/element"
)

func TestMaxValenceNeutralMainGroup(t *testing.T) {
	cases := []struct {
		e    element.Element
		want int
	}{
		{element.H, 1},
		{element.C, 4},
		{element.N, 3},
		{element.O, 2},
		{element.F, 1},
		{element.Cl, 1},
	}
	for _, tc := range cases {
		got, expanded := MaxValence(Atom{Element: tc.e})
		if got != tc.want {
			t.Fatalf("MaxValence(%v) = %d, want %d", tc.e, got, tc.want)
		}
		if expanded {
			t.Fatalf("MaxValence(%v): expandedOctet = true, want false", tc.e)
		}
	}
}

func TestMaxValenceCharged(t *testing.T) {
	// Ammonium nitrogen: N+ has one fewer electron, vacancy grows to 4.
	if got, _ := MaxValence(Atom{Element: element.N, Charge: 1}); got != 4 {
		t.Fatalf("MaxValence(N+) = %d, want 4", got)
	}
	// Hydroxide oxygen: O- gains an electron, valence drops to 1.
	if got, _ := MaxValence(Atom{Element: element.O, Charge: -1}); got != 1 {
		t.Fatalf("MaxValence(O-) = %d, want 1", got)
	}
}

func TestMaxValenceRadical(t *testing.T) {
	// One radical electron occupies an orbital, leaving one fewer vacancy
	// for bonds than the closed-shell case.
	got, _ := MaxValence(Atom{Element: element.C, RadicalElectrons: 1})
	if got != 3 {
		t.Fatalf("MaxValence(C with 1 radical electron) = %d, want 3", got)
	}
}

func TestMaxValenceOutsideMainGroupModel(t *testing.T) {
	fe, ok := element.FromSymbol("Fe")
	if !ok {
		t.Fatal("FromSymbol(Fe): not found")
	}
	got, expanded := MaxValence(Atom{Element: fe})
	if !expanded {
		t.Fatal("MaxValence(Fe): expandedOctet = false, want true (outside simple main-group model)")
	}
	if got != fallbackMaxValence {
		t.Fatalf("MaxValence(Fe) = %d, want fallback %d", got, fallbackMaxValence)
	}
}

// TestMaxValenceHypervalentLimitation documents spec.md §9's acknowledged
// incompleteness directly: sulfur in SF6 actually bonds six times, but the
// plain octet rule this oracle implements caps it at 2. See DESIGN.md and
// smiles/writer_test.go's TestWriteSF6ShapeParseOnly, which exercises Parse+Write only for exactly
// this reason.
func TestMaxValenceHypervalentLimitation(t *testing.T) {
	got, _ := MaxValence(Atom{Element: element.S})
	if got != 2 {
		t.Fatalf("MaxValence(S) = %d, want 2 (the documented, deliberately incomplete octet-only figure)", got)
	}
}
