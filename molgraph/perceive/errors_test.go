package perceive

import "testing"

func TestPerceptionErrorMessages(t *testing.T) {
	cases := []struct {
		err  *PerceptionError
		want string
	}{
		{&PerceptionError{Reason: MissingRings}, "perceive: MissingRings"},
		{&PerceptionError{Reason: BondOrderExceedsValence, AtomIndex: 2}, "perceive: bond order exceeds maximum valence at atom 2"},
		{&PerceptionError{Reason: KekulizationFailed}, "perceive: kekulization failed, unresolved delocalized bonds remain"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestPerceptionReasonString(t *testing.T) {
	if MissingRings.String() != "MissingRings" {
		t.Fatalf("MissingRings.String() = %q", MissingRings.String())
	}
	if BondOrderExceedsValence.String() != "BondOrderExceedsValence" {
		t.Fatalf("BondOrderExceedsValence.String() = %q", BondOrderExceedsValence.String())
	}
	if KekulizationFailed.String() != "KekulizationFailed" {
		t.Fatalf("KekulizationFailed.String() = %q", KekulizationFailed.String())
	}
}
