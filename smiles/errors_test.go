package smiles

import "testing"

func TestParseReasonString(t *testing.T) {
	cases := map[ParseReason]string{
		InvalidChar:     "InvalidChar",
		InvalidElement:  "InvalidElement",
		ChiralityError:  "ChiralityError",
		MismatchedParen: "MismatchedParen",
		UnclosedBracket: "UnclosedBracket",
		UnclosedRing:    "UnclosedRing",
		DotSeparator:    "DotSeparator",
	}
	for reason, want := range cases {
		if got := reason.String(); got != want {
			t.Fatalf("ParseReason(%d).String() = %q, want %q", reason, got, want)
		}
	}
}

func TestParseReasonStringUnknown(t *testing.T) {
	if got := ParseReason(99).String(); got != "Unknown" {
		t.Fatalf("ParseReason(99).String() = %q, want %q", got, "Unknown")
	}
}

func TestParseErrorMessageCarriesOffendingSubstring(t *testing.T) {
	err := &ParseError{Reason: InvalidChar, Text: "!"}
	want := `smiles: InvalidChar: "!"`
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
