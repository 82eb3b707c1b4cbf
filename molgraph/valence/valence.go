// Package valence is the maximum-valence oracle spec.md treats as an
// external collaborator: "the standard octet rule, expanded-octet
// exceptions flagged." It is deliberately small. Expanded-octet chemistry
// (SF6, ClO4-, sulfoxides) is the still-unresolved part of the real
// toolkit this was distilled from; this package implements only the
// octet-rule arithmetic and reports when an atom falls outside it, so a
// more accurate table can be substituted later without touching any
// caller's contract.
package valence

import "github.com/cx-luo/go-smiles/molgraph/element"

// Atom is the minimal view the oracle needs: just enough of a molgraph
// atom to run the electron-counting rule, with no dependency back on the
// molgraph package (the oracle must stay a leaf; molgraph depends on it,
// not the other way around).
type Atom struct {
	Element          element.Element
	Charge           int
	RadicalElectrons int
}

// fallbackMaxValence is used for elements outside the simple main-group
// model (transition metals, noble gases, the wildcard atom). The real
// oracle substituted for this one is expected to carry a proper table;
// until then, main-group chemistry is exact and everything else gets a
// permissive upper bound generous enough not to manufacture spurious
// BondOrderExceedsValence failures on ordinary bracket atoms like [Fe+2].
const fallbackMaxValence = 6

// MaxValence returns the standard-octet maximum valence for a, and
// reports expandedOctet=true when a's element falls outside the simple
// main-group orbital model this oracle covers (the case spec.md calls
// "expanded-octet exceptions flagged").
func MaxValence(a Atom) (max int, expandedOctet bool) {
	group := element.ValenceElectrons(a.Element)
	if group == 0 {
		return fallbackMaxValence, true
	}

	orbitals := valenceOrbitals(group)
	radicalOrbitals := 0
	if a.RadicalElectrons > 0 {
		radicalOrbitals = 1
	}
	vacant := orbitals - radicalOrbitals
	electrons := group - a.Charge - a.RadicalElectrons

	if electrons <= vacant {
		return electrons, false
	}
	return 2*vacant - electrons, false
}

// valenceOrbitals is the orbital count per main-group column: 1 for
// H/alkali metals, 2 for alkaline-earth metals, 4 (one s + three p) for
// everything else. This is the plain octet rule; it does not model
// d-orbital expansion, so hypervalent main-group atoms (S in SF6, Cl in
// ClO4-) report a maxValence lower than their real bond count — the
// exact incompleteness spec.md §9 names as still-open.
func valenceOrbitals(group int) int {
	switch group {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 4
	}
}
