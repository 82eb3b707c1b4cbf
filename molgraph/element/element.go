// Package element is the periodic-table lookup table the rest of the
// toolkit treats as a read-only, process-wide, concurrency-safe oracle:
// symbol <-> element, and the handful of per-element numbers (valence
// electron count, natural atomic mass) the perception layer needs.
//
// The table itself is data, not algorithm, so this package stays a thin
// wrapper around a slice indexed by atomic number — the same shape the
// teacher library uses for its own element table.
package element

import "fmt"

// Element is an atomic-number tag. Wildcard represents SMILES '*'.
type Element int

// Wildcard is the SMILES '*' atom: no fixed identity, no valence rule.
const Wildcard Element = 0

const (
	H  Element = 1
	He Element = 2
	Li Element = 3
	Be Element = 4
	B  Element = 5
	C  Element = 6
	N  Element = 7
	O  Element = 8
	F  Element = 9
	Ne Element = 10
	Na Element = 11
	Mg Element = 12
	Al Element = 13
	Si Element = 14
	P  Element = 15
	S  Element = 16
	Cl Element = 17
	Ar Element = 18
	K  Element = 19
	Ca Element = 20
	Br Element = 35
	I  Element = 53
)

// info holds the static facts this toolkit needs about one element.
// group is the main-group column (1-7) used by the valence oracle;
// 0 marks an element with no simple main-group valence rule (transition
// metals and noble gases).
type info struct {
	symbol string
	group  int
	mass   float64
}

// table is indexed by atomic number; index 0 is the wildcard placeholder.
// Only elements reachable through the SMILES organic subset and bracket
// syntax carry a non-zero group; the other elements up to Xe are present
// for Symbol/FromSymbol round-tripping of bracket atoms like [Fe+2] but
// report group 0 (maxValence falls back to a permissive rule). Elements
// after Xe are not in the table, so FromSymbol does not recognize them.
var table = []info{
	{"*", 0, 0},
	{"H", 1, 1.008},
	{"He", 0, 4.003},
	{"Li", 1, 6.941},
	{"Be", 2, 9.012},
	{"B", 3, 10.81},
	{"C", 4, 12.011},
	{"N", 5, 14.007},
	{"O", 6, 15.999},
	{"F", 7, 18.998},
	{"Ne", 0, 20.180},
	{"Na", 1, 22.990},
	{"Mg", 2, 24.305},
	{"Al", 3, 26.982},
	{"Si", 4, 28.085},
	{"P", 5, 30.974},
	{"S", 6, 32.06},
	{"Cl", 7, 35.45},
	{"Ar", 0, 39.948},
	{"K", 1, 39.098},
	{"Ca", 2, 40.078},
	{"Sc", 0, 44.956},
	{"Ti", 0, 47.867},
	{"V", 0, 50.942},
	{"Cr", 0, 51.996},
	{"Mn", 0, 54.938},
	{"Fe", 0, 55.845},
	{"Co", 0, 58.933},
	{"Ni", 0, 58.693},
	{"Cu", 0, 63.546},
	{"Zn", 0, 65.38},
	{"Ga", 3, 69.723},
	{"Ge", 4, 72.63},
	{"As", 5, 74.922},
	{"Se", 6, 78.971},
	{"Br", 7, 79.904},
	{"Kr", 0, 83.798},
	{"Rb", 1, 85.468},
	{"Sr", 2, 87.62},
	{"Y", 0, 88.906},
	{"Zr", 0, 91.224},
	{"Nb", 0, 92.906},
	{"Mo", 0, 95.95},
	{"Tc", 0, 98},
	{"Ru", 0, 101.07},
	{"Rh", 0, 102.906},
	{"Pd", 0, 106.42},
	{"Ag", 0, 107.868},
	{"Cd", 0, 112.414},
	{"In", 3, 114.818},
	{"Sn", 4, 118.71},
	{"Sb", 5, 121.76},
	{"Te", 6, 127.6},
	{"I", 7, 126.904},
	{"Xe", 0, 131.293},
}

// symbolToElement is built once at init from table, so FromSymbol stays a
// map lookup rather than a linear scan.
var symbolToElement map[string]Element

func init() {
	symbolToElement = make(map[string]Element, len(table))
	for i, e := range table {
		symbolToElement[e.symbol] = Element(i)
	}
}

// Symbol returns the element's canonical bracket-atom symbol.
func Symbol(e Element) string {
	if int(e) >= 0 && int(e) < len(table) {
		return table[e].symbol
	}
	return fmt.Sprintf("E%d", e)
}

// FromSymbol resolves a bracket-atom or organic-subset symbol to an
// Element. The match is exact and case-sensitive: callers convert a
// lowercase aromatic symbol to its capitalized form themselves before
// calling, since lowercase "n" and uppercase "N" are different SMILES
// tokens with the same underlying element.
func FromSymbol(symbol string) (Element, bool) {
	e, ok := symbolToElement[symbol]
	return e, ok
}

// ValenceElectrons returns the main-group column number (1-7), or 0 for
// elements outside the simple main-group valence model the oracle in
// package valence relies on.
func ValenceElectrons(e Element) int {
	if int(e) >= 0 && int(e) < len(table) {
		return table[e].group
	}
	return 0
}

// AtomicMass returns the isotope mass if isotope is set (positive), or the
// natural-abundance average mass otherwise.
func AtomicMass(e Element, isotope int) float64 {
	if isotope > 0 {
		return float64(isotope)
	}
	if int(e) >= 0 && int(e) < len(table) {
		return table[e].mass
	}
	return 0
}

// organicSubset is the set of elements SMILES may write without brackets
// (spec.md glossary: "Organic subset").
var organicSubset = map[Element]bool{
	B: true, C: true, N: true, O: true, P: true, S: true,
	F: true, Cl: true, Br: true, I: true,
}

// IsOrganicSubset reports whether e can be written bare (no brackets) in
// the SMILES organic subset.
func IsOrganicSubset(e Element) bool {
	return organicSubset[e]
}

// aromaticSubset is the set of elements that may carry the lowercase
// "delocalized" SMILES spelling (spec.md §4.1 and §6): b c n o p s.
var aromaticSubset = map[Element]bool{
	B: true, C: true, N: true, O: true, P: true, S: true,
}

// CanBeAromaticLowercase reports whether e has a lowercase organic-subset
// spelling for delocalized ring atoms.
func CanBeAromaticLowercase(e Element) bool {
	return aromaticSubset[e]
}
