package molgraph

// BondType tags the order/character of a bond. Default is a parser
// placeholder ("unspecified") that must not survive perception; Up/Down
// encode the SMILES '/' and '\' double-bond geometry markers and carry a
// bond order of one, same as Single.
type BondType int

const (
	Default BondType = iota
	Single
	Double
	Triple
	Quadruple
	Delocalized
	Up
	Down
)

func (t BondType) String() string {
	switch t {
	case Default:
		return "Default"
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Triple:
		return "Triple"
	case Quadruple:
		return "Quadruple"
	case Delocalized:
		return "Delocalized"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// order is the bond-order weight used by explicitValence: Delocalized
// counts as 1 by spec (§ Glossary, "Explicit valence"); Up/Down are
// single-bond geometry markers and count as 1; Default is only ever
// queried transiently mid-parse, before the default-bond resolver runs,
// so it is given the conservative weight of 1 as well.
func (t BondType) order() int {
	switch t {
	case Double:
		return 2
	case Triple:
		return 3
	case Quadruple:
		return 4
	default:
		return 1
	}
}

// Bond is an unordered pair of atom indices with a bond type. A and B are
// never equal; callers never see A == B because AddBond rejects self-loops.
type Bond struct {
	A, B int
	Type BondType
}

// other returns the endpoint of b that isn't atom.
func (b Bond) other(atom int) int {
	if b.A == atom {
		return b.B
	}
	return b.A
}

// connects reports whether b is the (unordered) bond between i and j.
func (b Bond) connects(i, j int) bool {
	return (b.A == i && b.B == j) || (b.A == j && b.B == i)
}
