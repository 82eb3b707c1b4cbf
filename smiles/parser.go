package smiles

import (
	"strings"

	"github.com/cx-luo/go-smiles/molgraph"
	"github.com/cx-luo/go-smiles/molgraph/element"
)

// ringOpen is one unmatched entry in the parser's ring-closure promise
// map (spec.md §4.1's openRings: digit -> (atomIndex, bondType)).
type ringOpen struct {
	atom     int
	bondType molgraph.BondType
}

// parser walks a SMILES string left to right exactly once, building atoms
// and bonds into mol as it goes — the single-pass state machine grounded
// on the teacher's src/molecule/smiles_loader.go Parse/readBracketedAtom
// shape, generalized to this package's Atom/Bond model.
type parser struct {
	s    string
	pos  int
	mol  *molgraph.Molecule

	rootStack []int
	pending   molgraph.BondType
	openRings map[int]ringOpen
}

// Parse produces a raw molecule: atoms and bonds only, with Default bonds
// still unresolved and delocalized atoms flagged but not yet kekulized —
// the "raw Molecule" spec.md §2's data-flow diagram hands to the
// default-bond resolver. It does not run ring perception, default-bond
// resolution, or implicit-H perception; see ParsePerceived for the full
// pipeline.
func Parse(s string) (*molgraph.Molecule, *ParseError) {
	p := &parser{
		s:         s,
		mol:       molgraph.New(),
		pending:   molgraph.Default,
		openRings: make(map[int]ringOpen),
	}

	for p.pos < len(s) {
		c := s[p.pos]
		var err *ParseError

		switch {
		case c == '.':
			err = &ParseError{Reason: DotSeparator, Text: "."}
		case c == '[':
			err = p.readBracketAtom()
		case c == '(':
			err = p.openBranch()
		case c == ')':
			err = p.closeBranch()
		case c == '-':
			p.pending = molgraph.Single
			p.pos++
		case c == '=':
			p.pending = molgraph.Double
			p.pos++
		case c == '#':
			p.pending = molgraph.Triple
			p.pos++
		case c == '$':
			p.pending = molgraph.Quadruple
			p.pos++
		case c == ':':
			p.pending = molgraph.Delocalized
			p.pos++
		case c == '/':
			p.pending = molgraph.Up
			p.pos++
		case c == '\\':
			p.pending = molgraph.Down
			p.pos++
		case c == '%':
			err = p.readRingClosure(true)
		case isDigit(c):
			err = p.readRingClosure(false)
		case isOrganicStart(c):
			err = p.readOrganicAtom()
		default:
			err = &ParseError{Reason: InvalidChar, Text: string(c)}
		}

		if err != nil {
			return nil, err
		}
	}

	if len(p.openRings) > 0 {
		return nil, &ParseError{Reason: UnclosedRing, Text: s}
	}
	return p.mol, nil
}

func (p *parser) openBranch() *ParseError {
	if len(p.rootStack) == 0 {
		return &ParseError{Reason: MismatchedParen, Text: "("}
	}
	p.rootStack = append(p.rootStack, p.rootStack[len(p.rootStack)-1])
	p.pos++
	return nil
}

func (p *parser) closeBranch() *ParseError {
	if len(p.rootStack) == 0 {
		return &ParseError{Reason: MismatchedParen, Text: ")"}
	}
	p.rootStack = p.rootStack[:len(p.rootStack)-1]
	p.pos++
	return nil
}

// appendAtom is the shared bond-emission step spec.md §4.1 describes for
// every atom append, organic-subset or bracket: bond to the current
// branch root if one exists, then this atom becomes the new root.
func (p *parser) appendAtom(e element.Element, delocalized bool) int {
	idx := p.mol.AddAtom(e)
	if delocalized {
		p.mol.Atoms[idx].Delocalized = true
	}
	if len(p.rootStack) > 0 {
		root := p.rootStack[len(p.rootStack)-1]
		p.rootStack = p.rootStack[:len(p.rootStack)-1]
		p.mol.AddBond(root, idx, p.pending)
		p.pending = molgraph.Default
	}
	p.rootStack = append(p.rootStack, idx)
	return idx
}

func (p *parser) readOrganicAtom() *ParseError {
	c := p.s[p.pos]
	delocalized := c >= 'a' && c <= 'z'
	sym := string(c)
	p.pos++

	if !delocalized && p.pos < len(p.s) {
		next := p.s[p.pos]
		if (c == 'C' && next == 'l') || (c == 'B' && next == 'r') {
			sym += string(next)
			p.pos++
		}
	}

	if c == '*' {
		p.appendAtom(element.Wildcard, false)
		return nil
	}

	lookup := sym
	if delocalized {
		lookup = strings.ToUpper(sym)
	}
	e, ok := element.FromSymbol(lookup)
	if !ok {
		return &ParseError{Reason: InvalidElement, Text: sym}
	}
	p.appendAtom(e, delocalized)
	return nil
}

// readBracketAtom implements spec.md §4.1's bracket sub-language: the '['
// itself performs the atom append (a placeholder element, refined below)
// so branch/ring bonding to the bracket atom behaves exactly like any
// other atom append; every subsequent token mutates that same atom.
func (p *parser) readBracketAtom() *ParseError {
	start := p.pos
	p.pos++ // consume '['

	idx := p.appendAtom(element.Wildcard, false)

	isotope := 0
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		isotope = isotope*10 + int(p.s[p.pos]-'0')
		p.pos++
	}
	if isotope > 0 {
		p.mol.Atoms[idx].Isotope = isotope
	}

	if p.pos >= len(p.s) {
		return &ParseError{Reason: UnclosedBracket, Text: p.s[start:]}
	}
	elemStart := p.pos
	first := p.s[p.pos]
	if first == '*' {
		p.pos++
	} else {
		if !isAlpha(first) {
			return &ParseError{Reason: InvalidElement, Text: string(first)}
		}
		p.pos++
		for p.pos < len(p.s) && isLower(p.s[p.pos]) {
			p.pos++
		}
	}
	sym := p.s[elemStart:p.pos]

	delocalized := first >= 'a' && first <= 'z'
	var e element.Element
	var ok bool
	if sym == "*" {
		e, ok = element.Wildcard, true
	} else if delocalized {
		e, ok = element.FromSymbol(strings.ToUpper(sym[:1]) + sym[1:])
	} else {
		e, ok = element.FromSymbol(sym)
	}
	if !ok {
		return &ParseError{Reason: InvalidElement, Text: sym}
	}
	p.mol.Atoms[idx].Element = e
	p.mol.Atoms[idx].Delocalized = delocalized

	atCount := 0
	for p.pos < len(p.s) && p.s[p.pos] == '@' {
		atCount++
		p.pos++
		if atCount > 2 {
			return &ParseError{Reason: ChiralityError, Text: "@@@"}
		}
	}
	switch atCount {
	case 1:
		p.mol.Atoms[idx].Chirality = molgraph.CounterClockwise
	case 2:
		p.mol.Atoms[idx].Chirality = molgraph.Clockwise
	}

	if p.pos < len(p.s) && p.s[p.pos] == 'H' {
		p.pos++
		count := 1
		if p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			count = int(p.s[p.pos] - '0')
			p.pos++
		}
		p.mol.Atoms[idx].ImplicitH = count
	}

	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
		signChar := p.s[p.pos]
		sign := 1
		if signChar == '-' {
			sign = -1
		}
		p.pos++
		magnitude := 1
		if p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			magnitude = 0
			for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
				magnitude = magnitude*10 + int(p.s[p.pos]-'0')
				p.pos++
			}
		} else {
			for p.pos < len(p.s) && p.s[p.pos] == signChar {
				magnitude++
				p.pos++
			}
		}
		// idx is the bracket atom this same call just appended, always valid.
		_ = p.mol.SetCharge(idx, sign*magnitude)
	}

	if p.pos >= len(p.s) || p.s[p.pos] != ']' {
		return &ParseError{Reason: UnclosedBracket, Text: p.s[start:]}
	}
	p.pos++ // consume ']'
	return nil
}

func (p *parser) readRingClosure(twoDigit bool) *ParseError {
	start := p.pos
	var d int
	if twoDigit {
		p.pos++ // consume '%'
		if p.pos+1 >= len(p.s) || !isDigit(p.s[p.pos]) || !isDigit(p.s[p.pos+1]) {
			end := p.pos + 2
			if end > len(p.s) {
				end = len(p.s)
			}
			return &ParseError{Reason: InvalidChar, Text: p.s[start:end]}
		}
		d = int(p.s[p.pos]-'0')*10 + int(p.s[p.pos+1]-'0')
		p.pos += 2
	} else {
		d = int(p.s[p.pos] - '0')
		p.pos++
	}

	if len(p.rootStack) == 0 {
		return &ParseError{Reason: InvalidChar, Text: p.s[start:p.pos]}
	}
	topAtom := p.rootStack[len(p.rootStack)-1]

	if opening, exists := p.openRings[d]; !exists {
		p.openRings[d] = ringOpen{atom: topAtom, bondType: p.pending}
	} else {
		bondType := opening.bondType
		if bondType == molgraph.Default {
			bondType = p.pending
		}
		p.mol.AddBond(opening.atom, topAtom, bondType)
		delete(p.openRings, d)
	}
	p.pending = molgraph.Default
	return nil
}

func isOrganicStart(c byte) bool {
	switch c {
	case 'B', 'C', 'N', 'O', 'P', 'S', 'F', 'I', '*', 'b', 'c', 'n', 'o', 'p', 's':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
