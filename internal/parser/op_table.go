package parser

import "sysmlc/internal/token"

// Binary operator precedence table. Higher binds tighter. Grounded on the
// teacher's getBinaryOperatorPrec table shape, re-keyed to SysML's operator
// set (implies binds loosest, multiplicative tightest; ** is handled
// separately in parseBinary via precPower since it is right-associative, and
// unary prefix operators bind tighter than it).
const (
	precImplies        = 1 // implies
	precOr             = 2 // or, xor
	precAnd            = 3 // and
	precEquality       = 4 // == != === !==
	precComparison     = 5 // < <= > >=
	precClassification = 6 // hastype, istype, as, @, meta
	precRange          = 7 // ..
	precAdditive       = 8 // + -
	precMultiplicative = 9 // * / %
)

// getBinaryPrec returns the precedence of kind as an infix operator, or
// (-1, false) if kind is not one.
func (p *Parser) getBinaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.KwImplies:
		return precImplies, true
	case token.KwOr, token.KwXor:
		return precOr, true
	case token.KwAnd:
		return precAnd, true
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, true
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, true
	default:
		return -1, false
	}
}

func isClassificationOp(k token.Kind) bool {
	switch k {
	case token.KwHastype, token.KwIstype, token.KwAs, token.At, token.KwMeta:
		return true
	default:
		return false
	}
}

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Bang, token.KwNot, token.Tilde:
		return true
	default:
		return false
	}
}
