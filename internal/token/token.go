package token

import (
	"sysmlc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, null, or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LBrace, RBrace, LBracket, RBracket, LParen, RParen, Comma, Semicolon, Colon,
		ColonColon, SubsetOp, RedefineOp, Assign, CoalesceAssign, ComputedAssign, Hash, At,
		Dot, DotDot, Star, Slash, Percent, Plus, Minus, Bang, Tilde, StarStar, Lt, LtEq, Gt,
		GtEq, EqEq, BangEq, EqEqEq, BangEqEq, Question, QuestionQuestion:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword — every keyword is
// also accepted as an identifier in identifier positions.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwPublic && t.Kind <= KwRep
}

// IsIdent reports whether the token is a plain identifier or unrestricted name.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == UnrestrictedName }

// IdentLike reports whether the token can stand in an identifier position:
// either a real Ident/UnrestrictedName, or any keyword demoted by the parser.
func (t Token) IdentLike() bool { return t.IsIdent() || t.IsKeyword() }
