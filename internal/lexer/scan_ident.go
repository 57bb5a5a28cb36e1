package lexer

import (
	"sysmlc/internal/token"
)

// scanIdentOrKeyword scans a bare [A-Za-z_][A-Za-z0-9_]* lexeme and resolves
// it against the keyword table. Keywords are lowercase and case-sensitive —
// any other casing lexes as a plain Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
