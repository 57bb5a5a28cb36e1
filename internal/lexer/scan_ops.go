package lexer

import (
	"fmt"

	"sysmlc/internal/diag"
	"sysmlc/internal/token"
)

// scanOperatorOrPunct scans one punctuation/operator token, trying 3-byte
// then 2-byte then 1-byte lexemes so the longest match always wins (e.g.
// "::=" before "::", "===" before "==").
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch {
	case lx.try3(':', ':', '='):
		return emit(token.ComputedAssign)
	case lx.try3(':', '>', '>'):
		return emit(token.RedefineOp)
	case lx.try3('=', '=', '='):
		return emit(token.EqEqEq)
	case lx.try3('!', '=', '='):
		return emit(token.BangEqEq)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2(':', '>'):
		return emit(token.SubsetOp)
	case lx.try2(':', '='):
		return emit(token.CoalesceAssign)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('?', '?'):
		return emit(token.QuestionQuestion)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case ':':
		return emit(token.Colon)
	case '=':
		return emit(token.Assign)
	case '#':
		return emit(token.Hash)
	case '@':
		return emit(token.At)
	case '.':
		return emit(token.Dot)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '!':
		return emit(token.Bang)
	case '~':
		return emit(token.Tilde)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '?':
		return emit(token.Question)
	default:
		return lx.scanUnknownByte(start, ch)
	}
}

func (lx *Lexer) scanUnknownByte(start Mark, ch byte) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
