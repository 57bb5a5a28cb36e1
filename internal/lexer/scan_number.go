package lexer

import (
	"sysmlc/internal/diag"
	"sysmlc/internal/token"
)

// scanNumber scans an integer literal in decimal, hex (0x), binary (0b), or
// octal (0o) form, or a real literal (\d+\.\d+([eE][+-]?\d+)? or
// \d+[eE][+-]?\d+). Always called with the cursor on a decimal digit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			digitsStart := lx.cursor.Mark()
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			if lx.cursor.Mark() == digitsStart {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected hex digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			return lx.emitNumber(start, token.HexLit)
		case 'b', 'B':
			lx.cursor.Bump()
			digitsStart := lx.cursor.Mark()
			for isBin(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			if lx.cursor.Mark() == digitsStart {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected binary digit after '0b'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			return lx.emitNumber(start, token.BinLit)
		case 'o', 'O':
			lx.cursor.Bump()
			digitsStart := lx.cursor.Mark()
			for isOct(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			if lx.cursor.Mark() == digitsStart {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected octal digit after '0o'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			return lx.emitNumber(start, token.OctLit)
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// A decimal point only belongs to this number if at least one digit
	// follows — "1." is IntLit '1' then Dot, not a real literal, and ".."
	// must never be split.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.RealLit
	}

	return lx.scanExponent(start, kind)
}

// scanExponent consumes an optional [eE][+-]?\d+ suffix, promoting kind to
// RealLit whenever one is present.
func (lx *Lexer) scanExponent(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.RealLit
	}
	return lx.emitNumber(start, kind)
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
