package lexer

import (
	"sysmlc/internal/diag"
	"sysmlc/internal/token"
)

// collectLeadingTrivia consumes runs of whitespace and plain comments ahead
// of the next significant token.
//   - ' ' and '\t' coalesce into one TriviaSpace.
//   - consecutive '\n' coalesce into one TriviaNewline.
//   - "// ..." up to '\n' becomes a TriviaLineComment.
//   - "/* ... */" becomes a TriviaBlockComment (nesting supported).
//
// A "/** ... */" doc comment is NOT trivia — collection stops before it so
// Next's dispatch can emit it as its own DocComment token.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.isDocCommentStart() {
				break
			}
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// peekAt returns the byte `offset` positions ahead of the cursor, or 0 past
// the end of the file.
func (lx *Lexer) peekAt(offset int) byte {
	idx := int(lx.cursor.Off) + offset
	if idx < 0 || idx >= len(lx.file.Content) {
		return 0
	}
	return lx.file.Content[idx]
}

// isDocCommentStart reports whether the cursor sits at "/**" that is not
// immediately closed by "/**/" (which lexes as an empty plain block comment).
func (lx *Lexer) isDocCommentStart() bool {
	return lx.peekAt(0) == '/' && lx.peekAt(1) == '*' && lx.peekAt(2) == '*' && lx.peekAt(3) != '/'
}

// scanCommentIntoHold consumes a "// ..." or "/* ... */" comment into hold.
// Returns false (without consuming) if the '/' does not start a comment.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true
	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				switch {
				case b0 == '/' && b1 == '*':
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				case b0 == '*' && b1 == '/':
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.report(diag.LexUnterminatedComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true
	default:
		lx.cursor.Reset(start)
		return false
	}
}

// scanDocComment scans a "/** ... */" doc comment as a significant token.
func (lx *Lexer) scanDocComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.DocComment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedComment, sp, "unterminated doc comment")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
