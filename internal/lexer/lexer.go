package lexer

import (
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// maxTokenLength bounds the default lexeme length the lexer will accept
// before reporting LexTokenTooLong and fast-forwarding to EOF.
const maxTokenLength = 1 << 16

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// Past EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// Bare identifiers are ASCII-only; a raw Unicode byte outside a
		// string or unrestricted name is not part of any token kind.
		tok = lx.scanUnknownRune()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '/' && lx.isDocCommentStart():
		tok = lx.scanDocComment()
	case ch == '\'':
		tok = lx.scanUnrestrictedName()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	if sz := lx.cursor.Off - uint32(start); sz > lx.maxTokenLength() {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexTokenTooLong, sp, "token exceeds the maximum lexeme length")
		tok = token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		lx.cursor.Off = lx.cursor.Limit
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// EmptySpan returns a zero-length span at the lexer's current cursor
// position, for callers (the parser's document entry point) that need a
// starting span before any token has been consumed.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.emptySpan()
}
