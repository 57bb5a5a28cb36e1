package lexer

import (
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
)

// Options configures a Lexer. MaxTokenLength bounds the length of any single
// token's lexeme; zero selects the default (see maxTokenLength).
type Options struct {
	Reporter       diag.Reporter
	MaxTokenLength uint32
}

func (lx *Lexer) maxTokenLength() uint32 {
	if lx.opts.MaxTokenLength != 0 {
		return lx.opts.MaxTokenLength
	}
	return maxTokenLength
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
