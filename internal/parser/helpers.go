package parser

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// advance consumes the next token and updates lastSpan so later diagnostics
// can anchor on "just after the last real token" rather than a zero span.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan picks the best span to anchor a diagnostic on: the current
// token's span, unless it is an empty EOF/Invalid span at the very start of
// the file, in which case it points just past the last consumed token.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes k if present, else reports code at error severity and
// returns an Invalid token so callers can keep building a partial tree.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.diagnosticSpan(), msg)
}

func (p *Parser) hint(code diag.Code, msg string) bool {
	return p.report(code, diag.SevHint, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	return true
}

// resyncUntil advances past tokens until one of kinds (or EOF) is the next
// token, without consuming it — so the caller's own stop-token handling
// decides what happens next.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

// parseIdentLike consumes an identifier-position token: a plain Ident, an
// UnrestrictedName, or any keyword demoted per the IdentLike contract — the
// keyword/identifier arbitration this grammar requires throughout (§4.2).
func (p *Parser) parseIdentLike() (source.StringID, source.Span, bool) {
	tok := p.lx.Peek()
	if !tok.IdentLike() {
		p.err(diag.SynExpectIdentifier, "expected identifier, got "+tok.Kind.String())
		return source.NoStringID, tok.Span, false
	}
	p.advance()
	return p.strings.Intern(tok.Text), tok.Span, true
}

// parseQualifiedName parses a '::'-separated chain of identifier-like parts.
func (p *Parser) parseQualifiedName() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	name, sp, ok := p.parseIdentLike()
	if !ok {
		return ast.NoNodeID, false
	}
	parts := []source.StringID{name}
	end := sp
	for p.at(token.ColonColon) {
		p.advance()
		name, sp, ok = p.parseIdentLike()
		if !ok {
			break
		}
		parts = append(parts, name)
		end = sp
	}
	return p.b.NewQualifiedName(start.Cover(end), parts), true
}
