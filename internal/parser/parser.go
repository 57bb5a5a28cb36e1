package parser

import (
	"slices"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// Options configures a single parse. Reporter receives every diagnostic;
// MaxErrors (0 = unlimited) stops reporting once CurrentErrors reaches it,
// so a pathological document cannot flood a caller with diagnostics.
type Options struct {
	Trace         bool
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget for this parse has been spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is what ParseDocument hands back: the root namespace node plus the
// diagnostic bag collected along the way, when the caller's Reporter was a
// *diag.BagReporter.
type Result struct {
	Root ast.NodeID
	Bag  *diag.Bag
}

// Parser holds per-document parse state: the token stream, the AST builder
// it is filling in, and the error-recovery bookkeeping.
type Parser struct {
	lx       *lexer.Lexer
	b        *ast.Builder
	strings  *source.Interner
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
}

// ParseDocument parses one file's token stream into a root namespace node.
func ParseDocument(fs *source.FileSet, lx *lexer.Lexer, b *ast.Builder, strings *source.Interner, opts Options) Result {
	p := Parser{
		lx:       lx,
		b:        b,
		strings:  strings,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	root := p.parseRootNamespace()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Root: root, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseRootNamespace parses every top-level element until EOF, recovering
// past whatever it cannot make sense of rather than aborting the document.
func (p *Parser) parseRootNamespace() ast.NodeID {
	start := p.lx.Peek().Span
	var elements []ast.NodeID
	for !p.at(token.EOF) {
		before := p.lx.Peek().Span
		member, ok := p.parseNamespaceMember()
		if !ok {
			p.resyncTop()
			continue
		}
		elements = append(elements, member)
		if p.lx.Peek().Span == before && p.at(token.EOF) {
			break
		}
	}
	end := p.lastSpan
	return p.b.NewRootNamespace(start.Cover(end), elements)
}

// resyncTop recovers after a top-level parse failure: advance until a
// semicolon, a brace we can step past, or a token that starts a new
// namespace member.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if p.at(token.RBrace) {
			p.advance()
			return
		}
		if isNamespaceMemberStarter(p.lx.Peek().Kind) {
			return
		}
		p.advance()
	}
}

// isNamespaceMemberStarter reports whether k can begin a namespace member:
// a visibility modifier, import, alias, comment/doc/rep, metadata prefix, or
// one of the 23 definition/usage keywords (§6.1's closed keyword set).
func isNamespaceMemberStarter(k token.Kind) bool {
	switch k {
	case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwImport, token.KwAlias,
		token.KwDoc, token.KwComment, token.KwRep, token.Hash, token.At,
		token.KwPackage, token.KwLibrary, token.KwStandard, token.KwNamespace,
		token.KwTransition, token.KwSuccession, token.KwEntry, token.KwExit, token.KwDo,
		token.KwIf, token.KwWhile, token.KwFor, token.KwAssign, token.KwSend, token.KwAccept,
		token.KwPerform, token.KwAssert:
		return true
	default:
		return elementKindForKeyword(k) != ast.EKInvalid
	}
}
