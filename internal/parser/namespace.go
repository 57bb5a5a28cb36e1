package parser

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// parseVisibility consumes an optional public/private/protected modifier.
func (p *Parser) parseVisibility() (ast.Visibility, bool) {
	switch p.lx.Peek().Kind {
	case token.KwPublic:
		p.advance()
		return ast.VisPublic, true
	case token.KwPrivate:
		p.advance()
		return ast.VisPrivate, true
	case token.KwProtected:
		p.advance()
		return ast.VisProtected, true
	default:
		return ast.VisPublic, false
	}
}

// parseNamespaceMember dispatches on the next token to parse one namespace
// member, wrapping the concrete element in an OwningMembership, import in an
// ImportMembership, or alias in an AliasMember as appropriate.
func (p *Parser) parseNamespaceMember() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	vis, hasVis := p.parseVisibility()

	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseImportMembership(start, vis, hasVis)
	case token.KwAlias:
		return p.parseAliasMember(start, vis, hasVis)
	case token.KwPackage, token.KwLibrary, token.KwStandard:
		body, ok := p.parsePackageBody()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, body), true
	case token.KwTransition:
		element, ok := p.parseTransition()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwSuccession:
		element, ok := p.parseSuccession()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwEntry:
		element, ok := p.parseEntryAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwExit:
		element, ok := p.parseExitAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwDo:
		element, ok := p.parseDoAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwIf:
		element, ok := p.parseIfAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwWhile:
		element, ok := p.parseWhileAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwFor:
		element, ok := p.parseForAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwAssign:
		element, ok := p.parseAssignAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwSend:
		element, ok := p.parseSendAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwAccept:
		element, ok := p.parseAcceptAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwPerform:
		element, ok := p.parsePerformAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwAssert:
		element, ok := p.parseAssertAction()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	case token.KwDoc:
		doc, ok := p.parseDocumentation()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, doc), true
	case token.KwComment:
		comment, ok := p.parseComment()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, comment), true
	case token.KwRep:
		rep, ok := p.parseTextualRepresentation()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, rep), true
	case token.Hash:
		meta, ok := p.parsePrefixedMetadata()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, meta), true
	case token.At:
		meta, ok := p.parseInlineMetadata()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, meta), true
	default:
		element, ok := p.parseDefOrUsageStarter()
		if !ok {
			p.err(diag.SynUnexpectedToken, "expected a namespace member, got "+p.lx.Peek().Kind.String())
			return ast.NoNodeID, false
		}
		return p.b.NewOwningMembership(start.Cover(p.lastSpan), vis, hasVis, element), true
	}
}

// parsePackageBody parses `[library|standard] package [Name] { members }`.
func (p *Parser) parsePackageBody() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	isLibrary, isStandard := false, false
	for {
		switch p.lx.Peek().Kind {
		case token.KwLibrary:
			isLibrary = true
			p.advance()
			continue
		case token.KwStandard:
			isStandard = true
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.KwPackage, diag.SynExpectKeyword, "expected 'package'"); !ok {
		return ast.NoNodeID, false
	}

	name := source.NoStringID
	hasName := false
	if p.lx.Peek().IdentLike() {
		n, _, ok := p.parseIdentLike()
		if ok {
			name, hasName = n, true
		}
	}

	elements := p.parseNamespaceBody()
	return p.b.NewPackageBody(start.Cover(p.lastSpan), name, hasName, isLibrary, isStandard, elements), true
}

// parseNamespaceBody parses `{ member* }`, recovering member-by-member.
func (p *Parser) parseNamespaceBody() []ast.NodeID {
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin a namespace body"); !ok {
		return nil
	}
	var elements []ast.NodeID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek().Span
		member, ok := p.parseNamespaceMember()
		if !ok {
			p.resyncBodyMember()
			if p.lx.Peek().Span == before && p.at(token.EOF) {
				break
			}
			continue
		}
		elements = append(elements, member)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close a namespace body")
	return elements
}

func (p *Parser) resyncBodyMember() {
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if isNamespaceMemberStarter(p.lx.Peek().Kind) {
			return
		}
		p.advance()
	}
}

// parseImportMembership parses `import [all] Path[::*|::**] [as Alias];`.
func (p *Parser) parseImportMembership(start source.Span, vis ast.Visibility, hasVis bool) (ast.NodeID, bool) {
	p.advance() // 'import'
	isAll := false
	if p.at(token.KwAll) {
		isAll = true
		p.advance()
	}
	ref, ok := p.parseImportRef()
	if !ok {
		return ast.NoNodeID, false
	}
	p.wantSemicolon()
	id := p.b.NewImportMembership(start.Cover(p.lastSpan), vis, hasVis, isAll, ref)
	return id, true
}

// parseImportRef parses the path plus its optional `::*`/`::**` wildcard
// suffix that an import statement targets.
func (p *Parser) parseImportRef() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	path, ok := p.parseQualifiedName()
	if !ok {
		p.err(diag.SynExpectQualifiedName, "expected a qualified name in import")
		return ast.NoNodeID, false
	}
	isWildcard, isRecursive := false, false
	if p.at(token.ColonColon) {
		p.advance()
		if p.at(token.Star) {
			p.advance()
			isWildcard = true
		} else if p.at(token.StarStar) {
			p.advance()
			isRecursive = true
		} else {
			p.err(diag.SynEmptyImportSegment, "expected '*' or '**' after '::' in import path")
		}
	}
	ref := p.b.NewImportRef(start.Cover(p.lastSpan), path, isWildcard, isRecursive)
	return ref, true
}

// parseAliasMember parses `alias Name for Target;`.
func (p *Parser) parseAliasMember(start source.Span, vis ast.Visibility, hasVis bool) (ast.NodeID, bool) {
	p.advance() // 'alias'
	name, _, ok := p.parseIdentLike()
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.KwFor, diag.SynExpectKeyword, "expected 'for' in alias declaration"); !ok {
		return ast.NoNodeID, false
	}
	target, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoNodeID, false
	}
	p.wantSemicolon()
	return p.b.NewAliasMember(start.Cover(p.lastSpan), vis, hasVis, name, target), true
}

// wantSemicolon consumes a trailing ';' if present, warning (not erroring)
// when absent — a missing terminator rarely derails the rest of the parse.
func (p *Parser) wantSemicolon() {
	if p.at(token.Semicolon) {
		p.advance()
		return
	}
	if p.at(token.RBrace) || p.at(token.EOF) {
		return
	}
	p.warn(diag.SynExpectSemicolon, "expected ';'")
}
