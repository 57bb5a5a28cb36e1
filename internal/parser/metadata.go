package parser

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// parseDocumentation parses `doc [Name] /** body */ ;`.
func (p *Parser) parseDocumentation() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'doc'
	name, hasName := p.parseOptionalName()
	body, ok := p.expectDocComment()
	if !ok {
		return ast.NoNodeID, false
	}
	p.wantSemicolon()
	return p.b.NewDocumentation(start.Cover(p.lastSpan), name, hasName, body), true
}

// parseComment parses `comment [Name] [about Target (',' Target)*] [language "locale"] /** body */ ;`.
func (p *Parser) parseComment() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'comment'
	name, hasName := p.parseOptionalName(token.KwAbout, token.KwLanguage)

	var about []ast.NodeID
	if p.at(token.KwAbout) {
		p.advance()
		for {
			target, ok := p.parseQualifiedName()
			if ok {
				about = append(about, target)
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}

	language, hasLanguage := source.NoStringID, false
	if p.at(token.KwLanguage) {
		p.advance()
		if tok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected a locale string after 'language'"); ok {
			language, hasLanguage = p.strings.Intern(tok.Text), true
		}
	}

	body, ok := p.expectDocComment()
	if !ok {
		return ast.NoNodeID, false
	}
	p.wantSemicolon()
	id := p.b.NewComment(start.Cover(p.lastSpan), ast.CommentPayload{
		Name: name, HasName: hasName, About: about,
		Language: language, HasLanguage: hasLanguage, Body: body,
	})
	return id, true
}

// parseTextualRepresentation parses `rep [Name] language "locale" /** body */ ;`.
func (p *Parser) parseTextualRepresentation() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'rep'
	name, hasName := p.parseOptionalName(token.KwLanguage)

	language := source.NoStringID
	if _, ok := p.expect(token.KwLanguage, diag.SynExpectKeyword, "expected 'language' in textual representation"); ok {
		if tok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected a locale string after 'language'"); ok {
			language = p.strings.Intern(tok.Text)
		}
	}

	body, ok := p.expectDocComment()
	if !ok {
		return ast.NoNodeID, false
	}
	p.wantSemicolon()
	id := p.b.NewTextualRepresentation(start.Cover(p.lastSpan), ast.TextualRepresentationPayload{
		Name: name, HasName: hasName, Language: language, Body: body,
	})
	return id, true
}

// parsePrefixedMetadata parses `#Type`. Unlike inline metadata (`@...`), a
// prefixed annotation carries no name or body of its own.
func (p *Parser) parsePrefixedMetadata() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // '#'
	typ, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.b.NewPrefixedMetadata(start.Cover(p.lastSpan), typ), true
}

// parseInlineMetadata parses `@ [Name] [: Type] [{ body }]`.
func (p *Parser) parseInlineMetadata() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // '@'

	name, hasName := source.NoStringID, false
	if p.lx.Peek().IdentLike() && !p.at(token.Colon) {
		n, _, ok := p.parseIdentLike()
		if ok {
			name, hasName = n, true
		}
	}

	var typ ast.NodeID
	if p.at(token.Colon) {
		p.advance()
		typ, _ = p.parseQualifiedName()
	}

	var body []ast.NodeID
	hasBody := false
	if p.at(token.LBrace) {
		hasBody = true
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			member, ok := p.parseNamespaceMember()
			if !ok {
				p.resyncBodyMember()
				continue
			}
			body = append(body, member)
		}
		p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close inline metadata body")
	} else {
		p.wantSemicolon()
	}

	id := p.b.NewInlineMetadata(start.Cover(p.lastSpan), ast.InlineMetadataPayload{
		Name: name, HasName: hasName, Type: typ, HasBody: hasBody, Body: body,
	})
	return id, true
}

// parseOptionalName consumes a bare identifier-like name, unless the next
// token is one of stop — the construct's own clause-introducing keywords
// (about/language) take priority over being read as a name, even though
// they are themselves IdentLike.
func (p *Parser) parseOptionalName(stop ...token.Kind) (source.StringID, bool) {
	tok := p.lx.Peek()
	if !tok.IdentLike() || p.atOr(stop...) {
		return source.NoStringID, false
	}
	name, _, ok := p.parseIdentLike()
	if !ok {
		return source.NoStringID, false
	}
	return name, true
}

// expectDocComment consumes the /** ... */ token every documentation-family
// construct ends in, stripping its delimiters.
func (p *Parser) expectDocComment() (string, bool) {
	tok, ok := p.expect(token.DocComment, diag.SynBadMetadataBody, "expected a '/** ... */' doc comment")
	if !ok {
		return "", false
	}
	return stripDocCommentDelimiters(tok.Text), true
}

func stripDocCommentDelimiters(text string) string {
	const open, close = "/**", "*/"
	if len(text) >= len(open)+len(close) {
		return text[len(open) : len(text)-len(close)]
	}
	return text
}
