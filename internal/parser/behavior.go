package parser

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// parseTransition parses `transition [name] first <state-ref> [accept
// <event>] [if <guard>] [do action <effect>] then <state-ref> ';'`. The
// middle three clauses are each independently optional and may appear in any
// order between 'first' and 'then' — real transition bodies in the corpus
// mix them freely.
func (p *Parser) parseTransition() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'transition'

	name, hasName := p.parseOptionalName(token.KwFirst)

	var payload ast.TransitionPayload
	payload.Name, payload.HasName = name, hasName

	if _, ok := p.expect(token.KwFirst, diag.SynExpectKeyword, "expected 'first' in transition"); !ok {
		return ast.NoNodeID, false
	}
	first, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoNodeID, false
	}
	payload.First = first

clauses:
	for {
		switch p.lx.Peek().Kind {
		case token.KwAccept:
			p.advance()
			payload.Accept = p.parseExpr()
		case token.KwIf:
			p.advance()
			payload.Guard = p.parseExpr()
		case token.KwDo:
			p.advance()
			p.expect(token.KwAction, diag.SynExpectKeyword, "expected 'action' after 'do' in transition")
			payload.DoEffect = p.parseExpr()
		default:
			break clauses
		}
	}

	if _, ok := p.expect(token.KwThen, diag.SynExpectKeyword, "expected 'then' in transition"); !ok {
		return ast.NoNodeID, false
	}
	then, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoNodeID, false
	}
	payload.Then = then

	p.wantSemicolon()
	return p.b.NewTransition(start.Cover(p.lastSpan), payload), true
}

// parseSuccession parses `succession [name] first <step> ('then'
// <step>)+ ';'`.
func (p *Parser) parseSuccession() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'succession'

	name, hasName := p.parseOptionalName(token.KwFirst)

	if _, ok := p.expect(token.KwFirst, diag.SynExpectKeyword, "expected 'first' in succession"); !ok {
		return ast.NoNodeID, false
	}
	first, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoNodeID, false
	}
	steps := []ast.NodeID{first}

	for p.at(token.KwThen) {
		p.advance()
		step, ok := p.parseQualifiedName()
		if !ok {
			break
		}
		steps = append(steps, step)
	}

	p.wantSemicolon()
	return p.b.NewSuccession(start.Cover(p.lastSpan), ast.SuccessionPayload{
		Name: name, HasName: hasName, Steps: steps,
	}), true
}

// finishFlowConnection parses the `from <ref> to <ref>` tail of an
// individual flow connection usage once 'flow' and its optional name are
// already consumed — distinct from a FlowConnectionDefinition/Usage, which
// shares the 'flow' keyword but never reaches 'from'.
func (p *Parser) finishFlowConnection(start source.Span, name source.StringID, hasName bool) (ast.NodeID, bool) {
	p.advance() // 'from'
	from := p.parseExpr()
	if _, ok := p.expect(token.KwTo, diag.SynExpectKeyword, "expected 'to' in flow connection"); !ok {
		return ast.NoNodeID, false
	}
	to := p.parseExpr()
	p.wantSemicolon()
	return p.b.NewActionBody(ast.TagFlow, start.Cover(p.lastSpan), ast.ActionBodyPayload{
		Name: name, HasName: hasName, Target: from, Operands: []ast.NodeID{to},
	}), true
}

// parseSimpleActionStatement handles the shared shape of entry/exit/do/
// perform/assert: a keyword, an optional target expression, and a
// terminating ';' or nested body.
func (p *Parser) parseSimpleActionStatement(tag ast.Tag, wantTarget bool) (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance()

	var payload ast.ActionBodyPayload
	if wantTarget && !p.at(token.Semicolon) && !p.at(token.LBrace) {
		payload.Target = p.parseExpr()
	}
	if p.at(token.LBrace) {
		payload.Operands = p.parseNamespaceBody()
	} else {
		p.wantSemicolon()
	}
	return p.b.NewActionBody(tag, start.Cover(p.lastSpan), payload), true
}

func (p *Parser) parseEntryAction() (ast.NodeID, bool) { return p.parseSimpleActionStatement(ast.TagEntryAction, true) }
func (p *Parser) parseExitAction() (ast.NodeID, bool)  { return p.parseSimpleActionStatement(ast.TagExitAction, true) }
func (p *Parser) parseDoAction() (ast.NodeID, bool)    { return p.parseSimpleActionStatement(ast.TagDoAction, true) }
func (p *Parser) parsePerformAction() (ast.NodeID, bool) {
	return p.parseSimpleActionStatement(ast.TagPerformAction, true)
}
func (p *Parser) parseAssertAction() (ast.NodeID, bool) {
	return p.parseSimpleActionStatement(ast.TagAssertAction, true)
}

// parseIfAction parses `if <guard> '{' body '}' [else ('if' ... | '{' body '}')]`.
func (p *Parser) parseIfAction() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'if'
	guard := p.parseExpr()

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin an if-action body"); !ok {
		return ast.NoNodeID, false
	}
	then, ok := p.readActionBody()
	if !ok {
		return ast.NoNodeID, false
	}

	var operands []ast.NodeID
	operands = append(operands, then...)

	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			elseAction, ok := p.parseIfAction()
			if ok {
				operands = append(operands, elseAction)
			}
		} else if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin an else body"); ok {
			elseBody, _ := p.readActionBody()
			operands = append(operands, elseBody...)
		}
	}

	return p.b.NewActionBody(ast.TagIfAction, start.Cover(p.lastSpan), ast.ActionBodyPayload{
		Guard: guard, Operands: operands,
	}), true
}

// readActionBody reads namespace members up to a closing '}' that the
// caller has already consumed the opening '{' for.
func (p *Parser) readActionBody() ([]ast.NodeID, bool) {
	var elements []ast.NodeID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member, ok := p.parseNamespaceMember()
		if !ok {
			p.resyncBodyMember()
			continue
		}
		elements = append(elements, member)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close an action body")
	return elements, true
}

// parseWhileAction parses `while <guard> ['until' <expr>] '{' body '}'`.
func (p *Parser) parseWhileAction() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'while'
	guard := p.parseExpr()

	var operands []ast.NodeID
	if p.at(token.KwUntil) {
		p.advance()
		operands = append(operands, p.parseExpr())
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin a while-action body"); !ok {
		return ast.NoNodeID, false
	}
	body, _ := p.readActionBody()
	operands = append(operands, body...)

	return p.b.NewActionBody(ast.TagWhileAction, start.Cover(p.lastSpan), ast.ActionBodyPayload{
		Guard: guard, Operands: operands,
	}), true
}

// parseForAction parses `for <name> in <iterable-expr> '{' body '}'`.
func (p *Parser) parseForAction() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'for'
	name, hasName := p.parseOptionalName(token.KwIn)

	if _, ok := p.expect(token.KwIn, diag.SynExpectKeyword, "expected 'in' in for-action"); !ok {
		return ast.NoNodeID, false
	}
	iterable := p.parseExpr()

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin a for-action body"); !ok {
		return ast.NoNodeID, false
	}
	body, _ := p.readActionBody()
	operands := append([]ast.NodeID{iterable}, body...)

	return p.b.NewActionBody(ast.TagForAction, start.Cover(p.lastSpan), ast.ActionBodyPayload{
		Name: name, HasName: hasName, Operands: operands,
	}), true
}

// parseAssignAction parses `assign <target> ('=' | ':=') <expr> ';'`.
func (p *Parser) parseAssignAction() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'assign'
	target := p.parseExpr()

	if !p.at(token.Assign) && !p.at(token.CoalesceAssign) {
		p.err(diag.SynUnexpectedToken, "expected '=' or ':=' in assign action")
		return ast.NoNodeID, false
	}
	p.advance()
	value := p.parseExpr()
	p.wantSemicolon()

	return p.b.NewActionBody(ast.TagAssignAction, start.Cover(p.lastSpan), ast.ActionBodyPayload{
		Target: target, Operands: []ast.NodeID{value},
	}), true
}

// parseSendAction parses `send <event> [via <port>] [to <target>] ';'`.
func (p *Parser) parseSendAction() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'send'
	event := p.parseExpr()

	var payload ast.ActionBodyPayload
	payload.Target = event

	if p.at(token.KwVia) {
		p.advance()
		payload.Via = p.parseExpr()
	}
	if p.at(token.KwTo) {
		p.advance()
		payload.Operands = append(payload.Operands, p.parseExpr())
	}
	p.wantSemicolon()
	return p.b.NewActionBody(ast.TagSendAction, start.Cover(p.lastSpan), payload), true
}

// parseAcceptAction parses `accept <event> [via <port>] [if <guard>]
// (';' | body)`.
func (p *Parser) parseAcceptAction() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'accept'
	event := p.parseExpr()

	var payload ast.ActionBodyPayload
	payload.Target = event

	if p.at(token.KwVia) {
		p.advance()
		payload.Via = p.parseExpr()
	}
	if p.at(token.KwIf) {
		p.advance()
		payload.Guard = p.parseExpr()
	}
	if p.at(token.LBrace) {
		p.advance()
		body, _ := p.readActionBody()
		payload.Operands = body
	} else {
		p.wantSemicolon()
	}
	return p.b.NewActionBody(ast.TagAcceptAction, start.Cover(p.lastSpan), payload), true
}
