package parser

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/token"
)

const precPower = 10 // ** binds above multiplicative, right-associative

// parseExpr is the expression entry point: conditional is the loosest form.
func (p *Parser) parseExpr() ast.NodeID {
	return p.parseConditional()
}

// parseConditional handles `cond ? then : else`, right-associative.
func (p *Parser) parseConditional() ast.NodeID {
	start := p.lx.Peek().Span
	cond := p.parseNullCoalesce()
	if !p.at(token.Question) {
		return cond
	}
	p.advance()
	then := p.parseExpr()
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression")
	els := p.parseConditional()
	return p.b.NewExprConditional(start.Cover(p.lastSpan), cond, then, els)
}

// parseNullCoalesce handles `left ?? right`, right-associative.
func (p *Parser) parseNullCoalesce() ast.NodeID {
	start := p.lx.Peek().Span
	left := p.parseBinary(1)
	if !p.at(token.QuestionQuestion) {
		return left
	}
	p.advance()
	right := p.parseNullCoalesce()
	return p.b.NewExprNullCoalesce(start.Cover(p.lastSpan), left, right)
}

// parseBinary climbs the precedence table, folding in range (`..`) and the
// classification operators (hastype/istype/as/@/meta) at their own tiers
// rather than as a separate pass — they behave like infix operators that
// just don't produce an ExprBinary node.
func (p *Parser) parseBinary(minPrec int) ast.NodeID {
	start := p.lx.Peek().Span
	left := p.parseUnary()

	for {
		kind := p.lx.Peek().Kind

		if isClassificationOp(kind) && precClassification >= minPrec {
			p.advance()
			typ, _ := p.parseQualifiedName()
			left = p.b.NewExprClassification(start.Cover(p.lastSpan), kind, left, typ)
			continue
		}

		if kind == token.DotDot && precRange >= minPrec {
			p.advance()
			right := p.parseBinary(precRange + 1)
			left = p.b.NewExprRange(start.Cover(p.lastSpan), left, right)
			continue
		}

		if kind == token.StarStar && precPower >= minPrec {
			p.advance()
			right := p.parseBinary(precPower) // right-associative
			left = p.b.NewExprBinary(start.Cover(p.lastSpan), kind, left, right)
			continue
		}

		prec, ok := p.getBinaryPrec(kind)
		if !ok || prec < minPrec {
			break
		}
		p.advance()
		right := p.parseBinary(prec + 1)
		left = p.b.NewExprBinary(start.Cover(p.lastSpan), kind, left, right)
	}
	return left
}

// parseUnary handles the prefix operators: + - ! not ~.
func (p *Parser) parseUnary() ast.NodeID {
	if isUnaryOp(p.lx.Peek().Kind) {
		start := p.lx.Peek().Span
		op := p.advance().Kind
		operand := p.parseUnary()
		return p.b.NewExprUnary(start.Cover(p.lastSpan), op, operand)
	}
	return p.parsePostfix()
}

// parsePostfix handles `.name` feature chains and `(args)` invocations,
// left-to-right, on top of a primary expression.
func (p *Parser) parsePostfix() ast.NodeID {
	start := p.lx.Peek().Span
	left := p.parsePrimary()
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			name, _, ok := p.parseIdentLike()
			if !ok {
				return left
			}
			left = p.b.NewExprFeatureChain(start.Cover(p.lastSpan), left, name)
		case p.at(token.LParen):
			p.advance()
			var args []ast.NodeID
			for !p.at(token.RParen) && !p.at(token.EOF) {
				args = append(args, p.parseExpr())
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close invocation arguments")
			left = p.b.NewExprInvocation(start.Cover(p.lastSpan), left, args)
		default:
			return left
		}
	}
}

// parsePrimary handles literals, parenthesized expressions, `all Type`
// extents, and qualified-name feature references.
func (p *Parser) parsePrimary() ast.NodeID {
	tok := p.lx.Peek()
	switch {
	case tok.IsLiteral():
		p.advance()
		return p.b.NewExprLiteral(tok.Span, tok.Kind, tok.Text)
	case tok.Kind == token.KwAll:
		start := tok.Span
		p.advance()
		typ, _ := p.parseQualifiedName()
		return p.b.NewExprExtent(start.Cover(p.lastSpan), typ)
	case tok.Kind == token.LParen:
		start := tok.Span
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parenthesized expression")
		return p.b.NewExprParen(start.Cover(p.lastSpan), inner)
	case tok.IdentLike():
		start := tok.Span
		ref, ok := p.parseQualifiedName()
		if !ok {
			return ast.NoNodeID
		}
		return p.b.NewExprName(start.Cover(p.lastSpan), ref)
	default:
		p.err(diag.SynUnexpectedToken, "expected an expression, got "+tok.Kind.String())
		sp := tok.Span
		if !p.at(token.EOF) {
			p.advance()
		}
		return p.b.NewExprLiteral(sp, token.Invalid, "")
	}
}
