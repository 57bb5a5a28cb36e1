package parser

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/token"
)

// elementKindForKeyword maps a single kind-keyword token to the ElementKind
// it introduces. The three compound kinds (analysis/verification/use case)
// still answer here with their final kind, even though the grammar requires
// a trailing 'case' — good enough for isNamespaceMemberStarter and resync
// checks, which only need to know "this starts a member", not the full shape.
func elementKindForKeyword(k token.Kind) ast.ElementKind {
	switch k {
	case token.KwPart:
		return ast.EKPart
	case token.KwItem:
		return ast.EKItem
	case token.KwAttribute:
		return ast.EKAttribute
	case token.KwAction:
		return ast.EKAction
	case token.KwState:
		return ast.EKState
	case token.KwConstraint:
		return ast.EKConstraint
	case token.KwRequirement:
		return ast.EKRequirement
	case token.KwPort:
		return ast.EKPort
	case token.KwConnection:
		return ast.EKConnection
	case token.KwInterface:
		return ast.EKInterface
	case token.KwFlow:
		return ast.EKFlow
	case token.KwAllocation:
		return ast.EKAllocation
	case token.KwCalc:
		return ast.EKCalc
	case token.KwCase:
		return ast.EKCase
	case token.KwAnalysis:
		return ast.EKAnalysisCase
	case token.KwVerification:
		return ast.EKVerificationCase
	case token.KwUse:
		return ast.EKUseCase
	case token.KwView:
		return ast.EKView
	case token.KwViewpoint:
		return ast.EKViewpoint
	case token.KwRendering:
		return ast.EKRendering
	case token.KwMetadata:
		return ast.EKMetadata
	case token.KwOccurrence:
		return ast.EKOccurrence
	case token.KwConcern:
		return ast.EKConcern
	default:
		return ast.EKInvalid
	}
}

// relationshipStopwords are the keyword forms of a feature relationship
// clause — they must not be swallowed as the element's optional name, even
// though each is IdentLike on its own.
var relationshipStopwords = []token.Kind{
	token.KwSpecializes, token.KwSubsets, token.KwRedefines, token.KwReferences, token.KwDisjoint,
}

// parseDefOrUsageStarter parses one of the 23 definition/usage kinds per
// §6.2's declaration shape: direction and modifiers, the kind keyword
// (optionally compound, optionally followed by 'def'), an optional name,
// then — in order — feature types, multiplicity, a specialization clause,
// conjugation, a disjoint-types clause, a value binding, and finally a body
// or terminating ';'. Definitions and usages share this one grammar, split
// only where their shapes genuinely differ (specialization form, and the
// usage-only feature fields).
func (p *Parser) parseDefOrUsageStarter() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	var payload ast.DefUsePayload

modifierLoop:
	for {
		switch p.lx.Peek().Kind {
		case token.KwIn:
			payload.Direction = ast.DirIn
			p.advance()
		case token.KwOut:
			payload.Direction = ast.DirOut
			p.advance()
		case token.KwInout:
			payload.Direction = ast.DirInout
			p.advance()
		case token.KwAbstract:
			payload.IsAbstract = true
			p.advance()
		case token.KwReadonly:
			payload.Readonly = true
			p.advance()
		case token.KwDerived:
			payload.Derived = true
			p.advance()
		case token.KwRef:
			payload.Ref = true
			p.advance()
		case token.KwEnd:
			payload.End = true
			p.advance()
		case token.KwParallel:
			payload.IsParallel = true
			p.advance()
		case token.KwComposite, token.KwPortion, token.KwVariant:
			p.advance() // recognized, not separately tracked
		default:
			break modifierLoop
		}
	}

	kindTok := p.lx.Peek()
	ek := elementKindForKeyword(kindTok.Kind)
	if ek == ast.EKInvalid {
		return ast.NoNodeID, false
	}
	p.advance()
	if kindTok.Kind == token.KwAnalysis || kindTok.Kind == token.KwVerification || kindTok.Kind == token.KwUse {
		if _, ok := p.expect(token.KwCase, diag.SynExpectKeyword, "expected 'case' after '"+kindTok.Kind.String()+"'"); !ok {
			return ast.NoNodeID, false
		}
	}
	payload.ElementKind = ek

	isDefinition := false
	if p.at(token.KwDef) {
		isDefinition = true
		p.advance()
	}

	if name, ok := p.parseOptionalName(relationshipStopwords...); ok {
		payload.Name, payload.HasName = name, true
	}

	// 'flow' is overloaded: a bare 'flow [name] from X to Y;' is an
	// individual flow connection, not a FlowConnectionDefinition/Usage —
	// the two share a keyword but nothing else of their shape.
	if ek == ast.EKFlow && !isDefinition && p.at(token.KwFrom) {
		return p.finishFlowConnection(start, payload.Name, payload.HasName)
	}

	if !isDefinition && p.at(token.Colon) {
		p.advance()
		payload.FeatureTypes = p.parseQualifiedNameList()
	}

	if !isDefinition && p.at(token.LBracket) {
		payload.Multiplicity = p.parseMultiplicityBounds()
	}

	if isDefinition {
		payload.Specializations = p.parseSpecializationList()
	} else {
		payload.Rel, payload.RelTarget = p.parseSingleRelationship()
	}

	if p.at(token.KwConjugate) {
		payload.Conjugate = true
		p.advance()
	}

	if p.at(token.KwDisjoint) {
		payload.DisjointTypes = p.parseDisjointClause()
	}

	if !isDefinition {
		if kind, ok := p.parseValueKind(); ok {
			payload.ValueKind = kind
			payload.Value = p.parseExpr()
		}
	}

	if p.at(token.LBrace) {
		payload.HasBody = true
		payload.Body = p.parseNamespaceBody()
	} else {
		p.wantSemicolon()
	}

	span := start.Cover(p.lastSpan)
	if isDefinition {
		return p.b.NewDefinition(span, payload), true
	}
	return p.b.NewUsage(span, payload), true
}

// parseQualifiedNameList parses a comma-separated list of qualified names,
// used for feature types (`: T, U`) and disjoint clauses.
func (p *Parser) parseQualifiedNameList() []ast.NodeID {
	var names []ast.NodeID
	for {
		qn, ok := p.parseQualifiedName()
		if ok {
			names = append(names, qn)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return names
}

// parseSpecializationList parses a definition's `:>' qn (',' qn)*` or
// `specializes qn (',' qn)*` inline specialization clause.
func (p *Parser) parseSpecializationList() []ast.NodeID {
	if !p.at(token.SubsetOp) && !p.at(token.KwSpecializes) {
		return nil
	}
	p.advance()
	return p.parseQualifiedNameList()
}

// parseSingleRelationship parses a usage's single optional feature
// relationship: `:>' qn`, `:>>' qn`, `subsets qn`, `redefines qn`, or
// `references qn`.
func (p *Parser) parseSingleRelationship() (ast.RelKind, ast.NodeID) {
	var rel ast.RelKind
	switch p.lx.Peek().Kind {
	case token.SubsetOp, token.KwSubsets, token.KwSpecializes:
		rel = ast.RelSubsets
	case token.RedefineOp, token.KwRedefines:
		rel = ast.RelRedefines
	case token.KwReferences:
		rel = ast.RelReferences
	default:
		return ast.RelNone, ast.NoNodeID
	}
	p.advance()
	target, ok := p.parseQualifiedName()
	if !ok {
		p.err(diag.SynBadRelationshipTarget, "expected a qualified name as relationship target")
		return ast.RelNone, ast.NoNodeID
	}
	return rel, target
}

// parseDisjointClause parses `disjoint [from] qn (',' qn)*`.
func (p *Parser) parseDisjointClause() []ast.NodeID {
	p.advance() // 'disjoint'
	if p.at(token.KwFrom) {
		p.advance()
	}
	return p.parseQualifiedNameList()
}

// parseValueKind reports which value-binding operator, if any, starts here.
func (p *Parser) parseValueKind() (ast.ValueKind, bool) {
	switch p.lx.Peek().Kind {
	case token.Assign:
		p.advance()
		return ast.ValueAssign, true
	case token.CoalesceAssign:
		p.advance()
		return ast.ValueDefault, true
	case token.ComputedAssign:
		p.advance()
		return ast.ValueComputed, true
	default:
		return ast.ValueNone, false
	}
}

// parseMultiplicityBounds parses `'[' bound ('..' bound)? ']'`, where bound
// is an integer literal (decimal/hex/bin/oct) or '*' for unbounded.
func (p *Parser) parseMultiplicityBounds() ast.NodeID {
	start := p.lx.Peek().Span
	p.advance() // '['

	lower, hasLower := p.parseMultiplicityBound()
	upper := ""
	if p.at(token.DotDot) {
		p.advance()
		upper, _ = p.parseMultiplicityBound()
	} else {
		// a single bound with no '..' is the upper bound; lower defaults to 0
		upper = lower
		lower, hasLower = "", false
	}

	p.expect(token.RBracket, diag.SynBadMultiplicity, "expected ']' to close multiplicity bounds")
	return p.b.NewMultiplicityBounds(start.Cover(p.lastSpan), lower, hasLower, upper)
}

func (p *Parser) parseMultiplicityBound() (string, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit, token.HexLit, token.BinLit, token.OctLit, token.Star:
		p.advance()
		return tok.Text, true
	default:
		p.err(diag.SynBadMultiplicity, "expected an integer literal or '*' in multiplicity bounds")
		return "", false
	}
}
