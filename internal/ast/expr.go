package ast

import (
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// LiteralPayload backs a TagExprLiteral node: true/false/null, an integer in
// any of the four bases, a real, or a string. Kind names the literal's
// lexer token kind; Text is its exact lexeme (base prefix retained).
type LiteralPayload struct {
	Kind token.Kind
	Text string
}

// NamePayload backs a TagExprName node: a qualified-name used as a value
// (feature reference, type reference inside an expression, ...).
type NamePayload struct {
	Ref NodeID // QualifiedName
}

// UnaryPayload backs a TagExprUnary node: +, -, !, not, ~.
type UnaryPayload struct {
	Op      token.Kind
	Operand NodeID
}

// BinaryPayload backs a TagExprBinary node: arithmetic, comparison, and
// logical binary operators (+, -, *, /, %, **, ==, !=, ===, !==, <, <=, >,
// >=, and, or, xor, implies).
type BinaryPayload struct {
	Op    token.Kind
	Left  NodeID
	Right NodeID
}

// ConditionalPayload backs a TagExprConditional node: `cond ? then : else`.
type ConditionalPayload struct {
	Cond NodeID
	Then NodeID
	Else NodeID
}

// NullCoalescePayload backs a TagExprNullCoalesce node: `left ?? right`.
type NullCoalescePayload struct {
	Left  NodeID
	Right NodeID
}

// RangePayload backs a TagExprRange node: `low .. high`.
type RangePayload struct {
	Low  NodeID
	High NodeID
}

// FeatureChainPayload backs a TagExprFeatureChain node: `base.name`.
type FeatureChainPayload struct {
	Base NodeID
	Name source.StringID
}

// InvocationPayload backs a TagExprInvocation node: `callee(args...)`.
type InvocationPayload struct {
	Callee NodeID
	Args   []NodeID
}

// ExtentPayload backs a TagExprExtent node: `all T`.
type ExtentPayload struct {
	Type NodeID // QualifiedName
}

// ParenPayload backs a TagExprParen node: `(inner)`.
type ParenPayload struct {
	Inner NodeID
}

// ClassificationPayload backs a TagExprClassification node: hastype, istype,
// as, @, meta. Type is absent (NoNodeID) for forms that do not take one.
type ClassificationPayload struct {
	Op      token.Kind
	Subject NodeID
	Type    NodeID
}

func (b *Builder) NewExprLiteral(span source.Span, kind token.Kind, text string) NodeID {
	payload := b.Literals.Allocate(LiteralPayload{Kind: kind, Text: text})
	return b.Nodes.new(TagExprLiteral, span, PayloadID(payload))
}

func (b *Builder) ExprLiteral(id NodeID) (*LiteralPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprLiteral {
		return nil, false
	}
	return b.Literals.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprName(span source.Span, ref NodeID) NodeID {
	payload := b.Names.Allocate(NamePayload{Ref: ref})
	id := b.Nodes.new(TagExprName, span, PayloadID(payload))
	b.SetContainer(ref, id)
	return id
}

func (b *Builder) ExprName(id NodeID) (*NamePayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprName {
		return nil, false
	}
	return b.Names.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprUnary(span source.Span, op token.Kind, operand NodeID) NodeID {
	payload := b.Unaries.Allocate(UnaryPayload{Op: op, Operand: operand})
	id := b.Nodes.new(TagExprUnary, span, PayloadID(payload))
	b.SetContainer(operand, id)
	return id
}

func (b *Builder) ExprUnary(id NodeID) (*UnaryPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprUnary {
		return nil, false
	}
	return b.Unaries.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprBinary(span source.Span, op token.Kind, left, right NodeID) NodeID {
	payload := b.Binaries.Allocate(BinaryPayload{Op: op, Left: left, Right: right})
	id := b.Nodes.new(TagExprBinary, span, PayloadID(payload))
	b.LinkChildren(id, left, right)
	return id
}

func (b *Builder) ExprBinary(id NodeID) (*BinaryPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprBinary {
		return nil, false
	}
	return b.Binaries.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprConditional(span source.Span, cond, then, els NodeID) NodeID {
	payload := b.Conditionals.Allocate(ConditionalPayload{Cond: cond, Then: then, Else: els})
	id := b.Nodes.new(TagExprConditional, span, PayloadID(payload))
	b.LinkChildren(id, cond, then, els)
	return id
}

func (b *Builder) ExprConditional(id NodeID) (*ConditionalPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprConditional {
		return nil, false
	}
	return b.Conditionals.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprNullCoalesce(span source.Span, left, right NodeID) NodeID {
	payload := b.NullCoalesces.Allocate(NullCoalescePayload{Left: left, Right: right})
	id := b.Nodes.new(TagExprNullCoalesce, span, PayloadID(payload))
	b.LinkChildren(id, left, right)
	return id
}

func (b *Builder) ExprNullCoalesce(id NodeID) (*NullCoalescePayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprNullCoalesce {
		return nil, false
	}
	return b.NullCoalesces.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprRange(span source.Span, low, high NodeID) NodeID {
	payload := b.Ranges.Allocate(RangePayload{Low: low, High: high})
	id := b.Nodes.new(TagExprRange, span, PayloadID(payload))
	b.LinkChildren(id, low, high)
	return id
}

func (b *Builder) ExprRange(id NodeID) (*RangePayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprRange {
		return nil, false
	}
	return b.Ranges.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprFeatureChain(span source.Span, base NodeID, name source.StringID) NodeID {
	payload := b.FeatureChains.Allocate(FeatureChainPayload{Base: base, Name: name})
	id := b.Nodes.new(TagExprFeatureChain, span, PayloadID(payload))
	b.SetContainer(base, id)
	return id
}

func (b *Builder) ExprFeatureChain(id NodeID) (*FeatureChainPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprFeatureChain {
		return nil, false
	}
	return b.FeatureChains.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprInvocation(span source.Span, callee NodeID, args []NodeID) NodeID {
	payload := b.Invocations.Allocate(InvocationPayload{Callee: callee, Args: args})
	id := b.Nodes.new(TagExprInvocation, span, PayloadID(payload))
	b.SetContainer(callee, id)
	b.LinkChildren(id, args...)
	return id
}

func (b *Builder) ExprInvocation(id NodeID) (*InvocationPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprInvocation {
		return nil, false
	}
	return b.Invocations.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprExtent(span source.Span, typ NodeID) NodeID {
	payload := b.Extents.Allocate(ExtentPayload{Type: typ})
	id := b.Nodes.new(TagExprExtent, span, PayloadID(payload))
	b.SetContainer(typ, id)
	return id
}

func (b *Builder) ExprExtent(id NodeID) (*ExtentPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprExtent {
		return nil, false
	}
	return b.Extents.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprParen(span source.Span, inner NodeID) NodeID {
	payload := b.Parens.Allocate(ParenPayload{Inner: inner})
	id := b.Nodes.new(TagExprParen, span, PayloadID(payload))
	b.SetContainer(inner, id)
	return id
}

func (b *Builder) ExprParen(id NodeID) (*ParenPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprParen {
		return nil, false
	}
	return b.Parens.Get(uint32(n.Payload)), true
}

func (b *Builder) NewExprClassification(span source.Span, op token.Kind, subject, typ NodeID) NodeID {
	payload := b.Classifications.Allocate(ClassificationPayload{Op: op, Subject: subject, Type: typ})
	id := b.Nodes.new(TagExprClassification, span, PayloadID(payload))
	b.LinkChildren(id, subject, typ)
	return id
}

func (b *Builder) ExprClassification(id NodeID) (*ClassificationPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagExprClassification {
		return nil, false
	}
	return b.Classifications.Get(uint32(n.Payload)), true
}
