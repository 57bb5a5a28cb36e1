package ast

import "sysmlc/internal/source"

// TransitionPayload backs a TagTransition node. Accept, Guard, and DoEffect
// are independently optional — §9's open question treats the four optional
// segments (accept/guard/do/then) as commutative-optional in syntax only.
type TransitionPayload struct {
	Name    source.StringID
	HasName bool
	First   NodeID // state reference (QualifiedName)
	Accept  NodeID // event expression, or NoNodeID
	Guard   NodeID // guard expression, or NoNodeID
	DoEffect NodeID // effect action, or NoNodeID
	Then     NodeID // state reference (QualifiedName)
}

// SuccessionPayload backs a TagSuccession node: a chain of two or more steps.
type SuccessionPayload struct {
	Name    source.StringID
	HasName bool
	Steps   []NodeID
}

// ActionBodyPayload backs the remaining behavioral tags (Connector, Binding,
// Flow, EntryAction, ExitAction, DoAction, IfAction, WhileAction, ForAction,
// AssignAction, SendAction, AcceptAction, PerformAction, AssertAction). Each
// of these is, in the source corpus, a named statement wrapping a target
// reference, an optional via-port, and a nested body/operand list; giving
// them one shared payload (discriminated by the owning Node.Tag) avoids 14
// structurally-identical Go types for forms §3 lists but does not otherwise
// distinguish.
type ActionBodyPayload struct {
	Name    source.StringID
	HasName bool
	Target  NodeID // connector/flow/transition endpoint, send/accept event, assign lhs...
	Via     NodeID // 'via <port>' clause, or NoNodeID
	Guard   NodeID // if/while condition, or NoNodeID
	Operands []NodeID // for-loop iterable, assign rhs, perform args, nested body elements...
}

func (b *Builder) NewTransition(span source.Span, p TransitionPayload) NodeID {
	payload := b.Transitions.Allocate(p)
	id := b.Nodes.new(TagTransition, span, PayloadID(payload))
	b.LinkChildren(id, p.First, p.Accept, p.Guard, p.DoEffect, p.Then)
	return id
}

func (b *Builder) Transition(id NodeID) (*TransitionPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagTransition {
		return nil, false
	}
	return b.Transitions.Get(uint32(n.Payload)), true
}

func (b *Builder) NewSuccession(span source.Span, p SuccessionPayload) NodeID {
	payload := b.Successions.Allocate(p)
	id := b.Nodes.new(TagSuccession, span, PayloadID(payload))
	b.LinkChildren(id, p.Steps...)
	return id
}

func (b *Builder) Succession(id NodeID) (*SuccessionPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagSuccession {
		return nil, false
	}
	return b.Successions.Get(uint32(n.Payload)), true
}

// NewActionBody constructs any of the shared-shape behavioral tags.
func (b *Builder) NewActionBody(tag Tag, span source.Span, p ActionBodyPayload) NodeID {
	payload := b.ActionBodies.Allocate(p)
	id := b.Nodes.new(tag, span, PayloadID(payload))
	b.LinkChildren(id, p.Target, p.Via, p.Guard)
	b.LinkChildren(id, p.Operands...)
	return id
}

func (b *Builder) ActionBody(id NodeID) (*ActionBodyPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil {
		return nil, false
	}
	switch n.Tag {
	case TagConnector, TagBinding, TagFlow, TagEntryAction, TagExitAction, TagDoAction,
		TagIfAction, TagWhileAction, TagForAction, TagAssignAction, TagSendAction,
		TagAcceptAction, TagPerformAction, TagAssertAction:
		return b.ActionBodies.Get(uint32(n.Payload)), true
	default:
		return nil, false
	}
}
