package ast

// Hints sizes a Builder's arenas up front. Zero fields fall back to the
// package defaults below; callers that know roughly how large a document is
// (line count, prior parse) can avoid the early reallocations.
type Hints struct {
	Nodes    uint
	DefUses  uint
	Exprs    uint
	Metadata uint
}

// Builder owns every arena an AST needs: the single generic Node arena plus
// one payload arena per node family. A Builder constructs exactly one
// document's AST; its arenas are discarded together when the document is
// removed from the driver's index.
type Builder struct {
	Nodes *Nodes

	RootNamespaces    *Arena[RootNamespacePayload]
	PackageBodies     *Arena[PackageBodyPayload]
	OwningMemberships *Arena[OwningMembershipPayload]
	ImportMemberships *Arena[ImportMembershipPayload]
	AliasMembers      *Arena[AliasMemberPayload]

	QualifiedNames          *Arena[QualifiedNamePayload]
	ImportRefs              *Arena[ImportRefPayload]
	MultiplicityBoundsArena *Arena[MultiplicityBoundsPayload]

	DefUses *Arena[DefUsePayload]

	Transitions  *Arena[TransitionPayload]
	Successions  *Arena[SuccessionPayload]
	ActionBodies *Arena[ActionBodyPayload]

	Literals        *Arena[LiteralPayload]
	Names           *Arena[NamePayload]
	Unaries         *Arena[UnaryPayload]
	Binaries        *Arena[BinaryPayload]
	Conditionals    *Arena[ConditionalPayload]
	NullCoalesces   *Arena[NullCoalescePayload]
	Ranges          *Arena[RangePayload]
	FeatureChains   *Arena[FeatureChainPayload]
	Invocations     *Arena[InvocationPayload]
	Extents         *Arena[ExtentPayload]
	Parens          *Arena[ParenPayload]
	Classifications *Arena[ClassificationPayload]

	Documentations    *Arena[DocumentationPayload]
	Comments          *Arena[CommentPayload]
	TextualReps       *Arena[TextualRepresentationPayload]
	PrefixedMetadatas *Arena[PrefixedMetadataPayload]
	InlineMetadatas   *Arena[InlineMetadataPayload]
}

func NewBuilder(hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	if hints.DefUses == 0 {
		hints.DefUses = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 7
	}
	if hints.Metadata == 0 {
		hints.Metadata = 1 << 5
	}
	return &Builder{
		Nodes: NewNodes(hints.Nodes),

		RootNamespaces:    NewArena[RootNamespacePayload](1),
		PackageBodies:     NewArena[PackageBodyPayload](hints.DefUses),
		OwningMemberships: NewArena[OwningMembershipPayload](hints.DefUses),
		ImportMemberships: NewArena[ImportMembershipPayload](hints.Metadata),
		AliasMembers:      NewArena[AliasMemberPayload](hints.Metadata),

		QualifiedNames:          NewArena[QualifiedNamePayload](hints.DefUses),
		ImportRefs:              NewArena[ImportRefPayload](hints.Metadata),
		MultiplicityBoundsArena: NewArena[MultiplicityBoundsPayload](hints.DefUses),

		DefUses: NewArena[DefUsePayload](hints.DefUses),

		Transitions:  NewArena[TransitionPayload](hints.Metadata),
		Successions:  NewArena[SuccessionPayload](hints.Metadata),
		ActionBodies: NewArena[ActionBodyPayload](hints.DefUses),

		Literals:        NewArena[LiteralPayload](hints.Exprs),
		Names:           NewArena[NamePayload](hints.Exprs),
		Unaries:         NewArena[UnaryPayload](hints.Metadata),
		Binaries:        NewArena[BinaryPayload](hints.Exprs),
		Conditionals:    NewArena[ConditionalPayload](hints.Metadata),
		NullCoalesces:   NewArena[NullCoalescePayload](hints.Metadata),
		Ranges:          NewArena[RangePayload](hints.Metadata),
		FeatureChains:   NewArena[FeatureChainPayload](hints.Exprs),
		Invocations:     NewArena[InvocationPayload](hints.Metadata),
		Extents:         NewArena[ExtentPayload](hints.Metadata),
		Parens:          NewArena[ParenPayload](hints.Metadata),
		Classifications: NewArena[ClassificationPayload](hints.Metadata),

		Documentations:    NewArena[DocumentationPayload](hints.Metadata),
		Comments:          NewArena[CommentPayload](hints.Metadata),
		TextualReps:       NewArena[TextualRepresentationPayload](hints.Metadata),
		PrefixedMetadatas: NewArena[PrefixedMetadataPayload](hints.Metadata),
		InlineMetadatas:   NewArena[InlineMetadataPayload](hints.Metadata),
	}
}

// Children returns node's directly-owned child nodes in a fixed per-Tag
// field order; for a Definition/Usage that is specializations, disjoint
// types, feature types, body members, then multiplicity, relationship
// target and value, which is not necessarily source order. It is
// the single dispatch point Walk and the container back-link invariant check
// rely on, so every constructor that attaches a child via SetContainer or
// LinkChildren must have a matching case here.
func (b *Builder) Children(id NodeID) []NodeID {
	n := b.Nodes.Get(id)
	if n == nil {
		return nil
	}
	switch n.Tag {
	case TagRootNamespace:
		if p := b.RootNamespaces.Get(uint32(n.Payload)); p != nil {
			return p.Elements
		}
	case TagPackageBody:
		if p := b.PackageBodies.Get(uint32(n.Payload)); p != nil {
			return p.Elements
		}
	case TagOwningMembership:
		if p := b.OwningMemberships.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Element)
		}
	case TagImportMembership:
		if p := b.ImportMemberships.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.ImportRef)
		}
	case TagAliasMember:
		if p := b.AliasMembers.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Target)
		}
	case TagImportRef:
		if p := b.ImportRefs.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Path)
		}
	case TagDefinition, TagUsage:
		if p := b.DefUses.Get(uint32(n.Payload)); p != nil {
			children := append([]NodeID{}, p.Specializations...)
			children = append(children, p.DisjointTypes...)
			children = append(children, p.FeatureTypes...)
			children = append(children, p.Body...)
			children = append(children, nonNil(p.Multiplicity, p.RelTarget, p.Value)...)
			return children
		}
	case TagTransition:
		if p := b.Transitions.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.First, p.Accept, p.Guard, p.DoEffect, p.Then)
		}
	case TagSuccession:
		if p := b.Successions.Get(uint32(n.Payload)); p != nil {
			return p.Steps
		}
	case TagConnector, TagBinding, TagFlow, TagEntryAction, TagExitAction, TagDoAction,
		TagIfAction, TagWhileAction, TagForAction, TagAssignAction, TagSendAction,
		TagAcceptAction, TagPerformAction, TagAssertAction:
		if p := b.ActionBodies.Get(uint32(n.Payload)); p != nil {
			children := nonNil(p.Target, p.Via, p.Guard)
			return append(children, p.Operands...)
		}
	case TagExprName:
		if p := b.Names.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Ref)
		}
	case TagExprUnary:
		if p := b.Unaries.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Operand)
		}
	case TagExprBinary:
		if p := b.Binaries.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Left, p.Right)
		}
	case TagExprConditional:
		if p := b.Conditionals.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Cond, p.Then, p.Else)
		}
	case TagExprNullCoalesce:
		if p := b.NullCoalesces.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Left, p.Right)
		}
	case TagExprRange:
		if p := b.Ranges.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Low, p.High)
		}
	case TagExprFeatureChain:
		if p := b.FeatureChains.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Base)
		}
	case TagExprInvocation:
		if p := b.Invocations.Get(uint32(n.Payload)); p != nil {
			return append(nonNil(p.Callee), p.Args...)
		}
	case TagExprExtent:
		if p := b.Extents.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Type)
		}
	case TagExprParen:
		if p := b.Parens.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Inner)
		}
	case TagExprClassification:
		if p := b.Classifications.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Subject, p.Type)
		}
	case TagComment:
		if p := b.Comments.Get(uint32(n.Payload)); p != nil {
			return p.About
		}
	case TagPrefixedMetadata:
		if p := b.PrefixedMetadatas.Get(uint32(n.Payload)); p != nil {
			return nonNil(p.Type)
		}
	case TagInlineMetadata:
		if p := b.InlineMetadatas.Get(uint32(n.Payload)); p != nil {
			return append(nonNil(p.Type), p.Body...)
		}
	}
	return nil
}

func nonNil(ids ...NodeID) []NodeID {
	out := make([]NodeID, 0, len(ids))
	for _, id := range ids {
		if id.IsValid() {
			out = append(out, id)
		}
	}
	return out
}
