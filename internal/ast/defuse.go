package ast

import "sysmlc/internal/source"

// DefUsePayload backs both TagDefinition and TagUsage nodes. §3 groups all
// 23 definition kinds as sharing {name?, is_abstract?, specializations,
// disjoint_types?, body?}, and usages as the same shape plus feature-level
// fields (feature_types, multiplicity, modifiers, value-binding); rather
// than 46 near-identical Go struct types, one payload carries both, with
// ElementKind and the owning Node.Tag (Definition vs Usage) as
// discriminators. Usage-only fields are simply left at their zero value on
// a Definition.
type DefUsePayload struct {
	ElementKind ElementKind

	Name    source.StringID
	HasName bool

	IsAbstract      bool
	Specializations []NodeID // QualifiedName, ':>' comma list (definitions) or singular via RelKind (usages)
	DisjointTypes   []NodeID // QualifiedName

	HasBody bool
	Body    []NodeID // namespace elements; TypeBody (definitions) and FeatureBody (usages) share this shape

	// usage-only — zero-valued on a Definition
	FeatureTypes []NodeID // QualifiedName, ':' comma list

	Multiplicity NodeID // MultiplicityBounds, or NoNodeID

	Visibility    Visibility
	HasVisibility bool
	Direction     Direction

	Readonly bool
	Derived  bool
	Ref      bool
	End      bool
	Conjugate bool

	// StateDefinition/StateUsage only
	IsParallel bool

	Rel       RelKind
	RelTarget NodeID // QualifiedName

	ValueKind ValueKind
	Value     NodeID // expression
}

func (b *Builder) newDefUse(tag Tag, span source.Span, p DefUsePayload) NodeID {
	payload := b.DefUses.Allocate(p)
	id := b.Nodes.new(tag, span, PayloadID(payload))
	b.LinkChildren(id, p.Specializations...)
	b.LinkChildren(id, p.DisjointTypes...)
	b.LinkChildren(id, p.Body...)
	b.LinkChildren(id, p.FeatureTypes...)
	b.SetContainer(p.Multiplicity, id)
	b.SetContainer(p.RelTarget, id)
	b.SetContainer(p.Value, id)
	return id
}

// NewDefinition constructs a TagDefinition node.
func (b *Builder) NewDefinition(span source.Span, p DefUsePayload) NodeID {
	return b.newDefUse(TagDefinition, span, p)
}

// NewUsage constructs a TagUsage node.
func (b *Builder) NewUsage(span source.Span, p DefUsePayload) NodeID {
	return b.newDefUse(TagUsage, span, p)
}

func (b *Builder) DefUse(id NodeID) (*DefUsePayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || (n.Tag != TagDefinition && n.Tag != TagUsage) {
		return nil, false
	}
	return b.DefUses.Get(uint32(n.Payload)), true
}

// IsDefinition reports whether id names a TagDefinition node.
func (b *Builder) IsDefinition(id NodeID) bool {
	n := b.Nodes.Get(id)
	return n != nil && n.Tag == TagDefinition
}

// IsUsage reports whether id names a TagUsage node.
func (b *Builder) IsUsage(id NodeID) bool {
	n := b.Nodes.Get(id)
	return n != nil && n.Tag == TagUsage
}
