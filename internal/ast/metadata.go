package ast

import "sysmlc/internal/source"

// DocumentationPayload backs a TagDocumentation node (`doc [name] /** ... */`).
type DocumentationPayload struct {
	Name    source.StringID
	HasName bool
	Body    string // the doc comment's text, quotes/delimiters stripped
}

// CommentPayload backs a TagComment node (`comment [name] [about X] [locale "..."] /** ... */`).
type CommentPayload struct {
	Name       source.StringID
	HasName    bool
	About      []NodeID // QualifiedName targets, or empty for an unattached comment
	Language   source.StringID
	HasLanguage bool
	Body       string
}

// TextualRepresentationPayload backs a TagTextualRepresentation node
// (`rep [name] language "..." /* ... */`).
type TextualRepresentationPayload struct {
	Name     source.StringID
	HasName  bool
	Language source.StringID
	Body     string
}

// PrefixedMetadataPayload backs a TagPrefixedMetadata node: `#Type` applied
// to the following element.
type PrefixedMetadataPayload struct {
	Type NodeID // QualifiedName
}

// InlineMetadataPayload backs a TagInlineMetadata node: `@name? : Type? { body? }`.
type InlineMetadataPayload struct {
	Name    source.StringID
	HasName bool
	Type    NodeID // QualifiedName, or NoNodeID
	HasBody bool
	Body    []NodeID
}

func (b *Builder) NewDocumentation(span source.Span, name source.StringID, hasName bool, body string) NodeID {
	payload := b.Documentations.Allocate(DocumentationPayload{Name: name, HasName: hasName, Body: body})
	return b.Nodes.new(TagDocumentation, span, PayloadID(payload))
}

func (b *Builder) Documentation(id NodeID) (*DocumentationPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagDocumentation {
		return nil, false
	}
	return b.Documentations.Get(uint32(n.Payload)), true
}

func (b *Builder) NewComment(span source.Span, p CommentPayload) NodeID {
	payload := b.Comments.Allocate(p)
	id := b.Nodes.new(TagComment, span, PayloadID(payload))
	b.LinkChildren(id, p.About...)
	return id
}

func (b *Builder) Comment(id NodeID) (*CommentPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagComment {
		return nil, false
	}
	return b.Comments.Get(uint32(n.Payload)), true
}

func (b *Builder) NewTextualRepresentation(span source.Span, p TextualRepresentationPayload) NodeID {
	payload := b.TextualReps.Allocate(p)
	return b.Nodes.new(TagTextualRepresentation, span, PayloadID(payload))
}

func (b *Builder) TextualRepresentation(id NodeID) (*TextualRepresentationPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagTextualRepresentation {
		return nil, false
	}
	return b.TextualReps.Get(uint32(n.Payload)), true
}

func (b *Builder) NewPrefixedMetadata(span source.Span, typ NodeID) NodeID {
	payload := b.PrefixedMetadatas.Allocate(PrefixedMetadataPayload{Type: typ})
	id := b.Nodes.new(TagPrefixedMetadata, span, PayloadID(payload))
	b.SetContainer(typ, id)
	return id
}

func (b *Builder) PrefixedMetadata(id NodeID) (*PrefixedMetadataPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagPrefixedMetadata {
		return nil, false
	}
	return b.PrefixedMetadatas.Get(uint32(n.Payload)), true
}

func (b *Builder) NewInlineMetadata(span source.Span, p InlineMetadataPayload) NodeID {
	payload := b.InlineMetadatas.Allocate(p)
	id := b.Nodes.new(TagInlineMetadata, span, PayloadID(payload))
	b.SetContainer(p.Type, id)
	b.LinkChildren(id, p.Body...)
	return id
}

func (b *Builder) InlineMetadata(id NodeID) (*InlineMetadataPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagInlineMetadata {
		return nil, false
	}
	return b.InlineMetadatas.Get(uint32(n.Payload)), true
}
