package ast

import "sysmlc/internal/source"

// QualifiedNamePayload backs a TagQualifiedName node. Parts.len >= 1 is a
// construction invariant for well-formed input; the validator re-checks it
// (checks can still see zero parts on recovered/partial input).
type QualifiedNamePayload struct {
	Parts []source.StringID // simple identifiers or unrestricted names, each interned without surrounding quotes
}

// ImportRefPayload backs a TagImportRef node: the path plus its wildcard
// suffix, if any (`::*` or `::**`).
type ImportRefPayload struct {
	Path        NodeID // QualifiedName
	IsWildcard  bool   // ::*
	IsRecursive bool   // ::**
}

// MultiplicityBoundsPayload backs a TagMultiplicityBounds node. Bounds are
// stored as their source lexeme so `0xFF`/`*` notation survives unparsed;
// the validator is responsible for numeric interpretation.
type MultiplicityBoundsPayload struct {
	LowerBound string // "" when absent (defaults to "0" per validation rule 6)
	HasLower   bool
	UpperBound string
}

func (b *Builder) NewQualifiedName(span source.Span, parts []source.StringID) NodeID {
	payload := b.QualifiedNames.Allocate(QualifiedNamePayload{Parts: parts})
	return b.Nodes.new(TagQualifiedName, span, PayloadID(payload))
}

func (b *Builder) QualifiedName(id NodeID) (*QualifiedNamePayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagQualifiedName {
		return nil, false
	}
	return b.QualifiedNames.Get(uint32(n.Payload)), true
}

func (b *Builder) NewImportRef(span source.Span, path NodeID, isWildcard, isRecursive bool) NodeID {
	payload := b.ImportRefs.Allocate(ImportRefPayload{Path: path, IsWildcard: isWildcard, IsRecursive: isRecursive})
	id := b.Nodes.new(TagImportRef, span, PayloadID(payload))
	b.SetContainer(path, id)
	return id
}

func (b *Builder) ImportRef(id NodeID) (*ImportRefPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagImportRef {
		return nil, false
	}
	return b.ImportRefs.Get(uint32(n.Payload)), true
}

func (b *Builder) NewMultiplicityBounds(span source.Span, lower string, hasLower bool, upper string) NodeID {
	payload := b.MultiplicityBoundsArena.Allocate(MultiplicityBoundsPayload{LowerBound: lower, HasLower: hasLower, UpperBound: upper})
	return b.Nodes.new(TagMultiplicityBounds, span, PayloadID(payload))
}

func (b *Builder) MultiplicityBounds(id NodeID) (*MultiplicityBoundsPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagMultiplicityBounds {
		return nil, false
	}
	return b.MultiplicityBoundsArena.Get(uint32(n.Payload)), true
}
