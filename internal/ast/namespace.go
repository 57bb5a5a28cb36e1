package ast

import "sysmlc/internal/source"

// RootNamespacePayload backs the single TagRootNamespace node of a document.
type RootNamespacePayload struct {
	Elements []NodeID // Membership nodes: OwningMembership/ImportMembership/AliasMember
}

// PackageBodyPayload backs a TagPackageBody node.
type PackageBodyPayload struct {
	Name       source.StringID // NoStringID for an anonymous package
	HasName    bool
	IsLibrary  bool
	IsStandard bool
	Elements   []NodeID
}

// OwningMembershipPayload backs a TagOwningMembership node. Element is never
// NoNodeID — see the data-model invariant in §3.
type OwningMembershipPayload struct {
	Visibility    Visibility
	HasVisibility bool
	Element       NodeID
}

// ImportMembershipPayload backs a TagImportMembership node.
type ImportMembershipPayload struct {
	Visibility    Visibility
	HasVisibility bool
	IsAll         bool
	ImportRef     NodeID
}

// AliasMemberPayload backs a TagAliasMember node.
type AliasMemberPayload struct {
	Visibility    Visibility
	HasVisibility bool
	AliasName     source.StringID
	Target        NodeID // QualifiedName
}

func (b *Builder) NewRootNamespace(span source.Span, elements []NodeID) NodeID {
	payload := b.RootNamespaces.Allocate(RootNamespacePayload{Elements: elements})
	id := b.Nodes.new(TagRootNamespace, span, PayloadID(payload))
	b.LinkChildren(id, elements...)
	return id
}

func (b *Builder) RootNamespace(id NodeID) (*RootNamespacePayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagRootNamespace {
		return nil, false
	}
	return b.RootNamespaces.Get(uint32(n.Payload)), true
}

func (b *Builder) NewPackageBody(span source.Span, name source.StringID, hasName, isLibrary, isStandard bool, elements []NodeID) NodeID {
	payload := b.PackageBodies.Allocate(PackageBodyPayload{
		Name: name, HasName: hasName, IsLibrary: isLibrary, IsStandard: isStandard, Elements: elements,
	})
	id := b.Nodes.new(TagPackageBody, span, PayloadID(payload))
	b.LinkChildren(id, elements...)
	return id
}

func (b *Builder) PackageBody(id NodeID) (*PackageBodyPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagPackageBody {
		return nil, false
	}
	return b.PackageBodies.Get(uint32(n.Payload)), true
}

func (b *Builder) NewOwningMembership(span source.Span, vis Visibility, hasVis bool, element NodeID) NodeID {
	payload := b.OwningMemberships.Allocate(OwningMembershipPayload{Visibility: vis, HasVisibility: hasVis, Element: element})
	id := b.Nodes.new(TagOwningMembership, span, PayloadID(payload))
	b.SetContainer(element, id)
	return id
}

func (b *Builder) OwningMembership(id NodeID) (*OwningMembershipPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagOwningMembership {
		return nil, false
	}
	return b.OwningMemberships.Get(uint32(n.Payload)), true
}

func (b *Builder) NewImportMembership(span source.Span, vis Visibility, hasVis, isAll bool, importRef NodeID) NodeID {
	payload := b.ImportMemberships.Allocate(ImportMembershipPayload{
		Visibility: vis, HasVisibility: hasVis, IsAll: isAll, ImportRef: importRef,
	})
	id := b.Nodes.new(TagImportMembership, span, PayloadID(payload))
	b.SetContainer(importRef, id)
	return id
}

func (b *Builder) ImportMembership(id NodeID) (*ImportMembershipPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagImportMembership {
		return nil, false
	}
	return b.ImportMemberships.Get(uint32(n.Payload)), true
}

func (b *Builder) NewAliasMember(span source.Span, vis Visibility, hasVis bool, aliasName source.StringID, target NodeID) NodeID {
	payload := b.AliasMembers.Allocate(AliasMemberPayload{
		Visibility: vis, HasVisibility: hasVis, AliasName: aliasName, Target: target,
	})
	id := b.Nodes.new(TagAliasMember, span, PayloadID(payload))
	b.SetContainer(target, id)
	return id
}

func (b *Builder) AliasMember(id NodeID) (*AliasMemberPayload, bool) {
	n := b.Nodes.Get(id)
	if n == nil || n.Tag != TagAliasMember {
		return nil, false
	}
	return b.AliasMembers.Get(uint32(n.Payload)), true
}
