package symbols

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// nameOf reports the name carried by any node family that may appear as a
// named namespace member. Zero value (NoStringID, false) for node kinds that
// are never named or that the grammar produced anonymously.
func nameOf(b *ast.Builder, id ast.NodeID) (source.StringID, bool) {
	n := b.Nodes.Get(id)
	if n == nil {
		return source.NoStringID, false
	}
	switch n.Tag {
	case ast.TagDefinition, ast.TagUsage:
		if p, ok := b.DefUse(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagPackageBody:
		if p, ok := b.PackageBody(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagTransition:
		if p, ok := b.Transition(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagSuccession:
		if p, ok := b.Succession(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagConnector, ast.TagBinding, ast.TagFlow, ast.TagEntryAction, ast.TagExitAction,
		ast.TagDoAction, ast.TagIfAction, ast.TagWhileAction, ast.TagForAction, ast.TagAssignAction,
		ast.TagSendAction, ast.TagAcceptAction, ast.TagPerformAction, ast.TagAssertAction:
		if p, ok := b.ActionBody(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagInlineMetadata:
		if p, ok := b.InlineMetadata(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagComment:
		if p, ok := b.Comment(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagTextualRepresentation:
		if p, ok := b.TextualRepresentation(id); ok {
			return p.Name, p.HasName
		}
	case ast.TagDocumentation:
		if p, ok := b.Documentation(id); ok {
			return p.Name, p.HasName
		}
	}
	return source.NoStringID, false
}

func symbolKindOf(b *ast.Builder, id ast.NodeID) SymbolKind {
	n := b.Nodes.Get(id)
	if n == nil {
		return SymbolInvalid
	}
	switch n.Tag {
	case ast.TagDefinition:
		return SymbolDefinition
	case ast.TagUsage:
		return SymbolUsage
	case ast.TagPackageBody:
		return SymbolPackage
	default:
		return SymbolOther
	}
}

// elementsOf returns the membership-list children of container, if any, and
// whether container is a kind §4.3 descends into at all. Only Definition and
// Usage bodies, package bodies, the root namespace, and the namespace-member
// lists nested in simple action statements/if-actions carry the uniform
// "list of Membership nodes" shape the rest of this package assumes — while-
// and for-actions interleave a guard/iterable expression ahead of their body
// and are deliberately left unindexed.
func elementsOf(b *ast.Builder, container ast.NodeID) ([]ast.NodeID, bool) {
	n := b.Nodes.Get(container)
	if n == nil {
		return nil, false
	}
	switch n.Tag {
	case ast.TagRootNamespace:
		p, ok := b.RootNamespace(container)
		if !ok {
			return nil, false
		}
		return p.Elements, true
	case ast.TagPackageBody:
		p, ok := b.PackageBody(container)
		if !ok {
			return nil, false
		}
		return p.Elements, true
	case ast.TagDefinition, ast.TagUsage:
		p, ok := b.DefUse(container)
		if !ok || !p.HasBody {
			return nil, false
		}
		return p.Body, true
	case ast.TagInlineMetadata:
		p, ok := b.InlineMetadata(container)
		if !ok || !p.HasBody {
			return nil, false
		}
		return p.Body, true
	case ast.TagEntryAction, ast.TagExitAction, ast.TagDoAction, ast.TagPerformAction,
		ast.TagAssertAction, ast.TagAcceptAction, ast.TagIfAction:
		p, ok := b.ActionBody(container)
		if !ok || len(p.Operands) == 0 {
			return nil, false
		}
		return p.Operands, true
	}
	return nil, false
}

func scopeKindFor(t ast.Tag) ScopeKind {
	switch t {
	case ast.TagRootNamespace:
		return ScopeDocument
	case ast.TagPackageBody:
		return ScopePackage
	case ast.TagDefinition, ast.TagUsage, ast.TagInlineMetadata:
		return ScopeBody
	default:
		return ScopeAction
	}
}
