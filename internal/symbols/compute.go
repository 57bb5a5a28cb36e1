package symbols

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// Result bundles everything §4.3's two traversals produce for one document,
// plus the import bindings §4.4.1 folds into the scopes they were declared
// in. It is computed once per document, after parsing — Compute is the
// pipeline's ComputedScopes stage.
type Result struct {
	Table       *Table
	Root        ast.NodeID
	Exports     *Exports // public-only, document-wide
	AllExports  *Exports // unfiltered by visibility, for `import all`
	LocalScopes map[ast.NodeID]ScopeID
	Strings     *source.Interner
}

type pendingImport struct {
	scope ScopeID
	node  ast.NodeID // ImportMembership
}

type computer struct {
	b           *ast.Builder
	strings     *source.Interner
	table       *Table
	exports     *Exports
	all         *Exports
	localScopes map[ast.NodeID]ScopeID
	pending     []pendingImport
}

// Compute runs the exports traversal, the local-scopes traversal, and import
// binding for one parsed document's root namespace.
func Compute(b *ast.Builder, root ast.NodeID, strings *source.Interner) *Result {
	c := &computer{
		b:           b,
		strings:     strings,
		table:       NewTable(Hints{}, strings),
		exports:     newExports(),
		all:         newExports(),
		localScopes: make(map[ast.NodeID]ScopeID),
	}
	c.buildContainer(root, NoScopeID, true)
	c.resolveImports()

	return &Result{
		Table:       c.table,
		Root:        root,
		Exports:     c.exports,
		AllExports:  c.all,
		LocalScopes: c.localScopes,
		Strings:     strings,
	}
}

// buildContainer allocates the scope for one namespace-shaped node and
// processes its direct members. exported threads whether this subtree is
// still within an unbroken chain of public memberships — §4.3's export
// traversal stops descending past the first private/protected one, while the
// local-scope traversal that builds NameIndex always continues.
func (c *computer) buildContainer(container ast.NodeID, parent ScopeID, exported bool) ScopeID {
	elements, ok := elementsOf(c.b, container)
	if !ok {
		return NoScopeID
	}
	n := c.b.Nodes.Get(container)
	scopeID := c.table.Scopes.New(scopeKindFor(n.Tag), parent, container, n.Span)
	c.localScopes[container] = scopeID
	for _, el := range elements {
		c.handleElement(el, scopeID, container, exported)
	}
	return scopeID
}

func (c *computer) handleElement(id ast.NodeID, scope ScopeID, parent ast.NodeID, exported bool) {
	n := c.b.Nodes.Get(id)
	if n == nil {
		return
	}
	switch n.Tag {
	case ast.TagOwningMembership:
		p, ok := c.b.OwningMembership(id)
		if !ok {
			return
		}
		pub := exported && (!p.HasVisibility || p.Visibility == ast.VisPublic)
		c.declareElement(p.Element, scope, parent, pub)
	case ast.TagAliasMember:
		p, ok := c.b.AliasMember(id)
		if !ok {
			return
		}
		pub := exported && (!p.HasVisibility || p.Visibility == ast.VisPublic)
		c.declare(scope, parent, p.AliasName, SymbolAlias, id, n.Span, pub)
	case ast.TagImportMembership:
		c.pending = append(c.pending, pendingImport{scope: scope, node: id})
	default:
		// An unwrapped nested container, e.g. the bare IfAction an else-if
		// chain appends directly into its parent's Operands.
		c.buildContainer(id, scope, false)
	}
}

func (c *computer) declareElement(element ast.NodeID, scope ScopeID, parent ast.NodeID, pub bool) {
	name, hasName := nameOf(c.b, element)
	if hasName {
		n := c.b.Nodes.Get(element)
		c.declare(scope, parent, name, symbolKindOf(c.b, element), element, n.Span, pub)
	}

	t := c.b.Nodes.Get(element).Tag
	childExported := pub && (t == ast.TagDefinition || t == ast.TagPackageBody)
	c.buildContainer(element, scope, childExported)
}

func (c *computer) declare(scope ScopeID, parent ast.NodeID, name source.StringID, kind SymbolKind, node ast.NodeID, span source.Span, pub bool) {
	flags := SymbolFlags(0)
	if pub {
		flags |= SymbolFlagPublic
	}
	c.table.Declare(scope, Symbol{Name: name, Kind: kind, Node: node, Scope: scope, Span: span, Flags: flags})

	nameStr := c.strings.MustLookup(name)
	entry := ExportEntry{Name: nameStr, NameID: name, Node: node, Span: span}
	c.all.add(parent, entry) // unfiltered, for `import all` same-document bypass
	if pub {
		c.exports.add(parent, entry)
	}
}
