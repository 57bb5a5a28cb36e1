package symbols

import "sysmlc/internal/ast"

// resolveImports binds the names introduced by every import/alias-adjacent
// ImportMembership collected during the main walk, per §4.4.1. It runs after
// the whole document has been walked so that document-wide exports are
// complete — import order is not significant.
func (c *computer) resolveImports() {
	for _, pi := range c.pending {
		c.resolveOneImport(pi)
	}
}

func (c *computer) resolveOneImport(pi pendingImport) {
	p, ok := c.b.ImportMembership(pi.node)
	if !ok {
		return
	}
	ref, ok := c.b.ImportRef(p.ImportRef)
	if !ok {
		return
	}
	qn, ok := c.b.QualifiedName(ref.Path)
	if !ok || len(qn.Parts) == 0 {
		return
	}

	target := c.resolvePathFrom(pi.node, qn.Parts)

	if p.IsAll {
		// `import all X` — X::* extended with same-document private/protected
		// members, since AllExports is unfiltered by construction.
		if target.IsValid() {
			for _, e := range c.all.Children[target] {
				c.bindImport(pi.scope, e)
			}
		}
		return
	}

	switch {
	case ref.IsRecursive:
		if target.IsValid() {
			for _, e := range c.exports.descendants(target) {
				c.bindImport(pi.scope, e)
			}
		}
	case ref.IsWildcard:
		if target.IsValid() {
			for _, e := range c.exports.Children[target] {
				c.bindImport(pi.scope, e)
			}
		}
	default:
		// `import X::Y` — a single simple name Y bound to X::Y.
		if target.IsValid() {
			last := qn.Parts[len(qn.Parts)-1]
			n := c.b.Nodes.Get(target)
			c.declare(pi.scope, ast.NoNodeID, last, SymbolImported, target, n.Span, false)
		}
	}
}

func (c *computer) bindImport(scope ScopeID, e ExportEntry) {
	n := c.b.Nodes.Get(e.Node)
	if n == nil {
		return
	}
	c.declare(scope, ast.NoNodeID, e.NameID, SymbolImported, e.Node, n.Span, false)
}
