package symbols

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

const maxAliasHops = 32 // cycle guard for alias chains

// Lookup resolves qualified-name references against one document's computed
// Result, implementing §4.4's Scope Provider.
type Lookup struct {
	b       *ast.Builder
	exports *Exports
	all     *Exports
	local   map[ast.NodeID]ScopeID
	table   *Table
}

// NewLookup builds a Lookup over an already-computed Result.
func NewLookup(b *ast.Builder, r *Result) *Lookup {
	return &Lookup{b: b, exports: r.Exports, all: r.AllExports, local: r.LocalScopes, table: r.Table}
}

// Resolve walks parts segment by segment starting from the scope enclosing
// from. It returns the node the resolved prefix denotes and how many parts
// were consumed; n < len(parts) means resolution stopped at the first
// segment that had no match, per §4.4's "later segments stay unresolved
// without aborting the document" rule.
func (l *Lookup) Resolve(from ast.NodeID, parts []source.StringID) (ast.NodeID, int) {
	if len(parts) == 0 {
		return ast.NoNodeID, 0
	}
	target, ok := l.resolveFirst(from, parts[0])
	if !ok {
		return ast.NoNodeID, 0
	}
	target = l.followAlias(target)
	for i := 1; i < len(parts); i++ {
		next, ok := l.childNamed(target, parts[i])
		if !ok {
			return target, i
		}
		target = l.followAlias(next)
	}
	return target, len(parts)
}

// resolveFirst implements index-0 resolution: innermost-shadows-outer local
// scope walk-up, unioned with document-wide exports.
func (l *Lookup) resolveFirst(from ast.NodeID, name source.StringID) (ast.NodeID, bool) {
	for scope := l.enclosingScope(from); scope.IsValid(); scope = l.parentOf(scope) {
		s := l.table.Scopes.Get(scope)
		if s == nil {
			break
		}
		if ids := s.NameIndex[name]; len(ids) > 0 {
			sym := l.table.Symbols.Get(ids[len(ids)-1]) // last declaration wins
			if sym != nil {
				return sym.Node, true
			}
		}
	}
	if entries, ok := l.exports.BySimple[l.simpleName(name)]; ok && len(entries) > 0 {
		return entries[len(entries)-1].Node, true
	}
	return ast.NoNodeID, false
}

func (l *Lookup) childNamed(parent ast.NodeID, name source.StringID) (ast.NodeID, bool) {
	for _, e := range l.exports.Children[parent] {
		if e.NameID == name {
			return e.Node, true
		}
	}
	return ast.NoNodeID, false
}

func (l *Lookup) simpleName(id source.StringID) string {
	if l.table.Strings == nil {
		return ""
	}
	return l.table.Strings.MustLookup(id)
}

func (l *Lookup) enclosingScope(node ast.NodeID) ScopeID {
	for cur := node; cur.IsValid(); {
		if scope, ok := l.local[cur]; ok {
			return scope
		}
		n := l.b.Nodes.Get(cur)
		if n == nil {
			break
		}
		cur = n.Container
	}
	return NoScopeID
}

func (l *Lookup) parentOf(scope ScopeID) ScopeID {
	s := l.table.Scopes.Get(scope)
	if s == nil {
		return NoScopeID
	}
	return s.Parent
}

// followAlias re-resolves an AliasMember symbol's node through its Target
// qualified name, repeating until a non-alias node is reached or the hop
// budget runs out (a malformed document can alias a name to itself).
func (l *Lookup) followAlias(node ast.NodeID) ast.NodeID {
	for hop := 0; hop < maxAliasHops; hop++ {
		n := l.b.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagAliasMember {
			return node
		}
		p, ok := l.b.AliasMember(node)
		if !ok {
			return node
		}
		qn, ok := l.b.QualifiedName(p.Target)
		if !ok || len(qn.Parts) == 0 {
			return node
		}
		resolved, n2 := l.Resolve(node, qn.Parts)
		if n2 != len(qn.Parts) || !resolved.IsValid() || resolved == node {
			return node
		}
		node = resolved
	}
	return node
}

// resolvePathFrom is the computer's own path resolver, sharing Lookup's
// logic during import binding while the tables are still being built (no
// Result yet exists to wrap).
func (c *computer) resolvePathFrom(from ast.NodeID, parts []source.StringID) ast.NodeID {
	l := &Lookup{b: c.b, exports: c.exports, all: c.all, local: c.localScopes, table: c.table}
	node, n := l.Resolve(from, parts)
	if n != len(parts) {
		return ast.NoNodeID
	}
	return node
}
