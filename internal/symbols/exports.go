package symbols

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// ExportEntry names one public child of a namespace, for both document-wide
// first-segment lookup and parent-indexed subsequent-segment lookup (§4.4).
type ExportEntry struct {
	Name   string
	NameID source.StringID
	Node   ast.NodeID
	Span   source.Span
}

// Exports is the §4.3 "exports" traversal result: for every node that owns a
// namespace (RootNamespace, a PackageBody, a Definition with a body),
// Children maps it to its direct named children. BySimple is the flattened
// document-wide union used by first-segment reference resolution.
type Exports struct {
	Children map[ast.NodeID][]ExportEntry
	BySimple map[string][]ExportEntry
}

func newExports() *Exports {
	return &Exports{
		Children: make(map[ast.NodeID][]ExportEntry),
		BySimple: make(map[string][]ExportEntry),
	}
}

func (e *Exports) add(parent ast.NodeID, entry ExportEntry) {
	e.Children[parent] = append(e.Children[parent], entry)
	e.BySimple[entry.Name] = append(e.BySimple[entry.Name], entry)
}

// descendants collects every transitively-reachable child under root,
// implementing the `::**` recursive-wildcard import clause of §4.4.1.
func (e *Exports) descendants(root ast.NodeID) []ExportEntry {
	var out []ExportEntry
	var walk func(ast.NodeID)
	walk = func(n ast.NodeID) {
		for _, child := range e.Children[n] {
			out = append(out, child)
			walk(child.Node)
		}
	}
	walk(root)
	return out
}
