package driver

import (
	"strings"

	"sysmlc/internal/diag"
)

// EnrichUnresolvedReferences scans every document's diagnostics for the
// ValUnresolvedReference warnings internal/validate emits when a reference's
// first segment resolves against nothing in its own document, and asks the
// shared Index whether some other document in the run exports that name —
// attaching a note pointing at the candidate document when it does. This is
// the CLI-visible half of spec.md §5's process-wide shared index: exports
// are aggregated during Document.Run regardless, but without this pass
// nothing ever reads them back out.
func EnrichUnresolvedReferences(index *Index, docs []*Document) {
	if index == nil {
		return
	}
	for _, d := range docs {
		if d == nil || d.Bag == nil {
			continue
		}
		path := d.Path
		d.Bag.Transform(func(item diag.Diagnostic) diag.Diagnostic {
			if item.Code != diag.ValUnresolvedReference {
				return item
			}
			name, ok := unresolvedReferenceName(item.Message)
			if !ok {
				return item
			}
			candidatePath, entries, found := index.ResolveAcrossFrom(path, name)
			if !found || len(entries) == 0 {
				return item
			}
			entry := entries[len(entries)-1]
			item.Notes = append(item.Notes, diag.Note{
				Span: entry.Span,
				Msg:  "'" + name + "' is exported by " + candidatePath,
			})
			return item
		})
	}
}

// unresolvedReferenceName extracts the quoted simple name from a message
// checkUnresolvedReferences produced, e.g. "Unresolved reference: 'Widget'"
// or "Unresolved reference: 'Widget' (in 'Lib::Widget')" both yield
// "Widget" — the leading quoted segment is always the failing first part.
func unresolvedReferenceName(msg string) (string, bool) {
	open := strings.IndexByte(msg, '\'')
	if open < 0 {
		return "", false
	}
	rest := msg[open+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
