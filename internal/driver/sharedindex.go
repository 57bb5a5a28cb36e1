package driver

import (
	"sort"
	"sync"

	"sysmlc/internal/symbols"
)

// Index is spec.md §5's "process-wide shared index": it aggregates the
// public exports of every known Document so cross-document `import`
// resolution (in-memory multi-document, per §1's Non-goals) has one place
// to look up a qualified name regardless of which document declared it.
// Writes are serialized by a single RWMutex, matching the teacher's
// DiskCache mutex discipline (internal/driver/dcache.go) — contention here
// is negligible next to parsing, exactly as spec.md §5 expects.
type Index struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewIndex returns an empty shared index.
func NewIndex() *Index {
	return &Index{docs: make(map[string]*Document)}
}

// Put registers or replaces a document under its path. Safe to call before
// the document has finished later pipeline stages — later stages read
// through the *Document pointer, so an Index entry always reflects the
// document's current state without needing to be re-Put.
func (idx *Index) Put(d *Document) {
	if idx == nil || d == nil {
		return
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.docs[d.Path] = d
}

// Remove drops a document from the index. Per spec.md §5's cancellation
// contract, a document removed between stages is simply gone from future
// lookups — nothing panics.
func (idx *Index) Remove(path string) {
	if idx == nil {
		return
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.docs, path)
}

// Get returns the document registered at path, if any.
func (idx *Index) Get(path string) (*Document, bool) {
	if idx == nil {
		return nil, false
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	d, ok := idx.docs[path]
	return d, ok
}

// Documents returns every registered document, sorted by path for
// deterministic iteration order.
func (idx *Index) Documents() []*Document {
	if idx == nil {
		return nil
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]*Document, 0, len(idx.docs))
	for _, d := range idx.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ResolveAcross looks up a simple name across every ComputedScopes-or-later
// document currently in the index, implementing the in-memory half of
// cross-document resolution spec.md §9 leaves underspecified beyond
// single-document behavior: only a document's public (Exports, not
// AllExports) surface participates, and the first matching document in
// path order wins on ambiguity.
func (idx *Index) ResolveAcross(simpleName string) ([]symbols.ExportEntry, bool) {
	for _, d := range idx.Documents() {
		if d.Stage() < StageComputedScopes || d.Symbols == nil || d.Symbols.Exports == nil {
			continue
		}
		if entries, ok := d.Symbols.Exports.BySimple[simpleName]; ok && len(entries) > 0 {
			return entries, true
		}
	}
	return nil, false
}

// ResolveAcrossFrom is ResolveAcross with the asking document excluded and
// the matching document's path returned alongside its entries, so a
// caller enriching that document's own unresolved-reference diagnostics
// can say where the candidate actually lives.
func (idx *Index) ResolveAcrossFrom(excludePath, simpleName string) (string, []symbols.ExportEntry, bool) {
	for _, d := range idx.Documents() {
		if d.Path == excludePath {
			continue
		}
		if d.Stage() < StageComputedScopes || d.Symbols == nil || d.Symbols.Exports == nil {
			continue
		}
		if entries, ok := d.Symbols.Exports.BySimple[simpleName]; ok && len(entries) > 0 {
			return d.Path, entries, true
		}
	}
	return "", nil, false
}
