// Package driver orchestrates the per-document pipeline (§2/§5): lex+parse,
// scope computation, linking, and validation, advancing each Document
// through the stage sequence Parsed -> IndexedContent -> ComputedScopes ->
// Linked -> Validated. It also aggregates diagnostics and exports across
// many in-memory documents for CLI/editor consumers, grounded on the
// teacher's internal/driver/dcache.go mutex discipline and
// internal/buildpipeline/build.go's stage-advance shape, generalized from
// Surge's on-disk module graph (deleted here — see DESIGN.md) to SysML's
// single-document/in-memory-multi-document scope (SPEC_FULL.md §9).
package driver

import (
	"fmt"
	"sync"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
	"sysmlc/internal/validate"
)

// Stage names one step of spec.md §2/§5's monotonic pipeline. A Document's
// Stage never regresses; each Advance* method is a no-op if the document is
// already past that stage.
type Stage uint8

const (
	StageUnparsed Stage = iota
	StageParsed
	StageIndexedContent
	StageComputedScopes
	StageLinked
	StageValidated
)

func (s Stage) String() string {
	switch s {
	case StageUnparsed:
		return "unparsed"
	case StageParsed:
		return "parsed"
	case StageIndexedContent:
		return "indexed-content"
	case StageComputedScopes:
		return "computed-scopes"
	case StageLinked:
		return "linked"
	case StageValidated:
		return "validated"
	}
	return "unknown"
}

// Document is one .sysml/.kerml source file's build state: its own AST,
// scope index, and diagnostic buffer, matching spec.md §5's ownership-group
// resource policy — the whole group is discarded together when the
// document leaves the index.
type Document struct {
	mu sync.RWMutex

	Path    string
	FileSet *source.FileSet
	File    *source.File
	Strings *source.Interner

	Builder *ast.Builder
	Root    ast.NodeID

	Symbols *symbols.Result
	Lookup  *symbols.Lookup

	Bag   *diag.Bag
	stage Stage
}

// NewDocument constructs an unparsed Document over already-loaded source
// text. Removing a Document from an Index (see sharedindex.go) drops this
// struct and everything it owns; there is no separate teardown step.
func NewDocument(path string, fs *source.FileSet, file *source.File, maxDiagnostics int) *Document {
	return &Document{
		Path:    path,
		FileSet: fs,
		File:    file,
		Strings: source.NewInterner(),
		Bag:     diag.NewBag(maxDiagnostics),
		stage:   StageUnparsed,
	}
}

// Stage returns the document's current pipeline stage.
func (d *Document) Stage() Stage {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stage
}

func (d *Document) setStage(s Stage) {
	if s > d.stage {
		d.stage = s
	}
}

// Parse lexes and parses the document's source text, advancing it to
// StageParsed. Lexer and parser errors land in Bag but never abort — a
// partial AST is always returned, per spec.md §4.2's recovery contract.
func (d *Document) Parse() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stage >= StageParsed {
		return
	}
	d.Builder = ast.NewBuilder(ast.Hints{})
	reporter := diag.BagReporter{Bag: d.Bag}
	lx := lexer.New(d.File, lexer.Options{Reporter: reporter})
	result := parser.ParseDocument(d.FileSet, lx, d.Builder, d.Strings, parser.Options{Reporter: reporter})
	d.Root = result.Root
	d.setStage(StageParsed)
}

// IndexContent marks the document as registered with a process-wide shared
// Index (spec.md §5's "process-wide shared index"). Content indexing itself
// is Index.Put's job; this method only advances the per-document stage
// counter so callers can observe the state transition independent of when
// the shared index happens to be updated.
func (d *Document) IndexContent() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stage < StageParsed || d.stage >= StageIndexedContent {
		return
	}
	d.setStage(StageIndexedContent)
}

// ComputeScopes runs §4.3's exports and local-scope traversals. Idempotent:
// calling it again after the document is already at or past
// StageComputedScopes is a no-op, matching spec.md §8's idempotence
// property (the same AST always yields the same Result).
func (d *Document) ComputeScopes() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stage < StageIndexedContent || d.stage >= StageComputedScopes {
		return
	}
	if d.Builder == nil {
		return
	}
	d.Symbols = symbols.Compute(d.Builder, d.Root, d.Strings)
	d.setStage(StageComputedScopes)
}

// Link builds the §4.4 Scope Provider over the computed Result. Reference
// resolution itself stays lazy per spec.md §9's "build lazily per lookup"
// design note — Link only makes the Lookup available, it does not eagerly
// walk every reference in the tree.
func (d *Document) Link() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stage < StageComputedScopes || d.stage >= StageLinked {
		return
	}
	if d.Builder == nil || d.Symbols == nil {
		return
	}
	d.Lookup = symbols.NewLookup(d.Builder, d.Symbols)
	d.setStage(StageLinked)
}

// Validate runs every §4.5 check over the linked document, advancing it to
// StageValidated. A document with lexer/parser errors still runs
// validation over its partial AST, per spec.md §7.
func (d *Document) Validate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stage < StageLinked || d.stage >= StageValidated {
		return
	}
	if d.Builder == nil || d.Symbols == nil {
		return
	}
	validate.Run(validate.Input{
		Builder:  d.Builder,
		Root:     d.Root,
		Result:   d.Symbols,
		Reporter: diag.BagReporter{Bag: d.Bag},
	})
	d.setStage(StageValidated)
}

// Resolve is a convenience wrapper for symbols.Lookup.Resolve that panics
// with a descriptive error if called before Link — a programming error in
// the caller, not a malformed-input case, so it panics rather than
// returning a zero value silently.
func (d *Document) Resolve(from ast.NodeID, parts []source.StringID) (ast.NodeID, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.Lookup == nil {
		panic(fmt.Errorf("driver: Resolve called before Link on %q", d.Path))
	}
	return d.Lookup.Resolve(from, parts)
}

// Run advances the document through every stage in order — the common case
// for CLI/editor callers that want a fully validated document in one call.
func (d *Document) Run(index *Index) {
	d.Parse()
	if index != nil {
		index.Put(d)
	}
	d.IndexContent()
	d.ComputeScopes()
	d.Link()
	d.Validate()
}

// IsValid reports spec.md §6.4's isValid rule: zero severity-Error
// diagnostics, independent of warnings and hints.
func (d *Document) IsValid() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.Bag.HasErrors()
}
