package symbols

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// SymbolKind classifies what an AST node contributes to a scope.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolPackage
	SymbolDefinition
	SymbolUsage
	SymbolAlias
	SymbolImported
	SymbolOther // named but otherwise unclassified (transitions, metadata, ...)
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolPackage:
		return "package"
	case SymbolDefinition:
		return "definition"
	case SymbolUsage:
		return "usage"
	case SymbolAlias:
		return "alias"
	case SymbolImported:
		return "imported"
	case SymbolOther:
		return "other"
	default:
		return "invalid"
	}
}

// SymbolFlags encode visibility and provenance for quick checks without
// re-reading the originating AST node.
type SymbolFlags uint8

const (
	SymbolFlagPublic SymbolFlags = 1 << iota
	SymbolFlagProtected
	SymbolFlagImported
)

// Symbol is a named entity visible in a scope: a local-scope entry per §4.3.
// Node is the element the name denotes — for everything but an alias this is
// the element itself; for an alias it is the AliasMember node, and callers
// follow its Target through another resolution step (see followAlias in
// lookup.go).
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Node  ast.NodeID
	Scope ScopeID
	Span  source.Span
	Flags SymbolFlags
}

// Symbols is a 1-based arena of declared Symbol values, built atop the
// generic ast.Arena to keep one allocation scheme across the module.
type Symbols struct {
	arena *ast.Arena[Symbol]
}

func NewSymbols(capHint uint) *Symbols {
	return &Symbols{arena: ast.NewArena[Symbol](capHint)}
}

func (s *Symbols) New(sym Symbol) SymbolID {
	return SymbolID(s.arena.Allocate(sym))
}

func (s *Symbols) Get(id SymbolID) *Symbol {
	return s.arena.Get(uint32(id))
}

func (s *Symbols) Len() uint32 { return s.arena.Len() }
