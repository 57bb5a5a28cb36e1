package symbols

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// ScopeKind distinguishes the AST container a scope was built for, mirroring
// the node families §4.3's local-scope traversal descends into.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeDocument
	ScopePackage
	ScopeBody // Definition/Usage feature body
	ScopeAction
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeDocument:
		return "document"
	case ScopePackage:
		return "package"
	case ScopeBody:
		return "body"
	case ScopeAction:
		return "action"
	default:
		return "invalid"
	}
}

// Scope records the immediately-contained named elements of one container
// node (§4.3's "local scopes" traversal). Parent lets a reference walk
// $container upward one scope at a time; NameIndex is keyed by simple name,
// last declaration wins on lookup so a later redeclaration shadows an
// earlier one within the same body.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ast.NodeID
	Span      source.Span
	NameIndex map[source.StringID][]SymbolID
	Symbols   []SymbolID
}

type Scopes struct {
	arena *ast.Arena[Scope]
}

func NewScopes(capHint uint) *Scopes {
	return &Scopes{arena: ast.NewArena[Scope](capHint)}
}

func (s *Scopes) New(kind ScopeKind, parent ScopeID, owner ast.NodeID, span source.Span) ScopeID {
	return ScopeID(s.arena.Allocate(Scope{
		Kind:      kind,
		Parent:    parent,
		Owner:     owner,
		Span:      span,
		NameIndex: make(map[source.StringID][]SymbolID),
	}))
}

func (s *Scopes) Get(id ScopeID) *Scope {
	return s.arena.Get(uint32(id))
}

func (s *Scopes) Len() uint32 { return s.arena.Len() }
