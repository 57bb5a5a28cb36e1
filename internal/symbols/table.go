package symbols

import "sysmlc/internal/source"

// Hints provide optional capacity suggestions for the table's arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the scope and symbol arenas computed for one document.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
}

// NewTable builds a fresh table. If strings is nil a fresh interner is
// allocated, matching NewBuilder's own defaulting.
func NewTable(h Hints, strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(h.Scopes),
		Symbols: NewSymbols(h.Symbols),
		Strings: strings,
	}
}

// Declare installs a symbol into scope's NameIndex, returning its ID.
func (t *Table) Declare(scopeID ScopeID, sym Symbol) SymbolID {
	id := t.Symbols.New(sym)
	if scope := t.Scopes.Get(scopeID); scope != nil {
		scope.Symbols = append(scope.Symbols, id)
		scope.NameIndex[sym.Name] = append(scope.NameIndex[sym.Name], id)
	}
	return id
}
