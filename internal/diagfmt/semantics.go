package diagfmt

import (
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
)

// SemanticsInput carries the data required to build a semantic dump.
type SemanticsInput struct {
	Result *symbols.Result
}

// SemanticsOutput represents semantic data emitted alongside diagnostics:
// every scope and symbol the ComputeScopes stage produced, plus the
// document-wide export table.
type SemanticsOutput struct {
	Scopes  []ScopeJSON  `json:"scopes"`
	Symbols []SymbolJSON `json:"symbols"`
	Exports []ExportJSON `json:"exports"`
}

type ScopeJSON struct {
	ID     uint32 `json:"id"`
	Kind   string `json:"kind"`
	Parent uint32 `json:"parent,omitempty"`
	Owner  uint32 `json:"owner"`
	Span   source.Span `json:"span"`
}

type SymbolJSON struct {
	ID    uint32      `json:"id"`
	Name  string      `json:"name"`
	Kind  string      `json:"kind"`
	Scope uint32      `json:"scope"`
	Span  source.Span `json:"span"`
	Public bool `json:"public,omitempty"`
}

type ExportJSON struct {
	Name string      `json:"name"`
	Node uint32      `json:"node"`
	Span source.Span `json:"span"`
}

func buildSemanticsOutput(in *SemanticsInput) (*SemanticsOutput, error) {
	if in == nil || in.Result == nil || in.Result.Table == nil {
		return nil, nil
	}
	table := in.Result.Table
	strs := table.Strings

	output := &SemanticsOutput{
		Scopes:  make([]ScopeJSON, 0, table.Scopes.Len()),
		Symbols: make([]SymbolJSON, 0, table.Symbols.Len()),
	}

	for i := uint32(1); i <= table.Scopes.Len(); i++ {
		scope := table.Scopes.Get(symbols.ScopeID(i))
		if scope == nil {
			continue
		}
		output.Scopes = append(output.Scopes, ScopeJSON{
			ID:     i,
			Kind:   scope.Kind.String(),
			Parent: uint32(scope.Parent),
			Owner:  uint32(scope.Owner),
			Span:   scope.Span,
		})
	}

	for i := uint32(1); i <= table.Symbols.Len(); i++ {
		sym := table.Symbols.Get(symbols.SymbolID(i))
		if sym == nil {
			continue
		}
		output.Symbols = append(output.Symbols, SymbolJSON{
			ID:     i,
			Name:   strs.MustLookup(sym.Name),
			Kind:   sym.Kind.String(),
			Scope:  uint32(sym.Scope),
			Span:   sym.Span,
			Public: sym.Flags&symbols.SymbolFlagPublic != 0,
		})
	}

	if in.Result.Exports != nil {
		for _, entries := range in.Result.Exports.Children {
			for _, e := range entries {
				output.Exports = append(output.Exports, ExportJSON{
					Name: e.Name,
					Node: uint32(e.Node),
					Span: e.Span,
				})
			}
		}
	}

	return output, nil
}
