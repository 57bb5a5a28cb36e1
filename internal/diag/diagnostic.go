package diag

import (
	"sysmlc/internal/source"
)

type Note struct {
	Span source.Span
	Msg string
}

// FixEdit is the lightweight edit shape most call sites build fixes from:
// just a span and its replacement text. Diagnostic.WithFix upgrades these
// into TextEdit when it constructs a Fix.
type FixEdit struct {
	Span source.Span
	NewText string
}

type Diagnostic struct {
	Severity Severity
	Code Code
	Message string
	Primary source.Span
	Notes []Note
	Fixes []Fix
}
