package parser_test

import (
	"fmt"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
)

// collectingReporter gathers every diagnostic emitted during a test parse,
// mirroring the lexer package's own testReporter shape.
type collectingReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *collectingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *collectingReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *collectingReporter) Messages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// parseString parses input as a standalone document, returning the builder
// it was parsed into, the root namespace, and every diagnostic collected.
func parseString(input string) (*ast.Builder, ast.NodeID, *collectingReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte(input))
	file := fs.Get(fileID)

	strings := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{})
	reporter := &collectingReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	result := parser.ParseDocument(fs, lx, b, strings, parser.Options{Reporter: reporter})
	return b, result.Root, reporter
}
