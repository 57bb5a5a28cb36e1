package validate_test

import (
	"testing"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
	"sysmlc/internal/validate"
)

// runValidation parses input as a standalone document, computes its scopes,
// and runs every validator check over it, returning the diagnostics the
// checks produced. Lexer/parser errors fail the test immediately — these
// tests exercise §4.5 in isolation, not recovery.
func runValidation(t *testing.T, input string) []diag.Diagnostic {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte(input))
	file := fs.Get(fileID)

	strings := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{})
	parseBag := diag.NewBag(256)
	parseReporter := diag.BagReporter{Bag: parseBag}
	lx := lexer.New(file, lexer.Options{Reporter: parseReporter})

	result := parser.ParseDocument(fs, lx, b, strings, parser.Options{Reporter: parseReporter})
	if parseBag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", parseBag.Items())
	}

	scopes := symbols.Compute(b, result.Root, strings)

	valBag := diag.NewBag(256)
	valReporter := diag.BagReporter{Bag: valBag}
	validate.Run(validate.Input{
		Builder:  b,
		Root:     result.Root,
		Result:   scopes,
		Reporter: valReporter,
	})
	return valBag.Items()
}

func codesOf(diags []diag.Diagnostic) []diag.Code {
	codes := make([]diag.Code, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

func containsCode(diags []diag.Diagnostic, code diag.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func countCode(diags []diag.Diagnostic, code diag.Code) int {
	n := 0
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}
