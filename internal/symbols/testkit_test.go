package symbols_test

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
)

// parseString parses input as a standalone document and returns everything
// needed to compute and inspect its scopes: the builder, its root namespace,
// and the interner the document's identifiers were interned into.
func parseString(t testingT, input string) (*ast.Builder, ast.NodeID, *source.Interner) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte(input))
	file := fs.Get(fileID)

	strings := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{})
	reporter := &discardReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	result := parser.ParseDocument(fs, lx, b, strings, parser.Options{Reporter: reporter})
	if len(reporter.errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", reporter.errors)
	}
	return b, result.Root, strings
}

// testingT is the sliver of *testing.T this helper needs, so it can live
// outside any one _test.go file without importing "testing" redundantly.
type testingT interface {
	Fatalf(format string, args ...any)
}

type discardReporter struct {
	errors []string
}

func (r *discardReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	if sev == diag.SevError {
		r.errors = append(r.errors, msg)
	}
}

// intern is a small convenience for tests that need a StringID to probe a
// NameIndex or BySimple table with.
func intern(strings *source.Interner, name string) source.StringID {
	return strings.Intern(name)
}
