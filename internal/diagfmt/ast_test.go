package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
)

func parseForAST(t *testing.T, src string) (*ast.Builder, ast.NodeID, *source.Interner, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte(src))
	file := fs.Get(fileID)
	strs := source.NewInterner()
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseDocument(fs, lx, builder, strs, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return builder, result.Root, strs, fs
}

func TestFormatASTPrettyIncludesNames(t *testing.T) {
	builder, root, strs, fs := parseForAST(t, `package P { part def Widget; }`)

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, builder, root, strs, fs); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "RootNamespace") {
		t.Fatalf("expected root namespace line, got:\n%s", out)
	}
	if !strings.Contains(out, `"Widget"`) {
		t.Fatalf("expected Widget's name in the tree, got:\n%s", out)
	}
}

func TestFormatASTJSONRoundTrips(t *testing.T) {
	builder, root, strs, _ := parseForAST(t, `package P { part def A :> B; }`)

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, builder, root, strs); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}

	var out ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode json: %v", err)
	}
	if out.Tag != "RootNamespace" {
		t.Fatalf("expected root tag RootNamespace, got %q", out.Tag)
	}
	if len(out.Children) == 0 {
		t.Fatalf("expected children under the root namespace")
	}
}
