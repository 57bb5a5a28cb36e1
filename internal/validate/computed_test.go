package validate_test

import (
	"testing"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
	"sysmlc/internal/validate"
)

// Like the qualified-name check, `::=` with no expression is unreachable
// through the grammar — the parser requires an expression after `::=` — so
// this backstop is exercised against a hand-built tree.
func TestComputedAttributeWithoutValueIsAnError(t *testing.T) {
	strings := source.NewInterner()
	name := strings.Intern("mass")

	b := ast.NewBuilder(ast.Hints{})
	usage := b.NewUsage(sp(0, 5), ast.DefUsePayload{
		ElementKind: ast.EKAttribute,
		Name:        name,
		HasName:     true,
		ValueKind:   ast.ValueComputed,
	})
	owning := b.NewOwningMembership(sp(0, 5), ast.VisPublic, false, usage)
	root := b.NewRootNamespace(sp(0, 5), []ast.NodeID{owning})

	result := symbols.Compute(b, root, strings)

	bag := diag.NewBag(16)
	validate.Run(validate.Input{Builder: b, Root: root, Result: result, Reporter: diag.BagReporter{Bag: bag}})

	if countCode(bag.Items(), diag.ValComputedAttributeConflict) != 1 {
		t.Fatalf("expected one computed-attribute error, got %v", bag.Items())
	}
}

func TestComputedAttributeWithValueIsFine(t *testing.T) {
	diags := runValidation(t, `attribute mass := 10;`)
	if containsCode(diags, diag.ValComputedAttributeConflict) {
		t.Fatalf("an attribute with a default value must not be flagged, got %v", diags)
	}
}
