package validate_test

import (
	"testing"

	"sysmlc/internal/diag"
)

func TestDuplicateNamesAtRoot(t *testing.T) {
	diags := runValidation(t, `part def Engine; part def Engine;`)
	if countCode(diags, diag.ValDuplicateNameAtRoot) != 2 {
		t.Fatalf("expected one error per offending root element, got %v", diags)
	}
}

func TestDuplicateNamesAtRootIgnoresAnonymous(t *testing.T) {
	diags := runValidation(t, `part { } part { }`)
	if containsCode(diags, diag.ValDuplicateNameAtRoot) {
		t.Fatalf("anonymous elements must never duplicate, got %v", diags)
	}
}

func TestDuplicateNamesInPackageBodyReportsOnce(t *testing.T) {
	diags := runValidation(t, `package P { part def Pump; part def Pump; }`)
	if countCode(diags, diag.ValDuplicateNameInBody) != 1 {
		t.Fatalf("expected exactly one diagnostic for the package-body duplicate, got %v", diags)
	}
}

func TestNoDuplicatesAcrossDistinctNames(t *testing.T) {
	diags := runValidation(t, `part def Engine; part def Pump;`)
	if containsCode(diags, diag.ValDuplicateNameAtRoot) {
		t.Fatalf("distinct names must not be flagged, got %v", diags)
	}
}
