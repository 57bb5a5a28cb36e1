package validate_test

import (
	"testing"

	"sysmlc/internal/diag"
)

func TestUntypedNamedPartUsageIsAHint(t *testing.T) {
	diags := runValidation(t, `part engine;`)
	if countCode(diags, diag.ValUntypedPartUsage) != 1 {
		t.Fatalf("expected one hint for the untyped part usage, got %v", diags)
	}
}

func TestTypedPartUsageIsFine(t *testing.T) {
	diags := runValidation(t, `part def Engine; part engine : Engine;`)
	if containsCode(diags, diag.ValUntypedPartUsage) {
		t.Fatalf("a typed part usage must not be flagged, got %v", diags)
	}
}

func TestAnonymousPartUsageIsExempt(t *testing.T) {
	diags := runValidation(t, `part def Vehicle { part; }`)
	if containsCode(diags, diag.ValUntypedPartUsage) {
		t.Fatalf("an anonymous part usage must never be flagged, got %v", diags)
	}
}
