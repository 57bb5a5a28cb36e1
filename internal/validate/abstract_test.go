package validate_test

import (
	"testing"

	"sysmlc/internal/diag"
)

func TestEmptyAbstractPartDefinitionIsAHint(t *testing.T) {
	diags := runValidation(t, `abstract part def X { }`)
	if countCode(diags, diag.ValEmptyAbstractDefinition) != 1 {
		t.Fatalf("expected one hint for the empty abstract definition, got %v", diags)
	}
	for _, d := range diags {
		if d.Code == diag.ValEmptyAbstractDefinition && d.Severity != diag.SevHint {
			t.Fatalf("expected hint severity, got %v", d.Severity)
		}
	}
}

func TestNonEmptyAbstractPartDefinitionIsFine(t *testing.T) {
	diags := runValidation(t, `abstract part def X { part y; }`)
	if containsCode(diags, diag.ValEmptyAbstractDefinition) {
		t.Fatalf("a definition with members must not be flagged, got %v", diags)
	}
}

func TestEmptyNonAbstractPartDefinitionIsFine(t *testing.T) {
	diags := runValidation(t, `part def X { }`)
	if containsCode(diags, diag.ValEmptyAbstractDefinition) {
		t.Fatalf("a non-abstract definition must not be flagged, got %v", diags)
	}
}
