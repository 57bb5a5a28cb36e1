package validate_test

import (
	"testing"

	"sysmlc/internal/diag"
)

func TestSelfSpecializationIsAnError(t *testing.T) {
	diags := runValidation(t, `part def A :> A;`)
	if countCode(diags, diag.ValSelfSpecialization) != 1 {
		t.Fatalf("expected exactly one self-specialization error, got %v", diags)
	}
}

func TestSpecializingAnotherDefinitionIsFine(t *testing.T) {
	diags := runValidation(t, `part def A; part def B :> A;`)
	if containsCode(diags, diag.ValSelfSpecialization) {
		t.Fatalf("unrelated specialization must not be flagged, got %v", diags)
	}
}
