package validate_test

import (
	"testing"

	"sysmlc/internal/diag"
)

func TestIndirectSpecializationCycleIsDetected(t *testing.T) {
	diags := runValidation(t, `
		part def A :> B;
		part def B :> C;
		part def C :> A;
	`)
	if countCode(diags, diag.ValSpecializationCycle) != 3 {
		t.Fatalf("expected all three cycle participants flagged, got %v", diags)
	}
}

func TestAcyclicSpecializationChainIsFine(t *testing.T) {
	diags := runValidation(t, `
		part def A;
		part def B :> A;
		part def C :> B;
	`)
	if containsCode(diags, diag.ValSpecializationCycle) {
		t.Fatalf("a DAG of specializations must not be flagged, got %v", diags)
	}
}
