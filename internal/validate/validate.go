// Package validate implements §4.5's semantic checks over a parsed and
// linked document: duplicate names, self-specialization, specialization
// cycles, empty abstract definitions, untyped part usages, multiplicity
// bounds, qualified-name well-formedness, computed-attribute consistency,
// and unresolved-reference detection. Each check emits zero or more
// diagnostics and never aborts the rest — Run fans every check out over the
// same (*ast.Builder, *symbols.Result) pair.
package validate

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/symbols"
)

// Input bundles what every check needs: the document's AST, its computed
// scopes/exports, and where to send diagnostics.
type Input struct {
	Builder  *ast.Builder
	Root     ast.NodeID
	Result   *symbols.Result
	Reporter diag.Reporter
}

// Run executes all required checks against in, in the order §4.5 lists
// them. A check that finds nothing to report is a no-op; checks never
// observe each other's output.
func Run(in Input) {
	if in.Builder == nil || in.Result == nil || in.Reporter == nil {
		return
	}
	checkDuplicateNamesAtRoot(in)
	checkDuplicateNamesInPackages(in)
	checkSelfSpecialization(in)
	checkSpecializationCycles(in)
	checkEmptyAbstractDefinitions(in)
	checkUntypedPartUsages(in)
	checkMultiplicityBounds(in)
	checkQualifiedNameWellFormedness(in)
	checkComputedAttributeConsistency(in)
	checkUnresolvedReferences(in)
}
