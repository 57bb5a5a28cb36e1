package validate

import (
	"fmt"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
)

// checkComputedAttributeConsistency implements §4.5 check 8: an attribute
// usage bound with `::=` must carry a value expression. The grammar makes
// this unreachable on well-formed input — `::=` without an expression is a
// parse error, not a semantic one — so this check only fires on AST states
// a hand-built or recovered tree can reach.
func checkComputedAttributeConsistency(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagUsage {
			return
		}
		p, ok := in.Builder.DefUse(node)
		if !ok || p.ElementKind != ast.EKAttribute {
			return
		}
		if p.ValueKind != ast.ValueComputed {
			return
		}
		if p.Value.IsValid() {
			return
		}
		name := "<anonymous>"
		if p.HasName {
			name = in.Result.Strings.MustLookup(p.Name)
		}
		diag.ReportError(in.Reporter, diag.ValComputedAttributeConflict, n.Span,
			fmt.Sprintf("Computed attribute '%s' has no value expression", name)).Emit()
	})
}
