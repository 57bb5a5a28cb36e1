package validate

import (
	"fmt"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
)

// checkUntypedPartUsages implements §4.5 check 5: a named part usage with no
// feature types is a hint, not an error. Anonymous part usages are exempt —
// an unnamed part with no type is too common (e.g. an inline compositional
// slot) to flag.
func checkUntypedPartUsages(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagUsage {
			return
		}
		p, ok := in.Builder.DefUse(node)
		if !ok || p.ElementKind != ast.EKPart || !p.HasName {
			return
		}
		if len(p.FeatureTypes) != 0 {
			return
		}
		name := in.Result.Strings.MustLookup(p.Name)
		diag.ReportHint(in.Reporter, diag.ValUntypedPartUsage, n.Span,
			fmt.Sprintf("Part '%s' has no explicit type", name)).Emit()
	})
}
