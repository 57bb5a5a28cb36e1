package validate

import (
	"fmt"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
)

// checkEmptyAbstractDefinitions implements §4.5 check 4: an abstract part
// definition with no body members is a hint, not an error — it is valid
// SysML, just suspicious enough to flag. Only PartDefinition is in scope;
// other abstract definition kinds are silent here by design.
func checkEmptyAbstractDefinitions(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagDefinition {
			return
		}
		p, ok := in.Builder.DefUse(node)
		if !ok || p.ElementKind != ast.EKPart || !p.IsAbstract {
			return
		}
		if len(p.Body) != 0 {
			return
		}
		name := "<anonymous>"
		if p.HasName {
			name = in.Result.Strings.MustLookup(p.Name)
		}
		diag.ReportHint(in.Reporter, diag.ValEmptyAbstractDefinition, n.Span,
			fmt.Sprintf("Abstract part definition '%s' has no members", name)).Emit()
	})
}
