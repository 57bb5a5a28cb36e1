package validate

import (
	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
)

// checkQualifiedNameWellFormedness implements §4.5 check 7: a QualifiedName
// node with zero parts is malformed. The grammar never produces one on
// well-formed input, but error-recovered parses can leave one behind, so
// this is the validator's own backstop rather than a parser-only concern.
func checkQualifiedNameWellFormedness(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagQualifiedName {
			return
		}
		qn, ok := in.Builder.QualifiedName(node)
		if !ok || len(qn.Parts) != 0 {
			return
		}
		diag.ReportError(in.Reporter, diag.ValQualifiedNameMalformed, n.Span,
			"Qualified name must have at least one part").Emit()
	})
}
