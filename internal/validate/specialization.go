package validate

import (
	"fmt"
	"unicode"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
)

// checkSelfSpecialization implements §4.5 check 3: a definition whose
// specialization list names itself (a single-part qualified name equal to
// its own name) is an error, independent of whether the reference even
// resolves — this is a syntactic self-reference check, not a linked one.
func checkSelfSpecialization(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagDefinition {
			return
		}
		p, ok := in.Builder.DefUse(node)
		if !ok || !p.HasName {
			return
		}
		for _, spec := range p.Specializations {
			qn, ok := in.Builder.QualifiedName(spec)
			if !ok || len(qn.Parts) != 1 {
				continue
			}
			if qn.Parts[0] != p.Name {
				continue
			}
			name := in.Result.Strings.MustLookup(p.Name)
			kind := definitionKindLabel(p.ElementKind)
			diag.ReportError(in.Reporter, diag.ValSelfSpecialization, n.Span,
				fmt.Sprintf("%s definition '%s' cannot specialize itself", kind, name)).Emit()
		}
	})
}

// definitionKindLabel capitalizes ElementKind's lowercase label for use at
// the start of a diagnostic message, e.g. "part" -> "Part".
func definitionKindLabel(k ast.ElementKind) string {
	s := k.String()
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
