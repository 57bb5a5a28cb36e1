package validate

import (
	"fmt"
	"strconv"
	"strings"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
)

// checkMultiplicityBounds implements §4.5 check 6: every MultiplicityBounds
// node's lower/upper lexemes are parsed honouring `*` (unbounded), and
// hex/binary/octal/decimal integer notation — strconv's base-0 parsing
// already covers all four radixes via their standard Go prefixes
// (0x/0X, 0o/0O/leading 0, 0b/0B). A missing lower bound defaults to 0; an
// unbounded upper (`*` or absent) never conflicts with any lower bound.
func checkMultiplicityBounds(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagMultiplicityBounds {
			return
		}
		p, ok := in.Builder.MultiplicityBounds(node)
		if !ok {
			return
		}

		lower := int64(0)
		if p.HasLower && p.LowerBound != "" {
			v, ok := parseBound(p.LowerBound)
			if !ok {
				return
			}
			lower = v
		}
		if lower < 0 {
			diag.ReportError(in.Reporter, diag.ValMultiplicityBoundsInvalid, n.Span,
				fmt.Sprintf("Lower bound (%d) cannot be negative", lower)).Emit()
			return
		}

		if p.UpperBound == "" || p.UpperBound == "*" {
			return
		}
		upper, ok := parseBound(p.UpperBound)
		if !ok {
			return
		}
		if lower > upper {
			diag.ReportError(in.Reporter, diag.ValMultiplicityBoundsInvalid, n.Span,
				fmt.Sprintf("Lower bound (%d) cannot be greater than upper bound (%d)", lower, upper)).Emit()
		}
	})
}

func parseBound(lexeme string) (int64, bool) {
	s := strings.ReplaceAll(lexeme, "_", "")
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
