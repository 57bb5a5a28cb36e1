package validate

import (
	"fmt"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
)

// checkDuplicateNamesAtRoot implements §4.5 check 1: every owned element at
// root that shares a non-empty name with a sibling gets its own error,
// anchored at that element's own span. Unfiltered exports (AllExports) are
// used rather than Exports so that two private root elements of the same
// name still collide — visibility only governs what is reachable from
// elsewhere, not whether a name is a duplicate.
func checkDuplicateNamesAtRoot(in Input) {
	byName := groupByName(in.Result.AllExports.Children[in.Root])
	for name, entries := range byName {
		if name == "" || len(entries) < 2 {
			continue
		}
		for _, e := range entries {
			diag.ReportError(in.Reporter, diag.ValDuplicateNameAtRoot, e.Span,
				fmt.Sprintf("Duplicate element name: '%s'", name)).Emit()
		}
	}
}

// checkDuplicateNamesInPackages implements §4.5 check 2: within a single
// package body, a name shared by two or more owned elements is reported
// once, on the first occurrence only — a deliberately different reporting
// shape from the root check.
func checkDuplicateNamesInPackages(in Input) {
	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagPackageBody {
			return
		}
		pkgName := packageDisplayName(in.Builder, in.Result.Strings, node)
		byName := groupByName(in.Result.AllExports.Children[node])
		for name, entries := range byName {
			if name == "" || len(entries) < 2 {
				continue
			}
			first := entries[0]
			diag.ReportError(in.Reporter, diag.ValDuplicateNameInBody, first.Span,
				fmt.Sprintf("Duplicate element name '%s' in package '%s'", name, pkgName)).Emit()
		}
	})
}

// groupByName buckets entries by NFC-folded name so two unrestricted names
// that differ only in Unicode composition ('My Part' written with a
// precomposed vs. a combining accent) still collide, per SPEC_FULL.md
// §6.3's Unicode-aware duplicate-name comparison. The reported name and
// span come from the entries as recorded — folding only affects grouping.
func groupByName(entries []symbols.ExportEntry) map[string][]symbols.ExportEntry {
	byName := make(map[string][]symbols.ExportEntry, len(entries))
	for _, e := range entries {
		key := symbols.FoldName(e.Name)
		byName[key] = append(byName[key], e)
	}
	return byName
}

func packageDisplayName(b *ast.Builder, strings *source.Interner, node ast.NodeID) string {
	p, ok := b.PackageBody(node)
	if !ok || !p.HasName || strings == nil {
		return "<anonymous>"
	}
	name, ok := strings.Lookup(p.Name)
	if !ok {
		return "<anonymous>"
	}
	return name
}
