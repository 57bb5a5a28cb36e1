package symbols_test

import (
	"testing"

	"sysmlc/internal/ast"
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
)

func TestComputeExportsRootLevelDefinitions(t *testing.T) {
	b, root, strings := parseString(t, `
		package P {
			part def Vehicle;
			part def Engine;
		}
	`)
	res := symbols.Compute(b, root, strings)

	pkg := firstExported(t, res, root, "P")
	children := res.Exports.Children[pkg]
	if len(children) != 2 {
		t.Fatalf("expected 2 exported members of P, got %d: %+v", len(children), children)
	}
	names := map[string]bool{}
	for _, c := range children {
		names[c.Name] = true
	}
	if !names["Vehicle"] || !names["Engine"] {
		t.Fatalf("expected Vehicle and Engine exported, got %+v", names)
	}
}

func TestComputeStopsExportDescentAtPrivateMember(t *testing.T) {
	b, root, strings := parseString(t, `
		package P {
			private part def Hidden {
				part def Inner;
			}
		}
	`)
	res := symbols.Compute(b, root, strings)

	pkg := firstExported(t, res, root, "P")
	for _, c := range res.Exports.Children[pkg] {
		if c.Name == "Hidden" {
			t.Fatalf("private member Hidden must not appear in public exports")
		}
	}
	// AllExports is unfiltered, so Hidden and its descendant still show up
	// there for import-all's same-document bypass.
	found := false
	for _, c := range res.AllExports.Children[pkg] {
		if c.Name == "Hidden" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Hidden in AllExports despite being private")
	}
}

func TestComputeLocalScopeShadowing(t *testing.T) {
	b, root, strings := parseString(t, `
		part def Outer {
			part def Thing;
			part def Inner {
				part def Thing;
			}
		}
	`)
	res := symbols.Compute(b, root, strings)
	lookup := symbols.NewLookup(b, res)

	outer := firstExported(t, res, res.Root, "Outer")
	inner := childOf(t, res, outer, "Inner")
	innerThingID := childOf(t, res, inner, "Thing")

	resolved, n := lookup.Resolve(innerThingID, []source.StringID{intern(strings, "Thing")})
	if n != 1 {
		t.Fatalf("expected Thing to resolve from within Inner, got n=%d", n)
	}
	if resolved != innerThingID {
		t.Fatalf("expected the innermost Thing to shadow the outer one")
	}
}

func firstExported(t *testing.T, res *symbols.Result, root ast.NodeID, name string) ast.NodeID {
	for _, e := range res.Exports.Children[root] {
		if e.Name == name {
			return e.Node
		}
	}
	t.Fatalf("expected %q exported from root", name)
	return ast.NoNodeID
}

func childOf(t *testing.T, res *symbols.Result, parent ast.NodeID, name string) ast.NodeID {
	for _, e := range res.AllExports.Children[parent] {
		if e.Name == name {
			return e.Node
		}
	}
	t.Fatalf("expected %q among the children of node %v", name, parent)
	return ast.NoNodeID
}
