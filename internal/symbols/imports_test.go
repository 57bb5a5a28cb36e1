package symbols_test

import (
	"testing"

	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
)

func TestComputeImportSingleName(t *testing.T) {
	b, root, strings := parseString(t, `
		package Lib {
			part def Wheel;
		}
		package Main {
			import Lib::Wheel;
		}
	`)
	res := symbols.Compute(b, root, strings)
	main := firstExported(t, res, res.Root, "Main")

	scope, ok := res.LocalScopes[main]
	if !ok {
		t.Fatalf("expected Main to have a local scope")
	}
	s := res.Table.Scopes.Get(scope)
	ids := s.NameIndex[strings.Intern("Wheel")]
	if len(ids) == 0 {
		t.Fatalf("expected Wheel bound in Main's scope via import")
	}
}

func TestComputeImportWildcard(t *testing.T) {
	b, root, strings := parseString(t, `
		package Lib {
			part def Wheel;
			part def Axle;
		}
		package Main {
			import Lib::*;
		}
	`)
	res := symbols.Compute(b, root, strings)
	main := firstExported(t, res, res.Root, "Main")

	scope := res.LocalScopes[main]
	s := res.Table.Scopes.Get(scope)
	if len(s.NameIndex[strings.Intern("Wheel")]) == 0 || len(s.NameIndex[strings.Intern("Axle")]) == 0 {
		t.Fatalf("expected Wheel and Axle both bound via wildcard import")
	}
}

func TestComputeImportRecursiveWildcard(t *testing.T) {
	b, root, strings := parseString(t, `
		package Lib {
			package Sub {
				part def Bolt;
			}
		}
		package Main {
			import Lib::**;
		}
	`)
	res := symbols.Compute(b, root, strings)
	main := firstExported(t, res, res.Root, "Main")

	scope := res.LocalScopes[main]
	s := res.Table.Scopes.Get(scope)
	if len(s.NameIndex[strings.Intern("Sub")]) == 0 {
		t.Fatalf("expected Sub bound via Lib::**")
	}
	if len(s.NameIndex[strings.Intern("Bolt")]) == 0 {
		t.Fatalf("expected Bolt, nested under Sub, bound transitively via Lib::**")
	}
}

func TestComputeImportAllBypassesVisibility(t *testing.T) {
	b, root, strings := parseString(t, `
		package Lib {
			private part def Secret;
		}
		package Main {
			import all Lib;
		}
	`)
	res := symbols.Compute(b, root, strings)
	main := firstExported(t, res, res.Root, "Main")

	scope := res.LocalScopes[main]
	s := res.Table.Scopes.Get(scope)
	if len(s.NameIndex[strings.Intern("Secret")]) == 0 {
		t.Fatalf("expected import all to bind Secret despite private visibility")
	}
}

func TestComputeAliasResolvesThroughTarget(t *testing.T) {
	b, root, strings := parseString(t, `
		package Lib {
			part def Wheel;
			alias Tire for Lib::Wheel;
		}
	`)
	res := symbols.Compute(b, root, strings)
	lib := firstExported(t, res, res.Root, "Lib")

	lookup := symbols.NewLookup(b, res)
	wheel := childOf(t, res, lib, "Wheel")

	resolved, n := lookup.Resolve(lib, []source.StringID{strings.Intern("Tire")})
	if n != 1 {
		t.Fatalf("expected Tire to resolve as an alias, got n=%d", n)
	}
	if resolved != wheel {
		t.Fatalf("expected Tire to resolve through to Wheel, got node %v want %v", resolved, wheel)
	}
}
