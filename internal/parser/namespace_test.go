package parser_test

import "testing"

func TestParseEmptyDocumentHasNoErrors(t *testing.T) {
	_, root, rep := parseString("")
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	if root == 0 {
		t.Fatalf("expected a root namespace node")
	}
}

func TestParsePackageWithName(t *testing.T) {
	b, root, rep := parseString(`package Foo { }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, ok := b.RootNamespace(root)
	if !ok || len(rootNs.Elements) != 1 {
		t.Fatalf("expected one root element, got %+v", rootNs)
	}
	membership, ok := b.OwningMembership(rootNs.Elements[0])
	if !ok {
		t.Fatalf("expected an OwningMembership at the root")
	}
	pkg, ok := b.PackageBody(membership.Element)
	if !ok {
		t.Fatalf("expected a PackageBody element")
	}
	if !pkg.HasName {
		t.Fatalf("expected package to have a name")
	}
}

func TestParseLibraryStandardPackage(t *testing.T) {
	b, root, rep := parseString(`library standard package Base { }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	membership, _ := b.OwningMembership(rootNs.Elements[0])
	pkg, ok := b.PackageBody(membership.Element)
	if !ok || !pkg.IsLibrary || !pkg.IsStandard {
		t.Fatalf("expected library+standard package, got %+v", pkg)
	}
}

func TestParseVisibilityModifiers(t *testing.T) {
	b, root, rep := parseString(`private package A { } protected package B { } public package C { }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	if len(rootNs.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(rootNs.Elements))
	}
	wantVis := []bool{true, true, true}
	for i, elem := range rootNs.Elements {
		m, ok := b.OwningMembership(elem)
		if !ok || m.HasVisibility != wantVis[i] {
			t.Fatalf("element %d: expected explicit visibility", i)
		}
	}
}

func TestParseImportSimple(t *testing.T) {
	b, root, rep := parseString(`import A::B::C;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	im, ok := b.ImportMembership(rootNs.Elements[0])
	if !ok {
		t.Fatalf("expected an ImportMembership")
	}
	if im.IsAll {
		t.Fatalf("did not expect 'import all'")
	}
	ref, ok := b.ImportRef(im.ImportRef)
	if !ok || ref.IsWildcard || ref.IsRecursive {
		t.Fatalf("expected a plain import path, got %+v", ref)
	}
}

func TestParseImportWildcardAndRecursive(t *testing.T) {
	b, root, rep := parseString(`import A::*; import all B::**;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	im0, _ := b.ImportMembership(rootNs.Elements[0])
	ref0, _ := b.ImportRef(im0.ImportRef)
	if !ref0.IsWildcard {
		t.Fatalf("expected first import to be a wildcard import")
	}
	im1, _ := b.ImportMembership(rootNs.Elements[1])
	if !im1.IsAll {
		t.Fatalf("expected second import to be 'import all'")
	}
	ref1, _ := b.ImportRef(im1.ImportRef)
	if !ref1.IsRecursive {
		t.Fatalf("expected second import to be recursive")
	}
}

func TestParseAlias(t *testing.T) {
	b, root, rep := parseString(`alias Eng for A::B::Engine;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	alias, ok := b.AliasMember(rootNs.Elements[0])
	if !ok {
		t.Fatalf("expected an AliasMember")
	}
	qn, ok := b.QualifiedName(alias.Target)
	if !ok || len(qn.Parts) != 3 {
		t.Fatalf("expected a 3-part qualified target, got %+v", qn)
	}
}

func TestParseNestedPackages(t *testing.T) {
	b, root, rep := parseString(`package A { package B { part def X; } }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	outerM, _ := b.OwningMembership(rootNs.Elements[0])
	outer, ok := b.PackageBody(outerM.Element)
	if !ok || len(outer.Elements) != 1 {
		t.Fatalf("expected one nested element in A")
	}
	innerM, _ := b.OwningMembership(outer.Elements[0])
	inner, ok := b.PackageBody(innerM.Element)
	if !ok || len(inner.Elements) != 1 {
		t.Fatalf("expected one nested element in B")
	}
}

func TestRecoveryMismatchedBraceDoesNotHang(t *testing.T) {
	b, root, rep := parseString(`package A { part def X; `)
	if root == 0 {
		t.Fatalf("expected a partial AST even with a mismatched brace")
	}
	if !rep.HasErrors() {
		t.Fatalf("expected at least one diagnostic for the unclosed brace")
	}
	_, _ = b, root
}

func TestRecoveryContinuesAfterGarbageToken(t *testing.T) {
	b, root, rep := parseString("$$$ package A { }")
	if root == 0 {
		t.Fatalf("expected parsing to recover and produce a root")
	}
	if !rep.HasErrors() {
		t.Fatalf("expected a diagnostic for the unknown token")
	}
	rootNs, ok := b.RootNamespace(root)
	if !ok || len(rootNs.Elements) != 1 {
		t.Fatalf("expected recovery to still parse the trailing package, got %+v", rootNs)
	}
}
