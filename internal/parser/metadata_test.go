package parser_test

import "testing"

func TestParseDocumentation(t *testing.T) {
	b, root, rep := parseString(`doc /** Describes the vehicle. */`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	doc, ok := b.Documentation(firstElement(t, b, root))
	if !ok {
		t.Fatalf("expected a Documentation node")
	}
	if doc.HasName {
		t.Fatalf("expected an unnamed documentation block")
	}
	if doc.Body != " Describes the vehicle. " {
		t.Fatalf("expected delimiters stripped, got %q", doc.Body)
	}
}

func TestParseCommentWithAboutAndLanguage(t *testing.T) {
	b, root, rep := parseString(`comment about A::B language "en" /** note */`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	c, ok := b.Comment(firstElement(t, b, root))
	if !ok {
		t.Fatalf("expected a Comment node")
	}
	if len(c.About) != 1 {
		t.Fatalf("expected one 'about' target, got %d", len(c.About))
	}
	if !c.HasLanguage {
		t.Fatalf("expected a language clause")
	}
}

func TestParseCommentNameNotSwallowedByAboutKeyword(t *testing.T) {
	// 'about' is IdentLike but must not be read as the comment's name.
	b, root, rep := parseString(`comment MyNote about A::B /** n */`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	c, ok := b.Comment(firstElement(t, b, root))
	if !ok || !c.HasName || len(c.About) != 1 {
		t.Fatalf("expected a named comment with one about-target, got %+v", c)
	}
}

func TestParseTextualRepresentation(t *testing.T) {
	b, root, rep := parseString(`rep language "en" /** Spoken form. */`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	r, ok := b.TextualRepresentation(firstElement(t, b, root))
	if !ok {
		t.Fatalf("expected a TextualRepresentation node")
	}
	if r.HasName {
		t.Fatalf("expected an unnamed textual representation")
	}
}

func TestParsePrefixedMetadata(t *testing.T) {
	b, root, rep := parseString(`#SafetyCritical part def Pump;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	if len(rootNs.Elements) != 2 {
		t.Fatalf("expected 2 root elements (metadata + definition), got %d", len(rootNs.Elements))
	}
	m0, _ := b.OwningMembership(rootNs.Elements[0])
	if _, ok := b.PrefixedMetadata(m0.Element); !ok {
		t.Fatalf("expected the first element to be a PrefixedMetadata node")
	}
}

func TestParseInlineMetadataWithBody(t *testing.T) {
	b, root, rep := parseString(`@Rating : Ratings { attribute value = 5; }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	meta, ok := b.InlineMetadata(firstElement(t, b, root))
	if !ok || !meta.HasName || meta.Type == 0 || !meta.HasBody || len(meta.Body) != 1 {
		t.Fatalf("expected a named, typed inline metadata with a body member, got %+v", meta)
	}
}

func TestParseInlineMetadataBare(t *testing.T) {
	b, root, rep := parseString(`@Deprecated;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	meta, ok := b.InlineMetadata(firstElement(t, b, root))
	if !ok || !meta.HasName || meta.HasBody {
		t.Fatalf("expected a bare named inline metadata with no body, got %+v", meta)
	}
}
