package fix

import (
	"testing"

	"sysmlc/internal/diag"
	"sysmlc/internal/source"
)

type mockThunk struct {
	id string
}

func (m *mockThunk) ID() string { return m.id }

func (m *mockThunk) Build(_ diag.FixBuildContext) (diag.Fix, error) {
	return diag.Fix{Title: "built by thunk"}, nil
}

func TestInsertTextDefaults(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte("part def A"))

	span := source.Span{File: fileID, Start: 0, End: 0}
	f := InsertText("insert comment", span, "// ", "")

	if f.Kind != diag.FixKindQuickFix {
		t.Errorf("expected default kind QuickFix, got %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("expected default applicability AlwaysSafe, got %v", f.Applicability)
	}
	if len(f.Edits) != 1 || f.Edits[0].NewText != "// " {
		t.Fatalf("unexpected edits: %+v", f.Edits)
	}
}

func TestDeleteSpanGuardsOldText(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte("part def A;;"))

	span := source.Span{File: fileID, Start: 11, End: 12}
	f := DeleteSpan("remove stray semicolon", span, ";")

	if len(f.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(f.Edits))
	}
	if f.Edits[0].OldText != ";" || f.Edits[0].NewText != "" {
		t.Errorf("unexpected edit: %+v", f.Edits[0])
	}
}

func TestWrapWithProducesPairedEdits(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte("import core::util"))

	span := source.Span{File: fileID, Start: 0, End: 18}
	f := WrapWith("wrap import block", span, "/* ", " */", WithID("wrap-import-001"))

	if f.ID != "wrap-import-001" {
		t.Errorf("expected explicit ID to stick, got %q", f.ID)
	}
	if f.Kind != diag.FixKindRefactorRewrite {
		t.Errorf("expected refactor.rewrite kind, got %v", f.Kind)
	}
	if len(f.Edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(f.Edits))
	}
	if f.Edits[0].NewText != "/* " || f.Edits[1].NewText != " */" {
		t.Errorf("unexpected wrap edits: %+v", f.Edits)
	}
}

func TestOptionsCompose(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte("part def A"))
	span := source.Span{File: fileID, Start: 0, End: 0}

	thunk := &mockThunk{id: "lazy-fix"}
	f := InsertText("insert comment", span, "// ", "",
		WithRequiresAll(),
		Preferred(),
		WithID("custom-id"),
		WithKind(diag.FixKindRefactor),
		WithApplicability(diag.FixApplicabilitySafeWithHeuristics),
		WithThunk(thunk),
	)

	if !f.RequiresAll || !f.IsPreferred {
		t.Errorf("expected RequiresAll and IsPreferred set, got %+v", f)
	}
	if f.ID != "custom-id" {
		t.Errorf("expected ID custom-id, got %q", f.ID)
	}
	if f.Kind != diag.FixKindRefactor || f.Applicability != diag.FixApplicabilitySafeWithHeuristics {
		t.Errorf("expected overridden kind/applicability, got %+v", f)
	}
	if f.Thunk == nil || f.Thunk.ID() != "lazy-fix" {
		t.Errorf("expected thunk to be attached, got %+v", f.Thunk)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte("part def A"))
	span := source.Span{File: fileID, Start: 0, End: 0}

	var nilOpt Option
	f := InsertText("insert comment", span, "// ", "", nilOpt, WithRequiresAll())

	if !f.RequiresAll {
		t.Error("expected RequiresAll despite leading nil option")
	}
}
