package driver_test

import (
	"testing"
	"time"

	"sysmlc/internal/driver"
	"sysmlc/internal/source"
)

func timeout(t *testing.T) <-chan time.Time {
	t.Helper()
	return time.After(5 * time.Second)
}

func newTestDocument(t *testing.T, src string) *driver.Document {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte(src))
	file := fs.Get(fileID)
	return driver.NewDocument("test.sysml", fs, file, 256)
}

func TestDocumentStagesAdvanceMonotonically(t *testing.T) {
	d := newTestDocument(t, `part def A;`)
	if got := d.Stage(); got != driver.StageUnparsed {
		t.Fatalf("expected StageUnparsed before Run, got %v", got)
	}
	d.Run(nil)
	if got := d.Stage(); got != driver.StageValidated {
		t.Fatalf("expected StageValidated after Run, got %v", got)
	}

	// Calling every stage method again must be a no-op — stages never
	// regress and never re-run once a document is past them.
	d.Parse()
	d.ComputeScopes()
	d.Link()
	d.Validate()
	if got := d.Stage(); got != driver.StageValidated {
		t.Fatalf("expected StageValidated to remain stable, got %v", got)
	}
}

func TestDocumentIsValid(t *testing.T) {
	ok := newTestDocument(t, `part def A;`)
	ok.Run(nil)
	if !ok.IsValid() {
		t.Fatalf("expected valid document, diagnostics: %v", ok.Bag.Items())
	}

	bad := newTestDocument(t, `part def A :> A;`)
	bad.Run(nil)
	if bad.IsValid() {
		t.Fatalf("expected self-specialization to be invalid")
	}
}

func TestDocumentCrossPackageQualifiedResolution(t *testing.T) {
	src := `package A { package B { part def X; } } package C { part def Y :> A::B::X; }`
	d := newTestDocument(t, src)
	d.Run(nil)
	if !d.IsValid() {
		t.Fatalf("expected zero errors, got: %v", d.Bag.Items())
	}
}

func TestDocumentWildcardImportResolves(t *testing.T) {
	src := `package Lib { part def A; part def B; } package App { import Lib::*; part def UseA :> A; part def UseB :> B; }`
	d := newTestDocument(t, src)
	d.Run(nil)
	if !d.IsValid() {
		t.Fatalf("expected zero errors, got: %v", d.Bag.Items())
	}
}

func TestDocumentKeywordAsIdentifierWithinTimeBudget(t *testing.T) {
	src := `package DomainEntities { item def SharedTypeRegistry { attribute package : String = "@car-dealership/shared-types"; } }`
	d := newTestDocument(t, src)
	done := make(chan struct{})
	go func() {
		d.Run(nil)
		close(done)
	}()
	select {
	case <-done:
	case <-timeout(t):
		t.Fatal("Run did not complete within the time budget")
	}
	if !d.IsValid() {
		t.Fatalf("expected zero errors, got: %v", d.Bag.Items())
	}
}
