package driver_test

import (
	"testing"

	"sysmlc/internal/driver"
)

func TestIndexResolveAcrossDocuments(t *testing.T) {
	idx := driver.NewIndex()

	lib := newTestDocument(t, `package Lib { part def Widget; }`)
	lib.Run(idx)

	if _, ok := idx.Get("test.sysml"); !ok {
		t.Fatalf("expected lib document registered in index")
	}

	entries, ok := idx.ResolveAcross("Widget")
	if !ok || len(entries) == 0 {
		t.Fatalf("expected Widget to resolve across documents, ok=%v entries=%v", ok, entries)
	}
}

func TestIndexRemoveIsNoOpAfterward(t *testing.T) {
	idx := driver.NewIndex()
	d := newTestDocument(t, `part def A;`)
	d.Run(idx)
	idx.Remove(d.Path)
	if _, ok := idx.Get(d.Path); ok {
		t.Fatalf("expected document removed from index")
	}
	// Removing again, or resolving after removal, must not panic.
	idx.Remove(d.Path)
	if _, ok := idx.ResolveAcross("A"); ok {
		t.Fatalf("expected no resolution after removal")
	}
}
