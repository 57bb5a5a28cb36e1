package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sysmlc/internal/driver"
)

func writeTempSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestRunWorkspaceParsesEveryDocument(t *testing.T) {
	dir := t.TempDir()
	p1 := writeTempSource(t, dir, "a.sysml", `package Lib { part def Widget; }`)
	p2 := writeTempSource(t, dir, "b.sysml", `part def A :> A;`)

	index, docs, err := driver.RunWorkspace(context.Background(), []string{p1, p2}, 256, 2)
	if err != nil {
		t.Fatalf("RunWorkspace: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for _, d := range docs {
		if d.Stage() != driver.StageValidated {
			t.Fatalf("expected %s at StageValidated, got %v", d.Path, d.Stage())
		}
	}
	if len(index.Documents()) != 2 {
		t.Fatalf("expected both documents registered in the shared index")
	}
}

func TestRunWorkspaceEmptyInput(t *testing.T) {
	index, docs, err := driver.RunWorkspace(context.Background(), nil, 256, 2)
	if err != nil {
		t.Fatalf("RunWorkspace: %v", err)
	}
	if docs != nil {
		t.Fatalf("expected nil documents for empty input")
	}
	if len(index.Documents()) != 0 {
		t.Fatalf("expected empty index")
	}
}

func TestRunWorkspaceMissingFileReportsIOError(t *testing.T) {
	_, docs, err := driver.RunWorkspace(context.Background(), []string{"/does/not/exist.sysml"}, 256, 1)
	if err != nil {
		t.Fatalf("RunWorkspace: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected one document result")
	}
	if !docs[0].Bag.HasErrors() {
		t.Fatalf("expected an I/O error diagnostic for the missing file")
	}
}
