package driver

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"sysmlc/internal/diag"
	"sysmlc/internal/source"
)

// RunWorkspace fans lex+parse+link+validate out across many documents
// concurrently, grounded on the teacher's errgroup-capped TokenizeDir/
// ParseDir shape (internal/driver/parallel.go) but generalized from
// on-disk *.sg module discovery to an explicit path list — SysML has no
// file-per-module convention to walk a directory for, so callers (the CLI,
// or a workspace manifest's resolved roots) supply the file list directly.
// Each document gets its own FileSet, matching spec.md §5's "each owns its
// AST, scope index, and diagnostic buffer" requirement; the shared Index is
// the one piece of cross-document state, and it is safe for concurrent
// Put under its own lock.
func RunWorkspace(ctx context.Context, paths []string, maxDiagnostics, jobs int) (*Index, []*Document, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(paths) == 0 {
		return NewIndex(), nil, nil
	}

	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	index := NewIndex()
	docs := make([]*Document, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(sorted)))

	for i, path := range sorted {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fs := source.NewFileSet()
			fileID, err := fs.Load(path)
			if err != nil {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + err.Error(),
				})
				docs[i] = &Document{Path: path, Bag: bag, stage: StageUnparsed}
				return nil
			}
			file := fs.Get(fileID)
			d := NewDocument(normalizeWorkspacePath(path), fs, file, maxDiagnostics)
			d.Run(index)
			docs[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return index, docs, err
	}
	return index, docs, nil
}

func normalizeWorkspacePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
