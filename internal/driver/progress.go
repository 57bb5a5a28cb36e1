package driver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"sysmlc/internal/diag"
	"sysmlc/internal/source"
)

// Status names one point in a document's lifecycle as observed from outside
// the pipeline, for progress reporting during a workspace run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports one document's progress during RunWorkspaceWithProgress.
// File is empty for events that describe the run as a whole rather than one
// document.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// RunWorkspaceWithProgress is RunWorkspace with a callback invoked as each
// document is queued, advances through its pipeline stages, and finishes.
// onEvent is called concurrently from every worker goroutine and must be
// safe to call from multiple goroutines at once; callers that feed a
// channel (as internal/ui does) get that for free since channel sends are
// already synchronized.
func RunWorkspaceWithProgress(ctx context.Context, paths []string, maxDiagnostics, jobs int, onEvent func(Event)) (*Index, []*Document, error) {
	if onEvent == nil {
		return RunWorkspace(ctx, paths, maxDiagnostics, jobs)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(paths) == 0 {
		return NewIndex(), nil, nil
	}

	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	for _, path := range sorted {
		onEvent(Event{File: path, Stage: StageUnparsed, Status: StatusQueued})
	}

	index := NewIndex()
	docs := make([]*Document, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(sorted)))

	for i, path := range sorted {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			onEvent(Event{File: path, Stage: StageParsed, Status: StatusWorking})

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
				onEvent(Event{File: path, Stage: StageUnparsed, Status: StatusError})
				return nil
			}
			file := fs.Get(fileID)
			d := NewDocument(normalizeWorkspacePath(path), fs, file, maxDiagnostics)

			d.Parse()
			onEvent(Event{File: path, Stage: StageParsed, Status: StatusWorking})
			if index != nil {
				index.Put(d)
			}
			d.IndexContent()
			d.ComputeScopes()
			onEvent(Event{File: path, Stage: StageComputedScopes, Status: StatusWorking})
			d.Link()
			d.Validate()

			docs[i] = d
			if d.IsValid() {
				onEvent(Event{File: path, Stage: StageValidated, Status: StatusDone})
			} else {
				onEvent(Event{File: path, Stage: StageValidated, Status: StatusError})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return index, docs, err
	}
	return index, docs, nil
}
