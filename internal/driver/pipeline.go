package driver

import (
	"sysmlc/internal/diag"
	"sysmlc/internal/observ"
	"sysmlc/internal/source"
)

// DiagnoseOptions configures a single-document run through the whole
// pipeline. It is the driver-level counterpart to cmd/sysmlc's parse/
// validate/export flags.
type DiagnoseOptions struct {
	MaxDiagnostics   int
	IgnoreWarnings   bool
	WarningsAsErrors bool
	EnableTimings    bool
}

// DiagnoseResult is one document's fully-run pipeline state, plus optional
// timing data collected along the way.
type DiagnoseResult struct {
	Document *Document
	Timings  *observ.Report
}

// Diagnose loads path, runs it through every pipeline stage, and returns
// the resulting Document. It does not register the document with a shared
// Index — callers that need cross-document resolution should use
// RunWorkspace or construct an Index themselves and call Document.Run.
func Diagnose(path string, opts DiagnoseOptions) (*DiagnoseResult, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, "")
	}

	fs := source.NewFileSet()
	loadIdx := begin("load")
	fileID, err := fs.Load(path)
	end(loadIdx)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	d := NewDocument(path, fs, file, maxDiag)

	pipelineIdx := begin("pipeline")
	d.Run(nil)
	end(pipelineIdx)

	applyDiagnosticFilters(d, opts)

	var report *observ.Report
	if timer != nil {
		r := timer.Report()
		report = &r
	}
	return &DiagnoseResult{Document: d, Timings: report}, nil
}

func applyDiagnosticFilters(d *Document, opts DiagnoseOptions) {
	if opts.IgnoreWarnings {
		d.Bag.Filter(func(item diag.Diagnostic) bool {
			return item.Severity != diag.SevWarning && item.Severity != diag.SevInfo && item.Severity != diag.SevHint
		})
	}
	if opts.WarningsAsErrors {
		d.Bag.Transform(func(item diag.Diagnostic) diag.Diagnostic {
			if item.Severity == diag.SevWarning {
				item.Severity = diag.SevError
			}
			return item
		})
		d.Bag.Sort()
	}
}
