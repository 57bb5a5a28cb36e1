package diag

import "sysmlc/internal/source"

// TextEdit is a single text replacement anchored to a span. OldText, when
// set, guards application: the fix engine refuses to apply an edit whose
// span no longer contains the expected text.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind classifies a fix for presentation purposes.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactor
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactor:
		return "refactor"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	case FixKindSourceAction:
		return "source"
	default:
		return "unknown"
	}
}

// FixApplicability records how confident a fix is that its edits are correct
// without a human reviewing them first.
type FixApplicability uint8

const (
	FixApplicabilityAlwaysSafe FixApplicability = iota
	FixApplicabilitySafeWithHeuristics
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	default:
		return "unknown"
	}
}

// FixBuildContext carries the data a lazy Thunk needs to materialise edits.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk defers construction of a fix's edits until it is actually needed
// (applying or previewing), rather than every time the fix is merely listed.
type FixThunk interface {
	ID() string
	Build(FixBuildContext) (Fix, error)
}

// Fix describes a possible automated correction attached to a diagnostic.
// Edits may be supplied directly, or produced lazily through Thunk when
// computing them upfront would be wasted work for suggestions nobody applies.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	RequiresAll   bool
	Edits         []TextEdit
	Thunk         FixThunk
}

// Resolve materialises f, invoking its Thunk if one is attached. A
// zero-valued ID (then, failing that, Thunk.ID()), Title or Edits on f is
// taken from what the thunk produced; every other field keeps f's value.
func (f Fix) Resolve(ctx FixBuildContext) (Fix, error) {
	if f.Thunk == nil {
		return f, nil
	}
	built, err := f.Thunk.Build(ctx)
	if err != nil {
		return f, err
	}
	if f.ID == "" {
		f.ID = built.ID
	}
	if f.ID == "" {
		f.ID = f.Thunk.ID()
	}
	if f.Title == "" {
		f.Title = built.Title
	}
	if len(f.Edits) == 0 {
		f.Edits = built.Edits
	}
	return f, nil
}

// MaterializeFixes resolves every fix in fixes against ctx, stopping at the
// first error.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	resolved := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		r, err := f.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}
