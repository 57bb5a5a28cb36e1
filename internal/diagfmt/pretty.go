package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sysmlc/internal/diag"
	"sysmlc/internal/source"
)

var (
	prettySevColor = map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevHint:    color.New(color.FgHiBlack),
	}
	prettyCodeColor  = color.New(color.FgHiBlack)
	prettyCaretColor = color.New(color.FgRed, color.Bold)
	prettyNoteColor  = color.New(color.FgBlue)
	prettyFixColor   = color.New(color.FgGreen)
	prettyPreviewOld = color.New(color.FgRed)
	prettyPreviewNew = color.New(color.FgGreen)
)

// Pretty formats bag's diagnostics into a human-readable report, one block
// per diagnostic in the order returned by bag.Items() (callers wanting
// deterministic ordering should call bag.Sort() first). Each block prints
// the primary location, severity, code and message, then optionally the
// surrounding source lines, notes, and fix suggestions.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	ctx := diag.FixBuildContext{FileSet: fs}

	for _, d := range bag.Items() {
		writePrettyHeader(w, d, fs, opts)

		if opts.Context > 0 && fs != nil {
			writePrettyContext(w, d, fs, opts)
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				writePrettyNote(w, note, fs, opts)
			}
		}

		if opts.ShowFixes && len(d.Fixes) > 0 {
			writePrettyFixes(w, d.Fixes, fs, ctx, opts)
		}
	}
}

func writePrettyHeader(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	path, line, col := prettyLocation(d.Primary, fs, opts.PathMode)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		if c, ok := prettySevColor[d.Severity]; ok {
			sev = c.Sprint(sev)
		}
		code = prettyCodeColor.Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, line, col, sev, code, d.Message)
}

func writePrettyContext(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(d.Primary)

	radius := uint32(opts.Context)
	first := uint32(1)
	if start.Line > radius {
		first = start.Line - radius
	}
	last := end.Line + radius

	for lineNum := first; lineNum <= last; lineNum++ {
		text := file.GetLine(lineNum)
		if text == "" && lineNum != start.Line {
			continue
		}
		fmt.Fprintf(w, "  %4d | %s\n", lineNum, text)
		if lineNum == start.Line {
			writePrettyCaret(w, start, end, opts)
		}
	}
}

func writePrettyCaret(w io.Writer, start, end source.LineCol, opts PrettyOpts) {
	col := start.Col
	if col == 0 {
		col = 1
	}
	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	pad := strings.Repeat(" ", int(col-1))
	caret := strings.Repeat("^", int(width))
	if opts.Color {
		caret = prettyCaretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "         %s%s\n", pad, caret)
}

func writePrettyNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	path, line, col := prettyLocation(note.Span, fs, opts.PathMode)
	label := fmt.Sprintf("note: %s:%d:%d: %s", path, line, col, note.Msg)
	if opts.Color {
		label = prettyNoteColor.Sprint(label)
	}
	fmt.Fprintf(w, "  %s\n", label)
}

func writePrettyFixes(w io.Writer, fixes []diag.Fix, fs *source.FileSet, ctx diag.FixBuildContext, opts PrettyOpts) {
	for i, f := range fixes {
		resolved, err := f.Resolve(ctx)
		header := fmt.Sprintf("fix #%d: %s", i+1, resolved.Title)
		if resolved.ID != "" {
			header += fmt.Sprintf(" (id=%s)", resolved.ID)
		}
		if opts.Color {
			header = prettyFixColor.Sprint(header)
		}
		fmt.Fprintf(w, "  %s\n", header)

		if err != nil {
			fmt.Fprintf(w, "    build error: %v\n", err)
			continue
		}

		for _, edit := range resolved.Edits {
			fmt.Fprintf(w, "    apply=%q\n", edit.NewText)
			if opts.ShowPreview {
				writePrettyPreview(w, fs, edit, opts)
			}
		}
	}
}

func writePrettyPreview(w io.Writer, fs *source.FileSet, edit diag.TextEdit, opts PrettyOpts) {
	preview, err := buildFixEditPreview(fs, edit)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "    preview:")
	for _, line := range preview.before {
		text := "- " + line
		if opts.Color {
			text = prettyPreviewOld.Sprint(text)
		}
		fmt.Fprintf(w, "    %s\n", text)
	}
	for _, line := range preview.after {
		text := "+ " + line
		if opts.Color {
			text = prettyPreviewNew.Sprint(text)
		}
		fmt.Fprintf(w, "    %s\n", text)
	}
}

// prettyLocation resolves span into a display path plus 1-based line/column,
// honoring mode the same way makeLocation does for JSON output.
func prettyLocation(span source.Span, fs *source.FileSet, mode PathMode) (path string, line, col uint32) {
	if fs == nil {
		return "<unknown>", 0, 0
	}
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>", 0, 0
	}

	switch mode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	default:
		path = f.FormatPath("auto", "")
	}

	start, _ := fs.Resolve(span)
	return path, start.Line, start.Col
}
