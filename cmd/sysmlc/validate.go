package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sysmlc/internal/diag"
	"sysmlc/internal/diagfmt"
	"sysmlc/internal/driver"
	"sysmlc/internal/project"
	"sysmlc/internal/trace"
	"sysmlc/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <files...>",
	Short: "Run the full pipeline and report diagnostics",
	Long: `Validate lexes, parses, resolves names, and validates each file,
reporting every diagnostic collected along the way. With -w it resolves the
file list from the nearest sysml.toml workspace manifest instead of the
positional arguments.`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
	validateCmd.Flags().StringP("format", "f", "text", "output format (text|json|sarif)")
	validateCmd.Flags().Bool("no-colors", false, "disable colorized text output")
	validateCmd.Flags().BoolP("workspace", "w", false, "resolve files from the nearest sysml.toml manifest")
	validateCmd.Flags().Bool("hints", false, "include hint-severity diagnostics and notes")
	validateCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	noColors, err := cmd.Flags().GetBool("no-colors")
	if err != nil {
		return err
	}
	workspace, err := cmd.Flags().GetBool("workspace")
	if err != nil {
		return err
	}
	showHints, err := cmd.Flags().GetBool("hints")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	files, err := resolveValidateFiles(args, workspace)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("validate: no input files")
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	useColor := false
	if !noColors && format == "text" {
		useColor, err = resolveColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
	}

	showProgress := !quiet && format == "text" && outputPath == "" && len(files) > 1 && isTerminal(os.Stderr)

	tracer := trace.FromContext(cmd.Context())
	span := trace.Begin(tracer, trace.ScopeDriver, "validate", 0)

	var index *driver.Index
	var docs []*driver.Document
	if showProgress {
		index, docs, err = runValidateWithProgress(cmd.Context(), files, maxDiagnostics, jobs)
	} else {
		index, docs, err = driver.RunWorkspace(cmd.Context(), files, maxDiagnostics, jobs)
	}
	span.End(fmt.Sprintf("%d file(s)", len(files)))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	driver.EnrichUnresolvedReferences(index, docs)

	hadErrors := false
	for _, d := range docs {
		if d == nil {
			continue
		}
		bag := d.Bag
		if !showHints {
			bag = filteredBag(bag, maxDiagnostics)
		}
		if bag.HasErrors() {
			hadErrors = true
		}

		switch format {
		case "text":
			diagfmt.Pretty(out, bag, d.FileSet, diagfmt.PrettyOpts{
				Color:     useColor,
				Context:   2,
				ShowNotes: showHints,
				ShowFixes: showHints,
			})
		case "json":
			if err := diagfmt.JSON(out, bag, d.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     showHints,
				IncludeFixes:     showHints,
			}, nil); err != nil {
				return fmt.Errorf("validate: %w", err)
			}
		case "sarif":
			if err := diagfmt.Sarif(out, bag, d.FileSet, diagfmt.SarifRunMeta{
				ToolName:       "sysmlc",
				InvocationArgs: files,
			}); err != nil {
				return fmt.Errorf("validate: %w", err)
			}
		default:
			return fmt.Errorf("unsupported --format value %q (must be text, json, or sarif)", format)
		}

		if showTimings {
			fmt.Fprintf(os.Stderr, "%s: stage=%s valid=%v\n", d.Path, d.Stage(), d.IsValid())
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}

// resolveValidateFiles returns the file list validate should run over:
// either the positional args as-is, or every *.sysml/*.kerml file under the
// workspace manifest's roots when -w is set.
func resolveValidateFiles(args []string, workspace bool) ([]string, error) {
	if !workspace {
		return args, nil
	}
	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	}
	manifestPath, ok, err := project.FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no %s found above %q", project.ManifestName, startDir)
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, root := range manifest.DocumentPaths(manifestPath) {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".sysml" || ext == ".kerml" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk workspace root %q: %w", root, err)
		}
	}
	return files, nil
}

// filteredBag returns a copy of bag with hint-severity diagnostics dropped,
// leaving errors, warnings, and info diagnostics untouched.
func filteredBag(bag *diag.Bag, maxDiagnostics int) *diag.Bag {
	out := diag.NewBag(maxDiagnostics)
	for _, item := range bag.Items() {
		if item.Severity == diag.SevHint {
			continue
		}
		out.Add(item)
	}
	return out
}

// runValidateWithProgress drives RunWorkspaceWithProgress under a Bubble Tea
// program that renders internal/ui's per-file progress bar to stderr.
func runValidateWithProgress(ctx context.Context, files []string, maxDiagnostics, jobs int) (*driver.Index, []*driver.Document, error) {
	events := make(chan driver.Event, 64)
	model := ui.NewProgressModel("validating", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))

	var index *driver.Index
	var docs []*driver.Document
	var runErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(events)
		index, docs, runErr = driver.RunWorkspaceWithProgress(ctx, files, maxDiagnostics, jobs, func(ev driver.Event) {
			events <- ev
		})
	}()

	if _, err := program.Run(); err != nil {
		<-done
		return index, docs, err
	}
	<-done
	return index, docs, runErr
}
