package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/fix"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
	"sysmlc/internal/symbols"
	"sysmlc/internal/validate"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <files...>",
	Short: "Apply available fixes to source files",
	Long:  "Run diagnostics, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply the fix with a specific identifier")
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	if targetID != "" && (applyAll || applyOnce) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}
	if targetID != "" && len(args) != 1 {
		return fmt.Errorf("fix: --id can only be used with a single file")
	}

	mode := fix.ApplyModeOnce
	switch {
	case targetID != "":
		mode = fix.ApplyModeID
	case applyAll:
		mode = fix.ApplyModeAll
	}
	opts := fix.ApplyOptions{Mode: mode, TargetID: targetID}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	var diagnostics []diag.Diagnostic
	for _, path := range args {
		fileID, err := fs.Load(path)
		if err != nil {
			return fmt.Errorf("fix: failed to load %q: %w", path, err)
		}
		file := fs.Get(fileID)

		bag := diag.NewBag(maxDiagnostics)
		reporter := diag.BagReporter{Bag: bag}
		strs := source.NewInterner()
		builder := ast.NewBuilder(ast.Hints{})
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		result := parser.ParseDocument(fs, lx, builder, strs, parser.Options{Reporter: reporter})

		res := symbols.Compute(builder, result.Root, strs)
		validate.Run(validate.Input{
			Builder:  builder,
			Root:     result.Root,
			Result:   res,
			Reporter: reporter,
		})

		diagnostics = append(diagnostics, bag.Items()...)
	}

	res, applyErr := fix.Apply(fs, diagnostics, opts)
	return handleApplyResult(res, applyErr)
}

func handleApplyResult(res *fix.ApplyResult, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(os.Stdout, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(os.Stdout, "  %s [%s] - %s (%d edits, %s)\n",
				item.Title, item.ID, location, item.EditCount, item.Applicability.String())
		}
	}

	if len(res.FileChanges) > 0 {
		fmt.Fprintln(os.Stdout, "Updated files:")
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}

	if len(res.Applied) == 0 {
		fmt.Fprintln(os.Stdout, "No fixes applied.")
	}
	return nil
}
