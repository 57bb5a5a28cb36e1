package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/diagfmt"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] <files...>",
	Short: "Export the parsed syntax tree",
	Long:  "Export parses each file and writes its syntax tree as an indented outline or as JSON, without running name resolution or validation.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
	exportCmd.Flags().StringP("format", "f", "ast", "export format (json|ast)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	hadErrors := false
	for _, path := range args {
		fs := source.NewFileSet()
		fileID, err := fs.Load(path)
		if err != nil {
			return fmt.Errorf("export: failed to load %q: %w", path, err)
		}
		file := fs.Get(fileID)

		bag := diag.NewBag(maxDiagnostics)
		reporter := diag.BagReporter{Bag: bag}
		strs := source.NewInterner()
		builder := ast.NewBuilder(ast.Hints{})
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		result := parser.ParseDocument(fs, lx, builder, strs, parser.Options{Reporter: reporter})

		if bag.HasErrors() {
			hadErrors = true
			diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Context: 1})
		}

		switch format {
		case "ast":
			if err := diagfmt.FormatASTPretty(out, builder, result.Root, strs, fs); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		case "json":
			if err := diagfmt.FormatASTJSON(out, builder, result.Root, strs); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		default:
			return fmt.Errorf("unsupported --format value %q (must be json or ast)", format)
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}
