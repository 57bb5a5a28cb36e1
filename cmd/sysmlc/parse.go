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

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <files...>",
	Short: "Lex and parse SysML/KerML source without resolving names",
	Long:  "Parse runs the lexer and recursive-descent parser over each file and reports syntax diagnostics, without name resolution or validation.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
	parseCmd.Flags().StringP("format", "f", "json", "diagnostic output format (json|compact)")
	parseCmd.Flags().Bool("no-colors", false, "disable colorized compact output")
}

func runParse(cmd *cobra.Command, args []string) error {
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
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	useColor := false
	if !noColors {
		useColor, err = resolveColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
	}

	hadErrors := false
	for _, path := range args {
		bag, fs, err := parseOneFile(path, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		if bag.HasErrors() {
			hadErrors = true
		}
		switch format {
		case "compact":
			diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{Color: useColor, Context: 1})
		case "json":
			if err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true}, nil); err != nil {
				return fmt.Errorf("parse: %w", err)
			}
		default:
			return fmt.Errorf("unsupported --format value %q (must be json or compact)", format)
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}

func parseOneFile(path string, maxDiagnostics int) (*diag.Bag, *source.FileSet, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	strs := source.NewInterner()
	builder := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	parser.ParseDocument(fs, lx, builder, strs, parser.Options{Reporter: reporter})
	return bag, fs, nil
}
