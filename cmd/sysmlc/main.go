// Command sysmlc is the SysML v2/KerML front-end compiler CLI: lex+parse,
// name resolution, and semantic validation over .sysml/.kerml source,
// ported from the teacher's cmd/surge command-per-file layout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "sysmlc",
	Short: "SysML v2 / KerML front-end compiler",
	Long: `sysmlc lexes, parses, resolves names, and validates SysML v2 and
KerML source files, reporting diagnostics as text, JSON, or SARIF.`,
}

func main() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-diagnostic output")
	rootCmd.PersistentFlags().Bool("timings", false, "after validate, print each document's final pipeline stage and validity to stderr (no durations are measured)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 256, "cap the number of diagnostics collected per document")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to path (\"-\" for stderr); empty disables tracing")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace verbosity (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "ring", "trace storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "ring tracer capacity, for crash dumps")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor interprets the --color flag against the output file's
// terminal-ness: "auto" colorizes only when out is a TTY, "on"/"off"
// override that unconditionally.
func resolveColor(cmd *cobra.Command, out *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(out), nil
	default:
		return false, fmt.Errorf("unsupported --color value %q (must be auto, on, or off)", mode)
	}
}

// openOutput returns os.Stdout for "-" or an empty path, otherwise creates path and
// returns it as the writer; the returned closer must be called by callers.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
