package fuzztests

import (
	"testing"
	"time"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/parser"
	"sysmlc/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sysml", input)
		file := fs.Get(fileID)
		strings := source.NewInterner()

		bag := diag.NewBag(128)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})

		builder := ast.NewBuilder(ast.Hints{})
		opts := parser.Options{
			Reporter:  reporter,
			MaxErrors: 128,
		}

		parser.ParseDocument(fs, lx, builder, strings, opts)
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input, using a
// wall-clock timeout to detect infinite loops in error recovery.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("package P { part def A }"))                       // missing semicolon
	f.Add([]byte("part def A :> B :> C :> A;"))                      // specialization cycle
	f.Add([]byte("package { part def A; }"))                         // anonymous package
	f.Add([]byte("part def A { part def B { part def C { } } }"))    // deeply nested
	f.Add([]byte("import ;"))                                        // empty import segment
	f.Add([]byte("part def A :> :> B;"))                              // malformed specialization
	f.Add([]byte("package P { package P { part def P; } }"))         // repeated names

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.sysml", input)
			file := fs.Get(fileID)
			strings := source.NewInterner()

			bag := diag.NewBag(128)
			reporter := diag.BagReporter{Bag: bag}
			lx := lexer.New(file, lexer.Options{Reporter: reporter})

			builder := ast.NewBuilder(ast.Hints{})
			opts := parser.Options{
				Reporter:  reporter,
				MaxErrors: 128,
			}

			parser.ParseDocument(fs, lx, builder, strings, opts)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
