// Package fuzztests houses Go fuzz harnesses that exercise the front-end
// pipeline (source -> lexer -> parser) on arbitrary byte inputs. Their goal
// is robustness: no panics, no unbounded allocation, and no infinite loops
// in error recovery, regardless of what garbage a fuzzer feeds them.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/ast.
package fuzztests
