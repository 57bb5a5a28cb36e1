// Package token defines lexical token kinds and trivia for the SysML v2 /
// KerML front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Every keyword token is also accepted as an identifier wherever the
//     parser expects one; IsKeyword does not mean "cannot be a name".
//   - Inline and prefixed metadata use '@' / '#' (Kind: At / Hash) + a
//     qualified name; there is no per-metadata-kind token.
//   - /** ... */ doc comments are a distinct DocComment token, consumed by
//     the doc/comment/rep productions; // and /* */ comments are trivia.
package token
