package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sysmlc/internal/diag"
	"sysmlc/internal/lexer"
	"sysmlc/internal/source"
	"sysmlc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysml", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность значимых токенов, не считая EOF.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v (errors: %v)", kind, tok.Kind, reporter.ErrorMessages())
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
}

// ====== identifiers and keywords ======

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []string{"foo", "_bar", "__test", "x123", "camelCase", "PartUsage"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestIdentifiers_NonASCIIStartIsUnknownChar(t *testing.T) {
	// Bare identifiers are ASCII-only; Unicode letters outside quotes are an error.
	lx, reporter := makeTestLexer("变量")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected an error to be reported")
	}
}

func TestKeywords_Lowercase(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"package", token.KwPackage},
		{"part", token.KwPart},
		{"attribute", token.KwAttribute},
		{"def", token.KwDef},
		{"import", token.KwImport},
		{"specializes", token.KwSpecializes},
		{"subsets", token.KwSubsets},
		{"redefines", token.KwRedefines},
		{"abstract", token.KwAbstract},
		{"readonly", token.KwReadonly},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"null", token.KwNull},
		{"doc", token.KwDoc},
		{"comment", token.KwComment},
		{"about", token.KwAbout},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, tok.Kind)
			}
			if !tok.IsKeyword() {
				t.Errorf("expected %q to be a keyword", tt.input)
			}
		})
	}
}

func TestKeywords_CapitalizedAreIdents(t *testing.T) {
	// Keywords are case-sensitive lowercase; any other casing is a plain Ident.
	tests := []string{"Part", "PART", "Package", "Def", "DEF", "Attribute"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, _ := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Ident {
				t.Errorf("expected Ident for %q, got %v", input, tok.Kind)
			}
		})
	}
}

func TestClassIsNotAKeyword(t *testing.T) {
	lx, _ := makeTestLexer("class")
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
}

func TestEveryKeywordIdentLikeInLexerOutput(t *testing.T) {
	lx, _ := makeTestLexer("part")
	tok := lx.Next()
	if !tok.IdentLike() {
		t.Fatalf("expected keyword token to be IdentLike")
	}
}

// ====== numbers ======

func TestNumbers_Decimal(t *testing.T) {
	for _, input := range []string{"0", "123", "456789"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.IntLit, input)
		})
	}
}

func TestNumbers_Hex(t *testing.T) {
	for _, input := range []string{"0x0", "0xF", "0xDEADBEEF", "0Xff"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.HexLit, input)
		})
	}
}

func TestNumbers_Binary(t *testing.T) {
	for _, input := range []string{"0b0", "0b1010", "0B1111"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.BinLit, input)
		})
	}
}

func TestNumbers_Octal(t *testing.T) {
	for _, input := range []string{"0o0", "0o17", "0O777"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.OctLit, input)
		})
	}
}

func TestNumbers_BadBasePrefix(t *testing.T) {
	// '0x' with no hex digit after it is an error, not a silently empty literal.
	lx, reporter := makeTestLexer("0x")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexBadNumber to be reported")
	}
}

func TestNumbers_Real(t *testing.T) {
	for _, input := range []string{"1.0", "3.14", "0.5", "123.456"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.RealLit, input)
		})
	}
}

func TestNumbers_RealWithExponent(t *testing.T) {
	for _, input := range []string{"1e10", "1E10", "1e+10", "1e-10", "1.5e10"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.RealLit, input)
		})
	}
}

func TestNumbers_TrailingDotIsNotReal(t *testing.T) {
	// "1." has no digit after the dot, so it must not be folded into a real literal.
	expectTokens(t, "1.", []token.Kind{token.IntLit, token.Dot})
}

func TestNumbers_LeadingDotIsNotReal(t *testing.T) {
	expectTokens(t, ".5", []token.Kind{token.Dot, token.IntLit})
}

func TestNumbers_DotDotNotSplitByNumber(t *testing.T) {
	expectTokens(t, "1..5", []token.Kind{token.IntLit, token.DotDot, token.IntLit})
}

// ====== strings and unrestricted names ======

func TestString_Simple(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
}

func TestString_WithEscapes(t *testing.T) {
	expectSingleToken(t, `"a\n\t\r\"\\b"`, token.StringLit, `"a\n\t\r\"\\b"`)
}

func TestString_UnicodeEscape(t *testing.T) {
	expectSingleToken(t, `"\u{1F600}"`, token.StringLit, `"\u{1F600}"`)
}

func TestString_BadEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"\q"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("expected StringLit despite the bad escape, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexBadEscape to be reported")
	}
}

func TestString_UnterminatedAtNewline(t *testing.T) {
	lx, reporter := makeTestLexer("\"abc\ndef\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnterminatedString to be reported")
	}
}

func TestUnrestrictedName_Simple(t *testing.T) {
	expectSingleToken(t, "'hello world'", token.UnrestrictedName, "'hello world'")
}

func TestUnrestrictedName_ContainsUnicode(t *testing.T) {
	expectSingleToken(t, "'λ и δ'", token.UnrestrictedName, "'λ и δ'")
}

func TestUnrestrictedName_EscapedQuote(t *testing.T) {
	expectSingleToken(t, `'it\'s fine'`, token.UnrestrictedName, `'it\'s fine'`)
}

func TestUnrestrictedName_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("'abc")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnterminatedName to be reported")
	}
}

// ====== punctuation and operators ======

func TestOperators_LongestMatchWins(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"::=", token.ComputedAssign},
		{":>>", token.RedefineOp},
		{"===", token.EqEqEq},
		{"!==", token.BangEqEq},
		{"::", token.ColonColon},
		{":>", token.SubsetOp},
		{":=", token.CoalesceAssign},
		{"..", token.DotDot},
		{"**", token.StarStar},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"??", token.QuestionQuestion},
		{":", token.Colon},
		{">", token.Gt},
		{"<", token.Lt},
		{"=", token.Assign},
		{"!", token.Bang},
		{"?", token.Question},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperators_AmbiguousPrefixesSplitCorrectly(t *testing.T) {
	expectTokens(t, "a:::=b", []token.Kind{token.Ident, token.ColonColon, token.CoalesceAssign, token.Ident})
}

func TestPunctuation_Brackets(t *testing.T) {
	expectTokens(t, "{}[]()", []token.Kind{
		token.LBrace, token.RBrace,
		token.LBracket, token.RBracket,
		token.LParen, token.RParen,
	})
}

func TestPunctuation_UnknownCharacter(t *testing.T) {
	lx, reporter := makeTestLexer("$")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnknownChar to be reported")
	}
}

// ====== trivia and doc comments ======

func TestTrivia_LineCommentSkipped(t *testing.T) {
	expectTokens(t, "part // a comment\ndef", []token.Kind{token.KwPart, token.KwDef})
}

func TestTrivia_BlockCommentSkipped(t *testing.T) {
	expectTokens(t, "part /* inner */ def", []token.Kind{token.KwPart, token.KwDef})
}

func TestTrivia_NestedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* outer /* inner */ still outer */ part")
	tok := lx.Next()
	if tok.Kind != token.KwPart {
		t.Fatalf("expected KwPart after nested comment, got %v (errors: %v)", tok.Kind, reporter.ErrorMessages())
	}
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnterminatedComment to be reported")
	}
}

func TestTrivia_LeadingAttachedToNextToken(t *testing.T) {
	lx, _ := makeTestLexer("  // note\npart")
	tok := lx.Next()
	if tok.Kind != token.KwPart {
		t.Fatalf("expected KwPart, got %v", tok.Kind)
	}
	if len(tok.Leading) == 0 {
		t.Fatalf("expected leading trivia to be attached")
	}
}

func TestDocComment_IsItsOwnToken(t *testing.T) {
	expectTokens(t, "/** about the part */ part", []token.Kind{token.DocComment, token.KwPart})
}

func TestDocComment_EmptyBlockIsPlainComment(t *testing.T) {
	// "/**/" is a 4-byte empty plain block comment, not an empty doc comment.
	expectTokens(t, "/**/ part", []token.Kind{token.KwPart})
}

func TestDocComment_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("/** never closed")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnterminatedComment to be reported")
	}
}

// ====== Peek ======

func TestPeek_DoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("part def")
	peeked := lx.Peek()
	if peeked.Kind != token.KwPart {
		t.Fatalf("expected KwPart, got %v", peeked.Kind)
	}
	next := lx.Next()
	if next.Kind != token.KwPart {
		t.Fatalf("Peek should not consume: expected KwPart, got %v", next.Kind)
	}
	after := lx.Next()
	if after.Kind != token.KwDef {
		t.Fatalf("expected KwDef, got %v", after.Kind)
	}
}

// ====== EOF ======

func TestEOF_Repeats(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: expected EOF, got %v", i, tok.Kind)
		}
	}
}

func TestEOF_AfterWhitespaceOnly(t *testing.T) {
	lx, _ := makeTestLexer("   \n\n  ")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
}

// ====== a representative snippet ======

func TestSnippet_PartDefinition(t *testing.T) {
	src := `package Vehicles {
	part def Engine {
		attribute power : ScalarValues::Real;
	}
}`
	expectTokens(t, src, []token.Kind{
		token.KwPackage, token.Ident, token.LBrace,
		token.KwPart, token.KwDef, token.Ident, token.LBrace,
		token.KwAttribute, token.Ident, token.Colon, token.Ident, token.ColonColon, token.Ident, token.Semicolon,
		token.RBrace,
		token.RBrace,
	})
}
