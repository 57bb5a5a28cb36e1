package token_test

import (
	"testing"

	"sysmlc/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		lexeme string
		want   token.Kind
	}{
		{"package", token.KwPackage},
		{"import", token.KwImport},
		{"part", token.KwPart},
		{"def", token.KwDef},
		{"private", token.KwPrivate},
		{"in", token.KwIn},
		{"from", token.KwFrom},
		{"to", token.KwTo},
		{"by", token.KwBy},
		{"of", token.KwOf},
		{"for", token.KwFor},
		{"then", token.KwThen},
		{"via", token.KwVia},
		{"all", token.KwAll},
		{"as", token.KwAs},
	}
	for _, c := range cases {
		got, ok := token.LookupKeyword(c.lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q): not found", c.lexeme)
		}
		if got != c.want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", c.lexeme, got, c.want)
		}
	}
}

func TestLookupKeywordCaseSensitive(t *testing.T) {
	if _, ok := token.LookupKeyword("Package"); ok {
		t.Fatalf("keywords must be lowercase-only")
	}
	if _, ok := token.LookupKeyword("PACKAGE"); ok {
		t.Fatalf("keywords must be lowercase-only")
	}
}

func TestEveryKeywordIsIdentLike(t *testing.T) {
	// Every reserved word must round-trip as a usable identifier token.
	words := []string{
		"package", "import", "class", "in", "out", "inout", "private",
		"protected", "public", "def", "from", "to", "alias", "all", "as",
		"by", "for", "of", "then", "until", "via",
	}
	for _, w := range words {
		k, ok := token.LookupKeyword(w)
		if w == "class" {
			// "class" is not part of this grammar's keyword set; it should
			// lex as a plain identifier, not a keyword.
			if ok {
				t.Fatalf("%q unexpectedly registered as a keyword", w)
			}
			continue
		}
		if !ok {
			t.Fatalf("%q should be a keyword", w)
		}
		tok := token.Token{Kind: k, Text: w}
		if !tok.IdentLike() {
			t.Fatalf("keyword %q must be usable as an identifier", w)
		}
	}
}

func TestKindStringCoversKeywords(t *testing.T) {
	for lexeme := range map[string]struct{}{"package": {}, "part": {}, "def": {}} {
		k, _ := token.LookupKeyword(lexeme)
		if k.String() == "<unknown>" {
			t.Fatalf("Kind.String() missing entry for keyword %q", lexeme)
		}
	}
}
