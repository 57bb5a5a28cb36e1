package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.sysml и *.kerml файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".sysml", ".kerml":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addLanguageSeeds seeds the corpus with small hand-written snippets that
// exercise the grammar's distinct constructs: packages, definitions, usages,
// specialization, imports, and metadata annotations.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"package P;",
		"package P { part def A; }",
		"part def A :> B;",
		"package Lib { part def Widget; } package App { import Lib::*; part def W :> Widget; }",
		"package A { package B { part def X; } } package C { part def Y :> A::B::X; }",
		"item def SharedTypeRegistry { attribute package : String = \"x\"; }",
		"abstract part def A;",
		"part myPart : SomeDef;",
		"#Metadata part def A;",
		"package P { alias Q for A::B; }",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
