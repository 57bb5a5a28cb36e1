package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is the parsed shape of sysml.toml, ported from the teacher's
// surge.toml handling (internal/project/modulemeta.go's manifest struct,
// now deleted along with the rest of Surge's file-per-module machinery —
// see DESIGN.md). A SysML workspace has no module-path-to-file mapping to
// reconstruct: it names a set of document roots, whose *.sysml/*.kerml files
// `validate -w` loads as one in-memory multi-document build, and library
// search paths, which no command reads.
type Manifest struct {
	Workspace WorkspaceSection `toml:"workspace"`
	Library   LibrarySection   `toml:"library"`
}

// WorkspaceSection lists the directories (relative to the manifest) whose
// *.sysml and *.kerml files belong to this build.
type WorkspaceSection struct {
	Roots []string `toml:"roots"`
}

// LibrarySection lists additional search paths. LibraryPaths resolves them,
// but no command reads them and `import` resolution does not consult them.
type LibrarySection struct {
	SearchPaths []string `toml:"search_paths"`
}

// LoadManifest parses sysml.toml at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}
	return &m, nil
}

// DocumentPaths resolves every workspace root to an absolute directory,
// relative to the manifest's own directory.
func (m *Manifest) DocumentPaths(manifestPath string) []string {
	if m == nil {
		return nil
	}
	base := filepath.Dir(manifestPath)
	out := make([]string, 0, len(m.Workspace.Roots))
	for _, root := range m.Workspace.Roots {
		if filepath.IsAbs(root) {
			out = append(out, root)
			continue
		}
		out = append(out, filepath.Join(base, root))
	}
	return out
}

// LibraryPaths resolves every configured library search path the same way.
func (m *Manifest) LibraryPaths(manifestPath string) []string {
	if m == nil {
		return nil
	}
	base := filepath.Dir(manifestPath)
	out := make([]string, 0, len(m.Library.SearchPaths))
	for _, p := range m.Library.SearchPaths {
		if filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		out = append(out, filepath.Join(base, p))
	}
	return out
}

// WriteDefaultManifest creates a starter sysml.toml at path, used by a
// future `sysmlc init`-style command; kept minimal on purpose.
func WriteDefaultManifest(path string) error {
	const body = "[workspace]\nroots = [\".\"]\n\n[library]\nsearch_paths = []\n"
	return os.WriteFile(path, []byte(body), 0o644)
}
