// Package testutil provides filesystem helpers for tenetlint tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateDocRepo creates a documentation repo layout (tenets/, bindings/,
// VERSION) in a temp directory and returns its root. Cleanup is handled by
// t.TempDir.
func CreateDocRepo(t *testing.T, version string) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range []string{"tenets", "bindings"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s directory: %v", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "VERSION"), []byte(version+"\n"), 0644); err != nil {
		t.Fatalf("failed to write VERSION file: %v", err)
	}
	return root
}

// WriteDoc writes a markdown document with the given front-matter block under
// root. rel is relative to root, e.g. "tenets/simplicity.md".
func WriteDoc(t *testing.T, root, rel, frontMatter string) string {
	t.Helper()

	path := filepath.Join(root, rel)
	contents := "---\n" + frontMatter + "---\n# Title\n\nBody text.\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write document %s: %v", rel, err)
	}
	return path
}

// TenetFrontMatter returns a valid tenet front-matter block.
func TenetFrontMatter(id, version string) string {
	return "id: " + id + "\nlast_modified: '2025-05-10'\nversion: '" + version + "'\n"
}

// BindingFrontMatter returns a valid binding front-matter block.
func BindingFrontMatter(id, derivedFrom, version string) string {
	return "id: " + id + "\nlast_modified: '2025-05-10'\nderived_from: " + derivedFrom +
		"\nenforced_by: 'code review'\nversion: '" + version + "'\n"
}
