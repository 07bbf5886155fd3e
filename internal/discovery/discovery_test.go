package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leyware/tenetlint/internal/rules"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestExtractFrontMatter(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		contents string
		want     string
		wantOK   bool
	}{
		"simple block": {
			contents: "---\nid: x\nversion: '1.0.0'\n---\n# Title\n",
			want:     "id: x\nversion: '1.0.0'",
			wantOK:   true,
		},
		"empty block": {
			contents: "---\n---\nbody\n",
			want:     "",
			wantOK:   true,
		},
		"trailing whitespace on delimiter": {
			contents: "---  \nid: x\n--- \nbody\n",
			want:     "id: x",
			wantOK:   true,
		},
		"no block": {
			contents: "# Just a document\n",
			wantOK:   false,
		},
		"delimiter not at top": {
			contents: "intro\n---\nid: x\n---\n",
			wantOK:   false,
		},
		"unterminated block": {
			contents: "---\nid: x\n",
			wantOK:   false,
		},
		"empty document": {
			contents: "",
			wantOK:   false,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractFrontMatter(tt.contents)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverDir_SortedByPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.md", "---\nid: b\n---\n")
	writeFile(t, dir, "a.md", "---\nid: a\n---\n")
	writeFile(t, dir, "nested/c.md", "---\nid: c\n---\n")
	writeFile(t, dir, "ignored.txt", "not markdown")

	sources, err := DiscoverDir(dir, rules.KindTenet)
	require.NoError(t, err)
	require.Len(t, sources, 3)

	assert.Equal(t, filepath.Join(dir, "a.md"), sources[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.md"), sources[1].Path)
	assert.Equal(t, filepath.Join(dir, "nested", "c.md"), sources[2].Path)

	for _, s := range sources {
		assert.Equal(t, rules.KindTenet, s.Kind)
	}
	assert.Equal(t, "id: a", sources[0].FrontMatter)
}

func TestDiscoverDir_MissingDirectory(t *testing.T) {
	t.Parallel()

	sources, err := DiscoverDir(filepath.Join(t.TempDir(), "nope"), rules.KindBinding)
	assert.NoError(t, err)
	assert.Empty(t, sources)
}

func TestDiscoverDir_DocumentWithoutFrontMatter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "plain.md", "# No front matter here\n")

	sources, err := DiscoverDir(dir, rules.KindTenet)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Empty(t, sources[0].FrontMatter, "still discovered so validation can flag it")
}

func TestKnownTenetIDs(t *testing.T) {
	t.Parallel()

	tenets := []Source{
		{Path: "docs/tenets/simplicity.md"},
		{Path: "docs/tenets/testability.md"},
	}

	ids := KnownTenetIDs(tenets)
	assert.Equal(t, map[string]bool{"simplicity": true, "testability": true}, ids)
}

func TestReadExpectedVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("trims whitespace", func(t *testing.T) {
		path := writeFile(t, dir, "VERSION", "1.2.3\n")
		version, err := ReadExpectedVersion(path)
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", version)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "EMPTY", "  \n")
		_, err := ReadExpectedVersion(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadExpectedVersion(filepath.Join(dir, "nope"))
		assert.Error(t, err)
	})
}
