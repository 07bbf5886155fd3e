// Package discovery locates tenet and binding documents, extracts their raw
// front-matter blocks, and supplies the shared inputs of a validation run
// (expected version, known tenet ids).
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leyware/tenetlint/internal/rules"
)

// Source is one discovered document ready for validation. FrontMatter is the
// raw text between the '---' delimiters with the delimiter lines stripped;
// it is empty when the document has no front-matter block. Error lines and
// context snippets are both relative to this block, so the two always agree.
type Source struct {
	Path        string
	Kind        rules.DocKind
	FrontMatter string
}

// DiscoverDir walks dir for markdown documents of the given kind and returns
// them sorted by path. Sorted order keeps duplicate-id ownership deterministic
// across runs. A missing directory yields no sources and no error.
func DiscoverDir(dir string, kind rules.DocKind) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		block, _ := ExtractFrontMatter(string(data))
		sources = append(sources, Source{
			Path:        path,
			Kind:        kind,
			FrontMatter: block,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}

// ExtractFrontMatter returns the raw front-matter block of a document. The
// block must start with a '---' line at the very top of the document and end
// at the next '---' line. The returned text excludes both delimiter lines.
// ok is false when the document has no block or the block is unterminated.
func ExtractFrontMatter(contents string) (block string, ok bool) {
	lines := strings.Split(contents, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != "---" {
		return "", false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == "---" {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}

// KnownTenetIDs derives the set of valid derived_from targets from the tenet
// sources. A tenet's id is its file basename without the .md extension; this
// stays available even when the tenet's own front matter is broken, so one
// bad tenet does not cascade reference errors into every binding.
func KnownTenetIDs(tenets []Source) map[string]bool {
	ids := make(map[string]bool, len(tenets))
	for _, t := range tenets {
		base := filepath.Base(t.Path)
		ids[strings.TrimSuffix(base, ".md")] = true
	}
	return ids
}

// ReadExpectedVersion reads the repository version token from path. The file
// holds a single semantic version, optionally with surrounding whitespace.
func ReadExpectedVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading version file %s: %w", path, err)
	}
	version := strings.TrimSpace(string(data))
	if version == "" {
		return "", fmt.Errorf("version file %s is empty", path)
	}
	return version, nil
}
