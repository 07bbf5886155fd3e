package frontmatter

import (
	"regexp"
	"strings"
)

// keyDefinition matches a zero-indent identifier immediately followed by a
// colon, the shape of a top-level key definition.
var keyDefinition = regexp.MustCompile(`^([A-Za-z0-9_-]+):`)

// scanLineMap re-scans the raw block line by line and records the first line
// on which each top-level mapping key is defined, 1-indexed from the start of
// the block. This is a best-effort heuristic, not a second structural parse:
// a multi-line scalar body that itself contains a zero-indent "word:" line
// can mis-map that key.
func scanLineMap(raw string, m *Mapping) map[string]int {
	lineMap := make(map[string]int, m.Len())

	for i, line := range strings.Split(raw, "\n") {
		match := keyDefinition.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		key := match[1]
		if !m.Has(key) {
			continue
		}
		if _, mapped := lineMap[key]; mapped {
			continue
		}
		lineMap[key] = i + 1
	}

	return lineMap
}
