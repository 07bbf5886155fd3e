// Package rules evaluates schema, format, uniqueness, and cross-reference
// checks against parsed front matter and reports violations through a shared
// collector.
package rules

import "fmt"

// DocKind identifies the kind of document being validated.
type DocKind string

const (
	// KindTenet is a foundational principle document with no derived_from reference.
	KindTenet DocKind = "tenet"
	// KindBinding is a document implementing a tenet; it must declare derived_from.
	KindBinding DocKind = "binding"
)

// ParseDocKind parses a string into a DocKind.
func ParseDocKind(s string) (DocKind, error) {
	switch s {
	case "tenet":
		return KindTenet, nil
	case "binding":
		return KindBinding, nil
	default:
		return "", fmt.Errorf("invalid document kind: %s (valid kinds: tenet, binding)", s)
	}
}

// ValidDocKinds returns the valid document kind strings.
func ValidDocKinds() []string {
	return []string{"tenet", "binding"}
}
