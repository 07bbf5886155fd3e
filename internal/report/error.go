// Package report provides error aggregation and diagnostic rendering for
// front-matter validation runs. A single Collector accumulates errors across
// all validated files; the Renderer turns the collected errors into a
// human-readable report with optional source-context snippets.
package report

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a validation error.
type ErrorKind string

const (
	// KindYamlSyntax indicates the front matter could not be parsed at all.
	KindYamlSyntax ErrorKind = "yaml_syntax"
	// KindMissingField indicates a required front-matter key is absent.
	KindMissingField ErrorKind = "missing_field"
	// KindInvalidFormat indicates a field value failed its format check.
	KindInvalidFormat ErrorKind = "invalid_format"
	// KindDuplicateID indicates an id already claimed by another document.
	KindDuplicateID ErrorKind = "duplicate_id"
	// KindNonexistentReference indicates a derived_from target that does not exist.
	KindNonexistentReference ErrorKind = "nonexistent_reference"
	// KindUnknownKey indicates a key outside the schema for the document kind.
	KindUnknownKey ErrorKind = "unknown_key"
	// KindVersionMismatch indicates a well-formed version that differs from the expected one.
	KindVersionMismatch ErrorKind = "version_mismatch"
)

// ValidationError describes a single front-matter violation with its source location.
// Line 0 means the line is unknown; Field may be empty for document-level errors.
type ValidationError struct {
	File       string
	Line       int
	Field      string
	Kind       ErrorKind
	Message    string
	Suggestion string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.File)
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(":%d", e.Line))
	}
	sb.WriteString(": ")
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf("%s: ", e.Field))
	}
	sb.WriteString(e.Message)
	return sb.String()
}
