package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/leyware/tenetlint/internal/frontmatter"
	"github.com/leyware/tenetlint/internal/report"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Engine evaluates every front-matter check for one document kind against a
// parsed document. The registry and collector are shared across all files of
// a run; everything else is read-only.
type Engine struct {
	ExpectedVersion string
	KnownTenetIDs   map[string]bool
	Registry        *IDRegistry
	Collector       *report.Collector
}

// Validate runs all checks for one file and appends each violation to the
// shared collector. A parse failure (or a non-mapping document) suppresses
// all schema checks; otherwise every check runs so a file can report several
// simultaneous errors.
func (e *Engine) Validate(file string, kind DocKind, doc frontmatter.Document) {
	for _, perr := range doc.ParseErrors {
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       perr.Line,
			Kind:       report.KindYamlSyntax,
			Message:    perr.Message,
			Suggestion: perr.Suggestion,
		})
	}
	if len(doc.ParseErrors) > 0 {
		return
	}

	mapping, ok := doc.Mapping()
	if !ok {
		message := fmt.Sprintf("front matter must be a YAML mapping, got %s", doc.Value.Kind())
		if doc.Value.Kind() == frontmatter.KindAbsent {
			message = "missing front matter"
		}
		e.Collector.Add(report.ValidationError{
			File:       file,
			Kind:       report.KindYamlSyntax,
			Message:    message,
			Suggestion: "Start the document with a '---' delimited block of key: value pairs",
		})
		return
	}

	schema, err := GetSchema(kind)
	if err != nil {
		panic(err) // closed kind set; unreachable for valid callers
	}

	e.checkRequiredKeys(file, schema, mapping, doc.LineMap)
	e.checkFieldFormats(file, kind, mapping, doc.LineMap)
	e.checkUniqueness(file, mapping, doc.LineMap)
	if kind == KindBinding {
		e.checkReference(file, mapping, doc.LineMap)
	}
	e.checkUnknownKeys(file, schema, mapping, doc.LineMap)
}

func (e *Engine) checkRequiredKeys(file string, schema *Schema, m *frontmatter.Mapping, lines map[string]int) {
	for _, key := range schema.RequiredKeys() {
		if m.Has(key) {
			continue
		}
		e.Collector.Add(report.ValidationError{
			File:       file,
			Field:      key,
			Kind:       report.KindMissingField,
			Message:    fmt.Sprintf("missing required key: %s", key),
			Suggestion: fmt.Sprintf("Add the '%s' key to the front matter", key),
		})
	}
}

func (e *Engine) checkFieldFormats(file string, kind DocKind, m *frontmatter.Mapping, lines map[string]int) {
	if v, ok := m.Get("id"); ok {
		e.checkSlug(file, "id", v, lines)
	}
	if v, ok := m.Get("last_modified"); ok {
		e.checkLastModified(file, v, lines)
	}
	if v, ok := m.Get("version"); ok {
		e.checkVersion(file, v, lines)
	}
	if kind == KindBinding {
		if v, ok := m.Get("derived_from"); ok {
			e.checkSlug(file, "derived_from", v, lines)
		}
		if v, ok := m.Get("enforced_by"); ok {
			e.checkEnforcedBy(file, v, lines)
		}
	}
}

func (e *Engine) checkSlug(file, field string, v frontmatter.Value, lines map[string]int) {
	s, ok := v.(frontmatter.String)
	if !ok || !slugPattern.MatchString(string(s)) {
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       lines[field],
			Field:      field,
			Kind:       report.KindInvalidFormat,
			Message:    fmt.Sprintf("invalid %s %s: must contain only lowercase letters, digits, and hyphens", field, describeValue(v)),
			Suggestion: fmt.Sprintf("Use a slug like 'my-%s-name'", field),
		})
	}
}

func (e *Engine) checkLastModified(file string, v frontmatter.Value, lines map[string]int) {
	switch s := v.(type) {
	case frontmatter.Date, frontmatter.DateTime:
		return
	case frontmatter.String:
		if datePattern.MatchString(string(s)) {
			if _, err := time.Parse("2006-01-02", string(s)); err == nil {
				return
			}
		}
	}
	e.Collector.Add(report.ValidationError{
		File:       file,
		Line:       lines["last_modified"],
		Field:      "last_modified",
		Kind:       report.KindInvalidFormat,
		Message:    fmt.Sprintf("invalid last_modified %s: must be a real calendar date in YYYY-MM-DD format", describeValue(v)),
		Suggestion: "Use a date like '2025-05-10'",
	})
}

func (e *Engine) checkVersion(file string, v frontmatter.Value, lines map[string]int) {
	s, ok := v.(frontmatter.String)
	if !ok || !versionPattern.MatchString(string(s)) {
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       lines["version"],
			Field:      "version",
			Kind:       report.KindInvalidFormat,
			Message:    fmt.Sprintf("invalid version %s: must be a semantic version like 1.2.3", describeValue(v)),
			Suggestion: fmt.Sprintf("Set version to '%s'", e.ExpectedVersion),
		})
		return
	}
	if string(s) != e.ExpectedVersion {
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       lines["version"],
			Field:      "version",
			Kind:       report.KindVersionMismatch,
			Message:    fmt.Sprintf("version '%s' does not match expected version '%s'", s, e.ExpectedVersion),
			Suggestion: fmt.Sprintf("Update version to '%s'", e.ExpectedVersion),
		})
	}
}

func (e *Engine) checkEnforcedBy(file string, v frontmatter.Value, lines map[string]int) {
	s, ok := v.(frontmatter.String)
	if !ok || strings.TrimSpace(string(s)) == "" {
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       lines["enforced_by"],
			Field:      "enforced_by",
			Kind:       report.KindInvalidFormat,
			Message:    fmt.Sprintf("invalid enforced_by %s: must be a non-empty string", describeValue(v)),
			Suggestion: "Describe how the binding is enforced, e.g. 'golangci-lint (required CI check)'",
		})
	}
}

// checkUniqueness claims the document id in the shared registry. The first
// file in processing order to claim an id owns it; later claimants report a
// DuplicateId naming the owner. Only string ids participate; a non-string id
// was already reported as an invalid format.
func (e *Engine) checkUniqueness(file string, m *frontmatter.Mapping, lines map[string]int) {
	v, ok := m.Get("id")
	if !ok {
		return
	}
	s, ok := v.(frontmatter.String)
	if !ok {
		return
	}

	owner, claimed := e.Registry.Claim(string(s), file)
	if claimed {
		return
	}
	e.Collector.Add(report.ValidationError{
		File:       file,
		Line:       lines["id"],
		Field:      "id",
		Kind:       report.KindDuplicateID,
		Message:    fmt.Sprintf("duplicate id '%s': already used by %s", s, owner),
		Suggestion: "Choose a unique id for this document",
	})
}

func (e *Engine) checkReference(file string, m *frontmatter.Mapping, lines map[string]int) {
	v, ok := m.Get("derived_from")
	if !ok {
		return
	}
	s, ok := v.(frontmatter.String)
	if !ok {
		return
	}

	if !e.KnownTenetIDs[string(s)] {
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       lines["derived_from"],
			Field:      "derived_from",
			Kind:       report.KindNonexistentReference,
			Message:    fmt.Sprintf("derived_from references unknown tenet '%s'", s),
			Suggestion: fmt.Sprintf("Reference an existing tenet; known tenets: %s", strings.Join(e.sortedTenetIDs(), ", ")),
		})
	}
}

func (e *Engine) checkUnknownKeys(file string, schema *Schema, m *frontmatter.Mapping, lines map[string]int) {
	allowed := schema.AllowedKeys()
	for _, key := range m.Keys() {
		if allowed[key] {
			continue
		}
		e.Collector.Add(report.ValidationError{
			File:       file,
			Line:       lines[key],
			Field:      key,
			Kind:       report.KindUnknownKey,
			Message:    fmt.Sprintf("unknown key: %s", key),
			Suggestion: fmt.Sprintf("Remove '%s' or check for a typo", key),
		})
	}
}

func (e *Engine) sortedTenetIDs() []string {
	ids := make([]string, 0, len(e.KnownTenetIDs))
	for id := range e.KnownTenetIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// describeValue renders a value for an error message, quoting strings and
// naming the type of everything else.
func describeValue(v frontmatter.Value) string {
	if s, ok := v.(frontmatter.String); ok {
		return fmt.Sprintf("'%s'", s)
	}
	return fmt.Sprintf("(%s value)", v.Kind())
}
