package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ParseError describes why a front-matter block could not be parsed.
// Line and Column are 1-based; 0 means unknown.
type ParseError struct {
	Line       int
	Column     int
	Message    string
	Suggestion string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Document is the result of parsing one front-matter block. LineMap is
// populated only when Value is a *Mapping and holds the first definition line
// of each top-level key. ParseErrors holds at most one entry.
type Document struct {
	Value       Value
	LineMap     map[string]int
	ParseErrors []ParseError
}

// Mapping returns the document value as a mapping when it is one.
func (d Document) Mapping() (*Mapping, bool) {
	m, ok := d.Value.(*Mapping)
	return m, ok
}

// Valid reports whether the document parsed without errors.
func (d Document) Valid() bool {
	return len(d.ParseErrors) == 0
}

const syntaxSuggestion = "Check the YAML syntax of the front matter block between the '---' delimiters"

// Parse deserializes a raw front-matter block. Empty or whitespace-only input
// yields an Absent value with no errors. Syntax failures and disallowed value
// types yield exactly one ParseError; no schema interpretation happens here.
func Parse(raw string) Document {
	doc := Document{Value: Absent{}, LineMap: map[string]int{}}

	if strings.TrimSpace(raw) == "" {
		return doc
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &root); err != nil {
		doc.ParseErrors = []ParseError{syntaxError(err)}
		return doc
	}
	if root.Kind == 0 {
		// Comments-only input produces no document at all.
		return doc
	}

	dec := &decoder{seen: make(map[*yaml.Node]bool)}
	value, perr := dec.decode(&root)
	if perr != nil {
		doc.ParseErrors = []ParseError{*perr}
		return doc
	}

	doc.Value = value
	if m, ok := value.(*Mapping); ok {
		doc.LineMap = scanLineMap(raw, m)
	}
	return doc
}

// decoder walks a yaml.Node tree applying the type allow-list. seen guards
// against alias cycles, which yaml.v3 leaves intact in node form.
type decoder struct {
	seen map[*yaml.Node]bool
}

// dateOnly matches timestamps with no time component.
var dateOnly = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

func (d *decoder) decode(node *yaml.Node) (Value, *ParseError) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Absent{}, nil
		}
		return d.decode(node.Content[0])

	case yaml.AliasNode:
		if d.seen[node.Alias] {
			return nil, nodeError(node, "recursive alias in front matter")
		}
		d.seen[node.Alias] = true
		v, err := d.decode(node.Alias)
		delete(d.seen, node.Alias)
		return v, err

	case yaml.ScalarNode:
		return d.decodeScalar(node)

	case yaml.MappingNode:
		if node.Tag != "!!map" {
			return nil, disallowedTag(node)
		}
		m := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return nil, nodeError(keyNode, "front matter mapping keys must be plain strings")
			}
			v, err := d.decode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, v)
		}
		return m, nil

	case yaml.SequenceNode:
		if node.Tag != "!!seq" {
			return nil, disallowedTag(node)
		}
		seq := make(Sequence, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil

	default:
		return nil, nodeError(node, "unsupported YAML node in front matter")
	}
}

func (d *decoder) decodeScalar(node *yaml.Node) (Value, *ParseError) {
	switch node.Tag {
	case "!!str":
		return String(node.Value), nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return nil, nodeError(node, fmt.Sprintf("invalid integer %q in front matter", node.Value))
		}
		return Int(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, nodeError(node, fmt.Sprintf("invalid float %q in front matter", node.Value))
		}
		return Float(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, nodeError(node, fmt.Sprintf("invalid boolean %q in front matter", node.Value))
		}
		return Bool(b), nil
	case "!!null":
		return Null{}, nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return nil, nodeError(node, fmt.Sprintf("invalid timestamp %q in front matter", node.Value))
		}
		if dateOnly.MatchString(node.Value) {
			return Date{Time: t}, nil
		}
		return DateTime{Time: t}, nil
	default:
		return nil, disallowedTag(node)
	}
}

// disallowedTag rejects any tag outside the allow-list. Custom and
// language-specific tags (e.g. object constructors) land here and never
// instantiate anything.
func disallowedTag(node *yaml.Node) *ParseError {
	return nodeError(node, fmt.Sprintf("disallowed YAML type %s in front matter", node.Tag))
}

func nodeError(node *yaml.Node, message string) *ParseError {
	return &ParseError{
		Line:       node.Line,
		Column:     node.Column,
		Message:    message,
		Suggestion: "Front matter may only contain strings, numbers, booleans, nulls, dates, mappings, and lists",
	}
}

// yamlErrLine extracts the line number yaml.v3 embeds in its error text.
var yamlErrLine = regexp.MustCompile(`line (\d+):`)

// syntaxError converts a yaml.v3 error into a single ParseError with
// best-effort position information. yaml.TypeError can carry several
// messages; only the first is reported.
func syntaxError(err error) ParseError {
	msg := err.Error()
	if te, ok := err.(*yaml.TypeError); ok && len(te.Errors) > 0 {
		msg = te.Errors[0]
	}
	msg = strings.TrimPrefix(msg, "yaml: ")

	line := 0
	if m := yamlErrLine.FindStringSubmatch(msg); m != nil {
		fmt.Sscanf(m[1], "%d", &line)
	}

	return ParseError{
		Line:       line,
		Message:    fmt.Sprintf("invalid front matter: %s", msg),
		Suggestion: syntaxSuggestion,
	}
}
