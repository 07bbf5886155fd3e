// Package frontmatter parses YAML front-matter blocks into a restricted value
// model and recovers the source line of each top-level key. Deserialization is
// limited to a closed set of value kinds; any input that would require
// constructing anything else fails with a ParseError instead of being
// instantiated.
package frontmatter

import "time"

// Kind identifies a variant of the restricted value model.
type Kind int

const (
	// KindAbsent means no front matter was present at all.
	KindAbsent Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindNull
	KindDate
	KindDateTime
	KindMapping
	KindSequence
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is the closed sum of front-matter value variants. Consumers switch on
// the concrete type (or Kind) and must handle every variant; no other types
// can appear in a parsed document.
type Value interface {
	Kind() Kind
}

// Absent marks input with no front matter (empty or whitespace-only).
type Absent struct{}

// String is a YAML string scalar.
type String string

// Int is a YAML integer scalar.
type Int int64

// Float is a YAML float scalar.
type Float float64

// Bool is a YAML boolean scalar.
type Bool bool

// Null is an explicit YAML null.
type Null struct{}

// Date is a calendar date without a time component.
type Date struct{ Time time.Time }

// DateTime is a full timestamp.
type DateTime struct{ Time time.Time }

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is a string-keyed mapping that preserves key order. The first
// definition of a key wins; later redefinitions are ignored.
type Mapping struct {
	keys   []string
	values map[string]Value
}

func (Absent) Kind() Kind   { return KindAbsent }
func (String) Kind() Kind   { return KindString }
func (Int) Kind() Kind      { return KindInt }
func (Float) Kind() Kind    { return KindFloat }
func (Bool) Kind() Kind     { return KindBool }
func (Null) Kind() Kind     { return KindNull }
func (Date) Kind() Kind     { return KindDate }
func (DateTime) Kind() Kind { return KindDateTime }
func (Sequence) Kind() Kind { return KindSequence }
func (*Mapping) Kind() Kind { return KindMapping }

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores a value under key unless the key is already defined.
func (m *Mapping) Set(key string, value Value) {
	if _, exists := m.values[key]; exists {
		return
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is defined.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in definition order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}
