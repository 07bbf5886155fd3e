package rules

import "fmt"

// SchemaField defines one front-matter key in a document schema.
type SchemaField struct {
	Name        string // Key name in the front matter
	Required    bool   // Whether the key must be present
	Description string // Human-readable description
}

// Schema is the complete front-matter schema for a document kind.
type Schema struct {
	Kind        DocKind
	Description string
	Fields      []SchemaField
}

// TenetSchema defines the front-matter schema for tenet documents.
var TenetSchema = Schema{
	Kind:        KindTenet,
	Description: "Foundational principle document",
	Fields: []SchemaField{
		{Name: "id", Required: true, Description: "Unique slug identifying the tenet (lowercase letters, digits, hyphens)"},
		{Name: "last_modified", Required: true, Description: "Date of last modification (YYYY-MM-DD)"},
		{Name: "version", Required: true, Description: "Repository version this document was last synced with"},
		{Name: "obsoleted_by", Required: false, Description: "Slug of the tenet that supersedes this one"},
	},
}

// BindingSchema defines the front-matter schema for binding documents.
var BindingSchema = Schema{
	Kind:        KindBinding,
	Description: "Document implementing a tenet",
	Fields: []SchemaField{
		{Name: "id", Required: true, Description: "Unique slug identifying the binding (lowercase letters, digits, hyphens)"},
		{Name: "last_modified", Required: true, Description: "Date of last modification (YYYY-MM-DD)"},
		{Name: "derived_from", Required: true, Description: "Slug of the tenet this binding implements"},
		{Name: "enforced_by", Required: true, Description: "How the binding is enforced (tooling, review, etc.)"},
		{Name: "version", Required: true, Description: "Repository version this document was last synced with"},
		{Name: "applies_to", Required: false, Description: "Contexts the binding applies to"},
	},
}

// GetSchema returns the schema for the given document kind.
func GetSchema(kind DocKind) (*Schema, error) {
	switch kind {
	case KindTenet:
		return &TenetSchema, nil
	case KindBinding:
		return &BindingSchema, nil
	default:
		return nil, fmt.Errorf("unknown document kind: %s", kind)
	}
}

// RequiredKeys returns the required key names for the kind, in schema order.
func (s *Schema) RequiredKeys() []string {
	var keys []string
	for _, f := range s.Fields {
		if f.Required {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// AllowedKeys returns every key the schema knows about, required or optional.
func (s *Schema) AllowedKeys() map[string]bool {
	allowed := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		allowed[f.Name] = true
	}
	return allowed
}
