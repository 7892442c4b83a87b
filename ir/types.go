// Package ir defines the in-memory model for message schemas.
// Schemas and properties are decoded from the supported JSON-Schema subset
// and never mutated once the registry that owns them is frozen.
package ir

import "sort"

// Scalar type names recognized in the "type" keyword.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Schema is one message-type definition.
type Schema struct {
	// Key uniquely identifies the schema in a registry.
	// It is the absolute file path for top-level schemas, and
	// parentKey + "/" + definitionName for nested definitions.
	Key string

	// ID is the short display identifier, e.g. "Message" or "Message/Header".
	ID string

	// Name is the type name used by generators.
	// It is the capitalized file base name for top-level schemas and the
	// capitalized definition name for definitions, matching TypeNameFromRef.
	Name string

	// Path is the file the schema was read from.
	Path string

	// Description is the optional free text from the "description" keyword.
	Description string

	// Properties maps property name to its schema.
	Properties map[string]*Property

	// Required lists property names from the "required" keyword, in source order.
	Required []string

	// Definitions holds nested schemas declared under "definitions".
	Definitions map[string]*Schema

	// Parent is the schema that declared this one as a definition, or nil.
	Parent *Schema

	order []string
}

// Ordered returns properties in source order.
// Properties missing from the recorded order are appended sorted by name.
func (s *Schema) Ordered() []*Property {
	out := make([]*Property, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, name := range s.order {
		if p, ok := s.Properties[name]; ok && !seen[name] {
			out = append(out, p)
			seen[name] = true
		}
	}

	var rest []string
	for name := range s.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, s.Properties[name])
	}
	return out
}

// SetOrder records the source order of property names.
func (s *Schema) SetOrder(names []string) {
	s.order = append([]string(nil), names...)
}

// Property returns the named property, or nil.
func (s *Schema) Property(name string) *Property {
	return s.Properties[name]
}

// IsRequired reports whether name appears in the schema's required list.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Property is the schema of a single property, or of array items.
type Property struct {
	// Name is the property name. Array items carry their owner's name.
	Name string `json:"-"`

	// Type is the "type" keyword; empty when absent or when it lists more
	// than one type.
	Type string `json:"type,omitempty"`

	// Types holds a "type" keyword given as a list of two or more types.
	Types []string `json:"types,omitempty"`

	// Ref is the "$ref" keyword; empty when absent.
	Ref string `json:"$ref,omitempty"`

	// Items is the element schema of an array property.
	Items *Property `json:"items,omitempty"`

	// Enum holds the allowed literal values in source order.
	Enum []any `json:"enum,omitempty"`

	// Description is the optional "description" keyword.
	Description string `json:"description,omitempty"`

	// Required is true when the owning schema lists the property as required.
	Required bool `json:"-"`
}

// IsArray reports whether the property is an array.
func (p *Property) IsArray() bool { return p.Type == TypeArray }

// IsRef reports whether the property references another schema.
func (p *Property) IsRef() bool { return p.Ref != "" }

// HasTypeList reports whether "type" listed several types.
func (p *Property) HasTypeList() bool { return len(p.Types) > 1 }

// HasEnum reports whether the property restricts its values to an enum.
func (p *Property) HasEnum() bool { return len(p.Enum) > 0 }
