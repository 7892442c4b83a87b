package resolve

import "fmt"

// UnsupportedSchemaShapeError reports a property whose schema cannot be
// mapped to a type: no "type" or "$ref", a list of types, or a "$ref" that
// names no schema.
type UnsupportedSchemaShapeError struct {
	// Path is the file the owning schema was read from.
	Path       string
	ParentType string
	Property   string
	// Reason says what is wrong; empty means "type" and "$ref" are both missing.
	Reason string
}

func (e *UnsupportedSchemaShapeError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = `property needs "type" or "$ref"`
	}
	return fmt.Sprintf("%s: %s.%s: unsupported schema shape: %s",
		e.Path, e.ParentType, e.Property, reason)
}

// UnknownScalarTypeMappingError reports a scalar type the active backend
// has no mapping for.
type UnknownScalarTypeMappingError struct {
	Backend    string
	Type       string
	Path       string
	ParentType string
	Property   string
	// Dump is the offending property schema as JSON.
	Dump string
}

func (e *UnknownScalarTypeMappingError) Error() string {
	return fmt.Sprintf("%s: %s.%s: backend %q has no mapping for type %q in property schema %s",
		e.Path, e.ParentType, e.Property, e.Backend, e.Type, e.Dump)
}
