package registry

import "fmt"

// SchemaParseError reports a schema file that is not valid JSON, or not a
// JSON Schema object.
type SchemaParseError struct {
	Path string
	Err  error
}

func (e *SchemaParseError) Error() string {
	return fmt.Sprintf("parse schema %s: %v", e.Path, e.Err)
}

func (e *SchemaParseError) Unwrap() error { return e.Err }

// DuplicateSchemaError reports two schemas registered under one key.
type DuplicateSchemaError struct {
	Key  string
	Path string
}

func (e *DuplicateSchemaError) Error() string {
	return fmt.Sprintf("duplicate schema key %q (from %s)", e.Key, e.Path)
}
