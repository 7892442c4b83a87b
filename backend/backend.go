// Package backend defines the per-target-language profiles that decide
// type names, default values, enum naming and comment formatting.
//
// The set of backends is closed; one is chosen by name at startup through
// Get and used for the whole run.
package backend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/broady/msgtypes/ir"
)

// Backend is the capability set every target language provides.
type Backend interface {
	// Name returns the backend identifier (e.g. "go", "csharp").
	Name() string

	// ScalarType maps a JSON scalar type to the target type name.
	// It reports false when the type has no mapping.
	ScalarType(jsonType string) (string, bool)

	// ArrayType wraps an element type in the target sequence type.
	ArrayType(elemType string) string

	// RefType returns the type used to refer to another schema by its
	// type name (the capitalized base name of the referenced file).
	RefType(typeName string) string

	// EnumName returns the type name of the enum declared by a property.
	// An empty result means the backend emits no distinct enum type and
	// values are written as named constants only.
	EnumName(parentType, propertyName string) string

	// EnumMember returns the identifier a value is declared with inside its
	// enum type. It always starts with a letter or "_".
	EnumMember(value ir.EnumValue) string

	// EnumConstant returns the expression referring to one enum value.
	// enumRef is the EnumName result, or the derived enum name when
	// EnumName is empty.
	EnumConstant(enumRef string, value ir.EnumValue) string

	// DefaultValue returns the default-value expression for a property.
	DefaultValue(site Site) (string, error)

	// FormatDescription reflows free text into the target comment style.
	FormatDescription(text string) string

	// IsNullable reports whether a property is emitted as nullable.
	IsNullable(propertyName string, s *ir.Schema) bool
}

// Site describes one property being resolved, with the results already
// computed by the type resolver.
type Site struct {
	// Schema owns the property.
	Schema *ir.Schema

	// ParentType is the type name of the owning schema.
	ParentType string

	// Property is the property schema.
	Property *ir.Property

	// Type is the resolved target type expression.
	Type string

	// Enum is the collected enum for the property, or nil.
	Enum *ir.EnumType

	// EnumName is the backend enum name; empty when the backend suppresses it.
	EnumName string

	// RefName is the referenced type name for "$ref" properties.
	RefName string
}

// ErrUnsupportedShape is returned by DefaultValue for a property that is
// neither an array, a scalar nor a reference.
var ErrUnsupportedShape = errors.New("unsupported schema shape")

// UnknownBackendError is returned by Get for an unrecognized name.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown backend: %q (available: %v)", e.Name, Names())
}

var constructors = map[string]func(Options) Backend{
	"go":         newGo,
	"typescript": newTypeScript,
	"python":     newPython,
	"csharp":     newCSharp,
	"cpp":        newCpp,
	"markdown":   newMarkdown,
}

// Get returns the backend with the given name configured with opts.
func Get(name string, opts Options) (Backend, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, &UnknownBackendError{Name: name}
	}
	return ctor(opts.WithDefaults()), nil
}

// Names returns all backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsNative reports whether typ is one of the backend's scalar type names.
// It is a diagnostic only and does not affect generation.
func IsNative(b Backend, typ string) bool {
	for _, t := range []string{ir.TypeString, ir.TypeInteger, ir.TypeBoolean} {
		if native, ok := b.ScalarType(t); ok && native == typ {
			return true
		}
	}
	return false
}
