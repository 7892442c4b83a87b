// Package resolve maps properties to target-language types and default
// values through the active backend.
//
// A Resolver works on a frozen registry and holds no mutable state, so all
// of its methods are pure.
package resolve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/broady/msgtypes/backend"
	"github.com/broady/msgtypes/ir"
	"github.com/broady/msgtypes/registry"
)

// Resolver answers type and default-value questions for one run.
type Resolver struct {
	reg     *registry.Registry
	backend backend.Backend
	logger  *slog.Logger
}

// New creates a Resolver. A nil logger uses slog.Default().
func New(reg *registry.Registry, b backend.Backend, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{reg: reg, backend: b, logger: logger}
}

// Backend returns the active backend.
func (r *Resolver) Backend() backend.Backend { return r.backend }

// Registry returns the registry being resolved against.
func (r *Resolver) Registry() *registry.Registry { return r.reg }

// TypeOf returns the target type expression of a property of s.
func (r *Resolver) TypeOf(s *ir.Schema, p *ir.Property) (string, error) {
	return r.resolve(s, s.Name, p.Name, p)
}

func (r *Resolver) resolve(s *ir.Schema, parentType, name string, p *ir.Property) (string, error) {
	switch {
	case p.IsRef():
		typeName := ir.TypeNameFromRef(p.Ref)
		if typeName == "" {
			return "", r.shapeError(s, parentType, name, fmt.Sprintf("$ref %q names no schema", p.Ref))
		}
		if _, ok := r.reg.Resolve(s, p.Ref); !ok {
			r.logger.Debug("reference to unloaded schema",
				slog.String("schema", s.ID),
				slog.String("property", name),
				slog.String("ref", p.Ref),
			)
		}
		return r.backend.RefType(typeName), nil

	case p.HasTypeList():
		return "", r.shapeError(s, parentType, name, fmt.Sprintf("multiple types %q unsupported", p.Types))

	case p.IsArray():
		if p.Items == nil {
			return "", r.shapeError(s, parentType, name, `array needs "items"`)
		}
		elem, err := r.resolve(s, parentType, name, p.Items)
		if err != nil {
			return "", err
		}
		return r.backend.ArrayType(elem), nil

	case p.Type != "":
		typ, ok := r.backend.ScalarType(p.Type)
		if !ok {
			return "", &UnknownScalarTypeMappingError{
				Backend:    r.backend.Name(),
				Type:       p.Type,
				Path:       s.Path,
				ParentType: parentType,
				Property:   name,
				Dump:       p.Dump(),
			}
		}
		if p.HasEnum() {
			if enum := r.backend.EnumName(parentType, name); enum != "" {
				return enum, nil
			}
		}
		return typ, nil
	}

	return "", r.shapeError(s, parentType, name, "")
}

// EnumName returns the backend enum name of an enum-valued property, or ""
// when the property has no enum or the backend suppresses enum types.
func (r *Resolver) EnumName(s *ir.Schema, p *ir.Property) string {
	if enumProperty(p) == nil {
		return ""
	}
	return r.backend.EnumName(s.Name, p.Name)
}

// Enum returns the collected enum of a property, looking through array items.
func (r *Resolver) Enum(s *ir.Schema, p *ir.Property) (*ir.EnumType, bool) {
	if enumProperty(p) == nil {
		return nil, false
	}
	return r.reg.Enums().Lookup(ir.DeriveEnumName(s.Name, p.Name))
}

// DefaultValue returns the default-value expression of a property of s.
func (r *Resolver) DefaultValue(s *ir.Schema, p *ir.Property) (string, error) {
	typ, err := r.TypeOf(s, p)
	if err != nil {
		return "", err
	}

	site := backend.Site{
		Schema:     s,
		ParentType: s.Name,
		Property:   p,
		Type:       typ,
	}
	if p.HasEnum() {
		site.Enum, _ = r.Enum(s, p)
		site.EnumName = r.EnumName(s, p)
	}
	if p.IsRef() {
		site.RefName = ir.TypeNameFromRef(p.Ref)
	}

	v, err := r.backend.DefaultValue(site)
	if errors.Is(err, backend.ErrUnsupportedShape) {
		return "", r.shapeError(s, s.Name, p.Name, "")
	}
	if err != nil {
		return "", fmt.Errorf("%s: %s.%s: default value: %w", s.Path, s.Name, p.Name, err)
	}
	return v, nil
}

// IsNullable reports whether the backend emits the property as nullable.
func (r *Resolver) IsNullable(s *ir.Schema, p *ir.Property) bool {
	return r.backend.IsNullable(p.Name, s)
}

// Check resolves the type and default value of every property of every
// registered schema and checks that no two values of an enum share a
// constant in the active backend, returning the first failure. Running it
// before rendering keeps resolution errors from producing partial output.
func (r *Resolver) Check() error {
	for _, e := range r.reg.Enums().Sorted() {
		constant := func(v ir.EnumValue) string { return r.backend.EnumConstant(e.Name, v) }
		if err := e.CheckConstants(constant); err != nil {
			return fmt.Errorf("backend %s: %w", r.backend.Name(), err)
		}
	}
	for _, s := range r.reg.Schemas() {
		for _, p := range s.Ordered() {
			typ, err := r.TypeOf(s, p)
			if err != nil {
				return err
			}
			if _, err := r.DefaultValue(s, p); err != nil {
				return err
			}
			r.logger.Debug("resolved property",
				slog.String("schema", s.ID),
				slog.String("property", p.Name),
				slog.String("type", typ),
				slog.Bool("native", backend.IsNative(r.backend, typ)),
			)
		}
	}
	return nil
}

func (r *Resolver) shapeError(s *ir.Schema, parentType, name, reason string) error {
	return &UnsupportedSchemaShapeError{Path: s.Path, ParentType: parentType, Property: name, Reason: reason}
}

// enumProperty returns p or the first of its nested items carrying an enum.
func enumProperty(p *ir.Property) *ir.Property {
	for ; p != nil; p = p.Items {
		if p.HasEnum() {
			return p
		}
	}
	return nil
}
