package ir

import (
	"errors"
	"fmt"
	"sort"
)

// ErrFrozen is returned when a frozen set is modified.
var ErrFrozen = errors.New("ir: set is frozen")

// EnumType is a named, closed set of literal values.
type EnumType struct {
	// Name is the derived type name (ParentType + CapitalizedProperty).
	Name string

	// Type is the JSON type of the values ("string", "integer", ...).
	Type string

	// Values holds the unique literal values in source order.
	Values []EnumValue
}

// EnumValue is one member of an enum.
type EnumValue struct {
	// Literal is the value as decoded from JSON.
	Literal any

	// Constant is the normalized identifier, see EnumConstant.
	Constant string
}

// First returns the first value of the enum.
func (e *EnumType) First() (EnumValue, bool) {
	if len(e.Values) == 0 {
		return EnumValue{}, false
	}
	return e.Values[0], true
}

// NewEnumType builds an EnumType, dropping duplicate literals while keeping
// the first occurrence of each.
func NewEnumType(name, typ string, literals []any) *EnumType {
	e := &EnumType{Name: name, Type: typ}
	seen := make(map[string]bool, len(literals))
	for _, lit := range literals {
		k := fmt.Sprintf("%T:%v", lit, lit)
		if seen[k] {
			continue
		}
		seen[k] = true
		e.Values = append(e.Values, EnumValue{
			Literal:  lit,
			Constant: EnumConstant(fmt.Sprint(lit)),
		})
	}
	return e
}

// ConstantCollisionError reports two distinct values of one enum that map
// to the same constant identifier.
type ConstantCollisionError struct {
	Enum     string
	Constant string
	First    any
	Second   any
}

func (e *ConstantCollisionError) Error() string {
	return fmt.Sprintf("enum %s: values %#v and %#v both map to constant %s",
		e.Enum, e.First, e.Second, e.Constant)
}

// CheckConstants returns a *ConstantCollisionError for the first two values
// whose identifiers are equal. A nil name function compares the
// normalized Constant of each value.
func (e *EnumType) CheckConstants(name func(EnumValue) string) error {
	if name == nil {
		name = func(v EnumValue) string { return v.Constant }
	}
	seen := make(map[string]any, len(e.Values))
	for _, v := range e.Values {
		c := name(v)
		if first, ok := seen[c]; ok {
			return &ConstantCollisionError{Enum: e.Name, Constant: c, First: first, Second: v.Literal}
		}
		seen[c] = v.Literal
	}
	return nil
}

// EnumSet collects enum types by name for a single run.
// It is filled while schemas load and read-only after Freeze.
type EnumSet struct {
	enums  map[string]*EnumType
	frozen bool
}

// NewEnumSet returns an empty set.
func NewEnumSet() *EnumSet {
	return &EnumSet{enums: make(map[string]*EnumType)}
}

// Register adds e unless an enum with the same name exists.
// Re-registering a name is a no-op and reports false; the first
// registration's values are kept.
func (s *EnumSet) Register(e *EnumType) (bool, error) {
	if s.frozen {
		return false, ErrFrozen
	}
	if _, ok := s.enums[e.Name]; ok {
		return false, nil
	}
	s.enums[e.Name] = e
	return true, nil
}

// Lookup returns the enum with the given name.
func (s *EnumSet) Lookup(name string) (*EnumType, bool) {
	e, ok := s.enums[name]
	return e, ok
}

// Len returns the number of enums.
func (s *EnumSet) Len() int { return len(s.enums) }

// Freeze makes the set read-only.
func (s *EnumSet) Freeze() { s.frozen = true }

// Frozen reports whether Freeze has been called.
func (s *EnumSet) Frozen() bool { return s.frozen }

// Sorted returns all enums ordered by name.
func (s *EnumSet) Sorted() []*EnumType {
	out := make([]*EnumType, 0, len(s.enums))
	for _, e := range s.enums {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
