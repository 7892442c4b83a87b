// Package registry loads message schemas from disk and indexes them by key.
//
// Loading happens once per run through a Loader. Freeze turns the loader
// into a read-only Registry; the enum set collected while loading is frozen
// with it.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/broady/msgtypes/ir"
)

// Loader reads schema files into a registry under construction.
type Loader struct {
	schemas map[string]*ir.Schema
	enums   *ir.EnumSet
	logger  *slog.Logger
	frozen  bool
}

// NewLoader creates an empty Loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		schemas: make(map[string]*ir.Schema),
		enums:   ir.NewEnumSet(),
		logger:  logger,
	}
}

// LoadAll loads every path in order, stopping at the first error.
func (l *Loader) LoadAll(paths []string) error {
	for _, p := range paths {
		if err := l.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// Load reads one schema file, registers it and its nested definitions,
// and collects the enums declared by their properties.
func (l *Loader) Load(file string) error {
	if l.frozen {
		return ir.ErrFrozen
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("resolve schema path %s: %w", file, err)
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", abs, err)
	}

	var doc jsonschema.Schema
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &SchemaParseError{Path: abs, Err: err}
	}

	base := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	s := &ir.Schema{
		Key:  abs,
		ID:   base,
		Name: ir.Capitalize(base),
		Path: abs,
	}
	b := &builder{loader: l, path: abs, order: propertyOrder(raw)}
	if err := b.build(s, &doc, nil); err != nil {
		return err
	}
	return nil
}

// Freeze returns the read-only registry. The Loader must not be used afterward.
func (l *Loader) Freeze() *Registry {
	l.frozen = true
	l.enums.Freeze()

	r := &Registry{
		schemas: l.schemas,
		enums:   l.enums,
		sorted:  make([]*ir.Schema, 0, len(l.schemas)),
	}
	for _, s := range l.schemas {
		r.sorted = append(r.sorted, s)
	}
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].Key < r.sorted[j].Key })
	return r
}

// builder converts one decoded file into ir schemas.
type builder struct {
	loader *Loader
	path   string
	order  map[string][]string
}

// build fills s from doc, registers it, then recurses into definitions.
// jsonPath is the location of doc inside the file, used to find the
// recorded property order.
func (b *builder) build(s *ir.Schema, doc *jsonschema.Schema, jsonPath []string) error {
	l := b.loader
	if _, ok := l.schemas[s.Key]; ok {
		return &DuplicateSchemaError{Key: s.Key, Path: b.path}
	}

	s.Description = doc.Description
	s.Required = append([]string(nil), doc.Required...)
	s.Properties = make(map[string]*ir.Property, len(doc.Properties))
	for name, ps := range doc.Properties {
		p := convertProperty(name, ps)
		p.Required = s.IsRequired(name)
		s.Properties[name] = p
	}
	s.SetOrder(b.order[strings.Join(append(jsonPath, "properties"), "/")])

	l.schemas[s.Key] = s
	l.logger.Debug("schema registered",
		slog.String("key", s.Key),
		slog.String("id", s.ID),
		slog.Int("properties", len(s.Properties)),
	)

	defs, defsKey := doc.Definitions, "definitions"
	if len(defs) == 0 {
		defs, defsKey = doc.Defs, "$defs"
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := &ir.Schema{
			Key:    s.Key + "/" + name,
			ID:     s.ID + "/" + name,
			Name:   ir.Capitalize(name),
			Path:   b.path,
			Parent: s,
		}
		if s.Definitions == nil {
			s.Definitions = make(map[string]*ir.Schema, len(defs))
		}
		s.Definitions[name] = child
		childPath := append(append([]string(nil), jsonPath...), defsKey, name)
		if err := b.build(child, defs[name], childPath); err != nil {
			return err
		}
	}

	return b.collectEnums(s)
}

// collectEnums registers an enum for every enum-valued property of s,
// including enums on array items.
func (b *builder) collectEnums(s *ir.Schema) error {
	for _, p := range s.Ordered() {
		for item := p; item != nil; item = item.Items {
			if !item.HasEnum() {
				continue
			}
			e := ir.NewEnumType(ir.DeriveEnumName(s.Name, p.Name), item.Type, item.Enum)
			if err := e.CheckConstants(nil); err != nil {
				return fmt.Errorf("%s: %s.%s: %w", b.path, s.Name, p.Name, err)
			}
			added, err := b.loader.enums.Register(e)
			if err != nil {
				return fmt.Errorf("register enum %s from %s: %w", e.Name, b.path, err)
			}
			if added {
				b.loader.logger.Debug("enum registered",
					slog.String("enum", e.Name),
					slog.Int("values", len(e.Values)),
				)
			}
		}
	}
	return nil
}

func convertProperty(name string, ps *jsonschema.Schema) *ir.Property {
	p := &ir.Property{Name: name}
	if ps == nil {
		return p
	}
	p.Type = ps.Type
	if p.Type == "" {
		switch len(ps.Types) {
		case 0:
		case 1:
			p.Type = ps.Types[0]
		default:
			p.Types = append([]string(nil), ps.Types...)
		}
	}
	p.Ref = ps.Ref
	p.Description = ps.Description
	if len(ps.Enum) > 0 {
		p.Enum = append([]any(nil), ps.Enum...)
	}
	if ps.Items != nil {
		p.Items = convertProperty(name, ps.Items)
	}
	return p
}

// Registry is the frozen, read-only set of loaded schemas.
type Registry struct {
	schemas map[string]*ir.Schema
	sorted  []*ir.Schema
	enums   *ir.EnumSet
}

// Schemas returns all schemas sorted by key.
func (r *Registry) Schemas() []*ir.Schema {
	return append([]*ir.Schema(nil), r.sorted...)
}

// Lookup returns the schema registered under key.
func (r *Registry) Lookup(key string) (*ir.Schema, bool) {
	s, ok := r.schemas[key]
	return s, ok
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int { return len(r.schemas) }

// Enums returns the frozen enum set.
func (r *Registry) Enums() *ir.EnumSet { return r.enums }

// Resolve finds the schema a "$ref" on from points at.
// Relative file references resolve against the directory of from's file;
// "#/definitions/Name" resolves within from's file.
func (r *Registry) Resolve(from *ir.Schema, ref string) (*ir.Schema, bool) {
	file, frag, _ := strings.Cut(ref, "#")
	key := from.Path
	if file != "" {
		key = filepath.Join(filepath.Dir(from.Path), filepath.FromSlash(file))
	}
	for _, seg := range strings.Split(frag, "/") {
		if seg == "" || seg == "definitions" || seg == "$defs" {
			continue
		}
		key += "/" + seg
	}
	s, ok := r.schemas[key]
	return s, ok
}

// ExpandPath returns the schema files named by p: p itself when it is a
// file, or the immediate *.json files of p when it is a directory.
// Subdirectories are not searched. Results are sorted.
func ExpandPath(p string) ([]string, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{p}, nil
	}

	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, filepath.Join(p, e.Name()))
	}
	if len(out) == 0 {
		return nil, errors.New("no *.json schema files in " + p)
	}
	return out, nil
}
