// Package render executes text templates over the resolved schema model.
//
// Templates receive a Model and call back into the resolver through
// template functions (type, default, nullable, ...). Output is streamed to
// a sink while the template executes.
package render

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/broady/msgtypes/backend"
	"github.com/broady/msgtypes/ir"
	"github.com/broady/msgtypes/resolve"
	"github.com/broady/msgtypes/sink"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Ext is the file extension of template files.
const Ext = ".tmpl"

// Templates returns the built-in template directory.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Model is the data passed to a template.
type Model struct {
	// Schemas holds every registered schema, sorted by key.
	Schemas []*ir.Schema

	// Enums holds every collected enum, sorted by name.
	Enums []*ir.EnumType

	// Backend is the active backend name.
	Backend string

	// Options are the backend options in effect.
	Options backend.Options
}

// Renderer looks up templates in a directory.
type Renderer struct {
	fsys   fs.FS
	logger *slog.Logger
}

// New creates a Renderer reading templates from fsys.
// A nil fsys uses the built-in templates; a nil logger uses slog.Default().
func New(fsys fs.FS, logger *slog.Logger) *Renderer {
	if fsys == nil {
		fsys = Templates()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{fsys: fsys, logger: logger}
}

// Names returns the names of the available templates, without extension.
func (r *Renderer) Names() ([]string, error) {
	matches, err := fs.Glob(r.fsys, "*"+Ext)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Render executes the named template over the resolver's registry and
// streams the result to out. Output already written when execution fails
// is not retracted.
func (r *Renderer) Render(ctx context.Context, name string, res *resolve.Resolver, opts backend.Options, out sink.OutputSink) error {
	file := name
	if path.Ext(file) == "" {
		file += Ext
	}
	if _, err := fs.Stat(r.fsys, file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			names, _ := r.Names()
			return fmt.Errorf("template %q not found (available: %s)", name, strings.Join(names, ", "))
		}
		return fmt.Errorf("template %q: %w", name, err)
	}

	tmpl, err := template.New(file).Funcs(Funcs(res)).ParseFS(r.fsys, file)
	if err != nil {
		return fmt.Errorf("parse template %q: %w", name, err)
	}

	reg := res.Registry()
	model := Model{
		Schemas: reg.Schemas(),
		Enums:   reg.Enums().Sorted(),
		Backend: res.Backend().Name(),
		Options: opts.WithDefaults(),
	}

	r.logger.Debug("rendering",
		slog.String("template", file),
		slog.String("backend", model.Backend),
		slog.Int("schemas", len(model.Schemas)),
		slog.Int("enums", len(model.Enums)),
	)

	if err := tmpl.ExecuteTemplate(sink.Writer(ctx, out), path.Base(file), model); err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}
	return out.Flush(ctx)
}

// Funcs returns the template functions bound to res.
func Funcs(res *resolve.Resolver) template.FuncMap {
	b := res.Backend()
	reg := res.Registry()
	return template.FuncMap{
		"type":     res.TypeOf,
		"default":  res.DefaultValue,
		"nullable": res.IsNullable,
		"enumName": res.EnumName,
		"scalar": func(jsonType string) (string, error) {
			t, ok := b.ScalarType(jsonType)
			if !ok {
				return "", fmt.Errorf("backend %q has no mapping for type %q", b.Name(), jsonType)
			}
			return t, nil
		},
		"constant": func(e *ir.EnumType, v ir.EnumValue) string {
			return b.EnumConstant(e.Name, v)
		},
		"member": b.EnumMember,
		"dependencyOrder": func(schemas []*ir.Schema) []*ir.Schema {
			return dependencyOrder(reg, schemas)
		},
		"description": b.FormatDescription,
		"capitalize":  ir.Capitalize,
		"lower":       strings.ToLower,
		"indent":      indent,
		"quote":       quote,
	}
}

// indent prefixes every non-empty line of s.
func indent(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// quote renders a literal enum value as a JSON literal, which is valid
// syntax for strings and numbers in every target.
func quote(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
