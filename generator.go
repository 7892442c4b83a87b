// Package msgtypes generates per-language type definitions from a corpus of
// JSON-Schema message types.
//
// The pipeline loads every schema under a path into a registry, resolves each
// property's type, default value and enum through a backend, and renders the
// result with a template:
//
//	msgtypes.FromPath("./schemas").
//	    WithBackend("csharp").
//	    WithTemplate("csharp").
//	    Set("namespace", "Acme.Messages").
//	    To(os.Stdout)
package msgtypes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/broady/msgtypes/backend"
	"github.com/broady/msgtypes/registry"
	"github.com/broady/msgtypes/render"
	"github.com/broady/msgtypes/resolve"
	"github.com/broady/msgtypes/sink"
)

// Result reports what a run processed.
type Result struct {
	// Files are the schema files loaded, in load order.
	Files []string

	// Schemas is the number of registered schemas, definitions included.
	Schemas int

	// Enums is the number of collected enums.
	Enums int

	// Resolver answers type questions over the loaded schemas.
	Resolver *resolve.Resolver
}

// Generator provides a fluent API for code generation.
// Create with FromPath() and configure with method chaining.
type Generator struct {
	cfg Config
}

// FromPath creates a Generator for the schema file or directory at p.
func FromPath(p string) *Generator {
	return &Generator{cfg: Config{SchemaPath: p}}
}

// FromConfig creates a Generator starting from an existing configuration.
func FromConfig(cfg Config) *Generator {
	if cfg.Options != nil {
		opts := make(map[string]string, len(cfg.Options))
		for k, v := range cfg.Options {
			opts[k] = v
		}
		cfg.Options = opts
	}
	return &Generator{cfg: cfg}
}

// WithBackend selects the target backend by name.
func (g *Generator) WithBackend(name string) *Generator {
	g.cfg.Backend = name
	return g
}

// WithTemplate selects the template to render.
func (g *Generator) WithTemplate(name string) *Generator {
	g.cfg.Template = name
	return g
}

// TemplatesDir reads templates from dir instead of the built-in set.
func (g *Generator) TemplatesDir(dir string) *Generator {
	g.cfg.TemplatesDir = dir
	return g
}

// Set sets a backend option.
// Can be called multiple times.
func (g *Generator) Set(key, value string) *Generator {
	if g.cfg.Options == nil {
		g.cfg.Options = make(map[string]string)
	}
	g.cfg.Options[key] = value
	return g
}

// GoImports formats Go output with goimports.
func (g *Generator) GoImports() *Generator {
	g.cfg.GoImports = true
	return g
}

// Logger sets the logger for diagnostics.
func (g *Generator) Logger(l *slog.Logger) *Generator {
	g.cfg.Logger = l
	return g
}

// Config returns a copy of the accumulated configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// To renders into w.
// This is a terminal operation.
func (g *Generator) To(w io.Writer) (*Result, error) {
	return Generate(context.Background(), &g.cfg, w)
}

// Output renders into memory and returns the output.
func (g *Generator) Output() (string, error) {
	var buf bytes.Buffer
	if _, err := g.To(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Generate runs the full pipeline and writes the rendered output to w.
//
// Every property is resolved before rendering starts, so schema shape and
// type mapping errors leave w untouched. A template that fails during
// execution may leave partial output.
func Generate(ctx context.Context, cfg *Config, w io.Writer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	res, opts, result, err := load(cfg)
	if err != nil {
		return nil, err
	}

	var fsys fs.FS
	if cfg.TemplatesDir != "" {
		fsys = os.DirFS(cfg.TemplatesDir)
	}

	var out sink.OutputSink = sink.NewWriterSink(w)
	if cfg.GoImports {
		out = sink.NewGoImportsSink(out, cfg.Template+".go")
	}

	r := render.New(fsys, cfg.logger())
	if err := r.Render(ctx, cfg.Template, res, opts, out); err != nil {
		return nil, err
	}

	cfg.logger().InfoContext(ctx, "generation completed",
		slog.String("backend", cfg.Backend),
		slog.String("template", cfg.Template),
		slog.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// Check loads the schemas and resolves every property without rendering.
// The Template field is not required.
func Check(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.validate("Template"); err != nil {
		return nil, err
	}
	_, _, result, err := load(cfg)
	return result, err
}

// load builds the frozen registry and a resolver for the configured backend
// and runs the pre-flight resolution pass.
func load(cfg *Config) (*resolve.Resolver, backend.Options, *Result, error) {
	logger := cfg.logger()

	opts, err := backend.ParseOptions(cfg.optionValues())
	if err != nil {
		return nil, backend.Options{}, nil, err
	}
	b, err := backend.Get(cfg.Backend, opts)
	if err != nil {
		return nil, backend.Options{}, nil, err
	}

	files, err := registry.ExpandPath(cfg.SchemaPath)
	if err != nil {
		return nil, backend.Options{}, nil, err
	}

	loader := registry.NewLoader(logger)
	if err := loader.LoadAll(files); err != nil {
		return nil, backend.Options{}, nil, err
	}
	reg := loader.Freeze()

	res := resolve.New(reg, b, logger)
	if err := res.Check(); err != nil {
		return nil, backend.Options{}, nil, err
	}

	logger.Debug("schemas resolved",
		slog.String("backend", b.Name()),
		slog.Int("files", len(files)),
		slog.Int("schemas", reg.Len()),
		slog.Int("enums", reg.Enums().Len()),
	)

	return res, opts, &Result{
		Files:    files,
		Schemas:  reg.Len(),
		Enums:    reg.Enums().Len(),
		Resolver: res,
	}, nil
}

// Backends returns the names of the available backends.
func Backends() []string {
	return backend.Names()
}

// String implements fmt.Stringer for Result.
func (r *Result) String() string {
	return fmt.Sprintf("%d files, %d schemas, %d enums", len(r.Files), r.Schemas, r.Enums)
}
