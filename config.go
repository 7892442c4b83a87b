package msgtypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for one generation run.
type Config struct {
	// Backend selects the target language, e.g. "go" or "csharp".
	Backend string `yaml:"backend" validate:"required"`

	// SchemaPath is a schema file, or a directory whose immediate *.json
	// files are all loaded.
	SchemaPath string `yaml:"schema_path" validate:"required"`

	// Template is the template name, looked up in TemplatesDir or among the
	// built-in templates.
	Template string `yaml:"template" validate:"required"`

	// TemplatesDir overrides the built-in templates directory.
	TemplatesDir string `yaml:"templates_dir" validate:"omitempty,dir"`

	// Options are backend options such as "namespace" or "width".
	Options map[string]string `yaml:"options"`

	// GoImports formats Go output and fixes its imports.
	// Output is buffered until rendering completes. Only valid with the go backend.
	GoImports bool `yaml:"goimports"`

	// LogLevel is one of debug, info, warn or error. Used by the CLI.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is complete for a generation run.
func (c *Config) Validate() error {
	return c.validate()
}

func (c *Config) validate(except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(c, except...)
	} else {
		err = validate.Struct(c)
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %s", formatValidationErrors(verrs))
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.GoImports && c.Backend != "go" {
		return fmt.Errorf("invalid config: goimports requires the go backend, not %q", c.Backend)
	}
	return nil
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	var buf bytes.Buffer
	for i, fe := range verrs {
		if i > 0 {
			buf.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&buf, "%s is required", fe.Field())
		case "dir":
			fmt.Fprintf(&buf, "%s: %q is not a directory", fe.Field(), fe.Value())
		case "oneof":
			fmt.Fprintf(&buf, "%s must be one of [%s]", fe.Field(), fe.Param())
		default:
			fmt.Fprintf(&buf, "%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return buf.String()
}

// optionValues converts Options to the form accepted by backend.ParseOptions.
func (c *Config) optionValues() map[string][]string {
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string][]string, len(keys))
	for _, k := range keys {
		values[k] = []string{c.Options[k]}
	}
	return values
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// LoadConfigFile reads a YAML configuration file. Unknown keys are errors.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays the non-zero fields of o onto c.
// Options are merged key by key with o taking precedence.
func (c *Config) Merge(o Config) {
	if o.Backend != "" {
		c.Backend = o.Backend
	}
	if o.SchemaPath != "" {
		c.SchemaPath = o.SchemaPath
	}
	if o.Template != "" {
		c.Template = o.Template
	}
	if o.TemplatesDir != "" {
		c.TemplatesDir = o.TemplatesDir
	}
	if o.GoImports {
		c.GoImports = true
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Logger != nil {
		c.Logger = o.Logger
	}
	for k, v := range o.Options {
		if c.Options == nil {
			c.Options = make(map[string]string)
		}
		c.Options[k] = v
	}
}
