package backend

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// DefaultWidth is the comment wrap width used when none is configured.
const DefaultWidth = 80

// Options holds the user-settable knobs of a backend.
// Not every backend reads every field.
type Options struct {
	// Package is the Go package clause of generated Go code.
	Package string `schema:"package" yaml:"package" validate:"omitempty,identifier"`

	// Namespace qualifies C++ and C# types.
	Namespace string `schema:"namespace" yaml:"namespace" validate:"omitempty,qualified"`

	// Module is the Python module name written in the generated header.
	Module string `schema:"module" yaml:"module" validate:"omitempty,qualified"`

	// Width is the column at which descriptions are wrapped.
	Width int `schema:"width" yaml:"width" validate:"omitempty,min=20,max=200"`
}

// WithDefaults fills unset fields with their default values.
func (o Options) WithDefaults() Options {
	if o.Package == "" {
		o.Package = "messages"
	}
	if o.Namespace == "" {
		o.Namespace = "messages"
	}
	if o.Module == "" {
		o.Module = "messages"
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	return o
}

var (
	identRE     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	qualifiedRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*((\.|::)[A-Za-z_][A-Za-z0-9_]*)*$`)

	validate = newValidator()
	decoder  = newDecoder()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identRE.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("qualified", func(fl validator.FieldLevel) bool {
		return qualifiedRE.MatchString(fl.Field().String())
	})
	return v
}

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	d.ZeroEmpty(true)
	return d
}

// ParseOptions decodes key/value pairs such as those given by repeated
// --set flags into Options, then validates the result.
func ParseOptions(values map[string][]string) (Options, error) {
	var opts Options
	if len(values) > 0 {
		if err := decoder.Decode(&opts, values); err != nil {
			return Options{}, fmt.Errorf("decode backend options: %w", err)
		}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks option values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid backend options: %w", err)
	}
	return nil
}
