package gen

import (
	"context"

	"github.com/broady/msgtypes"
	"github.com/broady/msgtypes/cmd/msgtypes/internal/cli"
)

type Cmd struct {
	Backend      string            `arg:"" help:"Target backend (${backends})."`
	SchemaPath   string            `arg:"" name:"schema-path" help:"Schema file, or directory of *.json schema files." type:"path"`
	Template     string            `arg:"" help:"Template name."`
	TemplatesDir string            `help:"Directory of *.tmpl files replacing the built-in templates." name:"templates-dir" type:"existingdir"`
	Set          map[string]string `help:"Backend option, e.g. namespace=Acme.Messages. Repeatable." mapsep:"none" placeholder:"KEY=VALUE"`
	GoImports    bool              `help:"Format Go output with goimports." name:"goimports"`
}

func (c *Cmd) Run(g *cli.Globals) error {
	cfg, err := g.Resolve(msgtypes.Config{
		Backend:      c.Backend,
		SchemaPath:   c.SchemaPath,
		Template:     c.Template,
		TemplatesDir: c.TemplatesDir,
		Options:      c.Set,
		GoImports:    c.GoImports,
	})
	if err != nil {
		return err
	}

	_, err = msgtypes.Generate(context.Background(), cfg, g.Out())
	return err
}
