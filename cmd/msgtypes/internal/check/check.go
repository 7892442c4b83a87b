package check

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/xlab/treeprint"

	"github.com/broady/msgtypes"
	"github.com/broady/msgtypes/cmd/msgtypes/internal/cli"
	"github.com/broady/msgtypes/ir"
	"github.com/broady/msgtypes/resolve"
)

type Cmd struct {
	Backend    string            `arg:"" help:"Target backend (${backends})."`
	SchemaPath string            `arg:"" name:"schema-path" help:"Schema file, or directory of *.json schema files." type:"path"`
	Set        map[string]string `help:"Backend option as key=value. Repeatable." mapsep:"none" placeholder:"KEY=VALUE"`
	Tree       bool              `help:"Print every schema with its resolved property types." short:"t"`
}

func (c *Cmd) Run(g *cli.Globals) error {
	cfg, err := g.Resolve(msgtypes.Config{
		Backend:    c.Backend,
		SchemaPath: c.SchemaPath,
		Options:    c.Set,
	})
	if err != nil {
		return err
	}

	result, err := msgtypes.Check(context.Background(), cfg)
	if err != nil {
		return err
	}

	out := g.Out()
	fmt.Fprintf(out, "✓ %d schema files\n", len(result.Files))
	fmt.Fprintf(out, "✓ %d schemas, %d enums\n", result.Schemas, result.Enums)
	fmt.Fprintf(out, "✓ All properties resolvable for %s\n", cfg.Backend)

	if c.Tree {
		return printTree(out, result.Resolver)
	}
	return nil
}

// printTree writes top-level schemas as branches holding their properties
// and nested definitions.
func printTree(w io.Writer, res *resolve.Resolver) error {
	tree := treeprint.NewWithRoot(res.Backend().Name())
	for _, s := range res.Registry().Schemas() {
		if s.Parent != nil {
			continue
		}
		if err := addSchema(tree.AddBranch(s.Name), res, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, tree.String())
	return err
}

func addSchema(tree treeprint.Tree, res *resolve.Resolver, s *ir.Schema) error {
	for _, p := range s.Ordered() {
		typ, err := res.TypeOf(s, p)
		if err != nil {
			return err
		}
		def, err := res.DefaultValue(s, p)
		if err != nil {
			return err
		}
		tree.AddNode(fmt.Sprintf("%s %s = %s", p.Name, typ, def))
	}

	names := make([]string, 0, len(s.Definitions))
	for name := range s.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := addSchema(tree.AddBranch(name), res, s.Definitions[name]); err != nil {
			return err
		}
	}
	return nil
}
