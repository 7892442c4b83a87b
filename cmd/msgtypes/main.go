package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/broady/msgtypes"
	"github.com/broady/msgtypes/cmd/msgtypes/internal/check"
	"github.com/broady/msgtypes/cmd/msgtypes/internal/cli"
	"github.com/broady/msgtypes/cmd/msgtypes/internal/gen"
)

type CLI struct {
	cli.Globals

	Gen      gen.Cmd     `cmd:"" default:"withargs" help:"Render a template over a schema corpus to stdout."`
	Check    check.Cmd   `cmd:"" help:"Load schemas and resolve every property without rendering."`
	Backends BackendsCmd `cmd:"" help:"List the available backends."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type BackendsCmd struct{}

func (c *BackendsCmd) Run(g *cli.Globals) error {
	for _, name := range msgtypes.Backends() {
		fmt.Fprintln(g.Out(), name)
	}
	return nil
}

func main() {
	c := &CLI{}
	ctx := kong.Parse(c,
		kong.Name("msgtypes"),
		kong.Description("Generate message type definitions from JSON schemas."),
		kong.UsageOnError(),
		kong.Vars{"backends": strings.Join(msgtypes.Backends(), ", ")},
	)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	err := ctx.Run(&c.Globals)
	ctx.FatalIfErrorf(err)
}
