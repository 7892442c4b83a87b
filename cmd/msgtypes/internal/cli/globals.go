// Package cli holds state shared by the msgtypes subcommands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"

	"github.com/broady/msgtypes"
)

// DefaultConfigFile is looked up in the XDG config directories when no
// --config flag is given.
const DefaultConfigFile = "msgtypes/config.yaml"

// Globals are the flags accepted by every command.
type Globals struct {
	Config   string `help:"YAML file supplying default settings (default $XDG_CONFIG_HOME/msgtypes/config.yaml)." short:"c" type:"existingfile"`
	LogLevel string `help:"Log level: debug, info, warn or error (default warn)." name:"log-level"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// Resolve loads the config file, if any, and overlays the command line
// settings in override. Without --config the default config file is used
// when one exists. The returned config carries a logger writing to
// Stderr at the configured level.
func (g *Globals) Resolve(override msgtypes.Config) (*msgtypes.Config, error) {
	cfg := &msgtypes.Config{}
	path := g.Config
	if path == "" {
		path, _ = xdg.SearchConfigFile(DefaultConfigFile)
	}
	if path != "" {
		loaded, err := msgtypes.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	override.LogLevel = g.LogLevel
	cfg.Merge(override)

	logger, err := NewLogger(g.stderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	return cfg, nil
}

// Out returns the writer for command output.
func (g *Globals) Out() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr != nil {
		return g.Stderr
	}
	return os.Stderr
}

// NewLogger returns a text logger writing to w. An empty level means warn.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level = slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q", level)
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
