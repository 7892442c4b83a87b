package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/msgtypes"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
		wantErr   bool
	}{
		{level: "", wantWarn: true},
		{level: "debug", wantDebug: true, wantWarn: true},
		{level: "error"},
		{level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&buf, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewLogger() = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			logger.Debug("dbg")
			logger.Warn("wrn")
			out := buf.String()
			if got := strings.Contains(out, "msg=dbg"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "msg=wrn"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestGlobals_Resolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msgtypes.yaml")
	data := "templates_dir: tmpl\nlog_level: info\noptions:\n  namespace: Acme\n  width: \"90\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	g := &Globals{Config: path, LogLevel: "debug", Stderr: &bytes.Buffer{}}
	cfg, err := g.Resolve(msgtypes.Config{
		Backend: "csharp",
		Options: map[string]string{"width": "100"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Backend != "csharp" {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.TemplatesDir != "tmpl" {
		t.Errorf("TemplatesDir = %q, want value from config file", cfg.TemplatesDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want flag to override file", cfg.LogLevel)
	}
	if cfg.Options["namespace"] != "Acme" || cfg.Options["width"] != "100" {
		t.Errorf("Options = %v", cfg.Options)
	}
	if cfg.Logger == nil {
		t.Error("Logger not set")
	}
}

// isolateConfig points the XDG config lookup at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	return dir
}

func TestGlobals_ResolveDefaultFile(t *testing.T) {
	dir := isolateConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "msgtypes"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("templates_dir: shared\n"), 0644))

	cfg, err := (&Globals{}).Resolve(msgtypes.Config{Backend: "go"})
	require.NoError(t, err)
	assert.Equal(t, "shared", cfg.TemplatesDir)
}

func TestGlobals_ResolveWithoutFile(t *testing.T) {
	isolateConfig(t)
	g := &Globals{}
	cfg, err := g.Resolve(msgtypes.Config{Backend: "go"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "go" || cfg.LogLevel != "" {
		t.Errorf("cfg = %+v", cfg)
	}
}
