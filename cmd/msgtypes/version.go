package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the version string: the module version for
// `go install ...@version` builds, otherwise "devel-<VERSION>[+<rev>]".
func Version() string {
	info, _ := debug.ReadBuildInfo()
	return version(embeddedVersion, info)
}

func version(embedded string, info *debug.BuildInfo) string {
	base := "devel-" + strings.TrimSpace(embedded)
	if info == nil {
		return base
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return base + "+" + s.Value[:7]
		}
	}
	return base
}
