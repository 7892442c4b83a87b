// Package testutil provides helpers for tests that need schema files on disk
// and assertions over generated text.
// It imports nothing from this module and can be used from any package.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// CorpusBuilder collects schema files to write into a temporary directory.
type CorpusBuilder struct {
	files map[string][]byte
}

// NewCorpus creates an empty corpus builder.
func NewCorpus() *CorpusBuilder {
	return &CorpusBuilder{files: make(map[string][]byte)}
}

// Schema adds a file with the given name and contents.
func (b *CorpusBuilder) Schema(name, data string) *CorpusBuilder {
	b.files[name] = []byte(data)
	return b
}

// Schemas adds every name → contents pair.
func (b *CorpusBuilder) Schemas(files map[string]string) *CorpusBuilder {
	for name, data := range files {
		b.Schema(name, data)
	}
	return b
}

// Archive adds the archive files whose names start with prefix, with the
// prefix removed.
func (b *CorpusBuilder) Archive(ar *txtar.Archive, prefix string) *CorpusBuilder {
	for _, f := range ar.Files {
		if name, ok := strings.CutPrefix(f.Name, prefix); ok {
			b.files[name] = f.Data
		}
	}
	return b
}

// Build writes the files into a fresh temporary directory and returns it.
func (b *CorpusBuilder) Build(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	names := make([]string, 0, len(b.files))
	for name := range b.files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, b.files[name], 0644))
	}
	return dir
}

// Section returns the contents of the named archive file, or "".
func Section(ar *txtar.Archive, name string) string {
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	return ""
}

// FirstMissingLine returns the first non-blank line of want that does not
// occur in got after the previously matched one. Lines are compared with
// surrounding whitespace removed.
func FirstMissingLine(got, want string) (string, bool) {
	lines := strings.Split(got, "\n")
	i := 0
	for _, w := range strings.Split(want, "\n") {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		for i < len(lines) && strings.TrimSpace(lines[i]) != w {
			i++
		}
		if i == len(lines) {
			return w, true
		}
		i++
	}
	return "", false
}

// AssertLinesInOrder checks that every line of want appears in got, in order.
func AssertLinesInOrder(t testing.TB, got, want string) bool {
	t.Helper()
	if line, missing := FirstMissingLine(got, want); missing {
		return assert.Fail(t, "missing line", "line %q not found in order in:\n%s", line, got)
	}
	return true
}

// AssertContains checks that got contains every substring in wants.
func AssertContains(t testing.TB, got string, wants ...string) bool {
	t.Helper()
	ok := true
	for _, w := range wants {
		ok = assert.Contains(t, got, w) && ok
	}
	return ok
}
