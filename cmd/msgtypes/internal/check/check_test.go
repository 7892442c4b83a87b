package check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/msgtypes/cmd/msgtypes/internal/cli"
	"github.com/broady/msgtypes/testutil"
)

func TestCmd_Run(t *testing.T) {
	dir := testutil.NewCorpus().Schemas(map[string]string{
		"a.json": `{"properties": {"kind": {"type": "string", "enum": ["x", "y"]}, "b": {"$ref": "b.json"}}}`,
		"b.json": `{"properties": {"n": {"type": "integer"}}}`,
	}).Build(t)

	var stdout bytes.Buffer
	g := &cli.Globals{Stdout: &stdout, Stderr: &bytes.Buffer{}}
	require.NoError(t, (&Cmd{Backend: "typescript", SchemaPath: dir}).Run(g))

	testutil.AssertContains(t, stdout.String(),
		"2 schema files",
		"2 schemas, 1 enums",
		"resolvable for typescript",
	)
}

func TestCmd_RunUnknownType(t *testing.T) {
	dir := testutil.NewCorpus().Schema("a.json", `{"properties": {"f": {"type": "number"}}}`).Build(t)

	g := &cli.Globals{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := (&Cmd{Backend: "go", SchemaPath: dir}).Run(g)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"number"`)
	assert.Contains(t, err.Error(), "a.json")
}

func TestCmd_RunTree(t *testing.T) {
	dir := testutil.NewCorpus().Schema("msg.json", `{
		"properties": {"seq": {"type": "integer"}, "head": {"$ref": "#/definitions/header"}},
		"definitions": {"header": {"properties": {"ok": {"type": "boolean"}}}}
	}`).Build(t)

	var stdout bytes.Buffer
	g := &cli.Globals{Stdout: &stdout, Stderr: &bytes.Buffer{}}
	require.NoError(t, (&Cmd{Backend: "go", SchemaPath: dir, Tree: true}).Run(g))

	out := stdout.String()
	testutil.AssertContains(t, out,
		"Msg",
		"seq int64 = 0",
		"head *Header = &Header{}",
		"header",
		"ok bool = false",
	)
	assert.Equal(t, 1, strings.Count(out, "ok bool = false"), "definitions should only be listed under their parent")
}
