package render

import (
	"reflect"
	"testing"

	"github.com/broady/msgtypes/registry"
	"github.com/broady/msgtypes/testutil"
)

func TestDependencyOrder(t *testing.T) {
	dir := testutil.NewCorpus().Schemas(map[string]string{
		"a.json": `{"properties": {"x": {"$ref": "c.json"}}}`,
		"b.json": `{"properties": {"list": {"type": "array", "items": {"$ref": "d.json"}}}}`,
		"c.json": `{"properties": {"y": {"$ref": "a.json#"}, "z": {"$ref": "missing.json"}}}`,
		"d.json": `{"properties": {"self": {"$ref": "#"}}}`,
	}).Build(t)

	paths, err := registry.ExpandPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	l := registry.NewLoader(nil)
	if err := l.LoadAll(paths); err != nil {
		t.Fatal(err)
	}
	reg := l.Freeze()

	var got []string
	for _, s := range dependencyOrder(reg, reg.Schemas()) {
		got = append(got, s.Name)
	}
	// D has no outside deps, B waits on D, and the A/C cycle breaks at A.
	want := []string{"D", "B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dependencyOrder() = %v, want %v", got, want)
	}
}
