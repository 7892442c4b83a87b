package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/broady/msgtypes/ir"
)

func mustGet(t *testing.T, name string) Backend {
	t.Helper()
	b, err := Get(name, Options{})
	if err != nil {
		t.Fatalf("Get(%q) error = %v", name, err)
	}
	return b
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("cobol", Options{})
	var unknown *UnknownBackendError
	if !errors.As(err, &unknown) {
		t.Fatalf("Get(cobol) error = %v, want *UnknownBackendError", err)
	}
	if !strings.Contains(err.Error(), "cobol") {
		t.Errorf("error should name the backend: %v", err)
	}
}

func TestNames(t *testing.T) {
	got := strings.Join(Names(), ",")
	want := "cpp,csharp,go,markdown,python,typescript"
	if got != want {
		t.Errorf("Names() = %s, want %s", got, want)
	}
	for _, name := range Names() {
		if b := mustGet(t, name); b.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, b.Name())
		}
	}
}

func TestTypeMapping(t *testing.T) {
	tests := []struct {
		backend string
		str     string
		array   string
		ref     string
		enum    string
	}{
		{"go", "string", "[]string", "*Foo", "MsgKind"},
		{"typescript", "string", "string[]", "Foo", "MsgKind"},
		{"python", "str", "List[str]", `"Foo"`, ""},
		{"csharp", "string", "List<string>", "Foo", "MsgKind"},
		{"cpp", "std::string", "std::vector<std::string>", "messages::Foo", "messages::MsgKind"},
		{"markdown", "string", "string[]", "[Foo](#foo)", "[MsgKind](#msgkind)"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			b := mustGet(t, tt.backend)

			str, ok := b.ScalarType(ir.TypeString)
			if !ok || str != tt.str {
				t.Errorf("ScalarType(string) = %q, %v; want %q", str, ok, tt.str)
			}
			if _, ok := b.ScalarType("number"); ok {
				t.Error("ScalarType(number) should have no mapping")
			}
			if got := b.ArrayType(str); got != tt.array {
				t.Errorf("ArrayType() = %q, want %q", got, tt.array)
			}
			if got := b.RefType("Foo"); got != tt.ref {
				t.Errorf("RefType() = %q, want %q", got, tt.ref)
			}
			if got := b.EnumName("Msg", "kind"); got != tt.enum {
				t.Errorf("EnumName() = %q, want %q", got, tt.enum)
			}
		})
	}
}

func TestIsNative(t *testing.T) {
	b := mustGet(t, "cpp")
	if !IsNative(b, "std::string") {
		t.Error("IsNative(std::string) = false")
	}
	if IsNative(b, "messages::Foo") {
		t.Error("IsNative(messages::Foo) = true")
	}
}

func TestCppNamespaceOption(t *testing.T) {
	b, err := Get("cpp", Options{Namespace: "dap::wire"})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.RefType("Event"); got != "dap::wire::Event" {
		t.Errorf("RefType() = %q", got)
	}
	site := Site{Property: &ir.Property{Name: "body", Ref: "body.json"}, Type: "dap::wire::Body", RefName: "Body"}
	if got, _ := b.DefaultValue(site); got != "dap::wire::Body{}" {
		t.Errorf("DefaultValue(ref) = %q", got)
	}
}
