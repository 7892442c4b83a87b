package backend

import (
	"github.com/broady/msgtypes/ir"
)

// pythonBackend emits dataclasses. It declares no enum types: enum values
// become module-level constants and fields keep their scalar type.
type pythonBackend struct {
	profile
}

func newPython(opts Options) Backend {
	return &pythonBackend{profile{
		name: "python",
		scalars: map[string]string{
			ir.TypeInteger: "int",
			ir.TypeString:  "str",
			ir.TypeBoolean: "bool",
		},
		lit: literals{
			emptySequence: func(string) string { return "field(default_factory=list)" },
			emptyString:   `""`,
			zero:          "0",
			falseLit:      "False",
			newInstance: func(_, ref string) string {
				return "field(default_factory=lambda: " + ref + "())"
			},
		},
		opts: opts,
	}}
}

func (b *pythonBackend) ArrayType(elem string) string { return "List[" + elem + "]" }

// RefType quotes the name so classes may reference each other regardless
// of declaration order.
func (b *pythonBackend) RefType(typeName string) string { return `"` + typeName + `"` }

func (b *pythonBackend) EnumName(string, string) string { return "" }

func (b *pythonBackend) EnumConstant(enumRef string, v ir.EnumValue) string {
	return enumRef + "_" + sanitize(v.Constant)
}

func (b *pythonBackend) DefaultValue(site Site) (string, error) {
	return standardDefault(b, b.lit, site)
}

func (b *pythonBackend) FormatDescription(text string) string {
	return commentBlock(text, b.opts.Width, "# ")
}
