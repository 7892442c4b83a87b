package backend

import (
	"github.com/broady/msgtypes/ir"
)

// goBackend emits Go structs. References are pointers and enums are named
// string types with one constant per value.
type goBackend struct {
	profile
}

func newGo(opts Options) Backend {
	return &goBackend{profile{
		name: "go",
		scalars: map[string]string{
			ir.TypeInteger: "int64",
			ir.TypeString:  "string",
			ir.TypeBoolean: "bool",
		},
		lit: literals{
			emptySequence: func(string) string { return "nil" },
			emptyString:   `""`,
			zero:          "0",
			falseLit:      "false",
			newInstance:   func(_, ref string) string { return "&" + ref + "{}" },
		},
		opts: opts,
	}}
}

func (b *goBackend) ArrayType(elem string) string { return "[]" + elem }

func (b *goBackend) RefType(typeName string) string { return "*" + typeName }

func (b *goBackend) EnumName(parentType, propertyName string) string {
	return ir.DeriveEnumName(parentType, propertyName)
}

func (b *goBackend) EnumConstant(enumRef string, v ir.EnumValue) string {
	return enumRef + "_" + sanitize(v.Constant)
}

func (b *goBackend) DefaultValue(site Site) (string, error) {
	return standardDefault(b, b.lit, site)
}

func (b *goBackend) FormatDescription(text string) string {
	return commentBlock(text, b.opts.Width, "// ")
}
