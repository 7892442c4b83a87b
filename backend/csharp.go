package backend

import (
	"strings"

	"github.com/broady/msgtypes/ir"
)

// cSharpBackend emits C# classes. It is the only nullability-aware
// backend: a property missing from the schema's required list defaults
// to null.
type cSharpBackend struct {
	profile
}

func newCSharp(opts Options) Backend {
	return &cSharpBackend{profile{
		name: "csharp",
		scalars: map[string]string{
			ir.TypeInteger: "long",
			ir.TypeString:  "string",
			ir.TypeBoolean: "bool",
		},
		lit: literals{
			emptySequence: func(typ string) string { return "new " + typ + "()" },
			emptyString:   `""`,
			zero:          "0",
			falseLit:      "false",
			newInstance:   func(typ, _ string) string { return "new " + typ + "()" },
		},
		opts: opts,
	}}
}

func (b *cSharpBackend) ArrayType(elem string) string { return "List<" + elem + ">" }

func (b *cSharpBackend) RefType(typeName string) string { return typeName }

func (b *cSharpBackend) EnumName(parentType, propertyName string) string {
	return ir.DeriveEnumName(parentType, propertyName)
}

func (b *cSharpBackend) EnumConstant(enumRef string, v ir.EnumValue) string {
	return enumRef + "." + b.EnumMember(v)
}

func (b *cSharpBackend) IsNullable(propertyName string, s *ir.Schema) bool {
	return !s.IsRequired(propertyName)
}

func (b *cSharpBackend) DefaultValue(site Site) (string, error) {
	if b.IsNullable(site.Property.Name, site.Schema) {
		return "null", nil
	}
	return standardDefault(b, b.lit, site)
}

func (b *cSharpBackend) FormatDescription(text string) string {
	body := commentBlock(text, b.opts.Width, "/// ")
	if body == "" {
		return ""
	}
	return strings.Join([]string{"/// <summary>", body, "/// </summary>"}, "\n")
}
