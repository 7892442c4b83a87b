package backend

import (
	"strings"

	"github.com/broady/msgtypes/ir"
)

// typeScriptBackend emits TypeScript classes and string enums.
type typeScriptBackend struct {
	profile
}

func newTypeScript(opts Options) Backend {
	return &typeScriptBackend{profile{
		name: "typescript",
		scalars: map[string]string{
			ir.TypeInteger: "number",
			ir.TypeString:  "string",
			ir.TypeBoolean: "boolean",
		},
		lit: literals{
			emptySequence: func(string) string { return "[]" },
			emptyString:   `""`,
			zero:          "0",
			falseLit:      "false",
			newInstance:   func(typ, _ string) string { return "new " + typ + "()" },
		},
		opts: opts,
	}}
}

func (b *typeScriptBackend) ArrayType(elem string) string { return elem + "[]" }

func (b *typeScriptBackend) RefType(typeName string) string { return typeName }

func (b *typeScriptBackend) EnumName(parentType, propertyName string) string {
	return ir.DeriveEnumName(parentType, propertyName)
}

func (b *typeScriptBackend) EnumConstant(enumRef string, v ir.EnumValue) string {
	return enumRef + "." + b.EnumMember(v)
}

func (b *typeScriptBackend) DefaultValue(site Site) (string, error) {
	return standardDefault(b, b.lit, site)
}

// FormatDescription renders a JSDoc block; single lines stay on one line.
func (b *typeScriptBackend) FormatDescription(text string) string {
	body := commentBlock(text, b.opts.Width, " * ")
	if body == "" {
		return ""
	}
	if !strings.Contains(body, "\n") {
		return "/** " + strings.TrimPrefix(body, " * ") + " */"
	}
	return "/**\n" + body + "\n */"
}
