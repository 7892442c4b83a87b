package backend

import (
	"encoding/json"
	"strings"

	"github.com/broady/msgtypes/ir"
)

// markdownBackend renders reference documentation. Type names are
// cross-links to the headings of the referenced schema or enum.
type markdownBackend struct {
	profile
}

func newMarkdown(opts Options) Backend {
	return &markdownBackend{profile{
		name: "markdown",
		scalars: map[string]string{
			ir.TypeInteger: "integer",
			ir.TypeString:  "string",
			ir.TypeBoolean: "boolean",
		},
		opts: opts,
	}}
}

func (b *markdownBackend) ArrayType(elem string) string { return elem + "[]" }

func (b *markdownBackend) RefType(typeName string) string { return link(typeName) }

func (b *markdownBackend) EnumName(parentType, propertyName string) string {
	return link(ir.DeriveEnumName(parentType, propertyName))
}

// EnumConstant shows the literal wire value, which is what readers of the
// documentation need.
func (b *markdownBackend) EnumConstant(_ string, v ir.EnumValue) string {
	return code(v.Literal)
}

// DefaultValue writes defaults as JSON code spans instead of target
// language expressions.
func (b *markdownBackend) DefaultValue(site Site) (string, error) {
	prop := site.Property
	switch {
	case prop.IsArray():
		return code([]any{}), nil
	case prop.IsRef():
		return code(map[string]any{}), nil
	}

	switch prop.Type {
	case ir.TypeString:
		if site.Enum != nil {
			if first, ok := site.Enum.First(); ok {
				return b.EnumConstant("", first), nil
			}
		}
		return code(""), nil
	case ir.TypeInteger:
		return code(0), nil
	case ir.TypeBoolean:
		return code(false), nil
	}
	return "", ErrUnsupportedShape
}

func (b *markdownBackend) FormatDescription(text string) string {
	return commentBlock(text, b.opts.Width, "")
}

func link(name string) string {
	return "[" + name + "](#" + strings.ToLower(name) + ")"
}

func code(v any) string {
	j, err := json.Marshal(v)
	if err != nil {
		return "`?`"
	}
	return "`" + string(j) + "`"
}
