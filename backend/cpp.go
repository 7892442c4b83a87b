package backend

import (
	"github.com/broady/msgtypes/ir"
)

// cppBackend emits C++ structs and enum classes qualified by a namespace.
type cppBackend struct {
	profile
}

func newCpp(opts Options) Backend {
	ns := opts.Namespace
	return &cppBackend{profile{
		name: "cpp",
		scalars: map[string]string{
			ir.TypeInteger: "int64_t",
			ir.TypeString:  "std::string",
			ir.TypeBoolean: "bool",
		},
		lit: literals{
			emptySequence: func(string) string { return "{}" },
			emptyString:   `""`,
			zero:          "0",
			falseLit:      "false",
			newInstance:   func(_, ref string) string { return ns + "::" + ref + "{}" },
		},
		opts: opts,
	}}
}

func (b *cppBackend) ArrayType(elem string) string { return "std::vector<" + elem + ">" }

func (b *cppBackend) RefType(typeName string) string { return b.opts.Namespace + "::" + typeName }

func (b *cppBackend) EnumName(parentType, propertyName string) string {
	return b.opts.Namespace + "::" + ir.DeriveEnumName(parentType, propertyName)
}

func (b *cppBackend) EnumConstant(enumRef string, v ir.EnumValue) string {
	return enumRef + "::" + b.EnumMember(v)
}

// DefaultValue value-initializes non-string enums; enum classes do not
// convert from integer or bool literals.
func (b *cppBackend) DefaultValue(site Site) (string, error) {
	if site.Enum != nil && site.EnumName != "" && site.Property.Type != ir.TypeString {
		return site.Type + "{}", nil
	}
	return standardDefault(b, b.lit, site)
}

func (b *cppBackend) FormatDescription(text string) string {
	return commentBlock(text, b.opts.Width, "/// ")
}
