package backend

import (
	"github.com/broady/msgtypes/ir"
)

// literals holds the default-value spellings of one target language.
type literals struct {
	emptySequence func(arrayType string) string
	emptyString   string
	zero          string
	falseLit      string
	newInstance   func(typ, refName string) string
}

// profile carries the table-driven parts shared by every backend.
type profile struct {
	name    string
	scalars map[string]string
	lit     literals
	opts    Options
}

func (p *profile) Name() string { return p.name }

func (p *profile) ScalarType(jsonType string) (string, bool) {
	t, ok := p.scalars[jsonType]
	return t, ok
}

func (p *profile) IsNullable(string, *ir.Schema) bool { return false }

func (p *profile) EnumMember(v ir.EnumValue) string { return memberName(v.Constant) }

// standardDefault applies the default-value rules shared by most backends.
func standardDefault(b Backend, lit literals, site Site) (string, error) {
	prop := site.Property
	switch {
	case prop.IsArray():
		return lit.emptySequence(site.Type), nil
	case prop.IsRef():
		return lit.newInstance(site.Type, site.RefName), nil
	}

	switch prop.Type {
	case ir.TypeString:
		if site.Enum != nil {
			if first, ok := site.Enum.First(); ok {
				return b.EnumConstant(enumRef(site), first), nil
			}
		}
		return lit.emptyString, nil
	case ir.TypeInteger:
		return lit.zero, nil
	case ir.TypeBoolean:
		return lit.falseLit, nil
	}
	return "", ErrUnsupportedShape
}

// enumRef is the name enum constants are qualified with.
func enumRef(site Site) string {
	if site.EnumName != "" {
		return site.EnumName
	}
	if site.Enum != nil {
		return site.Enum.Name
	}
	return ""
}
