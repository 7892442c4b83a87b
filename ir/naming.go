package ir

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// DeriveEnumName returns the enum type name for a property: the parent type
// name followed by the capitalized property name.
func DeriveEnumName(parentType, propertyName string) string {
	return parentType + Capitalize(propertyName)
}

var constantReplacer = strings.NewReplacer(".", "_", "/", "_", "+", "_")

// EnumConstant normalizes an enum literal into a constant identifier.
// Every ".", "/" and "+" becomes "_" and the result is upper-cased,
// so "a.b/c+d" becomes "A_B_C_D".
func EnumConstant(value string) string {
	return strings.ToUpper(constantReplacer.Replace(value))
}

// RefBaseName returns the schema base name a "$ref" points at. A non-empty
// fragment names it by its last segment ("#/definitions/foo" yields "foo");
// otherwise it is the file's base name without extension, so both
// "dir/foo.json" and "foo.json#" yield "foo". The result is empty when the
// reference names neither.
func RefBaseName(ref string) string {
	file, frag, _ := strings.Cut(ref, "#")
	if seg := lastSegment(frag); seg != "" {
		return seg
	}
	base := lastSegment(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

func lastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	return p[strings.LastIndex(p, "/")+1:]
}

// TypeNameFromRef returns the type name referenced by a "$ref".
func TypeNameFromRef(ref string) string {
	return Capitalize(RefBaseName(ref))
}
