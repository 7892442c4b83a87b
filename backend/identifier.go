package backend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitize replaces every rune that cannot appear in an identifier with "_".
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}

// memberName returns s as an identifier that can stand on its own,
// prefixed with "V" when it does not start with a letter or "_".
func memberName(s string) string {
	s = sanitize(s)
	r, _ := utf8.DecodeRuneInString(s)
	if s == "" || (r != '_' && !unicode.IsLetter(r)) {
		return "V" + s
	}
	return s
}
