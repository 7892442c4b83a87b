package ir

import "encoding/json"

// Dump renders the property as indented JSON for diagnostics.
func (p *Property) Dump() string {
	if p == nil {
		return "null"
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}
