package registry

import (
	"bytes"
	"encoding/json"
	"strings"
)

// propertyOrder scans raw JSON and records the key order of every
// "properties" object. The result maps a slash-joined path such as
// "properties" or "definitions/Header/properties" to its ordered keys.
// Malformed input yields whatever was read before the error.
func propertyOrder(raw []byte) map[string][]string {
	result := make(map[string][]string)
	dec := json.NewDecoder(bytes.NewReader(raw))

	var walk func(path []string) bool
	walk = func(path []string) bool {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			return true
		}

		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return false
				}
				key, _ := kt.(string)
				keys = append(keys, key)
				if !walk(append(path, key)) {
					return false
				}
			}
			if _, err := dec.Token(); err != nil {
				return false
			}
			if len(path) > 0 && path[len(path)-1] == "properties" {
				result[strings.Join(path, "/")] = keys
			}
		case '[':
			for dec.More() {
				if !walk(append(path, "[]")) {
					return false
				}
			}
			if _, err := dec.Token(); err != nil {
				return false
			}
		}
		return true
	}
	walk(nil)

	return result
}
