package render

import (
	"github.com/broady/msgtypes/ir"
	"github.com/broady/msgtypes/registry"
)

// dependencyOrder returns schemas ordered so that each one follows every
// schema its properties reference, directly or through array items.
// Among schemas whose references are satisfied the earliest in the input
// comes first; a reference cycle is broken at its earliest member.
func dependencyOrder(reg *registry.Registry, schemas []*ir.Schema) []*ir.Schema {
	index := make(map[*ir.Schema]int, len(schemas))
	for i, s := range schemas {
		index[s] = i
	}

	deps := make([][]int, len(schemas))
	for i, s := range schemas {
		for _, p := range s.Ordered() {
			for item := p; item != nil; item = item.Items {
				if !item.IsRef() {
					continue
				}
				target, ok := reg.Resolve(s, item.Ref)
				if !ok {
					continue
				}
				if j, ok := index[target]; ok && j != i {
					deps[i] = append(deps[i], j)
				}
			}
		}
	}

	done := make([]bool, len(schemas))
	ready := func(i int) bool {
		for _, j := range deps[i] {
			if !done[j] {
				return false
			}
		}
		return true
	}

	out := make([]*ir.Schema, 0, len(schemas))
	for len(out) < len(schemas) {
		next := -1
		for i := range schemas {
			if !done[i] && ready(i) {
				next = i
				break
			}
		}
		if next < 0 {
			for i := range schemas {
				if !done[i] {
					next = i
					break
				}
			}
		}
		done[next] = true
		out = append(out, schemas[next])
	}
	return out
}
