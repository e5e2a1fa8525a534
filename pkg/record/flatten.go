package record

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is an insertion-ordered string-keyed map. Flatten produces one per
// record so that serialized keys follow field declaration order.
type Mapping = orderedmap.OrderedMap[string, any]

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return orderedmap.New[string, any]()
}

// Flatten converts r into a Mapping whose keys are exactly the declared field
// names, in declaration order. Nested records become nested Mappings, lists
// become []any, and string-keyed maps become Mappings with sorted keys.
// The result shares no memory with r.
func Flatten(r Record) *Mapping {
	m := NewMapping()
	for _, f := range r.Fields() {
		m.Set(f.Name(), f.encode())
	}
	return m
}

// ToMap is Flatten with every Mapping, at any depth, replaced by a plain
// map[string]any. Key order is lost.
func ToMap(r Record) map[string]any {
	return plain(Flatten(r)).(map[string]any)
}

func plain(v any) any {
	switch x := v.(type) {
	case *Mapping:
		out := make(map[string]any, x.Len())
		for p := x.Oldest(); p != nil; p = p.Next() {
			out[p.Key] = plain(p.Value)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}
