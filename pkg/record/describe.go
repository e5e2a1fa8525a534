package record

import (
	"reflect"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Describe returns a JSON Schema for r's record schema. Properties follow
// field declaration order; non-optional fields are listed as required.
// A record type that contains itself is described as a bare object at the
// point of recursion.
func Describe(r Record) *jsonschema.Schema {
	s := &describer{active: make(map[reflect.Type]bool)}
	out := s.record(typeName(r), r)
	out.Version = jsonschema.Version
	return out
}

// describer tracks the record types being described on the current path.
// Types are compared by identity, so equally named types from different
// packages do not cut each other off.
type describer struct {
	active map[reflect.Type]bool
}

func (s *describer) record(name string, r Record) *jsonschema.Schema {
	typ := reflect.TypeOf(r)
	if s.active[typ] {
		return &jsonschema.Schema{Type: "object", Title: name}
	}
	s.active[typ] = true
	defer delete(s.active, typ)

	out := &jsonschema.Schema{
		Type:       "object",
		Title:      name,
		Properties: orderedmap.New[string, *jsonschema.Schema](),
	}
	for _, f := range r.Fields() {
		out.Properties.Set(f.Name(), f.describe(s))
		if f.Required() {
			out.Required = append(out.Required, f.Name())
		}
	}
	return out
}
