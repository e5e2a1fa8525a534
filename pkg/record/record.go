package record

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// Record is implemented by every type convertible to and from a mapping.
//
// Fields is declared on the pointer receiver and binds each field name to the
// address of the struct member holding it:
//
//	func (c *Column) Fields() []record.Field {
//		return []record.Field{
//			record.String("name", &c.Name),
//			record.Enum("ldm_type", &c.LdmType, core.ParseElementKind, core.ElementKindValues()),
//			record.Optional(record.Strings("tags", &c.Tags)),
//		}
//	}
//
// The returned slice fixes the schema: its order is the key order of Flatten.
type Record interface {
	Fields() []Field
}

// Pointer constrains PT to be *T implementing Record. It lets callers write
// Materialize[Column](m) with PT inferred.
type Pointer[T any] interface {
	*T
	Record
}

// Field describes one declared field of a record schema, bound to its storage.
type Field interface {
	// Name is the mapping key of the field.
	Name() string
	// Type is a human-readable type, e.g. "string" or "list<Column>".
	Type() string
	// Required reports whether materialization fails when the key is absent.
	Required() bool

	decode(d *Decoder, v any) error
	encode() any
	reset()
	describe(s *describer) *jsonschema.Schema
}

// Options control how leniently values are coerced during materialization.
type Options struct {
	// DisallowUnknownFields rejects mapping keys no field declares.
	DisallowUnknownFields bool `koanf:"disallow_unknown_fields"`
	// AllowIntegralFloats accepts 5.0 for an integer field. JSON decoders
	// without UseNumber produce float64 for every number.
	AllowIntegralFloats bool `koanf:"allow_integral_floats"`
	// CaseInsensitiveEnums matches enum literals ignoring case.
	CaseInsensitiveEnums bool `koanf:"case_insensitive_enums"`
}

// Fields describes Options as a record keyed like its configuration keys.
func (o *Options) Fields() []Field {
	return []Field{
		Bool("disallow_unknown_fields", &o.DisallowUnknownFields),
		Bool("allow_integral_floats", &o.AllowIntegralFloats),
		Bool("case_insensitive_enums", &o.CaseInsensitiveEnums),
	}
}

// DefaultOptions returns the options used by Materialize.
func DefaultOptions() Options {
	return Options{
		DisallowUnknownFields: false,
		AllowIntegralFloats:   true,
		CaseInsensitiveEnums:  false,
	}
}

// Decoder materializes records from untyped mappings.
// A Decoder is immutable and safe for concurrent use.
type Decoder struct {
	opts   Options
	logger *slog.Logger
}

// NewDecoder creates a decoder. A nil logger discards output.
func NewDecoder(opts Options, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{opts: opts, logger: logger}
}

// Options returns the decoder's coercion options.
func (d *Decoder) Options() Options { return d.opts }

var defaultDecoder = NewDecoder(DefaultOptions(), nil)

// Materialize builds a T from an untyped mapping using DefaultOptions.
// On failure it returns the zero T and a *SchemaMismatchError.
func Materialize[T any, PT Pointer[T]](m any) (T, error) {
	return MaterializeWith[T, PT](defaultDecoder, m)
}

// MaterializeWith is Materialize with an explicit decoder.
func MaterializeWith[T any, PT Pointer[T]](d *Decoder, m any) (T, error) {
	var out T
	if err := d.Decode(m, PT(&out)); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Decode populates dst from m. Optional fields absent from m are reset, so
// dst ends up equal to what Materialize returns for the same input. On failure
// every field of dst is reset to its zero value, so no partially decoded
// record is observable.
func (d *Decoder) Decode(m any, dst Record) error {
	if err := d.decodeRecord(m, dst); err != nil {
		for _, f := range dst.Fields() {
			f.reset()
		}
		return err
	}
	return nil
}

func (d *Decoder) decodeRecord(m any, dst Record) error {
	e, err := entriesOf(m)
	if err != nil {
		return err
	}

	fields := dst.Fields()
	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.Name()] = struct{}{}
	}
	for _, key := range e.keys {
		if _, ok := declared[key]; ok {
			continue
		}
		if d.opts.DisallowUnknownFields {
			return &SchemaMismatchError{
				Path:     key,
				Expected: "declared field",
				Actual:   shapeOf(e.values[key]),
				Reason:   "unknown field",
			}
		}
		d.logger.Debug("ignoring unknown field", "field", key, "record", typeName(dst))
	}

	for _, f := range fields {
		v, present := e.values[f.Name()]
		if !present {
			if f.Required() {
				return &SchemaMismatchError{
					Path:     f.Name(),
					Expected: f.Type(),
					Actual:   "missing",
					Reason:   "required field is missing",
				}
			}
			f.reset()
			continue
		}
		if v == nil && !f.Required() {
			f.reset()
			continue
		}
		if err := f.decode(d, v); err != nil {
			return within(f.Name(), err)
		}
	}
	return nil
}

// entries is a mapping input normalized to string keys.
type entries struct {
	keys   []string
	values map[string]any
}

func entriesOf(m any) (entries, error) {
	switch v := m.(type) {
	case map[string]any:
		keys := lo.Keys(v)
		slices.Sort(keys)
		return entries{keys: keys, values: v}, nil
	case *Mapping:
		if v == nil {
			break
		}
		e := entries{keys: make([]string, 0, v.Len()), values: make(map[string]any, v.Len())}
		for p := v.Oldest(); p != nil; p = p.Next() {
			e.keys = append(e.keys, p.Key)
			e.values[p.Key] = p.Value
		}
		return e, nil
	case map[any]any:
		e := entries{keys: make([]string, 0, len(v)), values: make(map[string]any, len(v))}
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return entries{}, mismatch("string key", k, fmt.Sprintf("mapping key %v is not a string", k))
			}
			e.keys = append(e.keys, ks)
			e.values[ks] = val
		}
		slices.Sort(e.keys)
		return e, nil
	}
	return entries{}, mismatch("mapping", m, "value is not a mapping")
}

// typeName returns the unqualified Go type name of v, without pointer marks.
func typeName(v any) string {
	name := fmt.Sprintf("%T", v)
	for len(name) > 0 && name[0] == '*' {
		name = name[1:]
	}
	if i := lastDot(name); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func lastDot(s string) int {
	// Ignore dots inside generic type arguments.
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ']':
			depth++
		case '[':
			depth--
		case '.':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
