package record

import (
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// =============================================================================
// Values
// =============================================================================

// Value converts single values of type T. Scalar fields, list elements and
// map values are all described by a Value.
type Value[T any] struct {
	typ    string
	decode func(d *Decoder, v any) (T, error)
	encode func(T) any
	schema func(s *describer) *jsonschema.Schema
}

// Type returns the human-readable type of the value.
func (v Value[T]) Type() string { return v.typ }

// StringValue converts strings. Only string input is accepted.
func StringValue[S ~string]() Value[S] {
	return Value[S]{
		typ: "string",
		decode: func(_ *Decoder, v any) (S, error) {
			s, ok := v.(string)
			if !ok {
				return "", mismatch("string", v, "value is not a string")
			}
			return S(s), nil
		},
		encode: func(s S) any { return string(s) },
		schema: func(*describer) *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} },
	}
}

// BoolValue converts booleans. Only bool input is accepted.
func BoolValue() Value[bool] {
	return Value[bool]{
		typ: "bool",
		decode: func(_ *Decoder, v any) (bool, error) {
			b, ok := v.(bool)
			if !ok {
				return false, mismatch("bool", v, "value is not a bool")
			}
			return b, nil
		},
		encode: func(b bool) any { return b },
		schema: func(*describer) *jsonschema.Schema { return &jsonschema.Schema{Type: "boolean"} },
	}
}

// IntValue converts signed integers, including named types such as
// `type Priority int`. See coerceInt for accepted input. Values flatten to
// int64.
func IntValue[N constraints.Signed]() Value[N] {
	return Value[N]{
		typ: "integer",
		decode: func(d *Decoder, v any) (N, error) {
			i, err := coerceInt(v, d.opts.AllowIntegralFloats)
			if err != nil {
				return 0, err
			}
			n := N(i)
			if int64(n) != i {
				return 0, mismatch("integer", v, fmt.Sprintf("%d overflows %T", i, n))
			}
			return n, nil
		},
		encode: func(n N) any { return int64(n) },
		schema: func(*describer) *jsonschema.Schema { return &jsonschema.Schema{Type: "integer"} },
	}
}

// FloatValue converts floating point numbers. Integers are widened.
// Values flatten to float64.
func FloatValue[F constraints.Float]() Value[F] {
	return Value[F]{
		typ: "number",
		decode: func(_ *Decoder, v any) (F, error) {
			f, err := coerceFloat(v)
			if err != nil {
				return 0, err
			}
			out := F(f)
			if isInf(float64(out)) && !isInf(f) {
				return 0, mismatch("number", v, fmt.Sprintf("%g overflows %T", f, out))
			}
			return out, nil
		},
		encode: func(f F) any { return float64(f) },
		schema: func(*describer) *jsonschema.Schema { return &jsonschema.Schema{Type: "number"} },
	}
}

// Literal is satisfied by the closed enumerations of pkg/core.
type Literal interface {
	comparable
	String() string
}

// EnumValue converts enum variants to and from their string literals.
// values lists every variant; it drives case-insensitive matching and the
// enum list of Describe.
func EnumValue[E Literal](parse func(string) (E, bool), values []E) Value[E] {
	literals := lo.Map(values, func(e E, _ int) string { return e.String() })
	expected := "one of " + strings.Join(literals, ", ")
	return Value[E]{
		typ: "enum",
		decode: func(d *Decoder, v any) (E, error) {
			var zero E
			s, ok := v.(string)
			if !ok {
				return zero, mismatch(expected, v, "value is not a string literal")
			}
			if e, ok := parse(s); ok {
				return e, nil
			}
			if d.opts.CaseInsensitiveEnums {
				if e, ok := lo.Find(values, func(e E) bool { return strings.EqualFold(e.String(), s) }); ok {
					return e, nil
				}
			}
			return zero, &SchemaMismatchError{Expected: expected, Actual: fmt.Sprintf("%q", s), Reason: "unknown literal"}
		},
		encode: func(e E) any { return e.String() },
		schema: func(*describer) *jsonschema.Schema {
			return &jsonschema.Schema{Type: "string", Enum: lo.ToAnySlice(literals)}
		},
	}
}

// RecordValue converts nested records.
func RecordValue[T any, PT Pointer[T]]() Value[T] {
	name := typeName(PT(new(T)))
	return Value[T]{
		typ: name,
		decode: func(d *Decoder, v any) (T, error) {
			var out T
			if err := d.decodeRecord(v, PT(&out)); err != nil {
				var zero T
				return zero, err
			}
			return out, nil
		},
		encode: func(t T) any { return Flatten(PT(&t)) },
		schema: func(s *describer) *jsonschema.Schema { return s.record(name, PT(new(T))) },
	}
}

// =============================================================================
// Fields
// =============================================================================

// ValueOf declares a required field converted by val.
func ValueOf[T any](name string, dst *T, val Value[T]) Field {
	return &valueField[T]{name: name, dst: dst, val: val}
}

// String declares a required string field.
func String[S ~string](name string, dst *S) Field {
	return ValueOf(name, dst, StringValue[S]())
}

// Bool declares a required bool field.
func Bool(name string, dst *bool) Field {
	return ValueOf(name, dst, BoolValue())
}

// Int declares a required signed integer field.
func Int[N constraints.Signed](name string, dst *N) Field {
	return ValueOf(name, dst, IntValue[N]())
}

// Float declares a required floating point field.
func Float[F constraints.Float](name string, dst *F) Field {
	return ValueOf(name, dst, FloatValue[F]())
}

// Enum declares a required enum field stored as its string literal.
func Enum[E Literal](name string, dst *E, parse func(string) (E, bool), values []E) Field {
	return ValueOf(name, dst, EnumValue(parse, values))
}

// Nested declares a required nested record field.
func Nested[T any, PT Pointer[T]](name string, dst *T) Field {
	return ValueOf(name, dst, RecordValue[T, PT]())
}

// Ref declares a nullable nested record field. A nil pointer flattens to
// null and null materializes to nil.
func Ref[T any, PT Pointer[T]](name string, dst **T) Field {
	return &refField[T]{name: name, dst: dst, val: RecordValue[T, PT]()}
}

// ListOf declares a list field whose elements are converted by elem.
// null materializes to a nil slice and a nil slice flattens to null.
func ListOf[T any](name string, dst *[]T, elem Value[T]) Field {
	return &listField[T]{name: name, dst: dst, elem: elem}
}

// List declares a list of nested records.
func List[T any, PT Pointer[T]](name string, dst *[]T) Field {
	return ListOf(name, dst, RecordValue[T, PT]())
}

// Strings declares a list of strings.
func Strings(name string, dst *[]string) Field {
	return ListOf(name, dst, StringValue[string]())
}

// MapOf declares a string-keyed map field whose values are converted by elem.
// Flattened keys are sorted.
func MapOf[T any](name string, dst *map[string]T, elem Value[T]) Field {
	return &mapField[T]{name: name, dst: dst, elem: elem}
}

// Map declares a string-keyed map of nested records.
func Map[T any, PT Pointer[T]](name string, dst *map[string]T) Field {
	return MapOf(name, dst, RecordValue[T, PT]())
}

// Optional makes f tolerate an absent key or a null value. The field keeps
// its zero value in both cases.
func Optional(f Field) Field {
	return optionalField{Field: f}
}

type optionalField struct {
	Field
}

func (optionalField) Required() bool { return false }

type valueField[T any] struct {
	name string
	dst  *T
	val  Value[T]
}

func (f *valueField[T]) Name() string   { return f.name }
func (f *valueField[T]) Type() string   { return f.val.typ }
func (f *valueField[T]) Required() bool { return true }

func (f *valueField[T]) decode(d *Decoder, v any) error {
	out, err := f.val.decode(d, v)
	if err != nil {
		return err
	}
	*f.dst = out
	return nil
}

func (f *valueField[T]) encode() any { return f.val.encode(*f.dst) }

func (f *valueField[T]) reset() {
	var zero T
	*f.dst = zero
}

func (f *valueField[T]) describe(s *describer) *jsonschema.Schema { return f.val.schema(s) }

type refField[T any] struct {
	name string
	dst  **T
	val  Value[T]
}

func (f *refField[T]) Name() string   { return f.name }
func (f *refField[T]) Type() string   { return "*" + f.val.typ }
func (f *refField[T]) Required() bool { return true }

func (f *refField[T]) decode(d *Decoder, v any) error {
	if v == nil {
		*f.dst = nil
		return nil
	}
	out, err := f.val.decode(d, v)
	if err != nil {
		return err
	}
	*f.dst = &out
	return nil
}

func (f *refField[T]) encode() any {
	if *f.dst == nil {
		return nil
	}
	return f.val.encode(**f.dst)
}

func (f *refField[T]) reset() { *f.dst = nil }

func (f *refField[T]) describe(s *describer) *jsonschema.Schema {
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "null"}, f.val.schema(s)}}
}

type listField[T any] struct {
	name string
	dst  *[]T
	elem Value[T]
}

func (f *listField[T]) Name() string   { return f.name }
func (f *listField[T]) Type() string   { return "list<" + f.elem.typ + ">" }
func (f *listField[T]) Required() bool { return true }

func (f *listField[T]) decode(d *Decoder, v any) error {
	if v == nil {
		*f.dst = nil
		return nil
	}
	items, ok := listOf(v)
	if !ok {
		return mismatch(f.Type(), v, "value is not a list")
	}
	out := make([]T, len(items))
	for i, item := range items {
		e, err := f.elem.decode(d, item)
		if err != nil {
			return within(indexSegment(i), err)
		}
		out[i] = e
	}
	*f.dst = out
	return nil
}

func (f *listField[T]) encode() any {
	if *f.dst == nil {
		return nil
	}
	return lo.Map(*f.dst, func(e T, _ int) any { return f.elem.encode(e) })
}

func (f *listField[T]) reset() { *f.dst = nil }

func (f *listField[T]) describe(s *describer) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: f.elem.schema(s)}
}

type mapField[T any] struct {
	name string
	dst  *map[string]T
	elem Value[T]
}

func (f *mapField[T]) Name() string   { return f.name }
func (f *mapField[T]) Type() string   { return "map<" + f.elem.typ + ">" }
func (f *mapField[T]) Required() bool { return true }

func (f *mapField[T]) decode(d *Decoder, v any) error {
	if v == nil {
		*f.dst = nil
		return nil
	}
	e, err := entriesOf(v)
	if err != nil {
		if shapeOf(v) == "mapping" {
			return err
		}
		return mismatch(f.Type(), v, "value is not a mapping")
	}
	out := make(map[string]T, len(e.keys))
	for _, k := range e.keys {
		val, err := f.elem.decode(d, e.values[k])
		if err != nil {
			return within(keySegment(k), err)
		}
		out[k] = val
	}
	*f.dst = out
	return nil
}

func (f *mapField[T]) encode() any {
	if *f.dst == nil {
		return nil
	}
	keys := lo.Keys(*f.dst)
	slices.Sort(keys)
	m := NewMapping()
	for _, k := range keys {
		m.Set(k, f.elem.encode((*f.dst)[k]))
	}
	return m
}

func (f *mapField[T]) reset() { *f.dst = nil }

func (f *mapField[T]) describe(s *describer) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", AdditionalProperties: f.elem.schema(s)}
}

func listOf(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		return lo.ToAnySlice(l), true
	case []map[string]any:
		return lo.ToAnySlice(l), true
	case []*Mapping:
		return lo.ToAnySlice(l), true
	}
	return nil, false
}
