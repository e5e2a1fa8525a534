package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch is matched by every *SchemaMismatchError via errors.Is.
var ErrSchemaMismatch = errors.New("schema mismatch")

// SchemaMismatchError reports input that does not satisfy a record schema.
type SchemaMismatchError struct {
	// Path locates the offending value, e.g. `columns[2].name` or `meta["k"]`.
	Path     string
	Expected string
	Actual   string
	Reason   string
}

func (e *SchemaMismatchError) Error() string {
	var b strings.Builder
	b.WriteString("schema mismatch")
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, " (expected %s, got %s)", e.Expected, e.Actual)
	}
	return b.String()
}

// Is reports whether target is ErrSchemaMismatch.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

func mismatch(expected string, v any, reason string) *SchemaMismatchError {
	return &SchemaMismatchError{Expected: expected, Actual: shapeOf(v), Reason: reason}
}

// within prefixes the error path with segment. Errors that are not schema
// mismatches are returned unchanged.
func within(segment string, err error) error {
	var sm *SchemaMismatchError
	if !errors.As(err, &sm) {
		return err
	}
	out := *sm
	out.Path = joinPath(segment, sm.Path)
	return &out
}

func joinPath(prefix, rest string) string {
	switch {
	case rest == "":
		return prefix
	case prefix == "":
		return rest
	case rest[0] == '[':
		return prefix + rest
	default:
		return prefix + "." + rest
	}
}

func indexSegment(i int) string { return fmt.Sprintf("[%d]", i) }

func keySegment(k string) string { return fmt.Sprintf("[%q]", k) }

// shapeOf names the shape of an untyped input value for error messages.
func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64, json.Number:
		return "number"
	case map[string]any, map[any]any, *Mapping:
		return "mapping"
	case []any, []string, []map[string]any, []*Mapping:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
