package record

import (
	"math"
)

// numberLiteral matches json.Number from encoding/json and goccy/go-json.
type numberLiteral interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// coerceInt converts an untyped value to int64.
//
// Accepted: every Go integer kind within int64 range, integral number
// literals, and integral floats when allowFloat is set. Strings, bools and
// fractional numbers are rejected.
func coerceInt(v any, allowFloat bool) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUnsigned(uint64(n), v)
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUnsigned(n, v)
	case float32:
		return fromFloat(float64(n), v, allowFloat)
	case float64:
		return fromFloat(n, v, allowFloat)
	case numberLiteral:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch("integer", v, "invalid number literal "+n.String())
		}
		return fromFloat(f, v, allowFloat)
	}
	return 0, mismatch("integer", v, "value is not an integer")
}

func fromUnsigned(u uint64, v any) (int64, error) {
	if u > math.MaxInt64 {
		return 0, mismatch("integer", v, "value overflows int64")
	}
	return int64(u), nil
}

func fromFloat(f float64, v any, allowFloat bool) (int64, error) {
	if !allowFloat {
		return 0, mismatch("integer", v, "floating point value for integer field")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, mismatch("integer", v, "value is not integral")
	}
	// 2^63 is exactly representable; anything at or above it overflows.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, mismatch("integer", v, "value overflows int64")
	}
	return int64(f), nil
}

// coerceFloat converts an untyped value to float64. Integers are widened.
func coerceFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case numberLiteral:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch("number", v, "invalid number literal "+n.String())
		}
		return f, nil
	}
	return 0, mismatch("number", v, "value is not a number")
}

func isInf(f float64) bool { return math.IsInf(f, 0) }
