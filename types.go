package ocpp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"
	"unicode/utf8"
)

// Type maps one JSON value to a domain value of type V and back.
// Decode failures are *ParseError values without a Field; the FieldAccessor
// attributes them to the property being read.
type Type[V any] struct {
	Name   string
	Decode func(raw any) (V, error)
	Encode func(v V) any
	Equal  func(a, b V) bool
	Hash   func(v V) uint64
}

// String maps JSON strings.
func String() Type[string] {
	return Type[string]{
		Name: "string",
		Decode: func(raw any) (string, error) {
			s, ok := raw.(string)
			if !ok {
				return "", mismatch("string", raw)
			}
			return s, nil
		},
		Encode: func(v string) any { return v },
		Equal:  func(a, b string) bool { return a == b },
		Hash:   hashString,
	}
}

// MaxString maps JSON strings of at most limit characters.
func MaxString(limit int) Type[string] {
	t := String()
	decode := t.Decode
	t.Name = "string(" + strconv.Itoa(limit) + ")"
	t.Decode = func(raw any) (string, error) {
		s, err := decode(raw)
		if err != nil {
			return "", err
		}
		if n := utf8.RuneCountInString(s); n > limit {
			return "", newParseError(ErrConstraint, "", "", fmt.Sprintf("length %d exceeds %d", n, limit))
		}
		return s, nil
	}
	return t
}

// Integer maps integral JSON numbers.
func Integer() Type[int] {
	return Type[int]{
		Name: "integer",
		Decode: func(raw any) (int, error) {
			n, err := toInt64(raw)
			if err != nil {
				return 0, err
			}
			if n < math.MinInt || n > math.MaxInt {
				return 0, errOutOfRange(raw)
			}
			return int(n), nil
		},
		Encode: func(v int) any { return v },
		Equal:  func(a, b int) bool { return a == b },
		Hash:   func(v int) uint64 { return uint64(v) },
	}
}

// Decimal maps JSON numbers to float64.
func Decimal() Type[float64] {
	return Type[float64]{
		Name: "decimal",
		Decode: func(raw any) (float64, error) {
			f, ok := toFloat64(raw)
			if !ok {
				return 0, mismatch("number", raw)
			}
			return f, nil
		},
		Encode: func(v float64) any { return v },
		Equal:  func(a, b float64) bool { return a == b },
		Hash: func(v float64) uint64 {
			// -0 equals 0
			if v == 0 {
				v = 0
			}
			return math.Float64bits(v)
		},
	}
}

// Boolean maps JSON booleans.
func Boolean() Type[bool] {
	return Type[bool]{
		Name: "boolean",
		Decode: func(raw any) (bool, error) {
			b, ok := raw.(bool)
			if !ok {
				return false, mismatch("boolean", raw)
			}
			return b, nil
		},
		Encode: func(v bool) any { return v },
		Equal:  func(a, b bool) bool { return a == b },
		Hash: func(v bool) uint64 {
			if v {
				return 1231
			}
			return 1237
		},
	}
}

// Timestamp maps RFC 3339 date-time strings. Values are emitted in UTC.
func Timestamp() Type[time.Time] {
	return Type[time.Time]{
		Name: "timestamp",
		Decode: func(raw any) (time.Time, error) {
			switch v := raw.(type) {
			case time.Time:
				return v, nil
			case string:
				t, err := time.Parse(time.RFC3339Nano, v)
				if err != nil {
					return time.Time{}, newParseError(ErrTypeMismatch, "", "", fmt.Sprintf("invalid timestamp %q", v))
				}
				return t, nil
			default:
				return time.Time{}, mismatch("timestamp", raw)
			}
		},
		Encode: func(v time.Time) any { return v.UTC().Format(time.RFC3339Nano) },
		Equal:  func(a, b time.Time) bool { return a.Equal(b) },
		Hash:   func(v time.Time) uint64 { return uint64(v.UnixNano()) },
	}
}

// Enum maps JSON strings restricted to values.
func Enum[E ~string](values ...E) Type[E] {
	allowed := slices.Clone(values)
	return Type[E]{
		Name: "enum",
		Decode: func(raw any) (E, error) {
			s, ok := raw.(string)
			if !ok {
				return "", mismatch("string", raw)
			}
			if !slices.Contains(allowed, E(s)) {
				return "", newParseError(ErrUnknownEnumValue, "", "", strconv.Quote(s))
			}
			return E(s), nil
		},
		Encode: func(v E) any { return string(v) },
		Equal:  func(a, b E) bool { return a == b },
		Hash:   func(v E) uint64 { return hashString(string(v)) },
	}
}

// Any accepts every JSON value, including null, and compares values by their
// canonical JSON encoding.
func Any() Type[any] {
	return Type[any]{
		Name:   "any",
		Decode: func(raw any) (any, error) { return cloneValue(raw), nil },
		Encode: func(v any) any { return cloneValue(v) },
		Equal:  func(a, b any) bool { return canonical(a) == canonical(b) },
		Hash:   func(v any) uint64 { return hashString(canonical(v)) },
	}
}

// ObjectOf maps a nested JSON object through schema s.
func ObjectOf[V any](s *Schema[V]) Type[V] {
	return Type[V]{
		Name: s.Name(),
		Decode: func(raw any) (V, error) {
			obj, ok := raw.(map[string]any)
			if !ok {
				var zero V
				return zero, mismatch("object", raw)
			}
			return s.Parse(obj)
		},
		Encode: func(v V) any { return s.Serialize(v) },
		Equal:  s.Equal,
		Hash:   s.Hash,
	}
}

// mismatch reports a JSON value that is not of the wanted kind.
func mismatch(want string, raw any) error {
	return newParseError(ErrTypeMismatch, "", "", fmt.Sprintf("expected %s, got %s", want, kindOf(raw)))
}

// kindOf names the JSON kind of a decoded value.
func kindOf(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

// errOutOfRange reports an integral number that does not fit the target type.
func errOutOfRange(raw any) error {
	return newParseError(ErrConstraint, "", "", fmt.Sprintf("%v out of integer range", raw))
}

// toInt64 converts any integral JSON number representation. Non-integral
// values are type mismatches; integral values beyond int64 are range errors.
func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		if err == nil {
			return n, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange(raw)
		}
		f, err := v.Float64()
		if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
			return 0, mismatch("integer", raw)
		}
		return floatToInt64(f, raw)
	case float64:
		return floatToInt64(v, raw)
	case float32:
		return floatToInt64(float64(v), raw)
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt64(uint64(v), raw)
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt64(v, raw)
	default:
		return 0, mismatch("integer", raw)
	}
}

// floatToInt64 accepts f only when it is integral and within int64.
func floatToInt64(f float64, raw any) (int64, error) {
	switch {
	case math.IsInf(f, 0):
		return 0, errOutOfRange(raw)
	case math.IsNaN(f) || f != math.Trunc(f):
		return 0, mismatch("integer", raw)
	case f < -(1<<63) || f >= 1<<63:
		return 0, errOutOfRange(raw)
	}
	return int64(f), nil
}

func uintToInt64(u uint64, raw any) (int64, error) {
	if u > math.MaxInt64 {
		return 0, errOutOfRange(raw)
	}
	return int64(u), nil
}

// toFloat64 converts any JSON number representation.
func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		n, err := toInt64(raw)
		return float64(n), err == nil
	}
}

// canonical renders v as JSON with sorted object keys.
func canonical(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(data)
}
