package ocpp

import "encoding/json"

// Object is the generic JSON object a message maps to and from.
// Values are the JSON value types produced by a Codec: nil, bool, string,
// numbers (json.Number, float64 or any Go integer type), []any and
// map[string]any.
type Object = map[string]any

// Codec provides content-type aware marshaling of message objects.
// Implementations live in the json, msgpack and yaml subpackages.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Normalize converts json.Number values inside v to int64 or float64 so that
// codecs without a notion of JSON numbers encode them as numbers.
func Normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	default:
		return v
	}
}
