package ocpp

import (
	"maps"
	"slices"
)

// CustomDataProperty is the reserved wire property holding vendor extensions.
const CustomDataProperty = "customData"

// CustomData is the open vendor-extension bag attached to messages and nested
// structures. Keys are opaque to the codec. The zero value is absent, which is
// distinct from a present but empty bag.
type CustomData struct {
	entries map[string]any
}

// NewCustomData returns a present bag holding a deep copy of entries.
// A nil or empty map yields a present, empty bag.
func NewCustomData(entries map[string]any) CustomData {
	out := make(map[string]any, len(entries))
	for k, v := range entries {
		out[k] = cloneValue(v)
	}
	return CustomData{entries: out}
}

// IsSet reports whether the bag is present.
func (c CustomData) IsSet() bool {
	return c.entries != nil
}

// Len returns the number of entries.
func (c CustomData) Len() int {
	return len(c.entries)
}

// Get returns the value stored under key.
func (c CustomData) Get(key string) (any, bool) {
	v, ok := c.entries[key]
	return cloneValue(v), ok
}

// Keys returns the entry keys in sorted order.
func (c CustomData) Keys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// VendorID returns the conventional vendorId entry, or "" if it is missing or
// not a string.
func (c CustomData) VendorID() string {
	s, _ := c.entries["vendorId"].(string)
	return s
}

// With returns a present copy of the bag with key set to value.
func (c CustomData) With(key string, value any) CustomData {
	next := NewCustomData(c.entries)
	next.entries[key] = cloneValue(value)
	return next
}

// Map returns a deep copy of the entries, or nil if the bag is absent.
func (c CustomData) Map() map[string]any {
	if c.entries == nil {
		return nil
	}
	return NewCustomData(c.entries).entries
}

// Equal compares bags by content. Absent and present-empty are unequal.
func (c CustomData) Equal(other CustomData) bool {
	if c.IsSet() != other.IsSet() || len(c.entries) != len(other.entries) {
		return false
	}
	for k, v := range c.entries {
		ov, ok := other.entries[k]
		if !ok || canonical(v) != canonical(ov) {
			return false
		}
	}
	return true
}

// Hash combines entry hashes independently of key order. An absent bag hashes
// to 0 and a present empty bag to 1.
func (c CustomData) Hash() uint64 {
	if !c.IsSet() {
		return 0
	}
	hashes := make([]uint64, 0, len(c.entries)+1)
	hashes = append(hashes, 1)
	for k, v := range c.entries {
		hashes = append(hashes, NewHasher().Add(hashString(k)).Add(hashString(canonical(v))).Sum())
	}
	return hashUnordered(hashes)
}

// customDataType decodes the customData property.
func customDataType() Type[CustomData] {
	return Type[CustomData]{
		Name: "customData",
		Decode: func(raw any) (CustomData, error) {
			obj, ok := raw.(map[string]any)
			if !ok {
				return CustomData{}, newParseError(ErrMalformedCustomData, "", "", "expected object, got "+kindOf(raw))
			}
			return NewCustomData(obj), nil
		},
		Encode: func(v CustomData) any { return v.Map() },
		Equal:  CustomData.Equal,
		Hash:   CustomData.Hash,
	}
}

// cloneValue deep-copies a JSON value.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
