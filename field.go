package ocpp

import (
	"errors"
	"fmt"
)

// Require reads mandatory property name from obj.
//
// Absence fails with ErrMissingMandatoryField. A value that t cannot decode
// fails with the decoder's error attributed to name; failures inside nested
// objects are wrapped in ErrNestedObjectInvalid so the message keeps the
// breadcrumb of every enclosing property.
func Require[V any](obj Object, name, desc string, t Type[V]) (V, error) {
	raw, ok := obj[name]
	if !ok {
		var zero V
		return zero, newParseError(ErrMissingMandatoryField, name, desc, "")
	}
	v, err := t.Decode(raw)
	if err != nil {
		var zero V
		return zero, attribute(err, name, desc, ErrNestedObjectInvalid)
	}
	return v, nil
}

// Optional reads optional property name from obj. Absence yields nil without
// error; presence follows the rules of Require.
func Optional[V any](obj Object, name, desc string, t Type[V]) (*V, error) {
	if _, ok := obj[name]; !ok {
		return nil, nil
	}
	v, err := Require(obj, name, desc, t)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// RequireList reads a mandatory JSON array whose elements decode through t.
// A failure in any element fails the whole property; partial lists are never
// returned.
func RequireList[V any](obj Object, name, desc string, t Type[V]) ([]V, error) {
	raw, ok := obj[name]
	if !ok {
		return nil, newParseError(ErrMissingMandatoryField, name, desc, "")
	}
	return decodeList(raw, name, desc, t, ErrNestedObjectInvalid)
}

// OptionalList reads an optional JSON array. Absence yields a nil slice; an
// empty array yields an empty, non-nil slice.
func OptionalList[V any](obj Object, name, desc string, t Type[V]) ([]V, error) {
	raw, ok := obj[name]
	if !ok {
		return nil, nil
	}
	return decodeList(raw, name, desc, t, ErrNestedObjectInvalid)
}

// decodeList decodes every element of raw, attributing element failures to
// name[i]. nested is the sentinel used when an element fails.
func decodeList[V any](raw any, name, desc string, t Type[V], nested error) ([]V, error) {
	items, ok := raw.([]any)
	if !ok {
		if nested != ErrNestedObjectInvalid {
			return nil, wrapParseError(nested, name, desc, mismatch("array", raw))
		}
		return nil, attribute(mismatch("array", raw), name, desc, nested)
	}
	out := make([]V, 0, len(items))
	for i, item := range items {
		v, err := t.Decode(item)
		if err != nil {
			elem := fmt.Sprintf("%s[%d]", name, i)
			if nested != ErrNestedObjectInvalid {
				return nil, wrapParseError(nested, elem, desc, err)
			}
			return nil, attribute(err, elem, desc, nested)
		}
		out = append(out, v)
	}
	return out, nil
}

// attribute names the property a decoder failure belongs to. Leaf failures
// (no Field yet) are labeled in place; failures that already carry a Field
// come from a nested object and are wrapped with the nested sentinel.
func attribute(err error, name, desc string, nested error) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return newParseError(ErrTypeMismatch, name, desc, err.Error())
	}
	if pe.Field == "" && pe.Cause == nil {
		leaf := *pe
		leaf.Field = name
		leaf.Description = desc
		return &leaf
	}
	return wrapParseError(nested, name, desc, err)
}
