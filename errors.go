package ocpp

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingMandatoryField indicates a mandatory property was absent.
	ErrMissingMandatoryField = errors.New("missing mandatory field")

	// ErrTypeMismatch indicates a property was present but had the wrong JSON type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownEnumValue indicates a string property held a value outside its enumeration.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrConstraint indicates a value violated a schema bound (length, range).
	ErrConstraint = errors.New("constraint violated")

	// ErrNestedObjectInvalid wraps a parse failure inside a nested object or list element.
	ErrNestedObjectInvalid = errors.New("nested object invalid")

	// ErrMalformedCustomData indicates the customData property was not a JSON object.
	ErrMalformedCustomData = errors.New("malformed custom data")

	// ErrMalformedSignature indicates a signature record could not be parsed.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrDecode indicates the byte codec failed to decode input data.
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates the byte codec failed to encode output data.
	ErrEncode = errors.New("encode failed")
)

// ParseError is a value-level parse failure. Field is the property the failure
// is attributed to; nested failures chain through Cause so that Error() renders
// a breadcrumb of the form "outer: inner: reason".
type ParseError struct {
	Err         error  // Underlying sentinel error (ErrMissingMandatoryField, etc.)
	Field       string // Property name, or name[i] for list elements
	Description string // Human readable description of the property
	Detail      string // Extra context for leaf failures
	Cause       error  // Child failure for nested objects
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Field, e.Cause)
	}
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err == ErrMissingMandatoryField && e.Description != "" {
		msg += " (" + e.Description + ")"
	}
	if e.Field == "" {
		return msg
	}
	return e.Field + ": " + msg
}

// Unwrap exposes both the sentinel and the child failure to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// CodecError represents a byte-level decode/encode error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrDecode, ErrEncode)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// FieldOf returns the outermost field a parse failure is attributed to, or ""
// if err is not a *ParseError.
func FieldOf(err error) string {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return ""
	}
	return pe.Field
}

// newParseError creates a leaf ParseError.
func newParseError(sentinel error, field, desc, detail string) error {
	return &ParseError{
		Err:         sentinel,
		Field:       field,
		Description: desc,
		Detail:      detail,
	}
}

// wrapParseError attributes a child failure to field.
func wrapParseError(sentinel error, field, desc string, cause error) error {
	return &ParseError{
		Err:         sentinel,
		Field:       field,
		Description: desc,
		Cause:       cause,
	}
}

// newCodecError creates a CodecError for decode/encode failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
