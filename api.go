// Package ocpp provides the extensible message codec for OCPP 2.1.
//
// Every OCPP message type maps a strongly typed Go value to and from a single
// JSON object. The package implements that mapping once, as a declarative
// Schema over reusable field converters, so a concrete message is a field list
// rather than hand-written parse, serialize, equality and hash code.
//
// # Schemas
//
// A schema lists the wire properties of a message in order:
//
//	var statusInfoSchema = ocpp.NewSchema("StatusInfo",
//	    ocpp.RequiredField("reasonCode", "reason code", ocpp.MaxString(20),
//	        func(s *StatusInfo) *string { return &s.ReasonCode }),
//	    ocpp.OptionalField("additionalInfo", "additional info", ocpp.MaxString(512),
//	        func(s *StatusInfo) **string { return &s.AdditionalInfo }),
//	    ocpp.CustomDataField(func(s *StatusInfo) *ocpp.CustomData { return &s.CustomData }),
//	)
//
// Parsing evaluates fields in that order and stops at the first failure, so
// error precedence is deterministic. Serializing emits every mandatory field
// and omits absent optional fields; absent is never written as null.
//
// # Processors
//
// A Processor binds a schema to a byte Codec and optional extension hooks:
//
//	proc := ocpp.NewProcessor(resetRequestSchema, json.New())
//
//	req, err := proc.Decode(ctx, body)   // try: returns the error
//	req := proc.MustDecode(ctx, fixture) // strict: panics with the same error
//
//	data, err := proc.Encode(ctx, req)
//
// # Extension Hooks
//
// Hooks post-process the built-in mapping and fully replace its output:
//
//	vendor := proc.WithHooks(ocpp.Hooks[ResetRequest]{
//	    AfterSerialize: func(r ResetRequest, obj ocpp.Object) ocpp.Object {
//	        obj["vendorHint"] = "fast"
//	        return obj
//	    },
//	})
//
// # Result and Status
//
// Result is the transport-level outcome of an exchange; a response's status
// field is the domain-level outcome. They are separate types and never merged:
// a response can carry Result OK with status Rejected, and a failed exchange
// yields a response whose Result is not OK and whose domain fields are unset.
//
// # Errors
//
// Parse failures are *ParseError values wrapping one of the sentinel errors
// (ErrMissingMandatoryField, ErrTypeMismatch, ErrUnknownEnumValue,
// ErrConstraint, ErrNestedObjectInvalid, ErrMalformedCustomData,
// ErrMalformedSignature). Their text is a breadcrumb such as
//
//	statusInfo: reasonCode: missing mandatory field
//
// # Codec Providers
//
// The following byte codecs are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - yaml - YAML encoding (application/yaml)
package ocpp

import "time"

// Message is the capability set shared by requests and responses.
type Message interface {
	// CorrelationID returns the id that ties a request to its response.
	CorrelationID() string

	// Created returns when the message value was constructed.
	Created() time.Time
}

// Request is implemented by every request type through its embedded RequestFrame.
type Request interface {
	Message
	RequestID() RequestID
	Timestamp() time.Time
	Timeout() time.Duration
	EventTrackingID() EventTrackingID
}

// Response is implemented by every response type through its embedded ResponseFrame.
type Response interface {
	Message
	RequestID() RequestID
	Result() Result
}
