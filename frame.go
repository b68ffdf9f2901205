package ocpp

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultRequestTimeout is the timeout assigned to requests that do not set one.
const DefaultRequestTimeout = 30 * time.Second

// RequestID identifies a request among the in-flight requests of one sender.
type RequestID string

// NewRequestID returns a random request id.
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// EventTrackingID correlates a request with related operations across the system.
type EventTrackingID string

// NewEventTrackingID returns a random event tracking id.
func NewEventTrackingID() EventTrackingID {
	return EventTrackingID(uuid.NewString())
}

// RequestFrame is the identity and metadata frame embedded in every request.
// It never appears on the wire and never takes part in equality. The request
// id is fixed at construction.
type RequestFrame struct {
	id        RequestID
	created   time.Time
	timestamp time.Time
	timeout   time.Duration
	eventID   EventTrackingID
	ctx       context.Context
}

// RequestOption configures a RequestFrame.
type RequestOption func(*RequestFrame)

// WithRequestID assigns the request id instead of generating one.
func WithRequestID(id RequestID) RequestOption {
	return func(f *RequestFrame) { f.id = id }
}

// WithTimestamp sets the request timestamp. It defaults to the creation time.
func WithTimestamp(t time.Time) RequestOption {
	return func(f *RequestFrame) { f.timestamp = t }
}

// WithTimeout sets how long the transport waits for the response.
func WithTimeout(d time.Duration) RequestOption {
	return func(f *RequestFrame) { f.timeout = d }
}

// WithEventTrackingID sets the event tracking id instead of generating one.
func WithEventTrackingID(id EventTrackingID) RequestOption {
	return func(f *RequestFrame) { f.eventID = id }
}

// WithCancel attaches the context a transport watches to abort the request.
func WithCancel(ctx context.Context) RequestOption {
	return func(f *RequestFrame) { f.ctx = ctx }
}

// NewRequestFrame returns a frame created now.
func NewRequestFrame(opts ...RequestOption) RequestFrame {
	now := time.Now()
	f := RequestFrame{
		created: now,
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(&f)
	}
	if f.id == "" {
		f.id = NewRequestID()
	}
	if f.eventID == "" {
		f.eventID = NewEventTrackingID()
	}
	if f.timestamp.IsZero() {
		f.timestamp = now
	}
	return f
}

// RequestID returns the request id.
func (f RequestFrame) RequestID() RequestID { return f.id }

// CorrelationID returns the request id as a string.
func (f RequestFrame) CorrelationID() string { return string(f.id) }

// Created returns when the frame was constructed.
func (f RequestFrame) Created() time.Time { return f.created }

// Timestamp returns the request timestamp.
func (f RequestFrame) Timestamp() time.Time { return f.timestamp }

// Timeout returns the response timeout.
func (f RequestFrame) Timeout() time.Duration { return f.timeout }

// Deadline returns the instant the response is due.
func (f RequestFrame) Deadline() time.Time { return f.timestamp.Add(f.timeout) }

// EventTrackingID returns the event tracking id.
func (f RequestFrame) EventTrackingID() EventTrackingID { return f.eventID }

// Context returns the cancellation context. It is never nil.
func (f RequestFrame) Context() context.Context {
	if f.ctx == nil {
		return context.Background()
	}
	return f.ctx
}

// WithContext returns a copy of the frame using ctx for cancellation.
func (f RequestFrame) WithContext(ctx context.Context) RequestFrame {
	f.ctx = ctx
	return f
}

// ResponseFrame is the frame embedded in every response. It captures the
// originating request by value together with the transport-level result.
type ResponseFrame[R Request] struct {
	request R
	result  Result
	created time.Time
}

// NewResponseFrame returns a successful frame answering req.
func NewResponseFrame[R Request](req R) ResponseFrame[R] {
	return ResponseFrame[R]{request: req, result: OK(), created: time.Now()}
}

// FailedResponseFrame returns a frame answering req with a failed result.
func FailedResponseFrame[R Request](req R, result Result) ResponseFrame[R] {
	return ResponseFrame[R]{request: req, result: result, created: time.Now()}
}

// Request returns the originating request.
func (f ResponseFrame[R]) Request() R { return f.request }

// Result returns the transport-level result.
func (f ResponseFrame[R]) Result() Result { return f.result }

// RequestID echoes the originating request id.
func (f ResponseFrame[R]) RequestID() RequestID { return f.request.RequestID() }

// CorrelationID echoes the originating request id as a string.
func (f ResponseFrame[R]) CorrelationID() string { return f.request.CorrelationID() }

// Created returns when the frame was constructed.
func (f ResponseFrame[R]) Created() time.Time { return f.created }

// Runtime returns the time between the request timestamp and this response.
func (f ResponseFrame[R]) Runtime() time.Duration { return f.created.Sub(f.request.Timestamp()) }

func (f *RequestFrame) setRequestFrame(next RequestFrame) { *f = next }

func (f *ResponseFrame[R]) setResponseFrame(next ResponseFrame[R]) { *f = next }
