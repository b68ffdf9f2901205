package ocpp

import (
	"context"
	"errors"
	"testing"
)

func TestParseRequest(t *testing.T) {
	proc := NewProcessor(testRequestSchema, &testCodec{})
	frame := NewRequestFrame(WithRequestID("req-1"))

	req, err := ParseRequest(context.Background(), proc, Object{"kind": "Accepted", "count": 2.0}, frame)
	if err != nil {
		t.Fatalf("ParseRequest() error: %v", err)
	}
	if req.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", req.RequestID())
	}
	if req.Count == nil || *req.Count != 2 {
		t.Errorf("Count = %v, want 2", req.Count)
	}
}

func TestParseRequest_Error(t *testing.T) {
	proc := NewProcessor(testRequestSchema, &testCodec{})

	_, err := ParseRequest(context.Background(), proc, Object{"kind": "Maybe"}, NewRequestFrame())
	if !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("ParseRequest() error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestDecodeRequest(t *testing.T) {
	proc := NewProcessor(testRequestSchema, &testCodec{})
	frame := NewRequestFrame(WithRequestID("req-2"))

	req, err := DecodeRequest(context.Background(), proc, []byte(`{"kind":"Rejected"}`), frame)
	if err != nil {
		t.Fatalf("DecodeRequest() error: %v", err)
	}
	if req.RequestID() != "req-2" || req.Kind != testRejected {
		t.Errorf("DecodeRequest() = %+v", req)
	}
}

func TestUnparsed(t *testing.T) {
	frame := NewRequestFrame(WithRequestID("req-3"))
	req := Unparsed[testRequest](frame)

	if req.RequestID() != "req-3" {
		t.Errorf("RequestID() = %q, want req-3", req.RequestID())
	}
	if req.Kind != "" {
		t.Error("Unparsed() should leave domain fields unset")
	}
}

func TestParseResponse(t *testing.T) {
	proc := NewProcessor(testResponseSchema, &testCodec{})
	req := testRequest{RequestFrame: NewRequestFrame(WithRequestID("req-4")), Kind: testAccepted}

	resp, err := ParseResponse[testResponse](context.Background(), proc, req, Object{"status": "Accepted"})
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}
	if !resp.Result().IsOK() {
		t.Errorf("Result() = %v, want OK", resp.Result())
	}
	if resp.RequestID() != "req-4" || resp.Request().Kind != testAccepted {
		t.Error("response should carry the originating request")
	}
	if resp.Status != testAccepted {
		t.Errorf("Status = %q, want Accepted", resp.Status)
	}
}

func TestParseResponse_Failure(t *testing.T) {
	proc := NewProcessor(testResponseSchema, &testCodec{})
	req := testRequest{RequestFrame: NewRequestFrame(WithRequestID("req-5")), Kind: testAccepted}

	resp, err := ParseResponse[testResponse](context.Background(), proc, req, Object{})
	if !errors.Is(err, ErrMissingMandatoryField) || FieldOf(err) != "status" {
		t.Fatalf("ParseResponse() error = %v, want missing status", err)
	}
	if resp.Result().Code != ResultFormatError {
		t.Errorf("Result() = %v, want FormatError", resp.Result())
	}
	if resp.Result().Description != err.Error() {
		t.Errorf("Description = %q, want the parse error text", resp.Result().Description)
	}
	if resp.RequestID() != "req-5" {
		t.Error("failed response should keep correlation with the request")
	}
}

func TestDecodeResponse_Failure(t *testing.T) {
	proc := NewProcessor(testResponseSchema, &testCodec{})
	req := testRequest{RequestFrame: NewRequestFrame(WithRequestID("req-6"))}

	resp, err := DecodeResponse[testResponse](context.Background(), proc, req, []byte("{"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("DecodeResponse() error = %v, want ErrDecode", err)
	}
	if resp.Result().Code != ResultFormatError || resp.RequestID() != "req-6" {
		t.Errorf("DecodeResponse() = %v for %q", resp.Result(), resp.RequestID())
	}
}

func TestDecodeResponse(t *testing.T) {
	proc := NewProcessor(testResponseSchema, &testCodec{})
	req := testRequest{RequestFrame: NewRequestFrame()}

	resp, err := DecodeResponse[testResponse](context.Background(), proc, req, []byte(`{"status":"Rejected","info":{"reasonCode":"Busy"}}`))
	if err != nil {
		t.Fatalf("DecodeResponse() error: %v", err)
	}
	if resp.Info == nil || resp.Info.ReasonCode != "Busy" {
		t.Errorf("Info = %+v", resp.Info)
	}
	if resp.RequestID() != req.RequestID() {
		t.Error("response should echo the request id")
	}
}

func TestRespond(t *testing.T) {
	req := testRequest{RequestFrame: NewRequestFrame()}
	resp := Respond(req, testResponse{Status: testRejected})

	if !resp.Result().IsOK() {
		t.Error("Respond() should produce an OK result")
	}
	if resp.Status != testRejected {
		t.Error("Respond() should keep domain fields")
	}
	if resp.RequestID() != req.RequestID() {
		t.Error("Respond() should attach the request")
	}
}

func TestFailed(t *testing.T) {
	req := testRequest{RequestFrame: NewRequestFrame()}
	resp := Failed[testResponse](req, TransportError("connection closed"))

	if resp.Result().Code != ResultTransportError {
		t.Errorf("Result() = %v, want TransportError", resp.Result())
	}
	if resp.RequestID() != req.RequestID() {
		t.Error("Failed() should attach the request")
	}
	if resp.Status != "" || resp.Info != nil {
		t.Error("Failed() should leave domain fields unset")
	}
}

func TestResultIndependentOfStatus(t *testing.T) {
	req := testRequest{RequestFrame: NewRequestFrame()}
	resp := Respond(req, testResponse{Status: testRejected})

	if !resp.Result().IsOK() || resp.Status != testRejected {
		t.Error("a domain rejection should travel with an OK transport result")
	}
}
