package messages

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/ocpp"
)

func TestActions(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Actions {
		if seen[a] {
			t.Errorf("duplicate action %q", a)
		}
		seen[a] = true
	}
	if len(Actions) != 5 {
		t.Errorf("len(Actions) = %d, want 5", len(Actions))
	}
}

func TestStatusInfoSchema(t *testing.T) {
	info, err := StatusInfoSchema.Parse(ocpp.Object{"reasonCode": "Busy"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if info.ReasonCode != "Busy" || info.AdditionalInfo != nil {
		t.Errorf("Parse() = %+v", info)
	}

	_, err = StatusInfoSchema.Parse(ocpp.Object{"reasonCode": strings.Repeat("x", 21)})
	if !errors.Is(err, ocpp.ErrConstraint) {
		t.Errorf("Parse() error = %v, want ErrConstraint", err)
	}

	_, err = StatusInfoSchema.Parse(ocpp.Object{"reasonCode": "Busy", "additionalInfo": strings.Repeat("y", 513)})
	if !errors.Is(err, ocpp.ErrConstraint) || ocpp.FieldOf(err) != "additionalInfo" {
		t.Errorf("Parse() error = %v, want ErrConstraint on additionalInfo", err)
	}
}

func TestStatusInfo_EqualHash(t *testing.T) {
	detail := "retry later"
	a := StatusInfo{ReasonCode: "Busy", AdditionalInfo: &detail}
	b := StatusInfo{ReasonCode: "Busy", AdditionalInfo: &detail}
	c := StatusInfo{ReasonCode: "Busy"}

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("identical StatusInfo should be Equal with equal hashes")
	}
	if a.Equal(c) {
		t.Error("absent additionalInfo should differ from present")
	}
}

func TestRejectionInfo(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{"missing", &ocpp.ParseError{Err: ocpp.ErrMissingMandatoryField, Field: "type"}, ReasonMissingProperty},
		{"type", &ocpp.ParseError{Err: ocpp.ErrTypeMismatch, Field: "evseId"}, ReasonInvalidValue},
		{"enum", &ocpp.ParseError{Err: ocpp.ErrUnknownEnumValue, Field: "type"}, ReasonInvalidValue},
		{"constraint", &ocpp.ParseError{Err: ocpp.ErrConstraint, Field: "vendorId"}, ReasonConstraintViolation},
		{"custom data", &ocpp.ParseError{Err: ocpp.ErrMalformedCustomData, Field: "customData"}, ReasonFormatViolation},
		{"codec", &ocpp.CodecError{Err: ocpp.ErrDecode, ContentType: "application/json"}, ReasonFormatViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := RejectionInfo(tt.err)
			if info.ReasonCode != tt.reason {
				t.Errorf("ReasonCode = %q, want %q", info.ReasonCode, tt.reason)
			}
			if info.AdditionalInfo == nil || *info.AdditionalInfo != tt.err.Error() {
				t.Errorf("AdditionalInfo = %v, want the error text", info.AdditionalInfo)
			}
			if _, err := StatusInfoSchema.Parse(StatusInfoSchema.Serialize(*info)); err != nil {
				t.Errorf("RejectionInfo() should satisfy the StatusInfo bounds: %v", err)
			}
		})
	}
}

func TestRejectionInfo_Truncates(t *testing.T) {
	err := &ocpp.ParseError{Err: ocpp.ErrConstraint, Field: "x", Detail: strings.Repeat("é", 600)}
	info := RejectionInfo(err)
	if got := len([]rune(*info.AdditionalInfo)); got != 512 {
		t.Errorf("AdditionalInfo length = %d, want 512", got)
	}
}

func TestRejectionInfo_Nil(t *testing.T) {
	info := RejectionInfo(nil)
	if info.ReasonCode != ReasonFormatViolation || info.AdditionalInfo != nil {
		t.Errorf("RejectionInfo(nil) = %+v", info)
	}
}
