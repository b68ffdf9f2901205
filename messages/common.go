package messages

import (
	"errors"
	"unicode/utf8"

	"github.com/zoobzio/ocpp"
)

// Action names used in OCPP-J CALL frames.
const (
	ActionBootNotification = "BootNotification"
	ActionClearCache       = "ClearCache"
	ActionDataTransfer     = "DataTransfer"
	ActionHeartbeat        = "Heartbeat"
	ActionReset            = "Reset"
)

// Actions lists every action implemented by this package.
var Actions = []string{
	ActionBootNotification,
	ActionClearCache,
	ActionDataTransfer,
	ActionHeartbeat,
	ActionReset,
}

// StatusInfo carries additional detail about a domain status.
type StatusInfo struct {
	ReasonCode     string
	AdditionalInfo *string
	CustomData     ocpp.CustomData
}

// StatusInfoSchema maps StatusInfo.
var StatusInfoSchema = ocpp.NewSchema("StatusInfo",
	ocpp.RequiredField("reasonCode", "reason code", ocpp.MaxString(20),
		func(s *StatusInfo) *string { return &s.ReasonCode }),
	ocpp.OptionalField("additionalInfo", "additional information", ocpp.MaxString(512),
		func(s *StatusInfo) **string { return &s.AdditionalInfo }),
	ocpp.CustomDataField(func(s *StatusInfo) *ocpp.CustomData { return &s.CustomData }),
)

var statusInfoType = ocpp.ObjectOf(StatusInfoSchema)

// Equal reports structural equality.
func (s StatusInfo) Equal(other StatusInfo) bool { return StatusInfoSchema.Equal(s, other) }

// Hash returns the structural hash.
func (s StatusInfo) Hash() uint64 { return StatusInfoSchema.Hash(s) }

// Reason codes used by RejectionInfo.
const (
	ReasonMissingProperty     = "MissingProperty"
	ReasonInvalidValue        = "InvalidValue"
	ReasonConstraintViolation = "ConstraintViolation"
	ReasonFormatViolation     = "FormatViolation"
)

// RejectionInfo describes a request parse failure as StatusInfo, for
// transports that answer malformed requests with a domain-level rejection.
func RejectionInfo(err error) *StatusInfo {
	reason := ReasonFormatViolation
	switch {
	case errors.Is(err, ocpp.ErrMissingMandatoryField):
		reason = ReasonMissingProperty
	case errors.Is(err, ocpp.ErrTypeMismatch), errors.Is(err, ocpp.ErrUnknownEnumValue):
		reason = ReasonInvalidValue
	case errors.Is(err, ocpp.ErrConstraint):
		reason = ReasonConstraintViolation
	}
	info := &StatusInfo{ReasonCode: reason}
	if err != nil {
		detail := truncate(err.Error(), 512)
		info.AdditionalInfo = &detail
	}
	return info
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
