package messages

import "github.com/zoobzio/ocpp"

// ResetType selects when a reset happens.
type ResetType string

const (
	ResetImmediate          ResetType = "Immediate"
	ResetOnIdle             ResetType = "OnIdle"
	ResetImmediateAndResume ResetType = "ImmediateAndResume"
)

// ResetStatus is the outcome of a Reset request.
type ResetStatus string

const (
	ResetAccepted  ResetStatus = "Accepted"
	ResetRejected  ResetStatus = "Rejected"
	ResetScheduled ResetStatus = "Scheduled"
)

// ResetRequest asks the charging station, or one EVSE, to reset.
type ResetRequest struct {
	ocpp.RequestFrame
	Type       ResetType
	EVSEID     *int
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// ResetRequestSchema maps ResetRequest.
var ResetRequestSchema = ocpp.NewSchema(ActionReset+"Request",
	ocpp.RequiredField("type", "reset type", ocpp.Enum(ResetImmediate, ResetOnIdle, ResetImmediateAndResume),
		func(r *ResetRequest) *ResetType { return &r.Type }),
	ocpp.OptionalField("evseId", "EVSE to reset", ocpp.Integer(),
		func(r *ResetRequest) **int { return &r.EVSEID }),
	ocpp.CustomDataField(func(r *ResetRequest) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *ResetRequest) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewResetRequest returns a request with a fresh frame.
func NewResetRequest(typ ResetType, evseID *int, opts ...ocpp.RequestOption) ResetRequest {
	return ResetRequest{
		RequestFrame: ocpp.NewRequestFrame(opts...),
		Type:         typ,
		EVSEID:       evseID,
	}
}

// Equal reports whether both ResetRequest values carry the same wire content.
func (r ResetRequest) Equal(other ResetRequest) bool { return ResetRequestSchema.Equal(r, other) }

// Hash returns the structural hash of the ResetRequest.
func (r ResetRequest) Hash() uint64 { return ResetRequestSchema.Hash(r) }

// ResetResponse reports whether the reset will happen.
type ResetResponse struct {
	ocpp.ResponseFrame[ResetRequest]
	Status     ResetStatus
	StatusInfo *StatusInfo
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// ResetResponseSchema maps ResetResponse.
var ResetResponseSchema = ocpp.NewSchema(ActionReset+"Response",
	ocpp.RequiredField("status", "reset status", ocpp.Enum(ResetAccepted, ResetRejected, ResetScheduled),
		func(r *ResetResponse) *ResetStatus { return &r.Status }),
	ocpp.OptionalField("statusInfo", "status detail", statusInfoType,
		func(r *ResetResponse) **StatusInfo { return &r.StatusInfo }),
	ocpp.CustomDataField(func(r *ResetResponse) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *ResetResponse) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewResetResponse answers req with status.
func NewResetResponse(req ResetRequest, status ResetStatus, info *StatusInfo) ResetResponse {
	return ocpp.Respond(req, ResetResponse{Status: status, StatusInfo: info})
}

// Equal reports whether both ResetResponse values carry the same wire content.
func (r ResetResponse) Equal(other ResetResponse) bool { return ResetResponseSchema.Equal(r, other) }

// Hash returns the structural hash of the ResetResponse.
func (r ResetResponse) Hash() uint64 { return ResetResponseSchema.Hash(r) }
