package messages

import (
	"time"

	"github.com/zoobzio/ocpp"
)

// HeartbeatRequest tells the CSMS the charging station is still connected.
type HeartbeatRequest struct {
	ocpp.RequestFrame
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// HeartbeatRequestSchema maps HeartbeatRequest.
var HeartbeatRequestSchema = ocpp.NewSchema(ActionHeartbeat+"Request",
	ocpp.CustomDataField(func(r *HeartbeatRequest) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *HeartbeatRequest) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewHeartbeatRequest returns a heartbeat with a fresh frame.
func NewHeartbeatRequest(opts ...ocpp.RequestOption) HeartbeatRequest {
	return HeartbeatRequest{RequestFrame: ocpp.NewRequestFrame(opts...)}
}

// Equal reports whether both HeartbeatRequest values carry the same wire content.
func (r HeartbeatRequest) Equal(other HeartbeatRequest) bool {
	return HeartbeatRequestSchema.Equal(r, other)
}

// Hash returns the structural hash of the HeartbeatRequest.
func (r HeartbeatRequest) Hash() uint64 { return HeartbeatRequestSchema.Hash(r) }

// HeartbeatResponse carries the CSMS clock.
type HeartbeatResponse struct {
	ocpp.ResponseFrame[HeartbeatRequest]
	CurrentTime time.Time
	CustomData  ocpp.CustomData
	Signatures  ocpp.SignatureSet
}

// HeartbeatResponseSchema maps HeartbeatResponse.
var HeartbeatResponseSchema = ocpp.NewSchema(ActionHeartbeat+"Response",
	ocpp.RequiredField("currentTime", "current time of the CSMS", ocpp.Timestamp(),
		func(r *HeartbeatResponse) *time.Time { return &r.CurrentTime }),
	ocpp.CustomDataField(func(r *HeartbeatResponse) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *HeartbeatResponse) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewHeartbeatResponse answers req with currentTime.
func NewHeartbeatResponse(req HeartbeatRequest, currentTime time.Time) HeartbeatResponse {
	return ocpp.Respond(req, HeartbeatResponse{CurrentTime: currentTime})
}

// Equal reports whether both HeartbeatResponse values carry the same wire content.
func (r HeartbeatResponse) Equal(other HeartbeatResponse) bool {
	return HeartbeatResponseSchema.Equal(r, other)
}

// Hash returns the structural hash of the HeartbeatResponse.
func (r HeartbeatResponse) Hash() uint64 { return HeartbeatResponseSchema.Hash(r) }
