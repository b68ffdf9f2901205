package messages

import "github.com/zoobzio/ocpp"

// ClearCacheStatus is the outcome of a ClearCache request.
type ClearCacheStatus string

const (
	ClearCacheAccepted ClearCacheStatus = "Accepted"
	ClearCacheRejected ClearCacheStatus = "Rejected"
)

// ClearCacheRequest asks the charging station to clear its authorization cache.
type ClearCacheRequest struct {
	ocpp.RequestFrame
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// ClearCacheRequestSchema maps ClearCacheRequest.
var ClearCacheRequestSchema = ocpp.NewSchema(ActionClearCache+"Request",
	ocpp.CustomDataField(func(r *ClearCacheRequest) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *ClearCacheRequest) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewClearCacheRequest returns a request with a fresh frame.
func NewClearCacheRequest(opts ...ocpp.RequestOption) ClearCacheRequest {
	return ClearCacheRequest{RequestFrame: ocpp.NewRequestFrame(opts...)}
}

// Equal reports whether both ClearCacheRequest values carry the same wire content.
func (r ClearCacheRequest) Equal(other ClearCacheRequest) bool {
	return ClearCacheRequestSchema.Equal(r, other)
}

// Hash returns the structural hash of the ClearCacheRequest.
func (r ClearCacheRequest) Hash() uint64 { return ClearCacheRequestSchema.Hash(r) }

// ClearCacheResponse reports whether the cache was cleared.
type ClearCacheResponse struct {
	ocpp.ResponseFrame[ClearCacheRequest]
	Status     ClearCacheStatus
	StatusInfo *StatusInfo
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// ClearCacheResponseSchema maps ClearCacheResponse.
var ClearCacheResponseSchema = ocpp.NewSchema(ActionClearCache+"Response",
	ocpp.RequiredField("status", "clear cache status", ocpp.Enum(ClearCacheAccepted, ClearCacheRejected),
		func(r *ClearCacheResponse) *ClearCacheStatus { return &r.Status }),
	ocpp.OptionalField("statusInfo", "status detail", statusInfoType,
		func(r *ClearCacheResponse) **StatusInfo { return &r.StatusInfo }),
	ocpp.CustomDataField(func(r *ClearCacheResponse) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *ClearCacheResponse) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewClearCacheResponse answers req with status.
func NewClearCacheResponse(req ClearCacheRequest, status ClearCacheStatus, info *StatusInfo) ClearCacheResponse {
	return ocpp.Respond(req, ClearCacheResponse{Status: status, StatusInfo: info})
}

// Equal reports whether both ClearCacheResponse values carry the same wire content.
func (r ClearCacheResponse) Equal(other ClearCacheResponse) bool {
	return ClearCacheResponseSchema.Equal(r, other)
}

// Hash returns the structural hash of the ClearCacheResponse.
func (r ClearCacheResponse) Hash() uint64 { return ClearCacheResponseSchema.Hash(r) }
