package messages

import "github.com/zoobzio/ocpp"

// DataTransferStatus is the outcome of a DataTransfer request.
type DataTransferStatus string

const (
	DataTransferAccepted         DataTransferStatus = "Accepted"
	DataTransferRejected         DataTransferStatus = "Rejected"
	DataTransferUnknownMessageID DataTransferStatus = "UnknownMessageId"
	DataTransferUnknownVendorID  DataTransferStatus = "UnknownVendorId"
)

// DataTransferRequest carries vendor-specific data in either direction.
// Data may hold any JSON value; a non-nil pointer to nil is an explicit null.
type DataTransferRequest struct {
	ocpp.RequestFrame
	MessageID  *string
	Data       *any
	VendorID   string
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// DataTransferRequestSchema maps DataTransferRequest.
var DataTransferRequestSchema = ocpp.NewSchema(ActionDataTransfer+"Request",
	ocpp.OptionalField("messageId", "vendor message id", ocpp.MaxString(50),
		func(r *DataTransferRequest) **string { return &r.MessageID }),
	ocpp.OptionalField("data", "vendor payload", ocpp.Any(),
		func(r *DataTransferRequest) **any { return &r.Data }),
	ocpp.RequiredField("vendorId", "vendor identifier", ocpp.MaxString(255),
		func(r *DataTransferRequest) *string { return &r.VendorID }),
	ocpp.CustomDataField(func(r *DataTransferRequest) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *DataTransferRequest) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewDataTransferRequest returns a request with a fresh frame.
func NewDataTransferRequest(vendorID string, opts ...ocpp.RequestOption) DataTransferRequest {
	return DataTransferRequest{
		RequestFrame: ocpp.NewRequestFrame(opts...),
		VendorID:     vendorID,
	}
}

// Equal reports whether both DataTransferRequest values carry the same wire content.
func (r DataTransferRequest) Equal(other DataTransferRequest) bool {
	return DataTransferRequestSchema.Equal(r, other)
}

// Hash returns the structural hash of the DataTransferRequest.
func (r DataTransferRequest) Hash() uint64 { return DataTransferRequestSchema.Hash(r) }

// DataTransferResponse answers a DataTransfer request.
type DataTransferResponse struct {
	ocpp.ResponseFrame[DataTransferRequest]
	Status     DataTransferStatus
	StatusInfo *StatusInfo
	Data       *any
	CustomData ocpp.CustomData
	Signatures ocpp.SignatureSet
}

// DataTransferResponseSchema maps DataTransferResponse.
var DataTransferResponseSchema = ocpp.NewSchema(ActionDataTransfer+"Response",
	ocpp.RequiredField("status", "data transfer status", ocpp.Enum(
		DataTransferAccepted, DataTransferRejected, DataTransferUnknownMessageID, DataTransferUnknownVendorID,
	), func(r *DataTransferResponse) *DataTransferStatus { return &r.Status }),
	ocpp.OptionalField("statusInfo", "status detail", statusInfoType,
		func(r *DataTransferResponse) **StatusInfo { return &r.StatusInfo }),
	ocpp.OptionalField("data", "vendor payload", ocpp.Any(),
		func(r *DataTransferResponse) **any { return &r.Data }),
	ocpp.CustomDataField(func(r *DataTransferResponse) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *DataTransferResponse) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewDataTransferResponse answers req with status.
func NewDataTransferResponse(req DataTransferRequest, status DataTransferStatus, info *StatusInfo) DataTransferResponse {
	return ocpp.Respond(req, DataTransferResponse{Status: status, StatusInfo: info})
}

// Equal reports whether both DataTransferResponse values carry the same wire content.
func (r DataTransferResponse) Equal(other DataTransferResponse) bool {
	return DataTransferResponseSchema.Equal(r, other)
}

// Hash returns the structural hash of the DataTransferResponse.
func (r DataTransferResponse) Hash() uint64 { return DataTransferResponseSchema.Hash(r) }
