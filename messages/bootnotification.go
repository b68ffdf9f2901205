package messages

import (
	"time"

	"github.com/zoobzio/ocpp"
)

// BootReason is why the charging station booted.
type BootReason string

const (
	BootReasonApplicationReset BootReason = "ApplicationReset"
	BootReasonFirmwareUpdate   BootReason = "FirmwareUpdate"
	BootReasonLocalReset       BootReason = "LocalReset"
	BootReasonPowerUp          BootReason = "PowerUp"
	BootReasonRemoteReset      BootReason = "RemoteReset"
	BootReasonScheduledReset   BootReason = "ScheduledReset"
	BootReasonTriggered        BootReason = "Triggered"
	BootReasonUnknown          BootReason = "Unknown"
	BootReasonWatchdog         BootReason = "Watchdog"
)

// RegistrationStatus is the CSMS verdict on a boot notification.
type RegistrationStatus string

const (
	RegistrationAccepted RegistrationStatus = "Accepted"
	RegistrationPending  RegistrationStatus = "Pending"
	RegistrationRejected RegistrationStatus = "Rejected"
)

// Modem describes the wireless module of a charging station.
type Modem struct {
	ICCID      *string
	IMSI       *string
	CustomData ocpp.CustomData
}

// ModemSchema maps Modem.
var ModemSchema = ocpp.NewSchema("Modem",
	ocpp.OptionalField("iccid", "SIM card ICCID", ocpp.MaxString(20),
		func(m *Modem) **string { return &m.ICCID }),
	ocpp.OptionalField("imsi", "SIM card IMSI", ocpp.MaxString(20),
		func(m *Modem) **string { return &m.IMSI }),
	ocpp.CustomDataField(func(m *Modem) *ocpp.CustomData { return &m.CustomData }),
)

// Equal reports whether both Modem values carry the same wire content.
func (m Modem) Equal(other Modem) bool { return ModemSchema.Equal(m, other) }

// Hash returns the structural hash of the Modem.
func (m Modem) Hash() uint64 { return ModemSchema.Hash(m) }

// ChargingStation identifies the hardware sending a boot notification.
type ChargingStation struct {
	SerialNumber    *string
	Model           string
	Modem           *Modem
	VendorName      string
	FirmwareVersion *string
	CustomData      ocpp.CustomData
}

// ChargingStationSchema maps ChargingStation.
var ChargingStationSchema = ocpp.NewSchema("ChargingStation",
	ocpp.OptionalField("serialNumber", "vendor-specific serial number", ocpp.MaxString(25),
		func(c *ChargingStation) **string { return &c.SerialNumber }),
	ocpp.RequiredField("model", "charging station model", ocpp.MaxString(20),
		func(c *ChargingStation) *string { return &c.Model }),
	ocpp.OptionalField("modem", "wireless module", ocpp.ObjectOf(ModemSchema),
		func(c *ChargingStation) **Modem { return &c.Modem }),
	ocpp.RequiredField("vendorName", "vendor name", ocpp.MaxString(50),
		func(c *ChargingStation) *string { return &c.VendorName }),
	ocpp.OptionalField("firmwareVersion", "firmware version", ocpp.MaxString(50),
		func(c *ChargingStation) **string { return &c.FirmwareVersion }),
	ocpp.CustomDataField(func(c *ChargingStation) *ocpp.CustomData { return &c.CustomData }),
)

// Equal reports whether both ChargingStation values carry the same wire content.
func (c ChargingStation) Equal(other ChargingStation) bool {
	return ChargingStationSchema.Equal(c, other)
}

// Hash returns the structural hash of the ChargingStation.
func (c ChargingStation) Hash() uint64 { return ChargingStationSchema.Hash(c) }

// BootNotificationRequest is sent by a charging station after start-up.
type BootNotificationRequest struct {
	ocpp.RequestFrame
	ChargingStation ChargingStation
	Reason          BootReason
	CustomData      ocpp.CustomData
	Signatures      ocpp.SignatureSet
}

// BootNotificationRequestSchema maps BootNotificationRequest.
var BootNotificationRequestSchema = ocpp.NewSchema(ActionBootNotification+"Request",
	ocpp.RequiredField("chargingStation", "charging station identity", ocpp.ObjectOf(ChargingStationSchema),
		func(r *BootNotificationRequest) *ChargingStation { return &r.ChargingStation }),
	ocpp.RequiredField("reason", "boot reason", ocpp.Enum(
		BootReasonApplicationReset, BootReasonFirmwareUpdate, BootReasonLocalReset,
		BootReasonPowerUp, BootReasonRemoteReset, BootReasonScheduledReset,
		BootReasonTriggered, BootReasonUnknown, BootReasonWatchdog,
	), func(r *BootNotificationRequest) *BootReason { return &r.Reason }),
	ocpp.CustomDataField(func(r *BootNotificationRequest) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *BootNotificationRequest) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewBootNotificationRequest returns a request with a fresh frame.
func NewBootNotificationRequest(station ChargingStation, reason BootReason, opts ...ocpp.RequestOption) BootNotificationRequest {
	return BootNotificationRequest{
		RequestFrame:    ocpp.NewRequestFrame(opts...),
		ChargingStation: station,
		Reason:          reason,
	}
}

// Equal reports whether both BootNotificationRequest values carry the same wire content.
func (r BootNotificationRequest) Equal(other BootNotificationRequest) bool {
	return BootNotificationRequestSchema.Equal(r, other)
}

// Hash returns the structural hash of the BootNotificationRequest.
func (r BootNotificationRequest) Hash() uint64 { return BootNotificationRequestSchema.Hash(r) }

// BootNotificationResponse tells the station whether it is registered and
// how often to send heartbeats.
type BootNotificationResponse struct {
	ocpp.ResponseFrame[BootNotificationRequest]
	CurrentTime time.Time
	Interval    int
	Status      RegistrationStatus
	StatusInfo  *StatusInfo
	CustomData  ocpp.CustomData
	Signatures  ocpp.SignatureSet
}

// BootNotificationResponseSchema maps BootNotificationResponse.
var BootNotificationResponseSchema = ocpp.NewSchema(ActionBootNotification+"Response",
	ocpp.RequiredField("currentTime", "current time of the CSMS", ocpp.Timestamp(),
		func(r *BootNotificationResponse) *time.Time { return &r.CurrentTime }),
	ocpp.RequiredField("interval", "heartbeat interval in seconds", ocpp.Integer(),
		func(r *BootNotificationResponse) *int { return &r.Interval }),
	ocpp.RequiredField("status", "registration status", ocpp.Enum(RegistrationAccepted, RegistrationPending, RegistrationRejected),
		func(r *BootNotificationResponse) *RegistrationStatus { return &r.Status }),
	ocpp.OptionalField("statusInfo", "status detail", statusInfoType,
		func(r *BootNotificationResponse) **StatusInfo { return &r.StatusInfo }),
	ocpp.CustomDataField(func(r *BootNotificationResponse) *ocpp.CustomData { return &r.CustomData }),
	ocpp.SignaturesField(func(r *BootNotificationResponse) *ocpp.SignatureSet { return &r.Signatures }),
)

// NewBootNotificationResponse answers req.
func NewBootNotificationResponse(req BootNotificationRequest, currentTime time.Time, interval int, status RegistrationStatus) BootNotificationResponse {
	return ocpp.Respond(req, BootNotificationResponse{
		CurrentTime: currentTime,
		Interval:    interval,
		Status:      status,
	})
}

// Equal reports whether both BootNotificationResponse values carry the same wire content.
func (r BootNotificationResponse) Equal(other BootNotificationResponse) bool {
	return BootNotificationResponseSchema.Equal(r, other)
}

// Hash returns the structural hash of the BootNotificationResponse.
func (r BootNotificationResponse) Hash() uint64 { return BootNotificationResponseSchema.Hash(r) }
