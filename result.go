package ocpp

import "fmt"

// ResultCode is the transport-level outcome of exchanging a message. It is
// independent of any domain status a response carries.
type ResultCode string

// Result codes. The set is closed.
const (
	ResultOK             ResultCode = "OK"
	ResultGenericError   ResultCode = "GenericError"
	ResultFormatError    ResultCode = "FormatError"
	ResultTransportError ResultCode = "TransportError"
	ResultTimeout        ResultCode = "Timeout"
	ResultUnauthorized   ResultCode = "Unauthorized"
	ResultCanceled       ResultCode = "Canceled"
	ResultNotSupported   ResultCode = "NotSupported"
)

// Result is the transport-level result envelope of a response.
type Result struct {
	Code        ResultCode
	Description string
}

// OK returns a successful result.
func OK() Result { return Result{Code: ResultOK} }

// GenericError returns a generic failure with a description.
func GenericError(desc string) Result { return Result{Code: ResultGenericError, Description: desc} }

// FormatError reports a message that could not be parsed.
func FormatError(desc string) Result { return Result{Code: ResultFormatError, Description: desc} }

// TransportError reports a failure of the underlying connection.
func TransportError(desc string) Result { return Result{Code: ResultTransportError, Description: desc} }

// Timeout reports that no response arrived in time.
func Timeout(desc string) Result { return Result{Code: ResultTimeout, Description: desc} }

// Unauthorized reports that the peer refused the request.
func Unauthorized(desc string) Result { return Result{Code: ResultUnauthorized, Description: desc} }

// Canceled reports that the request was canceled before a response arrived.
func Canceled(desc string) Result { return Result{Code: ResultCanceled, Description: desc} }

// NotSupported reports that the peer does not implement the action.
func NotSupported(desc string) Result { return Result{Code: ResultNotSupported, Description: desc} }

// IsOK reports whether the exchange succeeded at the transport level.
func (r Result) IsOK() bool {
	return r.Code == ResultOK
}

func (r Result) String() string {
	if r.Description == "" {
		return string(r.Code)
	}
	return fmt.Sprintf("%s: %s", r.Code, r.Description)
}

// ResultFromCallError maps an OCPP-J CALLERROR error code to a Result.
// Unknown codes map to GenericError.
func ResultFromCallError(code CallError, desc string) Result {
	switch code {
	case CallErrorFormationViolation, CallErrorTypeConstraintViolation,
		CallErrorPropertyConstraintViolation, CallErrorOccurrenceConstraintViolation,
		CallErrorProtocolError:
		return FormatError(desc)
	case CallErrorNotImplemented, CallErrorNotSupported:
		return NotSupported(desc)
	case CallErrorSecurityError:
		return Unauthorized(desc)
	default:
		return GenericError(desc)
	}
}
