package ocpp

import "errors"

// CallError is an OCPP-J CALLERROR error code, the peer's transport-level
// refusal of a request.
type CallError string

const (
	CallErrorFormationViolation            CallError = "FormationViolation"
	CallErrorGenericError                  CallError = "GenericError"
	CallErrorInternalError                 CallError = "InternalError"
	CallErrorMessageTypeNotSupported       CallError = "MessageTypeNotSupported"
	CallErrorNotImplemented                CallError = "NotImplemented"
	CallErrorNotSupported                  CallError = "NotSupported"
	CallErrorOccurrenceConstraintViolation CallError = "OccurrenceConstraintViolation"
	CallErrorPropertyConstraintViolation   CallError = "PropertyConstraintViolation"
	CallErrorProtocolError                 CallError = "ProtocolError"
	CallErrorRpcFrameworkError             CallError = "RpcFrameworkError"
	CallErrorSecurityError                 CallError = "SecurityError"
	CallErrorTypeConstraintViolation       CallError = "TypeConstraintViolation"
)

// validCallErrors contains every CALLERROR code defined by OCPP 2.x.
var validCallErrors = map[CallError]bool{
	CallErrorFormationViolation:            true,
	CallErrorGenericError:                  true,
	CallErrorInternalError:                 true,
	CallErrorMessageTypeNotSupported:       true,
	CallErrorNotImplemented:                true,
	CallErrorNotSupported:                  true,
	CallErrorOccurrenceConstraintViolation: true,
	CallErrorPropertyConstraintViolation:   true,
	CallErrorProtocolError:                 true,
	CallErrorRpcFrameworkError:             true,
	CallErrorSecurityError:                 true,
	CallErrorTypeConstraintViolation:       true,
}

// IsValidCallError returns true if code is a known CALLERROR code.
func IsValidCallError(code CallError) bool {
	return validCallErrors[code]
}

// CallErrorFor returns the CALLERROR code a transport should answer with when
// parsing an inbound request failed with err.
func CallErrorFor(err error) CallError {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingMandatoryField):
		return CallErrorOccurrenceConstraintViolation
	case errors.Is(err, ErrTypeMismatch), errors.Is(err, ErrUnknownEnumValue):
		return CallErrorTypeConstraintViolation
	case errors.Is(err, ErrConstraint):
		return CallErrorPropertyConstraintViolation
	default:
		return CallErrorFormationViolation
	}
}
