// Package messages instantiates OCPP 2.1 message types on top of the ocpp
// codec. Each type is a struct plus a declarative schema; parsing,
// serialization, equality and hashing all come from the schema.
//
// Requests embed ocpp.RequestFrame and responses embed
// ocpp.ResponseFrame[Req], so a response always carries the request it
// answers:
//
//	proc := ocpp.Use(messages.ResetResponseSchema, json.New())
//	resp, err := ocpp.ParseResponse[messages.ResetResponse](ctx, proc, req, obj)
//	if err != nil {
//	    // resp.Result() is a FormatError and resp.Request() is still req
//	}
package messages
