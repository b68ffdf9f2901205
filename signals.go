package ocpp

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalProcessorCreated  = capitan.NewSignal("ocpp.processor.created", "Processor instantiated")
	SignalParseStart        = capitan.NewSignal("ocpp.parse.start", "Parse operation beginning")
	SignalParseComplete     = capitan.NewSignal("ocpp.parse.complete", "Parse operation finished")
	SignalSerializeStart    = capitan.NewSignal("ocpp.serialize.start", "Serialize operation beginning")
	SignalSerializeComplete = capitan.NewSignal("ocpp.serialize.complete", "Serialize operation finished")
	SignalDecodeComplete    = capitan.NewSignal("ocpp.decode.complete", "Decode operation finished")
	SignalEncodeComplete    = capitan.NewSignal("ocpp.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeySchema      = capitan.NewStringKey("schema")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, schema, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeySchema.Field(schema),
		KeyTypeName.Field(typeName),
	)
}

// emitParseStart emits an event when parse begins.
func emitParseStart(ctx context.Context, schema string) {
	capitan.Emit(ctx, SignalParseStart,
		KeySchema.Field(schema),
	)
}

// emitParseComplete emits an event when parse finishes.
func emitParseComplete(ctx context.Context, schema string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySchema.Field(schema),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalParseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalParseComplete, fields...)
	}
}

// emitSerializeStart emits an event when serialize begins.
func emitSerializeStart(ctx context.Context, schema string) {
	capitan.Emit(ctx, SignalSerializeStart,
		KeySchema.Field(schema),
	)
}

// emitSerializeComplete emits an event when serialize finishes.
func emitSerializeComplete(ctx context.Context, schema string, fieldCount int, duration time.Duration) {
	capitan.Emit(ctx, SignalSerializeComplete,
		KeySchema.Field(schema),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	)
}

// emitDecodeComplete emits an event when byte decoding finishes.
func emitDecodeComplete(ctx context.Context, contentType, schema string, size int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySchema.Field(schema),
		KeySize.Field(size),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeComplete emits an event when byte encoding finishes.
func emitEncodeComplete(ctx context.Context, contentType, schema string, size int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySchema.Field(schema),
		KeySize.Field(size),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
