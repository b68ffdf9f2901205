package ocpp

import (
	"context"
	"time"

	"github.com/zoobzio/sentinel"
)

// Processor maps messages of type M between Go values, JSON objects and
// encoded bytes. Use Parse/Decode for ingress and Serialize/Encode for egress.
//
// Processors are immutable and safe for concurrent use. WithHooks derives a
// new processor; the receiver is never modified.
type Processor[M any] struct {
	schema *Schema[M]
	codec  Codec
	hooks  Hooks[M]

	// Type metadata
	typeName string
}

// NewProcessor creates a Processor for schema s encoding bytes with codec.
func NewProcessor[M any](s *Schema[M], codec Codec) *Processor[M] {
	p := &Processor[M]{
		schema:   s,
		codec:    codec,
		typeName: sentinel.Scan[M]().TypeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), s.Name(), p.typeName)
	return p
}

// WithHooks returns a processor running hooks after the built-in mapping.
// Hooks already bound to p run first.
func (p *Processor[M]) WithHooks(hooks Hooks[M]) *Processor[M] {
	next := *p
	next.hooks = p.hooks.Chain(hooks)
	return &next
}

// Schema returns the schema the processor maps through.
func (p *Processor[M]) Schema() *Schema[M] {
	return p.schema
}

// ContentType returns the content type of the byte codec.
func (p *Processor[M]) ContentType() string {
	return p.codec.ContentType()
}

// Parse builds an M from obj. Each apply function runs on the built value
// before the AfterParse hook; response and request helpers use it to attach
// their frame. Parse never panics on malformed input.
func (p *Processor[M]) Parse(ctx context.Context, obj Object, apply ...func(*M)) (M, error) {
	start := time.Now()
	emitParseStart(ctx, p.schema.Name())

	m, err := p.schema.Parse(obj)
	emitParseComplete(ctx, p.schema.Name(), len(obj), time.Since(start), err)
	if err != nil {
		return m, err
	}

	for _, fn := range apply {
		fn(&m)
	}
	return p.hooks.afterParse(obj, m), nil
}

// MustParse is Parse for trusted input. It panics with the *ParseError Parse
// would have returned.
func (p *Processor[M]) MustParse(ctx context.Context, obj Object, apply ...func(*M)) M {
	m, err := p.Parse(ctx, obj, apply...)
	if err != nil {
		panic(err)
	}
	return m
}

// Serialize maps m to a JSON object.
func (p *Processor[M]) Serialize(ctx context.Context, m M) Object {
	start := time.Now()
	emitSerializeStart(ctx, p.schema.Name())

	obj := p.hooks.afterSerialize(m, p.schema.Serialize(m))

	emitSerializeComplete(ctx, p.schema.Name(), len(obj), time.Since(start))
	return obj
}

// Decode unmarshals data with the processor's codec and parses the result.
func (p *Processor[M]) Decode(ctx context.Context, data []byte, apply ...func(*M)) (M, error) {
	var obj Object
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr := newCodecError(ErrDecode, p.codec.ContentType(), err)
		emitDecodeComplete(ctx, p.codec.ContentType(), p.schema.Name(), len(data), retErr)
		var zero M
		return zero, retErr
	}
	emitDecodeComplete(ctx, p.codec.ContentType(), p.schema.Name(), len(data), nil)
	return p.Parse(ctx, obj, apply...)
}

// MustDecode is Decode for trusted input. It panics with the error Decode
// would have returned.
func (p *Processor[M]) MustDecode(ctx context.Context, data []byte, apply ...func(*M)) M {
	m, err := p.Decode(ctx, data, apply...)
	if err != nil {
		panic(err)
	}
	return m
}

// Encode serializes m and marshals the object with the processor's codec.
func (p *Processor[M]) Encode(ctx context.Context, m M) ([]byte, error) {
	obj := p.Serialize(ctx, m)
	data, err := p.codec.Marshal(obj)
	if err != nil {
		retErr := newCodecError(ErrEncode, p.codec.ContentType(), err)
		emitEncodeComplete(ctx, p.codec.ContentType(), p.schema.Name(), 0, retErr)
		return nil, retErr
	}
	emitEncodeComplete(ctx, p.codec.ContentType(), p.schema.Name(), len(data), nil)
	return data, nil
}

// Equal reports structural equality of a and b.
func (p *Processor[M]) Equal(a, b M) bool {
	return p.schema.Equal(a, b)
}

// Hash returns the structural hash of m.
func (p *Processor[M]) Hash(m M) uint64 {
	return p.schema.Hash(m)
}
