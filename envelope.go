package ocpp

import "context"

// requestPtr is satisfied by *M when M embeds RequestFrame.
type requestPtr[M any] interface {
	*M
	setRequestFrame(RequestFrame)
}

// responsePtr is satisfied by *M when M embeds ResponseFrame[R].
type responsePtr[M any, R Request] interface {
	*M
	setResponseFrame(ResponseFrame[R])
}

// ParseRequest parses obj as a request of type M and attaches frame.
func ParseRequest[M any, PM requestPtr[M]](ctx context.Context, p *Processor[M], obj Object, frame RequestFrame) (M, error) {
	return p.Parse(ctx, obj, func(m *M) { PM(m).setRequestFrame(frame) })
}

// DecodeRequest decodes data as a request of type M and attaches frame.
func DecodeRequest[M any, PM requestPtr[M]](ctx context.Context, p *Processor[M], data []byte, frame RequestFrame) (M, error) {
	return p.Decode(ctx, data, func(m *M) { PM(m).setRequestFrame(frame) })
}

// Unparsed returns a request of type M that carries only frame. Transports
// use it to answer a request whose payload failed to parse.
func Unparsed[M any, PM requestPtr[M]](frame RequestFrame) M {
	var m M
	PM(&m).setRequestFrame(frame)
	return m
}

// ParseResponse parses obj as the response of type M to req. When parsing
// fails the returned response carries a FormatError result and the original
// request, so correlation survives malformed input; the error is returned
// alongside it.
func ParseResponse[M any, R Request, PM responsePtr[M, R]](ctx context.Context, p *Processor[M], req R, obj Object) (M, error) {
	m, err := p.Parse(ctx, obj, func(m *M) { PM(m).setResponseFrame(NewResponseFrame(req)) })
	if err != nil {
		return Failed[M, R, PM](req, FormatError(err.Error())), err
	}
	return m, nil
}

// DecodeResponse decodes data as the response of type M to req, with the
// failure behavior of ParseResponse.
func DecodeResponse[M any, R Request, PM responsePtr[M, R]](ctx context.Context, p *Processor[M], req R, data []byte) (M, error) {
	m, err := p.Decode(ctx, data, func(m *M) { PM(m).setResponseFrame(NewResponseFrame(req)) })
	if err != nil {
		return Failed[M, R, PM](req, FormatError(err.Error())), err
	}
	return m, nil
}

// Respond returns m answering req with an OK result.
func Respond[M any, R Request, PM responsePtr[M, R]](req R, m M) M {
	PM(&m).setResponseFrame(NewResponseFrame(req))
	return m
}

// Failed returns a response of type M answering req with result. Only the
// frame is populated; domain fields keep their zero value and carry no meaning.
func Failed[M any, R Request, PM responsePtr[M, R]](req R, result Result) M {
	var m M
	PM(&m).setResponseFrame(FailedResponseFrame(req, result))
	return m
}
