package ocpp

// Hooks are the extension points of a Processor. Both are optional; a nil hook
// behaves as the identity. Each hook is called exactly once per operation and
// its return value replaces the built-in result entirely.
type Hooks[M any] struct {
	// AfterParse receives the raw object and the freshly built message.
	AfterParse func(raw Object, m M) M

	// AfterSerialize receives the message and the built object.
	AfterSerialize func(m M, obj Object) Object
}

// IsZero reports whether no hook is set.
func (h Hooks[M]) IsZero() bool {
	return h.AfterParse == nil && h.AfterSerialize == nil
}

func (h Hooks[M]) afterParse(raw Object, m M) M {
	if h.AfterParse == nil {
		return m
	}
	return h.AfterParse(raw, m)
}

func (h Hooks[M]) afterSerialize(m M, obj Object) Object {
	if h.AfterSerialize == nil {
		return obj
	}
	return h.AfterSerialize(m, obj)
}

// Chain returns hooks that run h first and then next.
func (h Hooks[M]) Chain(next Hooks[M]) Hooks[M] {
	if h.IsZero() {
		return next
	}
	if next.IsZero() {
		return h
	}
	return Hooks[M]{
		AfterParse: func(raw Object, m M) M {
			return next.afterParse(raw, h.afterParse(raw, m))
		},
		AfterSerialize: func(m M, obj Object) Object {
			return next.afterSerialize(m, h.afterSerialize(m, obj))
		},
	}
}
