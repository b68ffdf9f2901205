package ocpp

import (
	"reflect"
	"sync"
)

// registryKey combines message type, schema identity and codec for cache lookup.
type registryKey struct {
	typ         reflect.Type
	schema      any
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by message type, schema pointer and codec content
// type, so transports can look processors up per action without holding them.
// Two schemas sharing a name still get their own processors.
func Use[M any](s *Schema[M], codec Codec) *Processor[M] {
	key := registryKey{typ: reflect.TypeFor[M](), schema: s, contentType: codec.ContentType()}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[M])
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Processor[M])
	}

	processor := NewProcessor(s, codec)
	registry[key] = processor
	return processor
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
