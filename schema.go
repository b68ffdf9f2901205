package ocpp

import (
	"github.com/zoobzio/sentinel"
)

// Field declares one wire property of message type M.
// Build fields with RequiredField, OptionalField, RequiredListField,
// OptionalListField, CustomDataField and SignaturesField.
type Field[M any] struct {
	Name        string
	Description string
	Mandatory   bool

	parse func(obj Object, m *M) error
	emit  func(m *M, obj Object)
	equal func(a, b *M) bool
	hash  func(m *M) uint64
}

// RequiredField declares a mandatory property stored at ref(m).
func RequiredField[M, V any](name, desc string, t Type[V], ref func(*M) *V) Field[M] {
	return Field[M]{
		Name:        name,
		Description: desc,
		Mandatory:   true,
		parse: func(obj Object, m *M) error {
			v, err := Require(obj, name, desc, t)
			if err != nil {
				return err
			}
			*ref(m) = v
			return nil
		},
		emit: func(m *M, obj Object) {
			obj[name] = t.Encode(*ref(m))
		},
		equal: func(a, b *M) bool { return t.Equal(*ref(a), *ref(b)) },
		hash:  func(m *M) uint64 { return t.Hash(*ref(m)) },
	}
}

// OptionalField declares an optional property stored at ref(m). A nil pointer
// is absent and is never emitted.
func OptionalField[M, V any](name, desc string, t Type[V], ref func(*M) **V) Field[M] {
	return Field[M]{
		Name:        name,
		Description: desc,
		parse: func(obj Object, m *M) error {
			v, err := Optional(obj, name, desc, t)
			if err != nil {
				return err
			}
			*ref(m) = v
			return nil
		},
		emit: func(m *M, obj Object) {
			if v := *ref(m); v != nil {
				obj[name] = t.Encode(*v)
			}
		},
		equal: func(a, b *M) bool {
			va, vb := *ref(a), *ref(b)
			if va == nil || vb == nil {
				return va == nil && vb == nil
			}
			return t.Equal(*va, *vb)
		},
		hash: func(m *M) uint64 {
			if v := *ref(m); v != nil {
				return t.Hash(*v)
			}
			return 0
		},
	}
}

// RequiredListField declares a mandatory array property.
func RequiredListField[M, V any](name, desc string, t Type[V], ref func(*M) *[]V) Field[M] {
	return Field[M]{
		Name:        name,
		Description: desc,
		Mandatory:   true,
		parse: func(obj Object, m *M) error {
			v, err := RequireList(obj, name, desc, t)
			if err != nil {
				return err
			}
			*ref(m) = v
			return nil
		},
		emit: func(m *M, obj Object) {
			obj[name] = encodeList(*ref(m), t)
		},
		equal: func(a, b *M) bool { return equalList(*ref(a), *ref(b), t) },
		hash:  func(m *M) uint64 { return hashList(*ref(m), t) },
	}
}

// OptionalListField declares an optional array property. A nil slice is
// absent; a non-nil empty slice is emitted as [].
func OptionalListField[M, V any](name, desc string, t Type[V], ref func(*M) *[]V) Field[M] {
	return Field[M]{
		Name:        name,
		Description: desc,
		parse: func(obj Object, m *M) error {
			v, err := OptionalList(obj, name, desc, t)
			if err != nil {
				return err
			}
			*ref(m) = v
			return nil
		},
		emit: func(m *M, obj Object) {
			if v := *ref(m); v != nil {
				obj[name] = encodeList(v, t)
			}
		},
		equal: func(a, b *M) bool {
			va, vb := *ref(a), *ref(b)
			if (va == nil) != (vb == nil) {
				return false
			}
			return equalList(va, vb, t)
		},
		hash: func(m *M) uint64 {
			if v := *ref(m); v != nil {
				return hashList(v, t) + 1
			}
			return 0
		},
	}
}

// CustomDataField declares the customData property.
func CustomDataField[M any](ref func(*M) *CustomData) Field[M] {
	t := customDataType()
	return Field[M]{
		Name:        CustomDataProperty,
		Description: "vendor extension data",
		parse: func(obj Object, m *M) error {
			v, err := Optional(obj, CustomDataProperty, "vendor extension data", t)
			if err != nil {
				return err
			}
			if v != nil {
				*ref(m) = *v
			}
			return nil
		},
		emit: func(m *M, obj Object) {
			if v := *ref(m); v.IsSet() {
				obj[CustomDataProperty] = t.Encode(v)
			}
		},
		equal: func(a, b *M) bool { return ref(a).Equal(*ref(b)) },
		hash:  func(m *M) uint64 { return ref(m).Hash() },
	}
}

// SignaturesField declares the signatures property.
func SignaturesField[M any](ref func(*M) *SignatureSet) Field[M] {
	return Field[M]{
		Name:        SignaturesProperty,
		Description: "attached signatures",
		parse: func(obj Object, m *M) error {
			raw, ok := obj[SignaturesProperty]
			if !ok {
				return nil
			}
			sigs, err := decodeList(raw, SignaturesProperty, "attached signatures", ObjectOf(signatureSchema), ErrMalformedSignature)
			if err != nil {
				return err
			}
			*ref(m) = NewSignatureSet(sigs...)
			return nil
		},
		emit: func(m *M, obj Object) {
			if v := *ref(m); v.Len() > 0 {
				obj[SignaturesProperty] = v.encode()
			}
		},
		equal: func(a, b *M) bool { return ref(a).Equal(*ref(b)) },
		hash:  func(m *M) uint64 { return ref(m).Hash() },
	}
}

// Schema is the declarative field list of a message type. Fields are parsed
// and emitted in declaration order, which also fixes error precedence and
// hash composition. Schemas are immutable and safe for concurrent use.
type Schema[M any] struct {
	name   string
	fields []Field[M]
}

// NewSchema returns a schema for M. An empty name defaults to the Go type name.
func NewSchema[M any](name string, fields ...Field[M]) *Schema[M] {
	if name == "" {
		name = sentinel.Scan[M]().TypeName
	}
	return &Schema[M]{
		name:   name,
		fields: append([]Field[M](nil), fields...),
	}
}

// Name returns the schema name.
func (s *Schema[M]) Name() string {
	return s.name
}

// Fields returns the declared fields in order.
func (s *Schema[M]) Fields() []Field[M] {
	return append([]Field[M](nil), s.fields...)
}

// Parse builds an M from obj. Parsing is all-or-nothing: the first failing
// field aborts and no partially populated value is returned.
func (s *Schema[M]) Parse(obj Object) (M, error) {
	var m M
	for _, f := range s.fields {
		if err := f.parse(obj, &m); err != nil {
			var zero M
			return zero, err
		}
	}
	return m, nil
}

// Serialize emits every mandatory field and every present optional field.
func (s *Schema[M]) Serialize(m M) Object {
	obj := make(Object, len(s.fields))
	for _, f := range s.fields {
		f.emit(&m, obj)
	}
	return obj
}

// Equal reports structural equality over the declared fields.
func (s *Schema[M]) Equal(a, b M) bool {
	for _, f := range s.fields {
		if !f.equal(&a, &b) {
			return false
		}
	}
	return true
}

// Hash folds the declared field hashes in order.
func (s *Schema[M]) Hash(m M) uint64 {
	h := NewHasher()
	for _, f := range s.fields {
		h.Add(f.hash(&m))
	}
	return h.Sum()
}

func encodeList[V any](vs []V, t Type[V]) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = t.Encode(v)
	}
	return out
}

func equalList[V any](a, b []V, t Type[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !t.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func hashList[V any](vs []V, t Type[V]) uint64 {
	h := NewHasher()
	for _, v := range vs {
		h.Add(t.Hash(v))
	}
	return h.Sum()
}
