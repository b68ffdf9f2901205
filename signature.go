package ocpp

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"maps"

	"golang.org/x/crypto/blake2b"
)

// SignaturesProperty is the wire property holding attached signatures.
const SignaturesProperty = "signatures"

// EncodingBase64 is the encodingMethod written by Sign.
const EncodingBase64 = "base64"

// Signature is one cryptographic signature record attached to a message.
type Signature struct {
	KeyID          string
	SigningMethod  string
	Value          string
	EncodingMethod *string
	CustomData     CustomData
}

var signatureSchema = NewSchema("Signature",
	RequiredField("keyId", "signing key identifier", String(), func(s *Signature) *string { return &s.KeyID }),
	RequiredField("signingMethod", "signing algorithm identifier", String(), func(s *Signature) *string { return &s.SigningMethod }),
	RequiredField("value", "signature value", String(), func(s *Signature) *string { return &s.Value }),
	OptionalField("encodingMethod", "signature value encoding", String(), func(s *Signature) **string { return &s.EncodingMethod }),
	CustomDataField(func(s *Signature) *CustomData { return &s.CustomData }),
)

// Equal reports structural equality.
func (s Signature) Equal(other Signature) bool {
	return signatureSchema.Equal(s, other)
}

// Hash returns the structural hash.
func (s Signature) Hash() uint64 {
	return signatureSchema.Hash(s)
}

// SignatureSet is an order-irrelevant set of signatures. Duplicates by value
// collapse. The zero value is unset; an explicitly empty set reports IsSet but
// both serialize as an absent property.
type SignatureSet struct {
	sigs []Signature
	set  bool
}

// NewSignatureSet returns a set holding sigs with duplicates removed.
func NewSignatureSet(sigs ...Signature) SignatureSet {
	out := SignatureSet{set: true}
	for _, s := range sigs {
		if !out.Contains(s) {
			out.sigs = append(out.sigs, s)
		}
	}
	return out
}

// IsSet reports whether the set was explicitly assigned.
func (s SignatureSet) IsSet() bool {
	return s.set
}

// Len returns the number of distinct signatures.
func (s SignatureSet) Len() int {
	return len(s.sigs)
}

// Signatures returns the signatures in insertion order.
func (s SignatureSet) Signatures() []Signature {
	return append([]Signature(nil), s.sigs...)
}

// Contains reports whether an equal signature is in the set.
func (s SignatureSet) Contains(sig Signature) bool {
	for _, e := range s.sigs {
		if e.Equal(sig) {
			return true
		}
	}
	return false
}

// With returns a copy of the set including sig.
func (s SignatureSet) With(sig Signature) SignatureSet {
	return NewSignatureSet(append(s.Signatures(), sig)...)
}

// Equal compares sets by content, ignoring order. Unset and empty sets are
// equal since neither carries a signature on the wire.
func (s SignatureSet) Equal(other SignatureSet) bool {
	if len(s.sigs) != len(other.sigs) {
		return false
	}
	for _, sig := range s.sigs {
		if !other.Contains(sig) {
			return false
		}
	}
	return true
}

// Hash combines the signature hashes independently of order.
func (s SignatureSet) Hash() uint64 {
	hashes := make([]uint64, len(s.sigs))
	for i, sig := range s.sigs {
		hashes[i] = sig.Hash()
	}
	return hashUnordered(hashes)
}

func (s SignatureSet) encode() []any {
	out := make([]any, len(s.sigs))
	for i, sig := range s.sigs {
		out[i] = signatureSchema.Serialize(sig)
	}
	return out
}

// Signer produces signature values over a message digest. The signing
// algorithm is entirely the Signer's concern.
type Signer interface {
	KeyID() string
	SigningMethod() string
	Sign(digest []byte) ([]byte, error)
}

// Digest returns the BLAKE2b-256 digest of obj's canonical JSON encoding
// (object keys sorted) with the signatures property removed.
func Digest(obj Object) ([]byte, error) {
	unsigned := maps.Clone(obj)
	delete(unsigned, SignaturesProperty)
	data, err := json.Marshal(unsigned)
	if err != nil {
		return nil, fmt.Errorf("canonical encoding: %w", err)
	}
	sum := blake2b.Sum256(data)
	return sum[:], nil
}

// Sign computes the digest of obj and returns the signature produced by signer,
// base64 encoded.
func Sign(obj Object, signer Signer) (Signature, error) {
	digest, err := Digest(obj)
	if err != nil {
		return Signature{}, err
	}
	raw, err := signer.Sign(digest)
	if err != nil {
		return Signature{}, fmt.Errorf("sign with key %s: %w", signer.KeyID(), err)
	}
	enc := EncodingBase64
	return Signature{
		KeyID:          signer.KeyID(),
		SigningMethod:  signer.SigningMethod(),
		Value:          base64.StdEncoding.EncodeToString(raw),
		EncodingMethod: &enc,
	}, nil
}

// Verify recomputes the digest of obj and passes it with the decoded
// signature value to verify.
func Verify(obj Object, sig Signature, verify func(digest, value []byte) error) error {
	digest, err := Digest(obj)
	if err != nil {
		return err
	}
	value := []byte(sig.Value)
	if sig.EncodingMethod != nil && *sig.EncodingMethod == EncodingBase64 {
		value, err = base64.StdEncoding.DecodeString(sig.Value)
		if err != nil {
			return fmt.Errorf("%w: value: %w", ErrMalformedSignature, err)
		}
	}
	return verify(digest, value)
}
