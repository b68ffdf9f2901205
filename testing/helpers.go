// Package testing provides test utilities for ocpp.
package testing

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
	"testing"

	"github.com/zoobzio/ocpp"
	"github.com/zoobzio/ocpp/yaml"
	"golang.org/x/crypto/blake2b"
)

// TestKey returns a valid 32-byte MAC key for testing.
func TestKey() []byte {
	return []byte("32-byte-key-for-blake2b-signing!")
}

// KeyedSigner signs digests with a keyed BLAKE2b-256 MAC.
type KeyedSigner struct {
	ID  string
	Key []byte
}

// TestSigner returns a KeyedSigner configured for testing.
func TestSigner() KeyedSigner {
	return KeyedSigner{ID: "test-key", Key: TestKey()}
}

// KeyID implements ocpp.Signer.
func (s KeyedSigner) KeyID() string { return s.ID }

// SigningMethod implements ocpp.Signer.
func (s KeyedSigner) SigningMethod() string { return "BLAKE2b-256-MAC" }

// Sign implements ocpp.Signer.
func (s KeyedSigner) Sign(digest []byte) ([]byte, error) {
	mac, err := blake2b.New256(s.Key)
	if err != nil {
		return nil, err
	}
	_, _ = mac.Write(digest)
	return mac.Sum(nil), nil
}

// Verify checks value against the MAC of digest. It matches the callback
// signature of ocpp.Verify.
func (s KeyedSigner) Verify(digest, value []byte) error {
	want, err := s.Sign(digest)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(want, value) != 1 {
		return errors.New("signature mismatch")
	}
	return nil
}

// LoadFixture reads a YAML fixture file into an object.
func LoadFixture(t *testing.T, path string) ocpp.Object {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	var obj ocpp.Object
	if err := yaml.New().Unmarshal(data, &obj); err != nil {
		t.Fatalf("decode fixture %s: %v", path, err)
	}
	return obj
}

// AssertRoundTrip encodes m with proc, decodes the bytes again and fails the
// test unless the result is Equal to m with an equal hash.
func AssertRoundTrip[M ocpp.Equaler[M]](t *testing.T, proc *ocpp.Processor[M], m M) M {
	t.Helper()
	ctx := context.Background()

	data, err := proc.Encode(ctx, m)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	back, err := proc.Decode(ctx, data)
	if err != nil {
		t.Fatalf("Decode() error: %v\n%s", err, data)
	}
	if !back.Equal(m) {
		t.Errorf("round trip through %s changed the message:\n%s", proc.ContentType(), data)
	}
	if back.Hash() != m.Hash() {
		t.Errorf("round trip through %s changed the hash", proc.ContentType())
	}
	return back
}

// AssertParseError fails the test unless err matches sentinel and is
// attributed to field.
func AssertParseError(t *testing.T, err, sentinel error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v on %q, got nil", sentinel, field)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("error %v should match %v", err, sentinel)
	}
	if got := ocpp.FieldOf(err); got != field {
		t.Errorf("FieldOf() = %q, want %q", got, field)
	}
}
