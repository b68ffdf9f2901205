package ocpp

import "hash/fnv"

// Hash composition constants. Every Schema folds its field hashes in
// declaration order as h = h*HashMultiplier + fieldHash, starting from
// HashSeed. Absent optional fields contribute 0.
const (
	HashSeed       uint64 = 17
	HashMultiplier uint64 = 31
)

// Equaler is the structural equality contract shared by every message and
// nested value type. a.Equal(b) implies a.Hash() == b.Hash().
type Equaler[T any] interface {
	Equal(other T) bool
	Hash() uint64
}

// Hasher accumulates field hashes in a fixed order.
type Hasher struct {
	sum uint64
}

// NewHasher returns a Hasher at HashSeed.
func NewHasher() *Hasher {
	return &Hasher{sum: HashSeed}
}

// Add folds one field hash into the accumulator.
func (h *Hasher) Add(v uint64) *Hasher {
	h.sum = h.sum*HashMultiplier + v
	return h
}

// Sum returns the accumulated hash.
func (h *Hasher) Sum() uint64 {
	return h.sum
}

// hashString returns the FNV-1a 64-bit hash of s.
func hashString(s string) uint64 {
	f := fnv.New64a()
	_, _ = f.Write([]byte(s))
	return f.Sum64()
}

// hashUnordered combines element hashes independently of their order.
func hashUnordered(hashes []uint64) uint64 {
	var sum uint64
	for _, h := range hashes {
		sum += h
	}
	return sum
}
