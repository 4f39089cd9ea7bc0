// Package ghash implements the Gear rolling hash used by the content-defined
// chunker to find cut points. It is order-sensitive by construction and makes no
// claim of commutativity or associativity: it exists purely as a cheap boundary
// predicate, never as the chunk's identity (that comes from the strong hash in
// internal/digest).
package ghash

// Hash is a Gear rolling hash accumulator. The zero value is ready to use and
// starts from fingerprint 0, matching spec.md section 4.1's reset-per-cut rule.
type Hash struct {
	fp uint64
}

// New returns a Hash with its fingerprint reset to zero.
func New() Hash {
	return Hash{}
}

// Reset zeroes the fingerprint so the next Update sequence starts fresh. chunk.Cut
// starts every call from a fresh Hash: boundaries depend only on the bytes of the
// current candidate chunk, never on bytes seen before it.
func (h *Hash) Reset() {
	h.fp = 0
}

// Update folds one byte into the rolling hash: fp = (fp << 1) + GHASH_TABLE[b], taken
// mod 2^64 via natural uint64 wraparound.
func (h *Hash) Update(b byte) uint64 {
	h.fp = (h.fp << 1) + GHASH_TABLE[b]
	return h.fp
}

// Sum returns the current fingerprint without mutating state.
func (h *Hash) Sum() uint64 {
	return h.fp
}
