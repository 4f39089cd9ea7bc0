// Package digest provides the two hash families the object model is built on: a
// strong, keyed cryptographic digest used for identity, and a fast, seeded
// non-cryptographic digest used as a cheap similarity/index key. Both are exposed
// behind the same small Context interface so that a hash tree (pkg/hashtree) can
// stand in for either one without the rest of the core caring which it is feeding.
package digest

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	// StrongSize is the digest size, in bytes, of the strong hash.
	StrongSize = 32

	// strongPersonalization domain-separates kado's strong hash from any other
	// user of blake2b in a process that embeds this library. Changing it is a
	// format break: every shash and every UUID derived from one would change.
	strongPersonalization = "kado/object-store/strong-hash/v1"

	// weakSeed domain-separates kado's weak hash the same way.
	weakSeed uint64 = 0x6b61646f5f776561 // "kado_wea" read as bytes
)

// Context is the minimal hash-context contract the rest of the core programs
// against: update with bytes, read the current digest, and clone cheaply. Both the
// strong and weak hash wrappers below implement it, and so does pkg/hashtree.HashTree
// (each Update there appends a new leaf instead of folding into a running digest).
type Context interface {
	Update(p []byte)
	Digest() []byte
	Copy() Context
}

// NewStrong returns a fresh strong-hash context: a keyed, 256-bit blake2b digest.
// blake2b's native key parameter gives us the "keyed/personalized cryptographic
// hash with fixed digest size and fixed personalization" spec.md section 4.5 calls
// for without layering anything custom on top of it.
func NewStrong() Context {
	return &hashContext{h: newStrongHash(), fresh: newStrongHash}
}

// NewWeak returns a fresh weak-hash context: a seeded 64-bit xxhash fingerprint.
func NewWeak() Context {
	return &hashContext{h: newWeakHash(), fresh: newWeakHash}
}

func newStrongHash() hash.Hash {
	h, err := blake2b.New(StrongSize, []byte(strongPersonalization))
	if err != nil {
		// Only a key longer than 64 bytes trips this; ours is fixed and short.
		panic("digest: invalid strong hash configuration: " + err.Error())
	}
	return h
}

func newWeakHash() hash.Hash {
	return xxhash.NewWithSeed(weakSeed)
}

// hashContext adapts a stdlib hash.Hash to Context, cloning via the
// encoding.BinaryMarshaler/BinaryUnmarshaler pair both blake2b and xxhash implement
// for resumable hashing — the same mechanism crypto/sha256's digest type uses. A keyed
// blake2b refuses to marshal its state, so Copy falls back to replaying the bytes
// written so far into a fresh hash.
type hashContext struct {
	h     hash.Hash
	fresh func() hash.Hash
	input []byte
}

func (c *hashContext) Update(p []byte) {
	// hash.Hash.Write never returns an error per its documented contract.
	_, _ = c.h.Write(p)
	c.input = append(c.input, p...)
}

func (c *hashContext) Digest() []byte {
	return c.h.Sum(nil)
}

func (c *hashContext) Copy() Context {
	marshaler, ok := c.h.(encoding.BinaryMarshaler)
	if !ok {
		panic("digest: underlying hash does not support state copy")
	}
	input := append([]byte(nil), c.input...)
	state, err := marshaler.MarshalBinary()
	if err != nil {
		replay := c.fresh()
		_, _ = replay.Write(input)
		return &hashContext{h: replay, fresh: c.fresh, input: input}
	}

	clone := c.fresh()
	unmarshaler, ok := clone.(encoding.BinaryUnmarshaler)
	if !ok {
		panic("digest: underlying hash does not support state copy")
	}
	if err := unmarshaler.UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("digest: unmarshal hash state: %v", err))
	}

	return &hashContext{h: clone, fresh: c.fresh, input: input}
}

// StrongHex computes the strong digest of data and returns it lowercase-hex encoded.
func StrongHex(data []byte) string {
	ctx := NewStrong()
	ctx.Update(data)
	return hex.EncodeToString(ctx.Digest())
}

// WeakHex computes the weak digest of data and returns it lowercase-hex encoded.
func WeakHex(data []byte) string {
	ctx := NewWeak()
	ctx.Update(data)
	return hex.EncodeToString(ctx.Digest())
}
