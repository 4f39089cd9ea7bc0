// Package ident derives the identifiers used across the object model. Items get a
// random identity, independent of their content, because two Items can hold the same
// chunks and metadata and still be distinct objects. Chunks get a deterministic
// identity derived from their strong hash, because a chunk's identity is its content:
// storing the same bytes twice must yield the same ID.
package ident

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewItemID returns a random (v4) UUID, suitable for Item.ID.
func NewItemID() uuid.UUID {
	return uuid.New()
}

// NewChunkID derives a deterministic UUID from the first n hex characters of shash, a
// chunk's strong hash. Feeding the same shash prefix always yields the same chunk ID,
// which is what lets equal-content chunks collapse to the same identity without a
// lookup table.
//
// shash is hex-decoded (after truncating to n hex characters) and the raw bytes become
// the UUID verbatim — the same literal construction as Python's uuid.UUID(hex=...), no
// version/variant stamping. A chunk's id is defined as UUID(shash[:n]); stamping bits
// into it would make it a different value than that definition names.
func NewChunkID(shashHex string, n int) (uuid.UUID, error) {
	if n > len(shashHex) {
		n = len(shashHex)
	}
	raw, err := hex.DecodeString(shashHex[:n])
	if err != nil {
		return uuid.UUID{}, err
	}

	var id uuid.UUID
	copy(id[:], raw)

	return id, nil
}
