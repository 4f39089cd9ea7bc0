package ident

import (
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
)

func TestNewItemIDIsRandomEachCall(t *testing.T) {
	a := NewItemID()
	b := NewItemID()
	if a == b {
		t.Fatal("two calls to NewItemID produced the same UUID")
	}
}

func TestNewChunkIDIsDeterministic(t *testing.T) {
	shash := "deadbeefcafef00d1234567890abcdef1234567890abcdef1234567890abcd"

	a, err := NewChunkID(shash, 16)
	if err != nil {
		t.Fatalf("NewChunkID error: %v", err)
	}
	b, err := NewChunkID(shash, 16)
	if err != nil {
		t.Fatalf("NewChunkID error: %v", err)
	}
	if a != b {
		t.Fatalf("NewChunkID(%q) produced different UUIDs across calls: %v vs %v", shash, a, b)
	}
}

func TestNewChunkIDDiffersForDifferentHashes(t *testing.T) {
	a, err := NewChunkID("1111111111111111111111111111111111111111111111111111111111111111", 16)
	if err != nil {
		t.Fatalf("NewChunkID error: %v", err)
	}
	b, err := NewChunkID("2222222222222222222222222222222222222222222222222222222222222222", 16)
	if err != nil {
		t.Fatalf("NewChunkID error: %v", err)
	}
	if a == b {
		t.Fatal("different strong hashes produced the same chunk ID")
	}
}

func TestNewChunkIDRejectsInvalidHex(t *testing.T) {
	if _, err := NewChunkID("not-hex-at-all!!", 16); err == nil {
		t.Fatal("expected an error for a non-hex shash prefix")
	}
}

func TestNewChunkIDHandlesShortHash(t *testing.T) {
	if _, err := NewChunkID("ab", 16); err != nil {
		t.Fatalf("NewChunkID with a short hash should not error, got: %v", err)
	}
}

func TestNewChunkIDMatchesLiteralUUIDOfRawBytes(t *testing.T) {
	shash := "deadbeefcafef00d1234567890abcdef1234567890abcdef1234567890abcd"
	const n = 16

	got, err := NewChunkID(shash, n)
	if err != nil {
		t.Fatalf("NewChunkID error: %v", err)
	}

	raw, err := hex.DecodeString(shash[:n])
	if err != nil {
		t.Fatalf("hex decode error: %v", err)
	}
	var want uuid.UUID
	copy(want[:], raw)

	if got != want {
		t.Fatalf("NewChunkID(%q, %d) = %v, want literal UUID(raw bytes) = %v", shash, n, got, want)
	}
}
