package object

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/pkg/kadoerr"
)

func TestNewChunkStoresData(t *testing.T) {
	cfg := kadocfg.DefaultConfig()
	c, err := NewChunk([]byte("hello"), cfg)
	if err != nil {
		t.Fatalf("NewChunk error: %v", err)
	}
	if !bytes.Equal(c.Data(), []byte("hello")) {
		t.Fatalf("Data() = %q, want %q", c.Data(), "hello")
	}
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
}

func TestChunkIDIsDeterministicFromContent(t *testing.T) {
	cfg := kadocfg.DefaultConfig()
	a, err := NewChunk([]byte("same bytes"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewChunk([]byte("same bytes"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() != b.ID() {
		t.Fatal("two chunks with identical data produced different ids")
	}

	c, err := NewChunk([]byte("different bytes"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == c.ID() {
		t.Fatal("two chunks with different data produced the same id")
	}
}

func TestChunkIDEqualsLiteralUUIDOfStrongHashPrefix(t *testing.T) {
	cfg := kadocfg.DefaultConfig()
	c, err := NewChunk([]byte("property 7"), cfg)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := hex.DecodeString(c.StrongHash()[:cfg.UUIDLen])
	if err != nil {
		t.Fatalf("hex decode error: %v", err)
	}
	var want uuid.UUID
	copy(want[:], raw)

	if c.ID() != want {
		t.Fatalf("Chunk.ID() = %v, want UUID(shash[:UUIDLen]) = %v", c.ID(), want)
	}
}

func TestChunkSetDataAlwaysFails(t *testing.T) {
	cfg := kadocfg.DefaultConfig()
	c, err := NewChunk([]byte("immutable"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetData([]byte("overwrite")); !errors.Is(err, kadoerr.ErrNotSupported) {
		t.Fatalf("SetData() error = %v, want ErrNotSupported", err)
	}
	if !bytes.Equal(c.Data(), []byte("immutable")) {
		t.Fatal("chunk data changed after a rejected SetData call")
	}
}

func TestChunkHashesAreStable(t *testing.T) {
	cfg := kadocfg.DefaultConfig()
	c, err := NewChunk([]byte("stable"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	s1, w1 := c.StrongHash(), c.WeakHash()
	s2, w2 := c.StrongHash(), c.WeakHash()
	if s1 != s2 || w1 != w2 {
		t.Fatal("chunk digests changed across repeated reads")
	}
}

func TestChunkEqualChunk(t *testing.T) {
	cfg := kadocfg.DefaultConfig()
	a, _ := NewChunk([]byte("x"), cfg)
	b, _ := NewChunk([]byte("x"), cfg)
	c, _ := NewChunk([]byte("y"), cfg)

	if !a.EqualChunk(b) {
		t.Fatal("chunks with identical data compared unequal")
	}
	if a.EqualChunk(c) {
		t.Fatal("chunks with different data compared equal")
	}
}
