package chunk

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func drainReader(t *testing.T, r *Reader) []Triple {
	t.Helper()
	var out []Triple
	for {
		tr, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Reader.Next() error: %v", err)
		}
		out = append(out, tr)
	}
	return out
}

func TestStreamEqualsChopOfWholeBuffer(t *testing.T) {
	cfg := smallConfig()
	buf := randomBytes(cfg.ChunkHi*5+11, 9)

	want := Chop(buf, cfg)
	got := drainReader(t, NewReader(bytes.NewReader(buf), cfg))

	if len(got) != len(want) {
		t.Fatalf("Reader produced %d triples, Chop produced %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Start != want[i].Start || got[i].End != want[i].End || !bytes.Equal(got[i].Data, want[i].Data) {
			t.Fatalf("triple %d differs: stream=%+v chop=%+v", i, got[i], want[i])
		}
	}
}

func TestStreamHandlesInputShorterThanWorkingBuffer(t *testing.T) {
	cfg := smallConfig()
	buf := randomBytes(cfg.ChunkLo-1, 10)

	want := Chop(buf, cfg)
	got := drainReader(t, NewReader(bytes.NewReader(buf), cfg))

	if len(got) != len(want) || len(got) != 1 {
		t.Fatalf("expected a single triple from both Chop and Reader, got %d vs %d", len(want), len(got))
	}
	if !bytes.Equal(got[0].Data, want[0].Data) {
		t.Fatal("streamed short-input chunk data does not match Chop's")
	}
}

func TestStreamEmptyInputYieldsNoTriples(t *testing.T) {
	cfg := smallConfig()
	got := drainReader(t, NewReader(bytes.NewReader(nil), cfg))
	if len(got) != 0 {
		t.Fatalf("expected no triples from an empty reader, got %d", len(got))
	}
}

func TestReadFileEqualsChopOfFileContents(t *testing.T) {
	cfg := smallConfig()
	buf := randomBytes(cfg.ChunkHi*3+7, 11)

	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	r, err := ReadFile(path, cfg)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	got := drainReader(t, r)

	want := Chop(buf, cfg)
	if len(got) != len(want) {
		t.Fatalf("ReadFile produced %d triples, Chop produced %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Start != want[i].Start || got[i].End != want[i].End || !bytes.Equal(got[i].Data, want[i].Data) {
			t.Fatalf("triple %d differs: readfile=%+v chop=%+v", i, got[i], want[i])
		}
	}
}

func TestReadFileClosesHandleOnExhaustion(t *testing.T) {
	cfg := smallConfig()
	buf := randomBytes(cfg.ChunkLo-1, 12)

	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	r, err := ReadFile(path, cfg)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	drainReader(t, r)

	// The underlying file handle was already closed by Next on EOF; closing again
	// through Reader.Close must be a harmless no-op, not a double-close error.
	if err := r.Close(); err != nil {
		t.Fatalf("Close() after exhaustion returned an error: %v", err)
	}
}

func TestReadFileRejectsMissingPath(t *testing.T) {
	cfg := smallConfig()
	_, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist.bin"), cfg)
	if err == nil {
		t.Fatal("expected an error opening a nonexistent path")
	}
}
