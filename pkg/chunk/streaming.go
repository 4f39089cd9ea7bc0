package chunk

import (
	"fmt"
	"io"
	"os"

	"github.com/saworbit/kado/internal/kadocfg"
)

// Reader implements the streaming driver from spec.md section 4.3: it chunks a file of
// unbounded size using a fixed working buffer of ChunkHi bytes plus a carry-over
// region, so peak resident memory stays O(ChunkHi) regardless of file size.
//
// Reader.Next follows the teacher's iterator convention (see the RabinChunker this
// package used to hold): it returns (Triple, nil) for each element and (Triple{},
// io.EOF) once the underlying reader and its carry-over region are both exhausted.
type Reader struct {
	r       io.Reader
	closer  io.Closer
	closed  bool
	cfg     *kadocfg.Config
	working []byte
	remain  []byte
	fileIdx int
	pending []Triple
	eof     bool
}

// NewReader wraps r in a streaming chunker using cfg's size parameters. The caller
// retains ownership of r; NewReader never closes it.
func NewReader(r io.Reader, cfg *kadocfg.Config) *Reader {
	return &Reader{
		r:       r,
		cfg:     cfg,
		working: make([]byte, cfg.ChunkHi),
	}
}

// ReadFile opens path and returns a Reader chunking its contents, implementing spec.md
// section 4.3's read(path) operation and section 5's scoped-acquisition contract: the
// returned Reader owns the file handle for the duration of iteration and closes it on
// normal termination or error from Next. A caller that stops iterating before
// exhaustion (early termination) must still call Close to release the handle, the same
// way a caller of os.Open does with defer.
func ReadFile(path string, cfg *kadocfg.Config) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chunk: read file: %w", err)
	}
	r := NewReader(f, cfg)
	r.closer = f
	return r, nil
}

// Next returns the next (start, end, data) triple, or io.EOF once the stream and its
// carry-over region are exhausted. The triples it yields, in order, equal
// Chop(entire contents of the underlying reader, cfg). If the Reader owns its
// underlying source (constructed via ReadFile), Next closes it once EOF or any error is
// reached, so a caller that drains the Reader to completion needs no explicit Close.
func (rd *Reader) Next() (Triple, error) {
	for len(rd.pending) == 0 {
		if rd.eof {
			rd.Close()
			return Triple{}, io.EOF
		}
		if err := rd.advance(); err != nil {
			rd.Close()
			return Triple{}, err
		}
	}
	t := rd.pending[0]
	rd.pending = rd.pending[1:]
	return t, nil
}

// Close releases the Reader's underlying file handle, if it owns one (i.e. it was
// constructed via ReadFile). It is safe to call more than once and safe to call on a
// Reader built from NewReader, where it is a no-op. Callers that may stop iterating
// before exhaustion should defer Close to cover that early-exhaustion path.
func (rd *Reader) Close() error {
	if rd.closer == nil || rd.closed {
		return nil
	}
	rd.closed = true
	return rd.closer.Close()
}

// advance performs one iteration of the read loop: it pulls up to ChunkHi fresh bytes,
// chops the carry-over plus fresh-bytes region, and queues every chunk but the last
// (xlast) as pending output, keeping the last chunk's bytes as the new carry-over since
// it may still grow once more data arrives. On end of input it instead chops whatever
// carry-over remains and queues all of it: nothing is left to defer.
func (rd *Reader) advance() error {
	n, err := io.ReadFull(rd.r, rd.working)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	if n == 0 {
		triples := Chop(rd.remain, rd.cfg)
		rd.pending = append(rd.pending, biasTriples(triples, rd.fileIdx)...)
		rd.eof = true
		return nil
	}

	region := make([]byte, 0, len(rd.remain)+n)
	region = append(region, rd.remain...)
	region = append(region, rd.working[:n]...)

	triples := Chop(region, rd.cfg)

	allButLast := xlast(triples)
	rd.pending = append(rd.pending, biasTriples(allButLast, rd.fileIdx)...)

	last := triples[len(triples)-1]
	rd.remain = append([]byte(nil), last.Data...)
	rd.fileIdx += last.Start

	return nil
}

// biasTriples shifts every triple's Start/End by idx, the absolute file offset of the
// region they were cut from.
func biasTriples(triples []Triple, idx int) []Triple {
	out := make([]Triple, len(triples))
	for i, t := range triples {
		out[i] = Triple{Start: t.Start + idx, End: t.End + idx, Data: t.Data}
	}
	return out
}

// xlast returns all but the last element of a sequence, the lazy-iterator idiom
// spec.md section 9 describes as buffering one element ahead. Applied to an
// already-materialized slice this is just a sub-slice, but the name documents intent:
// the last chunk from a non-final read may still grow, so it must not be emitted yet.
func xlast[T any](seq []T) []T {
	if len(seq) == 0 {
		return nil
	}
	return seq[:len(seq)-1]
}
