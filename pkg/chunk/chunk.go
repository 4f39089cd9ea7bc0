// Package chunk implements content-defined chunking per spec.md section 4.2: Cut finds
// a single boundary in an in-memory buffer, Chop repeatedly applies Cut to split a
// whole buffer, and Reader (streaming.go) applies the same algorithm to a file of
// unbounded size using a fixed working buffer.
package chunk

import (
	"time"

	"github.com/saworbit/kado/internal/ghash"
	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/internal/metrics"
)

// Triple is one (start, end, data) tuple produced by Cut/Chop/Reader, mirroring the
// (int, int, bytes) the embedding API documents.
type Triple struct {
	Start int
	End   int
	Data  []byte
}

// Cut returns the offset within buf at which the first chunk ends, following spec.md
// section 4.2's rules in order: a buffer no longer than ChunkLo is returned whole (a
// trailing short chunk); otherwise the rolling hash is reset and fed starting at
// ChunkLo, first against the looser MaskLo up to the ChunkMd sentinel, then against the
// stricter MaskHi up to the ChunkHi sentinel, and failing both a hard cut lands at
// whichever sentinel the scan reached. The rolling hash is always reset at the start
// of the call: boundaries depend only on the bytes of this candidate chunk.
func Cut(buf []byte, cfg *kadocfg.Config) int {
	if len(buf) <= cfg.ChunkLo {
		return len(buf)
	}

	sentinelMd := minInt(cfg.ChunkMd, len(buf))
	sentinelHi := minInt(cfg.ChunkHi, len(buf))

	h := ghash.New()
	pos := cfg.ChunkLo

	for pos < sentinelMd {
		fp := h.Update(buf[pos])
		pos++
		if fp&cfg.MaskLo == 0 {
			return pos
		}
	}
	for pos < sentinelHi {
		fp := h.Update(buf[pos])
		pos++
		if fp&cfg.MaskHi == 0 {
			return pos
		}
	}
	return sentinelHi
}

// Chop splits buf into non-overlapping, gap-free (start, end, data) triples by
// repeatedly calling Cut on buf[start:min(start+ChunkHi, len(buf))] and advancing
// start to the returned end, terminating once start reaches len(buf). It is a pure
// function of buf: feeding the same bytes always yields the same triples regardless of
// how the caller obtained them.
func Chop(buf []byte, cfg *kadocfg.Config) []Triple {
	var out []Triple
	start := 0
	for start < len(buf) {
		windowEnd := minInt(start+cfg.ChunkHi, len(buf))
		window := buf[start:windowEnd]

		cutStart := time.Now()
		ck := Cut(window, cfg)
		metrics.ObserveCut(cutStart)

		end := start + ck

		data := make([]byte, ck)
		copy(data, window[:ck])

		metrics.ObserveChunk("chop", ck)
		out = append(out, Triple{Start: start, End: end, Data: data})
		start = end
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
