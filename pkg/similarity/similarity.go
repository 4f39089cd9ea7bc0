// Package similarity operationalizes the glossary's "weak hash used as a cheap
// similarity/index key": it buckets chunks by weak hash and, for chunks that land in
// the same bucket but carry different strong hashes (same fingerprint, different exact
// content — near-duplicates rather than identical data), computes a binary delta
// between them with github.com/gabstv/go-bsdiff.
//
// This package is read-only and in-memory: it does not persist anything, matching the
// core's "no persistent storage" non-goal.
package similarity

import (
	"fmt"

	"github.com/gabstv/go-bsdiff/pkg/bsdiff"
	"github.com/gabstv/go-bsdiff/pkg/bspatch"

	"github.com/saworbit/kado/pkg/index"
	"github.com/saworbit/kado/pkg/object"
)

// Bucketer groups chunks by weak hash. The zero value is not usable; use NewBucketer.
type Bucketer struct {
	byWeak *index.Index
	chunks map[string]*object.Chunk
}

// NewBucketer returns an empty Bucketer.
func NewBucketer() *Bucketer {
	return &Bucketer{byWeak: index.New(), chunks: make(map[string]*object.Chunk)}
}

// Add files c into its weak-hash bucket, keyed by chunk id so the same chunk added
// twice is a no-op.
func (b *Bucketer) Add(c *object.Chunk) {
	id := c.ID().String()
	b.byWeak.Add(c.WeakHash(), id)
	b.chunks[id] = c
}

// Bucket returns every chunk sharing weakHash, in unspecified order. An unknown
// weakHash yields an empty slice rather than an error: an empty bucket and a missing
// one are the same thing to a caller scanning for near-duplicates.
func (b *Bucketer) Bucket(weakHash string) []*object.Chunk {
	ids, err := b.byWeak.Get(weakHash)
	if err != nil {
		return nil
	}
	out := make([]*object.Chunk, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.chunks[id])
	}
	return out
}

// Candidate is a pair of chunks that share a weak hash but not a strong hash: the same
// fingerprint with different exact content, the signature of a near-duplicate rather
// than an identical byte range.
type Candidate struct {
	A, B *object.Chunk
}

// Candidates scans every bucket with more than one distinct strong hash and returns
// one Candidate per such pair. Chunks that are fully identical (equal strong hash too)
// are skipped — those are exact duplicates, already collapsed by content-addressing,
// not a similarity-diff concern.
func (b *Bucketer) Candidates() []Candidate {
	var out []Candidate
	for _, weakHash := range b.byWeak.Iter() {
		bucket := b.Bucket(weakHash)
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				if bucket[i].StrongHash() == bucket[j].StrongHash() {
					continue
				}
				out = append(out, Candidate{A: bucket[i], B: bucket[j]})
			}
		}
	}
	return out
}

// Delta computes a binary patch taking a's data to b's data.
func Delta(a, b *object.Chunk) ([]byte, error) {
	patch, err := bsdiff.Bytes(a.Data(), b.Data())
	if err != nil {
		return nil, fmt.Errorf("similarity: compute delta: %w", err)
	}
	return patch, nil
}

// ApplyDelta reconstructs the target chunk's data by applying patch to base's data.
func ApplyDelta(base *object.Chunk, patch []byte) ([]byte, error) {
	out, err := bspatch.Bytes(base.Data(), patch)
	if err != nil {
		return nil, fmt.Errorf("similarity: apply delta: %w", err)
	}
	return out, nil
}
