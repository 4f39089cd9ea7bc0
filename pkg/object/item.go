package object

import (
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/saworbit/kado/internal/digest"
	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/pkg/chunk"
	"github.com/saworbit/kado/pkg/hashtree"
	"github.com/saworbit/kado/pkg/ident"
)

// Item is an ordered, mutable sequence of chunks plus string-keyed metadata
// (spec.md section 3). Unlike Chunk, its strong and weak digests are not hashes of a
// single contiguous buffer: per section 4.5's "Item override", they are the hash-tree
// root over its chunks' per-chunk strong (respectively weak) digests. The first digest
// read after any change rebuilds the tree from every chunk.
type Item struct {
	id       uuid.UUID
	chunks   []*Chunk
	metadata *Metadata
	cfg      *kadocfg.Config

	shash      string
	whash      string
	shashDirty bool
	whashDirty bool
}

// NewItem builds an Item by chunking data with cfg's parameters. A nil metadata
// argument starts the item with an empty Metadata.
func NewItem(data []byte, metadata *Metadata, cfg *kadocfg.Config) (*Item, error) {
	if metadata == nil {
		metadata = NewMetadata()
	}
	item := &Item{
		id:       ident.NewItemID(),
		metadata: metadata,
		cfg:      cfg,
	}
	if err := item.SetData(data); err != nil {
		return nil, err
	}
	return item, nil
}

// ID returns the item's random identity.
func (it *Item) ID() uuid.UUID {
	return it.id
}

// Metadata returns the item's metadata mapping. Callers own it: spec.md section 5
// allows mutation only by the owning caller.
func (it *Item) Metadata() *Metadata {
	return it.metadata
}

// Chunks returns the item's chunks in order. The returned slice is a copy of the
// backing array; mutating it does not affect the item, but mutating a *Chunk itself is
// impossible since Chunk is immutable.
func (it *Item) Chunks() []*Chunk {
	out := make([]*Chunk, len(it.chunks))
	copy(out, it.chunks)
	return out
}

// Data returns the logical concatenation of every chunk's bytes, satisfying
// spec.md section 3's item.data == concat(chunk.data for chunk in item.chunks)
// invariant.
func (it *Item) Data() []byte {
	total := 0
	for _, c := range it.chunks {
		total += c.Len()
	}
	out := make([]byte, 0, total)
	for _, c := range it.chunks {
		out = append(out, c.Data()...)
	}
	return out
}

// SetData rechunks data and replaces the item's chunks entirely, marking both digests
// dirty. This is spec.md section 3's "setting item.data = B rechunks B and replaces
// chunks entirely".
func (it *Item) SetData(data []byte) error {
	triples := chunk.Chop(data, it.cfg)
	chunks := make([]*Chunk, 0, len(triples))
	for _, t := range triples {
		c, err := NewChunk(t.Data, it.cfg)
		if err != nil {
			return err
		}
		chunks = append(chunks, c)
	}
	it.chunks = chunks
	it.shashDirty = true
	it.whashDirty = true
	return nil
}

// Len returns the item's total byte length: the sum of its chunks' lengths.
func (it *Item) Len() int {
	total := 0
	for _, c := range it.chunks {
		total += c.Len()
	}
	return total
}

// StrongHash returns the hash-tree root over the item's per-chunk strong digests,
// recomputed lazily whenever the chunk sequence has changed since the last read.
func (it *Item) StrongHash() string {
	if it.shashDirty {
		tree := hashtree.New(digest.NewStrong())
		for _, c := range it.chunks {
			tree.Append(c.Data())
		}
		it.shash = hex.EncodeToString(tree.RootDigest())
		it.shashDirty = false
	}
	return it.shash
}

// WeakHash returns the hash-tree root over the item's per-chunk weak digests, using
// the same reduction algorithm as StrongHash with a different leaf hash.
func (it *Item) WeakHash() string {
	if it.whashDirty {
		tree := hashtree.New(digest.NewWeak())
		for _, c := range it.chunks {
			tree.Append(c.Data())
		}
		it.whash = hex.EncodeToString(tree.RootDigest())
		it.whashDirty = false
	}
	return it.whash
}

// Equal compares two items' logical data in constant time, per spec.md section 4.5.
func (it *Item) Equal(other *Item) bool {
	a, b := it.Data(), other.Data()
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// HashCode returns a 64-bit hash derived from the item's weak digest.
func (it *Item) HashCode() uint64 {
	h := it.WeakHash()
	if len(h) < 16 {
		return 0
	}
	raw, err := hex.DecodeString(h[:16])
	if err != nil {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

// Copy returns a clone of the item with the same chunks and metadata but a freshly
// regenerated id, per spec.md section 3: "id is regenerated on copy() so clones are
// distinct even when content and metadata match."
func (it *Item) Copy() *Item {
	chunks := make([]*Chunk, len(it.chunks))
	copy(chunks, it.chunks)
	return &Item{
		id:         ident.NewItemID(),
		chunks:     chunks,
		metadata:   it.metadata.Copy(),
		cfg:        it.cfg,
		shash:      it.shash,
		whash:      it.whash,
		shashDirty: it.shashDirty,
		whashDirty: it.whashDirty,
	}
}
