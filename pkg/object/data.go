// Package object implements the data-bearing object model from spec.md sections 4.5
// through 4.7: an immutable Chunk, a mutable ordered Item built from chunks plus
// string-keyed metadata, and the lazy, dirty-tracked digest machinery both share.
package object

import (
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/saworbit/kado/internal/digest"
)

// hashFactory builds a fresh, persistent hash context. Chunk uses the package
// defaults (digest.NewStrong/digest.NewWeak). Item does not go through a hashFactory:
// its own StrongHash/WeakHash build a pkg/hashtree.HashTree over its chunks, per
// spec.md section 4.5's "Item override".
type hashFactory func() digest.Context

// dataObject is the HasData behavior spec.md section 4.5 describes: stored bytes plus
// lazily recomputed, dirty-tracked strong and weak digests. Chunk embeds it; Item does
// not, and keeps its own dirty-tracked digest fields instead.
type dataObject struct {
	data []byte

	strongFactory hashFactory
	weakFactory   hashFactory

	shash      string
	whash      string
	shashDirty bool
	whashDirty bool
}

func newDataObject(data []byte, strongFactory, weakFactory hashFactory) *dataObject {
	return &dataObject{
		data:          data,
		strongFactory: strongFactory,
		weakFactory:   weakFactory,
		shashDirty:    true,
		whashDirty:    true,
	}
}

// Data returns the stored bytes.
func (d *dataObject) Data() []byte {
	return d.data
}

// setData replaces the stored bytes and marks both digests dirty. It is unexported:
// Chunk deliberately does not expose it (data is set-once).
func (d *dataObject) setData(data []byte) {
	d.data = data
	d.shashDirty = true
	d.whashDirty = true
}

// Len returns the byte length of the stored data.
func (d *dataObject) Len() int {
	return len(d.data)
}

// StrongHash returns the lazily recomputed strong digest, hex-encoded.
func (d *dataObject) StrongHash() string {
	if d.shashDirty {
		ctx := d.strongFactory()
		ctx.Update(d.data)
		d.shash = hex.EncodeToString(ctx.Digest())
		d.shashDirty = false
	}
	return d.shash
}

// WeakHash returns the lazily recomputed weak digest, hex-encoded.
func (d *dataObject) WeakHash() string {
	if d.whashDirty {
		ctx := d.weakFactory()
		ctx.Update(d.data)
		d.whash = hex.EncodeToString(ctx.Digest())
		d.whashDirty = false
	}
	return d.whash
}

// Equal compares two data-bearing objects' bytes in constant time, per spec.md
// section 4.5.
func (d *dataObject) Equal(other *dataObject) bool {
	if len(d.data) != len(other.data) {
		return false
	}
	return subtle.ConstantTimeCompare(d.data, other.data) == 1
}

// HashCode returns a 64-bit hash of the object's data, derived from its weak digest,
// giving HasData the "hashability" spec.md section 4.5 calls for (e.g. as a map key or
// an Index value) without recomputing a fresh hash for that sole purpose.
func (d *dataObject) HashCode() uint64 {
	h := d.WeakHash()
	if len(h) < 16 {
		return 0
	}
	raw, err := hex.DecodeString(h[:16])
	if err != nil {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}
