package object

import (
	"fmt"

	"github.com/multiformats/go-multihash"
)

// computeCID multihash-encodes data's sha2-256 digest and returns its base58 string
// form. This CID is
// additive to, and independent from, the object's UUID id and its shash/whash pair: it
// exists purely for interop with CID-aware systems layered on top of this core.
func computeCID(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("object: compute cid: %w", err)
	}
	return mh.B58String(), nil
}

// CID returns a multihash content identifier for the chunk's data.
func (c *Chunk) CID() (string, error) {
	return computeCID(c.Data())
}

// CID returns a multihash content identifier for the item's assembled data.
func (it *Item) CID() (string, error) {
	return computeCID(it.Data())
}
