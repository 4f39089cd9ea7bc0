// Package hashtree implements the incremental Merkle-style aggregator described in
// spec.md section 4.4: an ordered sequence of per-leaf strong digests plus an
// on-demand, unmemoized reduction to a single root digest.
//
// The reduction is hand-rolled rather than delegated to github.com/cbergoon/merkletree
// (used elsewhere in this module, see proof.go) because that library always
// duplicates a trailing odd leaf when pairing, which contradicts this package's
// invariant: an odd trailing leaf is hashed alone, never duplicated.
package hashtree

import (
	"fmt"

	"github.com/saworbit/kado/internal/digest"
	"github.com/saworbit/kado/internal/metrics"
	"github.com/saworbit/kado/pkg/kadoerr"
)

// HashTree holds an ordered list of leaf digests and a reference hash context used
// both to hash new leaves and to perform the pairwise reduction. It implements
// digest.Context itself: Update appends a leaf, Digest computes the root, and Copy
// deep-clones the leaf backing store and the reference context.
type HashTree struct {
	leaves [][]byte
	ref    digest.Context
}

// New builds an empty HashTree over the given reference hash context. The context is
// never updated itself: every leaf hash and every reduction step works on a clone of
// it, so callers should pass a freshly constructed context they do not intend to reuse
// elsewhere.
func New(ref digest.Context) *HashTree {
	return &HashTree{ref: ref}
}

// NewFromLeaves builds a HashTree and feeds it the given byte slices in order.
func NewFromLeaves(ref digest.Context, items [][]byte) *HashTree {
	t := New(ref)
	t.Extend(items)
	return t
}

func (t *HashTree) leafDigest(data []byte) []byte {
	ctx := t.ref.Copy()
	ctx.Update(data)
	return ctx.Digest()
}

// Update hashes data and appends the result as a new leaf. It is the digest.Context
// entry point, and is equivalent to Append.
func (t *HashTree) Update(data []byte) {
	t.Append(data)
}

// Append hashes data and appends the result as a new leaf.
func (t *HashTree) Append(data []byte) {
	t.leaves = append(t.leaves, t.leafDigest(data))
}

// Extend hashes and appends each item in order.
func (t *HashTree) Extend(items [][]byte) {
	for _, item := range items {
		t.Append(item)
	}
}

// Insert hashes data and inserts the resulting leaf at index i, shifting later
// leaves one position to the right. i == Len() appends.
func (t *HashTree) Insert(i int, data []byte) error {
	if i < 0 || i > len(t.leaves) {
		return fmt.Errorf("%w: insert index %d (len %d)", kadoerr.ErrOutOfRange, i, len(t.leaves))
	}
	leaf := t.leafDigest(data)
	t.leaves = append(t.leaves, nil)
	copy(t.leaves[i+1:], t.leaves[i:])
	t.leaves[i] = leaf
	return nil
}

// Set hashes data and replaces the leaf at index i (the __setitem__ operation).
func (t *HashTree) Set(i int, data []byte) error {
	if i < 0 || i >= len(t.leaves) {
		return fmt.Errorf("%w: set index %d (len %d)", kadoerr.ErrOutOfRange, i, len(t.leaves))
	}
	t.leaves[i] = t.leafDigest(data)
	return nil
}

// Pop removes and returns the last leaf digest.
func (t *HashTree) Pop() ([]byte, error) {
	if len(t.leaves) == 0 {
		return nil, fmt.Errorf("%w: pop from empty tree", kadoerr.ErrOutOfRange)
	}
	return t.PopAt(len(t.leaves) - 1)
}

// PopAt removes and returns the leaf digest at index i.
func (t *HashTree) PopAt(i int) ([]byte, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, fmt.Errorf("%w: pop index %d (len %d)", kadoerr.ErrOutOfRange, i, len(t.leaves))
	}
	leaf := t.leaves[i]
	t.leaves = append(t.leaves[:i], t.leaves[i+1:]...)
	return leaf, nil
}

// Delete removes the leaf at index i (the __delitem__ operation).
func (t *HashTree) Delete(i int) error {
	_, err := t.PopAt(i)
	return err
}

// Clear removes all leaves.
func (t *HashTree) Clear() {
	t.leaves = nil
}

// Len returns the number of leaves.
func (t *HashTree) Len() int {
	return len(t.leaves)
}

// Leaf returns a copy of the digest stored at index i.
func (t *HashTree) Leaf(i int) ([]byte, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, fmt.Errorf("%w: leaf index %d (len %d)", kadoerr.ErrOutOfRange, i, len(t.leaves))
	}
	out := make([]byte, len(t.leaves[i]))
	copy(out, t.leaves[i])
	return out, nil
}

// Digest is the digest.Context entry point; it returns the root digest.
func (t *HashTree) Digest() []byte {
	return t.RootDigest()
}

// RootDigest reduces the leaf sequence to a single root digest, per spec.md section
// 4.4: while more than one level remains, pair leaves two at a time (left, right);
// clone the reference context, feed left then (if present) right, and emit the
// digest. An odd trailing leaf is paired with nil and hashed alone, never duplicated.
// The reduction is never memoized — every call recomputes it from the current leaves.
func (t *HashTree) RootDigest() []byte {
	if len(t.leaves) == 0 {
		metrics.ObserveHashTreeReduction(0, 0)
		return t.ref.Copy().Digest()
	}

	level := make([][]byte, len(t.leaves))
	copy(level, t.leaves)

	depth := 0
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			ctx := t.ref.Copy()
			ctx.Update(level[i])
			if i+1 < len(level) {
				ctx.Update(level[i+1])
			}
			next = append(next, ctx.Digest())
		}
		level = next
		depth++
	}
	metrics.ObserveHashTreeReduction(depth, len(t.leaves))
	return level[0]
}

// Copy returns a deep-enough clone: a fresh leaf backing store and a cloned
// reference hash context, so mutating one tree never affects the other.
func (t *HashTree) Copy() digest.Context {
	leaves := make([][]byte, len(t.leaves))
	for i, l := range t.leaves {
		cp := make([]byte, len(l))
		copy(cp, l)
		leaves[i] = cp
	}
	return &HashTree{leaves: leaves, ref: t.ref.Copy()}
}
