package hashtree

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/cbergoon/merkletree"
)

// leafContent adapts a pre-computed leaf digest to merkletree.Content so that
// github.com/cbergoon/merkletree can build an auxiliary proof tree over the same
// leaves a HashTree holds.
type leafContent struct {
	digest []byte
}

func (l leafContent) CalculateHash() ([]byte, error) {
	return l.digest, nil
}

func (l leafContent) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(leafContent)
	if !ok {
		return false, fmt.Errorf("hashtree: proof comparison against incompatible content type %T", other)
	}
	return bytes.Equal(l.digest, o.digest), nil
}

// Proof is an inclusion proof for one leaf: the sibling hashes to combine with it on
// the way to the root, and which side each sibling sits on (cbergoon/merkletree's
// convention: 1 when the sibling is the right-hand operand, 0 when it is the left).
type Proof struct {
	Siblings [][]byte
	Order    []int64
}

// BuildProof returns an inclusion proof for the leaf at index i, using
// github.com/cbergoon/merkletree to do the path construction.
//
// This proof tree is a secondary, exportable structure: it is built independently of
// RootDigest's odd-leaf-hashed-alone reduction, because cbergoon/merkletree always
// duplicates a trailing odd leaf when pairing. A consumer verifying membership via
// VerifyProof below checks against this tree's own root (returned alongside the
// proof), not against RootDigest()'s root — the two are different trees over the same
// leaves. The proof tree also combines nodes with sha256 rather than the HashTree's
// reference context, so the two roots differ for any tree of two or more leaves.
func (t *HashTree) BuildProof(i int) (Proof, []byte, error) {
	if i < 0 || i >= len(t.leaves) {
		return Proof{}, nil, fmt.Errorf("hashtree: proof index %d out of range (len %d)", i, len(t.leaves))
	}

	contents := make([]merkletree.Content, len(t.leaves))
	for idx, leaf := range t.leaves {
		contents[idx] = leafContent{digest: leaf}
	}

	tree, err := merkletree.NewTree(contents)
	if err != nil {
		return Proof{}, nil, fmt.Errorf("hashtree: build proof tree: %w", err)
	}

	path, order, err := tree.MerklePath(contents[i])
	if err != nil {
		return Proof{}, nil, fmt.Errorf("hashtree: get merkle path: %w", err)
	}

	return Proof{Siblings: path, Order: order}, tree.MerkleRoot(), nil
}

// VerifyProof recomputes a root from leaf combined with proof's siblings (in order)
// using the same pairwise sha256 combination github.com/cbergoon/merkletree's default
// hash strategy performs (sha256.New, its NewTree default), and reports whether it
// equals root.
func VerifyProof(leaf []byte, proof Proof, root []byte) bool {
	current := leaf
	for i, sibling := range proof.Siblings {
		h := sha256.New()
		if proof.Order[i] == 1 {
			h.Write(append(append([]byte{}, current...), sibling...))
		} else {
			h.Write(append(append([]byte{}, sibling...), current...))
		}
		current = h.Sum(nil)
	}
	return bytes.Equal(current, root)
}
