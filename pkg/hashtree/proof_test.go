package hashtree

import (
	"testing"

	"github.com/saworbit/kado/internal/digest"
)

func TestBuildProofRoundTripsThroughVerifyProof(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Extend([][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")})

	for i := 0; i < tree.Len(); i++ {
		proof, root, err := tree.BuildProof(i)
		if err != nil {
			t.Fatalf("BuildProof(%d) error: %v", i, err)
		}
		leaf, err := tree.Leaf(i)
		if err != nil {
			t.Fatal(err)
		}
		if !VerifyProof(leaf, proof, root) {
			t.Fatalf("VerifyProof failed for leaf %d", i)
		}
	}
}

func TestBuildProofRejectsOutOfRangeIndex(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Append([]byte("only"))

	if _, _, err := tree.BuildProof(1); err == nil {
		t.Fatal("expected an error for an out-of-range proof index")
	}
	if _, _, err := tree.BuildProof(-1); err == nil {
		t.Fatal("expected an error for a negative proof index")
	}
}

func TestVerifyProofRejectsTamperedLeaf(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Extend([][]byte{[]byte("a"), []byte("b"), []byte("c")})

	proof, root, err := tree.BuildProof(0)
	if err != nil {
		t.Fatal(err)
	}
	if VerifyProof([]byte("tampered"), proof, root) {
		t.Fatal("VerifyProof accepted a leaf it was not built from")
	}
}

func TestOddLeafCountProofTreeRootDiffersFromRootDigest(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Extend([][]byte{[]byte("a"), []byte("b"), []byte("c")})

	_, proofRoot, err := tree.BuildProof(0)
	if err != nil {
		t.Fatal(err)
	}

	// RootDigest hashes a trailing odd leaf alone; cbergoon/merkletree duplicates it.
	// The two roots are expected to diverge whenever the leaf count is odd, since
	// BuildProof is a separate exportable structure, never consulted by RootDigest.
	if string(proofRoot) == string(tree.RootDigest()) {
		t.Fatal("expected the proof tree's root to diverge from RootDigest for an odd leaf count")
	}
}
