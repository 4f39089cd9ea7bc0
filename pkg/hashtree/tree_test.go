package hashtree

import (
	"bytes"
	"testing"

	"github.com/saworbit/kado/internal/digest"
)

func sha(data []byte) []byte {
	ctx := digest.NewStrong()
	ctx.Update(data)
	return ctx.Digest()
}

func TestEmptyTreeDigestEqualsEmptyContext(t *testing.T) {
	tree := New(digest.NewStrong())
	want := digest.NewStrong().Digest()
	if got := tree.RootDigest(); !bytes.Equal(got, want) {
		t.Fatalf("empty tree digest mismatch: got %x want %x", got, want)
	}
}

func TestSingleLeafDigestEqualsHashOfLeaf(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Append([]byte("a"))

	want := sha([]byte("a"))
	if got := tree.RootDigest(); !bytes.Equal(got, want) {
		t.Fatalf("single-leaf digest mismatch: got %x want %x", got, want)
	}
}

func TestTwoLeafDigestIsHashOfConcatenatedLeafHashes(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Append([]byte("a"))
	tree.Append([]byte("b"))

	ha, hb := sha([]byte("a")), sha([]byte("b"))
	ctx := digest.NewStrong()
	ctx.Update(ha)
	ctx.Update(hb)
	want := ctx.Digest()

	if got := tree.RootDigest(); !bytes.Equal(got, want) {
		t.Fatalf("two-leaf digest mismatch: got %x want %x", got, want)
	}
}

func TestThreeLeafOddTrailingElementHashedAlone(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Append([]byte("a"))
	tree.Append([]byte("b"))
	tree.Append([]byte("c"))

	ha, hb, hc := sha([]byte("a")), sha([]byte("b")), sha([]byte("c"))

	left := digest.NewStrong()
	left.Update(ha)
	left.Update(hb)
	level1Left := left.Digest()

	right := digest.NewStrong()
	right.Update(hc)
	level1Right := right.Digest()

	top := digest.NewStrong()
	top.Update(level1Left)
	top.Update(level1Right)
	want := top.Digest()

	if got := tree.RootDigest(); !bytes.Equal(got, want) {
		t.Fatalf("three-leaf digest mismatch: got %x want %x", got, want)
	}
}

func TestRootDigestIsNotMemoized(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Append([]byte("a"))
	first := tree.RootDigest()

	tree.Append([]byte("b"))
	second := tree.RootDigest()

	if bytes.Equal(first, second) {
		t.Fatal("root digest did not change after appending a new leaf")
	}
}

func TestLeafAndLenAndClear(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Extend([][]byte{[]byte("a"), []byte("b"), []byte("c")})

	if tree.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tree.Len())
	}

	leaf1, err := tree.Leaf(1)
	if err != nil {
		t.Fatalf("Leaf(1) error: %v", err)
	}
	if !bytes.Equal(leaf1, sha([]byte("b"))) {
		t.Fatal("Leaf(1) did not return the expected digest")
	}

	if _, err := tree.Leaf(99); err == nil {
		t.Fatal("expected out-of-range error for Leaf(99)")
	}

	tree.Clear()
	if tree.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", tree.Len())
	}
}

func TestSetInsertPopDelete(t *testing.T) {
	tree := New(digest.NewStrong())
	tree.Extend([][]byte{[]byte("a"), []byte("b")})

	if err := tree.Insert(1, []byte("x")); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	leaf1, _ := tree.Leaf(1)
	if !bytes.Equal(leaf1, sha([]byte("x"))) {
		t.Fatal("Insert did not place the leaf at the requested index")
	}

	if err := tree.Set(0, []byte("z")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	leaf0, _ := tree.Leaf(0)
	if !bytes.Equal(leaf0, sha([]byte("z"))) {
		t.Fatal("Set did not replace the leaf")
	}

	popped, err := tree.Pop()
	if err != nil {
		t.Fatalf("Pop error: %v", err)
	}
	if !bytes.Equal(popped, sha([]byte("b"))) {
		t.Fatal("Pop did not return the last leaf")
	}

	if err := tree.Delete(0); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("Len() after Delete = %d, want 1", tree.Len())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	original := New(digest.NewStrong())
	original.Extend([][]byte{[]byte("a"), []byte("b")})

	clone := original.Copy().(*HashTree)
	original.Append([]byte("c"))

	if clone.Len() != 2 {
		t.Fatalf("clone.Len() = %d, want 2 (mutation leaked into clone)", clone.Len())
	}
	if bytes.Equal(clone.RootDigest(), New(digest.NewStrong()).RootDigest()) {
		t.Fatal("clone digest matched an unrelated empty tree")
	}
}

func TestDeterministicGivenSameLeafOrder(t *testing.T) {
	a := New(digest.NewStrong())
	b := New(digest.NewStrong())
	for _, leaf := range [][]byte{[]byte("x"), []byte("y"), []byte("z")} {
		a.Append(leaf)
		b.Append(leaf)
	}
	if !bytes.Equal(a.RootDigest(), b.RootDigest()) {
		t.Fatal("two trees fed the same leaves in the same order produced different roots")
	}
}
