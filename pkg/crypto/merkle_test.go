package crypto

import "testing"

func TestMerkleRootEmptyIsError(t *testing.T) {
	if _, err := MerkleRoot(nil); err == nil {
		t.Fatal("expected InvalidLength for empty leaf set")
	}
}

func TestMerkleRootSingleLeafDuplicates(t *testing.T) {
	leaf := HashSha512([]byte("solo"))
	root, err := MerkleRoot([]Digest64{leaf})
	if err != nil {
		t.Fatal(err)
	}
	want := HashSha512(leaf.Bytes(), leaf.Bytes())
	if root.Compare(want) != 0 {
		t.Fatalf("single-leaf root = %s, want %s", root.Hex(), want.Hex())
	}
}

func TestMerkleRootThreeLeavesMatchesSpecExample(t *testing.T) {
	a := HashSha512([]byte("a"))
	b := HashSha512([]byte("b"))
	c := HashSha512([]byte("c"))

	root, err := MerkleRoot([]Digest64{a, b, c})
	if err != nil {
		t.Fatal(err)
	}

	left := HashSha512(a.Bytes(), b.Bytes())
	right := HashSha512(c.Bytes(), c.Bytes())
	want := HashSha512(left.Bytes(), right.Bytes())

	if root.Compare(want) != 0 {
		t.Fatalf("root = %s, want %s", root.Hex(), want.Hex())
	}
}

func TestVerifyMerkleRoot(t *testing.T) {
	leaves := []Digest64{
		HashSha512([]byte("x")),
		HashSha512([]byte("y")),
	}
	root, err := MerkleRoot(leaves)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyMerkleRoot(leaves, root)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("verification of a correct root failed")
	}

	tampered := root
	tampered[0] ^= 0xFF
	ok, err = VerifyMerkleRoot(leaves, tampered)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("verification accepted a tampered root")
	}
}
