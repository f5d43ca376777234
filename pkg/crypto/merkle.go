package crypto

import "github.com/duskledger/corechain/pkg/apperrors"

// MerkleRoot computes the binary Merkle root over 64-byte leaves, per
// spec §4.6: at each level, an odd element out is paired with itself,
// and the parent is sha512(left || right). An empty leaf set is a
// structural error rather than the panic the original source raises.
func MerkleRoot(leaves []Digest64) (Digest64, error) {
	if len(leaves) == 0 {
		return Digest64{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "merkle: empty leaf set")
	}

	level := make([]Digest64, len(leaves))
	copy(level, leaves)

	// Always combine at least one level, even when there is a single
	// leaf to start with: spec §8 requires a lone leaf's root to be
	// sha512(leaf || leaf), not the leaf itself.
	for {
		next := make([]Digest64, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, HashSha512(left.Bytes(), right.Bytes()))
		}
		level = next
		if len(level) == 1 {
			break
		}
	}
	return level[0], nil
}

// VerifyMerkleRoot recomputes the root over leaves and compares it to
// the claimed root.
func VerifyMerkleRoot(leaves []Digest64, root Digest64) (bool, error) {
	got, err := MerkleRoot(leaves)
	if err != nil {
		return false, err
	}
	return got.Compare(root) == 0, nil
}
