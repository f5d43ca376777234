package crypto

import (
	"encoding/binary"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// SegmentSize is the fixed Proof-of-Storage sample width, per spec
// §4.8.
const SegmentSize = 32

// SampleIndices derives `count` sample indices into data of length
// dataLen from a 64-byte seed, per spec §4.8:
//
//	idx0   = be_u32(seed) mod dataLen
//	seed_k+1 = sha512(seed_k)
//	idx_k  = be_u32(seed_k) mod dataLen
//
// Repeated indices are permitted.
func SampleIndices(seed Digest64, count int, dataLen int) ([]int, error) {
	if dataLen <= 0 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidLength, "pos: dataLen must be positive")
	}
	if count <= 0 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidLength, "pos: count must be positive")
	}

	indices := make([]int, count)
	cur := seed
	for k := 0; k < count; k++ {
		idx := int(binary.BigEndian.Uint32(cur[:4])) % dataLen
		indices[k] = idx
		cur = HashSha512(cur.Bytes())
	}
	return indices, nil
}

// Segment extracts the SegmentSize bytes of data starting at idx,
// truncated at the end of data if data is shorter.
func Segment(data []byte, idx int) []byte {
	end := idx + SegmentSize
	if end > len(data) {
		end = len(data)
	}
	if idx > len(data) {
		idx = len(data)
	}
	return data[idx:end]
}

// SegmentCommitment samples `count` segments from data using seed and
// returns the Merkle root of sha512(segment) over them, per spec §4.8.
func SegmentCommitment(seed Digest64, count int, data []byte) (Digest64, []int, error) {
	indices, err := SampleIndices(seed, count, len(data))
	if err != nil {
		return Digest64{}, nil, err
	}

	leaves := make([]Digest64, len(indices))
	for i, idx := range indices {
		leaves[i] = HashSha512(Segment(data, idx))
	}

	root, err := MerkleRoot(leaves)
	if err != nil {
		return Digest64{}, nil, err
	}
	return root, indices, nil
}

// VerifySegments recomputes the segment commitment over claimed
// segments at the derived indices and checks both the Merkle root and
// that each claimed segment matches the origin data.
func VerifySegments(seed Digest64, commitment Digest64, claimedSegments [][]byte, data []byte) (bool, error) {
	indices, err := SampleIndices(seed, len(claimedSegments), len(data))
	if err != nil {
		return false, err
	}

	leaves := make([]Digest64, len(claimedSegments))
	for i, seg := range claimedSegments {
		expected := Segment(data, indices[i])
		if !bytesEqual(seg, expected) {
			return false, nil
		}
		leaves[i] = HashSha512(seg)
	}

	return VerifyMerkleRoot(leaves, commitment)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
