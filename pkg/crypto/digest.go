package crypto

import (
	"bytes"
	"encoding/hex"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// Digest32 is a fixed-width SHA-256 output.
type Digest32 [32]byte

// Digest64 is a fixed-width SHA-512 output. Digests are ordered
// lexicographically on their big-endian byte representation, which is
// what PoW target comparison (spec §4.7) relies on.
type Digest64 [64]byte

// Digest32FromBytes copies a 32-byte slice into a Digest32.
func Digest32FromBytes(b []byte) (Digest32, error) {
	var d Digest32
	if len(b) != 32 {
		return d, apperrors.Wrapf(apperrors.ErrInvalidLength, "digest32: want 32 bytes, got %d", len(b))
	}
	copy(d[:], b)
	return d, nil
}

// Digest64FromBytes copies a 64-byte slice into a Digest64.
func Digest64FromBytes(b []byte) (Digest64, error) {
	var d Digest64
	if len(b) != 64 {
		return d, apperrors.Wrapf(apperrors.ErrInvalidLength, "digest64: want 64 bytes, got %d", len(b))
	}
	copy(d[:], b)
	return d, nil
}

// Digest32FromHex decodes a lowercase hex string.
func Digest32FromHex(s string) (Digest32, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest32{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "digest32: bad hex: %v", err)
	}
	return Digest32FromBytes(b)
}

// Digest64FromHex decodes a lowercase hex string.
func Digest64FromHex(s string) (Digest64, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest64{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "digest64: bad hex: %v", err)
	}
	return Digest64FromBytes(b)
}

// Bytes returns a copy of the digest.
func (d Digest32) Bytes() []byte { b := make([]byte, 32); copy(b, d[:]); return b }

// Bytes returns a copy of the digest.
func (d Digest64) Bytes() []byte { b := make([]byte, 64); copy(b, d[:]); return b }

// Hex returns the lowercase hex encoding.
func (d Digest32) Hex() string { return hex.EncodeToString(d[:]) }

// Hex returns the lowercase hex encoding.
func (d Digest64) Hex() string { return hex.EncodeToString(d[:]) }

// Compare orders two digests lexicographically on their big-endian byte
// representation: -1, 0, or 1.
func (d Digest64) Compare(other Digest64) int {
	return bytes.Compare(d[:], other[:])
}

// LessOrEqual reports d <= other, used by PoW target comparison.
func (d Digest64) LessOrEqual(other Digest64) bool {
	return d.Compare(other) <= 0
}
