package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// Key32 is a 32-byte symmetric key, sized for AES-256.
type Key32 [32]byte

// Key64 is a 64-byte symmetric key, sized for HMAC-SHA512 and the
// shared secret produced by ECIES key agreement.
type Key64 [64]byte

// Key32FromBytes copies a 32-byte slice into a Key32.
func Key32FromBytes(b []byte) (Key32, error) {
	var k Key32
	if len(b) != 32 {
		return k, apperrors.Wrapf(apperrors.ErrInvalidLength, "key32: want 32 bytes, got %d", len(b))
	}
	copy(k[:], b)
	return k, nil
}

// Key64FromBytes copies a 64-byte slice into a Key64.
func Key64FromBytes(b []byte) (Key64, error) {
	var k Key64
	if len(b) != 64 {
		return k, apperrors.Wrapf(apperrors.ErrInvalidLength, "key64: want 64 bytes, got %d", len(b))
	}
	copy(k[:], b)
	return k, nil
}

// Key64FromHash derives a Key64 by hashing arbitrary-length material
// with SHA-512, per the ECIES construction in spec §4.4 step 2.
func Key64FromHash(material []byte) Key64 {
	sum := sha512.Sum512(material)
	return Key64(sum)
}

// Reduce folds a Key64 down to a Key32 by splitting it into two 32-byte
// halves and XOR-folding them, per spec §3's "split and XOR-fold"
// option — cheaper than re-hashing when the caller already has a wide
// key from an HKDF or SHA-512 step.
func (k Key64) Reduce() Key32 {
	var out Key32
	for i := 0; i < 32; i++ {
		out[i] = k[i] ^ k[i+32]
	}
	return out
}

// ReduceHash folds a Key64 down to a Key32 by hashing it with SHA-256,
// the alternative reduction spec §3 allows.
func (k Key64) ReduceHash() Key32 {
	return Key32(sha256.Sum256(k[:]))
}

// Bytes returns a copy of the key bytes.
func (k Key32) Bytes() []byte { b := make([]byte, 32); copy(b, k[:]); return b }

// Bytes returns a copy of the key bytes.
func (k Key64) Bytes() []byte { b := make([]byte, 64); copy(b, k[:]); return b }

// Hex returns the lowercase hex encoding.
func (k Key32) Hex() string { return hex.EncodeToString(k[:]) }

// Hex returns the lowercase hex encoding.
func (k Key64) Hex() string { return hex.EncodeToString(k[:]) }
