package store

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

// Value is an at-rest encrypted store entry: store_value(key32, plain) =
// {plain_size, sym_encrypt(key32, plain)}, per spec §4.10. Size
// accounting elsewhere in this package always uses PlainSize, not
// len(Ciphertext).
type Value struct {
	PlainSize  uint32
	Ciphertext []byte
}

// Seal encrypts plaintext under key, recording its plaintext length.
func Seal(key crypto.Key32, plaintext []byte) (Value, error) {
	ciphertext, err := crypto.SymEncrypt(key, plaintext)
	if err != nil {
		return Value{}, err
	}
	return Value{PlainSize: uint32(len(plaintext)), Ciphertext: ciphertext}, nil
}

// Open decrypts the value under key. The caller is the owner of key; the
// store itself never decrypts a value it holds.
func (v Value) Open(key crypto.Key32) ([]byte, error) {
	plaintext, err := crypto.SymDecrypt(key, v.Ciphertext)
	if err != nil {
		return nil, err
	}
	if uint32(len(plaintext)) != v.PlainSize {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidLength, "store: decrypted size %d does not match recorded plain size %d", len(plaintext), v.PlainSize)
	}
	return plaintext, nil
}
