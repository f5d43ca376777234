package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Sha256 is a streaming SHA-256 hasher producing Digest32 output. No
// third-party library in the corpus replaces the standard library's
// SHA-2 implementation; every crypto-heavy example reaches directly
// into crypto/sha256 / crypto/sha512 for it.
type Sha256 struct {
	h hash.Hash
}

// NewSha256 starts a new streaming hash.
func NewSha256() *Sha256 {
	return &Sha256{h: sha256.New()}
}

// Update feeds more data into the running hash.
func (s *Sha256) Update(data []byte) { s.h.Write(data) }

// Digest finalizes and returns the hash. The hasher remains usable for
// further Update calls after Digest, mirroring hash.Hash semantics.
func (s *Sha256) Digest() Digest32 {
	var d Digest32
	copy(d[:], s.h.Sum(nil))
	return d
}

// HashSha256 is the one-shot form.
func HashSha256(data ...[]byte) Digest32 {
	h := NewSha256()
	for _, d := range data {
		h.Update(d)
	}
	return h.Digest()
}

// Sha512 is a streaming SHA-512 hasher producing Digest64 output.
type Sha512 struct {
	h hash.Hash
}

// NewSha512 starts a new streaming hash.
func NewSha512() *Sha512 {
	return &Sha512{h: sha512.New()}
}

// Update feeds more data into the running hash.
func (s *Sha512) Update(data []byte) { s.h.Write(data) }

// Digest finalizes and returns the hash.
func (s *Sha512) Digest() Digest64 {
	var d Digest64
	copy(d[:], s.h.Sum(nil))
	return d
}

// HashSha512 is the one-shot form, used throughout the core (Merkle
// nodes, Balloon hashing, ECIES key derivation) wherever spec.md calls
// for "H" or "sha512(...)".
func HashSha512(data ...[]byte) Digest64 {
	h := NewSha512()
	for _, d := range data {
		h.Update(d)
	}
	return h.Digest()
}
