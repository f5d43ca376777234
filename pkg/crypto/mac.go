package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"hash"
)

// Mac is an HMAC-SHA512 message authenticator keyed by a Key64,
// producing a 64-byte tag. It supports both the two-stage one-shot form
// and a streaming Update/Verify form, per spec §4.2.
type Mac struct {
	h hash.Hash
}

// NewMac starts a new streaming MAC under the given key.
func NewMac(key Key64) *Mac {
	return &Mac{h: hmac.New(sha512.New, key[:])}
}

// Update feeds more data into the running MAC.
func (m *Mac) Update(data []byte) { m.h.Write(data) }

// Tag finalizes and returns the 64-byte authentication tag.
func (m *Mac) Tag() []byte {
	return m.h.Sum(nil)
}

// Verify checks a tag against the running MAC state in constant time.
func (m *Mac) Verify(tag []byte) bool {
	return hmac.Equal(m.Tag(), tag)
}

// ComputeMac is the one-shot form: mac(key, msg).
func ComputeMac(key Key64, msg []byte) []byte {
	m := NewMac(key)
	m.Update(msg)
	return m.Tag()
}

// VerifyMac checks a one-shot tag in constant time.
func VerifyMac(key Key64, msg, tag []byte) bool {
	return hmac.Equal(ComputeMac(key, msg), tag)
}
