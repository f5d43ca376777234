package crypto

import (
	"encoding/hex"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// PublicKey pairs a generator with the point it was derived from:
// pk = g*sk. Carrying g alongside pk (rather than assuming the global
// base point) lets two parties use different generators for distinct
// multi-generator schemes while still catching the mismatch before a
// shared key is derived.
type PublicKey struct {
	G  Point
	PK Point
}

// SecretKey pairs a generator with the scalar it was derived from.
type SecretKey struct {
	G  Point
	SK Scalar
}

// NewPublicKey constructs a PublicKey from its parts without checking
// the pk == g*sk invariant — callers deriving pk from sk via PublicKey()
// get that invariant for free; callers decoding from the wire must rely
// on the transaction verification pipeline to catch an inconsistent key.
func NewPublicKey(g, pk Point) PublicKey {
	return PublicKey{G: g, PK: pk}
}

// NewSecretKey constructs a SecretKey from its parts.
func NewSecretKey(g Point, sk Scalar) SecretKey {
	return SecretKey{G: g, SK: sk}
}

// RandomSecretKey draws a secret key using the canonical generator G.
func RandomSecretKey() (SecretKey, error) {
	sk, err := RandomScalar()
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{G: GeneratorPoint(), SK: sk}, nil
}

// SecretKeyFromGenerator draws a random scalar under a caller-supplied
// generator, for multi-generator schemes.
func SecretKeyFromGenerator(g Point) (SecretKey, error) {
	sk, err := RandomScalar()
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{G: g, SK: sk}, nil
}

// PublicKey derives pk = g*sk.
func (s SecretKey) PublicKey() PublicKey {
	return PublicKey{G: s.G, PK: s.G.Mul(s.SK)}
}

// SharedKey derives H(sk_A * pk_B) for two keys sharing a generator, per
// spec §3. It fails closed when the generators differ.
func (s SecretKey) SharedKey(pk PublicKey) (Key64, error) {
	if !s.G.Equal(pk.G) {
		return Key64{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "crypto: shared key requires matching generators")
	}
	raw := DH(s.SK, pk.PK)
	return Key64FromHash(raw), nil
}

// Bytes encodes the public key as g(32) || pk(32), per spec §6. The
// source this protocol is derived from has a copy-paste bug where both
// halves are written from g; this implementation keeps the halves
// distinct, as required.
func (p PublicKey) Bytes() []byte {
	out := make([]byte, 0, 64)
	out = append(out, p.G.Bytes()...)
	out = append(out, p.PK.Bytes()...)
	return out
}

// Hex returns the lowercase hex encoding of Bytes.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// PublicKeyFromBytes decodes g(32) || pk(32).
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != 64 {
		return PublicKey{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "public key: want 64 bytes, got %d", len(b))
	}
	g, err := PointFromBytes(b[0:32])
	if err != nil {
		return PublicKey{}, err
	}
	pk, err := PointFromBytes(b[32:64])
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{G: g, PK: pk}, nil
}

// PublicKeyFromHex decodes a lowercase hex string.
func PublicKeyFromHex(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "public key: bad hex: %v", err)
	}
	return PublicKeyFromBytes(b)
}

// Equal reports whether two public keys carry the same generator and
// point.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.G.Equal(other.G) && p.PK.Equal(other.PK)
}

// Bytes encodes the secret key as g(32) || sk(32).
func (s SecretKey) Bytes() []byte {
	out := make([]byte, 0, 64)
	out = append(out, s.G.Bytes()...)
	out = append(out, s.SK.Bytes()...)
	return out
}

// Hex returns the lowercase hex encoding of Bytes.
func (s SecretKey) Hex() string {
	return hex.EncodeToString(s.Bytes())
}

// SecretKeyFromBytes decodes g(32) || sk(32).
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != 64 {
		return SecretKey{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "secret key: want 64 bytes, got %d", len(b))
	}
	g, err := PointFromBytes(b[0:32])
	if err != nil {
		return SecretKey{}, err
	}
	sk, err := ScalarFromBytes(b[32:64])
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{G: g, SK: sk}, nil
}

// SecretKeyFromHex decodes a lowercase hex string.
func SecretKeyFromHex(s string) (SecretKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return SecretKey{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "secret key: bad hex: %v", err)
	}
	return SecretKeyFromBytes(b)
}
