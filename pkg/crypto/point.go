package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"filippo.io/edwards25519"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// Point is a compressed Edwards point on curve25519. Go has no useful
// zero value for a group element, so callers needing the spec's "default
// construction yields G" behavior (§3) must call GeneratorPoint
// explicitly rather than rely on a Point{} literal.
type Point struct {
	inner *edwards25519.Point
}

// GeneratorPoint returns the canonical base point G.
func GeneratorPoint() Point {
	return Point{inner: edwards25519.NewGeneratorPoint()}
}

// IdentityPoint returns the group identity (the point at infinity).
func IdentityPoint() Point {
	return Point{inner: edwards25519.NewIdentityPoint()}
}

// RandomPoint draws a point by decoding 32 random bytes and retrying on
// decode failure. Rejection sampling is cheap: roughly half of all
// 32-byte strings decode to a valid point.
func RandomPoint() (Point, error) {
	var b [32]byte
	for i := 0; i < 256; i++ {
		if _, err := rand.Read(b[:]); err != nil {
			return Point{}, apperrors.Wrapf(apperrors.ErrUnknown, "crypto: read random point bytes: %v", err)
		}
		if p, err := PointFromBytes(b[:]); err == nil {
			return p, nil
		}
	}
	return Point{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "crypto: failed to sample a valid point")
}

// PointFromBytes decodes a compressed Edwards point, rejecting invalid
// encodings rather than silently falling back to the identity.
func PointFromBytes(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "point: want 32 bytes, got %d", len(b))
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return Point{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "point: invalid encoding: %v", err)
	}
	// SetBytes also accepts non-canonical encodings of valid points; only
	// an encoding that re-encodes to the same bytes is accepted here.
	if !bytes.Equal(p.Bytes(), b) {
		return Point{}, apperrors.Wrapf(apperrors.ErrInvalidPoint, "point: non-canonical encoding")
	}
	return Point{inner: p}, nil
}

// PointFromHex decodes a lowercase hex string.
func PointFromHex(s string) (Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Point{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "point: bad hex: %v", err)
	}
	return PointFromBytes(b)
}

// Bytes returns the 32-byte compressed encoding.
func (p Point) Bytes() []byte {
	return p.inner.Bytes()
}

// Hex returns the lowercase hex encoding.
func (p Point) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// Equal reports constant-time equality.
func (p Point) Equal(other Point) bool {
	return p.inner.Equal(other.inner) == 1
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{inner: edwards25519.NewIdentityPoint().Add(p.inner, q.inner)}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{inner: edwards25519.NewIdentityPoint().Subtract(p.inner, q.inner)}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{inner: edwards25519.NewIdentityPoint().Negate(p.inner)}
}

// Mul returns p * s (scalar multiplication).
func (p Point) Mul(s Scalar) Point {
	return Point{inner: edwards25519.NewIdentityPoint().ScalarMult(s.edwards(), p.inner)}
}

// DH computes the raw Diffie-Hellman shared value pk * sk, returned as
// 32 bytes per spec §4.1. The caller is responsible for hashing the
// result before using it as key material.
func DH(sk Scalar, pk Point) []byte {
	return pk.Mul(sk).Bytes()
}
