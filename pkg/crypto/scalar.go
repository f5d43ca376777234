package crypto

import (
	"crypto/rand"
	"crypto/sha512"

	"filippo.io/edwards25519"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// Scalar is a 32-byte integer modulo the edwards25519 group order. The
// group law itself — reduction, inversion, constant-time equality — is
// delegated to filippo.io/edwards25519 rather than reimplemented; this
// package only adds the wire codec and the spending-protocol-specific
// constructors (random, hash-to-scalar, mul-add) named by the
// specification.
type Scalar struct {
	inner *edwards25519.Scalar
}

// ZeroScalar returns the additive identity.
func ZeroScalar() Scalar {
	return Scalar{inner: edwards25519.NewScalar()}
}

// OneScalar returns the multiplicative identity.
func OneScalar() Scalar {
	var b [32]byte
	b[0] = 1
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic("crypto: one scalar must decode")
	}
	return Scalar{inner: s}
}

// RandomScalar draws a uniform scalar from the CSPRNG. Sixty-four random
// bytes are reduced modulo the group order rather than clamping 32
// bytes, so the result is uniform over the whole scalar field.
func RandomScalar() (Scalar, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Scalar{}, apperrors.Wrapf(apperrors.ErrUnknown, "crypto: read random scalar: %v", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return Scalar{}, apperrors.Wrapf(apperrors.ErrUnknown, "crypto: reduce random scalar: %v", err)
	}
	return Scalar{inner: s}, nil
}

// ScalarFromU64 embeds a small unsigned integer as a scalar.
func ScalarFromU64(n uint64) Scalar {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(n >> (8 * i))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic("crypto: u64 scalar must decode")
	}
	return Scalar{inner: s}
}

// HashScalar reduces SHA-512(data) modulo the group order, per spec
// §4.1's "hash_from_bytes".
func HashScalar(data ...[]byte) Scalar {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	sum := h.Sum(nil)
	s, err := edwards25519.NewScalar().SetUniformBytes(sum)
	if err != nil {
		// sha512 always yields exactly 64 bytes, which SetUniformBytes
		// always accepts.
		panic("crypto: hash-to-scalar reduction failed")
	}
	return Scalar{inner: s}
}

// ScalarFromBytes decodes 32 little-endian bytes into a canonical
// scalar. Non-canonical encodings (>= group order) are rejected.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "scalar: want 32 bytes, got %d", len(b))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return Scalar{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "scalar: non-canonical encoding: %v", err)
	}
	return Scalar{inner: s}, nil
}

// Bytes returns the 32-byte little-endian encoding.
func (s Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// Equal reports constant-time equality.
func (s Scalar) Equal(other Scalar) bool {
	return s.inner.Equal(other.inner) == 1
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	return Scalar{inner: edwards25519.NewScalar().Add(s.inner, other.inner)}
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	return Scalar{inner: edwards25519.NewScalar().Subtract(s.inner, other.inner)}
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	return Scalar{inner: edwards25519.NewScalar().Multiply(s.inner, other.inner)}
}

// Invert returns the multiplicative inverse of s.
func (s Scalar) Invert() Scalar {
	return Scalar{inner: edwards25519.NewScalar().Invert(s.inner)}
}

// MulAdd computes a*b + c, matching spec §4.1's mul_add.
func MulAdd(a, b, c Scalar) Scalar {
	return Scalar{inner: edwards25519.NewScalar().MultiplyAdd(a.inner, b.inner, c.inner)}
}

func (s Scalar) edwards() *edwards25519.Scalar { return s.inner }
