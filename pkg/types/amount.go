package types

import (
	"github.com/holiman/uint256"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// Amount is a non-negative integer bounded to 256 bits, per spec
// §3/§4.9. The original source backs Amount with an unbounded
// arbitrary-precision integer (Rust's BigUint); this port bounds it to
// 256 bits using uint256.Int, the same fixed-width integer type the
// teacher itself imports directly for balance arithmetic, since no
// transaction value a spec.md-shaped chain would ever carry approaches
// that bound and the fixed-width type avoids allocating on every
// operation. Overflow on Add/Mul and underflow on Sub are all checked
// errors rather than the source's unreachable!() wraparound (spec §7).
type Amount struct {
	v uint256.Int
}

// ZeroAmount is the additive identity.
func ZeroAmount() Amount {
	return Amount{}
}

// AmountFromUint64 builds an Amount from a machine integer.
func AmountFromUint64(n uint64) Amount {
	return Amount{v: *uint256.NewInt(n)}
}

// Add returns a + b, failing with ErrAmountOutOfBound if the sum would
// exceed the 256-bit range.
func (a Amount) Add(b Amount) (Amount, error) {
	var r uint256.Int
	if _, overflow := r.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, apperrors.Wrapf(apperrors.ErrAmountOutOfBound, "types: amount addition overflows 256 bits")
	}
	return Amount{v: r}, nil
}

// Sub returns a - b, failing with ErrAmountOutOfBound if the result
// would be negative rather than wrapping (spec §7, replacing the
// source's unreachable!() in Amount::to_u32).
func (a Amount) Sub(b Amount) (Amount, error) {
	var r uint256.Int
	if _, overflow := r.SubOverflow(&a.v, &b.v); overflow {
		return Amount{}, apperrors.Wrapf(apperrors.ErrAmountOutOfBound, "types: amount subtraction below zero")
	}
	return Amount{v: r}, nil
}

// Mul returns a * b, failing with ErrAmountOutOfBound if the product
// would exceed the 256-bit range.
func (a Amount) Mul(b Amount) (Amount, error) {
	var r uint256.Int
	if _, overflow := r.MulOverflow(&a.v, &b.v); overflow {
		return Amount{}, apperrors.Wrapf(apperrors.ErrAmountOutOfBound, "types: amount multiplication overflows 256 bits")
	}
	return Amount{v: r}, nil
}

// Div returns a / b, erroring on division by zero.
func (a Amount) Div(b Amount) (Amount, error) {
	if b.v.IsZero() {
		return Amount{}, apperrors.Wrapf(apperrors.ErrInvalidAmount, "types: division by zero amount")
	}
	var r uint256.Int
	r.Div(&a.v, &b.v)
	return Amount{v: r}, nil
}

// Rem returns a % b, erroring on division by zero.
func (a Amount) Rem(b Amount) (Amount, error) {
	if b.v.IsZero() {
		return Amount{}, apperrors.Wrapf(apperrors.ErrInvalidAmount, "types: remainder by zero amount")
	}
	var r uint256.Int
	r.Mod(&a.v, &b.v)
	return Amount{v: r}, nil
}

// Cmp returns -1, 0, or 1 comparing a to b.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Bytes returns the big-endian encoding with leading zero bytes
// stripped, except the zero value, which is always the single byte
// 0x00 (spec §4.9).
func (a Amount) Bytes() []byte {
	b32 := a.v.Bytes32()
	i := 0
	for i < len(b32)-1 && b32[i] == 0 {
		i++
	}
	return append([]byte(nil), b32[i:]...)
}

// AmountFromBytes decodes a big-endian byte string produced by Bytes.
func AmountFromBytes(b []byte) (Amount, error) {
	if len(b) == 0 {
		return Amount{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: empty amount encoding")
	}
	if len(b) > 32 {
		return Amount{}, apperrors.Wrapf(apperrors.ErrAmountOutOfBound, "types: amount encoding exceeds 256 bits")
	}
	var v uint256.Int
	v.SetBytes(b)
	return Amount{v: v}, nil
}

// String returns the base-10 representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// Encode returns the wire frame: u32 length prefix then Bytes (spec §6).
func (a Amount) Encode() []byte {
	return putBytes(nil, a.Bytes())
}

func decodeAmount(r *reader) (Amount, error) {
	b, err := r.takeBytes()
	if err != nil {
		return Amount{}, err
	}
	return AmountFromBytes(b)
}
