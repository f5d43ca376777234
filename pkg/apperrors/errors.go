// Package apperrors defines the stable error kinds shared by every
// component of the core: cryptographic primitives, the data model, the
// store, and the node façade. Kinds are sentinel values so callers can
// compare with errors.Is even after a value has been wrapped several
// times on its way up the call stack.
package apperrors

import "github.com/cockroachdb/errors"

// Kind is a stable, wire-independent classification of a failure. The
// exact set is fixed by the specification and must not grow silently —
// adding a new kind here is a protocol-visible change.
var (
	ErrInvalidLength       = errors.New("apperrors: invalid length")
	ErrInvalidPoint        = errors.New("apperrors: invalid point")
	ErrInvalidCiphertext   = errors.New("apperrors: invalid ciphertext")
	ErrInvalidProof        = errors.New("apperrors: invalid proof")
	ErrInvalidBits         = errors.New("apperrors: invalid target bits")
	ErrInvalidSCost        = errors.New("apperrors: invalid s_cost")
	ErrInvalidTCost        = errors.New("apperrors: invalid t_cost")
	ErrInvalidDelta        = errors.New("apperrors: invalid delta")
	ErrInvalidTime         = errors.New("apperrors: invalid time")
	ErrInvalidAmount       = errors.New("apperrors: invalid amount")
	ErrAmountOutOfBound    = errors.New("apperrors: amount out of bound")
	ErrInvalidStore        = errors.New("apperrors: invalid store")
	ErrNotFound            = errors.New("apperrors: not found")
	ErrAlreadyFound        = errors.New("apperrors: already found")
	ErrDuplicatedElements  = errors.New("apperrors: duplicated elements")
	ErrNotEnoughSpace      = errors.New("apperrors: not enough space")
	ErrUnknown             = errors.New("apperrors: unknown error")
)

// Wrapf attaches additional context to a sentinel kind while preserving
// errors.Is comparability against it.
func Wrapf(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}

// Is reports whether err is (or wraps) the given kind.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
