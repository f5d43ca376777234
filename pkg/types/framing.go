// Package types implements the transaction/UTXO object model (spec §3,
// §4.9): Amount, Outpoint, Input, Output, Transaction, Coinbase, UTXO,
// and the WriteOp/DeleteOp variants, plus the canonical binary framing
// every id computation and wire encoding in this package builds on.
package types

import (
	"encoding/binary"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// putU32 appends a big-endian uint32.
func putU32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// putU64 appends a big-endian uint64.
func putU64(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// putBytes appends a u32 length prefix followed by b, the length-prefixed
// frame shape spec §6 uses for Amount and the field-ordered records.
func putBytes(dst []byte, b []byte) []byte {
	dst = putU32(dst, uint32(len(b)))
	return append(dst, b...)
}

// putArray appends a u32 count prefix followed by the already-encoded
// items, the "length-prefixed arrays" shape spec §4.9 requires for
// Transaction.inputs/outputs.
func putArray(dst []byte, items [][]byte) []byte {
	dst = putU32(dst, uint32(len(items)))
	for _, item := range items {
		dst = append(dst, item...)
	}
	return dst
}

// reader walks a byte slice consuming canonical frames, erroring on
// short input instead of panicking on an out-of-range slice.
type reader struct {
	buf []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

func (r *reader) takeU32() (uint32, error) {
	if len(r.buf)-r.pos < 4 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: truncated u32 at offset %d", r.pos)
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) takeU64() (uint64, error) {
	if len(r.buf)-r.pos < 8 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: truncated u64 at offset %d", r.pos)
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *reader) takeN(n int) ([]byte, error) {
	if len(r.buf)-r.pos < n {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: truncated field, want %d bytes at offset %d", n, r.pos)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) takeBytes() ([]byte, error) {
	n, err := r.takeU32()
	if err != nil {
		return nil, err
	}
	return r.takeN(int(n))
}

func (r *reader) done() bool {
	return r.pos == len(r.buf)
}
