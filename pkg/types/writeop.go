package types

import "github.com/duskledger/corechain/pkg/crypto"

// WriteOp attaches arbitrary, time-bounded data to the chain (spec
// §3/§4.11): "WriteOp payload data is created on confirmation and
// destroyed when its attached expiry passes". Grounded on
// original_source/src/models/ and the UndeletedData store namespace
// named in spec §4.10/§4.11, a feature the distilled spec.md keeps only
// as an implicit store namespace.
type WriteOp struct {
	ID        crypto.Digest64
	Data      []byte
	ExpiresAt uint64 // unix seconds
}

// Expired reports whether this write-op's data has passed its expiry as
// of now.
func (w WriteOp) Expired(now uint64) bool {
	return now >= w.ExpiresAt
}

// Bytes encodes id(64) || data(frame) || expires_at(u64 BE).
func (w WriteOp) Bytes() []byte {
	out := make([]byte, 0, 64+4+len(w.Data)+8)
	out = append(out, w.ID[:]...)
	out = putBytes(out, w.Data)
	out = putU64(out, w.ExpiresAt)
	return out
}

// WriteOpFromBytes decodes the frame produced by Bytes.
func WriteOpFromBytes(b []byte) (WriteOp, error) {
	r := newReader(b)
	idBytes, err := r.takeN(64)
	if err != nil {
		return WriteOp{}, err
	}
	id, err := crypto.Digest64FromBytes(idBytes)
	if err != nil {
		return WriteOp{}, err
	}
	data, err := r.takeBytes()
	if err != nil {
		return WriteOp{}, err
	}
	expiresAt, err := r.takeU64()
	if err != nil {
		return WriteOp{}, err
	}
	return WriteOp{ID: id, Data: data, ExpiresAt: expiresAt}, nil
}

// DeleteOp removes a WriteOp's data before its natural expiry (spec
// §4.11 point 5).
type DeleteOp struct {
	WriteOpID crypto.Digest64
}

// Bytes encodes the referenced write-op id.
func (d DeleteOp) Bytes() []byte {
	out := make([]byte, 64)
	copy(out, d.WriteOpID[:])
	return out
}

// DeleteOpFromBytes decodes a 64-byte write-op id.
func DeleteOpFromBytes(b []byte) (DeleteOp, error) {
	id, err := crypto.Digest64FromBytes(b)
	if err != nil {
		return DeleteOp{}, err
	}
	return DeleteOp{WriteOpID: id}, nil
}
