package types

import "github.com/duskledger/corechain/pkg/crypto"

// Outpoint identifies an output uniquely as (tx_id, output_index). The
// original source inlines this pair everywhere (models/outpoint/mod.rs
// aside); this repo promotes it to a first-class, comparable value type
// so it can be used directly as a map/store key without changing any
// wire format — Input and UTXO still encode the two fields inline.
type Outpoint struct {
	TxID     crypto.Digest64
	OutIndex uint32
}

// NewOutpoint builds an Outpoint from its parts.
func NewOutpoint(txID crypto.Digest64, outIndex uint32) Outpoint {
	return Outpoint{TxID: txID, OutIndex: outIndex}
}

// Bytes encodes tx_id(64) || out_index(u32 BE), the same layout Input and
// UTXO inline; used as a store key by pkg/node's UTXO namespaces.
func (o Outpoint) Bytes() []byte {
	out := make([]byte, 0, 68)
	out = append(out, o.TxID[:]...)
	return putU32(out, o.OutIndex)
}
