package types

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

// UTXO is a projection of an unspent output: its identity, owner, and
// amount, without the witness/ciphertext payload the full Output carries
// (spec §3).
type UTXO struct {
	TxID      crypto.Digest64
	OutIndex  uint32
	Recipient crypto.PublicKey
	Amount    Amount
}

// Outpoint returns the (tx_id, out_index) pair this UTXO occupies.
func (u UTXO) Outpoint() Outpoint {
	return NewOutpoint(u.TxID, u.OutIndex)
}

// Bytes encodes id(64) || idx(u32) || recipient(64) || amount_len(u32) ||
// amount_bytes, per spec §6.
func (u UTXO) Bytes() []byte {
	out := make([]byte, 0, 64+4+64+4+len(u.Amount.Bytes()))
	out = append(out, u.TxID[:]...)
	out = putU32(out, u.OutIndex)
	out = append(out, u.Recipient.Bytes()...)
	out = putBytes(out, u.Amount.Bytes())
	return out
}

// UTXOFromBytes decodes the frame produced by Bytes.
func UTXOFromBytes(b []byte) (UTXO, error) {
	r := newReader(b)
	txIDBytes, err := r.takeN(64)
	if err != nil {
		return UTXO{}, err
	}
	txID, err := crypto.Digest64FromBytes(txIDBytes)
	if err != nil {
		return UTXO{}, err
	}
	outIndex, err := r.takeU32()
	if err != nil {
		return UTXO{}, err
	}
	recipientBytes, err := r.takeN(64)
	if err != nil {
		return UTXO{}, err
	}
	recipient, err := crypto.PublicKeyFromBytes(recipientBytes)
	if err != nil {
		return UTXO{}, err
	}
	amountBytes, err := r.takeBytes()
	if err != nil {
		return UTXO{}, err
	}
	amount, err := AmountFromBytes(amountBytes)
	if err != nil {
		return UTXO{}, err
	}
	if !r.done() {
		return UTXO{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: utxo: trailing bytes after frame")
	}
	return UTXO{TxID: txID, OutIndex: outIndex, Recipient: recipient, Amount: amount}, nil
}
