package types

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

// Output carries an amount for a recipient, proved spendable later via a
// Schnorr proof against Witness, plus an optional ECIES-sealed payload
// (spec §3).
type Output struct {
	ID         crypto.Digest64
	Amount     Amount
	Witness    crypto.ZKPWitness
	Ciphertext []byte // optional
	Tag        []byte // optional
}

// ComputeOutputID derives id = sha512(amount_be || witness_bytes), per
// spec §4.9. amount_be is the raw Amount.Bytes() encoding, not the
// length-prefixed wire frame.
func ComputeOutputID(amount Amount, witness crypto.ZKPWitness) crypto.Digest64 {
	return crypto.HashSha512(amount.Bytes(), witness.Bytes())
}

// NewOutput builds an Output and computes its id.
func NewOutput(amount Amount, witness crypto.ZKPWitness, ciphertext, tag []byte) Output {
	return Output{
		ID:         ComputeOutputID(amount, witness),
		Amount:     amount,
		Witness:    witness,
		Ciphertext: ciphertext,
		Tag:        tag,
	}
}

// HasPayload reports whether this output carries sealed data.
func (o Output) HasPayload() bool {
	return len(o.Ciphertext) > 0 || len(o.Tag) > 0
}

// SealOutput encrypts payload for the recipient witness's generator/point pair
// using the sender's ephemeral secret, per spec §4.4/C6, and attaches the
// resulting ciphertext and tag to a fresh Output for amount.
func SealOutput(senderSK crypto.SecretKey, recipientPK crypto.PublicKey, amount Amount, payload []byte) (Output, error) {
	sealed, err := crypto.Seal(senderSK, recipientPK, payload)
	if err != nil {
		return Output{}, err
	}
	witness := crypto.ZKPWitness{G: recipientPK.G, W: recipientPK.PK}
	return NewOutput(amount, witness, sealed.Ciphertext, sealed.Tag), nil
}

// OpenOutput recovers the payload of an output sealed with SealOutput.
func OpenOutput(recipientSK crypto.SecretKey, senderPK crypto.PublicKey, o Output) ([]byte, error) {
	if !o.HasPayload() {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidCiphertext, "types: output carries no payload")
	}
	return crypto.Open(recipientSK, senderPK, crypto.Sealed{Ciphertext: o.Ciphertext, Tag: o.Tag})
}

// Bytes encodes the output as a field-ordered, length-prefixed frame:
// id(64) || amount(frame) || witness(64) || ciphertext(frame) || tag(frame).
func (o Output) Bytes() []byte {
	out := make([]byte, 0, 64+4+len(o.Amount.Bytes())+64+4+len(o.Ciphertext)+4+len(o.Tag))
	out = append(out, o.ID[:]...)
	out = append(out, o.Amount.Encode()...)
	out = append(out, o.Witness.Bytes()...)
	out = putBytes(out, o.Ciphertext)
	out = putBytes(out, o.Tag)
	return out
}

func decodeOutput(r *reader) (Output, error) {
	idBytes, err := r.takeN(64)
	if err != nil {
		return Output{}, err
	}
	id, err := crypto.Digest64FromBytes(idBytes)
	if err != nil {
		return Output{}, err
	}
	amount, err := decodeAmount(r)
	if err != nil {
		return Output{}, err
	}
	gBytes, err := r.takeN(32)
	if err != nil {
		return Output{}, err
	}
	g, err := crypto.PointFromBytes(gBytes)
	if err != nil {
		return Output{}, err
	}
	wBytes, err := r.takeN(32)
	if err != nil {
		return Output{}, err
	}
	w, err := crypto.PointFromBytes(wBytes)
	if err != nil {
		return Output{}, err
	}
	ciphertext, err := r.takeBytes()
	if err != nil {
		return Output{}, err
	}
	tag, err := r.takeBytes()
	if err != nil {
		return Output{}, err
	}
	return Output{
		ID:         id,
		Amount:     amount,
		Witness:    crypto.ZKPWitness{G: g, W: w},
		Ciphertext: ciphertext,
		Tag:        tag,
	}, nil
}

// OutputFromBytes decodes a single output frame produced by Bytes.
func OutputFromBytes(b []byte) (Output, error) {
	r := newReader(b)
	o, err := decodeOutput(r)
	if err != nil {
		return Output{}, err
	}
	if !r.done() {
		return Output{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: output: trailing bytes after frame")
	}
	return o, nil
}
