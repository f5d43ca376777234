package types

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

// Input references a previously created output and carries a Schnorr
// proof witnessing knowledge of the recipient's private scalar, in lieu
// of a signature (spec §3).
type Input struct {
	PrevTxID crypto.Digest64
	OutIndex uint32
	Proof    crypto.ZKPProof
}

// Outpoint returns the (tx_id, out_index) pair this input spends.
func (in Input) Outpoint() Outpoint {
	return NewOutpoint(in.PrevTxID, in.OutIndex)
}

// Bytes encodes tx_id(64) || out_index(u32 BE) || proof(4x32 in order
// w,t,c,r), per spec §6. Only the witness point w is encoded, not its
// generator — the generator is recovered from the referenced output at
// verification time.
func (in Input) Bytes() []byte {
	out := make([]byte, 0, 64+4+4*32)
	out = append(out, in.PrevTxID[:]...)
	out = putU32(out, in.OutIndex)
	out = append(out, in.Proof.W.W.Bytes()...)
	out = append(out, in.Proof.T.Bytes()...)
	out = append(out, in.Proof.C.Bytes()...)
	out = append(out, in.Proof.R.Bytes()...)
	return out
}

// InputFromBytes decodes the frame produced by Bytes. The decoded proof's
// witness generator is set to the curve's canonical generator as a
// placeholder, since the wire encoding never carries it; Transaction.Verify
// rebinds it to the referenced output's actual generator before checking
// the proof, so a decoded Input is only safe to check via Verify, never by
// calling Proof.VerifyAgainst directly on the un-rebound value.
func InputFromBytes(b []byte) (Input, error) {
	if len(b) != 64+4+4*32 {
		return Input{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "types: input: want %d bytes, got %d", 64+4+4*32, len(b))
	}
	r := newReader(b)
	txIDBytes, err := r.takeN(64)
	if err != nil {
		return Input{}, err
	}
	txID, err := crypto.Digest64FromBytes(txIDBytes)
	if err != nil {
		return Input{}, err
	}
	outIndex, err := r.takeU32()
	if err != nil {
		return Input{}, err
	}
	wBytes, err := r.takeN(32)
	if err != nil {
		return Input{}, err
	}
	w, err := crypto.PointFromBytes(wBytes)
	if err != nil {
		return Input{}, err
	}
	tBytes, err := r.takeN(32)
	if err != nil {
		return Input{}, err
	}
	t, err := crypto.PointFromBytes(tBytes)
	if err != nil {
		return Input{}, err
	}
	cBytes, err := r.takeN(32)
	if err != nil {
		return Input{}, err
	}
	c, err := crypto.ScalarFromBytes(cBytes)
	if err != nil {
		return Input{}, err
	}
	rBytes, err := r.takeN(32)
	if err != nil {
		return Input{}, err
	}
	rs, err := crypto.ScalarFromBytes(rBytes)
	if err != nil {
		return Input{}, err
	}
	return Input{
		PrevTxID: txID,
		OutIndex: outIndex,
		Proof: crypto.ZKPProof{
			W: crypto.ZKPWitness{G: crypto.GeneratorPoint(), W: w},
			T: t,
			C: c,
			R: rs,
		},
	}, nil
}
