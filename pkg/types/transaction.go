package types

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

// Version is the three-component (major, minor, patch) version tag
// carried in every transaction, encoded as three big-endian u64s (24
// bytes total, spec §6).
type Version struct {
	Major, Minor, Patch uint64
}

// Bytes encodes the version as major(8) || minor(8) || patch(8).
func (v Version) Bytes() []byte {
	out := make([]byte, 0, 24)
	out = putU64(out, v.Major)
	out = putU64(out, v.Minor)
	out = putU64(out, v.Patch)
	return out
}

func decodeVersion(r *reader) (Version, error) {
	major, err := r.takeU64()
	if err != nil {
		return Version{}, err
	}
	minor, err := r.takeU64()
	if err != nil {
		return Version{}, err
	}
	patch, err := r.takeU64()
	if err != nil {
		return Version{}, err
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// PowParams bundles the Balloon-hash cost parameters and target bits a
// transaction was mined under (spec §6).
type PowParams struct {
	SCost      uint32
	TCost      uint32
	Delta      uint32
	TargetBits uint32
}

// Bytes encodes the four fields as big-endian u32s, in order.
func (p PowParams) Bytes() []byte {
	out := make([]byte, 0, 16)
	out = putU32(out, p.SCost)
	out = putU32(out, p.TCost)
	out = putU32(out, p.Delta)
	out = putU32(out, p.TargetBits)
	return out
}

func decodePowParams(r *reader) (PowParams, error) {
	sCost, err := r.takeU32()
	if err != nil {
		return PowParams{}, err
	}
	tCost, err := r.takeU32()
	if err != nil {
		return PowParams{}, err
	}
	delta, err := r.takeU32()
	if err != nil {
		return PowParams{}, err
	}
	bits, err := r.takeU32()
	if err != nil {
		return PowParams{}, err
	}
	return PowParams{SCost: sCost, TCost: tCost, Delta: delta, TargetBits: bits}, nil
}

// Transaction bundles inputs and outputs plus the PoW nonce and
// parameters that gate its acceptance (spec §3).
type Transaction struct {
	Version   Version
	Timestamp uint64
	Inputs    []Input
	Outputs   []Output
	Fee       Output
	PowNonce  uint32
	PowParams PowParams
}

// CanonicalPreimage encodes the fields in the fixed order spec §4.9
// requires for Transaction.id: version, timestamp, inputs, outputs, fee,
// pow_params. Arrays are length-prefixed (u32 count) before their
// encoded items; pow_nonce is deliberately excluded, matching the
// original source, where the id commits to the mining parameters but not
// the nonce that satisfies them.
func (tx Transaction) CanonicalPreimage() []byte {
	out := make([]byte, 0, 256)
	out = append(out, tx.Version.Bytes()...)
	out = putU64(out, tx.Timestamp)

	inputFrames := make([][]byte, len(tx.Inputs))
	for i, in := range tx.Inputs {
		inputFrames[i] = in.Bytes()
	}
	out = putArray(out, inputFrames)

	outputFrames := make([][]byte, len(tx.Outputs))
	for i, o := range tx.Outputs {
		outputFrames[i] = o.Bytes()
	}
	out = putArray(out, outputFrames)

	out = append(out, tx.Fee.Bytes()...)
	out = append(out, tx.PowParams.Bytes()...)
	return out
}

// ID computes sha512(canonical(...)), per spec §4.9.
func (tx Transaction) ID() crypto.Digest64 {
	return crypto.HashSha512(tx.CanonicalPreimage())
}

// IsCoinbase reports whether this transaction has no inputs, the
// structural marker of a Coinbase variant (spec §3).
func (tx Transaction) IsCoinbase() bool {
	return len(tx.Inputs) == 0
}

// TotalOutputAmount sums every non-fee output amount plus the fee,
// failing if the sum overflows the 256-bit Amount range.
func (tx Transaction) TotalOutputAmount() (Amount, error) {
	total := tx.Fee.Amount
	for _, o := range tx.Outputs {
		var err error
		total, err = total.Add(o.Amount)
		if err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}

// DuplicateInputs reports the first outpoint referenced by more than one
// input, per spec §4.9 step 4.
func (tx Transaction) DuplicateInputs() (Outpoint, bool) {
	seen := make(map[Outpoint]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		op := in.Outpoint()
		if _, ok := seen[op]; ok {
			return op, true
		}
		seen[op] = struct{}{}
	}
	return Outpoint{}, false
}

// CheckStructural validates the structural properties of spec §4.9 step
// 1: non-empty inputs for a non-coinbase transaction, non-empty outputs,
// and that referenced-input amounts balance against outputs plus fee.
// inputAmounts supplies the amount of the output each input references,
// in the same order as tx.Inputs, since a Transaction alone cannot look
// up its own inputs' sources.
func (tx Transaction) CheckStructural(inputAmounts []Amount) error {
	if !tx.IsCoinbase() && len(tx.Inputs) == 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidLength, "types: non-coinbase transaction has no inputs")
	}
	if len(tx.Outputs) == 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidLength, "types: transaction has no outputs")
	}
	if len(inputAmounts) != len(tx.Inputs) {
		return apperrors.Wrapf(apperrors.ErrInvalidLength, "types: input amount count mismatch")
	}
	total := ZeroAmount()
	for _, a := range inputAmounts {
		var err error
		total, err = total.Add(a)
		if err != nil {
			return err
		}
	}
	required, err := tx.TotalOutputAmount()
	if err != nil {
		return err
	}
	if total.Cmp(required) < 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidAmount, "types: inputs do not cover outputs plus fee")
	}
	return nil
}
