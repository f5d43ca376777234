package types

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

// OutputResolver looks up the output an Input references, by outpoint.
// pkg/node supplies the store-backed implementation; this package stays
// independent of any storage concern.
type OutputResolver interface {
	ResolveOutput(op Outpoint) (Output, bool)
}

// Verify runs the transaction verification pipeline of spec §4.9 in
// order, short-circuiting on the first failure: (1) structural, (2)
// every input's proof against its referenced output's witness, (3) PoW,
// (4) no duplicate inputs.
func (tx Transaction) Verify(resolver OutputResolver) error {
	inputAmounts := make([]Amount, len(tx.Inputs))
	referenced := make([]Output, len(tx.Inputs))
	for i, in := range tx.Inputs {
		out, ok := resolver.ResolveOutput(in.Outpoint())
		if !ok {
			return apperrors.Wrapf(apperrors.ErrNotFound, "types: input references unknown output")
		}
		referenced[i] = out
		inputAmounts[i] = out.Amount
	}

	if err := tx.CheckStructural(inputAmounts); err != nil {
		return err
	}

	for i, in := range tx.Inputs {
		// InputFromBytes cannot recover the referenced output's generator
		// from the wire encoding alone (spec §6 only carries the witness
		// point w, not g); rebind it here from the output this input
		// actually spends before checking the proof against it.
		proof := in.Proof
		proof.W.G = referenced[i].Witness.G
		if !proof.VerifyAgainst(referenced[i].Witness) {
			return apperrors.Wrapf(apperrors.ErrInvalidProof, "types: input %d proof does not verify against referenced output", i)
		}
	}

	seed := crypto.HashSha512(tx.CanonicalPreimage())
	ok, err := crypto.VerifyPoW(tx.PowParams.TargetBits, seed, tx.PowNonce, tx.PowParams.SCost, tx.PowParams.TCost, tx.PowParams.Delta)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Wrapf(apperrors.ErrInvalidBits, "types: proof of work does not meet target")
	}

	if _, dup := tx.DuplicateInputs(); dup {
		return apperrors.Wrapf(apperrors.ErrDuplicatedElements, "types: duplicate input in transaction")
	}

	return nil
}
