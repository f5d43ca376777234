package types

import (
	"github.com/duskledger/corechain/pkg/apperrors"
)

// IssuanceSchedule caps the total amount a Coinbase transaction may mint
// at a given height, keyed by height rather than wall-clock time so
// replaying the chain from height 0 reproduces the same caps (spec §3:
// "outputs must satisfy an issuance schedule keyed by height/time").
type IssuanceSchedule func(height uint64) Amount

// Coinbase is a variant transaction with no inputs; its outputs mint new
// supply instead of spending existing UTXOs (spec §3).
type Coinbase struct {
	Transaction
	Height         uint64
	ActivationTime uint64 // unix seconds; zero means no activation gate
}

// CheckIssuance enforces that a Coinbase has no inputs, its total output
// amount does not exceed the schedule's cap for its height, and (if set)
// its activation time is in the past relative to now.
func (cb Coinbase) CheckIssuance(schedule IssuanceSchedule, now uint64) error {
	if len(cb.Inputs) != 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidLength, "types: coinbase transaction carries inputs")
	}
	if cb.ActivationTime != 0 && cb.ActivationTime > now {
		return apperrors.Wrapf(apperrors.ErrInvalidTime, "types: coinbase activation time is in the future")
	}
	maxIssuance := schedule(cb.Height)
	total, err := cb.TotalOutputAmount()
	if err != nil {
		return err
	}
	if total.Cmp(maxIssuance) > 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidAmount, "types: coinbase output total exceeds issuance cap")
	}
	return nil
}
