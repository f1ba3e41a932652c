package state

import (
	"math"

	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// Validators returns the full validator registry. Callers must not mutate
// entries in place; use UpdateValidatorAtIndex.
func (b *BeaconState) Validators() []*ethpb.Validator { return b.state.Validators }

// NumValidators returns len(Validators()).
func (b *BeaconState) NumValidators() int { return len(b.state.Validators) }

// Balances returns the parallel balance list (spec §8 invariant 2:
// len(validators) == len(balances) always).
func (b *BeaconState) Balances() []uint64 { return b.state.Balances }

// ValidatorAtIndex returns validators[i].
func (b *BeaconState) ValidatorAtIndex(i primitives.ValidatorIndex) (*ethpb.Validator, error) {
	if uint64(i) >= uint64(len(b.state.Validators)) {
		return nil, txerrors.New(txerrors.UnknownValidator, "validator index %d out of range %d", i, len(b.state.Validators))
	}
	return b.state.Validators[i], nil
}

// BalanceAtIndex returns balances[i].
func (b *BeaconState) BalanceAtIndex(i primitives.ValidatorIndex) (uint64, error) {
	if uint64(i) >= uint64(len(b.state.Balances)) {
		return 0, txerrors.New(txerrors.UnknownValidator, "balance index %d out of range %d", i, len(b.state.Balances))
	}
	return b.state.Balances[i], nil
}

// UpdateValidatorAtIndex overwrites validators[i].
func (b *BeaconState) UpdateValidatorAtIndex(i primitives.ValidatorIndex, v *ethpb.Validator) error {
	if uint64(i) >= uint64(len(b.state.Validators)) {
		return txerrors.New(txerrors.UnknownValidator, "validator index %d out of range %d", i, len(b.state.Validators))
	}
	b.state.Validators[i] = v
	return nil
}

// UpdateBalanceAtIndex overwrites balances[i].
func (b *BeaconState) UpdateBalanceAtIndex(i primitives.ValidatorIndex, balance uint64) error {
	if uint64(i) >= uint64(len(b.state.Balances)) {
		return txerrors.New(txerrors.UnknownValidator, "balance index %d out of range %d", i, len(b.state.Balances))
	}
	b.state.Balances[i] = balance
	return nil
}

// IncreaseBalance adds delta to balances[i], saturating at math.MaxUint64
// (design note §9: "all balance arithmetic is unsigned 64-bit with
// saturating semantics").
func (b *BeaconState) IncreaseBalance(i primitives.ValidatorIndex, delta uint64) error {
	bal, err := b.BalanceAtIndex(i)
	if err != nil {
		return err
	}
	if bal > math.MaxUint64-delta {
		return b.UpdateBalanceAtIndex(i, math.MaxUint64)
	}
	return b.UpdateBalanceAtIndex(i, bal+delta)
}

// DecreaseBalance subtracts delta from balances[i], clamping to zero on
// underflow (design note §9: "underflow clamps to zero").
func (b *BeaconState) DecreaseBalance(i primitives.ValidatorIndex, delta uint64) error {
	bal, err := b.BalanceAtIndex(i)
	if err != nil {
		return err
	}
	if delta > bal {
		return b.UpdateBalanceAtIndex(i, 0)
	}
	return b.UpdateBalanceAtIndex(i, bal-delta)
}

// AppendValidator appends a new validator/balance pair, keeping the two
// lists parallel (spec §8 invariant 2).
func (b *BeaconState) AppendValidator(v *ethpb.Validator, balance uint64) error {
	b.state.Validators = append(b.state.Validators, v)
	b.state.Balances = append(b.state.Balances, balance)
	return nil
}

// Slashings returns the slashed-balance accounting vector (spec §3).
func (b *BeaconState) Slashings() []uint64 { return b.state.Slashings }

// SlashingAtIndex returns slashings[i].
func (b *BeaconState) SlashingAtIndex(i uint64) (uint64, error) {
	if i >= uint64(len(b.state.Slashings)) {
		return 0, txerrors.New(txerrors.EpochOutOfBounds, "slashings index %d out of range %d", i, len(b.state.Slashings))
	}
	return b.state.Slashings[i], nil
}

// UpdateSlashingAtIndex overwrites slashings[i].
func (b *BeaconState) UpdateSlashingAtIndex(i uint64, amount uint64) error {
	if i >= uint64(len(b.state.Slashings)) {
		return txerrors.New(txerrors.EpochOutOfBounds, "slashings index %d out of range %d", i, len(b.state.Slashings))
	}
	b.state.Slashings[i] = amount
	return nil
}

// TotalBalance sums balances over the given index set, used by the
// justification/rewards/slashings epoch-processing stages.
func (b *BeaconState) TotalBalance(indices []primitives.ValidatorIndex) uint64 {
	var total uint64
	for _, idx := range indices {
		bal, err := b.BalanceAtIndex(idx)
		if err != nil {
			continue
		}
		if total > math.MaxUint64-bal {
			total = math.MaxUint64
			continue
		}
		total += bal
	}
	return total
}
