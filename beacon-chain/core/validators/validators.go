// Package validators implements the registry-mutation operations spec §4.1
// groups with the predicates: initiate_validator_exit and slash_validator.
// Both are shared by block-level slashing/exit processing (spec §4.5) and
// epoch-boundary registry updates (spec §4.4), so they live outside the
// blocks and epoch packages rather than being duplicated in each.
package validators

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
)

// NoWhistleblower tells SlashValidator to credit the reward the
// whistleblower would normally receive to the block proposer instead,
// matching phase 0's proposer/attester slashing processing, neither of
// which names a distinct whistleblower.
const NoWhistleblower = primitives.ValidatorIndex(^uint64(0))

// ChurnLimit returns get_validator_churn_limit(state): the active set size
// divided by CHURN_LIMIT_QUOTIENT, floored at MIN_PER_EPOCH_CHURN_LIMIT
// (spec §4.2).
func ChurnLimit(st *state.BeaconState) uint64 {
	cfg := params.BeaconConfig()
	active := helpers.ActiveValidatorIndices(st.Validators(), coretime.CurrentEpoch(st))
	limit := uint64(len(active)) / cfg.ChurnLimitQuotient
	if limit < cfg.MinPerEpochChurnLimit {
		limit = cfg.MinPerEpochChurnLimit
	}
	return limit
}

// InitiateValidatorExit implements initiate_validator_exit(state, index)
// (spec §4.1): no-op if the validator is already exiting, otherwise assigns
// the earliest exit epoch the current churn queue allows.
func InitiateValidatorExit(st *state.BeaconState, index primitives.ValidatorIndex) error {
	v, err := st.ValidatorAtIndex(index)
	if err != nil {
		return err
	}
	if v.ExitEpoch != uint64(params.BeaconConfig().FarFutureEpoch) {
		return nil
	}

	currentEpoch := coretime.CurrentEpoch(st)
	exitQueueEpoch := helpers.ComputeActivationExitEpoch(currentEpoch)
	for _, other := range st.Validators() {
		if other.ExitEpoch != uint64(params.BeaconConfig().FarFutureEpoch) && other.ExitEpoch > uint64(exitQueueEpoch) {
			exitQueueEpoch = primitives.Epoch(other.ExitEpoch)
		}
	}

	exitQueueChurn := uint64(0)
	for _, other := range st.Validators() {
		if other.ExitEpoch == uint64(exitQueueEpoch) {
			exitQueueChurn++
		}
	}
	if exitQueueChurn >= ChurnLimit(st) {
		exitQueueEpoch++
	}

	cpy := v.Clone()
	cpy.ExitEpoch = uint64(exitQueueEpoch)
	cpy.WithdrawableEpoch = uint64(exitQueueEpoch) + uint64(params.BeaconConfig().MinValidatorWithdrawabilityDelay)
	return st.UpdateValidatorAtIndex(index, cpy)
}

// SlashValidator implements slash_validator(state, slashed_index,
// whistleblower_index) (spec §4.1/§4.5): marks the validator slashed,
// schedules its exit and withdrawal, folds its effective balance into the
// slashings accounting vector, and pays the proposer/whistleblower reward
// split. whistleblowerIndex of -1 means "use the block proposer", matching
// both call sites (proposer/attester slashing processing never name a
// distinct whistleblower in phase 0).
func SlashValidator(st *state.BeaconState, slashedIndex primitives.ValidatorIndex, whistleblowerIndex primitives.ValidatorIndex) error {
	cfg := params.BeaconConfig()
	currentEpoch := coretime.CurrentEpoch(st)

	if err := InitiateValidatorExit(st, slashedIndex); err != nil {
		return err
	}

	v, err := st.ValidatorAtIndex(slashedIndex)
	if err != nil {
		return err
	}
	cpy := v.Clone()
	cpy.Slashed = true
	withdrawableAt := uint64(currentEpoch) + uint64(cfg.EpochsPerSlashingsVector)
	if withdrawableAt > cpy.WithdrawableEpoch {
		cpy.WithdrawableEpoch = withdrawableAt
	}
	if err := st.UpdateValidatorAtIndex(slashedIndex, cpy); err != nil {
		return err
	}

	slashingsIndex := uint64(currentEpoch) % uint64(cfg.EpochsPerSlashingsVector)
	existing, err := st.SlashingAtIndex(slashingsIndex)
	if err != nil {
		return err
	}
	if existing > ^uint64(0)-cpy.EffectiveBalance {
		existing = ^uint64(0)
	} else {
		existing += cpy.EffectiveBalance
	}
	if err := st.UpdateSlashingAtIndex(slashingsIndex, existing); err != nil {
		return err
	}

	if err := st.DecreaseBalance(slashedIndex, cpy.EffectiveBalance/cfg.MinSlashingPenaltyQuotient); err != nil {
		return err
	}

	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	if whistleblowerIndex == NoWhistleblower {
		whistleblowerIndex = proposerIndex
	}

	whistleblowerReward := cpy.EffectiveBalance / cfg.WhistleBlowerRewardQuotient
	proposerReward := whistleblowerReward / cfg.ProposerRewardQuotient
	if err := st.IncreaseBalance(proposerIndex, proposerReward); err != nil {
		return err
	}
	return st.IncreaseBalance(whistleblowerIndex, whistleblowerReward-proposerReward)
}
