package epoch

import (
	"math"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// deltas holds a reward or penalty amount per validator index, indexed
// identically to BeaconState.Validators().
type deltas []uint64

func newDeltas(n int) deltas { return make(deltas, n) }

func (d deltas) add(i primitives.ValidatorIndex, amount uint64) {
	if amount > math.MaxUint64-d[i] {
		d[i] = math.MaxUint64
		return
	}
	d[i] += amount
}

// integerSquareRoot returns integer_squareroot(n): the largest integer
// whose square does not exceed n (spec §4.2, Newton's method as the
// original spec pseudocode itself uses).
func integerSquareRoot(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func totalActiveBalance(st *state.BeaconState) uint64 {
	return st.TotalBalance(helpers.ActiveValidatorIndices(st.Validators(), coretime.CurrentEpoch(st)))
}

func baseReward(st *state.BeaconState, index primitives.ValidatorIndex, totalActive uint64) (uint64, error) {
	v, err := st.ValidatorAtIndex(index)
	if err != nil {
		return 0, err
	}
	cfg := params.BeaconConfig()
	return v.EffectiveBalance * cfg.BaseRewardFactor / integerSquareRoot(totalActive) / cfg.BaseRewardsPerEpoch, nil
}

func proposerReward(st *state.BeaconState, index primitives.ValidatorIndex, totalActive uint64) (uint64, error) {
	base, err := baseReward(st, index, totalActive)
	if err != nil {
		return 0, err
	}
	return base / params.BeaconConfig().ProposerRewardQuotient, nil
}

// finalityDelay returns get_finality_delay(state): how many epochs have
// passed since the last finalized checkpoint, measured from the previous
// epoch.
func finalityDelay(st *state.BeaconState) uint64 {
	return uint64(coretime.PrevEpoch(st)) - uint64(st.FinalizedCheckpointEpoch())
}

// isInInactivityLeak reports is_in_inactivity_leak(state): finality has
// stalled long enough that non-participating validators start bleeding
// balance even outside slashing (spec §4.4).
func isInInactivityLeak(st *state.BeaconState) bool {
	return finalityDelay(st) > uint64(params.BeaconConfig().MinEpochsToInactivityPenalty)
}

// eligibleValidatorIndices returns get_eligible_validator_indices(state):
// active-at-previous-epoch validators, plus recently-slashed validators
// still short of their withdrawable epoch (spec §4.4).
func eligibleValidatorIndices(st *state.BeaconState) []primitives.ValidatorIndex {
	previousEpoch := coretime.PrevEpoch(st)
	var out []primitives.ValidatorIndex
	for i, v := range st.Validators() {
		if helpers.IsActiveValidator(v, previousEpoch) || (v.Slashed && uint64(previousEpoch)+1 < v.WithdrawableEpoch) {
			out = append(out, primitives.ValidatorIndex(i))
		}
	}
	return out
}

func matchingSourceAttestations(st *state.BeaconState, epoch primitives.Epoch) ([]*ethpb.PendingAttestation, error) {
	return epochAttestations(st, epoch)
}

func matchingHeadAttestations(st *state.BeaconState, epoch primitives.Epoch) ([]*ethpb.PendingAttestation, error) {
	targetAtts, err := matchingTargetAttestations(st, epoch)
	if err != nil {
		return nil, err
	}
	var out []*ethpb.PendingAttestation
	for _, a := range targetAtts {
		root, err := helpers.BlockRootAtSlot(st, primitives.Slot(a.Data.Slot))
		if err != nil {
			continue
		}
		if bytesEqual32(a.Data.BeaconBlockRoot, root) {
			out = append(out, a)
		}
	}
	return out, nil
}

// attestationComponentDeltas implements the shared shape of
// get_source_deltas / get_target_deltas / get_head_deltas (spec §4.4):
// reward every unslashed attester proportional to the component's
// attesting balance share (or a flat base reward during an inactivity
// leak), penalize every other eligible validator the base reward.
func attestationComponentDeltas(st *state.BeaconState, atts []*ethpb.PendingAttestation) (deltas, deltas, error) {
	n := st.NumValidators()
	rewards, penalties := newDeltas(n), newDeltas(n)

	totalActive := totalActiveBalance(st)
	attesting, err := unslashedAttestingIndices(st, atts)
	if err != nil {
		return nil, nil, err
	}
	attestingSet := make(map[primitives.ValidatorIndex]bool, len(attesting))
	for _, idx := range attesting {
		attestingSet[idx] = true
	}
	attestingBal := st.TotalBalance(attesting)
	increment := params.BeaconConfig().EffectiveBalanceIncrement
	leak := isInInactivityLeak(st)

	for _, idx := range eligibleValidatorIndices(st) {
		base, err := baseReward(st, idx, totalActive)
		if err != nil {
			return nil, nil, err
		}
		if attestingSet[idx] {
			if leak {
				rewards.add(idx, base)
			} else {
				rewards.add(idx, base*(attestingBal/increment)/(totalActive/increment))
			}
		} else {
			penalties.add(idx, base)
		}
	}
	return rewards, penalties, nil
}

// inclusionDelayDeltas implements get_inclusion_delay_deltas (spec §4.4):
// rewards the proposer who included the earliest qualifying source
// attestation for each attester, and the attester themselves, scaled down
// by how many slots late the inclusion was.
func inclusionDelayDeltas(st *state.BeaconState) (deltas, error) {
	n := st.NumValidators()
	rewards := newDeltas(n)

	previousEpoch := coretime.PrevEpoch(st)
	sourceAtts, err := matchingSourceAttestations(st, previousEpoch)
	if err != nil {
		return nil, err
	}
	totalActive := totalActiveBalance(st)

	earliest := make(map[primitives.ValidatorIndex]*ethpb.PendingAttestation)
	for _, a := range sourceAtts {
		committee, err := helpers.BeaconCommitteeFromState(st, primitives.Slot(a.Data.Slot), primitives.CommitteeIndex(a.Data.CommitteeIndex))
		if err != nil {
			return nil, err
		}
		indices, err := helpers.AttestingIndices(a.AggregationBits, committee)
		if err != nil {
			return nil, err
		}
		for _, raw := range indices {
			idx := primitives.ValidatorIndex(raw)
			v, err := st.ValidatorAtIndex(idx)
			if err != nil {
				return nil, err
			}
			if v.Slashed {
				continue
			}
			if cur, ok := earliest[idx]; !ok || a.InclusionDelay < cur.InclusionDelay {
				earliest[idx] = a
			}
		}
	}

	for idx, a := range earliest {
		base, err := baseReward(st, idx, totalActive)
		if err != nil {
			return nil, err
		}
		propReward, err := proposerReward(st, idx, totalActive)
		if err != nil {
			return nil, err
		}
		rewards.add(primitives.ValidatorIndex(a.ProposerIndex), propReward)
		maxAttesterReward := base - propReward
		if a.InclusionDelay > 0 {
			rewards.add(idx, maxAttesterReward/a.InclusionDelay)
		}
	}
	return rewards, nil
}

// inactivityPenaltyDeltas implements get_inactivity_penalty_deltas (spec
// §4.4): during an inactivity leak, every eligible validator pays the
// BASE_REWARDS_PER_EPOCH-multiplied base reward, plus an extra
// effective-balance-proportional penalty for anyone who didn't vote for
// the correct target.
func inactivityPenaltyDeltas(st *state.BeaconState) (deltas, error) {
	n := st.NumValidators()
	penalties := newDeltas(n)
	if !isInInactivityLeak(st) {
		return penalties, nil
	}

	cfg := params.BeaconConfig()
	totalActive := totalActiveBalance(st)
	previousEpoch := coretime.PrevEpoch(st)

	targetAtts, err := matchingTargetAttestations(st, previousEpoch)
	if err != nil {
		return nil, err
	}
	matching, err := unslashedAttestingIndices(st, targetAtts)
	if err != nil {
		return nil, err
	}
	matchingSet := make(map[primitives.ValidatorIndex]bool, len(matching))
	for _, idx := range matching {
		matchingSet[idx] = true
	}

	delay := finalityDelay(st)
	for _, idx := range eligibleValidatorIndices(st) {
		base, err := baseReward(st, idx, totalActive)
		if err != nil {
			return nil, err
		}
		penalties.add(idx, cfg.BaseRewardsPerEpoch*base)
		if !matchingSet[idx] {
			v, err := st.ValidatorAtIndex(idx)
			if err != nil {
				return nil, err
			}
			penalties.add(idx, v.EffectiveBalance*delay/cfg.InactivityPenaltyQuotient)
		}
	}
	return penalties, nil
}

// attestationDeltas implements get_attestation_deltas (spec §4.4): the sum
// of the source/target/head component deltas, the inclusion-delay reward,
// and the inactivity penalty.
func attestationDeltas(st *state.BeaconState) (deltas, deltas, error) {
	n := st.NumValidators()
	rewards, penalties := newDeltas(n), newDeltas(n)
	previousEpoch := coretime.PrevEpoch(st)

	sourceAtts, err := matchingSourceAttestations(st, previousEpoch)
	if err != nil {
		return nil, nil, err
	}
	sourceRewards, sourcePenalties, err := attestationComponentDeltas(st, sourceAtts)
	if err != nil {
		return nil, nil, err
	}
	targetAtts, err := matchingTargetAttestations(st, previousEpoch)
	if err != nil {
		return nil, nil, err
	}
	targetRewards, targetPenalties, err := attestationComponentDeltas(st, targetAtts)
	if err != nil {
		return nil, nil, err
	}
	headAtts, err := matchingHeadAttestations(st, previousEpoch)
	if err != nil {
		return nil, nil, err
	}
	headRewards, headPenalties, err := attestationComponentDeltas(st, headAtts)
	if err != nil {
		return nil, nil, err
	}
	inclusionRewards, err := inclusionDelayDeltas(st)
	if err != nil {
		return nil, nil, err
	}
	inactivityPenalties, err := inactivityPenaltyDeltas(st)
	if err != nil {
		return nil, nil, err
	}

	for i := 0; i < n; i++ {
		idx := primitives.ValidatorIndex(i)
		rewards.add(idx, sourceRewards[i])
		rewards.add(idx, targetRewards[i])
		rewards.add(idx, headRewards[i])
		rewards.add(idx, inclusionRewards[i])
		penalties.add(idx, sourcePenalties[i])
		penalties.add(idx, targetPenalties[i])
		penalties.add(idx, headPenalties[i])
		penalties.add(idx, inactivityPenalties[i])
	}
	return rewards, penalties, nil
}

// ProcessRewardsAndPenalties implements process_rewards_and_penalties
// (spec §4.4 step 2): a no-op at genesis (there is no previous epoch to
// account for), otherwise applies attestationDeltas to every balance.
func ProcessRewardsAndPenalties(st *state.BeaconState) error {
	if coretime.CurrentEpoch(st) == primitives.GenesisEpoch {
		return nil
	}
	rewards, penalties, err := attestationDeltas(st)
	if err != nil {
		return err
	}
	for i := 0; i < st.NumValidators(); i++ {
		idx := primitives.ValidatorIndex(i)
		if err := st.IncreaseBalance(idx, rewards[i]); err != nil {
			return err
		}
		if err := st.DecreaseBalance(idx, penalties[i]); err != nil {
			return err
		}
	}
	return nil
}
