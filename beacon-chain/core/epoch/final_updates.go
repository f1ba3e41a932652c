package epoch

import (
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessFinalUpdates implements process_final_updates (spec §4.4 step 5):
// resets the eth1 vote window at its boundary, applies effective-balance
// hysteresis, rotates the slashings/randao-mix/historical-roots vectors
// into next_epoch's slot, and rolls current_epoch_attestations down into
// previous_epoch_attestations.
func ProcessFinalUpdates(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := coretime.CurrentEpoch(st)
	nextEpoch := currentEpoch + 1

	if (uint64(st.Slot())+1)%uint64(cfg.SlotsPerEth1VotingPeriod) == 0 {
		if err := st.SetEth1DataVotes(nil); err != nil {
			return err
		}
	}

	hysteresisIncrement := cfg.EffectiveBalanceIncrement / cfg.HysteresisQuotient
	downwardThreshold := hysteresisIncrement * cfg.HysteresisDownwardMultiplier
	upwardThreshold := hysteresisIncrement * cfg.HysteresisUpwardMultiplier
	for i, v := range st.Validators() {
		balance, err := st.BalanceAtIndex(primitives.ValidatorIndex(i))
		if err != nil {
			return err
		}
		if balance+downwardThreshold < v.EffectiveBalance || v.EffectiveBalance+upwardThreshold < balance {
			cpy := v.Clone()
			effective := balance - balance%cfg.EffectiveBalanceIncrement
			if effective > cfg.MaxEffectiveBalance {
				effective = cfg.MaxEffectiveBalance
			}
			cpy.EffectiveBalance = effective
			if err := st.UpdateValidatorAtIndex(primitives.ValidatorIndex(i), cpy); err != nil {
				return err
			}
		}
	}

	if err := st.UpdateSlashingAtIndex(uint64(nextEpoch)%uint64(cfg.EpochsPerSlashingsVector), 0); err != nil {
		return err
	}

	currentMix, err := st.RandaoMixAtIndex(uint64(currentEpoch) % uint64(cfg.EpochsPerHistoricalVector))
	if err != nil {
		return err
	}
	var mix [32]byte
	copy(mix[:], currentMix)
	if err := st.UpdateRandaoMixAtIndex(uint64(nextEpoch)%uint64(cfg.EpochsPerHistoricalVector), mix); err != nil {
		return err
	}

	if uint64(nextEpoch)%(uint64(cfg.SlotsPerHistoricalRoot)/uint64(cfg.SlotsPerEpoch)) == 0 {
		batch := &ethpb.HistoricalBatch{BlockRoots: st.BlockRoots(), StateRoots: st.StateRoots()}
		root, err := szz.HashTreeRoot(batch)
		if err != nil {
			return txerrors.Wrap(txerrors.SszTypesError, err, "process_final_updates: hash_tree_root(historical_batch)")
		}
		if err := st.AppendHistoricalRoot(root); err != nil {
			return err
		}
	}

	currentAtts, err := st.CurrentEpochAttestations()
	if err != nil {
		return err
	}
	if err := st.SetPreviousEpochAttestations(currentAtts); err != nil {
		return err
	}
	return st.SetCurrentEpochAttestations(nil)
}
