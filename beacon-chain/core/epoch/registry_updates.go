package epoch

import (
	"sort"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/validators"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

func isEligibleForActivationQueue(v *ethpb.Validator) bool {
	cfg := params.BeaconConfig()
	return v.ActivationEligibilityEpoch == uint64(cfg.FarFutureEpoch) && v.EffectiveBalance == cfg.MaxEffectiveBalance
}

func isEligibleForActivation(st *state.BeaconState, v *ethpb.Validator) bool {
	cfg := params.BeaconConfig()
	return v.ActivationEligibilityEpoch <= uint64(st.FinalizedCheckpointEpoch()) && v.ActivationEpoch == uint64(cfg.FarFutureEpoch)
}

// ProcessRegistryUpdates implements process_registry_updates (spec §4.4
// step 3): queues newly-eligible validators for activation, ejects anyone
// whose effective balance fell to or below EJECTION_BALANCE, then admits
// the churn-limited front of the activation queue (ordered by eligibility
// epoch, ties broken by index).
func ProcessRegistryUpdates(st *state.BeaconState) error {
	currentEpoch := coretime.CurrentEpoch(st)
	cfg := params.BeaconConfig()

	for i, v := range st.Validators() {
		idx := primitives.ValidatorIndex(i)
		if isEligibleForActivationQueue(v) {
			cpy := v.Clone()
			cpy.ActivationEligibilityEpoch = uint64(currentEpoch) + 1
			if err := st.UpdateValidatorAtIndex(idx, cpy); err != nil {
				return err
			}
			v = cpy
		}
		if helpers.IsActiveValidator(v, currentEpoch) && v.EffectiveBalance <= cfg.EjectionBalance {
			if err := validators.InitiateValidatorExit(st, idx); err != nil {
				return err
			}
		}
	}

	var queue []primitives.ValidatorIndex
	for i, v := range st.Validators() {
		if isEligibleForActivation(st, v) {
			queue = append(queue, primitives.ValidatorIndex(i))
		}
	}
	sort.Slice(queue, func(i, j int) bool {
		vi, _ := st.ValidatorAtIndex(queue[i])
		vj, _ := st.ValidatorAtIndex(queue[j])
		if vi.ActivationEligibilityEpoch != vj.ActivationEligibilityEpoch {
			return vi.ActivationEligibilityEpoch < vj.ActivationEligibilityEpoch
		}
		return queue[i] < queue[j]
	})

	churnLimit := validators.ChurnLimit(st)
	if uint64(len(queue)) > churnLimit {
		queue = queue[:churnLimit]
	}
	exitEpoch := helpers.ComputeActivationExitEpoch(currentEpoch)
	for _, idx := range queue {
		v, err := st.ValidatorAtIndex(idx)
		if err != nil {
			return err
		}
		cpy := v.Clone()
		cpy.ActivationEpoch = uint64(exitEpoch)
		if err := st.UpdateValidatorAtIndex(idx, cpy); err != nil {
			return err
		}
	}
	return nil
}
