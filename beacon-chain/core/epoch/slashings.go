package epoch

import (
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
)

// ProcessSlashings implements process_slashings (spec §4.4 step 4):
// validators halfway through their slashing-vector window pay a penalty
// proportional to the total slashed balance over the whole window,
// capped at the active balance (design note §9's saturating arithmetic
// extends here too: the penalty itself never exceeds the total).
func ProcessSlashings(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := coretime.CurrentEpoch(st)
	totalActive := totalActiveBalance(st)

	var totalSlashed uint64
	for _, s := range st.Slashings() {
		if s > ^uint64(0)-totalSlashed {
			totalSlashed = ^uint64(0)
			break
		}
		totalSlashed += s
	}
	adjusted := totalSlashed * cfg.ProportionalSlashingMultiplier
	if adjusted > totalActive {
		adjusted = totalActive
	}

	increment := cfg.EffectiveBalanceIncrement
	for i, v := range st.Validators() {
		if !v.Slashed {
			continue
		}
		if uint64(currentEpoch)+uint64(cfg.EpochsPerSlashingsVector)/2 != v.WithdrawableEpoch {
			continue
		}
		penalty := (v.EffectiveBalance / increment) * adjusted / totalActive * increment
		if err := st.DecreaseBalance(primitives.ValidatorIndex(i), penalty); err != nil {
			return err
		}
	}
	return nil
}
