package epoch

import (
	"github.com/sirupsen/logrus"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
)

var log = logrus.WithField("prefix", "epoch")

// ProcessEpoch implements process_epoch (spec §4.4): the five stages run
// in the order the spec fixes, each depending on the one before it having
// already run (justification before rewards, rewards before slashings'
// total-active-balance snapshot, registry updates before slashings
// evaluates withdrawable_epoch, final updates last).
func ProcessEpoch(st *state.BeaconState) error {
	if err := ProcessJustificationAndFinalization(st); err != nil {
		return err
	}
	if err := ProcessRewardsAndPenalties(st); err != nil {
		return err
	}
	if err := ProcessRegistryUpdates(st); err != nil {
		return err
	}
	if err := ProcessSlashings(st); err != nil {
		return err
	}
	if err := ProcessFinalUpdates(st); err != nil {
		return err
	}

	log.WithField("epoch", time.CurrentEpoch(st)).Debug("processed epoch")
	return nil
}
