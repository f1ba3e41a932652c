// Package transition implements the top-level orchestration of spec §4:
// process_slot, process_slots, process_block, and the state_transition
// entry point that ties them together (spec §4.6).
package transition

import (
	"github.com/sirupsen/logrus"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/epoch"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	"github.com/sigmaprime/beacon-core/time/slots"
	"github.com/sigmaprime/beacon-core/txerrors"
)

var log = logrus.WithField("prefix", "transition")

// ProcessSlot implements process_slot (spec §4.3): caches the pre-slot
// state root into state_roots[slot mod N], then copies the latest block
// header's state_root forward once, filling it the first time a block
// closes it out. Finally caches the new latest-block-header root (post
// this slot's processing) into block_roots.
func ProcessSlot(st *state.BeaconState) error {
	previousRoot, err := st.HashTreeRoot()
	if err != nil {
		return err
	}
	slotIndex := uint64(st.Slot()) % uint64(params.BeaconConfig().SlotsPerHistoricalRoot)
	if err := st.UpdateStateRootAtIndex(slotIndex, previousRoot); err != nil {
		return err
	}

	latest := st.LatestBlockHeader()
	if isZeroRoot(latest.StateRoot) {
		cpy := latest.Clone()
		cpy.StateRoot = previousRoot[:]
		if err := st.SetLatestBlockHeader(cpy); err != nil {
			return err
		}
	}

	headerRoot, err := szz.HashTreeRoot(st.LatestBlockHeader())
	if err != nil {
		return txerrors.Wrap(txerrors.SszTypesError, err, "process_slot: hash_tree_root(latest_block_header)")
	}
	return st.UpdateBlockRootAtIndex(slotIndex, headerRoot)
}

// ProcessSlots implements process_slots (spec §4.3): advances the state
// from its current slot to targetSlot, running process_slot for every slot
// from the current one up to (but not including) targetSlot and
// process_epoch at every epoch boundary crossed along the way.
func ProcessSlots(st *state.BeaconState, targetSlot primitives.Slot) error {
	if st.Slot() >= targetSlot {
		return txerrors.New(txerrors.BadBlockSlot, "process_slots: target slot %d is not ahead of state slot %d", targetSlot, st.Slot())
	}

	for st.Slot() < targetSlot {
		if err := ProcessSlot(st); err != nil {
			return err
		}
		nextSlot := st.Slot() + 1
		if slots.IsEpochEnd(st.Slot()) {
			if err := epoch.ProcessEpoch(st); err != nil {
				return err
			}
		}
		if err := st.SetSlot(nextSlot); err != nil {
			return err
		}
	}
	log.WithField("slot", st.Slot()).Debug("advanced state to slot")
	return nil
}

func isZeroRoot(root []byte) bool {
	for _, b := range root {
		if b != 0 {
			return false
		}
	}
	return true
}
