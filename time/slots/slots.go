// Package slots implements pure slot/epoch arithmetic over
// consensus-types/primitives, independent of any BeaconState (spec §4.2's
// get_current_epoch/get_previous_epoch formulas, generalized to free
// functions the way the teacher's time/slots package does).
package slots

import (
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ToEpoch returns slot / SLOTS_PER_EPOCH (spec §4.2 get_current_epoch).
func ToEpoch(slot primitives.Slot) primitives.Epoch {
	return primitives.Epoch(slot / params.BeaconConfig().SlotsPerEpoch)
}

// EpochStart returns the first slot of epoch, erroring on overflow past
// the realistic-horizon bound design note §9 calls out.
func EpochStart(epoch primitives.Epoch) (primitives.Slot, error) {
	slotsPerEpoch := params.BeaconConfig().SlotsPerEpoch
	startSlot, err := primitives.Slot(epoch).SafeMul(uint64(slotsPerEpoch))
	if err != nil {
		return 0, txerrors.Wrap(txerrors.EpochOutOfBounds, err, "epoch start slot overflow")
	}
	return startSlot, nil
}

// IsEpochStart reports whether slot is the first slot of its epoch.
func IsEpochStart(slot primitives.Slot) bool {
	return slot%params.BeaconConfig().SlotsPerEpoch == 0
}

// IsEpochEnd reports whether slot is the last slot of its epoch — the
// condition process_slots checks before invoking process_epoch (spec §4.3
// step 2: "(state.slot + 1) mod SLOTS_PER_EPOCH == 0").
func IsEpochEnd(slot primitives.Slot) bool {
	return IsEpochStart(slot + 1)
}
