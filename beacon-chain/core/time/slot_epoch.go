// Package time implements the state-aware epoch accessors of spec §4.2:
// get_current_epoch, get_previous_epoch, and the next epoch.
package time

import (
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/time/slots"
)

// StateSlotReader is the read-only contract every time-accessor needs.
type StateSlotReader interface {
	Slot() primitives.Slot
}

// CurrentEpoch returns get_current_epoch(state) = state.slot / SLOTS_PER_EPOCH.
func CurrentEpoch(st StateSlotReader) primitives.Epoch {
	return slots.ToEpoch(st.Slot())
}

// PrevEpoch returns get_previous_epoch(state) = max(current_epoch - 1, GENESIS_EPOCH).
func PrevEpoch(st StateSlotReader) primitives.Epoch {
	current := CurrentEpoch(st)
	if current == primitives.GenesisEpoch {
		return primitives.GenesisEpoch
	}
	return current - 1
}

// NextEpoch returns current_epoch + 1 (the epoch spec §4.4 step 5's final
// bookkeeping prepares). The epoch stages compute current_epoch + 1
// themselves and do not call it.
func NextEpoch(st StateSlotReader) primitives.Epoch {
	return CurrentEpoch(st) + 1
}
