package helpers

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/time/slots"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// BlockRootAtSlot returns get_block_root_at_slot(state, slot): the cached
// root at block_roots[slot mod SLOTS_PER_HISTORICAL_ROOT], rejecting reads
// that fall outside the ring buffer's retained window (spec §4.2).
func BlockRootAtSlot(st *state.BeaconState, slot primitives.Slot) ([32]byte, error) {
	cfg := params.BeaconConfig()
	if slot >= st.Slot() || uint64(st.Slot())-uint64(slot) > uint64(cfg.SlotsPerHistoricalRoot) {
		return [32]byte{}, txerrors.New(txerrors.SlotOutOfBounds, "get_block_root_at_slot: slot %d not within the retained window of state slot %d", slot, st.Slot())
	}
	raw, err := st.BlockRootAtIndex(uint64(slot) % uint64(cfg.SlotsPerHistoricalRoot))
	if err != nil {
		return [32]byte{}, err
	}
	var root [32]byte
	copy(root[:], raw)
	return root, nil
}

// BlockRootAtEpoch returns get_block_root(state, epoch): the root of the
// first slot of epoch.
func BlockRootAtEpoch(st *state.BeaconState, epoch primitives.Epoch) ([32]byte, error) {
	startSlot, err := slots.EpochStart(epoch)
	if err != nil {
		return [32]byte{}, err
	}
	return BlockRootAtSlot(st, startSlot)
}
