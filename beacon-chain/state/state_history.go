package state

import (
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// BlockRoots returns the block-root ring buffer (spec §3: block_roots[SLOTS_PER_HISTORICAL_ROOT]).
func (b *BeaconState) BlockRoots() [][]byte { return b.state.BlockRoots }

// StateRoots returns the state-root ring buffer.
func (b *BeaconState) StateRoots() [][]byte { return b.state.StateRoots }

// RandaoMixes returns the randomness ring buffer.
func (b *BeaconState) RandaoMixes() [][]byte { return b.state.RandaoMixes }

// HistoricalRoots returns the cumulative historical-roots list.
func (b *BeaconState) HistoricalRoots() [][]byte { return b.state.HistoricalRoots }

// BlockRootAtIndex returns block_roots[i], failing if i is out of bounds.
func (b *BeaconState) BlockRootAtIndex(i uint64) ([]byte, error) {
	if i >= uint64(len(b.state.BlockRoots)) {
		return nil, txerrors.New(txerrors.SlotOutOfBounds, "block root index %d out of range %d", i, len(b.state.BlockRoots))
	}
	return b.state.BlockRoots[i], nil
}

// StateRootAtIndex returns state_roots[i], failing if i is out of bounds.
func (b *BeaconState) StateRootAtIndex(i uint64) ([]byte, error) {
	if i >= uint64(len(b.state.StateRoots)) {
		return nil, txerrors.New(txerrors.SlotOutOfBounds, "state root index %d out of range %d", i, len(b.state.StateRoots))
	}
	return b.state.StateRoots[i], nil
}

// RandaoMixAtIndex returns randao_mixes[i], failing if i is out of bounds.
func (b *BeaconState) RandaoMixAtIndex(i uint64) ([]byte, error) {
	if i >= uint64(len(b.state.RandaoMixes)) {
		return nil, txerrors.New(txerrors.EpochOutOfBounds, "randao mix index %d out of range %d", i, len(b.state.RandaoMixes))
	}
	return b.state.RandaoMixes[i], nil
}

// UpdateBlockRootAtIndex overwrites block_roots[i].
func (b *BeaconState) UpdateBlockRootAtIndex(i uint64, root [32]byte) error {
	if i >= uint64(len(b.state.BlockRoots)) {
		return txerrors.New(txerrors.SlotOutOfBounds, "block root index %d out of range %d", i, len(b.state.BlockRoots))
	}
	b.state.BlockRoots[i] = root[:]
	return nil
}

// UpdateStateRootAtIndex overwrites state_roots[i].
func (b *BeaconState) UpdateStateRootAtIndex(i uint64, root [32]byte) error {
	if i >= uint64(len(b.state.StateRoots)) {
		return txerrors.New(txerrors.SlotOutOfBounds, "state root index %d out of range %d", i, len(b.state.StateRoots))
	}
	b.state.StateRoots[i] = root[:]
	return nil
}

// UpdateRandaoMixAtIndex overwrites randao_mixes[i].
func (b *BeaconState) UpdateRandaoMixAtIndex(i uint64, mix [32]byte) error {
	if i >= uint64(len(b.state.RandaoMixes)) {
		return txerrors.New(txerrors.EpochOutOfBounds, "randao mix index %d out of range %d", i, len(b.state.RandaoMixes))
	}
	b.state.RandaoMixes[i] = mix[:]
	return nil
}

// AppendHistoricalRoot appends to the cumulative historical_roots list,
// rejecting overflow past HistoricalRootsLimit (design note §9's
// reject-on-overflow semantics for VariableList).
func (b *BeaconState) AppendHistoricalRoot(root [32]byte) error {
	limit := params.BeaconConfig().HistoricalRootsLimit
	if uint64(len(b.state.HistoricalRoots)) >= limit {
		return txerrors.New(txerrors.SszTypesError, "historical_roots at capacity %d", limit)
	}
	b.state.HistoricalRoots = append(b.state.HistoricalRoots, root[:])
	return nil
}
