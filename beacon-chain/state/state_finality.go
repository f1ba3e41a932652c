package state

import (
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// JustificationBits returns the 4-bit justification history vector
// (spec §3, §4.4 step 1).
func (b *BeaconState) JustificationBits() bitfield.Bitvector4 { return b.state.JustificationBits }

// SetJustificationBits overwrites the justification-bits vector.
func (b *BeaconState) SetJustificationBits(bits bitfield.Bitvector4) error {
	b.state.JustificationBits = bits
	return nil
}

// PreviousJustifiedCheckpoint returns the previous-justified checkpoint.
func (b *BeaconState) PreviousJustifiedCheckpoint() *ethpb.Checkpoint {
	return b.state.PreviousJustifiedCheckpoint
}

// SetPreviousJustifiedCheckpoint overwrites the previous-justified checkpoint.
func (b *BeaconState) SetPreviousJustifiedCheckpoint(cp *ethpb.Checkpoint) error {
	b.state.PreviousJustifiedCheckpoint = cp
	return nil
}

// CurrentJustifiedCheckpoint returns the current-justified checkpoint.
func (b *BeaconState) CurrentJustifiedCheckpoint() *ethpb.Checkpoint {
	return b.state.CurrentJustifiedCheckpoint
}

// SetCurrentJustifiedCheckpoint overwrites the current-justified checkpoint.
func (b *BeaconState) SetCurrentJustifiedCheckpoint(cp *ethpb.Checkpoint) error {
	b.state.CurrentJustifiedCheckpoint = cp
	return nil
}

// FinalizedCheckpoint returns the finalized checkpoint.
func (b *BeaconState) FinalizedCheckpoint() *ethpb.Checkpoint {
	return b.state.FinalizedCheckpoint
}

// FinalizedCheckpointEpoch is a convenience accessor for FinalizedCheckpoint().Epoch.
func (b *BeaconState) FinalizedCheckpointEpoch() primitives.Epoch {
	if b.state.FinalizedCheckpoint == nil {
		return 0
	}
	return primitives.Epoch(b.state.FinalizedCheckpoint.Epoch)
}

// SetFinalizedCheckpoint overwrites the finalized checkpoint.
func (b *BeaconState) SetFinalizedCheckpoint(cp *ethpb.Checkpoint) error {
	b.state.FinalizedCheckpoint = cp
	return nil
}
