// Package blocks implements process_block and its per-operation stages
// (spec §4.5), applied in the fixed order state_transition requires:
// header, randao, eth1 data, then the five operation lists.
package blocks

import (
	"github.com/sirupsen/logrus"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

var log = logrus.WithField("prefix", "blocks")

// ProcessBlockHeader implements process_block_header (spec §4.5): verifies
// slot/proposer/parent-root/not-slashed, then closes out the previous
// header by writing a fresh one with a zeroed state_root (state_root is
// filled in by the *next* process_slot call, spec §4.3 step 1).
func ProcessBlockHeader(st *state.BeaconState, block *ethpb.BeaconBlock) error {
	if primitives.Slot(block.Slot) != st.Slot() {
		return txerrors.New(txerrors.BadBlockSlot, "process_block_header: block slot %d != state slot %d", block.Slot, st.Slot())
	}
	latest := st.LatestBlockHeader()
	if block.Slot <= latest.Slot {
		return txerrors.New(txerrors.BadBlockSlot, "process_block_header: block slot %d <= latest header slot %d", block.Slot, latest.Slot)
	}

	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return txerrors.Wrap(txerrors.BadProposerIndex, err, "process_block_header: resolve proposer")
	}
	if uint64(proposer) != block.ProposerIndex {
		return txerrors.New(txerrors.BadProposerIndex, "process_block_header: block proposer %d != expected %d", block.ProposerIndex, proposer)
	}

	latestRoot, err := szz.HashTreeRoot(latest)
	if err != nil {
		return txerrors.Wrap(txerrors.SszTypesError, err, "process_block_header: hash_tree_root(latest_block_header)")
	}
	if !bytesEqual(block.ParentRoot, latestRoot[:]) {
		return txerrors.New(txerrors.BadParentRoot, "process_block_header: parent root mismatch")
	}

	v, err := st.ValidatorAtIndex(primitives.ValidatorIndex(block.ProposerIndex))
	if err != nil {
		return txerrors.Wrap(txerrors.UnknownValidator, err, "process_block_header: resolve proposer validator")
	}
	if v.Slashed {
		return txerrors.New(txerrors.ProposerSlashed, "process_block_header: proposer %d is slashed", block.ProposerIndex)
	}

	bodyRoot, err := szz.HashTreeRoot(block.Body)
	if err != nil {
		return txerrors.Wrap(txerrors.SszTypesError, err, "process_block_header: hash_tree_root(block.body)")
	}

	if err := st.SetLatestBlockHeader(&ethpb.BeaconBlockHeader{
		Slot:          block.Slot,
		ProposerIndex: block.ProposerIndex,
		ParentRoot:    append([]byte(nil), block.ParentRoot...),
		StateRoot:     make([]byte, 32),
		BodyRoot:      bodyRoot[:],
	}); err != nil {
		return err
	}

	log.WithField("slot", block.Slot).WithField("proposer_index", block.ProposerIndex).Debug("processed block header")
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
