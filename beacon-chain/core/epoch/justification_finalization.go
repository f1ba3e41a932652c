// Package epoch implements process_epoch and its five ordered stages
// (spec §4.4): justification/finalization, rewards & penalties, registry
// updates, slashings, and final bookkeeping.
package epoch

import (
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// matchingTargetAttestations returns get_matching_target_attestations(state,
// epoch): the epoch's pending-attestation accumulator filtered to entries
// whose target root names the canonical checkpoint root for epoch.
func matchingTargetAttestations(st *state.BeaconState, epoch primitives.Epoch) ([]*ethpb.PendingAttestation, error) {
	source, err := epochAttestations(st, epoch)
	if err != nil {
		return nil, err
	}
	targetRoot, err := helpers.BlockRootAtEpoch(st, epoch)
	if err != nil {
		return nil, err
	}
	var out []*ethpb.PendingAttestation
	for _, a := range source {
		if bytesEqual32(a.Data.Target.Root, targetRoot) {
			out = append(out, a)
		}
	}
	return out, nil
}

func epochAttestations(st *state.BeaconState, epoch primitives.Epoch) ([]*ethpb.PendingAttestation, error) {
	if epoch == coretime.CurrentEpoch(st) {
		return st.CurrentEpochAttestations()
	}
	return st.PreviousEpochAttestations()
}

// unslashedAttestingIndices returns get_unslashed_attesting_indices: the
// deduplicated union of every attestation's attesting-index set, minus any
// index naming a since-slashed validator.
func unslashedAttestingIndices(st *state.BeaconState, atts []*ethpb.PendingAttestation) ([]primitives.ValidatorIndex, error) {
	seen := make(map[primitives.ValidatorIndex]bool)
	for _, a := range atts {
		committee, err := helpers.BeaconCommitteeFromState(st, primitives.Slot(a.Data.Slot), primitives.CommitteeIndex(a.Data.CommitteeIndex))
		if err != nil {
			return nil, err
		}
		indices, err := helpers.AttestingIndices(a.AggregationBits, committee)
		if err != nil {
			return nil, err
		}
		for _, idx := range indices {
			seen[primitives.ValidatorIndex(idx)] = true
		}
	}
	out := make([]primitives.ValidatorIndex, 0, len(seen))
	for idx := range seen {
		v, err := st.ValidatorAtIndex(idx)
		if err != nil {
			return nil, err
		}
		if !v.Slashed {
			out = append(out, idx)
		}
	}
	return out, nil
}

func attestingBalance(st *state.BeaconState, atts []*ethpb.PendingAttestation) (uint64, error) {
	indices, err := unslashedAttestingIndices(st, atts)
	if err != nil {
		return 0, err
	}
	return st.TotalBalance(indices), nil
}

// ProcessJustificationAndFinalization implements
// process_justification_and_finalization (spec §4.4 step 1): shifts the
// justification-bits history, justifies the previous/current epoch if
// either crosses the 2/3 attesting-balance threshold, then finalizes
// whichever checkpoint one of the four recognized bit patterns allows.
func ProcessJustificationAndFinalization(st *state.BeaconState) error {
	currentEpoch := coretime.CurrentEpoch(st)
	if currentEpoch <= primitives.GenesisEpoch+1 {
		return nil
	}
	previousEpoch := coretime.PrevEpoch(st)

	oldPrevJustified := st.PreviousJustifiedCheckpoint()
	oldCurrJustified := st.CurrentJustifiedCheckpoint()

	if err := st.SetPreviousJustifiedCheckpoint(oldCurrJustified); err != nil {
		return err
	}

	bits := shiftJustificationBits(st.JustificationBits())
	bits.SetBitAt(0, false)

	totalActive := st.TotalBalance(helpers.ActiveValidatorIndices(st.Validators(), currentEpoch))

	prevTargetAtts, err := matchingTargetAttestations(st, previousEpoch)
	if err != nil {
		return err
	}
	prevAttestingBalance, err := attestingBalance(st, prevTargetAtts)
	if err != nil {
		return err
	}
	if prevAttestingBalance*3 >= totalActive*2 {
		root, err := helpers.BlockRootAtEpoch(st, previousEpoch)
		if err != nil {
			return err
		}
		if err := st.SetCurrentJustifiedCheckpoint(&ethpb.Checkpoint{Epoch: uint64(previousEpoch), Root: root[:]}); err != nil {
			return err
		}
		bits.SetBitAt(1, true)
	}

	currTargetAtts, err := matchingTargetAttestations(st, currentEpoch)
	if err != nil {
		return err
	}
	currAttestingBalance, err := attestingBalance(st, currTargetAtts)
	if err != nil {
		return err
	}
	if currAttestingBalance*3 >= totalActive*2 {
		root, err := helpers.BlockRootAtEpoch(st, currentEpoch)
		if err != nil {
			return err
		}
		if err := st.SetCurrentJustifiedCheckpoint(&ethpb.Checkpoint{Epoch: uint64(currentEpoch), Root: root[:]}); err != nil {
			return err
		}
		bits.SetBitAt(0, true)
	}

	if err := st.SetJustificationBits(bits); err != nil {
		return err
	}

	if allBitsSet(bits, 1, 4) && oldPrevJustified.Epoch+3 == uint64(currentEpoch) {
		if err := st.SetFinalizedCheckpoint(oldPrevJustified); err != nil {
			return err
		}
	}
	if allBitsSet(bits, 1, 3) && oldPrevJustified.Epoch+2 == uint64(currentEpoch) {
		if err := st.SetFinalizedCheckpoint(oldPrevJustified); err != nil {
			return err
		}
	}
	if allBitsSet(bits, 0, 3) && oldCurrJustified.Epoch+2 == uint64(currentEpoch) {
		if err := st.SetFinalizedCheckpoint(oldCurrJustified); err != nil {
			return err
		}
	}
	if allBitsSet(bits, 0, 2) && oldCurrJustified.Epoch+1 == uint64(currentEpoch) {
		if err := st.SetFinalizedCheckpoint(oldCurrJustified); err != nil {
			return err
		}
	}
	return nil
}

// shiftJustificationBits returns a fresh Bitvector4 with bits[1:] = old
// bits[:3] (spec §4.4 step 1's "state.justification_bits[1:] =
// state.justification_bits[:JUSTIFICATION_BITS_LENGTH - 1]").
func shiftJustificationBits(old bitfield.Bitvector4) bitfield.Bitvector4 {
	next := bitfield.NewBitvector4()
	for i := uint64(0); i < 3; i++ {
		next.SetBitAt(i+1, old.BitAt(i))
	}
	return next
}

func allBitsSet(bits bitfield.Bitvector4, from, to uint64) bool {
	for i := from; i < to; i++ {
		if !bits.BitAt(i) {
			return false
		}
	}
	return true
}

func bytesEqual32(a []byte, b [32]byte) bool {
	if len(a) != 32 {
		return false
	}
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
