package blocks

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/time/slots"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessAttestation implements process_attestation (spec §4.5): validates
// the data's committee/epoch/inclusion-window bounds and its source
// checkpoint against whichever of the two justified checkpoints its target
// epoch names, derives the indexed form and checks its signature, then
// records a PendingAttestation for the epoch's reward accounting.
func ProcessAttestation(st *state.BeaconState, att *ethpb.Attestation) error {
	data := att.Data
	cfg := params.BeaconConfig()

	committeeCount := helpers.CommitteeCountPerSlot(uint64(len(helpers.ActiveValidatorIndices(st.Validators(), slots.ToEpoch(primitives.Slot(data.Slot))))))
	if data.CommitteeIndex >= committeeCount {
		return txerrors.New(txerrors.CommitteeIndexOutOfRange, "process_attestation: committee index %d >= committee count %d", data.CommitteeIndex, committeeCount)
	}

	currentEpoch := coretime.CurrentEpoch(st)
	previousEpoch := coretime.PrevEpoch(st)
	targetEpoch := primitives.Epoch(data.Target.Epoch)
	if targetEpoch != currentEpoch && targetEpoch != previousEpoch {
		return txerrors.New(txerrors.AttestationBadTargetEpoch, "process_attestation: target epoch %d is neither current %d nor previous %d", targetEpoch, currentEpoch, previousEpoch)
	}
	if targetEpoch != slots.ToEpoch(primitives.Slot(data.Slot)) {
		return txerrors.New(txerrors.AttestationBadTargetEpoch, "process_attestation: target epoch %d != compute_epoch_at_slot(slot) %d", targetEpoch, slots.ToEpoch(primitives.Slot(data.Slot)))
	}

	lowerBound := data.Slot + uint64(cfg.MinAttestationInclusionDelay)
	upperBound := data.Slot + uint64(cfg.SlotsPerEpoch)
	if uint64(st.Slot()) < lowerBound {
		return txerrors.New(txerrors.AttestationTooEarly, "process_attestation: state slot %d < min inclusion slot %d", st.Slot(), lowerBound)
	}
	if uint64(st.Slot()) > upperBound {
		return txerrors.New(txerrors.AttestationTooLate, "process_attestation: state slot %d > max inclusion slot %d", st.Slot(), upperBound)
	}

	committee, err := helpers.BeaconCommitteeFromState(st, primitives.Slot(data.Slot), primitives.CommitteeIndex(data.CommitteeIndex))
	if err != nil {
		return err
	}
	if att.AggregationBits.Len() != uint64(len(committee)) {
		return txerrors.New(txerrors.BadAggregationBitsLength, "process_attestation: aggregation bits length %d != committee size %d", att.AggregationBits.Len(), len(committee))
	}

	if targetEpoch == currentEpoch {
		if !data.Source.Equals(st.CurrentJustifiedCheckpoint()) {
			return txerrors.New(txerrors.AttestationBadSourceRoot, "process_attestation: source checkpoint does not match current justified checkpoint")
		}
	} else {
		if !data.Source.Equals(st.PreviousJustifiedCheckpoint()) {
			return txerrors.New(txerrors.AttestationBadSourceRoot, "process_attestation: source checkpoint does not match previous justified checkpoint")
		}
	}

	indexed, err := helpers.ConvertToIndexed(att, committee)
	if err != nil {
		return err
	}
	if err := helpers.IsValidIndexedAttestation(st, indexed); err != nil {
		return err
	}

	proposerIndex, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	pending := &ethpb.PendingAttestation{
		AggregationBits: att.AggregationBits,
		Data:            data,
		InclusionDelay:  uint64(st.Slot()) - data.Slot,
		ProposerIndex:   uint64(proposerIndex),
	}
	if targetEpoch == currentEpoch {
		return st.AppendCurrentEpochAttestations(pending)
	}
	return st.AppendPreviousEpochAttestations(pending)
}
