package blocks

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/validators"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessAttesterSlashing implements process_attester_slashing (spec
// §4.5): both indexed attestations must independently verify and the pair
// must be slashable per is_slashable_attestation_data; every index that is
// both named by the pair's intersection and still slashable gets slashed.
func ProcessAttesterSlashing(st *state.BeaconState, as *ethpb.AttesterSlashing) error {
	a1, a2 := as.Attestation1, as.Attestation2
	if !helpers.IsSlashableAttestationData(a1.Data, a2.Data) {
		return txerrors.New(txerrors.BadAttesterSlashing, "process_attester_slashing: attestation data pair is not slashable")
	}
	if err := helpers.IsValidIndexedAttestation(st, a1); err != nil {
		return txerrors.Wrap(txerrors.BadAttesterSlashing, err, "process_attester_slashing: attestation 1")
	}
	if err := helpers.IsValidIndexedAttestation(st, a2); err != nil {
		return txerrors.Wrap(txerrors.BadAttesterSlashing, err, "process_attester_slashing: attestation 2")
	}

	intersection := intersectSortedIndices(a1.AttestingIndices, a2.AttestingIndices)
	if len(intersection) == 0 {
		return txerrors.New(txerrors.BadAttesterSlashing, "process_attester_slashing: no indices named by both attestations")
	}

	currentEpoch := coretime.CurrentEpoch(st)
	slashedAny := false
	for _, idx := range intersection {
		v, err := st.ValidatorAtIndex(primitives.ValidatorIndex(idx))
		if err != nil {
			return txerrors.Wrap(txerrors.UnknownValidator, err, "process_attester_slashing: resolve attesting index")
		}
		if !helpers.IsSlashableValidator(v, currentEpoch) {
			continue
		}
		if err := validators.SlashValidator(st, primitives.ValidatorIndex(idx), validators.NoWhistleblower); err != nil {
			return err
		}
		slashedAny = true
	}
	if !slashedAny {
		return txerrors.New(txerrors.BadAttesterSlashing, "process_attester_slashing: no slashable validator among intersecting indices")
	}
	return nil
}

// intersectSortedIndices returns the sorted intersection of two strictly
// ascending uint64 slices (both attesting-index lists are validated sorted
// by IsValidIndexedAttestation before this runs).
func intersectSortedIndices(a, b []uint64) []uint64 {
	var out []uint64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
