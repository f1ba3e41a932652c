package state

import ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"

// PreviousEpochAttestations returns the previous epoch's pending-attestation
// accumulator (spec §3).
func (b *BeaconState) PreviousEpochAttestations() ([]*ethpb.PendingAttestation, error) {
	return b.state.PreviousEpochAttestations, nil
}

// CurrentEpochAttestations returns the current epoch's pending-attestation
// accumulator.
func (b *BeaconState) CurrentEpochAttestations() ([]*ethpb.PendingAttestation, error) {
	return b.state.CurrentEpochAttestations, nil
}

// SetPreviousEpochAttestations overwrites the previous-epoch accumulator.
func (b *BeaconState) SetPreviousEpochAttestations(atts []*ethpb.PendingAttestation) error {
	b.state.PreviousEpochAttestations = atts
	return nil
}

// SetCurrentEpochAttestations overwrites the current-epoch accumulator.
func (b *BeaconState) SetCurrentEpochAttestations(atts []*ethpb.PendingAttestation) error {
	b.state.CurrentEpochAttestations = atts
	return nil
}

// AppendCurrentEpochAttestations appends to the current-epoch accumulator,
// used by process_attestation (spec §4.5).
func (b *BeaconState) AppendCurrentEpochAttestations(att *ethpb.PendingAttestation) error {
	b.state.CurrentEpochAttestations = append(b.state.CurrentEpochAttestations, att)
	return nil
}

// AppendPreviousEpochAttestations appends to the previous-epoch accumulator.
func (b *BeaconState) AppendPreviousEpochAttestations(att *ethpb.PendingAttestation) error {
	b.state.PreviousEpochAttestations = append(b.state.PreviousEpochAttestations, att)
	return nil
}
