// Package helpers implements the pure predicates and accessors of spec
// §4.1/§4.2: no I/O, no allocation beyond transient sets, grounded on the
// teacher's beacon-chain/core/helpers package (validators_test.go,
// attestation_test.go, committee_test.go).
package helpers

import (
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// IsActiveValidator reports is_active_validator(v, epoch): activation_epoch
// <= epoch < exit_epoch (spec §4.1).
func IsActiveValidator(v *ethpb.Validator, epoch primitives.Epoch) bool {
	return v.ActivationEpoch <= uint64(epoch) && uint64(epoch) < v.ExitEpoch
}

// IsSlashableValidator reports is_slashable_validator(v, epoch):
// !slashed && activation_epoch <= epoch < withdrawable_epoch (spec §4.1).
func IsSlashableValidator(v *ethpb.Validator, epoch primitives.Epoch) bool {
	return !v.Slashed && v.ActivationEpoch <= uint64(epoch) && uint64(epoch) < v.WithdrawableEpoch
}

// IsSlashableAttestationData reports is_slashable_attestation_data(a, b):
// a double-vote (identical target epoch, distinct data) or a surround-vote
// (spec §4.1).
func IsSlashableAttestationData(a, b *ethpb.AttestationData) bool {
	if a == nil || b == nil {
		return false
	}
	isDouble := !a.Equals(b) && a.Target.Epoch == b.Target.Epoch
	isSurround := a.Source.Epoch < b.Source.Epoch && b.Target.Epoch < a.Target.Epoch
	return isDouble || isSurround
}

// ActiveValidatorIndices returns get_active_validator_indices(state, epoch):
// the ascending list of indices active at epoch (spec §4.2).
func ActiveValidatorIndices(validators []*ethpb.Validator, epoch primitives.Epoch) []primitives.ValidatorIndex {
	indices := make([]primitives.ValidatorIndex, 0, len(validators))
	for i, v := range validators {
		if IsActiveValidator(v, epoch) {
			indices = append(indices, primitives.ValidatorIndex(i))
		}
	}
	return indices
}

// ValidatorLifecycleOK reports the lifecycle ordering invariant of spec §3
// and §8 invariant 3: activation_eligibility_epoch <= activation_epoch <=
// exit_epoch <= withdrawable_epoch, treating FAR_FUTURE_EPOCH as +infinity
// (any value compares <= FAR_FUTURE_EPOCH).
func ValidatorLifecycleOK(v *ethpb.Validator) bool {
	return v.ActivationEligibilityEpoch <= v.ActivationEpoch &&
		v.ActivationEpoch <= v.ExitEpoch &&
		v.ExitEpoch <= v.WithdrawableEpoch
}

// ComputeActivationExitEpoch returns the exit epoch an exit initiated during
// `epoch` actually takes effect at: epoch + 1 + MAX_SEED_LOOKAHEAD (used by
// registry updates and process_voluntary_exit, spec §4.4 step 3, §4.5).
func ComputeActivationExitEpoch(epoch primitives.Epoch) primitives.Epoch {
	return epoch + 1 + params.BeaconConfig().MaxSeedLookahead
}
