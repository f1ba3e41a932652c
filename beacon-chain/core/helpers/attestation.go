package helpers

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/bls"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// IsValidIndexedAttestation implements is_valid_indexed_attestation (spec
// §4.1): the single-sorted-list phase-0 form (SPEC_FULL Part D.3 records
// why the two-list "custody bit" shape from original_source/predicates.rs
// is not the one implemented here).
func IsValidIndexedAttestation(st *state.BeaconState, ia *ethpb.IndexedAttestation) error {
	indices := ia.AttestingIndices
	if len(indices) == 0 {
		return txerrors.New(txerrors.EmptyIndexedAttestation, "is_valid_indexed_attestation: empty attesting index list")
	}
	if uint64(len(indices)) > params.BeaconConfig().MaxValidatorsPerCommittee {
		return txerrors.New(txerrors.MaxIndicesExceeded, "is_valid_indexed_attestation: %d indices exceeds max %d", len(indices), params.BeaconConfig().MaxValidatorsPerCommittee)
	}
	for i := 1; i < len(indices); i++ {
		if indices[i-1] >= indices[i] {
			return txerrors.New(txerrors.BadValidatorIndicesOrdering, "is_valid_indexed_attestation: indices not strictly ascending at %d (%d >= %d)", i, indices[i-1], indices[i])
		}
	}

	pubkeys := make([]bls.PublicKey, len(indices))
	for i, idx := range indices {
		v, err := st.ValidatorAtIndex(primitives.ValidatorIndex(idx))
		if err != nil {
			return txerrors.Wrap(txerrors.UnknownValidator, err, "is_valid_indexed_attestation: resolve attesting index")
		}
		pk, err := bls.PublicKeyFromBytes(v.PublicKey)
		if err != nil {
			return txerrors.Wrap(txerrors.InvalidAttestationSignature, err, "is_valid_indexed_attestation: decode pubkey")
		}
		pubkeys[i] = pk
	}

	domain, err := signing.Domain(st.Fork(), primitives.Epoch(ia.Data.Target.Epoch), params.BeaconConfig().DomainBeaconAttester, st.GenesisValidatorsRoot())
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidAttestationSignature, err, "is_valid_indexed_attestation: domain")
	}
	message, err := signing.ComputeSigningRoot(ia.Data, domain)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidAttestationSignature, err, "is_valid_indexed_attestation: signing root")
	}

	sig, err := bls.SignatureFromBytes(ia.Signature)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidAttestationSignature, err, "is_valid_indexed_attestation: decode signature")
	}
	if !bls.FastAggregateVerify(pubkeys, message[:], sig) {
		return txerrors.New(txerrors.InvalidAttestationSignature, "is_valid_indexed_attestation: aggregate signature verification failed")
	}
	return nil
}

// HashTreeRootAttestationData is a convenience wrapper used by committee
// conversion and slashing detection.
func HashTreeRootAttestationData(data *ethpb.AttestationData) ([32]byte, error) {
	root, err := szz.HashTreeRoot(data)
	if err != nil {
		return [32]byte{}, txerrors.Wrap(txerrors.SszTypesError, err, "hash_tree_root(attestation_data)")
	}
	return root, nil
}
