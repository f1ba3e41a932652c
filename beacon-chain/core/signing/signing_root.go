package signing

import (
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ComputeSigningRoot returns compute_signing_root(object, domain) =
// hash_tree_root(SigningData{object_root: hash_tree_root(object), domain})
// (spec §4.2). object must be a pointer to an SSZ-tagged consensus type.
func ComputeSigningRoot(object interface{}, domain primitives.Domain) ([32]byte, error) {
	objectRoot, err := szz.HashTreeRoot(object)
	if err != nil {
		return [32]byte{}, txerrors.Wrap(txerrors.SszTypesError, err, "hash_tree_root(object)")
	}
	signingData := &ethpb.SigningData{ObjectRoot: objectRoot, Domain: domain}
	root, err := szz.HashTreeRoot(signingData)
	if err != nil {
		return [32]byte{}, txerrors.Wrap(txerrors.SszTypesError, err, "hash_tree_root(signing_data)")
	}
	return root, nil
}
