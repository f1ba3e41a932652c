package blocks

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/bls"
	"github.com/sigmaprime/beacon-core/crypto/hash"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessRandao implements process_randao (spec §4.5): verifies the BLS
// signature of hash_tree_root(current_epoch) under the proposer's pubkey
// and the RANDAO domain, then XOR-mixes hash(reveal) into
// randao_mixes[current_epoch mod N] (original_source/crypto.rs confirms
// plain SHA-256, not a BLS hash, for this mix step).
func ProcessRandao(st *state.BeaconState, body *ethpb.BeaconBlockBody) error {
	proposerIdx, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	proposer, err := st.ValidatorAtIndex(proposerIdx)
	if err != nil {
		return txerrors.Wrap(txerrors.UnknownValidator, err, "process_randao: resolve proposer")
	}

	epoch := time.CurrentEpoch(st)
	domain, err := signing.Domain(st.Fork(), epoch, params.BeaconConfig().DomainRandao, st.GenesisValidatorsRoot())
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidRandaoReveal, err, "process_randao: domain")
	}
	signingRoot, err := signing.ComputeSigningRoot(epochContainer(epoch), domain)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidRandaoReveal, err, "process_randao: signing root")
	}

	pubkey, err := bls.PublicKeyFromBytes(proposer.PublicKey)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidRandaoReveal, err, "process_randao: decode proposer pubkey")
	}
	sig, err := bls.SignatureFromBytes(body.RandaoReveal)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidRandaoReveal, err, "process_randao: decode reveal")
	}
	if !bls.Verify(pubkey, signingRoot[:], sig) {
		return txerrors.New(txerrors.InvalidRandaoReveal, "process_randao: reveal does not verify")
	}

	mixIndex := uint64(epoch) % uint64(params.BeaconConfig().EpochsPerHistoricalVector)
	currentMixBytes, err := st.RandaoMixAtIndex(mixIndex)
	if err != nil {
		return err
	}
	var currentMix [32]byte
	copy(currentMix[:], currentMixBytes)

	newMix := hash.XOR(currentMix, hash.Hash(body.RandaoReveal))
	return st.UpdateRandaoMixAtIndex(mixIndex, newMix)
}

// epochContainer wraps an Epoch so it has a stable SSZ shape to hash
// (hash_tree_root(epoch) per spec §4.5's process_randao).
type epochSSZ struct {
	Epoch uint64
}

func epochContainer(e primitives.Epoch) interface{} {
	return &epochSSZ{Epoch: uint64(e)}
}
