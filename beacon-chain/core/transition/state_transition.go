package transition

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/bls"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/time/slots"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// Options configures ExecuteStateTransition's optional checks. A fixture
// replaying a fork-choice-verified chain can skip the signature check
// (VerifyBlockSignature == false) since the block already passed gossip
// validation; state_transition.go itself runs both by default.
type Options struct {
	VerifyBlockSignature bool
	VerifyStateRoot       bool
}

// DefaultOptions runs every check state_transition (spec §4.6) describes.
func DefaultOptions() Options {
	return Options{VerifyBlockSignature: true, VerifyStateRoot: true}
}

// ExecuteStateTransition implements state_transition (spec §4.6): advances
// pre to signed.Block.Slot via process_slots, verifies the proposer's
// signature over the block (if enabled), runs process_block, and checks
// the resulting state root against the block's claimed one (if enabled).
// pre is never mutated: the returned state is always a fresh copy
// (SPEC_FULL Part E's transactional-by-default decision).
func ExecuteStateTransition(pre *state.BeaconState, signed *ethpb.SignedBeaconBlock, opts Options) (*state.BeaconState, error) {
	if signed == nil || signed.Block == nil {
		return nil, txerrors.New(txerrors.BadBlockSlot, "state_transition: nil signed block")
	}
	block := signed.Block

	post := pre.Copy()
	if err := ProcessSlots(post, primitives.Slot(block.Slot)); err != nil {
		return nil, err
	}

	if opts.VerifyBlockSignature {
		if err := verifyBlockSignature(post, block, signed.Signature); err != nil {
			return nil, err
		}
	}

	if err := ProcessBlock(post, block); err != nil {
		return nil, err
	}

	if opts.VerifyStateRoot {
		root, err := post.HashTreeRoot()
		if err != nil {
			return nil, err
		}
		if !bytesEqual(root[:], block.StateRoot) {
			return nil, txerrors.New(txerrors.BadStateRoot, "state_transition: post-state root mismatch")
		}
	}

	return post, nil
}

func verifyBlockSignature(st *state.BeaconState, block *ethpb.BeaconBlock, signature []byte) error {
	proposer, err := st.ValidatorAtIndex(primitives.ValidatorIndex(block.ProposerIndex))
	if err != nil {
		return txerrors.Wrap(txerrors.UnknownValidator, err, "state_transition: resolve proposer")
	}
	domain, err := signing.Domain(st.Fork(), slots.ToEpoch(primitives.Slot(block.Slot)), params.BeaconConfig().DomainBeaconProposer, st.GenesisValidatorsRoot())
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "state_transition: domain")
	}
	signingRoot, err := signing.ComputeSigningRoot(block, domain)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "state_transition: signing root")
	}
	pubkey, err := bls.PublicKeyFromBytes(proposer.PublicKey)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "state_transition: decode proposer pubkey")
	}
	sig, err := bls.SignatureFromBytes(signature)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "state_transition: decode signature")
	}
	if !bls.Verify(pubkey, signingRoot[:], sig) {
		return txerrors.New(txerrors.InvalidBlockSignature, "state_transition: block signature does not verify")
	}
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
