package blocks

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/validators"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/bls"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/time/slots"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessProposerSlashing implements process_proposer_slashing (spec
// §4.5): the two headers must share a slot and proposer, differ, both
// verify against the named proposer's key, and that proposer must still be
// slashable; on success the proposer is slashed.
func ProcessProposerSlashing(st *state.BeaconState, ps *ethpb.ProposerSlashing) error {
	h1, h2 := ps.Header1.Header, ps.Header2.Header
	if h1.Slot != h2.Slot {
		return txerrors.New(txerrors.BadProposerSlashing, "process_proposer_slashing: headers at different slots %d != %d", h1.Slot, h2.Slot)
	}
	if h1.ProposerIndex != h2.ProposerIndex {
		return txerrors.New(txerrors.BadProposerSlashing, "process_proposer_slashing: headers name different proposers %d != %d", h1.ProposerIndex, h2.ProposerIndex)
	}
	if headersEqual(h1, h2) {
		return txerrors.New(txerrors.BadProposerSlashing, "process_proposer_slashing: headers are identical")
	}

	proposerIndex := primitives.ValidatorIndex(h1.ProposerIndex)
	proposer, err := st.ValidatorAtIndex(proposerIndex)
	if err != nil {
		return txerrors.Wrap(txerrors.UnknownValidator, err, "process_proposer_slashing: resolve proposer")
	}
	if !helpers.IsSlashableValidator(proposer, coretime.CurrentEpoch(st)) {
		return txerrors.New(txerrors.ValidatorAlreadyExited, "process_proposer_slashing: proposer %d is not slashable", proposerIndex)
	}

	for _, signed := range []*ethpb.SignedBeaconBlockHeader{ps.Header1, ps.Header2} {
		if err := verifyHeaderSignature(st, proposer, signed); err != nil {
			return err
		}
	}

	return validators.SlashValidator(st, proposerIndex, validators.NoWhistleblower)
}

func verifyHeaderSignature(st *state.BeaconState, proposer *ethpb.Validator, signed *ethpb.SignedBeaconBlockHeader) error {
	domain, err := signing.Domain(st.Fork(), slots.ToEpoch(primitives.Slot(signed.Header.Slot)), params.BeaconConfig().DomainBeaconProposer, st.GenesisValidatorsRoot())
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "process_proposer_slashing: domain")
	}
	root, err := signing.ComputeSigningRoot(signed.Header, domain)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "process_proposer_slashing: signing root")
	}
	pubkey, err := bls.PublicKeyFromBytes(proposer.PublicKey)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "process_proposer_slashing: decode pubkey")
	}
	sig, err := bls.SignatureFromBytes(signed.Signature)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidBlockSignature, err, "process_proposer_slashing: decode signature")
	}
	if !bls.Verify(pubkey, root[:], sig) {
		return txerrors.New(txerrors.InvalidBlockSignature, "process_proposer_slashing: header signature does not verify")
	}
	return nil
}

func headersEqual(a, b *ethpb.BeaconBlockHeader) bool {
	return a.Slot == b.Slot &&
		a.ProposerIndex == b.ProposerIndex &&
		bytesEqual(a.ParentRoot, b.ParentRoot) &&
		bytesEqual(a.StateRoot, b.StateRoot) &&
		bytesEqual(a.BodyRoot, b.BodyRoot)
}
