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
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessVoluntaryExit implements process_voluntary_exit (spec §4.5): the
// named validator must be active, not already exiting, past its minimum
// activity duration (SHARD_COMMITTEE_PERIOD), and not requesting an exit
// ahead of the current epoch; its signature must verify under the
// voluntary-exit domain before initiate_validator_exit runs.
func ProcessVoluntaryExit(st *state.BeaconState, signed *ethpb.SignedVoluntaryExit) error {
	exit := signed.Exit
	cfg := params.BeaconConfig()
	index := primitives.ValidatorIndex(exit.ValidatorIndex)

	v, err := st.ValidatorAtIndex(index)
	if err != nil {
		return txerrors.Wrap(txerrors.UnknownValidator, err, "process_voluntary_exit: resolve validator")
	}

	currentEpoch := coretime.CurrentEpoch(st)
	if !helpers.IsActiveValidator(v, currentEpoch) {
		return txerrors.New(txerrors.ValidatorAlreadyExited, "process_voluntary_exit: validator %d is not active", index)
	}
	if v.ExitEpoch != uint64(cfg.FarFutureEpoch) {
		return txerrors.New(txerrors.ValidatorAlreadyExited, "process_voluntary_exit: validator %d already exiting", index)
	}
	if uint64(currentEpoch) < exit.Epoch {
		return txerrors.New(txerrors.AttestationTooEarly, "process_voluntary_exit: exit epoch %d is in the future (current %d)", exit.Epoch, currentEpoch)
	}
	if uint64(currentEpoch) < v.ActivationEpoch+uint64(cfg.ShardCommitteePeriod) {
		return txerrors.New(txerrors.ValidatorNotActiveLongEnough, "process_voluntary_exit: validator %d has not completed the minimum activity period", index)
	}

	domain, err := signing.Domain(st.Fork(), primitives.Epoch(exit.Epoch), cfg.DomainVoluntaryExit, st.GenesisValidatorsRoot())
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidExitSignature, err, "process_voluntary_exit: domain")
	}
	signingRoot, err := signing.ComputeSigningRoot(exit, domain)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidExitSignature, err, "process_voluntary_exit: signing root")
	}
	pubkey, err := bls.PublicKeyFromBytes(v.PublicKey)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidExitSignature, err, "process_voluntary_exit: decode pubkey")
	}
	sig, err := bls.SignatureFromBytes(signed.Signature)
	if err != nil {
		return txerrors.Wrap(txerrors.InvalidExitSignature, err, "process_voluntary_exit: decode signature")
	}
	if !bls.Verify(pubkey, signingRoot[:], sig) {
		return txerrors.New(txerrors.InvalidExitSignature, "process_voluntary_exit: signature does not verify")
	}

	return validators.InitiateValidatorExit(st, index)
}
