package transition

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/blocks"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessBlock implements process_block (spec §4.5): header, RANDAO,
// eth1 data, then the five operation lists, each bounded by the active
// config's per-block maximum (the block body's ssz-max/dynssz-size tags
// already reject an oversized list at decode time; these are a second,
// explicit check so a hand-built in-memory block can't skip it).
func ProcessBlock(st *state.BeaconState, block *ethpb.BeaconBlock) error {
	if err := blocks.ProcessBlockHeader(st, block); err != nil {
		return err
	}
	body := block.Body
	cfg := params.BeaconConfig()
	if err := verifyOperationCounts(body, cfg.MaxProposerSlashings, cfg.MaxAttesterSlashings, cfg.MaxAttestations, cfg.MaxDeposits, cfg.MaxVoluntaryExits); err != nil {
		return err
	}
	if err := blocks.ProcessRandao(st, body); err != nil {
		return err
	}
	if err := blocks.ProcessEth1Data(st, body.Eth1Data); err != nil {
		return err
	}

	for _, ps := range body.ProposerSlashings {
		if err := blocks.ProcessProposerSlashing(st, ps); err != nil {
			return err
		}
	}
	for _, as := range body.AttesterSlashings {
		if err := blocks.ProcessAttesterSlashing(st, as); err != nil {
			return err
		}
	}
	for _, att := range body.Attestations {
		if err := blocks.ProcessAttestation(st, att); err != nil {
			return err
		}
	}
	for _, dep := range body.Deposits {
		if err := blocks.ProcessDeposit(st, dep); err != nil {
			return err
		}
	}
	for _, exit := range body.VoluntaryExits {
		if err := blocks.ProcessVoluntaryExit(st, exit); err != nil {
			return err
		}
	}

	log.WithField("slot", block.Slot).WithField("attestations", len(body.Attestations)).Debug("processed block body")
	return nil
}

// verifyOperationCounts is a defense-in-depth check against a hand-built
// block that bypasses SSZ decoding's own dynssz-size enforcement.
func verifyOperationCounts(body *ethpb.BeaconBlockBody, maxProposerSlashings, maxAttesterSlashings, maxAttestations, maxDeposits, maxVoluntaryExits uint64) error {
	if uint64(len(body.ProposerSlashings)) > maxProposerSlashings {
		return txerrors.New(txerrors.BadProposerSlashing, "process_block: too many proposer slashings")
	}
	if uint64(len(body.AttesterSlashings)) > maxAttesterSlashings {
		return txerrors.New(txerrors.BadAttesterSlashing, "process_block: too many attester slashings")
	}
	if uint64(len(body.Attestations)) > maxAttestations {
		return txerrors.New(txerrors.BadAggregationBitsLength, "process_block: too many attestations")
	}
	if uint64(len(body.Deposits)) > maxDeposits {
		return txerrors.New(txerrors.InvalidDepositProof, "process_block: too many deposits")
	}
	if uint64(len(body.VoluntaryExits)) > maxVoluntaryExits {
		return txerrors.New(txerrors.InvalidExitSignature, "process_block: too many voluntary exits")
	}
	return nil
}
