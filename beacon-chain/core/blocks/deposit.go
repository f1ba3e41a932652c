package blocks

import (
	"bytes"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/bls"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ProcessDeposit implements process_deposit (spec §4.5): verifies the
// deposit's Merkle inclusion proof against the canonical eth1 deposit
// root at the expected index, advances the deposit index, then either
// tops up an existing validator's balance or registers a new one.
func ProcessDeposit(st *state.BeaconState, deposit *ethpb.Deposit) error {
	cfg := params.BeaconConfig()
	depth := cfg.DepositContractTreeDepth + 1
	if uint64(len(deposit.Proof)) != depth {
		return txerrors.New(txerrors.InvalidDepositProof, "process_deposit: proof has %d entries, want %d", len(deposit.Proof), depth)
	}

	leaf, err := szz.HashTreeRoot(deposit.Data)
	if err != nil {
		return txerrors.Wrap(txerrors.SszTypesError, err, "process_deposit: hash_tree_root(deposit.data)")
	}

	var root [32]byte
	copy(root[:], st.Eth1Data().DepositRoot)
	if !helpers.IsValidMerkleBranch(leaf, deposit.Proof, depth, st.Eth1DepositIndex(), root) {
		return txerrors.New(txerrors.InvalidDepositProof, "process_deposit: merkle branch does not verify at index %d", st.Eth1DepositIndex())
	}

	if err := st.SetEth1DepositIndex(st.Eth1DepositIndex() + 1); err != nil {
		return err
	}

	return applyDeposit(st, deposit.Data)
}

func applyDeposit(st *state.BeaconState, data *ethpb.DepositData) error {
	cfg := params.BeaconConfig()

	existingIndex := -1
	for i, v := range st.Validators() {
		if bytes.Equal(v.PublicKey, data.PublicKey) {
			existingIndex = i
			break
		}
	}

	if existingIndex < 0 {
		domain, err := signing.ComputeDomain(cfg.DomainDeposit, cfg.GenesisForkVersion, nil)
		if err != nil {
			return txerrors.Wrap(txerrors.InvalidDepositProof, err, "process_deposit: domain")
		}
		msg := &ethpb.DepositMessage{
			PublicKey:             data.PublicKey,
			WithdrawalCredentials: data.WithdrawalCredentials,
			Amount:                data.Amount,
		}
		signingRoot, err := signing.ComputeSigningRoot(msg, domain)
		if err != nil {
			return txerrors.Wrap(txerrors.InvalidDepositProof, err, "process_deposit: signing root")
		}
		pubkey, pkErr := bls.PublicKeyFromBytes(data.PublicKey)
		sig, sigErr := bls.SignatureFromBytes(data.Signature)
		if pkErr != nil || sigErr != nil || !bls.Verify(pubkey, signingRoot[:], sig) {
			// An unverifiable deposit signature is not a transition
			// failure (spec §4.5): the deposit is simply dropped, since
			// the depositor already lost the funds to the eth1 contract.
			return nil
		}

		effectiveBalance := data.Amount - data.Amount%cfg.EffectiveBalanceIncrement
		if effectiveBalance > cfg.MaxEffectiveBalance {
			effectiveBalance = cfg.MaxEffectiveBalance
		}
		v := &ethpb.Validator{
			PublicKey:                  append([]byte(nil), data.PublicKey...),
			WithdrawalCredentials:       append([]byte(nil), data.WithdrawalCredentials...),
			ActivationEligibilityEpoch: uint64(cfg.FarFutureEpoch),
			ActivationEpoch:             uint64(cfg.FarFutureEpoch),
			ExitEpoch:                   uint64(cfg.FarFutureEpoch),
			WithdrawableEpoch:           uint64(cfg.FarFutureEpoch),
			EffectiveBalance:            effectiveBalance,
		}
		return st.AppendValidator(v, data.Amount)
	}

	return st.IncreaseBalance(primitives.ValidatorIndex(existingIndex), data.Amount)
}
