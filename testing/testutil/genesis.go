// Package testutil builds small, deterministic BeaconState fixtures for
// unit tests, grounded on the teacher's beacon-chain/core/helpers test
// files' pattern of hand-assembling a *pb.BeaconState with the minimum
// fields a given test needs (beacon_committee_test.go, validators_test.go).
package testutil

import (
	"encoding/binary"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/crypto/bls"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// Keys holds the keypair minted for one fixture validator.
type Keys struct {
	Secret bls.SecretKey
	Public bls.PublicKey
}

// DeterministicKeys derives n BLS keypairs from sequential seeds, stable
// across runs so fixture roots/signatures are reproducible.
func DeterministicKeys(n int) ([]Keys, error) {
	out := make([]Keys, n)
	for i := 0; i < n; i++ {
		seed := make([]byte, 32)
		binary.LittleEndian.PutUint64(seed, uint64(i)+1)
		sk, err := bls.SecretKeyFromSeed(seed)
		if err != nil {
			return nil, err
		}
		out[i] = Keys{Secret: sk, Public: sk.PublicKey()}
	}
	return out, nil
}

// GenesisState builds a minimal, internally-consistent BeaconState with n
// active validators at slot 0, every ring buffer sized per the active
// config. It also returns the DeterministicKeys(n) keypairs behind the
// validators, for callers that need signed objects.
func GenesisState(n int) (*state.BeaconState, []Keys, error) {
	cfg := params.BeaconConfig()
	keys, err := DeterministicKeys(n)
	if err != nil {
		return nil, nil, err
	}

	validators := make([]*ethpb.Validator, n)
	balances := make([]uint64, n)
	for i, k := range keys {
		validators[i] = &ethpb.Validator{
			PublicKey:                  k.Public.Marshal(),
			WithdrawalCredentials:       make([]byte, 32),
			EffectiveBalance:            cfg.MaxEffectiveBalance,
			ActivationEligibilityEpoch: 0,
			ActivationEpoch:             0,
			ExitEpoch:                   uint64(cfg.FarFutureEpoch),
			WithdrawableEpoch:           uint64(cfg.FarFutureEpoch),
		}
		balances[i] = cfg.MaxEffectiveBalance
	}

	blockRoots := make([][]byte, cfg.SlotsPerHistoricalRoot)
	stateRoots := make([][]byte, cfg.SlotsPerHistoricalRoot)
	for i := range blockRoots {
		blockRoots[i] = make([]byte, 32)
		stateRoots[i] = make([]byte, 32)
	}
	randaoMixes := make([][]byte, cfg.EpochsPerHistoricalVector)
	for i := range randaoMixes {
		randaoMixes[i] = make([]byte, 32)
	}
	slashings := make([]uint64, cfg.EpochsPerSlashingsVector)

	pb := &ethpb.BeaconState{
		GenesisTime:           cfg.MinGenesisTime,
		GenesisValidatorsRoot: make([]byte, 32),
		Slot:                  0,
		Fork: &ethpb.Fork{
			PreviousVersion: cfg.GenesisForkVersion,
			CurrentVersion:  cfg.GenesisForkVersion,
			Epoch:           0,
		},
		Eth1DepositIndex: 0,
		LatestBlockHeader: &ethpb.BeaconBlockHeader{
			StateRoot: make([]byte, 32),
			BodyRoot:  make([]byte, 32),
			ParentRoot: make([]byte, 32),
		},
		BlockRoots:       blockRoots,
		StateRoots:       stateRoots,
		Eth1Data:         &ethpb.Eth1Data{DepositRoot: make([]byte, 32), BlockHash: make([]byte, 32)},
		Validators:       validators,
		Balances:         balances,
		RandaoMixes:      randaoMixes,
		Slashings:        slashings,
		JustificationBits: bitfield.NewBitvector4(),
		PreviousJustifiedCheckpoint: &ethpb.Checkpoint{Root: make([]byte, 32)},
		CurrentJustifiedCheckpoint:  &ethpb.Checkpoint{Root: make([]byte, 32)},
		FinalizedCheckpoint:         &ethpb.Checkpoint{Root: make([]byte, 32)},
	}

	st, err := state.InitializeFromProto(pb)
	if err != nil {
		return nil, nil, err
	}
	return st, keys, nil
}
