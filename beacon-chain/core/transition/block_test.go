package transition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

type epochSSZFixture struct {
	Epoch uint64
}

func validRandaoReveal(t *testing.T, k testutil.Keys, epoch primitives.Epoch, fork *ethpb.Fork, genesisRoot []byte) []byte {
	t.Helper()
	domain, err := signing.Domain(fork, epoch, params.BeaconConfig().DomainRandao, genesisRoot)
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(&epochSSZFixture{Epoch: uint64(epoch)}, domain)
	require.NoError(t, err)
	return k.Secret.Sign(root[:]).Marshal()
}

func TestProcessBlock_EmptyBlockAtSlot1(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(8)
	require.NoError(t, err)
	require.NoError(t, ProcessSlots(st, 1))

	proposer, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	latestRoot, err := szz.HashTreeRoot(st.LatestBlockHeader())
	require.NoError(t, err)
	reveal := validRandaoReveal(t, keys[proposer], time.CurrentEpoch(st), st.Fork(), st.GenesisValidatorsRoot())

	block := &ethpb.BeaconBlock{
		Slot:          1,
		ProposerIndex: uint64(proposer),
		ParentRoot:    latestRoot[:],
		StateRoot:     make([]byte, 32),
		Body: &ethpb.BeaconBlockBody{
			RandaoReveal: reveal,
			Eth1Data:     st.Eth1Data(),
			Graffiti:     make([]byte, 32),
		},
	}

	require.NoError(t, ProcessBlock(st, block))
	require.Equal(t, uint64(1), st.LatestBlockHeader().Slot)
}

func TestProcessBlock_WrongProposerRejected(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(8)
	require.NoError(t, err)
	require.NoError(t, ProcessSlots(st, 1))

	proposer, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	wrong := (proposer + 1) % primitives.ValidatorIndex(len(keys))

	latestRoot, err := szz.HashTreeRoot(st.LatestBlockHeader())
	require.NoError(t, err)
	reveal := validRandaoReveal(t, keys[proposer], time.CurrentEpoch(st), st.Fork(), st.GenesisValidatorsRoot())

	block := &ethpb.BeaconBlock{
		Slot:          1,
		ProposerIndex: uint64(wrong),
		ParentRoot:    latestRoot[:],
		StateRoot:     make([]byte, 32),
		Body: &ethpb.BeaconBlockBody{
			RandaoReveal: reveal,
			Eth1Data:     st.Eth1Data(),
			Graffiti:     make([]byte, 32),
		},
	}

	require.Error(t, ProcessBlock(st, block))
}

func TestVerifyOperationCounts_TooManyDeposits(t *testing.T) {
	body := &ethpb.BeaconBlockBody{Deposits: make([]*ethpb.Deposit, 3)}
	require.Error(t, verifyOperationCounts(body, 16, 2, 128, 2, 16))
}
