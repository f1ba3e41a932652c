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

func buildSignedBlockAtSlot1(t *testing.T) *ethpb.SignedBeaconBlock {
	t.Helper()
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

	domain, err := signing.Domain(st.Fork(), time.CurrentEpoch(st), params.BeaconConfig().DomainBeaconProposer, st.GenesisValidatorsRoot())
	require.NoError(t, err)
	signingRoot, err := signing.ComputeSigningRoot(block, domain)
	require.NoError(t, err)
	sig := keys[proposer].Secret.Sign(signingRoot[:]).Marshal()

	return &ethpb.SignedBeaconBlock{Block: block, Signature: sig}
}

func TestExecuteStateTransition_ValidSignatureSkipStateRoot(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	signed := buildSignedBlockAtSlot1(t)
	opts := Options{VerifyBlockSignature: true, VerifyStateRoot: false}

	post, err := ExecuteStateTransition(st, signed, opts)
	require.NoError(t, err)
	require.Equal(t, primitives.Slot(1), post.Slot())
}

func TestExecuteStateTransition_BadSignatureRejected(t *testing.T) {
	params.UseMinimalConfig()
	signed := buildSignedBlockAtSlot1(t)
	signed.Signature = make([]byte, 96)

	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	opts := Options{VerifyBlockSignature: true, VerifyStateRoot: false}
	_, err = ExecuteStateTransition(st, signed, opts)
	require.Error(t, err)
}

func TestExecuteStateTransition_NilBlockRejected(t *testing.T) {
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)
	_, err = ExecuteStateTransition(st, nil, DefaultOptions())
	require.Error(t, err)
}
