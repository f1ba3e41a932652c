package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func signedRandaoReveal(t *testing.T, k testutil.Keys, epoch primitives.Epoch, fork *ethpb.Fork, genesisRoot []byte) []byte {
	domain, err := signing.Domain(fork, epoch, params.BeaconConfig().DomainRandao, genesisRoot)
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(epochContainer(epoch), domain)
	require.NoError(t, err)
	return k.Secret.Sign(root[:]).Marshal()
}

func TestProcessRandao_ValidReveal_MixesIn(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(8)
	require.NoError(t, err)

	proposerIdx, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	epoch := coretime.CurrentEpoch(st)

	before, err := st.RandaoMixAtIndex(uint64(epoch) % uint64(params.BeaconConfig().EpochsPerHistoricalVector))
	require.NoError(t, err)

	reveal := signedRandaoReveal(t, keys[proposerIdx], epoch, st.Fork(), st.GenesisValidatorsRoot())
	body := &ethpb.BeaconBlockBody{RandaoReveal: reveal}
	require.NoError(t, ProcessRandao(st, body))

	after, err := st.RandaoMixAtIndex(uint64(epoch) % uint64(params.BeaconConfig().EpochsPerHistoricalVector))
	require.NoError(t, err)
	require.NotEqual(t, before, after)
}

func TestProcessRandao_WrongSigner_Rejected(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(8)
	require.NoError(t, err)

	proposerIdx, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	wrongIdx := (proposerIdx + 1) % primitives.ValidatorIndex(len(keys))
	epoch := coretime.CurrentEpoch(st)

	reveal := signedRandaoReveal(t, keys[wrongIdx], epoch, st.Fork(), st.GenesisValidatorsRoot())
	body := &ethpb.BeaconBlockBody{RandaoReveal: reveal}
	require.Error(t, ProcessRandao(st, body))
}
