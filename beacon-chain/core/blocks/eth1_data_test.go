package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestProcessEth1Data_AdoptsOnMajority(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	vote := &ethpb.Eth1Data{
		DepositRoot:  append([]byte{1}, make([]byte, 31)...),
		DepositCount: 1,
		BlockHash:    append([]byte{2}, make([]byte, 31)...),
	}

	threshold := uint64(params.BeaconConfig().SlotsPerEth1VotingPeriod)
	needed := threshold/2 + 1
	for i := uint64(0); i < needed-1; i++ {
		require.NoError(t, ProcessEth1Data(st, vote))
		require.NotEqual(t, vote.DepositCount, st.Eth1Data().DepositCount)
	}
	require.NoError(t, ProcessEth1Data(st, vote))
	require.Equal(t, vote.DepositCount, st.Eth1Data().DepositCount)
}

func TestProcessEth1Data_MinorityDoesNotAdopt(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)
	original := st.Eth1Data()

	vote := &ethpb.Eth1Data{
		DepositRoot:  append([]byte{9}, make([]byte, 31)...),
		DepositCount: 7,
		BlockHash:    append([]byte{9}, make([]byte, 31)...),
	}
	require.NoError(t, ProcessEth1Data(st, vote))
	require.Equal(t, original.DepositCount, st.Eth1Data().DepositCount)
}
