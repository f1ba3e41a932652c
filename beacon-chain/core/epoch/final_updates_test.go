package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestProcessFinalUpdates_RotatesAttestations(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	att := &ethpb.PendingAttestation{Data: &ethpb.AttestationData{Source: &ethpb.Checkpoint{}, Target: &ethpb.Checkpoint{}}}
	require.NoError(t, st.AppendCurrentEpochAttestations(att))

	require.NoError(t, ProcessFinalUpdates(st))

	prev, err := st.PreviousEpochAttestations()
	require.NoError(t, err)
	require.Len(t, prev, 1)

	cur, err := st.CurrentEpochAttestations()
	require.NoError(t, err)
	require.Len(t, cur, 0)
}

func TestProcessFinalUpdates_EffectiveBalanceDropsWithHysteresis(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	require.NoError(t, st.DecreaseBalance(0, cfg.MaxEffectiveBalance/2))

	require.NoError(t, ProcessFinalUpdates(st))

	v, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.Less(t, v.EffectiveBalance, cfg.MaxEffectiveBalance)
}

func TestProcessFinalUpdates_AppendsHistoricalRootAtBoundary(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	require.NoError(t, st.SetSlot(primitives.Slot(7*uint64(cfg.SlotsPerEpoch))))

	before := st.HistoricalRoots()
	require.NoError(t, ProcessFinalUpdates(st))
	after := st.HistoricalRoots()
	require.Len(t, after, len(before)+1)
}
