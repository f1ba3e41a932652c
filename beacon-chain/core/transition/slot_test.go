package transition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestProcessSlot_CachesStateAndBlockRoots(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	require.NoError(t, ProcessSlot(st))

	roots := st.StateRoots()
	require.NotEqual(t, make([]byte, 32), roots[0])
	require.NotEqual(t, make([]byte, 32), st.BlockRoots()[0])
}

func TestProcessSlots_RejectsNonIncreasingTarget(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)
	require.NoError(t, st.SetSlot(5))

	require.Error(t, ProcessSlots(st, 5))
	require.Error(t, ProcessSlots(st, 4))
}

func TestProcessSlots_AdvancesAcrossEpochBoundary(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	target := primitives.Slot(uint64(cfg.SlotsPerEpoch) + 1)
	require.NoError(t, ProcessSlots(st, target))
	require.Equal(t, target, st.Slot())
}
