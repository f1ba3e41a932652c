package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestProcessEpoch_AtEpochEnd_ClearsCurrentAttestations(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	require.NoError(t, st.SetSlot(primitives.Slot(uint64(cfg.SlotsPerEpoch)-1)))

	require.NoError(t, ProcessEpoch(st))

	cur, err := st.CurrentEpochAttestations()
	require.NoError(t, err)
	require.Len(t, cur, 0)
}
