package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestProcessRegistryUpdates_GenesisIsNoOp(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	before, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	beforeCopy := before.Clone()

	require.NoError(t, ProcessRegistryUpdates(st))

	after, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.Equal(t, beforeCopy, after)
}

func TestProcessRegistryUpdates_ActivatesQueuedValidator(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	pending, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	cpy := pending.Clone()
	cpy.ActivationEpoch = uint64(cfg.FarFutureEpoch)
	require.NoError(t, st.UpdateValidatorAtIndex(0, cpy))

	require.NoError(t, ProcessRegistryUpdates(st))

	v, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.NotEqual(t, uint64(cfg.FarFutureEpoch), v.ActivationEpoch)
}

func TestProcessRegistryUpdates_EjectsLowBalanceValidator(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	v, err := st.ValidatorAtIndex(1)
	require.NoError(t, err)
	cpy := v.Clone()
	cpy.EffectiveBalance = cfg.EjectionBalance
	require.NoError(t, st.UpdateValidatorAtIndex(1, cpy))

	require.NoError(t, ProcessRegistryUpdates(st))

	after, err := st.ValidatorAtIndex(1)
	require.NoError(t, err)
	require.NotEqual(t, uint64(cfg.FarFutureEpoch), after.ExitEpoch)
}
