package validators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/helpers"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestInitiateValidatorExit_AlreadyExiting_NoOp(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	require.NoError(t, InitiateValidatorExit(st, 0))
	v, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	firstExit := v.ExitEpoch

	require.NoError(t, InitiateValidatorExit(st, 0))
	v, err = st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.Equal(t, firstExit, v.ExitEpoch)
}

func TestInitiateValidatorExit_ChurnPushesLaterValidatorsOut(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	limit := ChurnLimit(st)
	require.Greater(t, limit, uint64(0))

	var last primitives.Epoch
	for i := primitives.ValidatorIndex(0); uint64(i) < limit+1; i++ {
		require.NoError(t, InitiateValidatorExit(st, i))
		v, err := st.ValidatorAtIndex(i)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v.ExitEpoch, uint64(last))
		last = primitives.Epoch(v.ExitEpoch)
	}

	overflow, err := st.ValidatorAtIndex(primitives.ValidatorIndex(limit))
	require.NoError(t, err)
	first, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.Greater(t, overflow.ExitEpoch, first.ExitEpoch)
}

func TestSlashValidator_MarksSlashedAndPaysRewards(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	proposer, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	preBalance, err := st.BalanceAtIndex(proposer)
	require.NoError(t, err)

	const slashed = primitives.ValidatorIndex(1)
	require.NoError(t, SlashValidator(st, slashed, NoWhistleblower))

	v, err := st.ValidatorAtIndex(slashed)
	require.NoError(t, err)
	require.True(t, v.Slashed)
	require.NotEqual(t, uint64(params.BeaconConfig().FarFutureEpoch), v.ExitEpoch)
	slashedBalance, err := st.BalanceAtIndex(slashed)
	require.NoError(t, err)
	require.Less(t, slashedBalance, params.BeaconConfig().MaxEffectiveBalance)

	postBalance, err := st.BalanceAtIndex(proposer)
	require.NoError(t, err)
	if proposer != slashed {
		require.Greater(t, postBalance, preBalance)
	}
}
