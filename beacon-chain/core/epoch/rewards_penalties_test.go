package epoch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestIntegerSquareRoot(t *testing.T) {
	cases := map[uint64]uint64{0: 0, 1: 1, 3: 1, 4: 2, 16: 4, 17: 4, 1000000: 1000}
	for in, want := range cases {
		require.Equal(t, want, integerSquareRoot(in), "integerSquareRoot(%d)", in)
	}
}

func TestDeltasAdd_SaturatesAtMax(t *testing.T) {
	d := newDeltas(2)
	d.add(0, math.MaxUint64-1)
	d.add(0, 10)
	require.Equal(t, uint64(math.MaxUint64), d[0])
	require.Equal(t, uint64(0), d[1])
}

func TestProcessRewardsAndPenalties_GenesisIsNoOp(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	before := append([]uint64(nil), st.Balances()...)
	require.NoError(t, ProcessRewardsAndPenalties(st))
	require.Equal(t, before, st.Balances())
}
