package epoch

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

func TestProcessJustificationAndFinalization_GenesisIsNoOp(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	before := st.JustificationBits()
	require.NoError(t, ProcessJustificationAndFinalization(st))
	require.Equal(t, before, st.JustificationBits())
}

func TestShiftJustificationBits(t *testing.T) {
	old := bitfield.NewBitvector4()
	old.SetBitAt(0, true)
	old.SetBitAt(2, true)

	shifted := shiftJustificationBits(old)
	require.False(t, shifted.BitAt(0))
	require.True(t, shifted.BitAt(1))
	require.False(t, shifted.BitAt(2))
	require.True(t, shifted.BitAt(3))
}

func TestAllBitsSet(t *testing.T) {
	bits := bitfield.NewBitvector4()
	bits.SetBitAt(1, true)
	bits.SetBitAt(2, true)
	bits.SetBitAt(3, true)

	require.True(t, allBitsSet(bits, 1, 4))
	require.False(t, allBitsSet(bits, 0, 4))
}
