package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
	"github.com/sigmaprime/beacon-core/txerrors"
)

func TestProcessVoluntaryExit_TooSoon(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	exit := &ethpb.VoluntaryExit{ValidatorIndex: 0, Epoch: 0}
	domain, err := signing.Domain(st.Fork(), 0, params.BeaconConfig().DomainVoluntaryExit, st.GenesisValidatorsRoot())
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(exit, domain)
	require.NoError(t, err)

	signed := &ethpb.SignedVoluntaryExit{Exit: exit, Signature: keys[0].Secret.Sign(root[:]).Marshal()}
	err = ProcessVoluntaryExit(st, signed)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.ValidatorNotActiveLongEnough)))
}

func TestProcessVoluntaryExit_ValidSignatureExits(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	matureEpoch := primitives.Epoch(cfg.ShardCommitteePeriod)
	require.NoError(t, st.SetSlot(primitives.Slot(uint64(matureEpoch)*uint64(cfg.SlotsPerEpoch))))
	require.Equal(t, matureEpoch, coretime.CurrentEpoch(st))

	exit := &ethpb.VoluntaryExit{ValidatorIndex: 0, Epoch: uint64(matureEpoch)}
	domain, err := signing.Domain(st.Fork(), matureEpoch, cfg.DomainVoluntaryExit, st.GenesisValidatorsRoot())
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(exit, domain)
	require.NoError(t, err)

	signed := &ethpb.SignedVoluntaryExit{Exit: exit, Signature: keys[0].Secret.Sign(root[:]).Marshal()}
	require.NoError(t, ProcessVoluntaryExit(st, signed))

	v, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.NotEqual(t, uint64(cfg.FarFutureEpoch), v.ExitEpoch)
}

func TestProcessVoluntaryExit_WrongSignature(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	matureEpoch := primitives.Epoch(cfg.ShardCommitteePeriod)
	require.NoError(t, st.SetSlot(primitives.Slot(uint64(matureEpoch)*uint64(cfg.SlotsPerEpoch))))

	exit := &ethpb.VoluntaryExit{ValidatorIndex: 0, Epoch: uint64(matureEpoch)}
	domain, err := signing.Domain(st.Fork(), matureEpoch, cfg.DomainVoluntaryExit, st.GenesisValidatorsRoot())
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(exit, domain)
	require.NoError(t, err)

	signed := &ethpb.SignedVoluntaryExit{Exit: exit, Signature: keys[1].Secret.Sign(root[:]).Marshal()}
	err = ProcessVoluntaryExit(st, signed)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.InvalidExitSignature)))
}
