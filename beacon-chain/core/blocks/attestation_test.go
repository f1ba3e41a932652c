package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	coretime "github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/config/params"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
	"github.com/sigmaprime/beacon-core/txerrors"
)

func TestProcessAttestation_CommitteeIndexOutOfRange(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	att := &ethpb.Attestation{
		Data: &ethpb.AttestationData{
			Slot:            uint64(st.Slot()),
			CommitteeIndex:  9999,
			Target:          &ethpb.Checkpoint{Epoch: uint64(coretime.CurrentEpoch(st))},
			Source:          &ethpb.Checkpoint{},
		},
	}
	err = ProcessAttestation(st, att)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.CommitteeIndexOutOfRange)))
}

func TestProcessAttestation_TargetEpochMismatch(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	att := &ethpb.Attestation{
		Data: &ethpb.AttestationData{
			Slot:           uint64(st.Slot()),
			CommitteeIndex: 0,
			Target:         &ethpb.Checkpoint{Epoch: uint64(coretime.CurrentEpoch(st)) + 5},
			Source:         &ethpb.Checkpoint{},
		},
	}
	err = ProcessAttestation(st, att)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.AttestationBadTargetEpoch)))
}

func TestProcessAttestation_TooEarly(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(8)
	require.NoError(t, err)

	att := &ethpb.Attestation{
		Data: &ethpb.AttestationData{
			Slot:           uint64(st.Slot()),
			CommitteeIndex: 0,
			Target:         &ethpb.Checkpoint{Epoch: uint64(coretime.CurrentEpoch(st))},
			Source:         &ethpb.Checkpoint{},
		},
	}
	err = ProcessAttestation(st, att)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.AttestationTooEarly)))
}
