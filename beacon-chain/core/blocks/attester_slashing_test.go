package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
	"github.com/sigmaprime/beacon-core/txerrors"
)

func signIndexedAttestation(t *testing.T, k testutil.Keys, fork *ethpb.Fork, genesisRoot []byte, data *ethpb.AttestationData, indices []uint64) *ethpb.IndexedAttestation {
	domain, err := signing.Domain(fork, primitives.Epoch(data.Target.Epoch), params.BeaconConfig().DomainBeaconAttester, genesisRoot)
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(data, domain)
	require.NoError(t, err)
	return &ethpb.IndexedAttestation{AttestingIndices: indices, Data: data, Signature: k.Secret.Sign(root[:]).Marshal()}
}

func TestProcessAttesterSlashing_DoubleVote_Slashes(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	data1 := &ethpb.AttestationData{
		Slot:            0,
		CommitteeIndex:  0,
		BeaconBlockRoot: append([]byte{1}, make([]byte, 31)...),
		Source:          &ethpb.Checkpoint{Epoch: 0, Root: make([]byte, 32)},
		Target:          &ethpb.Checkpoint{Epoch: 1, Root: make([]byte, 32)},
	}
	data2 := &ethpb.AttestationData{
		Slot:            0,
		CommitteeIndex:  0,
		BeaconBlockRoot: append([]byte{2}, make([]byte, 31)...),
		Source:          &ethpb.Checkpoint{Epoch: 0, Root: make([]byte, 32)},
		Target:          &ethpb.Checkpoint{Epoch: 1, Root: make([]byte, 32)},
	}

	as := &ethpb.AttesterSlashing{
		Attestation1: signIndexedAttestation(t, keys[0], st.Fork(), st.GenesisValidatorsRoot(), data1, []uint64{0}),
		Attestation2: signIndexedAttestation(t, keys[0], st.Fork(), st.GenesisValidatorsRoot(), data2, []uint64{0}),
	}
	require.NoError(t, ProcessAttesterSlashing(st, as))

	v, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.True(t, v.Slashed)
}

func TestProcessAttesterSlashing_NotSlashable_Rejected(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	data := &ethpb.AttestationData{
		Slot:            0,
		CommitteeIndex:  0,
		BeaconBlockRoot: make([]byte, 32),
		Source:          &ethpb.Checkpoint{Epoch: 0, Root: make([]byte, 32)},
		Target:          &ethpb.Checkpoint{Epoch: 1, Root: make([]byte, 32)},
	}

	as := &ethpb.AttesterSlashing{
		Attestation1: signIndexedAttestation(t, keys[0], st.Fork(), st.GenesisValidatorsRoot(), data, []uint64{0}),
		Attestation2: signIndexedAttestation(t, keys[0], st.Fork(), st.GenesisValidatorsRoot(), data, []uint64{0}),
	}
	err = ProcessAttesterSlashing(st, as)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.BadAttesterSlashing)))
}
