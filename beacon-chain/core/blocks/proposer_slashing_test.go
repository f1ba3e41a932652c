package blocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/config/params"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
	"github.com/sigmaprime/beacon-core/txerrors"
)

func signHeader(t *testing.T, k testutil.Keys, header *ethpb.BeaconBlockHeader, fork *ethpb.Fork, genesisRoot []byte) *ethpb.SignedBeaconBlockHeader {
	domain, err := signing.Domain(fork, 0, params.BeaconConfig().DomainBeaconProposer, genesisRoot)
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(header, domain)
	require.NoError(t, err)
	return &ethpb.SignedBeaconBlockHeader{Header: header, Signature: k.Secret.Sign(root[:]).Marshal()}
}

func TestProcessProposerSlashing_ValidDoubleProposal(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	h1 := &ethpb.BeaconBlockHeader{Slot: 0, ProposerIndex: 0, ParentRoot: make([]byte, 32), StateRoot: make([]byte, 32), BodyRoot: make([]byte, 32)}
	h2 := &ethpb.BeaconBlockHeader{Slot: 0, ProposerIndex: 0, ParentRoot: append([]byte{1}, make([]byte, 31)...), StateRoot: make([]byte, 32), BodyRoot: make([]byte, 32)}

	ps := &ethpb.ProposerSlashing{
		Header1: signHeader(t, keys[0], h1, st.Fork(), st.GenesisValidatorsRoot()),
		Header2: signHeader(t, keys[0], h2, st.Fork(), st.GenesisValidatorsRoot()),
	}
	require.NoError(t, ProcessProposerSlashing(st, ps))

	v, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.True(t, v.Slashed)
}

func TestProcessProposerSlashing_IdenticalHeaders_Rejected(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	h1 := &ethpb.BeaconBlockHeader{Slot: 0, ProposerIndex: 0, ParentRoot: make([]byte, 32), StateRoot: make([]byte, 32), BodyRoot: make([]byte, 32)}
	h2 := &ethpb.BeaconBlockHeader{Slot: 0, ProposerIndex: 0, ParentRoot: make([]byte, 32), StateRoot: make([]byte, 32), BodyRoot: make([]byte, 32)}

	ps := &ethpb.ProposerSlashing{
		Header1: signHeader(t, keys[0], h1, st.Fork(), st.GenesisValidatorsRoot()),
		Header2: signHeader(t, keys[0], h2, st.Fork(), st.GenesisValidatorsRoot()),
	}
	err = ProcessProposerSlashing(st, ps)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.BadProposerSlashing)))
}

func TestProcessProposerSlashing_DifferentSlots_Rejected(t *testing.T) {
	params.UseMinimalConfig()
	st, keys, err := testutil.GenesisState(4)
	require.NoError(t, err)

	h1 := &ethpb.BeaconBlockHeader{Slot: 0, ProposerIndex: 0, ParentRoot: make([]byte, 32), StateRoot: make([]byte, 32), BodyRoot: make([]byte, 32)}
	h2 := &ethpb.BeaconBlockHeader{Slot: 1, ProposerIndex: 0, ParentRoot: make([]byte, 32), StateRoot: make([]byte, 32), BodyRoot: make([]byte, 32)}

	ps := &ethpb.ProposerSlashing{
		Header1: signHeader(t, keys[0], h1, st.Fork(), st.GenesisValidatorsRoot()),
		Header2: signHeader(t, keys[0], h2, st.Fork(), st.GenesisValidatorsRoot()),
	}
	err = ProcessProposerSlashing(st, ps)
	require.Error(t, err)
	require.True(t, errors.Is(err, txerrors.Of(txerrors.BadProposerSlashing)))
}
