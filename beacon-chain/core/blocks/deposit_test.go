package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/beacon-chain/core/signing"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/crypto/hash"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/testing/testutil"
)

// branchFor builds an arbitrary (sibling, root) pair for index 0 at depth
// by folding leaf against each supplied sibling, matching
// is_valid_merkle_branch's own recomputation (helpers/merkle.go).
func branchFor(leaf [32]byte, depth uint64) (branch [][]byte, root [32]byte) {
	value := leaf
	branch = make([][]byte, depth)
	for i := uint64(0); i < depth; i++ {
		sibling := hash.Hash([]byte{byte(i), byte(i >> 8)})
		branch[i] = append([]byte(nil), sibling[:]...)
		value = hash.Hash(append(append([]byte{}, value[:]...), sibling[:]...))
	}
	return branch, value
}

func TestProcessDeposit_NewValidator_ValidSignature(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)
	newKeys, err := testutil.DeterministicKeys(5)
	require.NoError(t, err)
	k := newKeys[4]

	data := &ethpb.DepositData{
		PublicKey:             k.Public.Marshal(),
		WithdrawalCredentials: make([]byte, 32),
		Amount:                params.BeaconConfig().MaxEffectiveBalance,
	}
	domain, err := signing.ComputeDomain(params.BeaconConfig().DomainDeposit, params.BeaconConfig().GenesisForkVersion, nil)
	require.NoError(t, err)
	msg := &ethpb.DepositMessage{PublicKey: data.PublicKey, WithdrawalCredentials: data.WithdrawalCredentials, Amount: data.Amount}
	root, err := signing.ComputeSigningRoot(msg, domain)
	require.NoError(t, err)
	data.Signature = k.Secret.Sign(root[:]).Marshal()

	leaf, err := szz.HashTreeRoot(data)
	require.NoError(t, err)
	depth := params.BeaconConfig().DepositContractTreeDepth + 1
	branch, depositRoot := branchFor(leaf, depth)

	require.NoError(t, st.SetEth1Data(&ethpb.Eth1Data{DepositRoot: depositRoot[:], BlockHash: make([]byte, 32)}))

	before := st.NumValidators()
	require.NoError(t, ProcessDeposit(st, &ethpb.Deposit{Proof: branch, Data: data}))
	require.Equal(t, before+1, st.NumValidators())
	require.Equal(t, uint64(1), st.Eth1DepositIndex())
}

func TestProcessDeposit_BadProof_Rejected(t *testing.T) {
	params.UseMinimalConfig()
	st, _, err := testutil.GenesisState(4)
	require.NoError(t, err)

	data := &ethpb.DepositData{
		PublicKey:             make([]byte, 48),
		WithdrawalCredentials: make([]byte, 32),
		Amount:                params.BeaconConfig().MaxEffectiveBalance,
		Signature:             make([]byte, 96),
	}
	depth := params.BeaconConfig().DepositContractTreeDepth + 1
	badBranch := make([][]byte, depth)
	for i := range badBranch {
		badBranch[i] = make([]byte, 32)
	}
	err = ProcessDeposit(st, &ethpb.Deposit{Proof: badBranch, Data: data})
	require.Error(t, err)
}
