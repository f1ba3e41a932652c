package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigmaprime/beacon-core/crypto/hash"
)

func TestIsValidMerkleBranch_RoundTrip(t *testing.T) {
	leaf := hash.Hash([]byte("leaf"))
	const depth = 4
	var branch [][]byte
	value := [32]byte(leaf)
	for i := uint64(0); i < depth; i++ {
		sibling := hash.Hash([]byte{byte(i)})
		branch = append(branch, append([]byte(nil), sibling[:]...))
		value = hash.Hash(append(append([]byte{}, value[:]...), sibling[:]...))
	}

	require.True(t, IsValidMerkleBranch([32]byte(leaf), branch, depth, 0, value))
}

func TestIsValidMerkleBranch_WrongIndexFails(t *testing.T) {
	leaf := hash.Hash([]byte("leaf"))
	const depth = 4
	var branch [][]byte
	value := [32]byte(leaf)
	for i := uint64(0); i < depth; i++ {
		sibling := hash.Hash([]byte{byte(i)})
		branch = append(branch, append([]byte(nil), sibling[:]...))
		value = hash.Hash(append(append([]byte{}, value[:]...), sibling[:]...))
	}

	require.False(t, IsValidMerkleBranch([32]byte(leaf), branch, depth, 1, value))
}
