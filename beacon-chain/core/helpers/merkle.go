package helpers

import "github.com/sigmaprime/beacon-core/crypto/hash"

// IsValidMerkleBranch implements is_valid_merkle_branch (spec §4.1):
// recomputes the root leaf belongs to under branch at the given index and
// depth, and compares against root. Used by process_deposit to verify
// inclusion against eth1_data.deposit_root.
func IsValidMerkleBranch(leaf [32]byte, branch [][]byte, depth uint64, index uint64, root [32]byte) bool {
	value := leaf
	for i := uint64(0); i < depth; i++ {
		var sibling [32]byte
		copy(sibling[:], branch[i])
		if (index>>i)&1 == 1 {
			value = hash.Hash(append(append([]byte{}, sibling[:]...), value[:]...))
		} else {
			value = hash.Hash(append(append([]byte{}, value[:]...), sibling[:]...))
		}
	}
	return value == root
}
