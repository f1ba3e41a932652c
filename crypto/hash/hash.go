// Package hash wraps the SHA-256 implementation consumed by RANDAO mixing,
// the committee shuffle, seed and proposer selection, and Merkle-branch
// checks (spec §4.5, and original_source's
// crypto.rs, which confirms plain SHA-256 rather than a BLS-specific hash).
package hash

import (
	"github.com/minio/sha256-simd"
)

// Hash256 is a 32-byte SHA-256 digest.
type Hash256 [32]byte

// Hash returns sha256(data).
func Hash(data []byte) Hash256 {
	return sha256.Sum256(data)
}

// XOR returns the byte-wise a ^ b of two 32-byte values. Used to mix a RANDAO
// reveal's hash into a randao_mixes slot (spec §4.5).
func XOR(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
