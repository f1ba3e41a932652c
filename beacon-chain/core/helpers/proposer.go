package helpers

import (
	"encoding/binary"

	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/hash"
	"github.com/sigmaprime/beacon-core/txerrors"
)

const maxRandomByte = uint64(1<<8 - 1)

func hashBuf(buf []byte) [32]byte {
	return hash.Hash(buf)
}

// computeProposerIndex implements compute_proposer_index: repeated
// hash-weighted sampling over indices, each candidate accepted with
// probability proportional to its effective balance (spec §4.2, "ties
// broken by smaller index" falls out of the deterministic iteration order:
// the same (indices, seed) input always samples the same index first).
func computeProposerIndex(st *state.BeaconState, indices []primitives.ValidatorIndex, seed [32]byte) (primitives.ValidatorIndex, error) {
	cfg := params.BeaconConfig()
	total := uint64(len(indices))
	if total == 0 {
		txerrors.PanicBug(txerrors.UnableToDetermineProducer, "compute_proposer_index: empty index set")
	}

	for i := uint64(0); ; i++ {
		shuffled, err := ComputeShuffledIndex(i%total, total, seed)
		if err != nil {
			return 0, err
		}
		candidate := indices[shuffled]

		roundBytes := make([]byte, 8)
		binary.LittleEndian.PutUint64(roundBytes, i/32)
		digest := hashBuf(append(append([]byte{}, seed[:]...), roundBytes...))
		randomByte := uint64(digest[i%32])

		v, err := st.ValidatorAtIndex(candidate)
		if err != nil {
			return 0, err
		}
		if v.EffectiveBalance*maxRandomByte >= cfg.MaxEffectiveBalance*randomByte {
			return candidate, nil
		}
	}
}
