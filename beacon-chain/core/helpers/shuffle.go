package helpers

import (
	"encoding/binary"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/crypto/hash"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ComputeShuffledIndex returns the deterministic, constant-memory
// "swap-or-not" shuffle of index within [0, indexCount) under seed (spec
// §4.2: "must be a bijection on [0, index_count)"). round_count comes from
// params.ShuffleRoundCount.
func ComputeShuffledIndex(index, indexCount uint64, seed [32]byte) (uint64, error) {
	if indexCount == 0 {
		return 0, txerrors.New(txerrors.SszTypesError, "compute_shuffled_index: empty index set")
	}
	if index >= indexCount {
		return 0, txerrors.New(txerrors.SszTypesError, "compute_shuffled_index: index %d out of range %d", index, indexCount)
	}

	rounds := params.BeaconConfig().ShuffleRoundCount
	for round := uint64(0); round < rounds; round++ {
		pivotSource := append(append([]byte{}, seed[:]...), byte(round))
		pivotHash := hash.Hash(pivotSource)
		pivot := binary.LittleEndian.Uint64(pivotHash[:8]) % indexCount

		flip := (pivot + indexCount - index) % indexCount
		position := index
		if flip > position {
			position = flip
		}

		source := append(append([]byte{}, seed[:]...), byte(round))
		source = append(source, uint32ToBytes(uint32(position/256))...)
		sourceHash := hash.Hash(source)
		byteVal := sourceHash[(position%256)/8]
		bitVal := (byteVal >> (position % 8)) & 1

		if bitVal == 1 {
			index = flip
		}
	}
	return index, nil
}

func uint32ToBytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
