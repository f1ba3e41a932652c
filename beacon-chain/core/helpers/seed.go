package helpers

import (
	"encoding/binary"

	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/crypto/hash"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// RandaoReader is the minimal read-only contract get_seed needs.
type RandaoReader interface {
	RandaoMixAtIndex(i uint64) ([]byte, error)
}

// Seed returns get_seed(state, epoch, domain_type): domain_type ++
// epoch-as-8-bytes-LE ++ the randao mix from
// epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1, hashed.
// This is the randomness root compute_shuffled_index and
// get_beacon_proposer_index both draw from (spec §4.2).
func Seed(st RandaoReader, epoch primitives.Epoch, domainType primitives.DomainType) ([32]byte, error) {
	cfg := params.BeaconConfig()
	mixEpoch := epoch + cfg.EpochsPerHistoricalVector - cfg.MinSeedLookahead - 1
	mixIndex := uint64(mixEpoch) % uint64(cfg.EpochsPerHistoricalVector)

	mix, err := st.RandaoMixAtIndex(mixIndex)
	if err != nil {
		return [32]byte{}, txerrors.Wrap(txerrors.EpochOutOfBounds, err, "get_seed: randao mix lookup")
	}

	buf := make([]byte, 0, 4+8+32)
	buf = append(buf, domainType[:]...)
	epochBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(epochBytes, uint64(epoch))
	buf = append(buf, epochBytes...)
	buf = append(buf, mix...)

	return hash.Hash(buf), nil
}
