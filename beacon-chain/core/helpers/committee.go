package helpers

import (
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// ComputeCommittee returns compute_committee(indices, seed, index, count):
// the index'th of count equal-ish slices of indices, each permuted by
// compute_shuffled_index under seed (spec §4.2).
func ComputeCommittee(indices []primitives.ValidatorIndex, seed [32]byte, index, count uint64) ([]primitives.ValidatorIndex, error) {
	if count == 0 {
		return nil, txerrors.New(txerrors.SszTypesError, "compute_committee: zero count")
	}
	total := uint64(len(indices))
	start := (total * index) / count
	end := (total * (index + 1)) / count
	if start > end || end > total {
		return nil, txerrors.New(txerrors.SszTypesError, "compute_committee: bad slice bounds [%d,%d) of %d", start, end, total)
	}

	committee := make([]primitives.ValidatorIndex, 0, end-start)
	for i := start; i < end; i++ {
		shuffled, err := ComputeShuffledIndex(i, total, seed)
		if err != nil {
			return nil, err
		}
		committee = append(committee, indices[shuffled])
	}
	return committee, nil
}

// CommitteeCountPerSlot returns get_committee_count_per_slot(state, epoch):
// clamped to [1, MAX_COMMITTEES_PER_SLOT] by the active set's size.
func CommitteeCountPerSlot(activeValidatorCount uint64) uint64 {
	cfg := params.BeaconConfig()
	count := activeValidatorCount / uint64(cfg.SlotsPerEpoch) / cfg.TargetCommitteeSize
	if count > cfg.MaxCommitteesPerSlot {
		count = cfg.MaxCommitteesPerSlot
	}
	if count < 1 {
		count = 1
	}
	return count
}
