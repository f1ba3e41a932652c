package helpers

import (
	"github.com/sigmaprime/beacon-core/beacon-chain/core/time"
	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/time/slots"
)

// BeaconCommitteeFromState returns get_beacon_committee(state, slot, index):
// the attesting committee assigned to (slot, committeeIndex) (spec §4.2).
func BeaconCommitteeFromState(st *state.BeaconState, slot primitives.Slot, committeeIndex primitives.CommitteeIndex) ([]primitives.ValidatorIndex, error) {
	epoch := slots.ToEpoch(slot)
	active := ActiveValidatorIndices(st.Validators(), epoch)
	committeesPerSlot := CommitteeCountPerSlot(uint64(len(active)))

	cfg := params.BeaconConfig()
	seed, err := Seed(st, epoch, cfg.DomainBeaconAttester)
	if err != nil {
		return nil, err
	}

	slotOffset := uint64(slot) % uint64(cfg.SlotsPerEpoch)
	index := slotOffset*committeesPerSlot + uint64(committeeIndex)
	count := committeesPerSlot * uint64(cfg.SlotsPerEpoch)

	return ComputeCommittee(active, seed, index, count)
}

// BeaconProposerIndex returns get_beacon_proposer_index(state): a
// hash-weighted sample over the current epoch's active set, keyed on
// effective balance, ties broken by the deterministic sampling sequence
// itself (spec §4.2).
func BeaconProposerIndex(st *state.BeaconState) (primitives.ValidatorIndex, error) {
	cfg := params.BeaconConfig()
	epoch := time.CurrentEpoch(st)
	// An empty active set is a broken internal invariant, not a recoverable
	// rejection (spec §7): compute_proposer_index panics via txerrors.Bug
	// rather than this accessor returning an error for it.
	active := ActiveValidatorIndices(st.Validators(), epoch)

	seed, err := Seed(st, epoch, cfg.DomainBeaconProposer)
	if err != nil {
		return 0, err
	}
	// Mix the current slot into the seed so the proposer rotates every
	// slot within the epoch, matching compute_proposer_index's
	// slot-keyed seed derivation.
	slotSeed := mixSlotIntoSeed(seed, st.Slot())

	return computeProposerIndex(st, active, slotSeed)
}

func mixSlotIntoSeed(seed [32]byte, slot primitives.Slot) [32]byte {
	buf := make([]byte, 0, 40)
	buf = append(buf, seed[:]...)
	slotBytes := make([]byte, 8)
	for i := 0; i < 8; i++ {
		slotBytes[i] = byte(slot >> (8 * i))
	}
	buf = append(buf, slotBytes...)
	return hashBuf(buf)
}
