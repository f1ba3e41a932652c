package v1alpha1

// HistoricalBatch is the object historical_roots entries are the root of:
// a snapshot of one epoch-group's worth of block/state root history
// (spec §4.4 step 5's "historical root accumulator").
type HistoricalBatch struct {
	BlockRoots [][]byte `ssz-size:"?,32" dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
	StateRoots [][]byte `ssz-size:"?,32" dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
}
