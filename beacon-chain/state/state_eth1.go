package state

import ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"

// Eth1Data returns the current canonical Eth1 vote.
func (b *BeaconState) Eth1Data() *ethpb.Eth1Data { return b.state.Eth1Data }

// SetEth1Data overwrites the canonical Eth1 vote.
func (b *BeaconState) SetEth1Data(data *ethpb.Eth1Data) error {
	b.state.Eth1Data = data
	return nil
}

// Eth1DataVotes returns the pending-votes list accumulated this voting
// period (spec §4.5 process_eth1_data).
func (b *BeaconState) Eth1DataVotes() []*ethpb.Eth1Data { return b.state.Eth1DataVotes }

// AppendEth1DataVote appends to the pending-votes list.
func (b *BeaconState) AppendEth1DataVote(vote *ethpb.Eth1Data) error {
	b.state.Eth1DataVotes = append(b.state.Eth1DataVotes, vote)
	return nil
}

// SetEth1DataVotes overwrites the pending-votes list wholesale, used to
// reset it at a voting-period boundary (spec §4.4 step 5).
func (b *BeaconState) SetEth1DataVotes(votes []*ethpb.Eth1Data) error {
	b.state.Eth1DataVotes = votes
	return nil
}

// Eth1DepositIndex returns the index of the next deposit to process.
func (b *BeaconState) Eth1DepositIndex() uint64 { return b.state.Eth1DepositIndex }

// SetEth1DepositIndex overwrites the next-deposit-index counter.
func (b *BeaconState) SetEth1DepositIndex(index uint64) error {
	b.state.Eth1DepositIndex = index
	return nil
}
