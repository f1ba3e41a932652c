package blocks

import (
	"bytes"

	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/config/params"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// ProcessEth1Data implements process_eth1_data (spec §4.5): appends the
// block's vote to the pending list, then adopts it as canonical once it
// has strictly more than half of SLOTS_PER_ETH1_VOTING_PERIOD votes.
func ProcessEth1Data(st *state.BeaconState, vote *ethpb.Eth1Data) error {
	if err := st.AppendEth1DataVote(vote); err != nil {
		return err
	}

	votes := st.Eth1DataVotes()
	count := 0
	for _, v := range votes {
		if eth1DataEqual(v, vote) {
			count++
		}
	}

	if uint64(count)*2 > uint64(params.BeaconConfig().SlotsPerEth1VotingPeriod) {
		return st.SetEth1Data(vote)
	}
	return nil
}

func eth1DataEqual(a, b *ethpb.Eth1Data) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.DepositCount == b.DepositCount &&
		bytes.Equal(a.DepositRoot, b.DepositRoot) &&
		bytes.Equal(a.BlockHash, b.BlockHash)
}
