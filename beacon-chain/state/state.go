// Package state wraps the raw v1alpha1.BeaconState wire type in the
// read/mutate contract spec §3's "Ownership" clause requires: accessors
// take read-only views, the slot/epoch/block processors take an exclusive
// mutable view. Modeled on the teacher's beacon-chain/state package, but
// collapsed to a single concrete type since this engine only ever carries
// phase-0 semantics (SPEC_FULL Part D.3) rather than prysm's
// version-dispatching interface.
package state

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// BeaconState is the exclusive-mutable-owner handle to a v1alpha1.BeaconState.
type BeaconState struct {
	state *ethpb.BeaconState
}

// InitializeFromProto wraps an existing wire-format state. It takes
// ownership of pb — callers that need to retain their own copy should
// clone first.
func InitializeFromProto(pb *ethpb.BeaconState) (*BeaconState, error) {
	if pb == nil {
		return nil, errors.New("state: nil proto")
	}
	return &BeaconState{state: pb}, nil
}

// CloneInnerState returns a deep copy of the wrapped wire-format state,
// safe to hand to a caller that wants its own mutable copy.
func (b *BeaconState) CloneInnerState() *ethpb.BeaconState {
	s := b.state
	cpy := &ethpb.BeaconState{
		GenesisTime:            s.GenesisTime,
		GenesisValidatorsRoot:  append([]byte(nil), s.GenesisValidatorsRoot...),
		Slot:                   s.Slot,
		Fork:                   s.Fork.Clone(),
		LatestBlockHeader:      s.LatestBlockHeader.Clone(),
		BlockRoots:             cloneRoots(s.BlockRoots),
		StateRoots:             cloneRoots(s.StateRoots),
		HistoricalRoots:        cloneRoots(s.HistoricalRoots),
		Eth1Data:               s.Eth1Data.Clone(),
		Eth1DataVotes:          cloneEth1Votes(s.Eth1DataVotes),
		Eth1DepositIndex:       s.Eth1DepositIndex,
		Validators:             cloneValidators(s.Validators),
		Balances:               append([]uint64(nil), s.Balances...),
		RandaoMixes:            cloneRoots(s.RandaoMixes),
		Slashings:              append([]uint64(nil), s.Slashings...),
		PreviousEpochAttestations: clonePendingAttestations(s.PreviousEpochAttestations),
		CurrentEpochAttestations:  clonePendingAttestations(s.CurrentEpochAttestations),
		JustificationBits:      append(bitfield.Bitvector4(nil), s.JustificationBits...),
		PreviousJustifiedCheckpoint: s.PreviousJustifiedCheckpoint.Clone(),
		CurrentJustifiedCheckpoint:  s.CurrentJustifiedCheckpoint.Clone(),
		FinalizedCheckpoint:         s.FinalizedCheckpoint.Clone(),
		ShardStates:            append([]byte(nil), s.ShardStates...),
		OnlineCountdown:        append([]byte(nil), s.OnlineCountdown...),
		CurrentEpochStartShard: s.CurrentEpochStartShard,
		ExposedDerivedSecrets:  append([]byte(nil), s.ExposedDerivedSecrets...),
	}
	return cpy
}

// Copy returns a fresh *BeaconState sharing no memory with b, per
// SPEC_FULL Part E's transactional-by-default decision: state_transition
// always mutates a copy, never the caller's original.
func (b *BeaconState) Copy() *BeaconState {
	return &BeaconState{state: b.CloneInnerState()}
}

// HashTreeRoot computes hash_tree_root(state) (spec §4.6 step 4).
func (b *BeaconState) HashTreeRoot() ([32]byte, error) {
	root, err := szz.HashTreeRoot(b.state)
	if err != nil {
		return [32]byte{}, txerrors.Wrap(txerrors.SszTypesError, err, "hash_tree_root(state)")
	}
	return root, nil
}

func cloneRoots(roots [][]byte) [][]byte {
	out := make([][]byte, len(roots))
	for i, r := range roots {
		out[i] = append([]byte(nil), r...)
	}
	return out
}

func cloneValidators(vs []*ethpb.Validator) []*ethpb.Validator {
	out := make([]*ethpb.Validator, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

func cloneEth1Votes(vs []*ethpb.Eth1Data) []*ethpb.Eth1Data {
	out := make([]*ethpb.Eth1Data, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

func clonePendingAttestations(as []*ethpb.PendingAttestation) []*ethpb.PendingAttestation {
	out := make([]*ethpb.PendingAttestation, len(as))
	for i, a := range as {
		out[i] = &ethpb.PendingAttestation{
			AggregationBits: append(bitfield.Bitlist(nil), a.AggregationBits...),
			Data:            a.Data.Clone(),
			InclusionDelay:  a.InclusionDelay,
			ProposerIndex:   a.ProposerIndex,
		}
	}
	return out
}

// Slot returns the state's current slot.
func (b *BeaconState) Slot() primitives.Slot { return primitives.Slot(b.state.Slot) }

// SetSlot overwrites the state's current slot.
func (b *BeaconState) SetSlot(slot primitives.Slot) error {
	b.state.Slot = uint64(slot)
	return nil
}

// Fork returns the active fork-version pair.
func (b *BeaconState) Fork() *ethpb.Fork { return b.state.Fork }

// SetFork overwrites the active fork-version pair.
func (b *BeaconState) SetFork(fork *ethpb.Fork) error {
	b.state.Fork = fork
	return nil
}

// GenesisTime returns the state's genesis-time field.
func (b *BeaconState) GenesisTime() uint64 { return b.state.GenesisTime }

// GenesisValidatorsRoot returns the immutable root binding this chain's
// validator set at genesis, used by get_domain (spec §4.2).
func (b *BeaconState) GenesisValidatorsRoot() []byte { return b.state.GenesisValidatorsRoot }

// LatestBlockHeader returns the most recently applied (possibly still-open)
// block header.
func (b *BeaconState) LatestBlockHeader() *ethpb.BeaconBlockHeader { return b.state.LatestBlockHeader }

// SetLatestBlockHeader overwrites the latest block header.
func (b *BeaconState) SetLatestBlockHeader(h *ethpb.BeaconBlockHeader) error {
	b.state.LatestBlockHeader = h
	return nil
}

// InnerState exposes the wrapped wire-format state to the packages that
// need a full view for SSZ hashing or fixture comparison. Not for mutation
// outside this package's setters.
func (b *BeaconState) InnerState() *ethpb.BeaconState { return b.state }
