package helpers

import (
	"sort"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// AttestingIndices returns the committee members aggBits marks as having
// attested, ascending and duplicate-free — the shape
// IsValidIndexedAttestation requires (spec §4.5 process_attestation:
// "derive indexed attestation from committee + aggregation bits").
func AttestingIndices(aggBits bitfield.Bitlist, committee []primitives.ValidatorIndex) ([]uint64, error) {
	if aggBits.Len() != uint64(len(committee)) {
		return nil, txerrors.New(txerrors.BadAggregationBitsLength, "failed to verify aggregation bitfield: wanted participants bitfield length %d, got: %d", len(committee), aggBits.Len())
	}
	indices := make([]uint64, 0, len(committee))
	for i, member := range committee {
		if aggBits.BitAt(uint64(i)) {
			indices = append(indices, uint64(member))
		}
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices, nil
}

// ConvertToIndexed builds an IndexedAttestation from an Attestation and the
// committee it was assigned to (spec §4.5).
func ConvertToIndexed(att *ethpb.Attestation, committee []primitives.ValidatorIndex) (*ethpb.IndexedAttestation, error) {
	indices, err := AttestingIndices(att.AggregationBits, committee)
	if err != nil {
		return nil, err
	}
	return &ethpb.IndexedAttestation{
		AttestingIndices: indices,
		Data:             att.Data,
		Signature:        att.Signature,
	}, nil
}
