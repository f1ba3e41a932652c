package v1alpha1

import "github.com/prysmaticlabs/go-bitfield"

// Checkpoint is an (epoch, root) pair used for source/target voting and
// finality (spec §3). Equality is structural.
type Checkpoint struct {
	Epoch uint64
	Root  []byte `ssz-size:"32"`
}

// Equals reports whether c and other name the same checkpoint.
func (c *Checkpoint) Equals(other *Checkpoint) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Epoch != other.Epoch {
		return false
	}
	if len(c.Root) != len(other.Root) {
		return false
	}
	for i := range c.Root {
		if c.Root[i] != other.Root[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of c.
func (c *Checkpoint) Clone() *Checkpoint {
	if c == nil {
		return nil
	}
	return &Checkpoint{Epoch: c.Epoch, Root: append([]byte(nil), c.Root...)}
}

// AttestationData is the payload an attestation's signature covers (spec §3).
type AttestationData struct {
	Slot            uint64
	CommitteeIndex  uint64
	BeaconBlockRoot []byte `ssz-size:"32"`
	Source          *Checkpoint
	Target          *Checkpoint
}

// Equals reports field-by-field equality, used by is_slashable_attestation_data.
func (a *AttestationData) Equals(other *AttestationData) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.Slot != other.Slot || a.CommitteeIndex != other.CommitteeIndex {
		return false
	}
	if len(a.BeaconBlockRoot) != len(other.BeaconBlockRoot) {
		return false
	}
	for i := range a.BeaconBlockRoot {
		if a.BeaconBlockRoot[i] != other.BeaconBlockRoot[i] {
			return false
		}
	}
	return a.Source.Equals(other.Source) && a.Target.Equals(other.Target)
}

// Clone returns a deep copy of a.
func (a *AttestationData) Clone() *AttestationData {
	if a == nil {
		return nil
	}
	return &AttestationData{
		Slot:            a.Slot,
		CommitteeIndex:  a.CommitteeIndex,
		BeaconBlockRoot: append([]byte(nil), a.BeaconBlockRoot...),
		Source:          a.Source.Clone(),
		Target:          a.Target.Clone(),
	}
}

// Attestation is the unaggregated/aggregated network object: a committee
// bitlist of who attested, the shared AttestationData, and the aggregate
// signature.
type Attestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"2048"`
	Data            *AttestationData
	Signature       []byte `ssz-size:"96"`
}

// IndexedAttestation is the post-committee-resolution form consumed by
// is_valid_indexed_attestation (spec §4.1): a sorted, duplicate-free
// attesting-index list plus the data and aggregate signature.
type IndexedAttestation struct {
	AttestingIndices []uint64 `dynssz-size:"MAX_VALIDATORS_PER_COMMITTEE"`
	Data             *AttestationData
	Signature        []byte `ssz-size:"96"`
}

// PendingAttestation is the form BeaconState retains for reward accounting
// across an epoch (spec §3: previous_epoch_attestations / current_epoch_attestations).
type PendingAttestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"2048"`
	Data            *AttestationData
	InclusionDelay  uint64
	ProposerIndex   uint64
}
