// Package v1alpha1 holds the consensus wire types: the data model of spec
// §3, SSZ-tagged for github.com/pk910/dynamic-ssz (encoding/szz). Field
// names and shapes are ported from the teacher's proto/prysm/v1alpha1
// package, re-expressed as plain Go structs with ssz struct tags instead
// of protobuf-generated code (spec §1: the SSZ codec is an external
// collaborator; only object *shapes* live here).
package v1alpha1

// Fork identifies the wire-format version schedule a state is operating
// under: PreviousVersion is active up to Epoch, CurrentVersion after.
type Fork struct {
	PreviousVersion [4]byte `ssz-size:"4"`
	CurrentVersion  [4]byte `ssz-size:"4"`
	Epoch           uint64
}

// Clone returns a deep copy of f.
func (f *Fork) Clone() *Fork {
	if f == nil {
		return nil
	}
	cpy := *f
	return &cpy
}
