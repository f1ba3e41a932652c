package v1alpha1

import "github.com/prysmaticlabs/go-bitfield"

// BeaconState is the single authoritative consensus object (spec §3). Every
// field listed in the distilled spec is present; the phase-1 carryover
// fields at the bottom serialize/deserialize round-trip identically but are
// untouched by the phase-0 transition rules this engine implements (design
// note §9, SPEC_FULL Part C).
type BeaconState struct {
	// Versioning.
	GenesisTime           uint64
	GenesisValidatorsRoot []byte `ssz-size:"32"`
	Slot                  uint64
	Fork                  *Fork

	// History.
	LatestBlockHeader *BeaconBlockHeader
	BlockRoots        [][]byte `ssz-size:"?,32" dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
	StateRoots        [][]byte `ssz-size:"?,32" dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
	HistoricalRoots   [][]byte `ssz-size:"?,32" ssz-max:"16777216,?" dynssz-max:"HISTORICAL_ROOTS_LIMIT,?"`

	// Eth1 bridge.
	Eth1Data         *Eth1Data
	Eth1DataVotes    []*Eth1Data `ssz-max:"2048" dynssz-max:"SLOTS_PER_ETH1_VOTING_PERIOD"`
	Eth1DepositIndex uint64

	// Registry.
	Validators []*Validator `ssz-max:"1099511627776" dynssz-max:"VALIDATOR_REGISTRY_LIMIT"`
	Balances   []uint64     `ssz-max:"1099511627776" dynssz-max:"VALIDATOR_REGISTRY_LIMIT"`

	// Randomness.
	RandaoMixes [][]byte `ssz-size:"?,32" dynssz-size:"EPOCHS_PER_HISTORICAL_VECTOR,32"`

	// Slashings.
	Slashings []uint64 `dynssz-size:"EPOCHS_PER_SLASHINGS_VECTOR"`

	// Attestations.
	PreviousEpochAttestations []*PendingAttestation `ssz-max:"4096" dynssz-max:"MAX_ATTESTATIONS*SLOTS_PER_EPOCH"`
	CurrentEpochAttestations  []*PendingAttestation `ssz-max:"4096" dynssz-max:"MAX_ATTESTATIONS*SLOTS_PER_EPOCH"`

	// Finality.
	JustificationBits           bitfield.Bitvector4
	PreviousJustifiedCheckpoint *Checkpoint
	CurrentJustifiedCheckpoint  *Checkpoint
	FinalizedCheckpoint         *Checkpoint

	// Phase-1 carryover fields: untouched by this engine's transition
	// rules, but round-tripped byte-for-byte (design note §9).
	ShardStates            []byte `ssz-size:"?" dynssz-size:"32"`
	OnlineCountdown        []byte `ssz-size:"?" dynssz-size:"VALIDATOR_REGISTRY_LIMIT"`
	CurrentEpochStartShard uint64
	ExposedDerivedSecrets  []byte `ssz-size:"?" dynssz-size:"32"`
}
