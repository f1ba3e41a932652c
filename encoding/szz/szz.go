// Package szz adapts github.com/pk910/dynamic-ssz into the canonical SSZ
// codec and tree-hasher the state-transition engine consumes (spec §6: SSZ
// encode/decode and hash_tree_root are external collaborators, only their
// interfaces are specified here). dynssz resolves dynamic-length fields
// (validator registry, attestation lists, etc.) from the active
// params.Config at call time via struct `ssz-max`/`dynssz-max` tags, so a
// single codec instance serves both the Mainnet and Minimal profiles.
package szz

import (
	"sync"

	dynssz "github.com/pk910/dynamic-ssz"

	"github.com/sigmaprime/beacon-core/config/params"
)

var (
	mu       sync.Mutex
	cachedFor *params.Config
	codec    *dynssz.DynSsz
)

// specsFromConfig maps the active Config's dynamic-size constants into the
// spec-name keys dynssz-size and dynssz-max tags reference, matching the
// upstream preset naming (e.g. `dynssz-size:"SLOTS_PER_HISTORICAL_ROOT"`,
// `dynssz-max:"VALIDATOR_REGISTRY_LIMIT"`).
func specsFromConfig(cfg *params.Config) map[string]any {
	return map[string]any{
		"SLOTS_PER_HISTORICAL_ROOT":    uint64(cfg.SlotsPerHistoricalRoot),
		"SLOTS_PER_EPOCH":              uint64(cfg.SlotsPerEpoch),
		"SLOTS_PER_ETH1_VOTING_PERIOD": uint64(cfg.SlotsPerEth1VotingPeriod),
		"EPOCHS_PER_HISTORICAL_VECTOR": uint64(cfg.EpochsPerHistoricalVector),
		"EPOCHS_PER_SLASHINGS_VECTOR":  uint64(cfg.EpochsPerSlashingsVector),
		"HISTORICAL_ROOTS_LIMIT":       cfg.HistoricalRootsLimit,
		"VALIDATOR_REGISTRY_LIMIT":     cfg.ValidatorRegistryLimit,
		"MAX_ATTESTATIONS":             cfg.MaxAttestations,
		"MAX_DEPOSITS":                 cfg.MaxDeposits,
		"MAX_VOLUNTARY_EXITS":          cfg.MaxVoluntaryExits,
		"MAX_PROPOSER_SLASHINGS":       cfg.MaxProposerSlashings,
		"MAX_ATTESTER_SLASHINGS":       cfg.MaxAttesterSlashings,
		"MAX_VALIDATORS_PER_COMMITTEE": cfg.MaxValidatorsPerCommittee,
	}
}

// Codec returns the process-wide *dynssz.DynSsz instance for the currently
// active params.Config, rebuilding it if the active config changed (tests
// that flip between Mainnet/Minimal via params.UseMainnetConfig,
// params.UseMinimalConfig or params.OverrideBeaconConfig get a fresh one).
func Codec() *dynssz.DynSsz {
	mu.Lock()
	defer mu.Unlock()

	cfg := params.BeaconConfig()
	if codec == nil || cachedFor != cfg {
		codec = dynssz.NewDynSsz(specsFromConfig(cfg))
		cachedFor = cfg
	}
	return codec
}

// Marshal returns the canonical SSZ encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	return Codec().MarshalSSZ(v)
}

// Unmarshal decodes buf into v, which must be a pointer.
func Unmarshal(buf []byte, v interface{}) error {
	return Codec().UnmarshalSSZ(v, buf)
}

// HashTreeRoot computes the 32-byte Merkleization root of v (spec §6:
// pad to powers of two with zero chunks, fold by SHA-256 pairwise, mix
// list roots with length).
func HashTreeRoot(v interface{}) ([32]byte, error) {
	return Codec().HashTreeRoot(v)
}
