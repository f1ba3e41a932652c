// Package params supplies the protocol-constant bundle threaded through
// every call in the state-transition engine (spec §6, design note §9:
// "a runtime configuration value threaded through every call"). Two
// profiles are provided out of the box, Mainnet and Minimal; the core is
// parametric over whichever *Config is active.
package params

import (
	"sync/atomic"

	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
)

// ForkEntry pins a fork's wire version to the epoch at which it activates.
type ForkEntry struct {
	Epoch   primitives.Epoch
	Version [4]byte
}

// Config is the full protocol-constant bundle. Every constant named in
// spec §6 is represented, plus the handful epoch/reward/registry
// processing needs that the distilled spec names only by formula.
type Config struct {
	// Time parameters.
	SecondsPerSlot     uint64
	SlotsPerEpoch      primitives.Slot
	MinSeedLookahead    primitives.Epoch
	MaxSeedLookahead    primitives.Epoch
	MinAttestationInclusionDelay primitives.Slot
	SlotsPerEth1VotingPeriod     primitives.Slot
	ShuffleRoundCount            uint64

	// State list lengths.
	SlotsPerHistoricalRoot    primitives.Slot
	EpochsPerHistoricalVector primitives.Epoch
	EpochsPerSlashingsVector  primitives.Epoch
	HistoricalRootsLimit      uint64
	ValidatorRegistryLimit    uint64

	// Max operations per block.
	MaxProposerSlashings uint64
	MaxAttesterSlashings uint64
	MaxAttestations      uint64
	MaxDeposits          uint64
	MaxVoluntaryExits    uint64

	// Committee / shuffling bounds.
	MaxValidatorsPerCommittee uint64
	TargetCommitteeSize       uint64
	MaxCommitteesPerSlot      uint64

	// Gwei values.
	MaxEffectiveBalance        uint64
	EffectiveBalanceIncrement  uint64
	EjectionBalance            uint64
	MinDepositAmount           uint64
	HysteresisQuotient         uint64
	HysteresisDownwardMultiplier uint64
	HysteresisUpwardMultiplier   uint64

	// Reward/penalty quotients.
	BaseRewardFactor                uint64
	BaseRewardsPerEpoch              uint64
	WhistleBlowerRewardQuotient      uint64
	ProposerRewardQuotient           uint64
	InactivityPenaltyQuotient        uint64
	MinSlashingPenaltyQuotient       uint64
	ProportionalSlashingMultiplier   uint64
	MinEpochsToInactivityPenalty     primitives.Epoch

	// Validator churn.
	ChurnLimitQuotient       uint64
	MinPerEpochChurnLimit    uint64
	ShardCommitteePeriod    primitives.Epoch
	MinValidatorWithdrawabilityDelay primitives.Epoch
	ActivationExitDelay      primitives.Epoch

	// Genesis.
	GenesisSlot                   primitives.Slot
	GenesisEpoch                  primitives.Epoch
	GenesisForkVersion            [4]byte
	MinGenesisActiveValidatorCount uint64
	MinGenesisTime                uint64

	// Sentinels.
	FarFutureEpoch primitives.Epoch
	ZeroHash       [32]byte

	// Fork schedule, ascending by Epoch. The genesis entry at Epoch 0 is
	// always present.
	ForkVersionSchedule []ForkEntry

	// Domain tags (spec §6).
	DomainBeaconProposer  primitives.DomainType
	DomainBeaconAttester  primitives.DomainType
	DomainRandao          primitives.DomainType
	DomainDeposit         primitives.DomainType
	DomainVoluntaryExit   primitives.DomainType
	DomainSelectionProof  primitives.DomainType
	DomainAggregateAndProof primitives.DomainType

	// Misc.
	BLSPubkeyLength        int
	BLSWithdrawalPrefixByte byte
	DepositContractTreeDepth uint64
}

// ForkVersion returns the wire fork version active at the given epoch: the
// version attached to the latest schedule entry whose Epoch <= epoch.
func (c *Config) ForkVersion(epoch primitives.Epoch) [4]byte {
	version := c.GenesisForkVersion
	for _, entry := range c.ForkVersionSchedule {
		if entry.Epoch <= epoch {
			version = entry.Version
		}
	}
	return version
}

var active atomic.Pointer[Config]

func init() {
	active.Store(MainnetConfig())
}

// BeaconConfig returns the process-wide active configuration.
func BeaconConfig() *Config {
	return active.Load()
}

// UseMainnetConfig installs MainnetConfig() as the active configuration.
func UseMainnetConfig() {
	active.Store(MainnetConfig())
}

// UseMinimalConfig installs MinimalConfig() as the active configuration.
func UseMinimalConfig() {
	active.Store(MinimalConfig())
}

// OverrideBeaconConfig installs a caller-supplied configuration, for tests
// that need a scratch profile (e.g. a shrunk SlotsPerEpoch).
func OverrideBeaconConfig(cfg *Config) {
	active.Store(cfg)
}
