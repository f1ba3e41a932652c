package params

import "github.com/sigmaprime/beacon-core/consensus-types/primitives"

// MainnetConfig returns the phase-0 mainnet constant set.
func MainnetConfig() *Config {
	return &Config{
		SecondsPerSlot:               12,
		SlotsPerEpoch:                32,
		MinSeedLookahead:             1,
		MaxSeedLookahead:             4,
		MinAttestationInclusionDelay: 1,
		SlotsPerEth1VotingPeriod:     64 * 32,
		ShuffleRoundCount:            90,

		SlotsPerHistoricalRoot:    8192,
		EpochsPerHistoricalVector: 65536,
		EpochsPerSlashingsVector:  8192,
		HistoricalRootsLimit:      16777216,
		ValidatorRegistryLimit:    1099511627776,

		MaxProposerSlashings: 16,
		MaxAttesterSlashings: 2,
		MaxAttestations:      128,
		MaxDeposits:          16,
		MaxVoluntaryExits:    16,

		MaxValidatorsPerCommittee: 2048,
		TargetCommitteeSize:       128,
		MaxCommitteesPerSlot:      64,

		MaxEffectiveBalance:          32_000_000_000,
		EffectiveBalanceIncrement:    1_000_000_000,
		EjectionBalance:              16_000_000_000,
		MinDepositAmount:             1_000_000_000,
		HysteresisQuotient:           4,
		HysteresisDownwardMultiplier: 1,
		HysteresisUpwardMultiplier:   5,

		BaseRewardFactor:               64,
		BaseRewardsPerEpoch:            4,
		WhistleBlowerRewardQuotient:    512,
		ProposerRewardQuotient:         8,
		InactivityPenaltyQuotient:      1 << 26,
		MinSlashingPenaltyQuotient:     128,
		ProportionalSlashingMultiplier: 1,
		MinEpochsToInactivityPenalty:   4,

		ChurnLimitQuotient:               65536,
		MinPerEpochChurnLimit:            4,
		ShardCommitteePeriod:             256,
		MinValidatorWithdrawabilityDelay: 256,
		ActivationExitDelay:              4,

		GenesisSlot:                    0,
		GenesisEpoch:                   0,
		GenesisForkVersion:             [4]byte{0, 0, 0, 0},
		MinGenesisActiveValidatorCount: 16384,
		MinGenesisTime:                 1606824000,

		FarFutureEpoch: primitives.FarFutureEpoch,
		ZeroHash:       [32]byte{},

		ForkVersionSchedule: []ForkEntry{
			{Epoch: 0, Version: [4]byte{0, 0, 0, 0}},
		},

		DomainBeaconProposer:    [4]byte{0, 0, 0, 0},
		DomainBeaconAttester:    [4]byte{1, 0, 0, 0},
		DomainRandao:            [4]byte{2, 0, 0, 0},
		DomainDeposit:           [4]byte{3, 0, 0, 0},
		DomainVoluntaryExit:     [4]byte{4, 0, 0, 0},
		DomainSelectionProof:    [4]byte{5, 0, 0, 0},
		DomainAggregateAndProof: [4]byte{6, 0, 0, 0},

		BLSPubkeyLength:          48,
		BLSWithdrawalPrefixByte:  0x00,
		DepositContractTreeDepth: 32,
	}
}
