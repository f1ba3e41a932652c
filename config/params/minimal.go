package params

// MinimalConfig returns the phase-0 "minimal" constant set used by the
// shrunk spec-test fixtures and by tests that want fast epoch boundaries
// (spec §6, "two standard profiles... differ only in these constants").
func MinimalConfig() *Config {
	cfg := MainnetConfig()

	cfg.SlotsPerEpoch = 8
	cfg.SlotsPerEth1VotingPeriod = 4 * 8
	cfg.SlotsPerHistoricalRoot = 64
	cfg.EpochsPerHistoricalVector = 64
	cfg.EpochsPerSlashingsVector = 64
	cfg.ShuffleRoundCount = 10

	cfg.MaxCommitteesPerSlot = 4
	cfg.TargetCommitteeSize = 4

	cfg.ShardCommitteePeriod = 64
	cfg.MinValidatorWithdrawabilityDelay = 256
	cfg.ChurnLimitQuotient = 32
	cfg.MinGenesisActiveValidatorCount = 64

	return cfg
}
