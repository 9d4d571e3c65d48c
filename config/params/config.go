// Package params defines the chain configuration constants the accounting
// core depends on, with mainnet defaults and yaml file overrides.
package params

import (
	types "github.com/seaham/beacond/consensus-types"
)

// BeaconChainConfig contains the protocol constants for a beacon chain
// network. Field values follow the upstream config yaml naming.
type BeaconChainConfig struct {
	ConfigName            string `yaml:"CONFIG_NAME" spec:"true"`
	MinGenesisTime        uint64 `yaml:"MIN_GENESIS_TIME" spec:"true"`
	GenesisForkVersion    []byte `yaml:"GENESIS_FORK_VERSION" spec:"true"`
	GenesisValidatorsRoot []byte `yaml:"GENESIS_VALIDATORS_ROOT"`

	// Time parameters.
	SlotsPerEpoch    types.Slot  `yaml:"SLOTS_PER_EPOCH" spec:"true"`
	MinSeedLookahead types.Epoch `yaml:"MIN_SEED_LOOKAHEAD" spec:"true"`

	// Registry and shuffling.
	EpochsPerHistoricalVector types.Epoch `yaml:"EPOCHS_PER_HISTORICAL_VECTOR" spec:"true"`
	ShuffleRoundCount         uint64      `yaml:"SHUFFLE_ROUND_COUNT" spec:"true"`
	MaxCommitteesPerSlot      uint64      `yaml:"MAX_COMMITTEES_PER_SLOT" spec:"true"`
	TargetCommitteeSize       uint64      `yaml:"TARGET_COMMITTEE_SIZE" spec:"true"`
	MaxValidatorsPerCommittee uint64      `yaml:"MAX_VALIDATORS_PER_COMMITTEE" spec:"true"`
	ValidatorRegistryLimit    uint64      `yaml:"VALIDATOR_REGISTRY_LIMIT" spec:"true"`

	// Balance and reward parameters.
	EffectiveBalanceIncrement   uint64 `yaml:"EFFECTIVE_BALANCE_INCREMENT" spec:"true"`
	MaxEffectiveBalance         uint64 `yaml:"MAX_EFFECTIVE_BALANCE" spec:"true"`
	BaseRewardFactor            uint64 `yaml:"BASE_REWARD_FACTOR" spec:"true"`
	WhistleBlowerRewardQuotient uint64 `yaml:"WHISTLEBLOWER_REWARD_QUOTIENT" spec:"true"`

	// Participation weights.
	SyncRewardWeight  uint64 `yaml:"SYNC_REWARD_WEIGHT"`
	ProposerWeight    uint64 `yaml:"PROPOSER_WEIGHT"`
	WeightDenominator uint64 `yaml:"WEIGHT_DENOMINATOR"`

	// Sync committee.
	SyncCommitteeSize uint64 `yaml:"SYNC_COMMITTEE_SIZE" spec:"true"`

	// Operation list limits.
	MaxProposerSlashings uint64 `yaml:"MAX_PROPOSER_SLASHINGS" spec:"true"`
	MaxAttesterSlashings uint64 `yaml:"MAX_ATTESTER_SLASHINGS" spec:"true"`
	MaxAttestations      uint64 `yaml:"MAX_ATTESTATIONS" spec:"true"`

	// Constants.
	FarFutureEpoch       types.Epoch `yaml:"FAR_FUTURE_EPOCH"`
	GenesisSlot          types.Slot  `yaml:"GENESIS_SLOT"`
	GenesisEpoch         types.Epoch `yaml:"GENESIS_EPOCH"`
	DomainBeaconAttester [4]byte
	ZeroHash             [32]byte
}

var beaconConfig = MainnetConfig()

// BeaconConfig retrieves the currently active beacon chain config.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig replaces the active config. This should only be called
// during node startup or from tests.
func OverrideBeaconConfig(c *BeaconChainConfig) {
	beaconConfig = c
}

// Copy returns a deep copy of the config so callers can mutate overrides
// without touching the active config.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := *b
	config.GenesisForkVersion = append([]byte{}, b.GenesisForkVersion...)
	config.GenesisValidatorsRoot = append([]byte{}, b.GenesisValidatorsRoot...)
	return &config
}

// SetupTestConfigCleanup preserves the active config and restores it when the
// test and its subtests finish.
func SetupTestConfigCleanup(t testingTB) {
	prev := beaconConfig
	t.Cleanup(func() {
		beaconConfig = prev
	})
}

type testingTB interface {
	Cleanup(func())
}
