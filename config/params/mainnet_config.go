package params

import (
	"encoding/hex"
	"math"

	types "github.com/seaham/beacond/consensus-types"
)

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return &BeaconChainConfig{
		ConfigName:            "mainnet",
		MinGenesisTime:        1606824000,
		GenesisForkVersion:    []byte{0x00, 0x00, 0x00, 0x00},
		GenesisValidatorsRoot: hexDecodeOrDie("4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95"),

		SlotsPerEpoch:    32,
		MinSeedLookahead: 1,

		EpochsPerHistoricalVector: 65536,
		ShuffleRoundCount:         90,
		MaxCommitteesPerSlot:      64,
		TargetCommitteeSize:       128,
		MaxValidatorsPerCommittee: 2048,
		ValidatorRegistryLimit:    1099511627776,

		EffectiveBalanceIncrement:   1000000000,
		MaxEffectiveBalance:         32000000000,
		BaseRewardFactor:            64,
		WhistleBlowerRewardQuotient: 512,

		SyncRewardWeight:  2,
		ProposerWeight:    8,
		WeightDenominator: 64,

		SyncCommitteeSize: 512,

		MaxProposerSlashings: 16,
		MaxAttesterSlashings: 2,
		MaxAttestations:      128,

		FarFutureEpoch:       types.Epoch(math.MaxUint64),
		GenesisSlot:          0,
		GenesisEpoch:         0,
		DomainBeaconAttester: [4]byte{0x01, 0x00, 0x00, 0x00},
		ZeroHash:             [32]byte{},
	}
}

func hexDecodeOrDie(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
