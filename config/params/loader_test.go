package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seaham/beacond/testing/assert"
	"github.com/seaham/beacond/testing/require"
)

func TestLoadChainConfigFile_OverridesValues(t *testing.T) {
	SetupTestConfigCleanup(t)

	content := []byte(`
CONFIG_NAME: devnet
MIN_GENESIS_TIME: 1234
SLOTS_PER_EPOCH: 8
SHUFFLE_ROUND_COUNT: 10
UNKNOWN_FUTURE_KEY: 42
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0600))

	LoadChainConfigFile(path)

	cfg := BeaconConfig()
	assert.Equal(t, "devnet", cfg.ConfigName)
	assert.Equal(t, uint64(1234), cfg.MinGenesisTime)
	assert.Equal(t, uint64(10), cfg.ShuffleRoundCount)
	assert.Equal(t, uint64(8), uint64(cfg.SlotsPerEpoch))
	// Values the file omits keep their mainnet defaults.
	assert.Equal(t, uint64(512), cfg.SyncCommitteeSize)
	assert.Equal(t, uint64(32000000000), cfg.MaxEffectiveBalance)
}

func TestOverrideBeaconConfig_RestoredByCleanup(t *testing.T) {
	prev := BeaconConfig().ConfigName
	t.Run("override", func(t *testing.T) {
		SetupTestConfigCleanup(t)
		c := MainnetConfig().Copy()
		c.ConfigName = "override"
		OverrideBeaconConfig(c)
		assert.Equal(t, "override", BeaconConfig().ConfigName)
	})
	assert.Equal(t, prev, BeaconConfig().ConfigName)
}

func TestMainnetConfig_Values(t *testing.T) {
	cfg := MainnetConfig()
	assert.Equal(t, uint64(90), cfg.ShuffleRoundCount)
	assert.Equal(t, uint64(64), cfg.WeightDenominator)
	assert.Equal(t, uint64(8), cfg.ProposerWeight)
	assert.Equal(t, uint64(2), cfg.SyncRewardWeight)
	assert.Equal(t, 32, len(cfg.GenesisValidatorsRoot))
}
