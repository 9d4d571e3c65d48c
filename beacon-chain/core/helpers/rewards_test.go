package helpers

import (
	"testing"

	"github.com/seaham/beacond/config/params"
	"github.com/seaham/beacond/testing/assert"
	"github.com/seaham/beacond/testing/util"
)

func TestTotalActiveBalance_OK(t *testing.T) {
	state := util.NewBeaconState(64)
	assert.Equal(t, 64*params.BeaconConfig().MaxEffectiveBalance, TotalActiveBalance(state))
}

func TestTotalActiveBalance_ExcludesInactive(t *testing.T) {
	state := util.NewBeaconState(4)
	state.Validators[0].ExitEpoch = 0
	assert.Equal(t, 3*params.BeaconConfig().MaxEffectiveBalance, TotalActiveBalance(state))
}

func TestTotalActiveBalance_EmptyRegistryReturnsMinimum(t *testing.T) {
	state := util.NewBeaconState(0)
	// 1 Gwei floor keeps downstream divisions defined.
	assert.Equal(t, uint64(1), TotalActiveBalance(state))
}

func TestBaseRewardPerIncrement_Mainnet(t *testing.T) {
	// 64 validators at 32 ETH: sqrt(2048e9) = 1431083 and
	// 1e9 * 64 / 1431083 = 44721.
	assert.Equal(t, uint64(44721), BaseRewardPerIncrement(64*params.BeaconConfig().MaxEffectiveBalance))
}

func TestBaseRewardWithTotalBalance_OK(t *testing.T) {
	state := util.NewBeaconState(64)
	tab := TotalActiveBalance(state)
	// 32 increments at 44721 Gwei each.
	assert.Equal(t, uint64(32*44721), BaseRewardWithTotalBalance(state, 0, tab))
}

func TestBaseRewardWithTotalBalance_ScalesWithEffectiveBalance(t *testing.T) {
	state := util.NewBeaconState(64)
	state.Validators[1].EffectiveBalance /= 2
	tab := TotalActiveBalance(state)
	full := BaseRewardWithTotalBalance(state, 0, tab)
	half := BaseRewardWithTotalBalance(state, 1, tab)
	assert.Equal(t, full/2, half)
}
