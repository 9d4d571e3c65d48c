package helpers

import (
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/math"
)

// TotalActiveBalance returns the combined effective balance of all active
// validators, with a 1 Gwei minimum to avoid divisions by zero.
//
// Spec pseudocode definition:
//  def get_total_active_balance(state: BeaconState) -> Gwei:
//    """
//    Return the combined effective balance of the active validators.
//    """
//    return get_total_balance(state, set(get_active_validator_indices(state, get_current_epoch(state))))
func TotalActiveBalance(state *types.BeaconState) uint64 {
	total := uint64(0)
	epoch := CurrentEpoch(state)
	for _, val := range state.Validators {
		if IsActiveValidator(val, epoch) {
			total += uint64(val.EffectiveBalance)
		}
	}
	if total == 0 {
		return 1
	}
	return total
}

// BaseRewardPerIncrement of the beacon state.
//
// Spec pseudocode definition:
//  def get_base_reward_per_increment(state: BeaconState) -> Gwei:
//    return Gwei(EFFECTIVE_BALANCE_INCREMENT * BASE_REWARD_FACTOR // integer_squareroot(get_total_active_balance(state)))
func BaseRewardPerIncrement(totalActiveBalance uint64) uint64 {
	cfg := params.BeaconConfig()
	return cfg.EffectiveBalanceIncrement * cfg.BaseRewardFactor / math.IntegerSquareRoot(totalActiveBalance)
}

// BaseRewardWithTotalBalance takes in the total active balance directly so
// per-index callers do not recompute it.
//
// Spec pseudocode definition:
//  def get_base_reward(state: BeaconState, index: ValidatorIndex) -> Gwei:
//    increments = state.validators[index].effective_balance // EFFECTIVE_BALANCE_INCREMENT
//    return Gwei(increments * get_base_reward_per_increment(state))
func BaseRewardWithTotalBalance(state *types.BeaconState, index types.ValidatorIndex, totalActiveBalance uint64) uint64 {
	val := state.ValidatorAtIndex(index)
	if val == nil {
		return 0
	}
	increments := uint64(val.EffectiveBalance) / params.BeaconConfig().EffectiveBalanceIncrement
	return increments * BaseRewardPerIncrement(totalActiveBalance)
}
