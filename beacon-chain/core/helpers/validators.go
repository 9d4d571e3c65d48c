package helpers

import (
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
)

// IsActiveValidator returns the boolean value on whether the validator
// is active or not.
//
// Spec pseudocode definition:
//  def is_active_validator(validator: Validator, epoch: Epoch) -> bool:
//    """
//    Check if ``validator`` is active.
//    """
//    return validator.activation_epoch <= epoch < validator.exit_epoch
func IsActiveValidator(val *types.Validator, epoch types.Epoch) bool {
	return val.ActivationEpoch <= epoch && epoch < val.ExitEpoch
}

// IsSlashableValidator returns the boolean value on whether the validator
// is slashable or not.
//
// Spec pseudocode definition:
//  def is_slashable_validator(validator: Validator, epoch: Epoch) -> bool:
//    """
//    Check if ``validator`` is slashable.
//    """
//    return (not validator.slashed) and (validator.activation_epoch <= epoch < validator.withdrawable_epoch)
func IsSlashableValidator(val *types.Validator, epoch types.Epoch) bool {
	active := val.ActivationEpoch <= epoch
	beforeWithdrawable := epoch < val.WithdrawableEpoch
	return beforeWithdrawable && active && !val.Slashed
}

// ActiveValidatorIndices filters out active validators based on validator
// status and returns their indices in registry order.
//
// Spec pseudocode definition:
//  def get_active_validator_indices(state: BeaconState, epoch: Epoch) -> Sequence[ValidatorIndex]:
//    """
//    Return the sequence of active validator indices at ``epoch``.
//    """
//    return [ValidatorIndex(i) for i, v in enumerate(state.validators) if is_active_validator(v, epoch)]
func ActiveValidatorIndices(state *types.BeaconState, epoch types.Epoch) []types.ValidatorIndex {
	var indices []types.ValidatorIndex
	for i, val := range state.Validators {
		if IsActiveValidator(val, epoch) {
			indices = append(indices, types.ValidatorIndex(i))
		}
	}
	return indices
}

// ActiveValidatorCount returns the number of active validators in the state
// at the given epoch.
func ActiveValidatorCount(state *types.BeaconState, epoch types.Epoch) uint64 {
	count := uint64(0)
	for _, val := range state.Validators {
		if IsActiveValidator(val, epoch) {
			count++
		}
	}
	return count
}

// SlotToEpoch returns the epoch number of the input slot.
func SlotToEpoch(slot types.Slot) types.Epoch {
	return types.Epoch(slot / params.BeaconConfig().SlotsPerEpoch)
}

// CurrentEpoch returns the current epoch number calculated from the slot of
// the state.
func CurrentEpoch(state *types.BeaconState) types.Epoch {
	return SlotToEpoch(state.Slot)
}
