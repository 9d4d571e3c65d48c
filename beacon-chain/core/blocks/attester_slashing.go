// Package blocks contains the block-operation accounting used by the reward
// and slashing read paths.
package blocks

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/seaham/beacond/beacon-chain/core/helpers"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/container/slice"
)

// SlashableAttesterIndices returns the intersection of attester indices from
// both attestations in the slashing, retaining only validators that are
// slashable at the state's current epoch. The result is sorted in ascending
// order so accumulation over it is reproducible on every node.
func SlashableAttesterIndices(state *types.BeaconState, slashing *types.AttesterSlashing) ([]types.ValidatorIndex, error) {
	if slashing == nil || slashing.Attestation1 == nil || slashing.Attestation2 == nil {
		return nil, errors.New("nil attester slashing")
	}
	indices := slice.IntersectionUint64(slashing.Attestation1.AttestingIndices, slashing.Attestation2.AttestingIndices)
	sort.Slice(indices, func(i, j int) bool {
		return indices[i] < indices[j]
	})

	currentEpoch := helpers.CurrentEpoch(state)
	slashable := make([]types.ValidatorIndex, 0, len(indices))
	for _, idx := range indices {
		val := state.ValidatorAtIndex(types.ValidatorIndex(idx))
		if val == nil {
			continue
		}
		if helpers.IsSlashableValidator(val, currentEpoch) {
			slashable = append(slashable, types.ValidatorIndex(idx))
		}
	}
	return slashable, nil
}

// IsSlashableAttestationData verifies a pair of attestation data is slashable
// against one another: a double vote on the same target epoch, or a surround
// vote.
//
// Spec pseudocode definition:
//  def is_slashable_attestation_data(data_1: AttestationData, data_2: AttestationData) -> bool:
//    """
//    Check if ``data_1`` and ``data_2`` are slashable according to Casper FFG rules.
//    """
//    return (
//        # Double vote
//        (data_1 != data_2 and data_1.target.epoch == data_2.target.epoch) or
//        # Surround vote
//        (data_1.source.epoch < data_2.source.epoch and data_2.target.epoch < data_1.target.epoch)
//    )
func IsSlashableAttestationData(data1, data2 *types.AttestationData) bool {
	if data1 == nil || data2 == nil || data1.Target == nil || data2.Target == nil || data1.Source == nil || data2.Source == nil {
		return false
	}
	isDoubleVote := !attDataEqual(data1, data2) && data1.Target.Epoch == data2.Target.Epoch
	isSurroundVote := data1.Source.Epoch < data2.Source.Epoch && data2.Target.Epoch < data1.Target.Epoch
	return isDoubleVote || isSurroundVote
}

func attDataEqual(a, b *types.AttestationData) bool {
	return a.Slot == b.Slot &&
		a.CommitteeIndex == b.CommitteeIndex &&
		a.BeaconBlockRoot == b.BeaconBlockRoot &&
		*a.Source == *b.Source &&
		*a.Target == *b.Target
}
