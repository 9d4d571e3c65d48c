package helpers

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/container/slice"
)

// AttestingIndices returns the attesting participants indices from the
// attestation data. The committee is provided as an argument rather than
// being recomputed from state so callers can reuse committees across
// attestations of the same slot.
//
// Spec pseudocode definition:
//  def get_attesting_indices(state: BeaconState,
//                          data: AttestationData,
//                          bits: Bitlist[MAX_VALIDATORS_PER_COMMITTEE]) -> Set[ValidatorIndex]:
//    """
//    Return the set of attesting indices corresponding to ``data`` and ``bits``.
//    """
//    committee = get_beacon_committee(state, data.slot, data.index)
//    return set(index for i, index in enumerate(committee) if bits[i])
func AttestingIndices(bf bitfield.Bitfield, committee []types.ValidatorIndex) ([]uint64, error) {
	if bf.Len() != uint64(len(committee)) {
		return nil, errors.Errorf("bitfield length %d is not equal to committee length %d", bf.Len(), len(committee))
	}
	indices := make([]uint64, 0, len(committee))
	for _, idx := range bf.BitIndices() {
		if idx < len(committee) {
			indices = append(indices, uint64(committee[idx]))
		}
	}
	return indices, nil
}

// AttestingIndicesFromState resolves the attestation's committee from the
// state and applies the aggregation bits.
func AttestingIndicesFromState(state *types.BeaconState, att *types.Attestation) ([]uint64, error) {
	committee, err := BeaconCommittee(state, att.Data.Slot, att.Data.CommitteeIndex)
	if err != nil {
		return nil, errors.Wrap(err, "could not get beacon committee")
	}
	return AttestingIndices(att.AggregationBits, committee)
}

// ConvertToIndexed converts an attestation to its indexed form with indices
// sorted in ascending order.
//
// Spec pseudocode definition:
//  def get_indexed_attestation(state: BeaconState, attestation: Attestation) -> IndexedAttestation:
//    """
//    Return the indexed attestation corresponding to ``attestation``.
//    """
//    attesting_indices = get_attesting_indices(state, attestation.data, attestation.aggregation_bits)
//
//    return IndexedAttestation(
//        attesting_indices=sorted(attesting_indices),
//        data=attestation.data,
//        signature=attestation.signature,
//    )
func ConvertToIndexed(state *types.BeaconState, att *types.Attestation) (*types.IndexedAttestation, error) {
	attIndices, err := AttestingIndicesFromState(state, att)
	if err != nil {
		return nil, err
	}
	sort.Slice(attIndices, func(i, j int) bool {
		return attIndices[i] < attIndices[j]
	})
	return &types.IndexedAttestation{
		AttestingIndices: attIndices,
		Data:             att.Data,
		Signature:        att.Signature,
	}, nil
}

// IsValidAttestationIndices verifies the structural invariants of an indexed
// attestation: non-empty, within the per-committee cap, and strictly
// ascending attesting indices. Signature validity is out of scope here.
func IsValidAttestationIndices(att *types.IndexedAttestation) error {
	if att == nil || att.Data == nil || att.Data.Target == nil {
		return errors.New("nil or missing indexed attestation data")
	}
	indices := att.AttestingIndices
	if len(indices) == 0 {
		return errors.New("expected non-empty attesting indices")
	}
	if uint64(len(indices)) > params.BeaconConfig().MaxValidatorsPerCommittee {
		return errors.Errorf("validator indices count exceeds MAX_VALIDATORS_PER_COMMITTEE, %d > %d",
			len(indices), params.BeaconConfig().MaxValidatorsPerCommittee)
	}
	if !slice.IsUint64SortedAndUnique(indices) {
		return errors.New("attesting indices is not uniquely sorted")
	}
	return nil
}
