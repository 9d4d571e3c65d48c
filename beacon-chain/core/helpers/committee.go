package helpers

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/crypto/hash"
)

// SlotCommitteeCount returns the number of beacon committees of a slot. The
// committee count of a slot is bounded by 1 and max committees per slot.
//
// Spec pseudocode definition:
//  def get_committee_count_per_slot(state: BeaconState, epoch: Epoch) -> uint64:
//    """
//    Return the number of committees in each slot for the given ``epoch``.
//    """
//    return max(uint64(1), min(
//        MAX_COMMITTEES_PER_SLOT,
//        uint64(len(get_active_validator_indices(state, epoch))) // SLOTS_PER_EPOCH // TARGET_COMMITTEE_SIZE,
//    ))
func SlotCommitteeCount(activeValidatorCount uint64) uint64 {
	cfg := params.BeaconConfig()
	committeesPerSlot := activeValidatorCount / uint64(cfg.SlotsPerEpoch) / cfg.TargetCommitteeSize
	if committeesPerSlot > cfg.MaxCommitteesPerSlot {
		return cfg.MaxCommitteesPerSlot
	}
	if committeesPerSlot == 0 {
		return 1
	}
	return committeesPerSlot
}

// RandaoMix returns the randao mix of a given epoch.
func RandaoMix(state *types.BeaconState, epoch types.Epoch) [32]byte {
	if len(state.RandaoMixes) == 0 {
		return params.BeaconConfig().ZeroHash
	}
	return state.RandaoMixes[uint64(epoch)%uint64(len(state.RandaoMixes))]
}

// Seed returns the randao seed used for shuffling of a given epoch and domain.
//
// Spec pseudocode definition:
//  def get_seed(state: BeaconState, epoch: Epoch, domain_type: DomainType) -> Bytes32:
//    """
//    Return the seed at ``epoch``.
//    """
//    mix = get_randao_mix(state, Epoch(epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1))  # Avoid underflow
//    return hash(domain_type + uint_to_bytes(epoch) + mix)
func Seed(state *types.BeaconState, epoch types.Epoch, domain [4]byte) [32]byte {
	cfg := params.BeaconConfig()
	lookAheadEpoch := epoch + cfg.EpochsPerHistoricalVector - cfg.MinSeedLookahead - 1
	mix := RandaoMix(state, lookAheadEpoch)

	seedBuf := make([]byte, 0, 4+8+32)
	seedBuf = append(seedBuf, domain[:]...)
	epochBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(epochBuf, uint64(epoch))
	seedBuf = append(seedBuf, epochBuf...)
	seedBuf = append(seedBuf, mix[:]...)
	return hash.Hash(seedBuf)
}

// BeaconCommittee returns the beacon committee of a given slot and committee
// index. The state's registry and randao mixes fully determine the result.
//
// Spec pseudocode definition:
//  def get_beacon_committee(state: BeaconState, slot: Slot, index: CommitteeIndex) -> Sequence[ValidatorIndex]:
//    """
//    Return the beacon committee at ``slot`` for ``index``.
//    """
//    epoch = compute_epoch_at_slot(slot)
//    committees_per_slot = get_committee_count_per_slot(state, epoch)
//    return compute_committee(
//        indices=get_active_validator_indices(state, epoch),
//        seed=get_seed(state, epoch, DOMAIN_BEACON_ATTESTER),
//        index=(slot % SLOTS_PER_EPOCH) * committees_per_slot + index,
//        count=committees_per_slot * SLOTS_PER_EPOCH,
//    )
func BeaconCommittee(state *types.BeaconState, slot types.Slot, committeeIndex types.CommitteeIndex) ([]types.ValidatorIndex, error) {
	cfg := params.BeaconConfig()
	epoch := SlotToEpoch(slot)
	activeIndices := ActiveValidatorIndices(state, epoch)
	if len(activeIndices) == 0 {
		return nil, errors.New("no active validator indices")
	}
	committeesPerSlot := SlotCommitteeCount(uint64(len(activeIndices)))
	if uint64(committeeIndex) >= committeesPerSlot {
		return nil, errors.Errorf("committee index %d out of range: %d committees per slot", committeeIndex, committeesPerSlot)
	}
	seed := Seed(state, epoch, cfg.DomainBeaconAttester)
	indexOffset := uint64(slot%cfg.SlotsPerEpoch)*committeesPerSlot + uint64(committeeIndex)
	count := committeesPerSlot * uint64(cfg.SlotsPerEpoch)
	return computeCommittee(activeIndices, seed, indexOffset, count)
}

// computeCommittee slices the shuffled active set into the committee at the
// given index.
//
// Spec pseudocode definition:
//  def compute_committee(indices: Sequence[ValidatorIndex],
//                      seed: Bytes32,
//                      index: uint64,
//                      count: uint64) -> Sequence[ValidatorIndex]:
//    """
//    Return the committee corresponding to ``indices``, ``seed``, ``index``, and committee ``count``.
//    """
//    start = (len(indices) * index) // count
//    end = (len(indices) * uint64(index + 1)) // count
//    return [indices[compute_shuffled_index(uint64(i), uint64(len(indices)), seed)] for i in range(start, end)]
func computeCommittee(indices []types.ValidatorIndex, seed [32]byte, index, count uint64) ([]types.ValidatorIndex, error) {
	validatorCount := uint64(len(indices))
	start := validatorCount * index / count
	end := validatorCount * (index + 1) / count
	if start > validatorCount || end > validatorCount {
		return nil, errors.New("index out of range")
	}
	committee := make([]types.ValidatorIndex, 0, end-start)
	for i := start; i < end; i++ {
		shuffled, err := ComputeShuffledIndex(i, validatorCount, seed)
		if err != nil {
			return nil, errors.Wrap(err, "could not compute shuffled index")
		}
		committee = append(committee, indices[shuffled])
	}
	return committee, nil
}
