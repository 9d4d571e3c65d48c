package helpers

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/seaham/beacond/config/params"
	"github.com/seaham/beacond/crypto/hash"
)

const seedSize = 32
const roundSize = 1
const positionWindowSize = 4
const pivotViewSize = seedSize + roundSize
const totalSize = seedSize + roundSize + positionWindowSize

// ComputeShuffledIndex returns the shuffled validator index corresponding to
// seed and index count, using the swap-or-not shuffling network.
// Each round selects a pivot from the seed, mirrors the index across it, and
// swaps based on a single source bit, so every position can be computed
// without materializing the full permutation.
//
// Spec pseudocode definition:
//  def compute_shuffled_index(index: uint64, index_count: uint64, seed: Bytes32) -> uint64:
//    assert index < index_count
//    for current_round in range(SHUFFLE_ROUND_COUNT):
//        pivot = bytes_to_uint64(hash(seed + uint_to_bytes(uint8(current_round)))[0:8]) % index_count
//        flip = (pivot + index_count - index) % index_count
//        position = max(index, flip)
//        source = hash(seed + uint_to_bytes(uint8(current_round)) + uint_to_bytes(uint32(position // 256)))
//        byte = uint8(source[(position % 256) // 8])
//        bit = (byte >> (position % 8)) % 2
//        index = flip if bit else index
//    return index
func ComputeShuffledIndex(index uint64, indexCount uint64, seed [32]byte) (uint64, error) {
	if index >= indexCount {
		return 0, errors.Errorf("input index %d out of bounds: %d", index, indexCount)
	}
	rounds := uint8(params.BeaconConfig().ShuffleRoundCount)
	if rounds == 0 {
		return index, nil
	}
	buf := make([]byte, totalSize)
	copy(buf[:seedSize], seed[:])
	for r := uint8(0); r < rounds; r++ {
		buf[seedSize] = r
		ph := hash.Hash(buf[:pivotViewSize])
		pivot := binary.LittleEndian.Uint64(ph[:8]) % indexCount
		flip := (pivot + indexCount - index) % indexCount
		position := index
		if flip > position {
			position = flip
		}
		binary.LittleEndian.PutUint32(buf[pivotViewSize:], uint32(position>>8))
		source := hash.Hash(buf)
		byteV := source[(position&0xff)>>3]
		bit := (byteV >> (position & 0x7)) & 0x1
		if bit == 1 {
			index = flip
		}
	}
	return index, nil
}
