package types

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/karalabe/ssz"
	"github.com/prysmaticlabs/go-bitfield"
)

// AttestationData is the vote data shared by every validator in a committee.
type AttestationData struct {
	Slot            Slot           `json:"slot"`
	CommitteeIndex  CommitteeIndex `json:"index"`
	BeaconBlockRoot Root           `json:"beacon_block_root"`
	Source          *Checkpoint    `json:"source"`
	Target          *Checkpoint    `json:"target"`
}

func (a *AttestationData) SizeSSZ() uint32 { return 128 }

func (a *AttestationData) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint64(codec, &a.Slot)                 // Field (0) - Slot            -  8 bytes
	ssz.DefineUint64(codec, &a.CommitteeIndex)       // Field (1) - CommitteeIndex  -  8 bytes
	ssz.DefineStaticBytes(codec, &a.BeaconBlockRoot) // Field (2) - BeaconBlockRoot - 32 bytes
	ssz.DefineStaticObject(codec, &a.Source)         // Field (3) - Source          - 40 bytes
	ssz.DefineStaticObject(codec, &a.Target)         // Field (4) - Target          - 40 bytes
}

// Attestation is a committee vote as carried in a block body. The aggregation
// bits select the attesting subset of the committee.
type Attestation struct {
	AggregationBits bitfield.Bitlist `json:"aggregation_bits"`
	Data            *AttestationData `json:"data"`
	Signature       BLSSignature     `json:"signature"`
}

func (a *Attestation) SizeSSZ(fixed bool) uint32 {
	size := uint32(228)
	if fixed {
		return size
	}
	size += ssz.SizeSliceOfBits(a.AggregationBits)
	return size
}

func (a *Attestation) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineSliceOfBitsOffset(codec, &a.AggregationBits, 2048) // Offset (0) - AggregationBits -  4 bytes
	ssz.DefineStaticObject(codec, &a.Data)                       // Field  (1) - Data            - 128 bytes
	ssz.DefineStaticBytes(codec, &a.Signature)                   // Field  (2) - Signature       -  96 bytes

	// Define the dynamic data (fields)
	ssz.DefineSliceOfBitsContent(codec, &a.AggregationBits, 2048) // Field (0) - AggregationBits - ? bytes
}

type attestationJson struct {
	AggregationBits string           `json:"aggregation_bits"`
	Data            *AttestationData `json:"data"`
	Signature       BLSSignature     `json:"signature"`
}

func (a *Attestation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&attestationJson{
		AggregationBits: hexutil.Encode(a.AggregationBits),
		Data:            a.Data,
		Signature:       a.Signature,
	})
}

func (a *Attestation) UnmarshalJSON(b []byte) error {
	j := &attestationJson{}
	if err := json.Unmarshal(b, j); err != nil {
		return err
	}
	bits, err := hexutil.Decode(j.AggregationBits)
	if err != nil {
		return err
	}
	a.AggregationBits = bits
	a.Data = j.Data
	a.Signature = j.Signature
	return nil
}

// IndexedAttestation re-expresses an attestation as the explicit, ascending
// and duplicate-free list of attesting validator indices. The ordering
// invariant is what makes set intersection and hashing deterministic.
type IndexedAttestation struct {
	AttestingIndices []uint64         `json:"attesting_indices"`
	Data             *AttestationData `json:"data"`
	Signature        BLSSignature     `json:"signature"`
}

func (a *IndexedAttestation) SizeSSZ(fixed bool) uint32 {
	size := uint32(228)
	if fixed {
		return size
	}
	size += ssz.SizeSliceOfUint64s(a.AttestingIndices)
	return size
}

func (a *IndexedAttestation) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineSliceOfUint64sOffset(codec, &a.AttestingIndices, 2048) // Offset (0) - AttestingIndices -   4 bytes
	ssz.DefineStaticObject(codec, &a.Data)                           // Field  (1) - Data             - 128 bytes
	ssz.DefineStaticBytes(codec, &a.Signature)                       // Field  (2) - Signature        -  96 bytes

	// Define the dynamic data (fields)
	ssz.DefineSliceOfUint64sContent(codec, &a.AttestingIndices, 2048) // Field (0) - AttestingIndices - ? bytes
}

// AttesterSlashing pairs two attestations alleged to be mutually incompatible,
// either a double vote or a surround vote.
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation `json:"attestation_1"`
	Attestation2 *IndexedAttestation `json:"attestation_2"`
}

func (a *AttesterSlashing) SizeSSZ(fixed bool) uint32 {
	size := uint32(8)
	if fixed {
		return size
	}
	size += ssz.SizeDynamicObject(a.Attestation1)
	size += ssz.SizeDynamicObject(a.Attestation2)
	return size
}

func (a *AttesterSlashing) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineDynamicObjectOffset(codec, &a.Attestation1) // Offset (0) - Attestation1 - 4 bytes
	ssz.DefineDynamicObjectOffset(codec, &a.Attestation2) // Offset (1) - Attestation2 - 4 bytes

	// Define the dynamic data (fields)
	ssz.DefineDynamicObjectContent(codec, &a.Attestation1) // Field (0) - Attestation1 - ? bytes
	ssz.DefineDynamicObjectContent(codec, &a.Attestation2) // Field (1) - Attestation2 - ? bytes
}
