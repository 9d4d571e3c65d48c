package types

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/karalabe/ssz"
	"github.com/prysmaticlabs/go-bitfield"
)

// BeaconBlockHeader is the fixed-size summary of a block, used by proposer
// slashing reports.
type BeaconBlockHeader struct {
	Slot          Slot           `json:"slot"`
	ProposerIndex ValidatorIndex `json:"proposer_index"`
	ParentRoot    Root           `json:"parent_root"`
	StateRoot     Root           `json:"state_root"`
	BodyRoot      Root           `json:"body_root"`
}

func (h *BeaconBlockHeader) SizeSSZ() uint32 { return 112 }

func (h *BeaconBlockHeader) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint64(codec, &h.Slot)            // Field (0) - Slot          -  8 bytes
	ssz.DefineUint64(codec, &h.ProposerIndex)   // Field (1) - ProposerIndex -  8 bytes
	ssz.DefineStaticBytes(codec, &h.ParentRoot) // Field (2) - ParentRoot    - 32 bytes
	ssz.DefineStaticBytes(codec, &h.StateRoot)  // Field (3) - StateRoot     - 32 bytes
	ssz.DefineStaticBytes(codec, &h.BodyRoot)   // Field (4) - BodyRoot      - 32 bytes
}

// SignedBeaconBlockHeader is a block header with the proposer's signature.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader `json:"message"`
	Signature BLSSignature       `json:"signature"`
}

func (h *SignedBeaconBlockHeader) SizeSSZ() uint32 { return 208 }

func (h *SignedBeaconBlockHeader) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineStaticObject(codec, &h.Header)   // Field (0) - Header    - 112 bytes
	ssz.DefineStaticBytes(codec, &h.Signature) // Field (1) - Signature -  96 bytes
}

// ProposerSlashing reports two conflicting signed headers from one proposer.
type ProposerSlashing struct {
	SignedHeader1 *SignedBeaconBlockHeader `json:"signed_header_1"`
	SignedHeader2 *SignedBeaconBlockHeader `json:"signed_header_2"`
}

func (p *ProposerSlashing) SizeSSZ() uint32 { return 416 }

func (p *ProposerSlashing) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineStaticObject(codec, &p.SignedHeader1) // Field (0) - SignedHeader1 - 208 bytes
	ssz.DefineStaticObject(codec, &p.SignedHeader2) // Field (1) - SignedHeader2 - 208 bytes
}

// SyncAggregate carries the sync committee participation bitfield for the slot
// along with the aggregated committee signature.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitvector512 `json:"sync_committee_bits"`
	SyncCommitteeSignature BLSSignature          `json:"sync_committee_signature"`
}

func (s *SyncAggregate) SizeSSZ() uint32 { return 160 }

func (s *SyncAggregate) DefineSSZ(codec *ssz.Codec) {
	// The bitvector is slice-backed, so encoding needs it allocated up front.
	if s.SyncCommitteeBits == nil {
		s.SyncCommitteeBits = bitfield.NewBitvector512()
	}
	ssz.DefineCheckedStaticBytes(codec, (*[]byte)(&s.SyncCommitteeBits), 64) // Field (0) - SyncCommitteeBits      - 64 bytes
	ssz.DefineStaticBytes(codec, &s.SyncCommitteeSignature)                  // Field (1) - SyncCommitteeSignature - 96 bytes
}

type syncAggregateJson struct {
	SyncCommitteeBits      string       `json:"sync_committee_bits"`
	SyncCommitteeSignature BLSSignature `json:"sync_committee_signature"`
}

func (s *SyncAggregate) MarshalJSON() ([]byte, error) {
	return json.Marshal(&syncAggregateJson{
		SyncCommitteeBits:      hexutil.Encode(s.SyncCommitteeBits),
		SyncCommitteeSignature: s.SyncCommitteeSignature,
	})
}

func (s *SyncAggregate) UnmarshalJSON(b []byte) error {
	j := &syncAggregateJson{}
	if err := json.Unmarshal(b, j); err != nil {
		return err
	}
	bits, err := hexutil.Decode(j.SyncCommitteeBits)
	if err != nil {
		return err
	}
	s.SyncCommitteeBits = bits
	s.SyncCommitteeSignature = j.SyncCommitteeSignature
	return nil
}

// BeaconBlockBody holds the operations a proposer packed into a block. Only
// the sequences the accounting core reads are modeled here.
type BeaconBlockBody struct {
	ProposerSlashings []*ProposerSlashing `json:"proposer_slashings"`
	AttesterSlashings []*AttesterSlashing `json:"attester_slashings"`
	Attestations      []*Attestation      `json:"attestations"`
	SyncAggregate     *SyncAggregate      `json:"sync_aggregate"`
}

func (b *BeaconBlockBody) SizeSSZ(fixed bool) uint32 {
	size := uint32(172)
	if fixed {
		return size
	}
	size += ssz.SizeSliceOfStaticObjects(b.ProposerSlashings)
	size += ssz.SizeSliceOfDynamicObjects(b.AttesterSlashings)
	size += ssz.SizeSliceOfDynamicObjects(b.Attestations)
	return size
}

func (b *BeaconBlockBody) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineSliceOfStaticObjectsOffset(codec, &b.ProposerSlashings, 16) // Offset (0) - ProposerSlashings -   4 bytes
	ssz.DefineSliceOfDynamicObjectsOffset(codec, &b.AttesterSlashings, 2) // Offset (1) - AttesterSlashings -   4 bytes
	ssz.DefineSliceOfDynamicObjectsOffset(codec, &b.Attestations, 128)    // Offset (2) - Attestations      -   4 bytes
	ssz.DefineStaticObject(codec, &b.SyncAggregate)                       // Field  (3) - SyncAggregate     - 160 bytes

	// Define the dynamic data (fields)
	ssz.DefineSliceOfStaticObjectsContent(codec, &b.ProposerSlashings, 16) // Field (0) - ProposerSlashings - ? bytes
	ssz.DefineSliceOfDynamicObjectsContent(codec, &b.AttesterSlashings, 2) // Field (1) - AttesterSlashings - ? bytes
	ssz.DefineSliceOfDynamicObjectsContent(codec, &b.Attestations, 128)    // Field (2) - Attestations      - ? bytes
}

// BeaconBlock links into the chain through ParentRoot. Its identity is its
// hash tree root.
type BeaconBlock struct {
	Slot          Slot             `json:"slot"`
	ProposerIndex ValidatorIndex   `json:"proposer_index"`
	ParentRoot    Root             `json:"parent_root"`
	StateRoot     Root             `json:"state_root"`
	Body          *BeaconBlockBody `json:"body"`
}

func (b *BeaconBlock) SizeSSZ(fixed bool) uint32 {
	size := uint32(84)
	if fixed {
		return size
	}
	size += ssz.SizeDynamicObject(b.Body)
	return size
}

func (b *BeaconBlock) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineUint64(codec, &b.Slot)              // Field  (0) - Slot          -  8 bytes
	ssz.DefineUint64(codec, &b.ProposerIndex)     // Field  (1) - ProposerIndex -  8 bytes
	ssz.DefineStaticBytes(codec, &b.ParentRoot)   // Field  (2) - ParentRoot    - 32 bytes
	ssz.DefineStaticBytes(codec, &b.StateRoot)    // Field  (3) - StateRoot     - 32 bytes
	ssz.DefineDynamicObjectOffset(codec, &b.Body) // Offset (4) - Body          -  4 bytes

	// Define the dynamic data (fields)
	ssz.DefineDynamicObjectContent(codec, &b.Body) // Field (4) - Body - ? bytes
}

// HashTreeRoot returns the block's SSZ hash tree root, its canonical identity.
func (b *BeaconBlock) HashTreeRoot() Root {
	return Root(ssz.HashSequential(b))
}

// SignedBeaconBlock wraps a block with the proposer signature under which it
// was gossiped.
type SignedBeaconBlock struct {
	Block     *BeaconBlock `json:"message"`
	Signature BLSSignature `json:"signature"`
}

func (b *SignedBeaconBlock) SizeSSZ(fixed bool) uint32 {
	size := uint32(100)
	if fixed {
		return size
	}
	size += ssz.SizeDynamicObject(b.Block)
	return size
}

func (b *SignedBeaconBlock) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineDynamicObjectOffset(codec, &b.Block) // Offset (0) - Block     -  4 bytes
	ssz.DefineStaticBytes(codec, &b.Signature)     // Field  (1) - Signature - 96 bytes

	// Define the dynamic data (fields)
	ssz.DefineDynamicObjectContent(codec, &b.Block) // Field (0) - Block - ? bytes
}
