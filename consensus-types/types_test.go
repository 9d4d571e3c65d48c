package types

import (
	"encoding/json"
	"testing"

	"github.com/karalabe/ssz"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/seaham/beacond/testing/assert"
	"github.com/seaham/beacond/testing/require"
)

func TestSlot_JSONQuotedDecimal(t *testing.T) {
	b, err := json.Marshal(Slot(12345))
	require.NoError(t, err)
	assert.Equal(t, `"12345"`, string(b))

	var s Slot
	require.NoError(t, json.Unmarshal([]byte(`"67890"`), &s))
	assert.Equal(t, Slot(67890), s)

	require.NotNil(t, json.Unmarshal([]byte(`"abc"`), &s), "expected error for non-numeric input")
}

func TestRoot_JSONHex(t *testing.T) {
	r := Root{0xde, 0xad}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `"0xdead000000000000000000000000000000000000000000000000000000000000"`, string(b))

	var decoded Root
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, r, decoded)

	// Roots of the wrong length are rejected.
	require.NotNil(t, json.Unmarshal([]byte(`"0x1234"`), &decoded))
}

func TestCheckpoint_JSON(t *testing.T) {
	cp := &Checkpoint{Epoch: 3, Root: Root{'r'}}
	b, err := json.Marshal(cp)
	require.NoError(t, err)

	decoded := &Checkpoint{}
	require.NoError(t, json.Unmarshal(b, decoded))
	assert.DeepEqual(t, cp, decoded)
}

func TestAttestation_JSONBitsAreHex(t *testing.T) {
	bits := bitfield.NewBitlist(3)
	bits.SetBitAt(0, true)
	att := &Attestation{
		AggregationBits: bits,
		Data: &AttestationData{
			Slot:           2,
			CommitteeIndex: 1,
			Source:         &Checkpoint{Epoch: 0},
			Target:         &Checkpoint{Epoch: 1},
		},
	}
	b, err := json.Marshal(att)
	require.NoError(t, err)

	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(b, &raw))
	var bitsHex string
	require.NoError(t, json.Unmarshal(raw["aggregation_bits"], &bitsHex))
	assert.Equal(t, "0x", bitsHex[:2])

	decoded := &Attestation{}
	require.NoError(t, json.Unmarshal(b, decoded))
	assert.DeepEqual(t, att.AggregationBits, decoded.AggregationBits)
	assert.Equal(t, Slot(2), decoded.Data.Slot)
}

func TestBlockRewards_JSONRoundTrip(t *testing.T) {
	r := &BlockRewards{
		ProposerIndex:     9,
		Total:             100,
		Attestations:      40,
		SyncAggregate:     30,
		ProposerSlashings: 20,
		AttesterSlashings: 10,
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)

	raw := map[string]string{}
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "9", raw["proposer_index"])
	assert.Equal(t, "100", raw["total"])

	decoded := &BlockRewards{}
	require.NoError(t, json.Unmarshal(b, decoded))
	assert.DeepEqual(t, r, decoded)
}

func TestBeaconState_ValidatorAtIndex(t *testing.T) {
	state := &BeaconState{
		Validators: []*Validator{
			{EffectiveBalance: 1},
			{EffectiveBalance: 2},
		},
	}
	v := state.ValidatorAtIndex(1)
	require.NotNil(t, v)
	assert.Equal(t, Gwei(2), v.EffectiveBalance)
	if state.ValidatorAtIndex(2) != nil {
		t.Fatal("expected nil for out of range index")
	}
}

func TestBeaconBlock_HashTreeRootChangesWithSlot(t *testing.T) {
	newBlock := func(slot Slot) *BeaconBlock {
		return &BeaconBlock{
			Slot: slot,
			Body: &BeaconBlockBody{
				SyncAggregate: &SyncAggregate{SyncCommitteeBits: bitfield.NewBitvector512()},
			},
		}
	}
	a := newBlock(1)
	b := newBlock(1)
	c := newBlock(2)
	assert.Equal(t, a.HashTreeRoot(), b.HashTreeRoot())
	assert.NotEqual(t, a.HashTreeRoot(), c.HashTreeRoot())
}

func TestSignedBeaconBlock_SSZRoundTrip(t *testing.T) {
	att := &Attestation{
		AggregationBits: bitfield.NewBitlist(8),
		Data: &AttestationData{
			Slot:            5,
			CommitteeIndex:  1,
			BeaconBlockRoot: Root{'b'},
			Source:          &Checkpoint{Epoch: 0, Root: Root{'s'}},
			Target:          &Checkpoint{Epoch: 1, Root: Root{'t'}},
		},
	}
	att.AggregationBits.SetBitAt(2, true)
	blk := &SignedBeaconBlock{
		Block: &BeaconBlock{
			Slot:          5,
			ProposerIndex: 7,
			ParentRoot:    Root{'p'},
			StateRoot:     Root{'r'},
			Body: &BeaconBlockBody{
				Attestations: []*Attestation{att},
				AttesterSlashings: []*AttesterSlashing{{
					Attestation1: &IndexedAttestation{AttestingIndices: []uint64{1, 2, 3}, Data: att.Data},
					Attestation2: &IndexedAttestation{AttestingIndices: []uint64{2, 3, 4}, Data: att.Data},
				}},
				SyncAggregate: &SyncAggregate{SyncCommitteeBits: bitfield.NewBitvector512()},
			},
		},
	}

	buf := make([]byte, ssz.Size(blk))
	require.NoError(t, ssz.EncodeToBytes(buf, blk))

	decoded := &SignedBeaconBlock{}
	require.NoError(t, ssz.DecodeFromBytes(buf, decoded))

	assert.Equal(t, blk.Block.Slot, decoded.Block.Slot)
	assert.Equal(t, blk.Block.ParentRoot, decoded.Block.ParentRoot)
	assert.Equal(t, 1, len(decoded.Block.Body.Attestations))
	require.Equal(t, 1, len(decoded.Block.Body.AttesterSlashings))
	assert.DeepEqual(t, []uint64{1, 2, 3}, decoded.Block.Body.AttesterSlashings[0].Attestation1.AttestingIndices)
	assert.Equal(t, blk.Block.HashTreeRoot(), decoded.Block.HashTreeRoot())
}

func TestSSZ_StaticSizes(t *testing.T) {
	assert.Equal(t, uint32(40), (*Checkpoint)(nil).SizeSSZ())
	assert.Equal(t, uint32(128), (*AttestationData)(nil).SizeSSZ())
	assert.Equal(t, uint32(112), (*BeaconBlockHeader)(nil).SizeSSZ())
	assert.Equal(t, uint32(416), (*ProposerSlashing)(nil).SizeSSZ())
	assert.Equal(t, uint32(160), (*SyncAggregate)(nil).SizeSSZ())
	assert.Equal(t, uint32(121), (*Validator)(nil).SizeSSZ())

	// Dynamic containers report their fixed part when asked for it.
	assert.Equal(t, uint32(228), (&Attestation{}).SizeSSZ(true))
	assert.Equal(t, uint32(228), (&IndexedAttestation{}).SizeSSZ(true))
	assert.Equal(t, uint32(8), (&AttesterSlashing{}).SizeSSZ(true))
	assert.Equal(t, uint32(172), (&BeaconBlockBody{}).SizeSSZ(true))
	assert.Equal(t, uint32(84), (&BeaconBlock{}).SizeSSZ(true))
	assert.Equal(t, uint32(100), (&SignedBeaconBlock{}).SizeSSZ(true))
	assert.Equal(t, uint32(132), (&BeaconState{}).SizeSSZ(true))
}
