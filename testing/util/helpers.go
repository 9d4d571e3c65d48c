// Package util contains fixtures shared across tests.
package util

import (
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/encoding/bytesutil"
)

// NewBeaconState creates a state with the requested number of active
// validators at maximum effective balance.
func NewBeaconState(numValidators uint64) *types.BeaconState {
	cfg := params.BeaconConfig()
	validators := make([]*types.Validator, numValidators)
	balances := make([]uint64, numValidators)
	for i := uint64(0); i < numValidators; i++ {
		validators[i] = &types.Validator{
			PubKey:                     [48]byte{byte(i), byte(i >> 8)},
			EffectiveBalance:           types.Gwei(cfg.MaxEffectiveBalance),
			ActivationEligibilityEpoch: 0,
			ActivationEpoch:            0,
			ExitEpoch:                  types.Epoch(cfg.FarFutureEpoch),
			WithdrawableEpoch:          types.Epoch(cfg.FarFutureEpoch),
		}
		balances[i] = cfg.MaxEffectiveBalance
	}
	mixes := make([]types.Root, cfg.EpochsPerHistoricalVector)
	for i := range mixes {
		mixes[i] = types.Root(bytesutil.ToBytes32([]byte{byte(i)}))
	}
	return &types.BeaconState{
		Slot:                       0,
		Validators:                 validators,
		Balances:                   balances,
		RandaoMixes:                mixes,
		CurrentJustifiedCheckpoint: &types.Checkpoint{},
		FinalizedCheckpoint:        &types.Checkpoint{},
	}
}

// NewBeaconBlock creates a block with an empty body.
func NewBeaconBlock() *types.SignedBeaconBlock {
	return &types.SignedBeaconBlock{
		Block: &types.BeaconBlock{
			Body: &types.BeaconBlockBody{
				ProposerSlashings: []*types.ProposerSlashing{},
				AttesterSlashings: []*types.AttesterSlashing{},
				Attestations:      []*types.Attestation{},
				SyncAggregate: &types.SyncAggregate{
					SyncCommitteeBits: bitfield.NewBitvector512(),
				},
			},
		},
	}
}

// NewAttestation creates an attestation with a single aggregation bit set.
func NewAttestation() *types.Attestation {
	bits := bitfield.NewBitlist(1)
	bits.SetBitAt(0, true)
	return &types.Attestation{
		AggregationBits: bits,
		Data: &types.AttestationData{
			Source: &types.Checkpoint{},
			Target: &types.Checkpoint{},
		},
	}
}

// NewAttesterSlashing creates a slashing whose two attestations share all
// attesting indices and vote for differing data.
func NewAttesterSlashing(indices []uint64) *types.AttesterSlashing {
	return &types.AttesterSlashing{
		Attestation1: &types.IndexedAttestation{
			AttestingIndices: indices,
			Data: &types.AttestationData{
				BeaconBlockRoot: types.Root{'a'},
				Source:          &types.Checkpoint{},
				Target:          &types.Checkpoint{},
			},
		},
		Attestation2: &types.IndexedAttestation{
			AttestingIndices: indices,
			Data: &types.AttestationData{
				BeaconBlockRoot: types.Root{'b'},
				Source:          &types.Checkpoint{},
				Target:          &types.Checkpoint{},
			},
		},
	}
}
