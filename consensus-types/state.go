package types

import "github.com/karalabe/ssz"

// Validator is a registry entry. EffectiveBalance is the stake figure all
// reward and committee-weight arithmetic runs on.
type Validator struct {
	PubKey                     BLSPubKey `json:"pubkey"`
	WithdrawalCredentials      Root      `json:"withdrawal_credentials"`
	EffectiveBalance           Gwei      `json:"effective_balance"`
	Slashed                    bool      `json:"slashed"`
	ActivationEligibilityEpoch Epoch     `json:"activation_eligibility_epoch"`
	ActivationEpoch            Epoch     `json:"activation_epoch"`
	ExitEpoch                  Epoch     `json:"exit_epoch"`
	WithdrawableEpoch          Epoch     `json:"withdrawable_epoch"`
}

func (v *Validator) SizeSSZ() uint32 { return 121 }

func (v *Validator) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineStaticBytes(codec, &v.PubKey)                // Field (0) - PubKey                     - 48 bytes
	ssz.DefineStaticBytes(codec, &v.WithdrawalCredentials) // Field (1) - WithdrawalCredentials      - 32 bytes
	ssz.DefineUint64(codec, &v.EffectiveBalance)           // Field (2) - EffectiveBalance           -  8 bytes
	ssz.DefineBool(codec, &v.Slashed)                      // Field (3) - Slashed                    -  1 byte
	ssz.DefineUint64(codec, &v.ActivationEligibilityEpoch) // Field (4) - ActivationEligibilityEpoch -  8 bytes
	ssz.DefineUint64(codec, &v.ActivationEpoch)            // Field (5) - ActivationEpoch            -  8 bytes
	ssz.DefineUint64(codec, &v.ExitEpoch)                  // Field (6) - ExitEpoch                  -  8 bytes
	ssz.DefineUint64(codec, &v.WithdrawableEpoch)          // Field (7) - WithdrawableEpoch          -  8 bytes
}

// BeaconState is the post-state snapshot a block was built on. One state
// corresponds to exactly one block root and is immutable once stored; the
// accounting core only ever reads it.
type BeaconState struct {
	GenesisValidatorsRoot      Root         `json:"genesis_validators_root"`
	Slot                       Slot         `json:"slot"`
	Validators                 []*Validator `json:"validators"`
	Balances                   []uint64     `json:"balances"`
	RandaoMixes                []Root       `json:"randao_mixes"`
	CurrentJustifiedCheckpoint *Checkpoint  `json:"current_justified_checkpoint"`
	FinalizedCheckpoint        *Checkpoint  `json:"finalized_checkpoint"`
}

func (s *BeaconState) SizeSSZ(fixed bool) uint32 {
	size := uint32(132)
	if fixed {
		return size
	}
	size += ssz.SizeSliceOfStaticObjects(s.Validators)
	size += ssz.SizeSliceOfUint64s(s.Balances)
	size += ssz.SizeSliceOfStaticBytes(s.RandaoMixes)
	return size
}

func (s *BeaconState) DefineSSZ(codec *ssz.Codec) {
	// Define the static data (fields and dynamic offsets)
	ssz.DefineStaticBytes(codec, &s.GenesisValidatorsRoot)            // Field  (0) - GenesisValidatorsRoot      - 32 bytes
	ssz.DefineUint64(codec, &s.Slot)                                  // Field  (1) - Slot                       -  8 bytes
	ssz.DefineSliceOfStaticObjectsOffset(codec, &s.Validators, 1<<40) // Offset (2) - Validators                 -  4 bytes
	ssz.DefineSliceOfUint64sOffset(codec, &s.Balances, 1<<40)         // Offset (3) - Balances                   -  4 bytes
	ssz.DefineSliceOfStaticBytesOffset(codec, &s.RandaoMixes, 65536)  // Offset (4) - RandaoMixes                -  4 bytes
	ssz.DefineStaticObject(codec, &s.CurrentJustifiedCheckpoint)      // Field  (5) - CurrentJustifiedCheckpoint - 40 bytes
	ssz.DefineStaticObject(codec, &s.FinalizedCheckpoint)             // Field  (6) - FinalizedCheckpoint        - 40 bytes

	// Define the dynamic data (fields)
	ssz.DefineSliceOfStaticObjectsContent(codec, &s.Validators, 1<<40) // Field (2) - Validators  - ? bytes
	ssz.DefineSliceOfUint64sContent(codec, &s.Balances, 1<<40)         // Field (3) - Balances    - ? bytes
	ssz.DefineSliceOfStaticBytesContent(codec, &s.RandaoMixes, 65536)  // Field (4) - RandaoMixes - ? bytes
}

// ValidatorAtIndex returns the registry entry for idx, or nil when idx is out
// of range. Callers treat a nil result as a skippable index, never a fault.
func (s *BeaconState) ValidatorAtIndex(idx ValidatorIndex) *Validator {
	if uint64(idx) >= uint64(len(s.Validators)) {
		return nil
	}
	return s.Validators[idx]
}
