// Package types defines the consensus containers and primitive aliases used
// across the beacond read path.
package types

import (
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Slot represents a single slot.
type Slot uint64

// Epoch represents a single epoch.
type Epoch uint64

// ValidatorIndex in validator registry.
type ValidatorIndex uint64

// CommitteeIndex is the index of a committee within a slot.
type CommitteeIndex uint64

// Gwei is a denomination of 1e9 wei.
type Gwei uint64

// Root is a 32 byte hash tree root. It is comparable and usable as a map key.
type Root [32]byte

// BLSPubKey is a serialized BLS12-381 public key.
type BLSPubKey [48]byte

// BLSSignature is a serialized BLS12-381 signature.
type BLSSignature [96]byte

func (s Slot) MarshalJSON() ([]byte, error)           { return quotedUint64(uint64(s)) }
func (s *Slot) UnmarshalJSON(b []byte) error          { return unquoteUint64(b, (*uint64)(s)) }
func (e Epoch) MarshalJSON() ([]byte, error)          { return quotedUint64(uint64(e)) }
func (e *Epoch) UnmarshalJSON(b []byte) error         { return unquoteUint64(b, (*uint64)(e)) }
func (v ValidatorIndex) MarshalJSON() ([]byte, error) { return quotedUint64(uint64(v)) }
func (v *ValidatorIndex) UnmarshalJSON(b []byte) error {
	return unquoteUint64(b, (*uint64)(v))
}
func (c CommitteeIndex) MarshalJSON() ([]byte, error) { return quotedUint64(uint64(c)) }
func (c *CommitteeIndex) UnmarshalJSON(b []byte) error {
	return unquoteUint64(b, (*uint64)(c))
}
func (g Gwei) MarshalJSON() ([]byte, error)  { return quotedUint64(uint64(g)) }
func (g *Gwei) UnmarshalJSON(b []byte) error { return unquoteUint64(b, (*uint64)(g)) }

// MarshalJSON renders the root as a 0x-prefixed hex string.
func (r Root) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(r[:]))
}

// UnmarshalJSON parses a 0x-prefixed hex string into the root.
func (r *Root) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	dec, err := hexutil.Decode(s)
	if err != nil {
		return errors.Wrap(err, "could not decode root")
	}
	if len(dec) != 32 {
		return errors.Errorf("root has wrong length: %d", len(dec))
	}
	copy(r[:], dec)
	return nil
}

// String returns the 0x-prefixed hex form of the root.
func (r Root) String() string {
	return hexutil.Encode(r[:])
}

func (p BLSPubKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(p[:]))
}

func (p *BLSPubKey) UnmarshalJSON(b []byte) error {
	return unmarshalFixedHex(b, p[:], "public key")
}

func (s BLSSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(s[:]))
}

func (s *BLSSignature) UnmarshalJSON(b []byte) error {
	return unmarshalFixedHex(b, s[:], "signature")
}

func quotedUint64(v uint64) ([]byte, error) {
	return json.Marshal(strconv.FormatUint(v, 10))
}

func unquoteUint64(b []byte, dst *uint64) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse quoted uint64")
	}
	*dst = v
	return nil
}

func unmarshalFixedHex(b []byte, dst []byte, field string) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	dec, err := hexutil.Decode(s)
	if err != nil {
		return errors.Wrapf(err, "could not decode %s", field)
	}
	if len(dec) != len(dst) {
		return errors.Errorf("%s has wrong length: %d", field, len(dec))
	}
	copy(dst, dec)
	return nil
}
