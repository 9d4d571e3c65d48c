package types

import "github.com/karalabe/ssz"

// Checkpoint is an (epoch, root) pair pointing into the block graph. The
// justified and finalized checkpoints are stored process-wide and only ever
// advanced by the state transition.
type Checkpoint struct {
	Epoch Epoch `json:"epoch"`
	Root  Root  `json:"root"`
}

func (c *Checkpoint) SizeSSZ() uint32 { return 40 }

func (c *Checkpoint) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint64(codec, &c.Epoch)     // Field (0) - Epoch -  8 bytes
	ssz.DefineStaticBytes(codec, &c.Root) // Field (1) - Root  - 32 bytes
}
