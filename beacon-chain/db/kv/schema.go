package kv

// The schema defines how to store and retrieve data from the db. Values keyed
// by block root live in their own buckets; index buckets map secondary keys
// (slot, parent root) back to block roots for cheap reverse lookups.
var (
	blocksBucket     = []byte("blocks")
	stateBucket      = []byte("state")
	checkpointBucket = []byte("check-point")

	// Index buckets.
	blockSlotIndicesBucket       = []byte("block-slot-indices")
	blockParentRootIndicesBucket = []byte("block-parent-root-indices")

	// Metadata keys.
	justifiedCheckpointKey = []byte("justified-checkpoint")
	finalizedCheckpointKey = []byte("finalized-checkpoint")
	genesisBlockRootKey    = []byte("genesis-block-root")
)
