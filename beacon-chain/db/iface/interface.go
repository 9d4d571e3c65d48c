// Package iface exists to prevent circular dependencies when implementing the
// database interface.
package iface

import (
	"context"
	"io"

	types "github.com/seaham/beacond/consensus-types"
)

// ReadOnlyDatabase defines the read contract the accounting core runs on.
// Every method either returns the stored value, ErrNotFound when the entity
// is absent, or a wrapped store error. Implementations must allow concurrent
// readers observing a consistent snapshot.
type ReadOnlyDatabase interface {
	Block(ctx context.Context, blockRoot types.Root) (*types.SignedBeaconBlock, error)
	HasBlock(ctx context.Context, blockRoot types.Root) bool
	BlockRootBySlot(ctx context.Context, slot types.Slot) (types.Root, error)
	BlockRootsByParent(ctx context.Context, parentRoot types.Root) ([]types.Root, error)
	GenesisBlockRoot(ctx context.Context) (types.Root, error)
	State(ctx context.Context, blockRoot types.Root) (*types.BeaconState, error)
	JustifiedCheckpoint(ctx context.Context) (*types.Checkpoint, error)
	FinalizedCheckpoint(ctx context.Context) (*types.Checkpoint, error)
}

// NoHeadAccessDatabase extends the read contract with the write path used by
// the (external) state transition and by tests. The accounting core itself
// never calls these.
type NoHeadAccessDatabase interface {
	ReadOnlyDatabase

	SaveBlock(ctx context.Context, block *types.SignedBeaconBlock) error
	SaveState(ctx context.Context, blockRoot types.Root, state *types.BeaconState) error
	SaveGenesisBlockRoot(ctx context.Context, blockRoot types.Root) error
	SaveJustifiedCheckpoint(ctx context.Context, checkpoint *types.Checkpoint) error
	SaveFinalizedCheckpoint(ctx context.Context, checkpoint *types.Checkpoint) error
}

// Database is the full persistent store handle. The handle is safe to share
// across request-scoped computations.
type Database interface {
	io.Closer
	NoHeadAccessDatabase

	DatabasePath() string
	ClearDB() error
}
