package kv

import (
	"context"
	"testing"

	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/testing/assert"
	"github.com/seaham/beacond/testing/require"
	"github.com/seaham/beacond/testing/util"
)

func setupDB(t testing.TB) *Store {
	s, err := NewKVStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStore_SaveBlock_CanRetrieve(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	blk := util.NewBeaconBlock()
	blk.Block.Slot = 20
	blk.Block.ParentRoot = types.Root{'p'}
	require.NoError(t, db.SaveBlock(ctx, blk))

	root := blk.Block.HashTreeRoot()
	assert.Equal(t, true, db.HasBlock(ctx, root))

	retrieved, err := db.Block(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(20), retrieved.Block.Slot)
	assert.Equal(t, types.Root{'p'}, retrieved.Block.ParentRoot)
	assert.Equal(t, root, retrieved.Block.HashTreeRoot())
}

func TestStore_Block_NotFound(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.Block(ctx, types.Root{'x'})
	require.Equal(t, ErrNotFound, err)
	assert.Equal(t, false, db.HasBlock(ctx, types.Root{'x'}))
}

func TestStore_BlockRootBySlot(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	blk := util.NewBeaconBlock()
	blk.Block.Slot = 40
	require.NoError(t, db.SaveBlock(ctx, blk))

	root, err := db.BlockRootBySlot(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, blk.Block.HashTreeRoot(), root)

	_, err = db.BlockRootBySlot(ctx, 41)
	require.Equal(t, ErrNotFound, err)
}

func TestStore_BlockRootsByParent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	parent := types.Root{'p', 'a'}
	b1 := util.NewBeaconBlock()
	b1.Block.Slot = 1
	b1.Block.ParentRoot = parent
	b2 := util.NewBeaconBlock()
	b2.Block.Slot = 2
	b2.Block.ParentRoot = parent
	require.NoError(t, db.SaveBlock(ctx, b1))
	require.NoError(t, db.SaveBlock(ctx, b2))

	roots, err := db.BlockRootsByParent(ctx, parent)
	require.NoError(t, err)
	assert.Equal(t, 2, len(roots))

	// Saving the same block again must not duplicate the index entry.
	require.NoError(t, db.SaveBlock(ctx, b1))
	roots, err = db.BlockRootsByParent(ctx, parent)
	require.NoError(t, err)
	assert.Equal(t, 2, len(roots))

	// Unknown parents have no children rather than an error.
	roots, err = db.BlockRootsByParent(ctx, types.Root{'z'})
	require.NoError(t, err)
	assert.Equal(t, 0, len(roots))
}

func TestStore_GenesisBlockRoot(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.GenesisBlockRoot(ctx)
	require.Equal(t, ErrNotFound, err)

	want := types.Root{'g'}
	require.NoError(t, db.SaveGenesisBlockRoot(ctx, want))
	got, err := db.GenesisBlockRoot(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_State_CanRetrieve(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	st := util.NewBeaconState(4)
	st.Slot = 100
	root := types.Root{'s'}
	require.NoError(t, db.SaveState(ctx, root, st))

	retrieved, err := db.State(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(100), retrieved.Slot)
	assert.Equal(t, 4, len(retrieved.Validators))

	_, err = db.State(ctx, types.Root{'t'})
	require.Equal(t, ErrNotFound, err)
}
