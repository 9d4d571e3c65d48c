package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/seaham/beacond/encoding/bytesutil"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"

	types "github.com/seaham/beacond/consensus-types"
)

// Block retrieval by root.
func (s *Store) Block(ctx context.Context, blockRoot types.Root) (*types.SignedBeaconBlock, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.Block")
	defer span.End()

	block := &types.SignedBeaconBlock{}
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(blocksBucket).Get(blockRoot[:])
		if enc == nil {
			return ErrNotFound
		}
		return decode(enc, block)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "could not retrieve block")
	}
	return block, nil
}

// HasBlock checks if a block by root exists in the db.
func (s *Store) HasBlock(ctx context.Context, blockRoot types.Root) bool {
	_, span := trace.StartSpan(ctx, "BeaconDB.HasBlock")
	defer span.End()

	exists := false
	if err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(blocksBucket).Get(blockRoot[:]) != nil
		return nil
	}); err != nil {
		return false
	}
	return exists
}

// BlockRootBySlot returns the canonical block root recorded at the given
// slot.
func (s *Store) BlockRootBySlot(ctx context.Context, slot types.Slot) (types.Root, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.BlockRootBySlot")
	defer span.End()

	var root types.Root
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(blockSlotIndicesBucket).Get(bytesutil.Uint64ToBytesBigEndian(uint64(slot)))
		if enc == nil {
			return ErrNotFound
		}
		root = types.Root(bytesutil.ToBytes32(enc))
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.Root{}, ErrNotFound
		}
		return types.Root{}, errors.Wrap(err, "could not retrieve block root by slot")
	}
	return root, nil
}

// BlockRootsByParent returns the roots of every stored block whose parent
// root equals parentRoot. An absent index entry means no known children and
// is not an error.
func (s *Store) BlockRootsByParent(ctx context.Context, parentRoot types.Root) ([]types.Root, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.BlockRootsByParent")
	defer span.End()

	var roots []types.Root
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(blockParentRootIndicesBucket).Get(parentRoot[:])
		roots = splitRoots(enc)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not retrieve block roots by parent")
	}
	return roots, nil
}

// GenesisBlockRoot returns the genesis block root stored at node init.
func (s *Store) GenesisBlockRoot(ctx context.Context) (types.Root, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.GenesisBlockRoot")
	defer span.End()

	var root types.Root
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(blocksBucket).Get(genesisBlockRootKey)
		if enc == nil {
			return ErrNotFound
		}
		root = types.Root(bytesutil.ToBytes32(enc))
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.Root{}, ErrNotFound
		}
		return types.Root{}, errors.Wrap(err, "could not retrieve genesis block root")
	}
	return root, nil
}

// SaveBlock to the db. The block's hash tree root keys the value, and the
// slot and parent-root indices are updated in the same transaction.
func (s *Store) SaveBlock(ctx context.Context, block *types.SignedBeaconBlock) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveBlock")
	defer span.End()

	if block == nil || block.Block == nil {
		return errors.New("cannot save nil block")
	}
	blockRoot := block.Block.HashTreeRoot()
	enc, err := encode(block)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(blocksBucket).Put(blockRoot[:], enc); err != nil {
			return err
		}
		slotKey := bytesutil.Uint64ToBytesBigEndian(uint64(block.Block.Slot))
		if err := tx.Bucket(blockSlotIndicesBucket).Put(slotKey, blockRoot[:]); err != nil {
			return err
		}
		parentBkt := tx.Bucket(blockParentRootIndicesBucket)
		parentRoot := block.Block.ParentRoot
		existing := parentBkt.Get(parentRoot[:])
		for _, r := range splitRoots(existing) {
			if r == blockRoot {
				return nil
			}
		}
		return parentBkt.Put(parentRoot[:], append(append([]byte{}, existing...), blockRoot[:]...))
	})
}

// SaveGenesisBlockRoot to the db.
func (s *Store) SaveGenesisBlockRoot(ctx context.Context, blockRoot types.Root) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveGenesisBlockRoot")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blocksBucket).Put(genesisBlockRootKey, blockRoot[:])
	})
}

// splitRoots decodes a concatenation of 32-byte roots. A trailing partial
// root indicates index corruption and is dropped.
func splitRoots(enc []byte) []types.Root {
	roots := make([]types.Root, 0, len(enc)/32)
	for i := 0; i+32 <= len(enc); i += 32 {
		roots = append(roots, types.Root(bytesutil.ToBytes32(enc[i:i+32])))
	}
	return roots
}
