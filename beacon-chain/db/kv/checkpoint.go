package kv

import (
	"context"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"

	types "github.com/seaham/beacond/consensus-types"
)

// JustifiedCheckpoint returns the latest justified checkpoint in the beacon
// chain, or ErrNotFound before the state transition has recorded one.
func (s *Store) JustifiedCheckpoint(ctx context.Context) (*types.Checkpoint, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.JustifiedCheckpoint")
	defer span.End()

	return s.checkpoint(justifiedCheckpointKey, "justified")
}

// FinalizedCheckpoint returns the latest finalized checkpoint in the beacon
// chain, or ErrNotFound before the state transition has recorded one.
func (s *Store) FinalizedCheckpoint(ctx context.Context) (*types.Checkpoint, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.FinalizedCheckpoint")
	defer span.End()

	return s.checkpoint(finalizedCheckpointKey, "finalized")
}

// SaveJustifiedCheckpoint saves the justified checkpoint in the beacon chain.
func (s *Store) SaveJustifiedCheckpoint(ctx context.Context, checkpoint *types.Checkpoint) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveJustifiedCheckpoint")
	defer span.End()

	return s.saveCheckpoint(justifiedCheckpointKey, checkpoint)
}

// SaveFinalizedCheckpoint saves the finalized checkpoint in the beacon chain.
func (s *Store) SaveFinalizedCheckpoint(ctx context.Context, checkpoint *types.Checkpoint) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveFinalizedCheckpoint")
	defer span.End()

	return s.saveCheckpoint(finalizedCheckpointKey, checkpoint)
}

func (s *Store) checkpoint(key []byte, name string) (*types.Checkpoint, error) {
	checkpoint := &types.Checkpoint{}
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(checkpointBucket).Get(key)
		if enc == nil {
			return ErrNotFound
		}
		return decode(enc, checkpoint)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "could not retrieve %s checkpoint", name)
	}
	return checkpoint, nil
}

func (s *Store) saveCheckpoint(key []byte, checkpoint *types.Checkpoint) error {
	if checkpoint == nil {
		return errors.New("cannot save nil checkpoint")
	}
	enc, err := encode(checkpoint)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(checkpointBucket).Put(key, enc)
	})
}
