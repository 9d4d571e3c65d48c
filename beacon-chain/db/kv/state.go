package kv

import (
	"context"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"

	types "github.com/seaham/beacond/consensus-types"
)

// State returns the post-state snapshot keyed by the block root it belongs
// to.
func (s *Store) State(ctx context.Context, blockRoot types.Root) (*types.BeaconState, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.State")
	defer span.End()

	st := &types.BeaconState{}
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(stateBucket).Get(blockRoot[:])
		if enc == nil {
			return ErrNotFound
		}
		return decode(enc, st)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "could not retrieve state")
	}
	return st, nil
}

// SaveState stores a state keyed by its block root. States are written once
// and never mutated.
func (s *Store) SaveState(ctx context.Context, blockRoot types.Root, st *types.BeaconState) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveState")
	defer span.End()

	if st == nil {
		return errors.New("cannot save nil state")
	}
	enc, err := encode(st)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put(blockRoot[:], enc)
	})
}
