// Package lookup resolves the logical block identifiers of the beacon API
// (head, genesis, finalized, justified, slot, root) against the store.
package lookup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/seaham/beacond/beacon-chain/db"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/encoding/bytesutil"
)

// BlockIdParseError represents an error scenario where a block ID could not
// be parsed.
type BlockIdParseError struct {
	message string
}

// NewBlockIdParseError creates a new error instance.
func NewBlockIdParseError(reason error) BlockIdParseError {
	return BlockIdParseError{
		message: errors.Wrapf(reason, "could not parse block ID").Error(),
	}
}

// Error returns the underlying error message.
func (e *BlockIdParseError) Error() string {
	return e.message
}

// NotFoundError represents an error scenario where the requested entity does
// not exist in the store.
type NotFoundError struct {
	message string
}

// NewNotFoundError creates a new error instance.
func NewNotFoundError(format string, args ...interface{}) NotFoundError {
	return NotFoundError{message: fmt.Sprintf(format, args...)}
}

// Error returns the underlying error message.
func (e *NotFoundError) Error() string {
	return e.message
}

// NotSupportedError represents an identifier variant this read-only core
// cannot resolve without live fork choice state.
type NotSupportedError struct {
	message string
}

// Error returns the underlying error message.
func (e *NotSupportedError) Error() string {
	return e.message
}

// Blocker resolves block identifiers against a read-only database handle.
type Blocker struct {
	BeaconDB db.ReadOnlyDatabase
}

// BlockRootByID returns the block root for a given identifier. The identifier
// can be one of:
//  - "finalized"
//  - "justified"
//  - <slot>
//  - <hex encoded block root with '0x' prefix>
//
// "head" and "genesis" require the live fork-choice head selector, an
// external collaborator, and resolve to NotSupportedError here.
func (b *Blocker) BlockRootByID(ctx context.Context, blockId string) (types.Root, error) {
	switch strings.ToLower(blockId) {
	case "head", "genesis":
		e := NotSupportedError{message: fmt.Sprintf("block ID %q is not supported", blockId)}
		return types.Root{}, &e
	case "finalized":
		cp, err := b.BeaconDB.FinalizedCheckpoint(ctx)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				e := NewNotFoundError("no finalized checkpoint in store")
				return types.Root{}, &e
			}
			return types.Root{}, errors.Wrap(err, "could not get finalized checkpoint")
		}
		return cp.Root, nil
	case "justified":
		cp, err := b.BeaconDB.JustifiedCheckpoint(ctx)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				e := NewNotFoundError("no justified checkpoint in store")
				return types.Root{}, &e
			}
			return types.Root{}, errors.Wrap(err, "could not get justified checkpoint")
		}
		return cp.Root, nil
	default:
		if strings.HasPrefix(blockId, "0x") {
			dec, err := hexutil.Decode(blockId)
			if err != nil || len(dec) != 32 {
				e := NewBlockIdParseError(errors.New("malformed block root"))
				return types.Root{}, &e
			}
			return types.Root(bytesutil.ToBytes32(dec)), nil
		}
		slotNumber, parseErr := strconv.ParseUint(blockId, 10, 64)
		if parseErr != nil {
			// ID format does not match any valid options.
			e := NewBlockIdParseError(parseErr)
			return types.Root{}, &e
		}
		root, err := b.BeaconDB.BlockRootBySlot(ctx, types.Slot(slotNumber))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				e := NewNotFoundError("no block root recorded at slot %d", slotNumber)
				return types.Root{}, &e
			}
			return types.Root{}, errors.Wrap(err, "could not get block root by slot")
		}
		return root, nil
	}
}

// BlockByID resolves the identifier and fetches the signed block stored under
// the resulting root.
func (b *Blocker) BlockByID(ctx context.Context, blockId string) (*types.SignedBeaconBlock, error) {
	root, err := b.BlockRootByID(ctx, blockId)
	if err != nil {
		return nil, err
	}
	block, err := b.BeaconDB.Block(ctx, root)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			e := NewNotFoundError("no block found for root %#x", root)
			return nil, &e
		}
		return nil, errors.Wrap(err, "could not get block")
	}
	return block, nil
}

// StateByID resolves the identifier and fetches the state snapshot keyed by
// the resulting block root.
func (b *Blocker) StateByID(ctx context.Context, blockId string) (*types.BeaconState, error) {
	root, err := b.BlockRootByID(ctx, blockId)
	if err != nil {
		return nil, err
	}
	st, err := b.BeaconDB.State(ctx, root)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			e := NewNotFoundError("no state found for root %#x", root)
			return nil, &e
		}
		return nil, errors.Wrap(err, "could not get state")
	}
	return st, nil
}
