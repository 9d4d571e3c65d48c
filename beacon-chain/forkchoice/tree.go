// Package forkchoice materializes the viable subtree of the block graph and
// derives the current chain heads from it.
package forkchoice

import (
	"bytes"
	"context"
	"sort"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"github.com/seaham/beacond/beacon-chain/db"
	types "github.com/seaham/beacond/consensus-types"
)

// Head identifies a leaf of the filtered block tree.
type Head struct {
	Root types.Root `json:"root"`
	Slot types.Slot `json:"slot"`
}

// FilterBlockTree collects every block still retained by the store that is
// reachable as a descendant of root, keyed by block root. Traversal uses an
// explicit work list and a visited set, so depth is bounded by memory rather
// than call stack, and a root is visited at most once regardless of graph
// shape. Blocks pruned by finality simply end the traversal along that
// branch; the store is never written.
func FilterBlockTree(ctx context.Context, beaconDB db.ReadOnlyDatabase, root types.Root) (map[types.Root]*types.BeaconBlock, error) {
	ctx, span := trace.StartSpan(ctx, "forkchoice.FilterBlockTree")
	defer span.End()

	blocks := make(map[types.Root]*types.BeaconBlock)
	visited := make(map[types.Root]bool)
	worklist := []types.Root{root}

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if visited[current] {
			continue
		}
		visited[current] = true

		signed, err := beaconDB.Block(ctx, current)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				continue
			}
			return nil, errors.Wrap(err, "could not read block during tree filter")
		}
		blocks[current] = signed.Block

		children, err := beaconDB.BlockRootsByParent(ctx, current)
		if err != nil {
			return nil, errors.Wrap(err, "could not read child roots during tree filter")
		}
		for _, child := range children {
			if !visited[child] {
				worklist = append(worklist, child)
			}
		}
	}
	return blocks, nil
}

// Heads returns the leaves of the filtered tree: every block whose root is
// never referenced as another block's parent. The result is sorted by slot
// then root so repeated calls over the same mapping are reproducible.
func Heads(blocks map[types.Root]*types.BeaconBlock) []*Head {
	referencedParents := make(map[types.Root]bool, len(blocks))
	for _, block := range blocks {
		referencedParents[block.ParentRoot] = true
	}

	heads := make([]*Head, 0, len(blocks))
	for root, block := range blocks {
		if !referencedParents[root] {
			heads = append(heads, &Head{Root: root, Slot: block.Slot})
		}
	}
	sort.Slice(heads, func(i, j int) bool {
		if heads[i].Slot != heads[j].Slot {
			return heads[i].Slot < heads[j].Slot
		}
		return bytes.Compare(heads[i].Root[:], heads[j].Root[:]) < 0
	})
	return heads
}
