// Package beacon implements the read-only beacon node API endpoints backed by
// the local store.
package beacon

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"github.com/seaham/beacond/beacon-chain/core/helpers"
	"github.com/seaham/beacond/beacon-chain/db"
	"github.com/seaham/beacond/beacon-chain/forkchoice"
	"github.com/seaham/beacond/beacon-chain/rpc/lookup"
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/network/httputil"
)

// Server defines a server implementation of the read-only beacon node API.
type Server struct {
	BeaconDB db.ReadOnlyDatabase
	Blocker  *lookup.Blocker
}

// GetGenesis returns the details of the chain genesis, configured statically.
func (s *Server) GetGenesis(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "beacon.GetGenesis")
	defer span.End()

	cfg := params.BeaconConfig()
	httputil.WriteJson(w, &GenesisResponse{
		Data: &Genesis{
			GenesisTime:           strconv.FormatUint(cfg.MinGenesisTime, 10),
			GenesisValidatorsRoot: hexutil.Encode(cfg.GenesisValidatorsRoot[:]),
			GenesisForkVersion:    hexutil.Encode(cfg.GenesisForkVersion[:]),
		},
	})
}

// GetBlockV2 retrieves the block for the given block ID.
func (s *Server) GetBlockV2(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "beacon.GetBlockV2")
	defer span.End()

	blockId := mux.Vars(r)["block_id"]
	blk, err := s.Blocker.BlockByID(ctx, blockId)
	if err != nil {
		writeIdentifierError(w, err)
		return
	}
	httputil.WriteJson(w, &GetBlockV2Response{
		Version:             "electra",
		ExecutionOptimistic: false,
		Finalized:           s.isFinalized(ctx, blk.Block.Slot),
		Data:                blk,
	})
}

// GetBlockRoot retrieves the root of the block matching the given block ID.
func (s *Server) GetBlockRoot(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "beacon.GetBlockRoot")
	defer span.End()

	blockId := mux.Vars(r)["block_id"]
	root, err := s.Blocker.BlockRootByID(ctx, blockId)
	if err != nil {
		writeIdentifierError(w, err)
		return
	}
	// A root identifier is echoed back only if such a block actually exists.
	if !s.BeaconDB.HasBlock(ctx, root) {
		httputil.HandleError(w, fmt.Sprintf("No block found for root %#x", root), http.StatusNotFound)
		return
	}
	blk, err := s.BeaconDB.Block(ctx, root)
	if err != nil {
		httputil.HandleError(w, "Could not get block: "+err.Error(), http.StatusInternalServerError)
		return
	}
	httputil.WriteJson(w, &BlockRootResponse{
		ExecutionOptimistic: false,
		Finalized:           s.isFinalized(ctx, blk.Block.Slot),
		Data:                &BlockRoot{Root: hexutil.Encode(root[:])},
	})
}

// GetBlockAttestations retrieves the attestations included in the requested block.
func (s *Server) GetBlockAttestations(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "beacon.GetBlockAttestations")
	defer span.End()

	blockId := mux.Vars(r)["block_id"]
	blk, err := s.Blocker.BlockByID(ctx, blockId)
	if err != nil {
		writeIdentifierError(w, err)
		return
	}
	httputil.WriteJson(w, &GetBlockAttestationsResponse{
		ExecutionOptimistic: false,
		Finalized:           s.isFinalized(ctx, blk.Block.Slot),
		Data:                blk.Block.Body.Attestations,
	})
}

// GetForkChoiceHeads retrieves the leaves of the filtered block tree rooted at
// the justified checkpoint.
func (s *Server) GetForkChoiceHeads(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "beacon.GetForkChoiceHeads")
	defer span.End()

	justified, err := s.BeaconDB.JustifiedCheckpoint(ctx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			httputil.HandleError(w, "No justified checkpoint in store", http.StatusNotFound)
			return
		}
		httputil.HandleError(w, "Could not get justified checkpoint: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tree, err := forkchoice.FilterBlockTree(ctx, s.BeaconDB, justified.Root)
	if err != nil {
		httputil.HandleError(w, "Could not filter block tree: "+err.Error(), http.StatusInternalServerError)
		return
	}
	heads := forkchoice.Heads(tree)
	resp := &GetForkChoiceHeadsResponse{Data: make([]*ForkChoiceHead, len(heads))}
	for i, h := range heads {
		resp.Data[i] = &ForkChoiceHead{
			Root:                hexutil.Encode(h.Root[:]),
			Slot:                strconv.FormatUint(uint64(h.Slot), 10),
			ExecutionOptimistic: false,
		}
	}
	httputil.WriteJson(w, resp)
}

// isFinalized reports whether a slot is at or below the finalized checkpoint
// epoch boundary. Absent a finalized checkpoint nothing is finalized.
func (s *Server) isFinalized(ctx context.Context, slot types.Slot) bool {
	cp, err := s.BeaconDB.FinalizedCheckpoint(ctx)
	if err != nil {
		return false
	}
	return helpers.SlotToEpoch(slot) <= cp.Epoch
}

// writeIdentifierError maps the typed lookup errors onto HTTP status codes.
func writeIdentifierError(w http.ResponseWriter, err error) {
	var parseErr *lookup.BlockIdParseError
	var notFoundErr *lookup.NotFoundError
	var notSupportedErr *lookup.NotSupportedError
	switch {
	case errors.As(err, &parseErr):
		httputil.HandleError(w, "Invalid block ID: "+parseErr.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		httputil.HandleError(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &notSupportedErr):
		httputil.HandleError(w, notSupportedErr.Error(), http.StatusNotImplemented)
	default:
		httputil.HandleError(w, err.Error(), http.StatusInternalServerError)
	}
}
