// Package rewards implements the block rewards API endpoint.
package rewards

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	coreRewards "github.com/seaham/beacond/beacon-chain/core/rewards"
	"github.com/seaham/beacond/beacon-chain/db"
	"github.com/seaham/beacond/beacon-chain/rpc/lookup"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/network/httputil"
)

// Server defines a server implementation for the rewards API endpoints.
type Server struct {
	BeaconDB db.ReadOnlyDatabase
	Blocker  *lookup.Blocker
}

// BlockRewardsResponse wraps the reward summary for a single block.
type BlockRewardsResponse struct {
	ExecutionOptimistic bool                `json:"execution_optimistic"`
	Finalized           bool                `json:"finalized"`
	Data                *types.BlockRewards `json:"data"`
}

// BlockRewards computes the consensus rewards credited to the proposer of the
// block matching the given block ID, using the state stored under the same
// block root.
func (s *Server) BlockRewards(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "rewards.BlockRewards")
	defer span.End()

	blockId := mux.Vars(r)["block_id"]
	blk, err := s.Blocker.BlockByID(ctx, blockId)
	if err != nil {
		writeIdentifierError(w, err)
		return
	}
	st, err := s.Blocker.StateByID(ctx, blockId)
	if err != nil {
		writeIdentifierError(w, err)
		return
	}
	rewards := coreRewards.BlockRewards(ctx, st, blk.Block)
	httputil.WriteJson(w, &BlockRewardsResponse{
		ExecutionOptimistic: false,
		Finalized:           false,
		Data:                rewards,
	})
}

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
