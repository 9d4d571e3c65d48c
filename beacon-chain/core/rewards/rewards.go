// Package rewards computes the proposer reward breakdown a block earned for
// the operations it included, evaluated against the pre-block state.
package rewards

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/seaham/beacond/beacon-chain/core/blocks"
	"github.com/seaham/beacond/beacon-chain/core/helpers"
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
)

var log = logrus.WithField("prefix", "rewards")

// BlockRewards runs the four reward accumulations over the block body and
// returns the breakdown keyed by the block's proposer index. It assumes state
// and block were already validated and therefore never fails on its own. The
// state must be the pre-block state the block was built on, not the
// post-state of applying it.
func BlockRewards(ctx context.Context, state *types.BeaconState, block *types.BeaconBlock) *types.BlockRewards {
	_, span := trace.StartSpan(ctx, "rewards.BlockRewards")
	defer span.End()

	attestations := attestationRewards(state, block)
	syncAggregate := syncAggregateRewards(state, block)
	proposerSlashings := proposerSlashingRewards(state, block)
	attesterSlashings := attesterSlashingRewards(state, block)

	return &types.BlockRewards{
		ProposerIndex:     block.ProposerIndex,
		Total:             attestations + syncAggregate + proposerSlashings + attesterSlashings,
		Attestations:      attestations,
		SyncAggregate:     syncAggregate,
		ProposerSlashings: proposerSlashings,
		AttesterSlashings: attesterSlashings,
	}
}

// attestationRewards sums the proposer share of every attester's base reward
// across all included attestations. An attestation whose attesting indices
// cannot be resolved contributes zero and processing continues; this
// best-effort degrade is acceptable for reward reporting only and must not be
// copied into state transition code, which fails hard on the same condition.
func attestationRewards(state *types.BeaconState, block *types.BeaconBlock) uint64 {
	cfg := params.BeaconConfig()
	totalBalance := helpers.TotalActiveBalance(state)

	total := uint64(0)
	for i, att := range block.Body.Attestations {
		attestingIndices, err := helpers.AttestingIndicesFromState(state, att)
		if err != nil {
			log.WithError(err).WithField("attestation", i).Debug("Could not resolve attesting indices, skipping")
			continue
		}
		for _, idx := range attestingIndices {
			baseReward := helpers.BaseRewardWithTotalBalance(state, types.ValidatorIndex(idx), totalBalance)
			total += baseReward * cfg.ProposerWeight / (cfg.WeightDenominator - cfg.ProposerWeight)
		}
	}
	return total
}

// syncAggregateRewards multiplies the proposer's share of one sync committee
// participant reward by the number of participation bits set in the block.
// The truncating divisions happen in the protocol-defined order; reordering
// them changes the result.
func syncAggregateRewards(state *types.BeaconState, block *types.BeaconBlock) uint64 {
	if block.Body.SyncAggregate == nil {
		return 0
	}
	cfg := params.BeaconConfig()
	totalActiveBalance := helpers.TotalActiveBalance(state)
	totalActiveIncrements := totalActiveBalance / cfg.EffectiveBalanceIncrement
	totalBaseRewards := helpers.BaseRewardPerIncrement(totalActiveBalance) * totalActiveIncrements
	maxParticipantRewards := totalBaseRewards * cfg.SyncRewardWeight / cfg.WeightDenominator / uint64(cfg.SlotsPerEpoch)
	participantReward := maxParticipantRewards / cfg.SyncCommitteeSize
	proposerReward := participantReward * cfg.ProposerWeight / (cfg.WeightDenominator - cfg.ProposerWeight)

	return block.Body.SyncAggregate.SyncCommitteeBits.Count() * proposerReward
}

// proposerSlashingRewards awards the full effective balance of each reported
// proposer, read from the pre-block state at inclusion time.
func proposerSlashingRewards(state *types.BeaconState, block *types.BeaconBlock) uint64 {
	total := uint64(0)
	for _, slashing := range block.Body.ProposerSlashings {
		val := state.ValidatorAtIndex(slashing.SignedHeader1.Header.ProposerIndex)
		if val == nil {
			continue
		}
		total += uint64(val.EffectiveBalance)
	}
	return total
}

// attesterSlashingRewards awards the whistleblower quotient share of each
// slashable attester's effective balance.
func attesterSlashingRewards(state *types.BeaconState, block *types.BeaconBlock) uint64 {
	cfg := params.BeaconConfig()
	total := uint64(0)
	for _, slashing := range block.Body.AttesterSlashings {
		slashableIndices, err := blocks.SlashableAttesterIndices(state, slashing)
		if err != nil {
			continue
		}
		for _, idx := range slashableIndices {
			val := state.ValidatorAtIndex(idx)
			if val == nil {
				continue
			}
			total += uint64(val.EffectiveBalance) / cfg.WhistleBlowerRewardQuotient
		}
	}
	return total
}
