package rewards

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/seaham/beacond/beacon-chain/core/helpers"
	"github.com/seaham/beacond/config/params"
	types "github.com/seaham/beacond/consensus-types"
	"github.com/seaham/beacond/testing/assert"
	"github.com/seaham/beacond/testing/require"
	"github.com/seaham/beacond/testing/util"
)

func TestBlockRewards_EmptyBody(t *testing.T) {
	state := util.NewBeaconState(64)
	blk := util.NewBeaconBlock()
	blk.Block.ProposerIndex = 7

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, types.ValidatorIndex(7), rewards.ProposerIndex)
	assert.Equal(t, uint64(0), rewards.Total)
	assert.Equal(t, uint64(0), rewards.Attestations)
	assert.Equal(t, uint64(0), rewards.SyncAggregate)
	assert.Equal(t, uint64(0), rewards.ProposerSlashings)
	assert.Equal(t, uint64(0), rewards.AttesterSlashings)
}

func TestBlockRewards_TotalIsSumOfComponents(t *testing.T) {
	state := util.NewBeaconState(256)
	blk := util.NewBeaconBlock()
	blk.Block.Body.ProposerSlashings = []*types.ProposerSlashing{newProposerSlashing(3)}
	blk.Block.Body.AttesterSlashings = []*types.AttesterSlashing{util.NewAttesterSlashing([]uint64{5, 6})}
	blk.Block.Body.SyncAggregate.SyncCommitteeBits.SetBitAt(0, true)

	rewards := BlockRewards(context.Background(), state, blk.Block)
	sum := rewards.Attestations + rewards.SyncAggregate + rewards.ProposerSlashings + rewards.AttesterSlashings
	assert.Equal(t, sum, rewards.Total)
}

func TestAttestationRewards_FullCommittee(t *testing.T) {
	state := util.NewBeaconState(256)
	committee, err := helpers.BeaconCommittee(state, 0, 0)
	require.NoError(t, err)

	att := util.NewAttestation()
	att.AggregationBits = bitfield.NewBitlist(uint64(len(committee)))
	for i := range committee {
		att.AggregationBits.SetBitAt(uint64(i), true)
	}
	blk := util.NewBeaconBlock()
	blk.Block.Body.Attestations = []*types.Attestation{att}

	cfg := params.BeaconConfig()
	tab := helpers.TotalActiveBalance(state)
	perAttester := helpers.BaseRewardWithTotalBalance(state, committee[0], tab) *
		cfg.ProposerWeight / (cfg.WeightDenominator - cfg.ProposerWeight)
	want := perAttester * uint64(len(committee))

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, want, rewards.Attestations)
	assert.Equal(t, want, rewards.Total)
}

func TestAttestationRewards_DoublingAttestationsDoublesReward(t *testing.T) {
	state := util.NewBeaconState(256)
	committee, err := helpers.BeaconCommittee(state, 0, 0)
	require.NoError(t, err)

	att := util.NewAttestation()
	att.AggregationBits = bitfield.NewBitlist(uint64(len(committee)))
	att.AggregationBits.SetBitAt(0, true)

	single := util.NewBeaconBlock()
	single.Block.Body.Attestations = []*types.Attestation{att}
	double := util.NewBeaconBlock()
	double.Block.Body.Attestations = []*types.Attestation{att, att}

	ctx := context.Background()
	one := BlockRewards(ctx, state, single.Block).Attestations
	two := BlockRewards(ctx, state, double.Block).Attestations
	assert.Equal(t, 2*one, two)
	if one == 0 {
		t.Fatal("expected non-zero attestation reward")
	}
}

func TestAttestationRewards_UnresolvableAttestationSkipped(t *testing.T) {
	state := util.NewBeaconState(256)
	committee, err := helpers.BeaconCommittee(state, 0, 0)
	require.NoError(t, err)

	good := util.NewAttestation()
	good.AggregationBits = bitfield.NewBitlist(uint64(len(committee)))
	good.AggregationBits.SetBitAt(0, true)

	// Bitlist length disagrees with the committee size, so the indices
	// cannot be resolved.
	bad := util.NewAttestation()
	bad.AggregationBits = bitfield.NewBitlist(uint64(len(committee)) + 5)

	withBad := util.NewBeaconBlock()
	withBad.Block.Body.Attestations = []*types.Attestation{good, bad}
	withoutBad := util.NewBeaconBlock()
	withoutBad.Block.Body.Attestations = []*types.Attestation{good}

	ctx := context.Background()
	assert.Equal(t,
		BlockRewards(ctx, state, withoutBad.Block).Attestations,
		BlockRewards(ctx, state, withBad.Block).Attestations)
}

func TestSyncAggregateRewards_ScalesWithBits(t *testing.T) {
	state := util.NewBeaconState(512)

	one := util.NewBeaconBlock()
	one.Block.Body.SyncAggregate.SyncCommitteeBits.SetBitAt(0, true)

	two := util.NewBeaconBlock()
	two.Block.Body.SyncAggregate.SyncCommitteeBits.SetBitAt(0, true)
	two.Block.Body.SyncAggregate.SyncCommitteeBits.SetBitAt(100, true)

	ctx := context.Background()
	oneBit := BlockRewards(ctx, state, one.Block).SyncAggregate
	twoBits := BlockRewards(ctx, state, two.Block).SyncAggregate
	assert.Equal(t, 2*oneBit, twoBits)
	if oneBit == 0 {
		t.Fatal("expected non-zero sync aggregate reward")
	}
}

func TestSyncAggregateRewards_NilAggregate(t *testing.T) {
	state := util.NewBeaconState(64)
	blk := util.NewBeaconBlock()
	blk.Block.Body.SyncAggregate = nil

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, uint64(0), rewards.SyncAggregate)
}

func TestProposerSlashingRewards_FullEffectiveBalance(t *testing.T) {
	state := util.NewBeaconState(64)
	blk := util.NewBeaconBlock()
	blk.Block.Body.ProposerSlashings = []*types.ProposerSlashing{newProposerSlashing(3), newProposerSlashing(9)}

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, 2*params.BeaconConfig().MaxEffectiveBalance, rewards.ProposerSlashings)
}

func TestProposerSlashingRewards_UnknownValidatorSkipped(t *testing.T) {
	state := util.NewBeaconState(4)
	blk := util.NewBeaconBlock()
	blk.Block.Body.ProposerSlashings = []*types.ProposerSlashing{newProposerSlashing(100)}

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, uint64(0), rewards.ProposerSlashings)
}

func TestAttesterSlashingRewards_WhistleblowerShare(t *testing.T) {
	cfg := params.BeaconConfig()
	state := util.NewBeaconState(64)
	blk := util.NewBeaconBlock()
	blk.Block.Body.AttesterSlashings = []*types.AttesterSlashing{util.NewAttesterSlashing([]uint64{1, 2, 3})}

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, 3*(cfg.MaxEffectiveBalance/cfg.WhistleBlowerRewardQuotient), rewards.AttesterSlashings)
}

func TestAttesterSlashingRewards_AlreadySlashedExcluded(t *testing.T) {
	cfg := params.BeaconConfig()
	state := util.NewBeaconState(64)
	state.Validators[2].Slashed = true
	blk := util.NewBeaconBlock()
	blk.Block.Body.AttesterSlashings = []*types.AttesterSlashing{util.NewAttesterSlashing([]uint64{1, 2, 3})}

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, 2*(cfg.MaxEffectiveBalance/cfg.WhistleBlowerRewardQuotient), rewards.AttesterSlashings)
}

func newProposerSlashing(proposer types.ValidatorIndex) *types.ProposerSlashing {
	return &types.ProposerSlashing{
		SignedHeader1: &types.SignedBeaconBlockHeader{
			Header: &types.BeaconBlockHeader{ProposerIndex: proposer, BodyRoot: types.Root{'a'}},
		},
		SignedHeader2: &types.SignedBeaconBlockHeader{
			Header: &types.BeaconBlockHeader{ProposerIndex: proposer, BodyRoot: types.Root{'b'}},
		},
	}
}

func TestSyncAggregateRewards_ExactAtMaxBalance(t *testing.T) {
	// 20 validators at the maximum effective balance put the total active
	// balance at 640e9 Gwei, whose integer square root is exactly 800,000,
	// so every step of the truncating-division chain lands on:
	//   base reward per increment = 1e9 * 64 / 800_000     = 80_000
	//   total base rewards        = 80_000 * 640           = 51_200_000
	//   max participant rewards   = 51_200_000 * 2 / 64/32 = 50_000
	//   participant reward        = 50_000 / 512           = 97
	//   proposer reward           = 97 * 8 / 56            = 13
	state := util.NewBeaconState(20)
	blk := util.NewBeaconBlock()
	for i := uint64(0); i < 100; i++ {
		blk.Block.Body.SyncAggregate.SyncCommitteeBits.SetBitAt(i, true)
	}

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, uint64(100*13), rewards.SyncAggregate)
}

func TestBlockRewards_ProtocolBoundsStayInRange(t *testing.T) {
	cfg := params.BeaconConfig()
	state := util.NewBeaconState(65536)

	// A slashing carrying the full 2048-index attestation pair and the
	// maximum number of proposer slashings, all at the balance cap.
	indices := make([]uint64, 2048)
	for i := range indices {
		indices[i] = uint64(i)
	}
	blk := util.NewBeaconBlock()
	blk.Block.Body.AttesterSlashings = []*types.AttesterSlashing{util.NewAttesterSlashing(indices)}
	for i := uint64(0); i < cfg.MaxProposerSlashings; i++ {
		blk.Block.Body.ProposerSlashings = append(blk.Block.Body.ProposerSlashings, newProposerSlashing(types.ValidatorIndex(3000+i)))
	}

	rewards := BlockRewards(context.Background(), state, blk.Block)
	assert.Equal(t, 2048*(cfg.MaxEffectiveBalance/cfg.WhistleBlowerRewardQuotient), rewards.AttesterSlashings)
	assert.Equal(t, cfg.MaxProposerSlashings*cfg.MaxEffectiveBalance, rewards.ProposerSlashings)
	sum := rewards.Attestations + rewards.SyncAggregate + rewards.ProposerSlashings + rewards.AttesterSlashings
	assert.Equal(t, sum, rewards.Total)
}
