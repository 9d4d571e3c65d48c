package types

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// BlockRewards is the proposer's reward breakdown for a single block, split by
// the operation class that earned it. All figures are Gwei. Pure output value,
// no identity.
type BlockRewards struct {
	ProposerIndex     ValidatorIndex
	Total             uint64
	Attestations      uint64
	SyncAggregate     uint64
	ProposerSlashings uint64
	AttesterSlashings uint64
}

type blockRewardsJson struct {
	ProposerIndex     string `json:"proposer_index"`
	Total             string `json:"total"`
	Attestations      string `json:"attestations"`
	SyncAggregate     string `json:"sync_aggregate"`
	ProposerSlashings string `json:"proposer_slashings"`
	AttesterSlashings string `json:"attester_slashings"`
}

func (r *BlockRewards) MarshalJSON() ([]byte, error) {
	return json.Marshal(&blockRewardsJson{
		ProposerIndex:     strconv.FormatUint(uint64(r.ProposerIndex), 10),
		Total:             strconv.FormatUint(r.Total, 10),
		Attestations:      strconv.FormatUint(r.Attestations, 10),
		SyncAggregate:     strconv.FormatUint(r.SyncAggregate, 10),
		ProposerSlashings: strconv.FormatUint(r.ProposerSlashings, 10),
		AttesterSlashings: strconv.FormatUint(r.AttesterSlashings, 10),
	})
}

func (r *BlockRewards) UnmarshalJSON(b []byte) error {
	j := &blockRewardsJson{}
	if err := json.Unmarshal(b, j); err != nil {
		return err
	}
	fields := []struct {
		name string
		raw  string
		dst  *uint64
	}{
		{"proposer index", j.ProposerIndex, (*uint64)(&r.ProposerIndex)},
		{"total", j.Total, &r.Total},
		{"attestations", j.Attestations, &r.Attestations},
		{"sync aggregate", j.SyncAggregate, &r.SyncAggregate},
		{"proposer slashings", j.ProposerSlashings, &r.ProposerSlashings},
		{"attester slashings", j.AttesterSlashings, &r.AttesterSlashings},
	}
	for _, f := range fields {
		v, err := strconv.ParseUint(f.raw, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "could not unmarshal %s", f.name)
		}
		*f.dst = v
	}
	return nil
}
