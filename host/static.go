package host

import (
	"github.com/archhaus/auctionhouse/account"
	"github.com/archhaus/auctionhouse/types"
)

// StaticQuerier serves canned host responses. It backs the demo binary and
// contract tests; a live deployment would wire the chain's query channel
// instead.
type StaticQuerier struct {
	Metadata types.ContractMetadata
	Records  []types.RewardsRecord
	Err      error
}

func (q *StaticQuerier) ContractMetadata(addr account.Address) (types.ContractMetadata, error) {
	if q.Err != nil {
		return types.ContractMetadata{}, q.Err
	}
	return q.Metadata, nil
}

func (q *StaticQuerier) RewardsRecords(addr account.Address, page types.PageRequest) (types.RewardsRecordsResponse, error) {
	if q.Err != nil {
		return types.RewardsRecordsResponse{}, q.Err
	}

	resp := types.RewardsRecordsResponse{Records: q.Records}
	if page.CountTotal {
		total := uint64(len(q.Records))
		resp.Pagination = &types.PageResponse{Total: &total}
	}
	return resp, nil
}
