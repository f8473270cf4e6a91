package contract

import (
	"golang.org/x/xerrors"

	"github.com/archhaus/auctionhouse/storage"
	"github.com/archhaus/auctionhouse/types"
)

// Read-only surface. No authorization: anyone may inspect listings and
// reward balances. Nothing here writes state.

type OpenAuctionsResponse struct {
	Auctions []types.Auction `json:"auctions"`
}

type OutstandingRewardsResponse struct {
	RewardsBalance []types.Coin `json:"rewards_balance"`
	TotalRecords   uint64       `json:"total_records"`
}

// OpenAuctions returns the auctions that are still open and/or unclaimed,
// verbatim from the store.
func (h *AuctionHouse) OpenAuctions() (OpenAuctionsResponse, error) {
	value, err := h.kv.Get(storage.KeyAuctions)
	if err != nil {
		return OpenAuctionsResponse{}, xerrors.Errorf("auctions dont exist: %w", err)
	}
	auctions, ok := value.([]types.Auction)
	if !ok {
		return OpenAuctionsResponse{}, xerrors.Errorf("auctions are corrupted: %v", value)
	}
	return OpenAuctionsResponse{Auctions: auctions}, nil
}

// ContractMetadata forwards the host's metadata record for this contract:
// its owner address and rewards address as the chain sees them.
func (h *AuctionHouse) ContractMetadata() (types.ContractMetadata, error) {
	return h.querier.ContractMetadata(h.addr)
}

// OutstandingRewards sums every reward record the host holds for this
// contract into one normalized balance. TotalRecords is the host's
// pagination total, 0 when the host reports none.
func (h *AuctionHouse) OutstandingRewards() (OutstandingRewardsResponse, error) {
	resp, err := h.querier.RewardsRecords(h.addr, types.PageRequest{CountTotal: true})
	if err != nil {
		return OutstandingRewardsResponse{}, err
	}

	var coins types.NativeBalance
	for _, record := range resp.Records {
		coins = append(coins, record.Rewards...)
	}

	var total uint64
	if resp.Pagination != nil && resp.Pagination.Total != nil {
		total = *resp.Pagination.Total
	}

	return OutstandingRewardsResponse{
		RewardsBalance: coins.Normalize(),
		TotalRecords:   total,
	}, nil
}
