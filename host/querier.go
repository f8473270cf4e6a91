package host

import (
	"github.com/archhaus/auctionhouse/account"
	"github.com/archhaus/auctionhouse/types"
)

// Querier is the contract's read-only channel to the host chain. Errors
// from the host propagate to the caller unchanged; the contract performs no
// recovery or fallback.
type Querier interface {
	ContractMetadata(addr account.Address) (types.ContractMetadata, error)
	RewardsRecords(addr account.Address, page types.PageRequest) (types.RewardsRecordsResponse, error)
}
