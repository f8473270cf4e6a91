package types

import (
	"time"

	"github.com/rs/xid"

	"github.com/archhaus/auctionhouse/account"
)

// Auction is one listing in the open-auction collection. The contract core
// only stores and returns these; bidding and settlement live elsewhere.
type Auction struct {
	Id       string          `json:"id"`
	Seller   account.Address `json:"seller"`
	MinBid   Coin            `json:"min_bid"`
	Deadline time.Time       `json:"deadline"`
}

// NewAuctionId mints a listing id; sortable by creation time.
func NewAuctionId() string {
	return xid.New().String()
}
