package types

import (
	"github.com/archhaus/auctionhouse/account"
)

// Msg is an outbound effect carried on a Response for the host chain to
// execute after the call commits. The contract never dispatches directly.
type Msg interface {
	isMsg()
}

// UpdateRewardsAddressMsg asks the host to point the contract's reward
// payouts at RewardsAddress.
type UpdateRewardsAddressMsg struct {
	RewardsAddress account.Address `json:"rewards_address"`
}

// WithdrawRewardsMsg asks the host to withdraw accrued rewards.
// RecordsLimit of 0 means no limit: withdraw everything.
type WithdrawRewardsMsg struct {
	RecordsLimit uint64 `json:"records_limit"`
}

func (UpdateRewardsAddressMsg) isMsg() {}
func (WithdrawRewardsMsg) isMsg()      {}
