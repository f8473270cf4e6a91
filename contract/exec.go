package contract

import (
	"golang.org/x/xerrors"

	"github.com/archhaus/auctionhouse/account"
	"github.com/archhaus/auctionhouse/storage"
	"github.com/archhaus/auctionhouse/types"
)

// Privileged operations. Each one re-checks the caller against the owner
// set before producing any effect: calls are independent transactions, so
// there is no session to cache the check in. Saves happen last; a failure
// anywhere leaves state untouched.

// UpdateRewardsAddress points the contract's reward payouts at a new
// address. The change itself is executed by the host via the emitted
// message; no local state moves.
func (h *AuctionHouse) UpdateRewardsAddress(caller, rewardsAddress string) (*types.Response, error) {
	sender, err := account.ParseAddress(caller)
	if err != nil {
		return nil, err
	}

	owners, err := h.loadOwners()
	if err != nil {
		return nil, err
	}
	if !contains(owners, sender) {
		h.logger.Debug().Msgf("update_rewards_address rejected, caller=%s", sender)
		return nil, xerrors.Errorf("%s: %w", sender, ErrUnauthorized)
	}

	target, err := account.ParseAddress(rewardsAddress)
	if err != nil {
		return nil, err
	}

	h.logger.Info().Msgf("rewards address -> %s", target)

	resp := types.NewResponse().
		AddMessage(types.UpdateRewardsAddressMsg{RewardsAddress: target}).
		AddAttribute("method", "update_rewards_address")
	return resp, nil
}

// WithdrawRewards asks the host to pay out every accrued reward record.
func (h *AuctionHouse) WithdrawRewards(caller string) (*types.Response, error) {
	sender, err := account.ParseAddress(caller)
	if err != nil {
		return nil, err
	}

	owners, err := h.loadOwners()
	if err != nil {
		return nil, err
	}
	if !contains(owners, sender) {
		h.logger.Debug().Msgf("withdraw_rewards rejected, caller=%s", sender)
		return nil, xerrors.Errorf("%s: %w", sender, ErrUnauthorized)
	}

	h.logger.Info().Msgf("withdraw requested by %s", sender)

	resp := types.NewResponse().
		AddMessage(types.WithdrawRewardsMsg{RecordsLimit: 0}).
		AddAttribute("method", "withdraw_rewards")
	return resp, nil
}

// AddOwner appends newOwner to the owner set. Re-adding a present owner is
// a successful no-op so that racing additions do not fail transactions.
func (h *AuctionHouse) AddOwner(caller, newOwner string) (*types.Response, error) {
	sender, err := account.ParseAddress(caller)
	if err != nil {
		return nil, err
	}
	candidate, err := account.ParseAddress(newOwner)
	if err != nil {
		return nil, err
	}

	owners, err := h.loadOwners()
	if err != nil {
		return nil, err
	}
	if !contains(owners, sender) {
		h.logger.Debug().Msgf("add_owner rejected, caller=%s", sender)
		return nil, xerrors.Errorf("%s: %w", sender, ErrUnauthorized)
	}

	if !contains(owners, candidate) {
		owners = append(owners, candidate)
	}

	if err := h.kv.Put(storage.KeyOwners, owners); err != nil {
		return nil, xerrors.Errorf("cannot save owner set: %w", err)
	}

	h.logger.Info().Msgf("owner added: %s, set size=%d", candidate, len(owners))

	resp := types.NewResponse().AddAttribute("method", "add_owner")
	return resp, nil
}

// RemoveOwner drops oldOwner from the owner set. Removing a non-member
// succeeds with no change; removing the last owner fails with ErrNoOwner
// because an empty set would lock the contract forever.
func (h *AuctionHouse) RemoveOwner(caller, oldOwner string) (*types.Response, error) {
	sender, err := account.ParseAddress(caller)
	if err != nil {
		return nil, err
	}
	target, err := account.ParseAddress(oldOwner)
	if err != nil {
		return nil, err
	}

	owners, err := h.loadOwners()
	if err != nil {
		return nil, err
	}
	if !contains(owners, sender) {
		h.logger.Debug().Msgf("remove_owner rejected, caller=%s", sender)
		return nil, xerrors.Errorf("%s: %w", sender, ErrUnauthorized)
	}

	remaining := make([]account.Address, 0, len(owners))
	for _, owner := range owners {
		if owner != target {
			remaining = append(remaining, owner)
		}
	}

	if len(remaining) == 0 {
		return nil, xerrors.Errorf("removing %s: %w", target, ErrNoOwner)
	}

	if err := h.kv.Put(storage.KeyOwners, remaining); err != nil {
		return nil, xerrors.Errorf("cannot save owner set: %w", err)
	}

	h.logger.Info().Msgf("owner removed: %s, set size=%d", target, len(remaining))

	resp := types.NewResponse().AddAttribute("method", "remove_owner")
	return resp, nil
}
