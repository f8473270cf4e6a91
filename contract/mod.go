package contract

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/archhaus/auctionhouse/account"
	"github.com/archhaus/auctionhouse/host"
	"github.com/archhaus/auctionhouse/logging"
	"github.com/archhaus/auctionhouse/storage"
	"github.com/archhaus/auctionhouse/types"
)

const ContractName = "auction-house"
const ContractVersion = "0.1.0"

// ContractInfo is the name/version tag written at instantiation, read by
// future migrations to decide upgrade compatibility. Informational only.
type ContractInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Conf struct {
	KV      storage.KV
	Querier host.Querier
	Addr    account.Address // the contract's own on-chain address
}

// AuctionHouse is the owner-gated auction-house contract. It holds no
// state of its own across calls: every operation loads the authoritative
// record from the store, validates, mutates and saves it back. The host
// serializes calls and commits or rolls back each one whole.
type AuctionHouse struct {
	logger zerolog.Logger

	kv      storage.KV
	querier host.Querier
	addr    account.Address
}

func NewAuctionHouse(conf Conf) *AuctionHouse {
	h := AuctionHouse{}
	h.kv = conf.KV
	h.querier = conf.Querier
	h.addr = conf.Addr
	h.logger = logging.RootLogger.With().
		Str("AuctionHouse", fmt.Sprintf("%s", conf.Addr)).Logger()
	return &h
}

// Instantiate seeds the contract state: the deployer becomes the sole
// owner and the open-auction collection starts empty. The host runs this
// exactly once per contract lifetime.
func (h *AuctionHouse) Instantiate(deployer string) (*types.Response, error) {
	sender, err := account.ParseAddress(deployer)
	if err != nil {
		return nil, err
	}

	info := ContractInfo{Name: ContractName, Version: ContractVersion}
	if err := h.kv.Put(storage.KeyContractInfo, info); err != nil {
		return nil, xerrors.Errorf("cannot save contract info: %w", err)
	}

	if err := h.kv.Put(storage.KeyOwners, []account.Address{sender}); err != nil {
		return nil, xerrors.Errorf("cannot save owner set: %w", err)
	}

	if err := h.kv.Put(storage.KeyAuctions, []types.Auction{}); err != nil {
		return nil, xerrors.Errorf("cannot save auctions: %w", err)
	}

	h.logger.Info().Msgf("instantiated, owner=%s", sender)

	resp := types.NewResponse().
		AddAttribute("action", "Instantiating Auction House").
		AddAttribute("Owner", sender.String())
	return resp, nil
}

// loadOwners fetches the authoritative owner set. Missing or corrupted
// records abort the call; instantiation always writes the set first.
func (h *AuctionHouse) loadOwners() ([]account.Address, error) {
	value, err := h.kv.Get(storage.KeyOwners)
	if err != nil {
		return nil, xerrors.Errorf("owner set dont exist: %w", err)
	}
	owners, ok := value.([]account.Address)
	if !ok {
		return nil, xerrors.Errorf("owner set is corrupted: %v", value)
	}
	return owners, nil
}

func contains(owners []account.Address, addr account.Address) bool {
	for _, owner := range owners {
		if owner == addr {
			return true
		}
	}
	return false
}
