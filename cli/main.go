package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/archhaus/auctionhouse/account"
	"github.com/archhaus/auctionhouse/contract"
	"github.com/archhaus/auctionhouse/host"
	"github.com/archhaus/auctionhouse/logging"
	"github.com/archhaus/auctionhouse/storage"
	"github.com/archhaus/auctionhouse/types"
)

// Runs the auction-house contract locally: an in-memory store plus a canned
// host querier, so the whole owner lifecycle can be watched without a chain.
func main() {
	app := &cli.App{
		Name:  "auctionhouse",
		Usage: "drive the auction-house contract against a local state store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML config `FILE` (defaults built in)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "walk the full owner lifecycle and queries",
				Action: func(c *cli.Context) error {
					cfg, err := LoadConfig(c.String("config"))
					if err != nil {
						return err
					}
					return runDemo(cfg)
				},
			},
			{
				Name:  "version",
				Usage: "print the contract name and version tag",
				Action: func(c *cli.Context) error {
					fmt.Printf("%s %s\n", contract.ContractName, contract.ContractVersion)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.RootLogger.Fatal().Err(err).Msg("cli failed")
	}
}

func runDemo(cfg Config) error {
	logger := logging.RootLogger.With().Str("Demo", cfg.Contract).Logger()

	addr, err := account.ParseAddress(cfg.Contract)
	if err != nil {
		return err
	}

	querier := &host.StaticQuerier{
		Metadata: types.ContractMetadata{
			OwnerAddress:   cfg.Deployer,
			RewardsAddress: cfg.Deployer,
		},
	}
	for i, amount := range cfg.Rewards {
		querier.Records = append(querier.Records, types.RewardsRecord{
			Id:      uint64(i + 1),
			Rewards: []types.Coin{{Denom: cfg.Denom, Amount: amount}},
		})
	}

	kv := storage.NewSimpleKV()
	house := contract.NewAuctionHouse(contract.Conf{KV: kv, Querier: querier, Addr: addr})

	resp, err := house.Instantiate(cfg.Deployer)
	if err != nil {
		return err
	}
	logger.Info().Msgf("instantiate: %v", resp.Attributes)

	for _, owner := range cfg.Owners {
		if _, err := house.AddOwner(cfg.Deployer, owner); err != nil {
			return err
		}
	}

	if err := seedListings(kv, cfg); err != nil {
		return err
	}

	open, err := house.OpenAuctions()
	if err != nil {
		return err
	}
	for _, auction := range open.Auctions {
		logger.Info().Msgf("open auction %s: min bid %s, by %s",
			auction.Id, auction.MinBid, auction.Seller)
	}

	if len(cfg.Owners) > 0 {
		resp, err = house.UpdateRewardsAddress(cfg.Deployer, cfg.Owners[0])
		if err != nil {
			return err
		}
		logger.Info().Msgf("update rewards address: %d message(s)", len(resp.Messages))

		// the new owner can now turn around and drop the deployer
		if _, err := house.RemoveOwner(cfg.Owners[0], cfg.Deployer); err != nil {
			return err
		}
		logger.Info().Msgf("deployer removed by %s", cfg.Owners[0])

		resp, err = house.WithdrawRewards(cfg.Owners[0])
		if err != nil {
			return err
		}
		logger.Info().Msgf("withdraw rewards: %d message(s)", len(resp.Messages))
	}

	rewards, err := house.OutstandingRewards()
	if err != nil {
		return err
	}
	logger.Info().Msgf("outstanding rewards: %v over %d record(s)",
		rewards.RewardsBalance, rewards.TotalRecords)

	logger.Info().Msgf("state hash: %s", kv.Hash())
	return nil
}

// seedListings stands in for the (external) listing workflow.
func seedListings(kv storage.KV, cfg Config) error {
	seller, err := account.ParseAddress(cfg.Deployer)
	if err != nil {
		return err
	}

	auctions := make([]types.Auction, 0, cfg.Listings)
	for i := 0; i < cfg.Listings; i++ {
		auctions = append(auctions, types.Auction{
			Id:       types.NewAuctionId(),
			Seller:   seller,
			MinBid:   types.Coin{Denom: cfg.Denom, Amount: uint64(100 * (i + 1))},
			Deadline: time.Now().Add(24 * time.Hour),
		})
	}
	return kv.Put(storage.KeyAuctions, auctions)
}
