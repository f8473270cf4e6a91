package main

import (
	"github.com/BurntSushi/toml"
)

// Config drives the local demo: which addresses play which role and how the
// canned host rewards look.
type Config struct {
	Contract string   `toml:"contract"`
	Deployer string   `toml:"deployer"`
	Owners   []string `toml:"owners"`
	Denom    string   `toml:"denom"`
	Listings int      `toml:"listings"`
	Rewards  []uint64 `toml:"rewards"`
}

func DefaultConfig() Config {
	return Config{
		Contract: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Deployer: "0x1111111111111111111111111111111111111111",
		Owners: []string{
			"0x2222222222222222222222222222222222222222",
		},
		Denom:    "uarch",
		Listings: 2,
		Rewards:  []uint64{5, 3},
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
