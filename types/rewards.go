package types

// Payloads of the host's rewards query surface. The formats mirror what the
// chain returns; this module only reads them.

type ContractMetadata struct {
	OwnerAddress   string `json:"owner_address"`
	RewardsAddress string `json:"rewards_address"`
}

// RewardsRecord is one accrual entry held by the host for a rewards address.
type RewardsRecord struct {
	Id      uint64 `json:"id"`
	Rewards []Coin `json:"rewards"`
}

type PageRequest struct {
	Limit      uint64 `json:"limit"`
	CountTotal bool   `json:"count_total"`
}

type PageResponse struct {
	NextKey []byte  `json:"next_key"`
	Total   *uint64 `json:"total"`
}

type RewardsRecordsResponse struct {
	Records    []RewardsRecord `json:"records"`
	Pagination *PageResponse   `json:"pagination"`
}
