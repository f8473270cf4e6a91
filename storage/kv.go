package storage

import (
	"errors"
)

var ErrKeyNotFound error = errors.New("key not found")

// Well-known keys of the contract state. Each maps to a single record:
// the whole owner set, the whole open-auction collection, the version tag.
const (
	KeyOwners       = "owners"
	KeyAuctions     = "auctions"
	KeyContractInfo = "contract_info"
)

// KV is the persisted-state store the contract runs against. The host
// commits or rolls back a whole call, so implementations need no
// transaction support of their own.
type KV interface {
	Get(key string) (interface{}, error)
	Put(key string, value interface{}) error
	Del(key string) error
	Hash() string
}
