package account

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

var ErrInvalidAddress error = errors.New("invalid address")

// Address is a validated account address in the host chain's 20-byte hex
// format. The zero value is not a usable address; go through ParseAddress.
type Address struct {
	addr common.Address
}

// ParseAddress is the single entry point for raw addresses coming off the
// wire. Every caller-supplied or target address passes through here before
// the contract acts on it.
func ParseAddress(raw string) (Address, error) {
	if !common.IsHexAddress(raw) {
		return Address{}, xerrors.Errorf("%q: %w", raw, ErrInvalidAddress)
	}
	return Address{addr: common.HexToAddress(raw)}, nil
}

func (a Address) String() string {
	return a.addr.Hex()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.addr.Hex()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
