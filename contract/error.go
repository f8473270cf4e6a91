package contract

import (
	"errors"
)

var ErrUnauthorized error = errors.New("caller is not an owner")
var ErrNoOwner error = errors.New("owner set must not become empty")
