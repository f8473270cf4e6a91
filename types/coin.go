package types

import (
	"fmt"
	"sort"
)

// Coin is an amount of one native denomination, e.g. {5, "uarch"}.
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

func (c Coin) String() string {
	return fmt.Sprintf("%d%s", c.Amount, c.Denom)
}

// NativeBalance is a multi-denomination balance.
type NativeBalance []Coin

// Normalize merges coins of the same denom, drops zero amounts and sorts by
// denom. The receiver is left untouched.
func (nb NativeBalance) Normalize() NativeBalance {
	merged := make(map[string]uint64)
	for _, coin := range nb {
		merged[coin.Denom] += coin.Amount
	}

	out := make(NativeBalance, 0, len(merged))
	for denom, amount := range merged {
		if amount == 0 {
			continue
		}
		out = append(out, Coin{Denom: denom, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	return out
}
