package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ValuationType selects the NAV computation policy for strategy assets.
type ValuationType int32

const (
	// ValuationConservative discounts any not-yet-realized component and is
	// the floor used for all share pricing and previews.
	ValuationConservative ValuationType = iota

	// ValuationOptimistic marks strategy positions to market, accrued
	// interest included. Informational only.
	ValuationOptimistic
)

func (v ValuationType) String() string {
	switch v {
	case ValuationConservative:
		return "conservative"
	case ValuationOptimistic:
		return "optimistic"
	default:
		return "unknown"
	}
}

// Strategy is the capability interface a yield-strategy adapter exposes to the
// valuation aggregator. Implementations must guarantee
// TotalAssets(optimistic) >= TotalAssets(conservative) for the same state.
type Strategy interface {
	Name() string
	TotalAssets(ctx sdk.Context, valuation ValuationType) (math.Int, error)
}
