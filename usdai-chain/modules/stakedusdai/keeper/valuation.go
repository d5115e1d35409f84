package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// TotalAssets returns the vault NAV in asset units under the given valuation
// policy: idle module balance net of the earmarked redemption balance, plus
// each registered strategy's reported assets.
func (k Keeper) TotalAssets(ctx sdk.Context, valuation types.ValuationType) (math.Int, error) {
	params := k.GetParams(ctx)
	queue := k.GetRedemptionQueue(ctx)

	idle := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), params.AssetDenom).Amount
	total := idle.Sub(queue.RedemptionBalance)
	if total.IsNegative() {
		// earmarked funds can never exceed the module balance, treat any
		// discrepancy as zero idle capital rather than a negative NAV
		total = math.ZeroInt()
	}

	for _, strategy := range k.strategies {
		assets, err := strategy.TotalAssets(ctx, valuation)
		if err != nil {
			return math.Int{}, types.ErrInvalidStrategy.Wrapf("strategy %s: %s", strategy.Name(), err.Error())
		}
		if assets.IsNegative() {
			return math.Int{}, types.ErrInvalidStrategy.Wrapf("strategy %s reported negative assets", strategy.Name())
		}
		total = total.Add(assets)
	}

	return total, nil
}

// totalShareUnits is the share price denominator: circulating share supply
// plus queued pending shares, which were burnt at request time but still
// claim their slice of NAV until serviced.
func (k Keeper) totalShareUnits(ctx sdk.Context, params types.Params) math.Int {
	queue := k.GetRedemptionQueue(ctx)
	supply := k.bankKeeper.GetSupply(ctx, params.ShareDenom).Amount
	return supply.Add(queue.PendingSharesTotal)
}

// SharePrice returns the conservative price of one share in asset units. An
// empty vault prices at exactly 1.
func (k Keeper) SharePrice(ctx sdk.Context) (math.LegacyDec, error) {
	params := k.GetParams(ctx)

	totalShares := k.totalShareUnits(ctx, params)
	if totalShares.IsZero() {
		return math.LegacyOneDec(), nil
	}

	totalAssets, err := k.TotalAssets(ctx, types.ValuationConservative)
	if err != nil {
		return math.LegacyDec{}, err
	}

	return math.LegacyNewDecFromInt(totalAssets).QuoInt(totalShares), nil
}

// ConvertToShares converts an asset amount to shares at the conservative
// price, rounding down.
func (k Keeper) ConvertToShares(ctx sdk.Context, assets math.Int) (math.Int, error) {
	price, err := k.SharePrice(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if price.IsZero() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("share price is zero")
	}
	return math.LegacyNewDecFromInt(assets).Quo(price).TruncateInt(), nil
}

// ConvertToAssets converts a share amount to assets at the conservative
// price, rounding down.
func (k Keeper) ConvertToAssets(ctx sdk.Context, shares math.Int) (math.Int, error) {
	price, err := k.SharePrice(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return price.MulInt(shares).TruncateInt(), nil
}
