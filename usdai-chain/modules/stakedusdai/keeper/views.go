package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PendingRedeemRequest returns the controller's total queued shares that are
// not yet serviced.
func (k Keeper) PendingRedeemRequest(ctx sdk.Context, controller sdk.AccAddress) math.Int {
	total := math.ZeroInt()
	for _, id := range k.GetControllerRedemptionIDs(ctx, controller) {
		redemption, found := k.GetRedemption(ctx, id)
		if !found {
			continue
		}
		total = total.Add(redemption.PendingShares)
	}
	return total
}

// ClaimableRedeemRequest returns the controller's serviced share units and
// asset amount that have cleared the claim timelock.
func (k Keeper) ClaimableRedeemRequest(ctx sdk.Context, controller sdk.AccAddress) (math.Int, math.Int) {
	now := ctx.BlockTime().Unix()
	shares := math.ZeroInt()
	assets := math.ZeroInt()

	for _, id := range k.GetControllerRedemptionIDs(ctx, controller) {
		redemption, found := k.GetRedemption(ctx, id)
		if !found || redemption.RedemptionTimestamp > now {
			continue
		}
		shares = shares.Add(redemption.RedeemableShares)
		assets = assets.Add(redemption.WithdrawableAmount)
	}
	return shares, assets
}

// MaxWithdraw returns the assets the controller could withdraw right now.
func (k Keeper) MaxWithdraw(ctx sdk.Context, controller sdk.AccAddress) math.Int {
	_, assets := k.ClaimableRedeemRequest(ctx, controller)
	return assets
}

// MaxRedeem returns the share units the controller could redeem right now.
func (k Keeper) MaxRedeem(ctx sdk.Context, controller sdk.AccAddress) math.Int {
	shares, _ := k.ClaimableRedeemRequest(ctx, controller)
	return shares
}

// PreviewDeposit returns the shares a deposit of assets would mint at the
// current conservative price.
func (k Keeper) PreviewDeposit(ctx sdk.Context, assets math.Int) (math.Int, error) {
	return k.ConvertToShares(ctx, assets)
}

// PreviewMint returns the assets required to mint the given shares, rounded
// up.
func (k Keeper) PreviewMint(ctx sdk.Context, shares math.Int) (math.Int, error) {
	price, err := k.SharePrice(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return price.MulInt(shares).Ceil().TruncateInt(), nil
}
