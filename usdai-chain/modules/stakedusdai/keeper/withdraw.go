package keeper

import (
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// Withdraw pays out exactly assets from the controller's serviced redemptions
// to the receiver, consuming them oldest first. Returns the share units the
// payout consumed.
func (k Keeper) Withdraw(ctx sdk.Context, caller, controller, receiver sdk.AccAddress, assets math.Int) (math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.claimGates(ctx, params, caller, controller, receiver, assets); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	now := ctx.BlockTime().Unix()
	remaining := assets
	sharesConsumed := math.ZeroInt()

	for _, id := range k.GetControllerRedemptionIDs(ctx, controller) {
		if !remaining.IsPositive() {
			break
		}

		redemption, found := k.GetRedemption(ctx, id)
		if !found || redemption.RedemptionTimestamp > now || !redemption.WithdrawableAmount.IsPositive() {
			continue
		}

		take := math.MinInt(redemption.WithdrawableAmount, remaining)
		var shares math.Int
		if take.Equal(redemption.WithdrawableAmount) {
			shares = redemption.RedeemableShares
		} else {
			shares = redemption.RedeemableShares.Mul(take).Quo(redemption.WithdrawableAmount)
		}

		redemption.WithdrawableAmount = redemption.WithdrawableAmount.Sub(take)
		redemption.RedeemableShares = redemption.RedeemableShares.Sub(shares)
		k.finalizeClaimedRedemption(ctx, id, redemption)

		remaining = remaining.Sub(take)
		sharesConsumed = sharesConsumed.Add(shares)
	}

	if remaining.IsPositive() {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, types.ErrInvalidRedemptionState.Wrapf(
			"claimable assets short by %s for controller %s", remaining.String(), controller.String())
	}

	if err := k.payOutClaim(ctx, params, receiver, assets); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventWithdraw{
		Controller: controller.String(),
		Receiver:   receiver.String(),
		Assets:     assets,
		Shares:     sharesConsumed,
	})

	return sharesConsumed, nil
}

// Redeem pays out the assets backing exactly shares of the controller's
// serviced redemptions, oldest first. Returns the assets sent.
func (k Keeper) Redeem(ctx sdk.Context, caller, controller, receiver sdk.AccAddress, shares math.Int) (math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.claimGates(ctx, params, caller, controller, receiver, shares); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	now := ctx.BlockTime().Unix()
	remaining := shares
	assetsPaid := math.ZeroInt()

	for _, id := range k.GetControllerRedemptionIDs(ctx, controller) {
		if !remaining.IsPositive() {
			break
		}

		redemption, found := k.GetRedemption(ctx, id)
		if !found || redemption.RedemptionTimestamp > now || !redemption.RedeemableShares.IsPositive() {
			continue
		}

		take := math.MinInt(redemption.RedeemableShares, remaining)
		var assets math.Int
		if take.Equal(redemption.RedeemableShares) {
			assets = redemption.WithdrawableAmount
		} else {
			assets = redemption.WithdrawableAmount.Mul(take).Quo(redemption.RedeemableShares)
		}

		redemption.RedeemableShares = redemption.RedeemableShares.Sub(take)
		redemption.WithdrawableAmount = redemption.WithdrawableAmount.Sub(assets)
		k.finalizeClaimedRedemption(ctx, id, redemption)

		remaining = remaining.Sub(take)
		assetsPaid = assetsPaid.Add(assets)
	}

	if remaining.IsPositive() {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, types.ErrInvalidRedemptionState.Wrapf(
			"redeemable shares short by %s for controller %s", remaining.String(), controller.String())
	}

	if err := k.payOutClaim(ctx, params, receiver, assetsPaid); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventWithdraw{
		Controller: controller.String(),
		Receiver:   receiver.String(),
		Assets:     assetsPaid,
		Shares:     shares,
	})

	return assetsPaid, nil
}

func (k Keeper) claimGates(
	ctx sdk.Context,
	params types.Params,
	caller, controller, receiver sdk.AccAddress,
	amount math.Int,
) error {
	if err := k.requireNotPaused(params); err != nil {
		return err
	}
	if err := k.requireNotBlacklisted(params, controller, receiver); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}
	if !k.IsOperator(ctx, controller, caller) {
		return types.ErrInvalidCaller.Wrapf("%s is not an operator of %s", caller.String(), controller.String())
	}
	return nil
}

// finalizeClaimedRedemption persists a redemption after a claim slice, or
// removes it entirely once nothing pending or claimable is left.
func (k Keeper) finalizeClaimedRedemption(ctx sdk.Context, id uint64, redemption types.Redemption) {
	if redemption.PendingShares.IsZero() &&
		redemption.RedeemableShares.IsZero() &&
		redemption.WithdrawableAmount.IsZero() {
		k.deleteRedemption(ctx, id, redemption)
		return
	}
	k.SetRedemption(ctx, id, redemption)
}

// payOutClaim releases earmarked assets from the module account.
func (k Keeper) payOutClaim(ctx sdk.Context, params types.Params, receiver sdk.AccAddress, assets math.Int) error {
	queue := k.GetRedemptionQueue(ctx)
	queue.RedemptionBalance = queue.RedemptionBalance.Sub(assets)
	k.SetRedemptionQueue(ctx, queue)

	coins := sdk.NewCoins(sdk.NewCoin(params.AssetDenom, assets))
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, coins)
}
