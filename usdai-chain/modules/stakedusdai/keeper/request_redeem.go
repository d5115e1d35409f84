package keeper

import (
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// RequestRedeem burns the owner's shares and appends a redemption node at the
// queue tail for the controller. The burnt shares stay in the share price
// denominator as pending shares until serviced, so the request itself never
// moves the price. Returns the new redemption ID.
func (k Keeper) RequestRedeem(ctx sdk.Context, caller, owner, controller sdk.AccAddress, shares math.Int) (uint64, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)

	if err := k.requireNotPaused(params); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return 0, err
	}
	if err := k.requireNotBlacklisted(params, owner, controller); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return 0, err
	}
	if shares.IsNil() || !shares.IsPositive() {
		metrics.ReportFuncError(k.svcTags)
		return 0, types.ErrInvalidAmount.Wrap("redeem shares must be positive")
	}
	if !k.IsOperator(ctx, owner, caller) {
		metrics.ReportFuncError(k.svcTags)
		return 0, types.ErrInvalidCaller.Wrapf("%s is not an operator of %s", caller.String(), owner.String())
	}

	pendingCount := k.GetControllerPendingCount(ctx, controller)
	if pendingCount >= params.MaxRedemptionsPerController {
		metrics.ReportFuncError(k.svcTags)
		return 0, types.ErrInvalidRedemptionState.Wrapf(
			"controller %s already has %d pending redemptions", controller.String(), pendingCount)
	}

	balance := k.bankKeeper.GetBalance(ctx, owner, params.ShareDenom).Amount
	if balance.LT(shares) {
		metrics.ReportFuncError(k.svcTags)
		return 0, types.ErrInsufficientBalance.Wrapf("share balance %s, requested %s", balance.String(), shares.String())
	}

	shareCoins := sdk.NewCoins(sdk.NewCoin(params.ShareDenom, shares))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, shareCoins); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return 0, types.ErrInsufficientBalance.Wrap(err.Error())
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, shareCoins); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return 0, err
	}

	redemptionTimestamp := ctx.BlockTime().Unix() + params.RedemptionTimelock

	queue := k.GetRedemptionQueue(ctx)
	id := k.appendRedemption(ctx, &queue, types.Redemption{
		Controller:          controller.String(),
		PendingShares:       shares,
		RedeemableShares:    math.ZeroInt(),
		WithdrawableAmount:  math.ZeroInt(),
		RedemptionTimestamp: redemptionTimestamp,
	})
	queue.PendingSharesTotal = queue.PendingSharesTotal.Add(shares)
	k.SetRedemptionQueue(ctx, queue)

	k.setControllerRedemptionIndex(ctx, controller, id)
	k.setControllerPendingCount(ctx, controller, pendingCount+1)

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventRedeemRequested{
		Owner:               owner.String(),
		Controller:          controller.String(),
		RedemptionId:        id,
		Shares:              shares,
		RedemptionTimestamp: redemptionTimestamp,
	})

	return id, nil
}
