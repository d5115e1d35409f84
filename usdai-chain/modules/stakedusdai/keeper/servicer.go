package keeper

import (
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// ServiceRedemptions converts exactly maxShares of queued pending shares into
// withdrawable assets in strict FIFO order at the conservative share price
// taken at service time. Only nodes whose timelock has elapsed are eligible,
// and the walk never skips past an ineligible node, so maxShares must be
// satisfiable by the contiguous eligible run at the head. When the module's
// idle balance cannot back the full batch at the current price, the per-share
// rate is clamped down and the shortfall is socialized across the batch
// instead of blocking the queue. Returns shares and assets processed.
func (k Keeper) ServiceRedemptions(ctx sdk.Context, caller sdk.AccAddress, maxShares math.Int) (math.Int, math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.requireOperator(params, caller); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, err
	}
	if maxShares.IsNil() || !maxShares.IsPositive() {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("max shares must be positive")
	}

	// a settled auction must be fully applied before the queue order is
	// consumed again, otherwise paid-for priority could be serviced away
	if err := k.requireNoUnappliedAuction(ctx); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, err
	}

	queue := k.GetRedemptionQueue(ctx)
	now := ctx.BlockTime().Unix()

	eligible := math.ZeroInt()
	for id := queue.Head; id != types.NullRedemptionID && eligible.LT(maxShares); {
		redemption, found := k.GetRedemption(ctx, id)
		if !found || redemption.RedemptionTimestamp > now {
			break
		}
		eligible = eligible.Add(redemption.PendingShares)
		id = redemption.Next
	}
	if eligible.LT(maxShares) {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, types.ErrInvalidRedemptionState.Wrapf(
			"eligible pending shares %s cannot satisfy %s", eligible.String(), maxShares.String())
	}

	price, err := k.SharePrice(ctx)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, err
	}

	idle := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), params.AssetDenom).Amount.Sub(queue.RedemptionBalance)
	if idle.IsNegative() {
		idle = math.ZeroInt()
	}

	rate := price
	if price.MulInt(maxShares).TruncateInt().GT(idle) {
		rate = idle.ToLegacyDec().QuoInt(maxShares)
	}

	remaining := maxShares
	sharesProcessed := math.ZeroInt()
	amountProcessed := math.ZeroInt()
	touched := uint32(0)

	for id := queue.Head; id != types.NullRedemptionID && remaining.IsPositive(); {
		redemption, found := k.GetRedemption(ctx, id)
		if !found || redemption.RedemptionTimestamp > now {
			break
		}
		next := redemption.Next

		take := math.MinInt(remaining, redemption.PendingShares)
		cost := rate.MulInt(take).TruncateInt()

		redemption.PendingShares = redemption.PendingShares.Sub(take)
		redemption.RedeemableShares = redemption.RedeemableShares.Add(take)
		redemption.WithdrawableAmount = redemption.WithdrawableAmount.Add(cost)

		queue.PendingSharesTotal = queue.PendingSharesTotal.Sub(take)
		queue.RedemptionBalance = queue.RedemptionBalance.Add(cost)

		if redemption.PendingShares.IsZero() {
			// fully serviced nodes leave the FIFO chain but remain stored
			// until claimed
			k.detachRedemption(ctx, &queue, id, &redemption)

			controller := sdk.MustAccAddressFromBech32(redemption.Controller)
			if count := k.GetControllerPendingCount(ctx, controller); count > 0 {
				k.setControllerPendingCount(ctx, controller, count-1)
			}
		}
		k.SetRedemption(ctx, id, redemption)

		remaining = remaining.Sub(take)
		sharesProcessed = sharesProcessed.Add(take)
		amountProcessed = amountProcessed.Add(cost)
		touched++

		id = next
	}

	queue.RedemptionTimestamp = now
	k.SetRedemptionQueue(ctx, queue)

	k.Logger(ctx).Info("redemptions serviced",
		"shares", sharesProcessed.String(),
		"assets", amountProcessed.String(),
		"redemptions", touched,
	)

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventRedemptionsServiced{
		SharesProcessed:    sharesProcessed,
		AmountProcessed:    amountProcessed,
		RedemptionsTouched: touched,
	})

	return sharesProcessed, amountProcessed, nil
}

// requireNoUnappliedAuction rejects queue mutation while a settled auction
// still has unapplied bids.
func (k Keeper) requireNoUnappliedAuction(ctx sdk.Context) error {
	auctionID := k.GetCurrentAuctionID(ctx)
	if auctionID == 0 {
		return nil
	}

	auction, found := k.GetAuction(ctx, auctionID)
	if !found {
		return nil
	}
	if auction.Settled && auction.ProcessedBidCount < auction.BidCount {
		return types.ErrAuctionState.Wrapf(
			"auction %d settled with %d of %d bids applied",
			auctionID, auction.ProcessedBidCount, auction.BidCount,
		)
	}
	return nil
}
