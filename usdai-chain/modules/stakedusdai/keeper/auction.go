package keeper

import (
	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// GetCurrentAuctionID returns the ID of the most recently started auction, or
// zero when no auction was ever started.
func (k Keeper) GetCurrentAuctionID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)

	bz := store.Get(types.CurrentAuctionIDKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setCurrentAuctionID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	store.Set(types.CurrentAuctionIDKey, sdk.Uint64ToBigEndian(id))
}

// GetAuction returns the auction with the given ID, if present.
func (k Keeper) GetAuction(ctx sdk.Context, id uint64) (types.Auction, bool) {
	store := k.getStore(ctx)

	bz := store.Get(types.GetAuctionKey(id))
	if bz == nil {
		return types.Auction{}, false
	}

	var auction types.Auction
	k.cdc.MustUnmarshal(bz, &auction)
	return auction, true
}

func (k Keeper) SetAuction(ctx sdk.Context, auction types.Auction) {
	store := k.getStore(ctx)
	store.Set(types.GetAuctionKey(auction.Id), k.cdc.MustMarshal(&auction))
}

// GetBid returns the posted bid at the given auction position.
func (k Keeper) GetBid(ctx sdk.Context, auctionID uint64, index uint32) (types.Bid, bool) {
	store := k.getStore(ctx)

	bz := store.Get(types.GetBidKey(auctionID, index))
	if bz == nil {
		return types.Bid{}, false
	}

	var bid types.Bid
	k.cdc.MustUnmarshal(bz, &bid)
	return bid, true
}

func (k Keeper) setBid(ctx sdk.Context, auctionID uint64, index uint32, bid types.Bid) {
	store := k.getStore(ctx)
	store.Set(types.GetBidKey(auctionID, index), k.cdc.MustMarshal(&bid))
}

// GetAuctionBids returns an auction's posted bids in acceptance order.
func (k Keeper) GetAuctionBids(ctx sdk.Context, auctionID uint64) []types.Bid {
	store := prefix.NewStore(k.getStore(ctx), types.GetBidAuctionPrefix(auctionID))

	iter := store.Iterator(nil, nil)
	defer iter.Close()

	bids := make([]types.Bid, 0)
	for ; iter.Valid(); iter.Next() {
		var bid types.Bid
		k.cdc.MustUnmarshal(iter.Value(), &bid)
		bids = append(bids, bid)
	}
	return bids
}

// IsBidNonceConsumed reports whether the (auction, redemption, nonce) triple
// was already used by an accepted bid.
func (k Keeper) IsBidNonceConsumed(ctx sdk.Context, auctionID, redemptionID, nonce uint64) bool {
	return k.getStore(ctx).Has(types.GetBidNonceKey(auctionID, redemptionID, nonce))
}

func (k Keeper) consumeBidNonce(ctx sdk.Context, auctionID, redemptionID, nonce uint64) {
	k.getStore(ctx).Set(types.GetBidNonceKey(auctionID, redemptionID, nonce), []byte{1})
}

// openAuction materializes the next bidding window. The previous auction, if
// any, must be settled and fully applied before a new cycle may begin.
func (k Keeper) openAuction(ctx sdk.Context, params types.Params, auctionID uint64) (types.Auction, error) {
	currentID := k.GetCurrentAuctionID(ctx)
	if auctionID != currentID+1 {
		return types.Auction{}, types.ErrAuctionState.Wrapf("auction %d is not open for bidding", auctionID)
	}

	if currentID != 0 {
		current, found := k.GetAuction(ctx, currentID)
		if found {
			if !current.Settled {
				return types.Auction{}, types.ErrAuctionState.Wrapf("auction %d is not settled", currentID)
			}
			if current.ProcessedBidCount < current.BidCount {
				return types.Auction{}, types.ErrAuctionState.Wrapf("auction %d has unapplied bids", currentID)
			}
		}
	}

	now := ctx.BlockTime().Unix()
	auction := types.Auction{
		Id:        auctionID,
		StartTime: now,
		EndTime:   now + params.AuctionDuration,
		// ordering markers admit any first bid up to the full range
		LastBasisPoint: types.MaxBasisPoints,
	}

	k.SetAuction(ctx, auction)
	k.setCurrentAuctionID(ctx, auctionID)

	k.Logger(ctx).Info("auction opened", "auction_id", auctionID, "end_time", auction.EndTime)
	return auction, nil
}

// PostBids validates and materializes a batch of off-chain signed priority
// bids. The first bid batch of a cycle opens that cycle's auction window. The
// batch is atomic: one invalid bid rejects the whole batch and no state is
// written.
func (k Keeper) PostBids(ctx sdk.Context, caller sdk.AccAddress, auctionID uint64, bids []types.Bid) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.requireOperator(params, caller); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return err
	}
	if len(bids) == 0 {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrInvalidAmount.Wrap("empty bid batch")
	}

	auction, found := k.GetAuction(ctx, auctionID)
	if !found {
		var err error
		auction, err = k.openAuction(ctx, params, auctionID)
		if err != nil {
			metrics.ReportFuncError(k.svcTags)
			return err
		}
	}
	if auctionID != k.GetCurrentAuctionID(ctx) {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrAuctionState.Wrapf("auction %d is not the current auction", auctionID)
	}
	if auction.Settled {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrAuctionState.Wrapf("auction %d is settled", auctionID)
	}
	if now := ctx.BlockTime().Unix(); now >= auction.EndTime {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrAuctionState.Wrapf("auction %d bidding window closed", auctionID)
	}

	// phase one: validate the full batch against state and intra-batch
	// ordering before any write
	lastBasisPoint := auction.LastBasisPoint
	lastRedemptionID := auction.LastRedemptionId
	batchNonces := make(map[string]struct{}, len(bids))

	// bids on the same redemption must fit its pending shares cumulatively
	// across the whole auction, or applying one would starve another
	committed := make(map[uint64]math.Int, len(bids))
	if auction.BidCount > 0 {
		for _, posted := range k.GetAuctionBids(ctx, auctionID) {
			sum, ok := committed[posted.RedemptionId]
			if !ok {
				sum = math.ZeroInt()
			}
			committed[posted.RedemptionId] = sum.Add(posted.RedemptionShares)
		}
	}

	for i, bid := range bids {
		if bid.AuctionId != auctionID {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrAuctionState.Wrapf("bid %d targets auction %d", i, bid.AuctionId)
		}
		if err := bid.Validate(); err != nil {
			metrics.ReportFuncError(k.svcTags)
			return err
		}

		if bid.BasisPoint > lastBasisPoint ||
			(bid.BasisPoint == lastBasisPoint && bid.RedemptionId <= lastRedemptionID) {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrInvalidBidOrder.Wrapf(
				"bid %d (%d bps, redemption %d) after (%d bps, redemption %d)",
				i, bid.BasisPoint, bid.RedemptionId, lastBasisPoint, lastRedemptionID)
		}
		lastBasisPoint = bid.BasisPoint
		lastRedemptionID = bid.RedemptionId

		redemption, found := k.GetRedemption(ctx, bid.RedemptionId)
		if !found {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrInvalidRedemptionState.Wrapf("redemption %d does not exist", bid.RedemptionId)
		}
		if redemption.Controller != bid.Controller {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrInvalidCaller.Wrapf(
				"bid controller %s does not control redemption %d", bid.Controller, bid.RedemptionId)
		}

		nonceKey := string(types.GetBidNonceKey(auctionID, bid.RedemptionId, bid.Nonce))
		if _, dup := batchNonces[nonceKey]; dup {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrNonceReused.Wrapf("bid %d reuses nonce %d within batch", i, bid.Nonce)
		}
		if k.IsBidNonceConsumed(ctx, auctionID, bid.RedemptionId, bid.Nonce) {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrNonceReused.Wrapf("nonce %d already consumed for redemption %d", bid.Nonce, bid.RedemptionId)
		}
		batchNonces[nonceKey] = struct{}{}

		sum, ok := committed[bid.RedemptionId]
		if !ok {
			sum = math.ZeroInt()
		}
		sum = sum.Add(bid.RedemptionShares)
		if redemption.PendingShares.LT(sum) {
			metrics.ReportFuncError(k.svcTags)
			return types.ErrInvalidRedemptionState.Wrapf(
				"auction bid shares %s exceed redemption %d pending shares %s",
				sum.String(), bid.RedemptionId, redemption.PendingShares.String())
		}
		committed[bid.RedemptionId] = sum

		controller := sdk.MustAccAddressFromBech32(bid.Controller)
		if err := bid.VerifySignature(ctx.ChainID(), controller); err != nil {
			metrics.ReportFuncError(k.svcTags)
			return err
		}
	}

	// phase two: persist
	for i, bid := range bids {
		k.setBid(ctx, auctionID, auction.BidCount+uint32(i), bid)
		k.consumeBidNonce(ctx, auctionID, bid.RedemptionId, bid.Nonce)
	}

	auction.BidCount += uint32(len(bids))
	auction.LastBasisPoint = lastBasisPoint
	auction.LastRedemptionId = lastRedemptionID
	k.SetAuction(ctx, auction)

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventBidsPosted{
		AuctionId:    auctionID,
		BidsAccepted: uint32(len(bids)),
		BidCount:     auction.BidCount,
	})

	return nil
}

// SettleAuction closes the bidding window once its end time has passed. After
// settlement no further bids are accepted and the reorder phase begins.
func (k Keeper) SettleAuction(ctx sdk.Context, caller sdk.AccAddress, auctionID uint64) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.requireOperator(params, caller); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return err
	}

	auction, found := k.GetAuction(ctx, auctionID)
	if !found {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrAuctionState.Wrapf("auction %d does not exist", auctionID)
	}
	if auction.Settled {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrAuctionState.Wrapf("auction %d already settled", auctionID)
	}
	if now := ctx.BlockTime().Unix(); now < auction.EndTime {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrAuctionState.Wrapf("auction %d bidding window still open", auctionID)
	}

	auction.Settled = true
	k.SetAuction(ctx, auction)

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventAuctionSettled{
		AuctionId: auctionID,
		BidCount:  auction.BidCount,
	})

	return nil
}

// ReorderRedemptions applies up to maxBids of a settled auction's bids to the
// queue. Each applied bid charges its fee in pending shares and splices a
// brand-new entry for the remainder at the queue head, leaving the original
// entry in place with whatever pending shares the bid did not cover. Bids are
// applied lowest priority first so the highest bid finishes at the very head;
// stale bids are skipped and counted. Returns the total pending shares burnt
// and the total admin fee shares minted.
func (k Keeper) ReorderRedemptions(ctx sdk.Context, caller sdk.AccAddress, auctionID uint64, maxBids uint32) (math.Int, math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.requireOperator(params, caller); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, err
	}
	if maxBids == 0 {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("max bids must be positive")
	}

	auction, found := k.GetAuction(ctx, auctionID)
	if !found {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, types.ErrAuctionState.Wrapf("auction %d does not exist", auctionID)
	}
	if !auction.Settled {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, types.ErrAuctionState.Wrapf("auction %d is not settled", auctionID)
	}
	if auction.ProcessedBidCount >= auction.BidCount {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, math.Int{}, types.ErrAuctionState.Wrapf("auction %d fully applied", auctionID)
	}

	var feeRecipient sdk.AccAddress
	if params.FeeRecipient != "" {
		feeRecipient = sdk.MustAccAddressFromBech32(params.FeeRecipient)
	}

	queue := k.GetRedemptionQueue(ctx)

	processed := uint32(0)
	skipped := uint32(0)
	burntTotal := math.ZeroInt()
	adminTotal := math.ZeroInt()

	for processed < maxBids && auction.ProcessedBidCount < auction.BidCount {
		// lowest priority first, so successive head prepends leave the
		// highest bid in front
		index := auction.BidCount - 1 - auction.ProcessedBidCount
		auction.ProcessedBidCount++
		processed++

		bid, found := k.GetBid(ctx, auctionID, index)
		if !found {
			skipped++
			continue
		}

		redemption, found := k.GetRedemption(ctx, bid.RedemptionId)
		if !found || redemption.PendingShares.LT(bid.RedemptionShares) {
			// redemption was serviced or re-bid since posting, its bid is
			// stale and forfeits priority without charge
			skipped++
			continue
		}

		feeShares := bid.RedemptionShares.MulRaw(int64(bid.BasisPoint)).QuoRaw(int64(types.MaxBasisPoints))
		adminFeeShares := feeShares.MulRaw(int64(params.AdminFeeRateBps)).QuoRaw(int64(types.MaxBasisPoints))
		if feeRecipient == nil {
			adminFeeShares = math.ZeroInt()
		}
		burntShares := feeShares.Sub(adminFeeShares)
		newShares := bid.RedemptionShares.Sub(feeShares)

		controller := sdk.MustAccAddressFromBech32(redemption.Controller)

		// carve the bid shares out of the original entry; it keeps its queue
		// position only while it still has pending shares of its own
		redemption.PendingShares = redemption.PendingShares.Sub(bid.RedemptionShares)
		if redemption.PendingShares.IsZero() {
			k.detachRedemption(ctx, &queue, bid.RedemptionId, &redemption)

			if count := k.GetControllerPendingCount(ctx, controller); count > 0 {
				k.setControllerPendingCount(ctx, controller, count-1)
			}

			if redemption.RedeemableShares.IsZero() && redemption.WithdrawableAmount.IsZero() {
				k.deleteRedemption(ctx, bid.RedemptionId, redemption)
			} else {
				k.SetRedemption(ctx, bid.RedemptionId, redemption)
			}
		} else {
			k.SetRedemption(ctx, bid.RedemptionId, redemption)
		}

		queue.PendingSharesTotal = queue.PendingSharesTotal.Sub(feeShares)

		if newShares.IsPositive() {
			// the paid-for remainder becomes a fresh entry at the very head
			newID := queue.NextIndex
			queue.NextIndex++

			prioritized := types.Redemption{
				Controller:          redemption.Controller,
				PendingShares:       newShares,
				RedeemableShares:    math.ZeroInt(),
				WithdrawableAmount:  math.ZeroInt(),
				RedemptionTimestamp: redemption.RedemptionTimestamp,
			}
			k.prependRedemption(ctx, &queue, newID, &prioritized)
			k.setControllerRedemptionIndex(ctx, controller, newID)
			k.setControllerPendingCount(ctx, controller, k.GetControllerPendingCount(ctx, controller)+1)
		}

		if adminFeeShares.IsPositive() {
			// admin fee shares re-enter circulation, the rest of the fee is
			// burnt and accretes to remaining holders
			adminCoins := sdk.NewCoins(sdk.NewCoin(params.ShareDenom, adminFeeShares))
			if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, adminCoins); err != nil {
				metrics.ReportFuncError(k.svcTags)
				return math.Int{}, math.Int{}, err
			}
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, feeRecipient, adminCoins); err != nil {
				metrics.ReportFuncError(k.svcTags)
				return math.Int{}, math.Int{}, err
			}
		}

		burntTotal = burntTotal.Add(burntShares)
		adminTotal = adminTotal.Add(adminFeeShares)
	}

	k.SetAuction(ctx, auction)
	k.SetRedemptionQueue(ctx, queue)

	k.Logger(ctx).Info("redemptions reordered",
		"auction_id", auctionID,
		"bids_processed", processed,
		"bids_skipped", skipped,
		"shares_burnt", burntTotal.String(),
		"admin_fee_shares", adminTotal.String(),
	)

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventRedemptionsReordered{
		AuctionId:          auctionID,
		BidsProcessed:      processed,
		BidsSkipped:        skipped,
		PendingSharesBurnt: burntTotal,
		AdminFeeShares:     adminTotal,
	})

	return burntTotal, adminTotal, nil
}
