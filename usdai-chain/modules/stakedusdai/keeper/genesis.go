package keeper

import (
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// InitGenesis initializes the module state from a validated genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	k.CreateModuleAccount(ctx)

	k.SetParams(ctx, genState.Params)
	k.SetRedemptionQueue(ctx, genState.Queue)

	pendingCounts := make(map[string]uint32)
	for _, rec := range genState.Redemptions {
		k.SetRedemption(ctx, rec.Id, rec.Redemption)

		controller := sdk.MustAccAddressFromBech32(rec.Redemption.Controller)
		k.setControllerRedemptionIndex(ctx, controller, rec.Id)
		if rec.Redemption.PendingShares.IsPositive() {
			pendingCounts[rec.Redemption.Controller]++
		}
	}
	for bech, count := range pendingCounts {
		k.setControllerPendingCount(ctx, sdk.MustAccAddressFromBech32(bech), count)
	}

	for _, auction := range genState.Auctions {
		k.SetAuction(ctx, auction)
	}
	for _, rec := range genState.Bids {
		k.setBid(ctx, rec.AuctionId, rec.Index, rec.Bid)
		k.consumeBidNonce(ctx, rec.AuctionId, rec.Bid.RedemptionId, rec.Bid.Nonce)
	}

	if genState.CurrentAuctionId != 0 {
		k.setCurrentAuctionID(ctx, genState.CurrentAuctionId)
	}
	k.setLockedSharesMinted(ctx, genState.LockedSharesMinted)
}

// ExportGenesis exports the full module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:             k.GetParams(ctx),
		Queue:              k.GetRedemptionQueue(ctx),
		Redemptions:        k.GetAllRedemptions(ctx),
		Auctions:           k.getAllAuctions(ctx),
		Bids:               k.getAllBids(ctx),
		CurrentAuctionId:   k.GetCurrentAuctionID(ctx),
		LockedSharesMinted: k.LockedSharesMinted(ctx),
	}
}

func (k Keeper) getAllAuctions(ctx sdk.Context) []types.Auction {
	store := prefix.NewStore(k.getStore(ctx), types.AuctionPrefix)

	iter := store.Iterator(nil, nil)
	defer iter.Close()

	auctions := make([]types.Auction, 0)
	for ; iter.Valid(); iter.Next() {
		var auction types.Auction
		k.cdc.MustUnmarshal(iter.Value(), &auction)
		auctions = append(auctions, auction)
	}
	return auctions
}

func (k Keeper) getAllBids(ctx sdk.Context) []types.BidRecord {
	store := prefix.NewStore(k.getStore(ctx), types.BidPrefix)

	iter := store.Iterator(nil, nil)
	defer iter.Close()

	records := make([]types.BidRecord, 0)
	for ; iter.Valid(); iter.Next() {
		var bid types.Bid
		k.cdc.MustUnmarshal(iter.Value(), &bid)

		key := iter.Key()
		records = append(records, types.BidRecord{
			AuctionId: sdk.BigEndianToUint64(key[:8]),
			Index:     uint32(sdk.BigEndianToUint64(key[8:16])),
			Bid:       bid,
		})
	}
	return records
}
