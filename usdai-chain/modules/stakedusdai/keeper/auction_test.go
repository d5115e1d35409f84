package keeper_test

import (
	"crypto/ecdsa"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/keeper"
	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// newBidder generates a secp256k1 controller able to sign QEV bids.
func newBidder(t *testing.T) (*ecdsa.PrivateKey, sdk.AccAddress) {
	t.Helper()

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	return key, sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())
}

func signedBid(t *testing.T, key *ecdsa.PrivateKey, bid types.Bid) types.Bid {
	t.Helper()

	require.NoError(t, bid.Sign(testChainID, key))
	return bid
}

// setupAuctionVault builds a price-1 vault with a 400k redemption for alice
// at the head and a 200k redemption for a signing controller behind it.
func setupAuctionVault(t *testing.T) (keeper.Keeper, sdk.Context, *mockBank, *ecdsa.PrivateKey, sdk.AccAddress, []uint64) {
	t.Helper()

	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	key, bidder := newBidder(t)

	id1, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(400_000))
	require.NoError(t, err)
	id2, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, bidder, math.NewInt(200_000))
	require.NoError(t, err)

	return k, ctx, bank, key, bidder, []uint64{id1, id2}
}

func afterAuctionEnd(ctx sdk.Context, params types.Params) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(params.AuctionDuration+1) * time.Second))
}

func TestAuctionLifecycle(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)
	params := k.GetParams(ctx)

	bid := signedBid(t, key, types.Bid{
		AuctionId:        1,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})

	// only the operator may post
	err := k.PostBids(ctx, aliceAddr, 1, []types.Bid{bid})
	require.ErrorIs(t, err, types.ErrInvalidCaller)

	// a cycle can only open at the next auction id
	err = k.PostBids(ctx, operatorAddr, 2, []types.Bid{bid})
	require.ErrorIs(t, err, types.ErrAuctionState)

	// the first accepted batch opens the bidding window
	require.NoError(t, k.PostBids(ctx, operatorAddr, 1, []types.Bid{bid}))
	assert.Equal(t, uint64(1), k.GetCurrentAuctionID(ctx))

	auction, found := k.GetAuction(ctx, 1)
	require.True(t, found)
	assert.Equal(t, ctx.BlockTime().Unix()+params.AuctionDuration, auction.EndTime)
	assert.Equal(t, uint32(1), auction.BidCount)

	// settling before the window closes fails
	err = k.SettleAuction(ctx, operatorAddr, 1)
	require.ErrorIs(t, err, types.ErrAuctionState)

	ctx = afterAuctionEnd(ctx, params)
	require.NoError(t, k.SettleAuction(ctx, operatorAddr, 1))

	err = k.SettleAuction(ctx, operatorAddr, 1)
	require.ErrorIs(t, err, types.ErrAuctionState)

	// no more bids once settled, and no new cycle while bids are unapplied
	late := signedBid(t, key, types.Bid{
		AuctionId:        1,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_000,
		Nonce:            2,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	err = k.PostBids(ctx, operatorAddr, 1, []types.Bid{late})
	require.ErrorIs(t, err, types.ErrAuctionState)
	err = k.PostBids(ctx, operatorAddr, 2, []types.Bid{late})
	require.ErrorIs(t, err, types.ErrAuctionState)

	_, _, err = k.ReorderRedemptions(ctx, operatorAddr, 1, 10)
	require.NoError(t, err)

	// the reorder spliced a fresh prioritized entry, which can be bid on in
	// the next cycle
	next := signedBid(t, key, types.Bid{
		AuctionId:        2,
		RedemptionId:     3,
		RedemptionShares: math.NewInt(150_000),
		BasisPoint:       1_000,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, 2, []types.Bid{next}))
	assert.Equal(t, uint64(2), k.GetCurrentAuctionID(ctx))
}

func TestReorderAppliesWinningBid(t *testing.T) {
	k, ctx, bank, key, bidder, ids := setupAuctionVault(t)
	params := k.GetParams(ctx)

	priceBefore, err := k.SharePrice(ctx)
	require.NoError(t, err)

	auctionID := uint64(1)

	// ARRANGE: 25% priority fee bid on the full 200k redemption
	bid := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{bid}))

	ctx = afterAuctionEnd(ctx, params)
	require.NoError(t, k.SettleAuction(ctx, operatorAddr, auctionID))

	navConservativeBefore, err := k.TotalAssets(ctx, types.ValuationConservative)
	require.NoError(t, err)
	navOptimisticBefore, err := k.TotalAssets(ctx, types.ValuationOptimistic)
	require.NoError(t, err)

	// ACT
	burnt, adminFee, err := k.ReorderRedemptions(ctx, operatorAddr, auctionID, 10)
	require.NoError(t, err)

	// reordering shifts priority and burns share units but never moves assets
	navConservativeAfter, err := k.TotalAssets(ctx, types.ValuationConservative)
	require.NoError(t, err)
	navOptimisticAfter, err := k.TotalAssets(ctx, types.ValuationOptimistic)
	require.NoError(t, err)
	require.Equal(t, navConservativeBefore, navConservativeAfter)
	require.Equal(t, navOptimisticBefore, navOptimisticAfter)

	// ASSERT: fee of 50k shares split into 500 admin shares and 49.5k burnt,
	// a fresh 150k entry jumps the queue and the emptied original is gone
	assert.Equal(t, math.NewInt(49_500), burnt)
	assert.Equal(t, math.NewInt(500), adminFee)

	_, found := k.GetRedemption(ctx, ids[1])
	assert.False(t, found)

	newID := ids[1] + 1
	prioritized, found := k.GetRedemption(ctx, newID)
	require.True(t, found)
	assert.Equal(t, math.NewInt(150_000), prioritized.PendingShares)
	assert.Equal(t, bidder.String(), prioritized.Controller)

	queue := k.GetRedemptionQueue(ctx)
	assert.Equal(t, newID, queue.Head)
	assert.Equal(t, ids[0], queue.Tail)
	assert.Equal(t, math.NewInt(550_000), queue.PendingSharesTotal)

	assert.Equal(t, uint32(1), k.GetControllerPendingCount(ctx, bidder))
	assert.Equal(t, math.NewInt(500), bank.GetBalance(ctx, feeRecipientAddr, params.ShareDenom).Amount)

	// the burnt fee accretes to everyone still holding share units
	priceAfter, err := k.SharePrice(ctx)
	require.NoError(t, err)
	assert.True(t, priceAfter.GT(priceBefore))

	auction, found := k.GetAuction(ctx, auctionID)
	require.True(t, found)
	assert.Equal(t, auction.BidCount, auction.ProcessedBidCount)

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestReorderPartialBidLeavesRemainder(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)
	params := k.GetParams(ctx)

	auctionID := uint64(1)

	// the bid prioritizes only half of the 200k redemption
	bid := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(100_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{bid}))

	ctx = afterAuctionEnd(ctx, params)
	require.NoError(t, k.SettleAuction(ctx, operatorAddr, auctionID))

	burnt, adminFee, err := k.ReorderRedemptions(ctx, operatorAddr, auctionID, 10)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(24_750), burnt)
	assert.Equal(t, math.NewInt(250), adminFee)

	// the original keeps the uncovered half at its old queue position
	original, found := k.GetRedemption(ctx, ids[1])
	require.True(t, found)
	assert.Equal(t, math.NewInt(100_000), original.PendingShares)

	newID := ids[1] + 1
	prioritized, found := k.GetRedemption(ctx, newID)
	require.True(t, found)
	assert.Equal(t, math.NewInt(75_000), prioritized.PendingShares)

	queue := k.GetRedemptionQueue(ctx)
	assert.Equal(t, newID, queue.Head)
	assert.Equal(t, ids[1], queue.Tail)
	assert.Equal(t, math.NewInt(575_000), queue.PendingSharesTotal)

	// the controller now has two live entries
	assert.Equal(t, uint32(2), k.GetControllerPendingCount(ctx, bidder))

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestPostBidsRejectsForgedSignature(t *testing.T) {
	k, ctx, _, _, bidder, ids := setupAuctionVault(t)

	forger, _ := newBidder(t)
	bid := signedBid(t, forger, types.Bid{
		AuctionId:        1,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})

	err := k.PostBids(ctx, operatorAddr, 1, []types.Bid{bid})
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestPostBidsRejectsNonceReuse(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)

	first := signedBid(t, key, types.Bid{
		AuctionId:        1,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            7,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, 1, []types.Bid{first}))

	rebid := signedBid(t, key, types.Bid{
		AuctionId:        1,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_000,
		Nonce:            7,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})

	err := k.PostBids(ctx, operatorAddr, 1, []types.Bid{rebid})
	require.ErrorIs(t, err, types.ErrNonceReused)
}

func TestPostBidsEnforcesDescendingOrder(t *testing.T) {
	k, ctx, bank, key, bidder, ids := setupAuctionVault(t)

	// a second signing controller with its own redemption
	key2, bidder2 := newBidder(t)
	fundAndDeposit(t, k, ctx, bank, bobAddr, math.NewInt(500_000))
	id3, err := k.RequestRedeem(ctx, bobAddr, bobAddr, bidder2, math.NewInt(100_000))
	require.NoError(t, err)

	auctionID := uint64(1)

	low := signedBid(t, key2, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     id3,
		RedemptionShares: math.NewInt(100_000),
		BasisPoint:       1_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder2.String(),
	})
	high := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})

	// ascending basis points within a batch are rejected
	err = k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{low, high})
	require.ErrorIs(t, err, types.ErrInvalidBidOrder)

	// descending order is accepted, and a later batch cannot go back up
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{high, low}))

	late := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_000,
		Nonce:            2,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	err = k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{late})
	require.ErrorIs(t, err, types.ErrInvalidBidOrder)
}

func TestReorderSkipsStaleBid(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)
	params := k.GetParams(ctx)

	// the timelock elapses before the auction opens, so servicing can
	// still run during the bidding window
	ctx = afterTimelock(ctx, params)

	auctionID := uint64(1)

	bid := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{bid}))

	// servicing both requests in full makes the posted bid stale
	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	ctx = afterAuctionEnd(ctx, params)
	require.NoError(t, k.SettleAuction(ctx, operatorAddr, auctionID))

	pendingBefore := k.GetRedemptionQueue(ctx).PendingSharesTotal

	burnt, adminFee, err := k.ReorderRedemptions(ctx, operatorAddr, auctionID, 10)
	require.NoError(t, err)

	// the stale bid forfeited priority without charge
	assert.True(t, burnt.IsZero())
	assert.True(t, adminFee.IsZero())
	queue := k.GetRedemptionQueue(ctx)
	assert.Equal(t, pendingBefore, queue.PendingSharesTotal)

	auction, found := k.GetAuction(ctx, auctionID)
	require.True(t, found)
	assert.Equal(t, auction.BidCount, auction.ProcessedBidCount)
}

func TestServicingBlockedUntilReorderComplete(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)
	params := k.GetParams(ctx)

	auctionID := uint64(1)

	bid := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{bid}))

	ctx = afterAuctionEnd(ctx, params)
	require.NoError(t, k.SettleAuction(ctx, operatorAddr, auctionID))

	// paid-for priority must be applied before the queue is consumed again
	ctx = afterTimelock(ctx, params)
	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(100_000))
	require.ErrorIs(t, err, types.ErrAuctionState)

	_, _, err = k.ReorderRedemptions(ctx, operatorAddr, auctionID, 10)
	require.NoError(t, err)

	_, _, err = k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(100_000))
	require.NoError(t, err)
}

func TestPostBidsCapsCumulativeBidShares(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)

	auctionID := uint64(1)

	first := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(150_000),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{first}))

	// a lower bid overcommitting the same redemption is rejected up front, so
	// applying it could never starve the accepted higher bid
	over := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(100_000),
		BasisPoint:       2_000,
		Nonce:            2,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	err := k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{over})
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)

	// the uncommitted remainder is still biddable
	rest := signedBid(t, key, types.Bid{
		AuctionId:        auctionID,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(50_000),
		BasisPoint:       2_000,
		Nonce:            3,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})
	require.NoError(t, k.PostBids(ctx, operatorAddr, auctionID, []types.Bid{rest}))

	auction, found := k.GetAuction(ctx, auctionID)
	require.True(t, found)
	assert.Equal(t, uint32(2), auction.BidCount)
}

func TestPostBidsRejectsOversizedShares(t *testing.T) {
	k, ctx, _, key, bidder, ids := setupAuctionVault(t)

	bid := signedBid(t, key, types.Bid{
		AuctionId:        1,
		RedemptionId:     ids[1],
		RedemptionShares: math.NewInt(200_001),
		BasisPoint:       2_500,
		Nonce:            1,
		Timestamp:        ctx.BlockTime().Unix(),
		Controller:       bidder.String(),
	})

	err := k.PostBids(ctx, operatorAddr, 1, []types.Bid{bid})
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)
}
