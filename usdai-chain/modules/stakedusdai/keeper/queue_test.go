package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

func TestRequestRedeemBuildsFIFOChain(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	params := k.GetParams(ctx)

	// ARRANGE: three depositors with shares
	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))
	fundAndDeposit(t, k, ctx, bank, bobAddr, math.NewInt(1_000_000))
	fundAndDeposit(t, k, ctx, bank, carolAddr, math.NewInt(1_000_000))

	supplyBefore := bank.GetSupply(ctx, params.ShareDenom).Amount

	// ACT: three redemption requests in order
	id1, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(400_000))
	require.NoError(t, err)
	id2, err := k.RequestRedeem(ctx, bobAddr, bobAddr, bobAddr, math.NewInt(300_000))
	require.NoError(t, err)
	id3, err := k.RequestRedeem(ctx, carolAddr, carolAddr, carolAddr, math.NewInt(200_000))
	require.NoError(t, err)

	// ASSERT: ids are sequential from 1 and the chain is head 1 -> 2 -> 3 tail
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, uint64(3), id3)

	queue := k.GetRedemptionQueue(ctx)
	assert.Equal(t, id1, queue.Head)
	assert.Equal(t, id3, queue.Tail)
	assert.Equal(t, math.NewInt(900_000), queue.PendingSharesTotal)

	r1, found := k.GetRedemption(ctx, id1)
	require.True(t, found)
	assert.Equal(t, types.NullRedemptionID, r1.Prev)
	assert.Equal(t, id2, r1.Next)

	r2, found := k.GetRedemption(ctx, id2)
	require.True(t, found)
	assert.Equal(t, id1, r2.Prev)
	assert.Equal(t, id3, r2.Next)

	r3, found := k.GetRedemption(ctx, id3)
	require.True(t, found)
	assert.Equal(t, id2, r3.Prev)
	assert.Equal(t, types.NullRedemptionID, r3.Next)

	// requested shares are burnt immediately but stay in the price base
	assert.Equal(t, supplyBefore.Sub(math.NewInt(900_000)), bank.GetSupply(ctx, params.ShareDenom).Amount)

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestRequestRedeemPriceNeutral(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	priceBefore, err := k.SharePrice(ctx)
	require.NoError(t, err)

	_, err = k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(600_000))
	require.NoError(t, err)

	priceAfter, err := k.SharePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, priceBefore, priceAfter, "queueing a redemption must not move the share price")
}

func TestRequestRedeemByApprovedOperator(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(100_000))

	// bob cannot redeem alice's shares without approval
	_, err := k.RequestRedeem(ctx, bobAddr, aliceAddr, aliceAddr, math.NewInt(10_000))
	require.ErrorIs(t, err, types.ErrInvalidCaller)

	require.NoError(t, k.SetOperator(ctx, aliceAddr, bobAddr, true))

	id, err := k.RequestRedeem(ctx, bobAddr, aliceAddr, bobAddr, math.NewInt(10_000))
	require.NoError(t, err)

	redemption, found := k.GetRedemption(ctx, id)
	require.True(t, found)
	assert.Equal(t, bobAddr.String(), redemption.Controller, "controller may differ from owner")
}

func TestRequestRedeemPerControllerCap(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	params := k.GetParams(ctx)
	params.MaxRedemptionsPerController = 2
	k.SetParams(ctx, params)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(100_000))

	_, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(10_000))
	require.NoError(t, err)
	_, err = k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(10_000))
	require.NoError(t, err)

	_, err = k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(10_000))
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)

	assert.Equal(t, uint32(2), k.GetControllerPendingCount(ctx, aliceAddr))
}

func TestRequestRedeemInsufficientShares(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	// a 2k deposit nets 1k shares after the locked slice
	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(2_000))

	_, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(2_000))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestControllerRedemptionIndexOrdered(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(100_000))
	fundAndDeposit(t, k, ctx, bank, bobAddr, math.NewInt(100_000))

	id1, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(1_000))
	require.NoError(t, err)
	_, err = k.RequestRedeem(ctx, bobAddr, bobAddr, bobAddr, math.NewInt(1_000))
	require.NoError(t, err)
	id3, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(1_000))
	require.NoError(t, err)

	assert.Equal(t, []uint64{id1, id3}, k.GetControllerRedemptionIDs(ctx, aliceAddr))
}
