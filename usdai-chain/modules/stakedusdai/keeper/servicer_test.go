package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/keeper"
	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// setupServicing builds a vault at a share price of 1 with three queued
// redemptions of 400k, 300k and 200k shares.
func setupServicing(t *testing.T) (keeper.Keeper, sdk.Context, *mockBank, []uint64) {
	t.Helper()

	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	require.NoError(t, k.SetOperator(ctx, aliceAddr, bobAddr, true))
	require.NoError(t, k.SetOperator(ctx, aliceAddr, carolAddr, true))

	id1, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(400_000))
	require.NoError(t, err)
	id2, err := k.RequestRedeem(ctx, bobAddr, aliceAddr, bobAddr, math.NewInt(300_000))
	require.NoError(t, err)
	id3, err := k.RequestRedeem(ctx, carolAddr, aliceAddr, carolAddr, math.NewInt(200_000))
	require.NoError(t, err)

	return k, ctx, bank, []uint64{id1, id2, id3}
}

func TestServiceRedemptionsFIFOWithPartialTail(t *testing.T) {
	k, ctx, _, ids := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	// ACT: 600k covers the first request and two thirds of the second
	shares, assets, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(600_000), shares)
	assert.Equal(t, math.NewInt(600_000), assets)

	r1, found := k.GetRedemption(ctx, ids[0])
	require.True(t, found)
	assert.True(t, r1.PendingShares.IsZero())
	assert.Equal(t, math.NewInt(400_000), r1.RedeemableShares)
	assert.Equal(t, math.NewInt(400_000), r1.WithdrawableAmount)

	r2, found := k.GetRedemption(ctx, ids[1])
	require.True(t, found)
	assert.Equal(t, math.NewInt(100_000), r2.PendingShares)
	assert.Equal(t, math.NewInt(200_000), r2.RedeemableShares)

	r3, found := k.GetRedemption(ctx, ids[2])
	require.True(t, found)
	assert.Equal(t, math.NewInt(200_000), r3.PendingShares)

	// the fully serviced head left the chain, the partial one is the new head
	queue := k.GetRedemptionQueue(ctx)
	assert.Equal(t, ids[1], queue.Head)
	assert.Equal(t, ids[2], queue.Tail)
	assert.Equal(t, math.NewInt(300_000), queue.PendingSharesTotal)
	assert.Equal(t, math.NewInt(600_000), queue.RedemptionBalance)
	assert.Equal(t, ctx.BlockTime().Unix(), queue.RedemptionTimestamp)

	// alice's request is done, bob's is still pending
	assert.Equal(t, uint32(0), k.GetControllerPendingCount(ctx, aliceAddr))
	assert.Equal(t, uint32(1), k.GetControllerPendingCount(ctx, bobAddr))

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestServiceRedemptionsPartialHead(t *testing.T) {
	k, ctx, _, ids := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	shares, assets, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(250_000))

	require.NoError(t, err)
	assert.Equal(t, math.NewInt(250_000), shares)
	assert.Equal(t, math.NewInt(250_000), assets)

	r1, found := k.GetRedemption(ctx, ids[0])
	require.True(t, found)
	assert.Equal(t, math.NewInt(150_000), r1.PendingShares)
	assert.Equal(t, math.NewInt(250_000), r1.RedeemableShares)

	// a partially serviced head keeps its position
	queue := k.GetRedemptionQueue(ctx)
	assert.Equal(t, ids[0], queue.Head)

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestServiceRedemptionsRespectsTimelock(t *testing.T) {
	k, ctx, _, _ := setupServicing(t)

	// block time has not advanced, nothing is eligible yet
	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(900_000))
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)
}

func TestServiceRedemptionsStopsAtFirstIneligible(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	id1, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(100_000))
	require.NoError(t, err)

	// the second request lands after the first clears its timelock
	laterCtx := afterTimelock(ctx, k.GetParams(ctx))
	id2, err := k.RequestRedeem(laterCtx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(100_000))
	require.NoError(t, err)

	// only the matured head counts toward the satisfiable amount
	_, _, err = k.ServiceRedemptions(laterCtx, operatorAddr, math.NewInt(200_000))
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)

	shares, _, err := k.ServiceRedemptions(laterCtx, operatorAddr, math.NewInt(100_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100_000), shares)

	r1, found := k.GetRedemption(laterCtx, id1)
	require.True(t, found)
	assert.True(t, r1.PendingShares.IsZero())

	r2, found := k.GetRedemption(laterCtx, id2)
	require.True(t, found)
	assert.Equal(t, math.NewInt(100_000), r2.PendingShares, "later request not overtaken")
}

func TestServiceRedemptionsRejectsUnsatisfiableAmount(t *testing.T) {
	k, ctx, _, _ := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	queueBefore := k.GetRedemptionQueue(ctx)

	// 900k shares are eligible, asking for more must not partially apply
	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)

	assert.Equal(t, queueBefore, k.GetRedemptionQueue(ctx))
}

func TestServiceRedemptionsClampsRateOnShortfall(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	params := k.GetParams(ctx)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	// 900k is deployed into a strategy, leaving 100k idle while the
	// conservative NAV still values the vault at par
	strategyAddr := sdk.AccAddress("strategy____________")
	require.NoError(t, bank.SendCoins(ctx, k.ModuleAddress(), strategyAddr,
		sdk.NewCoins(sdk.NewCoin(params.AssetDenom, math.NewInt(900_000)))))
	require.NoError(t, k.RegisterStrategy(&testStrategy{
		name:         "deployed",
		conservative: math.NewInt(900_000),
		optimistic:   math.NewInt(900_000),
	}))

	id, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(500_000))
	require.NoError(t, err)

	ctx = afterTimelock(ctx, params)

	// 200k shares at price 1 would cost 200k, but only 100k is idle: the
	// rate clamps to 0.5 and the shortfall is socialized across the batch
	shares, assets, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(200_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200_000), shares)
	assert.Equal(t, math.NewInt(100_000), assets)

	redemption, found := k.GetRedemption(ctx, id)
	require.True(t, found)
	assert.Equal(t, math.NewInt(300_000), redemption.PendingShares)
	assert.Equal(t, math.NewInt(200_000), redemption.RedeemableShares)
	assert.Equal(t, math.NewInt(100_000), redemption.WithdrawableAmount)

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestServiceRedemptionsRequiresOperator(t *testing.T) {
	k, ctx, _, _ := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	_, _, err := k.ServiceRedemptions(ctx, aliceAddr, math.NewInt(100_000))
	require.ErrorIs(t, err, types.ErrInvalidCaller)
}

func TestServiceRedemptionsRejectsZeroShares(t *testing.T) {
	k, ctx, _, _ := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
