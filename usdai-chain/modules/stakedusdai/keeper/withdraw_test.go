package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

func TestWithdrawPaysOutServicedRedemption(t *testing.T) {
	k, ctx, bank, ids := setupServicing(t)
	params := k.GetParams(ctx)
	ctx = afterTimelock(ctx, params)

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	// ACT: alice withdraws her fully serviced 400k request
	shares, err := k.Withdraw(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(400_000))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(400_000), shares)
	assert.Equal(t, math.NewInt(400_000), bank.GetBalance(ctx, aliceAddr, params.AssetDenom).Amount)

	// the drained record is gone, its earmark released
	_, found := k.GetRedemption(ctx, ids[0])
	assert.False(t, found)
	assert.Equal(t, math.NewInt(200_000), k.GetRedemptionQueue(ctx).RedemptionBalance)

	require.NoError(t, k.ValidateQueueInvariants(ctx))
}

func TestWithdrawPartialConsumesProportionally(t *testing.T) {
	k, ctx, _, ids := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	shares, err := k.Withdraw(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(150_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(150_000), shares)

	redemption, found := k.GetRedemption(ctx, ids[0])
	require.True(t, found)
	assert.Equal(t, math.NewInt(250_000), redemption.WithdrawableAmount)
	assert.Equal(t, math.NewInt(250_000), redemption.RedeemableShares)
}

func TestRedeemPaysOutByShares(t *testing.T) {
	k, ctx, bank, _ := setupServicing(t)
	params := k.GetParams(ctx)
	ctx = afterTimelock(ctx, params)

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	// bob's 300k request was serviced for 200k share units
	assets, err := k.Redeem(ctx, bobAddr, bobAddr, bobAddr, math.NewInt(200_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200_000), assets)
	assert.Equal(t, math.NewInt(200_000), bank.GetBalance(ctx, bobAddr, params.AssetDenom).Amount)
}

func TestWithdrawSpansMultipleRecords(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	params := k.GetParams(ctx)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	id1, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(100_000))
	require.NoError(t, err)
	id2, err := k.RequestRedeem(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(100_000))
	require.NoError(t, err)

	ctx = afterTimelock(ctx, params)
	_, _, err = k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(200_000))
	require.NoError(t, err)

	// 130k drains the first record and takes 30k from the second
	shares, err := k.Withdraw(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(130_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(130_000), shares)

	_, found := k.GetRedemption(ctx, id1)
	assert.False(t, found)

	second, found := k.GetRedemption(ctx, id2)
	require.True(t, found)
	assert.Equal(t, math.NewInt(70_000), second.WithdrawableAmount)
}

func TestWithdrawRejectsOverClaim(t *testing.T) {
	k, ctx, bank, _ := setupServicing(t)
	params := k.GetParams(ctx)
	ctx = afterTimelock(ctx, params)

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	_, err = k.Withdraw(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(400_001))
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)

	// nothing was paid out
	assert.True(t, bank.GetBalance(ctx, aliceAddr, params.AssetDenom).Amount.IsZero())
}

func TestClaimBeforeServicingRejected(t *testing.T) {
	k, ctx, _, _ := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	_, err := k.Withdraw(ctx, aliceAddr, aliceAddr, aliceAddr, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInvalidRedemptionState)
}

func TestClaimRequiresOperatorApproval(t *testing.T) {
	k, ctx, bank, _ := setupServicing(t)
	params := k.GetParams(ctx)
	ctx = afterTimelock(ctx, params)

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	// alice was never approved by bob
	_, err = k.Withdraw(ctx, aliceAddr, bobAddr, aliceAddr, math.NewInt(100_000))
	require.ErrorIs(t, err, types.ErrInvalidCaller)

	require.NoError(t, k.SetOperator(ctx, bobAddr, aliceAddr, true))

	shares, err := k.Withdraw(ctx, aliceAddr, bobAddr, carolAddr, math.NewInt(100_000))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100_000), shares)
	assert.Equal(t, math.NewInt(100_000), bank.GetBalance(ctx, carolAddr, params.AssetDenom).Amount)
}

func TestClaimableViews(t *testing.T) {
	k, ctx, _, _ := setupServicing(t)
	ctx = afterTimelock(ctx, k.GetParams(ctx))

	assert.Equal(t, math.NewInt(400_000), k.PendingRedeemRequest(ctx, aliceAddr))
	assert.True(t, k.MaxWithdraw(ctx, aliceAddr).IsZero())

	_, _, err := k.ServiceRedemptions(ctx, operatorAddr, math.NewInt(600_000))
	require.NoError(t, err)

	assert.True(t, k.PendingRedeemRequest(ctx, aliceAddr).IsZero())
	assert.Equal(t, math.NewInt(400_000), k.MaxWithdraw(ctx, aliceAddr))
	assert.Equal(t, math.NewInt(400_000), k.MaxRedeem(ctx, aliceAddr))

	// bob's request was only partially serviced
	assert.Equal(t, math.NewInt(100_000), k.PendingRedeemRequest(ctx, bobAddr))
	assert.Equal(t, math.NewInt(200_000), k.MaxWithdraw(ctx, bobAddr))
}
