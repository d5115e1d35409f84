package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

func TestDepositMintsSharesAtInitialPrice(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	params := k.GetParams(ctx)

	// ARRANGE
	assets := math.NewInt(1_000_000)
	bank.fund(aliceAddr, sdk.NewCoins(sdk.NewCoin(params.AssetDenom, assets)))

	// ACT
	shares, err := k.Deposit(ctx, aliceAddr, aliceAddr, assets)

	// ASSERT: the first depositor pays for the permanently locked slice
	require.NoError(t, err)
	assert.Equal(t, assets.Sub(types.LockedShares), shares)

	assert.Equal(t, assets, bank.GetBalance(ctx, k.ModuleAddress(), params.AssetDenom).Amount)
	assert.Equal(t, shares, bank.GetBalance(ctx, aliceAddr, params.ShareDenom).Amount)

	// the locked shares stay in the module account and the supply covers them
	assert.True(t, k.LockedSharesMinted(ctx))
	assert.Equal(t, types.LockedShares, bank.GetBalance(ctx, k.ModuleAddress(), params.ShareDenom).Amount)
	assert.Equal(t, assets, bank.GetSupply(ctx, params.ShareDenom).Amount)

	// with locked shares carved out rather than minted on top, the
	// conservative price opens at exactly one
	price, err := k.SharePrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyOneDec(), price)
}

func TestDepositAfterYieldMintsFewerShares(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	// 10% strategy yield lifts the conservative price to 1.1
	require.NoError(t, k.RegisterStrategy(&testStrategy{
		name:         "treasury",
		conservative: math.NewInt(100_000),
		optimistic:   math.NewInt(100_000),
	}))

	price, err := k.SharePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(11, 1), price)

	shares := fundAndDeposit(t, k, ctx, bank, bobAddr, math.NewInt(550_000))
	assert.Equal(t, math.NewInt(500_000), shares)
}

func TestSharePriceEmptyVaultIsOne(t *testing.T) {
	k, ctx, _ := setupKeeper(t)

	price, err := k.SharePrice(ctx)

	require.NoError(t, err)
	assert.Equal(t, math.LegacyOneDec(), price)
}

func TestTotalAssetsPerValuation(t *testing.T) {
	k, ctx, bank := setupKeeper(t)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(100_000))

	require.NoError(t, k.RegisterStrategy(&testStrategy{
		name:         "lending",
		conservative: math.NewInt(40_000),
		optimistic:   math.NewInt(55_000),
	}))

	conservative, err := k.TotalAssets(ctx, types.ValuationConservative)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(140_000), conservative)

	optimistic, err := k.TotalAssets(ctx, types.ValuationOptimistic)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(155_000), optimistic)
}

func TestRegisterStrategyRejectsDuplicates(t *testing.T) {
	k, _, _ := setupKeeper(t)

	require.NoError(t, k.RegisterStrategy(&testStrategy{name: "lending"}))

	err := k.RegisterStrategy(&testStrategy{name: "lending"})
	require.ErrorIs(t, err, types.ErrInvalidStrategy)
}

func TestMintRoundsAssetCostUp(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	params := k.GetParams(ctx)

	fundAndDeposit(t, k, ctx, bank, aliceAddr, math.NewInt(1_000_000))

	// 50% strategy yield puts the price at 1.5, so an odd share count costs
	// a fractional asset amount that must round up
	require.NoError(t, k.RegisterStrategy(&testStrategy{
		name:         "treasury",
		conservative: math.NewInt(500_000),
		optimistic:   math.NewInt(500_000),
	}))
	bank.fund(bobAddr, sdk.NewCoins(sdk.NewCoin(params.AssetDenom, math.NewInt(1_000_000))))

	shares := math.NewInt(100_001)
	assets, err := k.Mint(ctx, bobAddr, bobAddr, shares)
	require.NoError(t, err)

	assert.Equal(t, math.NewInt(150_002), assets)
	assert.Equal(t, shares, bank.GetBalance(ctx, bobAddr, params.ShareDenom).Amount)
}

func TestDepositGates(t *testing.T) {
	k, ctx, bank := setupKeeper(t)
	params := k.GetParams(ctx)
	bank.fund(aliceAddr, sdk.NewCoins(sdk.NewCoin(params.AssetDenom, math.NewInt(1_000))))

	t.Run("zero amount", func(t *testing.T) {
		_, err := k.Deposit(ctx, aliceAddr, aliceAddr, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidAmount)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		_, err := k.Deposit(ctx, bobAddr, bobAddr, math.NewInt(10))
		require.ErrorIs(t, err, types.ErrInsufficientBalance)
	})

	t.Run("blacklisted receiver", func(t *testing.T) {
		params := k.GetParams(ctx)
		params.Blacklist = []string{bobAddr.String()}
		k.SetParams(ctx, params)

		_, err := k.Deposit(ctx, aliceAddr, bobAddr, math.NewInt(10))
		require.ErrorIs(t, err, types.ErrBlacklistedAddress)

		params.Blacklist = nil
		k.SetParams(ctx, params)
	})

	t.Run("paused", func(t *testing.T) {
		require.NoError(t, k.SetPaused(ctx, operatorAddr, true))

		_, err := k.Deposit(ctx, aliceAddr, aliceAddr, math.NewInt(10))
		require.ErrorIs(t, err, types.ErrPaused)

		require.NoError(t, k.SetPaused(ctx, operatorAddr, false))
	})

	t.Run("first deposit below locked floor", func(t *testing.T) {
		_, err := k.Deposit(ctx, aliceAddr, aliceAddr, math.NewInt(1_000))
		require.ErrorIs(t, err, types.ErrInvalidAmount)
	})
}

func TestSetOperatorApproval(t *testing.T) {
	k, ctx, _ := setupKeeper(t)

	assert.True(t, k.IsOperator(ctx, aliceAddr, aliceAddr), "owner is always its own operator")
	assert.False(t, k.IsOperator(ctx, aliceAddr, bobAddr))

	require.NoError(t, k.SetOperator(ctx, aliceAddr, bobAddr, true))
	assert.True(t, k.IsOperator(ctx, aliceAddr, bobAddr))
	assert.False(t, k.IsOperator(ctx, bobAddr, aliceAddr), "approval is directional")

	require.NoError(t, k.SetOperator(ctx, aliceAddr, bobAddr, false))
	assert.False(t, k.IsOperator(ctx, aliceAddr, bobAddr))

	err := k.SetOperator(ctx, aliceAddr, aliceAddr, true)
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestSetPausedRequiresOperator(t *testing.T) {
	k, ctx, _ := setupKeeper(t)

	err := k.SetPaused(ctx, aliceAddr, true)
	require.ErrorIs(t, err, types.ErrInvalidCaller)
}
