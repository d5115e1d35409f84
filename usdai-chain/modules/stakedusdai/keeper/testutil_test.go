package keeper_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/keeper"
	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

const testChainID = "usdai-test-1"

var testGenesisTime = time.Unix(1_700_000_000, 0)

var (
	operatorAddr     = sdk.AccAddress("operator____________")
	feeRecipientAddr = sdk.AccAddress("fee_recipient_______")
	aliceAddr        = sdk.AccAddress("alice_______________")
	bobAddr          = sdk.AccAddress("bob_________________")
	carolAddr        = sdk.AccAddress("carol_______________")
)

// mockBank is an in-memory bank keeper good enough for vault accounting:
// balances, supply, module account transfers, mint and burn.
type mockBank struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

func newMockBank() *mockBank {
	return &mockBank{
		balances: make(map[string]sdk.Coins),
		supply:   sdk.NewCoins(),
	}
}

func (m *mockBank) fund(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
	m.supply = m.supply.Add(coins...)
}

func (m *mockBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *mockBank) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.supply.AmountOf(denom))
}

func (m *mockBank) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	maddr := authtypes.NewModuleAddress(moduleName).String()
	m.balances[maddr] = m.balances[maddr].Add(amt...)
	m.supply = m.supply.Add(amt...)
	return nil
}

func (m *mockBank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	maddr := authtypes.NewModuleAddress(moduleName).String()
	balance, negative := m.balances[maddr].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module balance to burn %s", amt.String())
	}
	m.balances[maddr] = balance
	m.supply = m.supply.Sub(amt...)
	return nil
}

func (m *mockBank) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	balance, negative := m.balances[fromAddr.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient balance to send %s", amt.String())
	}
	m.balances[fromAddr.String()] = balance
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *mockBank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *mockBank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

type mockAccount struct{}

func (mockAccount) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

func (mockAccount) NewAccount(_ context.Context, acc sdk.AccountI) sdk.AccountI { return acc }

func (mockAccount) SetModuleAccount(context.Context, sdk.ModuleAccountI) {}

// testStrategy reports fixed asset totals per valuation policy.
type testStrategy struct {
	name         string
	conservative math.Int
	optimistic   math.Int
}

func (s *testStrategy) Name() string { return s.name }

func (s *testStrategy) TotalAssets(_ sdk.Context, valuation types.ValuationType) (math.Int, error) {
	if valuation == types.ValuationOptimistic {
		return s.optimistic, nil
	}
	return s.conservative, nil
}

func setupKeeper(t *testing.T) (keeper.Keeper, sdk.Context, *mockBank) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	tKey := storetypes.NewTransientStoreKey("transient_test")
	testCtx := testutil.DefaultContextWithDB(t, storeKey, tKey)

	ctx := testCtx.Ctx.
		WithBlockTime(testGenesisTime).
		WithChainID(testChainID)

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	bank := newMockBank()

	k := keeper.NewKeeper(cdc, storeKey, mockAccount{}, bank, authtypes.NewModuleAddress("gov").String())
	k.InitGenesis(ctx, *types.DefaultGenesisState())

	params := types.DefaultParams()
	params.Operator = operatorAddr.String()
	params.FeeRecipient = feeRecipientAddr.String()
	k.SetParams(ctx, params)

	return k, ctx, bank
}

// fundAndDeposit credits the depositor with assets and deposits them for
// shares.
func fundAndDeposit(t *testing.T, k keeper.Keeper, ctx sdk.Context, bank *mockBank, depositor sdk.AccAddress, assets math.Int) math.Int {
	t.Helper()

	params := k.GetParams(ctx)
	bank.fund(depositor, sdk.NewCoins(sdk.NewCoin(params.AssetDenom, assets)))

	shares, err := k.Deposit(ctx, depositor, depositor, assets)
	require.NoError(t, err)
	return shares
}

// afterTimelock advances the block time past the redemption timelock.
func afterTimelock(ctx sdk.Context, params types.Params) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(params.RedemptionTimelock+1) * time.Second))
}
