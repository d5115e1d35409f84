package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the share/asset token capability consumed by the vault: mint,
// burn, transfer and balance lookups on the configured denoms.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// AccountKeeper is used to create the module account holding idle assets and
// locked shares.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
	NewAccount(ctx context.Context, acc sdk.AccountI) sdk.AccountI
	SetModuleAccount(ctx context.Context, acc sdk.ModuleAccountI)
}
