package keeper

import (
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// Deposit takes assets from the depositor and mints the equivalent shares to
// the receiver at the conservative share price. Returns the shares credited
// to the receiver, which on the very first deposit excludes the locked slice.
func (k Keeper) Deposit(ctx sdk.Context, depositor, receiver sdk.AccAddress, assets math.Int) (math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.depositGates(params, depositor, receiver, assets); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	// price is read before the asset transfer lands in the module balance
	shares, err := k.ConvertToShares(ctx, assets)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}
	if !shares.IsPositive() {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, types.ErrInvalidAmount.Wrap("deposit converts to zero shares")
	}

	credited, err := k.pullAssetsAndMint(ctx, params, depositor, receiver, assets, shares)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventDeposit{
		Depositor: depositor.String(),
		Receiver:  receiver.String(),
		Assets:    assets,
		Shares:    credited,
	})

	return credited, nil
}

// Mint takes exactly the assets needed to mint the requested shares to the
// receiver, rounding the asset cost up so the vault never underprices a mint.
// Returns the assets pulled from the depositor.
func (k Keeper) Mint(ctx sdk.Context, depositor, receiver sdk.AccAddress, shares math.Int) (math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.depositGates(params, depositor, receiver, shares); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	price, err := k.SharePrice(ctx)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}
	assets := price.MulInt(shares).Ceil().TruncateInt()
	if !assets.IsPositive() {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, types.ErrInvalidAmount.Wrap("mint converts to zero assets")
	}

	credited, err := k.pullAssetsAndMint(ctx, params, depositor, receiver, assets, shares)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.Int{}, err
	}

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventDeposit{
		Depositor: depositor.String(),
		Receiver:  receiver.String(),
		Assets:    assets,
		Shares:    credited,
	})

	return assets, nil
}

func (k Keeper) depositGates(params types.Params, depositor, receiver sdk.AccAddress, amount math.Int) error {
	if err := k.requireNotPaused(params); err != nil {
		return err
	}
	if err := k.requireNotBlacklisted(params, depositor, receiver); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// pullAssetsAndMint moves the deposit into the module account and mints the
// full share amount there. On the very first deposit a fixed slice of the
// minted shares stays locked in the module account forever, so donation-based
// share price inflation stays uneconomical; the receiver is credited with the
// remainder. Returns the shares actually credited to the receiver.
func (k Keeper) pullAssetsAndMint(
	ctx sdk.Context,
	params types.Params,
	depositor, receiver sdk.AccAddress,
	assets, shares math.Int,
) (math.Int, error) {
	depositCoins := sdk.NewCoins(sdk.NewCoin(params.AssetDenom, assets))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, depositCoins); err != nil {
		return math.Int{}, types.ErrInsufficientBalance.Wrap(err.Error())
	}

	credited := shares
	store := k.getStore(ctx)
	if !store.Has(types.LockedSharesMintedKey) {
		if !shares.GT(types.LockedShares) {
			return math.Int{}, types.ErrInvalidAmount.Wrapf(
				"first deposit of %s shares does not exceed the locked share floor %s",
				shares.String(), types.LockedShares.String())
		}
		credited = shares.Sub(types.LockedShares)
		store.Set(types.LockedSharesMintedKey, []byte{1})
		k.Logger(ctx).Info("locked shares retained", "amount", types.LockedShares.String())
	}

	shareCoins := sdk.NewCoins(sdk.NewCoin(params.ShareDenom, shares))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return math.Int{}, err
	}

	creditedCoins := sdk.NewCoins(sdk.NewCoin(params.ShareDenom, credited))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, creditedCoins); err != nil {
		return math.Int{}, err
	}
	return credited, nil
}

// LockedSharesMinted reports whether the one-time locked share mint happened.
func (k Keeper) LockedSharesMinted(ctx sdk.Context) bool {
	return k.getStore(ctx).Has(types.LockedSharesMintedKey)
}

func (k Keeper) setLockedSharesMinted(ctx sdk.Context, minted bool) {
	store := k.getStore(ctx)
	if minted {
		store.Set(types.LockedSharesMintedKey, []byte{1})
		return
	}
	store.Delete(types.LockedSharesMintedKey)
}

// SetOperator grants or revokes the operator's right to request redemptions
// on the owner's behalf and to claim on the owner's redemptions.
func (k Keeper) SetOperator(ctx sdk.Context, owner, operator sdk.AccAddress, approved bool) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	if owner.Equals(operator) {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrInvalidAddress.Wrap("owner cannot approve itself")
	}

	store := k.getStore(ctx)
	key := types.GetOperatorApprovalKey(owner, operator)
	if approved {
		store.Set(key, []byte{1})
	} else {
		store.Delete(key)
	}

	// nolint:errcheck //ignored on purpose
	ctx.EventManager().EmitTypedEvent(&types.EventOperatorSet{
		Owner:    owner.String(),
		Operator: operator.String(),
		Approved: approved,
	})

	return nil
}

// IsOperator reports whether operator is approved for owner. An owner is
// always its own operator.
func (k Keeper) IsOperator(ctx sdk.Context, owner, operator sdk.AccAddress) bool {
	if owner.Equals(operator) {
		return true
	}
	return k.getStore(ctx).Has(types.GetOperatorApprovalKey(owner, operator))
}
