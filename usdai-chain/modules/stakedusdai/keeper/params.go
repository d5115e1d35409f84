package keeper

import (
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// GetParams returns the current module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)

	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.Params{}
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams sets the module parameters. Caller must have validated them.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := k.getStore(ctx)
	store.Set(types.ParamsKey, k.cdc.MustMarshal(&params))
}

// UpdateParams replaces the module parameters. Only the authority may call it.
func (k Keeper) UpdateParams(ctx sdk.Context, authority string, params types.Params) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	if authority != k.authority {
		metrics.ReportFuncError(k.svcTags)
		return types.ErrInvalidCaller.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	if err := params.Validate(); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return err
	}

	k.SetParams(ctx, params)
	return nil
}

// SetPaused toggles the module pause flag. Only the operator may call it.
func (k Keeper) SetPaused(ctx sdk.Context, caller sdk.AccAddress, paused bool) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if err := k.requireOperator(params, caller); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return err
	}

	params.Paused = paused
	k.SetParams(ctx, params)

	k.Logger(ctx).Info("pause flag updated", "paused", paused)
	return nil
}

// requireNotPaused rejects state-mutating vault entry points while paused.
func (k Keeper) requireNotPaused(params types.Params) error {
	if params.Paused {
		return types.ErrPaused
	}
	return nil
}

// requireNotBlacklisted rejects any of the given addresses present on the
// module blacklist.
func (k Keeper) requireNotBlacklisted(params types.Params, addrs ...sdk.AccAddress) error {
	for _, addr := range addrs {
		if params.IsBlacklisted(addr) {
			return types.ErrBlacklistedAddress.Wrap(addr.String())
		}
	}
	return nil
}

// requireOperator checks that the caller is the configured module operator.
func (k Keeper) requireOperator(params types.Params, caller sdk.AccAddress) error {
	if params.Operator == "" || params.Operator != caller.String() {
		return types.ErrInvalidCaller.Wrapf("%s is not the module operator", caller.String())
	}
	return nil
}
