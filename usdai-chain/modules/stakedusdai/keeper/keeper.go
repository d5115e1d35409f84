package keeper

import (
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/InjectiveLabs/metrics"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// Keeper of the x/stakedusdai store. It owns the vault share accounting, the
// FIFO redemption queue and the QEV auction state.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec

	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper

	// strategies are the registered yield adapters aggregated into NAV, in
	// registration order.
	strategies []types.Strategy

	// authority is the account allowed to update module params (gov).
	authority string

	svcTags metrics.Tags
}

func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:      storeKey,
		cdc:           cdc,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authority:     authority,
		svcTags: metrics.Tags{
			"svc": "stakedusdai_k",
		},
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// RegisterStrategy appends a yield strategy to the valuation set. Strategies
// must be registered before InitGenesis, in a deterministic order.
func (k *Keeper) RegisterStrategy(strategy types.Strategy) error {
	if strategy == nil {
		return types.ErrInvalidStrategy
	}
	for _, s := range k.strategies {
		if s.Name() == strategy.Name() {
			return types.ErrInvalidStrategy.Wrapf("strategy %s already registered", strategy.Name())
		}
	}
	k.strategies = append(k.strategies, strategy)
	return nil
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress returns the module account address holding idle assets and the
// locked shares.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// CreateModuleAccount ensures the module account exists with mint and burn
// permissions.
func (k Keeper) CreateModuleAccount(ctx sdk.Context) {
	baseAcc := authtypes.NewEmptyModuleAccount(types.ModuleName, authtypes.Minter, authtypes.Burner)
	moduleAcc := (k.accountKeeper.NewAccount(ctx, baseAcc)).(sdk.ModuleAccountI)
	k.accountKeeper.SetModuleAccount(ctx, moduleAcc)
}

func (k Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}
