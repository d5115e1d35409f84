package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LockedShares is the fixed share amount minted to the module account on the
// first deposit and never redeemable. It raises the cost of share-price
// inflation via donation attacks.
var LockedShares = math.NewInt(1_000)

// Default module parameters.
const (
	DefaultAssetDenom = "uusdai"
	DefaultShareDenom = "ustusdai"

	DefaultAdminFeeRateBps             uint32 = 100       // 1%
	DefaultAuctionDuration                    = int64(3_600)  // 1 hour
	DefaultRedemptionTimelock                 = int64(86_400) // 1 day
	DefaultMaxRedemptionsPerController uint32 = 50
)

func NewParams(
	assetDenom, shareDenom, operator, feeRecipient string,
	adminFeeRateBps uint32,
	auctionDuration, redemptionTimelock int64,
	maxRedemptionsPerController uint32,
) Params {
	return Params{
		AssetDenom:                  assetDenom,
		ShareDenom:                  shareDenom,
		Operator:                    operator,
		FeeRecipient:                feeRecipient,
		AdminFeeRateBps:             adminFeeRateBps,
		AuctionDuration:             auctionDuration,
		RedemptionTimelock:          redemptionTimelock,
		MaxRedemptionsPerController: maxRedemptionsPerController,
	}
}

// DefaultParams returns the default module parameters. Operator and fee
// recipient are deliberately empty: they must be configured before servicing
// or auctions can run.
func DefaultParams() Params {
	return Params{
		AssetDenom:                  DefaultAssetDenom,
		ShareDenom:                  DefaultShareDenom,
		AdminFeeRateBps:             DefaultAdminFeeRateBps,
		AuctionDuration:             DefaultAuctionDuration,
		RedemptionTimelock:          DefaultRedemptionTimelock,
		MaxRedemptionsPerController: DefaultMaxRedemptionsPerController,
	}
}

// Validate performs basic parameter validation.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.AssetDenom); err != nil {
		return fmt.Errorf("invalid asset denom: %w", err)
	}

	if err := sdk.ValidateDenom(p.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}

	if p.AssetDenom == p.ShareDenom {
		return fmt.Errorf("asset and share denoms must differ: %s", p.AssetDenom)
	}

	if p.Operator != "" {
		if _, err := sdk.AccAddressFromBech32(p.Operator); err != nil {
			return fmt.Errorf("invalid operator address: %w", err)
		}
	}

	if p.FeeRecipient != "" {
		if _, err := sdk.AccAddressFromBech32(p.FeeRecipient); err != nil {
			return fmt.Errorf("invalid fee recipient address: %w", err)
		}
	}

	if p.AdminFeeRateBps > MaxBasisPoints {
		return fmt.Errorf("admin fee rate %d exceeds %d bps", p.AdminFeeRateBps, MaxBasisPoints)
	}

	if p.AuctionDuration <= 0 {
		return fmt.Errorf("auction duration must be positive, got %d", p.AuctionDuration)
	}

	if p.RedemptionTimelock < 0 {
		return fmt.Errorf("redemption timelock cannot be negative, got %d", p.RedemptionTimelock)
	}

	if p.MaxRedemptionsPerController == 0 {
		return fmt.Errorf("max redemptions per controller must be positive")
	}

	for _, addr := range p.Blacklist {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("invalid blacklist entry %s: %w", addr, err)
		}
	}

	return nil
}

// IsBlacklisted reports whether addr is on the module blacklist.
func (p Params) IsBlacklisted(addr sdk.AccAddress) bool {
	bech := addr.String()
	for _, entry := range p.Blacklist {
		if entry == bech {
			return true
		}
	}
	return false
}
