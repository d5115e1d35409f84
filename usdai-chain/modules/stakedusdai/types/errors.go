package types

// DONTCOVER

import (
	"cosmossdk.io/errors"
)

// x/stakedusdai module sentinel errors
var (
	ErrInvalidAmount          = errors.Register(ModuleName, 2, "invalid amount")
	ErrInvalidAddress         = errors.Register(ModuleName, 3, "invalid address")
	ErrInvalidCaller          = errors.Register(ModuleName, 4, "caller is neither owner nor approved operator")
	ErrInvalidRedemptionState = errors.Register(ModuleName, 5, "invalid redemption state")
	ErrInsufficientBalance    = errors.Register(ModuleName, 6, "insufficient balance")
	ErrBlacklistedAddress     = errors.Register(ModuleName, 7, "blacklisted address")
	ErrInvalidSignature       = errors.Register(ModuleName, 8, "invalid bid signature")
	ErrNonceReused            = errors.Register(ModuleName, 9, "bid nonce already consumed")
	ErrInvalidBidOrder        = errors.Register(ModuleName, 10, "bids must be in descending basis point order")
	ErrAuctionState           = errors.Register(ModuleName, 11, "invalid auction state")
	ErrInvalidGenesis         = errors.Register(ModuleName, 12, "invalid genesis")
	ErrPaused                 = errors.Register(ModuleName, 13, "module is paused")
	ErrInvalidStrategy        = errors.Register(ModuleName, 14, "invalid strategy")
)
