package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name.
	ModuleName = "stakedusdai"

	// StoreKey is the default store key for the module.
	StoreKey = ModuleName
)

// NullRedemptionID is the sentinel value used for both queue ends and unset
// prev/next links. Redemption IDs start at 1.
const NullRedemptionID uint64 = 0

// MaxBasisPoints is the denominator for all basis-point rates.
const MaxBasisPoints uint32 = 10_000

var (
	ParamsKey                    = []byte{0x01}
	RedemptionQueueKey           = []byte{0x02}
	RedemptionPrefix             = []byte{0x03}
	ControllerRedemptionPrefix   = []byte{0x04}
	ControllerPendingCountPrefix = []byte{0x05}
	AuctionPrefix                = []byte{0x06}
	BidPrefix                    = []byte{0x07}
	BidNoncePrefix               = []byte{0x08}
	CurrentAuctionIDKey          = []byte{0x09}
	OperatorApprovalPrefix       = []byte{0x0a}
	LockedSharesMintedKey        = []byte{0x0b}
)

// GetRedemptionKey returns the store key for a redemption entry by ID.
func GetRedemptionKey(id uint64) []byte {
	return append(RedemptionPrefix, sdk.Uint64ToBigEndian(id)...)
}

// GetControllerRedemptionPrefix returns the prefix under which all of a
// controller's redemption IDs are indexed.
func GetControllerRedemptionPrefix(controller sdk.AccAddress) []byte {
	return append(ControllerRedemptionPrefix, controller.Bytes()...)
}

// GetControllerRedemptionKey returns the per-controller index key for a
// redemption ID. Big-endian ID encoding keeps prefix iteration in request
// order.
func GetControllerRedemptionKey(controller sdk.AccAddress, id uint64) []byte {
	return append(GetControllerRedemptionPrefix(controller), sdk.Uint64ToBigEndian(id)...)
}

// ParseControllerRedemptionKey extracts the redemption ID from a
// per-controller index key.
func ParseControllerRedemptionKey(key []byte) uint64 {
	return sdk.BigEndianToUint64(key[len(key)-8:])
}

// GetControllerPendingCountKey returns the key tracking how many of a
// controller's redemptions still carry pending shares.
func GetControllerPendingCountKey(controller sdk.AccAddress) []byte {
	return append(ControllerPendingCountPrefix, controller.Bytes()...)
}

// GetAuctionKey returns the store key for an auction by ID.
func GetAuctionKey(id uint64) []byte {
	return append(AuctionPrefix, sdk.Uint64ToBigEndian(id)...)
}

// GetBidKey returns the store key for a posted bid. Bids are addressed by
// auction ID and their zero-based acceptance index within that auction.
func GetBidKey(auctionID uint64, index uint32) []byte {
	key := append(BidPrefix, sdk.Uint64ToBigEndian(auctionID)...)
	return append(key, sdk.Uint64ToBigEndian(uint64(index))...)
}

// GetBidAuctionPrefix returns the prefix under which all bids of an auction
// are stored, in acceptance order.
func GetBidAuctionPrefix(auctionID uint64) []byte {
	return append(BidPrefix, sdk.Uint64ToBigEndian(auctionID)...)
}

// GetBidNonceKey returns the replay-guard key for a consumed bid nonce. The
// scope is (auction, redemption) per the QEV replay-protection contract.
func GetBidNonceKey(auctionID, redemptionID, nonce uint64) []byte {
	key := append(BidNoncePrefix, sdk.Uint64ToBigEndian(auctionID)...)
	key = append(key, sdk.Uint64ToBigEndian(redemptionID)...)
	return append(key, sdk.Uint64ToBigEndian(nonce)...)
}

// GetOperatorApprovalKey returns the key for an owner→operator approval.
func GetOperatorApprovalKey(owner, operator sdk.AccAddress) []byte {
	key := append(OperatorApprovalPrefix, owner.Bytes()...)
	return append(key, operator.Bytes()...)
}
