package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesisState returns the genesis state for a fresh module: default
// params, an empty queue and no auction history.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Queue: RedemptionQueue{
			NextIndex:          1,
			Head:               NullRedemptionID,
			Tail:               NullRedemptionID,
			PendingSharesTotal: math.ZeroInt(),
			RedemptionBalance:  math.ZeroInt(),
		},
	}
}

// Validate performs stateful genesis validation: params, queue link integrity
// and conservation of the pending share total across queue nodes.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidGenesis, err.Error())
	}

	if gs.Queue.NextIndex == 0 {
		return errors.Wrap(ErrInvalidGenesis, "queue next index must start at 1")
	}

	if gs.Queue.PendingSharesTotal.IsNil() || gs.Queue.PendingSharesTotal.IsNegative() {
		return errors.Wrap(ErrInvalidGenesis, "queue pending shares total cannot be negative")
	}

	if gs.Queue.RedemptionBalance.IsNil() || gs.Queue.RedemptionBalance.IsNegative() {
		return errors.Wrap(ErrInvalidGenesis, "queue redemption balance cannot be negative")
	}

	if (gs.Queue.Head == NullRedemptionID) != (gs.Queue.Tail == NullRedemptionID) {
		return errors.Wrap(ErrInvalidGenesis, "queue head and tail must both be set or both be null")
	}

	byID := make(map[uint64]Redemption, len(gs.Redemptions))
	pendingTotal := math.ZeroInt()

	for _, rec := range gs.Redemptions {
		if rec.Id == NullRedemptionID {
			return errors.Wrap(ErrInvalidGenesis, "redemption id cannot be zero")
		}
		if rec.Id >= gs.Queue.NextIndex {
			return errors.Wrapf(ErrInvalidGenesis, "redemption id %d exceeds queue next index %d", rec.Id, gs.Queue.NextIndex)
		}
		if _, ok := byID[rec.Id]; ok {
			return errors.Wrapf(ErrInvalidGenesis, "duplicate redemption id %d", rec.Id)
		}

		r := rec.Redemption
		if _, err := sdk.AccAddressFromBech32(r.Controller); err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "redemption %d controller: %s", rec.Id, err.Error())
		}
		if r.PendingShares.IsNil() || r.PendingShares.IsNegative() {
			return errors.Wrapf(ErrInvalidGenesis, "redemption %d pending shares cannot be negative", rec.Id)
		}
		if r.RedeemableShares.IsNil() || r.RedeemableShares.IsNegative() {
			return errors.Wrapf(ErrInvalidGenesis, "redemption %d redeemable shares cannot be negative", rec.Id)
		}
		if r.WithdrawableAmount.IsNil() || r.WithdrawableAmount.IsNegative() {
			return errors.Wrapf(ErrInvalidGenesis, "redemption %d withdrawable amount cannot be negative", rec.Id)
		}

		byID[rec.Id] = r
		pendingTotal = pendingTotal.Add(r.PendingShares)
	}

	if !pendingTotal.Equal(gs.Queue.PendingSharesTotal) {
		return errors.Wrapf(ErrInvalidGenesis,
			"queue pending shares total %s does not match sum of redemption pending shares %s",
			gs.Queue.PendingSharesTotal.String(), pendingTotal.String())
	}

	// walk the chain head to tail; a node carrying pending shares must sit on
	// the chain, a fully serviced node may sit detached until its claim is
	// taken
	onChain := make(map[uint64]bool, len(byID))
	prev := uint64(NullRedemptionID)
	for id := gs.Queue.Head; id != NullRedemptionID; {
		r, ok := byID[id]
		if !ok {
			return errors.Wrapf(ErrInvalidGenesis, "queue references unknown redemption %d", id)
		}
		if onChain[id] {
			return errors.Wrap(ErrInvalidGenesis, "queue chain contains a cycle")
		}
		if r.Prev != prev {
			return errors.Wrapf(ErrInvalidGenesis, "redemption %d prev link %d, expected %d", id, r.Prev, prev)
		}
		onChain[id] = true
		if r.Next == NullRedemptionID && id != gs.Queue.Tail {
			return errors.Wrapf(ErrInvalidGenesis, "chain ends at %d but queue tail is %d", id, gs.Queue.Tail)
		}
		prev = id
		id = r.Next
	}

	for _, rec := range gs.Redemptions {
		if onChain[rec.Id] {
			continue
		}
		r := rec.Redemption
		if r.PendingShares.IsPositive() {
			return errors.Wrapf(ErrInvalidGenesis, "redemption %d has pending shares but is not on the queue chain", rec.Id)
		}
		if r.Prev != NullRedemptionID || r.Next != NullRedemptionID {
			return errors.Wrapf(ErrInvalidGenesis, "detached redemption %d carries chain links", rec.Id)
		}
		if !r.RedeemableShares.IsPositive() && !r.WithdrawableAmount.IsPositive() {
			return errors.Wrapf(ErrInvalidGenesis, "detached redemption %d has no outstanding claim", rec.Id)
		}
	}

	auctionIDs := make(map[uint64]Auction, len(gs.Auctions))
	for _, a := range gs.Auctions {
		if a.Id == 0 {
			return errors.Wrap(ErrInvalidGenesis, "auction id cannot be zero")
		}
		if a.Id > gs.CurrentAuctionId {
			return errors.Wrapf(ErrInvalidGenesis, "auction id %d exceeds current auction id %d", a.Id, gs.CurrentAuctionId)
		}
		if _, ok := auctionIDs[a.Id]; ok {
			return errors.Wrapf(ErrInvalidGenesis, "duplicate auction id %d", a.Id)
		}
		if a.ProcessedBidCount > a.BidCount {
			return errors.Wrapf(ErrInvalidGenesis, "auction %d processed %d of %d bids", a.Id, a.ProcessedBidCount, a.BidCount)
		}
		auctionIDs[a.Id] = a
	}

	for _, rec := range gs.Bids {
		a, ok := auctionIDs[rec.AuctionId]
		if !ok {
			return errors.Wrapf(ErrInvalidGenesis, "bid references unknown auction %d", rec.AuctionId)
		}
		if rec.Index >= a.BidCount {
			return errors.Wrapf(ErrInvalidGenesis, "bid index %d out of range for auction %d", rec.Index, rec.AuctionId)
		}
		if err := rec.Bid.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "bid %d/%d: %s", rec.AuctionId, rec.Index, err.Error())
		}
	}

	return nil
}
