package keeper

import (
	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// GetRedemptionQueue returns the singleton queue state. A fresh store yields
// an empty queue with IDs starting at 1.
func (k Keeper) GetRedemptionQueue(ctx sdk.Context) types.RedemptionQueue {
	store := k.getStore(ctx)

	bz := store.Get(types.RedemptionQueueKey)
	if bz == nil {
		return types.RedemptionQueue{
			NextIndex:          1,
			Head:               types.NullRedemptionID,
			Tail:               types.NullRedemptionID,
			PendingSharesTotal: math.ZeroInt(),
			RedemptionBalance:  math.ZeroInt(),
		}
	}

	var queue types.RedemptionQueue
	k.cdc.MustUnmarshal(bz, &queue)
	return queue
}

func (k Keeper) SetRedemptionQueue(ctx sdk.Context, queue types.RedemptionQueue) {
	store := k.getStore(ctx)
	store.Set(types.RedemptionQueueKey, k.cdc.MustMarshal(&queue))
}

// GetRedemption returns the redemption with the given ID, if present.
func (k Keeper) GetRedemption(ctx sdk.Context, id uint64) (types.Redemption, bool) {
	store := k.getStore(ctx)

	bz := store.Get(types.GetRedemptionKey(id))
	if bz == nil {
		return types.Redemption{}, false
	}

	var redemption types.Redemption
	k.cdc.MustUnmarshal(bz, &redemption)
	return redemption, true
}

func (k Keeper) SetRedemption(ctx sdk.Context, id uint64, redemption types.Redemption) {
	store := k.getStore(ctx)
	store.Set(types.GetRedemptionKey(id), k.cdc.MustMarshal(&redemption))
}

// deleteRedemption removes the redemption record and its controller index
// entry. The caller must already have unlinked it from the queue chain.
func (k Keeper) deleteRedemption(ctx sdk.Context, id uint64, redemption types.Redemption) {
	store := k.getStore(ctx)
	store.Delete(types.GetRedemptionKey(id))

	controller := sdk.MustAccAddressFromBech32(redemption.Controller)
	store.Delete(types.GetControllerRedemptionKey(controller, id))
}

func (k Keeper) setControllerRedemptionIndex(ctx sdk.Context, controller sdk.AccAddress, id uint64) {
	store := k.getStore(ctx)
	store.Set(types.GetControllerRedemptionKey(controller, id), []byte{1})
}

// GetControllerRedemptionIDs returns the controller's redemption IDs in
// ascending request order.
func (k Keeper) GetControllerRedemptionIDs(ctx sdk.Context, controller sdk.AccAddress) []uint64 {
	store := prefix.NewStore(k.getStore(ctx), types.GetControllerRedemptionPrefix(controller))

	iter := store.Iterator(nil, nil)
	defer iter.Close()

	ids := make([]uint64, 0)
	for ; iter.Valid(); iter.Next() {
		ids = append(ids, sdk.BigEndianToUint64(iter.Key()))
	}
	return ids
}

// GetControllerPendingCount returns how many of the controller's redemptions
// still carry pending shares.
func (k Keeper) GetControllerPendingCount(ctx sdk.Context, controller sdk.AccAddress) uint32 {
	store := k.getStore(ctx)

	bz := store.Get(types.GetControllerPendingCountKey(controller))
	if bz == nil {
		return 0
	}
	return uint32(sdk.BigEndianToUint64(bz))
}

func (k Keeper) setControllerPendingCount(ctx sdk.Context, controller sdk.AccAddress, count uint32) {
	store := k.getStore(ctx)
	if count == 0 {
		store.Delete(types.GetControllerPendingCountKey(controller))
		return
	}
	store.Set(types.GetControllerPendingCountKey(controller), sdk.Uint64ToBigEndian(uint64(count)))
}

// appendRedemption links a new node at the queue tail and persists both the
// node and the updated queue state. Returns the assigned ID.
func (k Keeper) appendRedemption(ctx sdk.Context, queue *types.RedemptionQueue, redemption types.Redemption) uint64 {
	id := queue.NextIndex
	queue.NextIndex++

	redemption.Prev = queue.Tail
	redemption.Next = types.NullRedemptionID

	if queue.Tail != types.NullRedemptionID {
		tail, found := k.GetRedemption(ctx, queue.Tail)
		if found {
			tail.Next = id
			k.SetRedemption(ctx, queue.Tail, tail)
		}
	} else {
		queue.Head = id
	}
	queue.Tail = id

	k.SetRedemption(ctx, id, redemption)
	return id
}

// detachRedemption unlinks the node from the queue chain in O(1) and persists
// the affected neighbors and queue ends. The node itself is updated in memory
// only; the caller decides whether to re-link, persist or delete it.
func (k Keeper) detachRedemption(ctx sdk.Context, queue *types.RedemptionQueue, id uint64, redemption *types.Redemption) {
	if redemption.Prev != types.NullRedemptionID {
		prevNode, found := k.GetRedemption(ctx, redemption.Prev)
		if found {
			prevNode.Next = redemption.Next
			k.SetRedemption(ctx, redemption.Prev, prevNode)
		}
	} else if queue.Head == id {
		queue.Head = redemption.Next
	}

	if redemption.Next != types.NullRedemptionID {
		nextNode, found := k.GetRedemption(ctx, redemption.Next)
		if found {
			nextNode.Prev = redemption.Prev
			k.SetRedemption(ctx, redemption.Next, nextNode)
		}
	} else if queue.Tail == id {
		queue.Tail = redemption.Prev
	}

	redemption.Prev = types.NullRedemptionID
	redemption.Next = types.NullRedemptionID
}

// prependRedemption links an already detached node at the queue head and
// persists it.
func (k Keeper) prependRedemption(ctx sdk.Context, queue *types.RedemptionQueue, id uint64, redemption *types.Redemption) {
	redemption.Prev = types.NullRedemptionID
	redemption.Next = queue.Head

	if queue.Head != types.NullRedemptionID {
		head, found := k.GetRedemption(ctx, queue.Head)
		if found {
			head.Prev = id
			k.SetRedemption(ctx, queue.Head, head)
		}
	} else {
		queue.Tail = id
	}
	queue.Head = id

	k.SetRedemption(ctx, id, *redemption)
}

// IterateQueue walks the redemption chain head to tail, calling fn for each
// node. Iteration stops when fn returns true.
func (k Keeper) IterateQueue(ctx sdk.Context, fn func(id uint64, redemption types.Redemption) (stop bool)) {
	queue := k.GetRedemptionQueue(ctx)

	for id := queue.Head; id != types.NullRedemptionID; {
		redemption, found := k.GetRedemption(ctx, id)
		if !found {
			return
		}
		next := redemption.Next
		if fn(id, redemption) {
			return
		}
		id = next
	}
}

// GetAllRedemptions returns every stored redemption record keyed by ID, in
// ascending ID order. Used for genesis export and queue audits.
func (k Keeper) GetAllRedemptions(ctx sdk.Context) []types.RedemptionRecord {
	store := prefix.NewStore(k.getStore(ctx), types.RedemptionPrefix)

	iter := store.Iterator(nil, nil)
	defer iter.Close()

	records := make([]types.RedemptionRecord, 0)
	for ; iter.Valid(); iter.Next() {
		var redemption types.Redemption
		k.cdc.MustUnmarshal(iter.Value(), &redemption)
		records = append(records, types.RedemptionRecord{
			Id:         sdk.BigEndianToUint64(iter.Key()),
			Redemption: redemption,
		})
	}
	return records
}

// ValidateQueueInvariants checks link integrity and that the queue's pending
// share total equals the sum over all nodes. Intended for tests and the
// crisis invariant route.
func (k Keeper) ValidateQueueInvariants(ctx sdk.Context) error {
	queue := k.GetRedemptionQueue(ctx)

	pendingTotal := math.ZeroInt()
	visited := 0
	prevID := types.NullRedemptionID

	for id := queue.Head; id != types.NullRedemptionID; {
		redemption, found := k.GetRedemption(ctx, id)
		if !found {
			return types.ErrInvalidRedemptionState.Wrapf("queue references missing redemption %d", id)
		}
		if redemption.Prev != prevID {
			return types.ErrInvalidRedemptionState.Wrapf("redemption %d prev link %d, expected %d", id, redemption.Prev, prevID)
		}
		pendingTotal = pendingTotal.Add(redemption.PendingShares)
		visited++
		if uint64(visited) >= queue.NextIndex {
			return types.ErrInvalidRedemptionState.Wrap("queue chain contains a cycle")
		}
		prevID = id
		id = redemption.Next
	}

	if prevID != queue.Tail {
		return types.ErrInvalidRedemptionState.Wrapf("chain ends at %d but queue tail is %d", prevID, queue.Tail)
	}
	if !pendingTotal.Equal(queue.PendingSharesTotal) {
		return types.ErrInvalidRedemptionState.Wrapf(
			"pending shares total %s does not match chain sum %s",
			queue.PendingSharesTotal.String(), pendingTotal.String(),
		)
	}
	return nil
}
