package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// sortCmd orders a batch of signed bids the way the chain expects them to be
// posted: basis points descending, redemption ids ascending on ties. It also
// rejects batches that could never post, such as duplicate nonces.
func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [bids.json]",
		Short: "Order a bid batch for posting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			payload, err := readInput(path)
			if err != nil {
				return err
			}

			var docs []bidDoc
			if err := json.Unmarshal(payload, &docs); err != nil {
				return err
			}

			bids := make([]types.Bid, 0, len(docs))
			seenNonces := make(map[string]struct{}, len(docs))
			for i, doc := range docs {
				bid, err := doc.toBid()
				if err != nil {
					return fmt.Errorf("bid %d: %w", i, err)
				}
				if err := bid.Validate(); err != nil {
					return fmt.Errorf("bid %d: %w", i, err)
				}

				nonceKey := fmt.Sprintf("%d/%d/%d", bid.AuctionId, bid.RedemptionId, bid.Nonce)
				if _, ok := seenNonces[nonceKey]; ok {
					return fmt.Errorf("bid %d: duplicate nonce %d for redemption %d", i, bid.Nonce, bid.RedemptionId)
				}
				seenNonces[nonceKey] = struct{}{}

				bids = append(bids, bid)
			}

			sort.SliceStable(bids, func(i, j int) bool {
				if bids[i].BasisPoint != bids[j].BasisPoint {
					return bids[i].BasisPoint > bids[j].BasisPoint
				}
				return bids[i].RedemptionId < bids[j].RedemptionId
			})

			out := make([]bidDoc, 0, len(bids))
			for _, bid := range bids {
				out = append(out, docFromBid(bid))
			}

			return printJSON(out)
		},
	}
}
