package main

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/xlab/suplog"
)

// verifyCmd checks a signed bid document: stateless validation plus signature
// recovery against the declared controller.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [bid.json]",
		Short: "Verify a signed priority bid",
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

			var doc bidDoc
			if err := json.Unmarshal(payload, &doc); err != nil {
				return err
			}

			bid, err := doc.toBid()
			if err != nil {
				return err
			}
			if err := bid.Validate(); err != nil {
				return err
			}

			controller, err := sdk.AccAddressFromBech32(bid.Controller)
			if err != nil {
				return err
			}

			chainID := viper.GetString("chain-id")
			if err := bid.VerifySignature(chainID, controller); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"auction":    bid.AuctionId,
				"redemption": bid.RedemptionId,
				"controller": bid.Controller,
				"chain_id":   chainID,
			}).Infoln("signature valid")

			return nil
		},
	}
}
