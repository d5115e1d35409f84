package main

import (
	"encoding/json"
	"errors"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/xlab/suplog"
)

// signCmd signs a bid document with the controller's secp256k1 key. The key
// comes from --key or the QEV_PRIVATE_KEY environment variable and is never
// written anywhere.
func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [bid.json]",
		Short: "Sign a priority bid with the controller key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyHex := viper.GetString("private-key")
			if keyHex == "" {
				return errors.New("no signing key: set --key or QEV_PRIVATE_KEY")
			}

			rawKey, err := hexToBytes(keyHex)
			if err != nil {
				return err
			}
			key, err := ethcrypto.ToECDSA(rawKey)
			if err != nil {
				return err
			}

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

			controller := sdk.AccAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())
			if doc.Controller == "" {
				doc.Controller = controller.String()
			} else if doc.Controller != controller.String() {
				return errors.New("bid controller does not match the signing key")
			}

			if doc.Timestamp == 0 {
				doc.Timestamp = time.Now().Unix()
			}

			bid, err := doc.toBid()
			if err != nil {
				return err
			}
			if err := bid.Validate(); err != nil {
				return err
			}

			chainID := viper.GetString("chain-id")
			if err := bid.Sign(chainID, key); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"auction":    bid.AuctionId,
				"redemption": bid.RedemptionId,
				"bp":         bid.BasisPoint,
				"chain_id":   chainID,
			}).Infoln("bid signed")

			return printJSON(docFromBid(bid))
		},
	}

	cmd.Flags().String("key", "", "controller private key hex")
	// nolint:errcheck //ignored on purpose
	viper.BindPFlag("private-key", cmd.Flags().Lookup("key"))

	return cmd
}
