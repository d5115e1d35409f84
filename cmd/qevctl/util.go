package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/math"
	"github.com/joho/godotenv"
	log "github.com/xlab/suplog"

	"github.com/USDaiLabs/usdai-core/usdai-chain/modules/stakedusdai/types"
)

// readEnv reads a `.env` file into actual environment variables of the
// current app.
func readEnv() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debugln("no .env file loaded")
	}
}

// logLevel converts vague log level name into typed level.
func logLevel(s string) log.Level {
	switch s {
	case "1", "error":
		return log.ErrorLevel
	case "2", "warn":
		return log.WarnLevel
	case "3", "info":
		return log.InfoLevel
	case "4", "debug":
		return log.DebugLevel
	default:
		return log.FatalLevel
	}
}

func hexToBytes(str string) ([]byte, error) {
	str = strings.TrimPrefix(str, "0x")

	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// bidDoc is the JSON document qevctl reads and writes. Share amounts are
// decimal strings, the signature is hex.
type bidDoc struct {
	AuctionID        uint64 `json:"auction_id"`
	RedemptionID     uint64 `json:"redemption_id"`
	RedemptionShares string `json:"redemption_shares"`
	BasisPoint       uint32 `json:"basis_point"`
	Nonce            uint64 `json:"nonce"`
	Timestamp        int64  `json:"timestamp"`
	Controller       string `json:"controller"`
	Signature        string `json:"signature,omitempty"`
}

func (d bidDoc) toBid() (types.Bid, error) {
	shares, ok := math.NewIntFromString(d.RedemptionShares)
	if !ok {
		return types.Bid{}, fmt.Errorf("invalid redemption shares %q", d.RedemptionShares)
	}

	bid := types.Bid{
		AuctionId:        d.AuctionID,
		RedemptionId:     d.RedemptionID,
		RedemptionShares: shares,
		BasisPoint:       d.BasisPoint,
		Nonce:            d.Nonce,
		Timestamp:        d.Timestamp,
		Controller:       d.Controller,
	}

	if d.Signature != "" {
		sig, err := hexToBytes(d.Signature)
		if err != nil {
			return types.Bid{}, fmt.Errorf("invalid signature hex: %w", err)
		}
		bid.Signature = sig
	}

	return bid, nil
}

func docFromBid(bid types.Bid) bidDoc {
	doc := bidDoc{
		AuctionID:        bid.AuctionId,
		RedemptionID:     bid.RedemptionId,
		RedemptionShares: bid.RedemptionShares.String(),
		BasisPoint:       bid.BasisPoint,
		Nonce:            bid.Nonce,
		Timestamp:        bid.Timestamp,
		Controller:       bid.Controller,
	}
	if len(bid.Signature) > 0 {
		doc.Signature = "0x" + hex.EncodeToString(bid.Signature)
	}
	return doc
}

// readInput reads the JSON payload from a file path, or stdin when the path
// is "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
