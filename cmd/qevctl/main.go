package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/xlab/suplog"
)

// qevctl is the off-chain companion tool for the QEV priority auction: it
// signs, verifies and orders redemption priority bids before an operator
// posts them on chain.
func main() {
	readEnv()

	rootCmd := &cobra.Command{
		Use:          "qevctl",
		Short:        "Sign, verify and order QEV priority bids",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("chain-id", "usdai-1", "chain id the bid signatures are bound to")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (error, warn, info, debug)")

	// nolint:errcheck //ignored on purpose
	viper.BindPFlag("chain-id", rootCmd.PersistentFlags().Lookup("chain-id"))
	// nolint:errcheck //ignored on purpose
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("QEV")
	viper.AutomaticEnv()

	cobra.OnInitialize(func() {
		log.DefaultLogger.SetLevel(logLevel(viper.GetString("log-level")))
	})

	rootCmd.AddCommand(
		signCmd(),
		verifyCmd(),
		sortCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
