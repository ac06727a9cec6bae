// Command hlsign is a thin CLI over pkg/signer: generate an Ed25519
// keypair, sign a sample order intent, walk through the prepare/finalize
// flow an external wallet would use, sign a batch of orders concurrently,
// or run the oracle attest/aggregate/verify/sign round trip. It is the
// only place in this module that logs, touches the environment, or reads
// a .env file — pkg/signer and the packages beneath it never do (spec.md
// §6.5, §7).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hlsign",
		Short: "Sign and prepare exchange transactions",
		Long:  "Constructs, binary-serializes, and Ed25519-signs transactions for submission to the exchange.",
	}

	rootCmd.PersistentFlags().String("log-mode", "development", "logger mode: development or production")
	rootCmd.PersistentFlags().String("env", "", "path to a .env file (optional)")

	rootCmd.AddCommand(newKeygenCmd())
	rootCmd.AddCommand(newSignCmd())
	rootCmd.AddCommand(newPrepareCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newAttestOracleCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hlsign v%s\n", version)
		},
	}
}
