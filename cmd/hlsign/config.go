package main

import (
	"github.com/spf13/cobra"

	"github.com/uhyunpark/hyperlicked/pkg/walletcfg"
)

// loadConfig reads the --env persistent flag and resolves the CLI's
// walletcfg.Config from it. Every subcommand that cares about batch sizing
// or account/signer env-var names goes through this one helper rather than
// calling walletcfg.LoadFromEnv directly.
func loadConfig(cmd *cobra.Command) walletcfg.Config {
	envPath, _ := cmd.Flags().GetString("env")
	return walletcfg.LoadFromEnv(envPath)
}
