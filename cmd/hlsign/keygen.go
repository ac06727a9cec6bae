package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhyunpark/hyperlicked/pkg/clilog"
	"github.com/uhyunpark/hyperlicked/pkg/codec"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
)

func newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new Ed25519 keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			logMode, _ := cmd.Flags().GetString("log-mode")
			logger, err := clilog.New(logMode)
			if err != nil {
				return err
			}
			defer logger.Sync()

			kp, err := keypair.Generate()
			if err != nil {
				return fmt.Errorf("generate keypair: %w", err)
			}
			logger.Info("keypair generated")

			pub := kp.Pubkey()
			fmt.Printf("Public key: %s\n", codec.EncodeBlob(pub[:]))
			fmt.Printf("Secret key: %s\n", kp.ToBase58())

			return nil
		},
	}

	return cmd
}
