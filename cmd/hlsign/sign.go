package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/clilog"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
	"github.com/uhyunpark/hyperlicked/pkg/signer"
)

func newSignCmd() *cobra.Command {
	var symbol string
	var isBuy bool
	var price, size float64
	var secretKey string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a single limit order and print the resulting envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			logMode, _ := cmd.Flags().GetString("log-mode")
			logger, err := clilog.New(logMode)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var kp *keypair.Keypair
			if secretKey != "" {
				kp, err = keypair.FromBase58(secretKey)
				if err != nil {
					return fmt.Errorf("load secret key: %w", err)
				}
			} else {
				kp, err = keypair.Generate()
				if err != nil {
					return fmt.Errorf("generate keypair: %w", err)
				}
				logger.Info("no --secret given, generated an ephemeral keypair")
			}

			s := signer.New(kp)
			intent := signer.OrderIntent{
				Symbol: symbol,
				IsBuy:  isBuy,
				Price:  price,
				Size:   size,
				OrderType: signer.OrderTypeIntent{
					Type: "limit",
					TIF:  action.GTC,
				},
			}

			env, err := s.Sign(intent, signer.Options{})
			if err != nil {
				return fmt.Errorf("sign: %w", err)
			}
			logger.Info("envelope signed", zap.String("symbol", symbol), zap.Strings("orderIds", env.OrderIDs))

			out, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal envelope: %w", err)
			}
			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "BTC-USD", "market symbol")
	cmd.Flags().BoolVar(&isBuy, "buy", true, "buy side (false for sell)")
	cmd.Flags().Float64Var(&price, "price", 100000.0, "limit price")
	cmd.Flags().Float64Var(&size, "size", 0.1, "order size")
	cmd.Flags().StringVar(&secretKey, "secret", "", "base58 Ed25519 secret key (generates one if omitted)")

	return cmd
}
