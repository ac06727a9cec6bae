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

// newBatchCmd signs N independent sample orders through SignAll, sizing
// the worker pool from walletcfg.Config.BatchWorkers (--env / the
// HLSIGN_BATCH_WORKERS env var) rather than the package's built-in
// default.
func newBatchCmd() *cobra.Command {
	var symbol string
	var count int
	var secretKey string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Sign a batch of sample orders concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			logMode, _ := cmd.Flags().GetString("log-mode")
			logger, err := clilog.New(logMode)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := loadConfig(cmd)

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

			intents := make([]signer.Intent, count)
			for i := range intents {
				intents[i] = signer.OrderIntent{
					Symbol: symbol,
					IsBuy:  i%2 == 0,
					Price:  100000.0,
					Size:   0.1,
					OrderType: signer.OrderTypeIntent{
						Type: "limit",
						TIF:  action.GTC,
					},
				}
			}

			logger.Info("signing batch", zap.Int("count", count), zap.Int("workers", cfg.BatchWorkers))

			s := signer.New(kp)
			results := s.SignAll(intents, signer.BatchOptions{Workers: cfg.BatchWorkers})

			envelopes := make([]*signerEnvelopeView, len(results))
			for i, r := range results {
				if r.Err != nil {
					logger.Info("batch item failed", zap.Int("index", r.Index), zap.Error(r.Err))
					continue
				}
				envelopes[i] = &signerEnvelopeView{Index: r.Index, Envelope: r.Envelope}
			}

			out, err := json.MarshalIndent(envelopes, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal batch results: %w", err)
			}
			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "BTC-USD", "market symbol")
	cmd.Flags().IntVar(&count, "count", 4, "number of sample orders to sign")
	cmd.Flags().StringVar(&secretKey, "secret", "", "base58 Ed25519 secret key (generates one if omitted)")

	return cmd
}

// signerEnvelopeView pairs a batch item's index with its envelope for
// output ordering. A failed item is logged and leaves its slot nil, which
// prints as null in the output array.
type signerEnvelopeView struct {
	Index    int         `json:"index"`
	Envelope interface{} `json:"envelope"`
}
