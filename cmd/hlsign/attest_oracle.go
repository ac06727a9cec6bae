package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/clilog"
	"github.com/uhyunpark/hyperlicked/pkg/codec"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
	"github.com/uhyunpark/hyperlicked/pkg/signer"
)

// newAttestOracleCmd walks through the full oracle attestation round trip:
// a fixed set of operator seeds each attest the price update's pre-image,
// the attestations are aggregated and verified, and only then does the
// relayer's own keypair sign the resulting envelope.
func newAttestOracleCmd() *cobra.Command {
	var asset string
	var price float64
	var operatorSeeds []string
	var secretKey string

	cmd := &cobra.Command{
		Use:   "attest-oracle",
		Short: "Attest, aggregate, verify, and sign an oracle price update",
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
				logger.Info("no --secret given, generated an ephemeral relayer keypair")
			}

			intent := signer.OracleIntent{
				Updates: []action.OraclePriceUpdate{{Asset: asset, Price: price}},
			}

			s := signer.New(kp)

			// Operators attest over the same pre-image bytes Prepare would
			// hand an external wallet, so the relayer's own Sign/Prepare
			// and BuildAttestedOracle agree on what "the pre-image" means.
			prepared, err := s.Prepare(intent, signer.Options{})
			if err != nil {
				return fmt.Errorf("prepare: %w", err)
			}

			attestations := make([]signer.OracleAttestation, len(operatorSeeds))
			for i, seed := range operatorSeeds {
				attestor, err := keypair.NewOracleAttestorFromSeed([]byte(seed))
				if err != nil {
					return fmt.Errorf("operator %d: %w", i, err)
				}
				attestations[i] = signer.OracleAttestation{
					Pubkey: attestor.Pubkey(),
					Sig:    attestor.Attest(prepared.MessageBytes),
				}
			}

			env, proof, err := s.BuildAttestedOracle(intent, attestations, signer.Options{Nonce: &prepared.Nonce})
			if err != nil {
				return fmt.Errorf("build attested oracle: %w", err)
			}
			logger.Info("oracle update attested and signed",
				zap.Int("operators", len(attestations)),
				zap.String("asset", asset),
			)

			envJSON, err := json.Marshal(env)
			if err != nil {
				return fmt.Errorf("marshal envelope: %w", err)
			}

			out := struct {
				Envelope         json.RawMessage `json:"envelope"`
				AttestationProof string          `json:"attestationProof"`
			}{
				Envelope:         envJSON,
				AttestationProof: codec.EncodeBlob(proof),
			}

			marshaled, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal attested oracle output: %w", err)
			}
			fmt.Println(string(marshaled))

			return nil
		},
	}

	cmd.Flags().StringVar(&asset, "asset", "BTC-USD", "oracle asset symbol")
	cmd.Flags().Float64Var(&price, "price", 100000.0, "asset price")
	cmd.Flags().StringSliceVar(&operatorSeeds, "operator-seed", []string{"operator-a-seed-................", "operator-b-seed-................"}, "BLS operator seeds (at least 32 bytes each), one per co-signer")
	cmd.Flags().StringVar(&secretKey, "secret", "", "base58 Ed25519 secret key for the relayer (generates one if omitted)")

	return cmd
}
