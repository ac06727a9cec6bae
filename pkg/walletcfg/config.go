// Package walletcfg holds the ambient configuration for the cmd/hlsign
// CLI and its batch-signing surface. None of pkg/signer, pkg/action,
// pkg/codec, or pkg/keypair import this package — the core never reads
// the environment or a file, per spec.md §6.5.
package walletcfg

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the CLI's tunable surface: how many workers SignAll uses, and
// the names of env vars for base58 account/signer overrides. No
// cmd/hlsign subcommand reads the env vars that AccountEnv and SignerEnv
// name; every subcommand signs as its own keypair.
type Config struct {
	BatchWorkers int
	AccountEnv   string // name of the env var holding a base58 account override
	SignerEnv    string // name of the env var holding a base58 signer override
}

// Default returns the CLI's built-in defaults, used when no .env file or
// environment override is present.
func Default() Config {
	return Config{
		BatchWorkers: 8,
		AccountEnv:   "HLSIGN_ACCOUNT",
		SignerEnv:    "HLSIGN_SIGNER",
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and then
// the process environment, following the same override precedence as the
// node's params.LoadFromEnv: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if workers := os.Getenv("HLSIGN_BATCH_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			cfg.BatchWorkers = n
		}
	}
	if account := os.Getenv("HLSIGN_ACCOUNT_ENV"); account != "" {
		cfg.AccountEnv = account
	}
	if signer := os.Getenv("HLSIGN_SIGNER_ENV"); signer != "" {
		cfg.SignerEnv = signer
	}

	return cfg
}
