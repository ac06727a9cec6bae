// Package clilog builds the zap logger cmd/hlsign uses for its own
// progress messages — key generated, envelope built, order id computed.
// It is imported only by cmd/hlsign; pkg/signer, pkg/action, pkg/codec,
// and pkg/keypair must never import it, since the core signing path logs
// nothing (spec.md §7).
package clilog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger configured for the given mode, "development" or
// "production". Development mode colorizes level output for a terminal;
// production emits plain JSON for piping into a log collector.
func New(mode string) (*zap.Logger, error) {
	switch mode {
	case "development", "dev", "":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()

	case "production", "prod":
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()

	default:
		return nil, fmt.Errorf("clilog: unknown logger mode %q (want 'development' or 'production')", mode)
	}
}

// NewNop returns a no-op logger, for tests that exercise cmd/hlsign's
// command wiring without asserting on log output.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
