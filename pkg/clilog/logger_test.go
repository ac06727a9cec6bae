package clilog

import "testing"

func TestNewRejectsUnknownMode(t *testing.T) {
	if _, err := New("bogus"); err == nil {
		t.Error("expected error for unknown mode, got nil")
	}
}

func TestNewAcceptsKnownModes(t *testing.T) {
	for _, mode := range []string{"development", "dev", "", "production", "prod"} {
		if _, err := New(mode); err != nil {
			t.Errorf("mode %q: unexpected error: %v", mode, err)
		}
	}
}

func TestNewNopDoesNotPanic(t *testing.T) {
	logger := NewNop()
	logger.Info("test message")
}
