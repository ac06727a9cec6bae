package keypair

import (
	"bytes"
	"errors"
	"testing"

	"github.com/uhyunpark/hyperlicked/pkg/codec"
)

func TestGenerateProducesDistinctKeys(t *testing.T) {
	a, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Pubkey() == b.Pubkey() {
		t.Error("two generated keypairs produced the same pubkey")
	}
}

func TestBase58RoundTrip(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	exported := kp.ToBase58()
	reimported, err := FromBase58(exported)
	if err != nil {
		t.Fatalf("FromBase58: %v", err)
	}

	if reimported.Pubkey() != kp.Pubkey() {
		t.Error("pubkey mismatch after base58 round-trip")
	}
}

func TestFromBase58AcceptsBareSeed(t *testing.T) {
	kp, _ := Generate()
	seed := kp.Seed()

	fromSeed, err := FromBase58(codec.EncodeBlob(seed[:]))
	if err != nil {
		t.Fatalf("FromBase58(seed): %v", err)
	}
	if fromSeed.Pubkey() != kp.Pubkey() {
		t.Error("pubkey derived from bare seed should match the original")
	}
}

func TestFromBase58RejectsMismatchedExpandedKey(t *testing.T) {
	a, _ := Generate()
	b, _ := Generate()

	// Swap in a's seed with b's claimed public key half: must be rejected.
	mixed := make([]byte, 64)
	copy(mixed[:32], a.priv.Seed())
	copy(mixed[32:], b.pub)

	_, err := FromBase58(codec.EncodeBlob(mixed))
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestFromBase58RejectsWrongLength(t *testing.T) {
	_, err := FromBase58(codec.EncodeBlob(make([]byte, 10)))
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, _ := Generate()
	msg := []byte("preimage bytes go here")
	sig := kp.Sign(msg)

	if !Verify(kp.Pubkey(), msg, sig) {
		t.Error("signature failed to verify")
	}
	if Verify(kp.Pubkey(), []byte("different message"), sig) {
		t.Error("signature verified against the wrong message")
	}
}

func TestSignIsDeterministic(t *testing.T) {
	kp, _ := Generate()
	msg := []byte("deterministic?")
	sig1 := kp.Sign(msg)
	sig2 := kp.Sign(msg)
	if !bytes.Equal(sig1[:], sig2[:]) {
		t.Error("Ed25519 signatures over the same message/key should be identical")
	}
}
