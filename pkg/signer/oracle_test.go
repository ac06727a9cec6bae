package signer

import (
	"errors"
	"testing"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
)

func sampleOracleIntent() OracleIntent {
	return OracleIntent{
		Updates: []action.OraclePriceUpdate{
			{Asset: "BTC-USD", Price: 100000.0},
		},
	}
}

func TestBuildAttestedOracleSignsOnceAllAttestationsVerify(t *testing.T) {
	s := New(mustKeypair(t))

	opA, err := keypair.NewOracleAttestorFromSeed([]byte("operator-a-seed-................"))
	if err != nil {
		t.Fatalf("NewOracleAttestorFromSeed: %v", err)
	}
	opB, err := keypair.NewOracleAttestorFromSeed([]byte("operator-b-seed-................"))
	if err != nil {
		t.Fatalf("NewOracleAttestorFromSeed: %v", err)
	}

	intent := sampleOracleIntent()
	nonce := uint64(42)
	account, signerPub, _ := s.resolve(Options{Nonce: &nonce})
	a, err := intent.toAction()
	if err != nil {
		t.Fatalf("toAction: %v", err)
	}
	preimage := buildPreimage(a, nonce, account, signerPub)

	attestations := []OracleAttestation{
		{Pubkey: opA.Pubkey(), Sig: opA.Attest(preimage)},
		{Pubkey: opB.Pubkey(), Sig: opB.Attest(preimage)},
	}

	env, proof, err := s.BuildAttestedOracle(intent, attestations, Options{Nonce: &nonce})
	if err != nil {
		t.Fatalf("BuildAttestedOracle: %v", err)
	}
	if env == nil {
		t.Fatal("expected a non-nil envelope")
	}
	if len(proof) == 0 {
		t.Error("expected a non-empty aggregate attestation proof")
	}

	want, err := s.Sign(intent, Options{Nonce: &nonce})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if env.Signature != want.Signature {
		t.Error("BuildAttestedOracle should produce the same Ed25519 signature as a plain Sign over the same nonce")
	}
}

func TestBuildAttestedOracleRejectsEmptyAttestations(t *testing.T) {
	s := New(mustKeypair(t))

	_, _, err := s.BuildAttestedOracle(sampleOracleIntent(), nil, Options{})
	if !errors.Is(err, ErrNoAttestations) {
		t.Errorf("expected ErrNoAttestations, got %v", err)
	}
}

func TestBuildAttestedOracleRejectsBadAttestation(t *testing.T) {
	s := New(mustKeypair(t))

	opA, err := keypair.NewOracleAttestorFromSeed([]byte("operator-a-seed-................"))
	if err != nil {
		t.Fatalf("NewOracleAttestorFromSeed: %v", err)
	}

	attestations := []OracleAttestation{
		{Pubkey: opA.Pubkey(), Sig: opA.Attest([]byte("preimage over the wrong action entirely"))},
	}

	_, _, err = s.BuildAttestedOracle(sampleOracleIntent(), attestations, Options{})
	if !errors.Is(err, ErrAttestationVerificationFailed) {
		t.Errorf("expected ErrAttestationVerificationFailed, got %v", err)
	}
}
