package signer

import (
	"github.com/uhyunpark/hyperlicked/pkg/envelope"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
)

// OracleAttestation pairs one oracle operator's BLS public key with its
// signature over the oracle action's pre-image.
type OracleAttestation struct {
	Pubkey *keypair.OraclePubkey
	Sig    []byte
}

// BuildAttestedOracle verifies that every operator in attestations actually
// co-signed the oracle pre-image, folds their signatures into one aggregate
// proof, and only then signs the price-update batch with the relayer's own
// Ed25519 key. The returned proof travels alongside the envelope for a
// downstream consumer that wants multi-operator confirmation; the exchange
// itself still only checks the Ed25519 envelope signature (spec.md §4.2.1).
func (s *Signer) BuildAttestedOracle(intent OracleIntent, attestations []OracleAttestation, opts Options) (*envelope.Envelope, []byte, error) {
	if len(attestations) == 0 {
		return nil, nil, ErrNoAttestations
	}

	a, err := intent.toAction()
	if err != nil {
		return nil, nil, err
	}

	account, signerPub, nonce := s.resolve(opts)
	preimage := buildPreimage(a, nonce, account, signerPub)

	pubkeys := make([]*keypair.OraclePubkey, len(attestations))
	sigs := make([][]byte, len(attestations))
	for i, att := range attestations {
		if !keypair.VerifyAttestation(att.Pubkey, preimage, att.Sig) {
			return nil, nil, ErrAttestationVerificationFailed
		}
		pubkeys[i] = att.Pubkey
		sigs[i] = att.Sig
	}

	proof, err := keypair.AggregateAttestations(sigs)
	if err != nil {
		return nil, nil, err
	}
	if !keypair.VerifyAggregateAttestation(pubkeys, preimage, proof) {
		return nil, nil, ErrAttestationVerificationFailed
	}

	env, err := s.signAction(a, Options{Account: &account, Signer: &signerPub, Nonce: &nonce})
	if err != nil {
		return nil, nil, err
	}
	return env, proof, nil
}
