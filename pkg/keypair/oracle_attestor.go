package keypair

import (
	bls "github.com/cloudflare/circl/sign/bls"
)

// scheme fixes the BLS curve/signature-group pairing this module uses:
// keys live in G1, signatures in G2. This is the same pairing the
// teacher's validator-signature package used for block votes; here it
// attests to oracle price updates instead.
type scheme = bls.KeyG1SigG2

// OraclePubkey identifies one oracle operator's BLS key.
type OraclePubkey = bls.PublicKey[scheme]

// OracleAttestor lets an independent oracle operator co-sign a price
// update's pre-image before a relayer folds every operator's signature
// into one aggregate and submits the oracle action batch. This has no
// bearing on the Ed25519 envelope signature the exchange verifies — it is
// an upstream attestation step some oracle deployments add in front of the
// action the relayer ultimately signs with its own Keypair.
type OracleAttestor struct {
	sk *bls.PrivateKey[scheme]
	pk *OraclePubkey
}

// NewOracleAttestorFromSeed derives a deterministic BLS keypair from seed,
// which must be at least 32 bytes long (shorter seeds return an error).
// Intended for tests and for operators provisioning from a fixed secret;
// production operators should derive seed from their own secure RNG.
func NewOracleAttestorFromSeed(seed []byte) (*OracleAttestor, error) {
	sk, err := bls.KeyGen[scheme](seed, nil, nil)
	if err != nil {
		return nil, err
	}
	return &OracleAttestor{sk: sk, pk: sk.PublicKey()}, nil
}

// Pubkey returns the attestor's BLS public key.
func (a *OracleAttestor) Pubkey() *OraclePubkey { return a.pk }

// Attest signs the given oracle-action pre-image bytes.
func (a *OracleAttestor) Attest(preimage []byte) []byte {
	return bls.Sign(a.sk, preimage)
}

// VerifyAttestation checks one operator's attestation over preimage.
func VerifyAttestation(pk *OraclePubkey, preimage []byte, sig []byte) bool {
	return bls.Verify(pk, preimage, bls.Signature(sig))
}

// AggregateAttestations folds N operators' attestations over the same
// pre-image into a single aggregate signature, for relayers that want to
// attach compact multi-operator proof of an oracle update alongside the
// Ed25519-signed envelope.
func AggregateAttestations(sigs [][]byte) ([]byte, error) {
	converted := make([]bls.Signature, 0, len(sigs))
	for _, s := range sigs {
		if len(s) == 0 {
			continue
		}
		converted = append(converted, bls.Signature(s))
	}
	return bls.Aggregate(bls.G1{}, converted)
}

// VerifyAggregateAttestation checks an aggregate signature against every
// operator's public key over the same pre-image.
func VerifyAggregateAttestation(pks []*OraclePubkey, preimage []byte, aggSig []byte) bool {
	msgs := make([][]byte, len(pks))
	for i := range msgs {
		msgs[i] = preimage
	}
	return bls.VerifyAggregate(pks, msgs, bls.Signature(aggSig))
}
