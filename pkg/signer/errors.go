package signer

import "errors"

// ErrInvalidSignatureLength is returned by Finalize when an externally
// produced signature is not exactly 64 bytes.
var ErrInvalidSignatureLength = errors.New("signer: signature must be exactly 64 bytes")

// ErrEmptyBatch is returned by SignGroup/PrepareGroup when called with no
// items — there is no sensible single envelope to produce.
var ErrEmptyBatch = errors.New("signer: batch has no items")

// ErrNoAttestations is returned by BuildAttestedOracle when called with no
// operator attestations — there is nothing to aggregate or verify.
var ErrNoAttestations = errors.New("signer: no oracle attestations provided")

// ErrAttestationVerificationFailed is returned by BuildAttestedOracle when
// an operator's attestation, or the folded aggregate, does not verify
// against the oracle pre-image.
var ErrAttestationVerificationFailed = errors.New("signer: oracle attestation failed to verify")
