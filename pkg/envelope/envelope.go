// Package envelope defines the signed-transaction JSON shape submitted to
// the exchange, and the short-key wire JSON the server expects for action
// payloads — distinct from the user-facing camelCase intent shapes in
// pkg/signer, and distinct again from the binary pre-image in pkg/action.
package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/uhyunpark/hyperlicked/pkg/codec"
)

// Envelope is a fully signed transaction ready for submission: the action
// in the server's documented JSON shape, the account and signer public
// keys, and the Ed25519 signature — all base58 at this boundary. OrderIDs
// is carried out-of-band for the caller's convenience; the server does not
// expect it as part of the request body.
type Envelope struct {
	Action    json.RawMessage `json:"action"`
	Account   string          `json:"account"`
	Signer    string          `json:"signer"`
	Signature string          `json:"signature"`
	OrderIDs  []string        `json:"orderIds,omitempty"`

	// AgentLabel is a human-readable tag for callers tracking which agent
	// key a given authorization created — out-of-band, JSON-only
	// convenience the binding layer is free to ignore. Set only by
	// WithAgentLabel (which Signer.SignAgentWallet always calls); New leaves
	// it empty.
	AgentLabel string `json:"agentLabel,omitempty"`
}

// WithAgentLabel attaches a human-readable agent delegation label to e,
// generating one from a fresh UUID if label is empty, and returns e for
// chaining. Intended for AgentWalletCreation envelopes where Account and
// Signer differ.
func (e *Envelope) WithAgentLabel(label string) *Envelope {
	if label == "" {
		label = "agent-" + uuid.NewString()
	}
	e.AgentLabel = label
	return e
}

// New builds an Envelope from already-encoded action JSON and raw binary
// identities, base58-encoding the account, signer, and signature fields.
func New(actionJSON json.RawMessage, account, signer [32]byte, signature [64]byte, orderIDs [][32]byte) *Envelope {
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = codec.EncodeBlob(id[:])
	}
	return &Envelope{
		Action:    actionJSON,
		Account:   codec.EncodeBlob(account[:]),
		Signer:    codec.EncodeBlob(signer[:]),
		Signature: codec.EncodeBlob(signature[:]),
		OrderIDs:  ids,
	}
}

// MarshalJSON omits the orderIds field entirely when empty, matching the
// server's expectation that the request body carries only action/account/
// signer/signature.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	type alias Envelope
	return json.Marshal((*alias)(e))
}

// DecodeAccount, DecodeSigner, DecodeSignature recover the raw binary
// fields from their base58 JSON representation, for callers that received
// an Envelope over the wire and need to re-verify it locally.

func (e *Envelope) DecodeAccount() ([32]byte, error) {
	b, err := codec.DecodeBlob32(e.Account)
	if err != nil {
		return b, fmt.Errorf("envelope: account: %w", err)
	}
	return b, nil
}

func (e *Envelope) DecodeSigner() ([32]byte, error) {
	b, err := codec.DecodeBlob32(e.Signer)
	if err != nil {
		return b, fmt.Errorf("envelope: signer: %w", err)
	}
	return b, nil
}

func (e *Envelope) DecodeSignature() ([64]byte, error) {
	b, err := codec.DecodeBlob64(e.Signature)
	if err != nil {
		return b, fmt.Errorf("envelope: signature: %w", err)
	}
	return b, nil
}
