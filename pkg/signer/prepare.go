package signer

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/codec"
	"github.com/uhyunpark/hyperlicked/pkg/envelope"
)

// Prepared is the pre-image and everything needed to finalize it into an
// envelope once an external wallet has produced a signature over
// MessageBytes. It is the "sign elsewhere, assemble here" half of the
// external-wallet flow (spec.md §4.5).
type Prepared struct {
	MessageBytes  []byte
	MessageBase58 string
	MessageBase64 string
	MessageHex    string
	OrderIDs      [][32]byte
	ActionJSON    []byte
	Account       [32]byte
	SignerPub     [32]byte
	Nonce         uint64

	action action.Action
}

// Prepare builds the pre-image for intent without signing it. The caller
// is expected to sign Prepared.MessageBytes with an external Ed25519
// keypair and pass the resulting 64-byte signature to Finalize.
func (s *Signer) Prepare(intent Intent, opts Options) (*Prepared, error) {
	a, err := intent.toAction()
	if err != nil {
		return nil, err
	}
	return s.prepareAction(a, opts)
}

// PrepareGroup is Prepare's counterpart for an atomic multi-item order
// batch.
func (s *Signer) PrepareGroup(group GroupIntent, opts Options) (*Prepared, error) {
	a, err := group.toAction()
	if err != nil {
		return nil, err
	}
	return s.prepareAction(a, opts)
}

func (s *Signer) prepareAction(a action.Action, opts Options) (*Prepared, error) {
	account, signerPub, nonce := s.resolve(opts)
	preimage := buildPreimage(a, nonce, account, signerPub)

	actionJSON, err := envelope.ActionJSON(a, nonce)
	if err != nil {
		return nil, err
	}

	var orderIDs [][32]byte
	if batch, ok := a.(action.OrderBatch); ok {
		for _, place := range batch.PlaceItems() {
			orderIDs = append(orderIDs, singleItemOrderID(place.Order, nonce, account, signerPub))
		}
	}

	return &Prepared{
		MessageBytes:  preimage,
		MessageBase58: codec.EncodeBlob(preimage),
		MessageBase64: base64.StdEncoding.EncodeToString(preimage),
		MessageHex:    hex.EncodeToString(preimage),
		OrderIDs:      orderIDs,
		ActionJSON:    actionJSON,
		Account:       account,
		SignerPub:     signerPub,
		Nonce:         nonce,
		action:        a,
	}, nil
}

// Finalize combines a Prepared message with an externally produced 64-byte
// Ed25519 signature into a signed envelope. It does not re-verify the
// signature; callers that need that guarantee can call keypair.Verify
// themselves against p.MessageBytes and p.SignerPub.
func Finalize(p *Prepared, signature []byte) (*envelope.Envelope, error) {
	if len(signature) != 64 {
		return nil, ErrInvalidSignatureLength
	}
	var sig [64]byte
	copy(sig[:], signature)
	return envelope.New(p.ActionJSON, p.Account, p.SignerPub, sig, p.OrderIDs), nil
}
