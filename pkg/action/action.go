// Package action implements the closed-set tagged-variant action model and
// its canonical wire encoding. This is the authentication substrate: the
// exchange's backend reproduces this exact byte sequence when it verifies
// a submitted envelope's signature, so every discriminant, field order,
// and width here is a contract rather than an implementation choice.
package action

import "github.com/uhyunpark/hyperlicked/pkg/codec"

// Discriminant values for the top-level Action sum type. Fixed; never
// renumber an existing entry.
const (
	DiscriminantOrder              uint32 = 0
	DiscriminantOracle             uint32 = 1
	DiscriminantFaucet             uint32 = 2
	DiscriminantUpdateUserSettings uint32 = 3
	DiscriminantAgentWalletCreate  uint32 = 4
	DiscriminantTestnetAdmin       uint32 = 5
)

// Action is any server-recognized operation kind. encodePayload appends
// only this action's variant payload to w; the discriminant and trailing
// nonce are written around it by Encode, and the account/signer blobs are
// appended by the caller (pkg/signer), per §4.3/§4.4 of the wire format.
type Action interface {
	Discriminant() uint32
	encodePayload(w *codec.Writer)
}

// Encode appends action's full per-§4.3 encoding — discriminant, payload,
// then nonce — to w. This is the "codec(A, n)" referred to throughout the
// spec; account and signer bytes are not part of it.
func Encode(w *codec.Writer, a Action, nonce uint64) {
	w.WriteU32(a.Discriminant())
	a.encodePayload(w)
	w.WriteU64(nonce)
}
