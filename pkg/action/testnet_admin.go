package action

import "github.com/uhyunpark/hyperlicked/pkg/codec"

// AdminSubAction is the open-ended sum type of testnet-admin operations.
// Only whitelistFaucet is defined today; new sub-action kinds can be added
// by implementing this interface with an unused discriminant — existing
// discriminants never change (spec.md §9, open question 3).
type AdminSubAction interface {
	Discriminant() uint32
	encodeSubAction(w *codec.Writer)
}

const subActionDiscriminantWhitelistFaucet uint32 = 0

// WhitelistFaucet adds or removes Account from the faucet's allowlist.
type WhitelistFaucet struct {
	Account   [32]byte
	Whitelist bool
}

func (WhitelistFaucet) Discriminant() uint32 { return subActionDiscriminantWhitelistFaucet }

func (w WhitelistFaucet) encodeSubAction(buf *codec.Writer) {
	buf.WriteU32(w.Discriminant())
	buf.WriteBlob32(w.Account)
	buf.WriteBool(w.Whitelist)
}

// TestnetAdmin carries an ordered batch of admin sub-actions.
type TestnetAdmin struct {
	SubActions []AdminSubAction
}

func (TestnetAdmin) Discriminant() uint32 { return DiscriminantTestnetAdmin }

func (t TestnetAdmin) encodePayload(w *codec.Writer) {
	w.WriteSeqLen(len(t.SubActions))
	for _, s := range t.SubActions {
		s.encodeSubAction(w)
	}
}
