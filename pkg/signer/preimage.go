package signer

import (
	sha256 "github.com/minio/sha256-simd"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/codec"
)

// buildPreimage assembles codec(a, nonce) ‖ account ‖ signer exactly as
// spec.md §4.4 requires — the signed pre-image always ends with the two
// pubkeys, in that order, regardless of action kind.
func buildPreimage(a action.Action, nonce uint64, account, signerPub [32]byte) []byte {
	w := codec.NewWriter(0)
	action.Encode(w, a, nonce)
	w.WriteBlob32(account)
	w.WriteBlob32(signerPub)
	return w.Bytes()
}

// orderID returns the content-addressed order id for a single place item's
// pre-image: SHA-256 of the bytes the signature itself is computed over,
// using minio/sha256-simd for the hardware-accelerated path the rest of
// this corpus reaches for on hot hashing paths.
func orderID(preimage []byte) [32]byte {
	return sha256.Sum256(preimage)
}

// singleItemPreimage builds the hypothetical pre-image for a batch that
// contained only item, reusing the same nonce/account/signer as the real
// envelope — this is the group-mode order-id rule from spec.md §4.4/§4.5:
// each place item's id is computed as if it had been signed alone.
func singleItemPreimage(item action.PlaceOrder, nonce uint64, account, signerPub [32]byte) []byte {
	single := action.OrderBatch{Items: []action.OrderItem{item}}
	return buildPreimage(single, nonce, account, signerPub)
}
