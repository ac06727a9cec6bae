package codec

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Strict-length base58 decode/encode for the three opaque blob widths the
// exchange's JSON boundary uses: 32-byte keys/hashes and 64-byte
// signatures. Any base58 string that doesn't decode to exactly the
// expected width is rejected rather than silently truncated or padded.

// EncodeBlob base58-encodes a fixed-width byte slice for the JSON boundary.
func EncodeBlob(b []byte) string {
	return base58.Encode(b)
}

// DecodeBlob base58-decodes s and verifies it is exactly wantLen bytes.
func DecodeBlob(s string, wantLen int) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("base58 decode: %w", err)
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("base58 decode: got %d bytes, want %d", len(b), wantLen)
	}
	return b, nil
}

// DecodeBlob32 decodes s into a fixed 32-byte array (pubkey or hash).
func DecodeBlob32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := DecodeBlob(s, 32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// DecodeBlob64 decodes s into a fixed 64-byte array (signature or expanded
// Ed25519 secret).
func DecodeBlob64(s string) ([64]byte, error) {
	var out [64]byte
	b, err := DecodeBlob(s, 64)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
