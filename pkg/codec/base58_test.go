package codec

import "testing"

func TestDecodeBlob32WrongLengthRejected(t *testing.T) {
	// 16 raw bytes base58-encoded: decodes fine, wrong length.
	short := EncodeBlob(make([]byte, 16))
	if _, err := DecodeBlob32(short); err == nil {
		t.Error("expected error for 16-byte payload decoded as 32 bytes")
	}
}

func TestDecodeBlob32RoundTrip(t *testing.T) {
	var want [32]byte
	for i := range want {
		want[i] = byte(i * 3)
	}
	s := EncodeBlob(want[:])
	got, err := DecodeBlob32(s)
	if err != nil {
		t.Fatalf("DecodeBlob32: %v", err)
	}
	if got != want {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestDecodeBlob64RoundTrip(t *testing.T) {
	var want [64]byte
	for i := range want {
		want[i] = byte(i * 7)
	}
	s := EncodeBlob(want[:])
	got, err := DecodeBlob64(s)
	if err != nil {
		t.Fatalf("DecodeBlob64: %v", err)
	}
	if got != want {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestDecodeBlobInvalidBase58(t *testing.T) {
	if _, err := DecodeBlob32("not-valid-base58-0OIl"); err == nil {
		t.Error("expected error for invalid base58 characters")
	}
}
