package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader walks a byte slice produced by Writer. It is used only by tests
// (this package's and pkg/action's) to assert byte layout; no non-test code
// in the module calls it, since the core only ever encodes actions and
// never decodes them.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for sequential reads starting at offset 0.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("codec: short read: need %d bytes at offset %d, have %d", n, r.pos, len(r.buf)-r.pos)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU64()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Reader) ReadBlob32() ([32]byte, error) {
	var out [32]byte
	b, err := r.take(32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func (r *Reader) ReadBlob64() ([64]byte, error) {
	var out [64]byte
	b, err := r.take(64)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
