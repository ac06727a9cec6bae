// Package codec implements the canonical little-endian binary primitives
// that the exchange's wire format is built from. Every writer here is a
// total, allocation-light function over an in-memory buffer: no writer can
// fail, which keeps the action codec built on top of it (pkg/action) a pure
// function of its input.
package codec

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer accumulates a canonical binary pre-image. The zero value is an
// empty Writer ready to use; NewWriter additionally pre-allocates.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns a Writer with sizeHint bytes pre-allocated. A caller
// that knows an upper bound on the encoded size can pass it to avoid buffer
// growth; zero or a negative hint pre-allocates nothing (pkg/signer passes
// zero).
func NewWriter(sizeHint int) *Writer {
	w := &Writer{}
	if sizeHint > 0 {
		w.buf.Grow(sizeHint)
	}
	return w
}

// Bytes returns the accumulated pre-image. The returned slice aliases the
// Writer's internal buffer and must not be retained across further writes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteBool appends a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteU32 appends v as 4 little-endian bytes.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteU64 appends v as 8 little-endian bytes.
func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteF64 appends the raw IEEE-754 bit pattern of v as 8 little-endian
// bytes. NaN payloads and the sign of zero are preserved verbatim — this
// writer never rounds or canonicalizes.
func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WriteString appends the UTF-8 byte length of s as a little-endian u64,
// followed by the raw bytes. An empty string writes eight zero bytes and no
// body.
func (w *Writer) WriteString(s string) {
	w.WriteU64(uint64(len(s)))
	w.buf.WriteString(s)
}

// WriteBlob32 appends exactly 32 raw bytes, unprefixed. The fixed-size
// array parameter makes any other width a compile-time error.
func (w *Writer) WriteBlob32(b [32]byte) {
	w.buf.Write(b[:])
}

// WriteBlob64 appends exactly 64 raw bytes, unprefixed.
func (w *Writer) WriteBlob64(b [64]byte) {
	w.buf.Write(b[:])
}

// WriteOptionAbsent appends the single zero byte that represents an absent
// Option<T>.
func (w *Writer) WriteOptionAbsent() {
	w.buf.WriteByte(0)
}

// WriteOptionPresent appends the single one byte that precedes a present
// Option<T>'s payload. Callers write the payload themselves immediately
// after calling this.
func (w *Writer) WriteOptionPresent() {
	w.buf.WriteByte(1)
}

// WriteSeqLen appends a sequence's element count as a little-endian u64. An
// empty sequence writes eight zero bytes and no elements.
func (w *Writer) WriteSeqLen(n int) {
	w.WriteU64(uint64(n))
}
