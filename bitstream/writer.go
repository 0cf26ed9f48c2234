// Package bitstream packs individual bits into a byte-aligned stream
// and reads them back.
//
// The stream layout is a run of data bytes, filled most significant
// bit first, followed by exactly one trailing metadata byte whose
// value (0-8) is the number of valid bits in the final data byte.
// The trailer is present even when the data ends on a byte boundary,
// so a reader always has an unconditional place to find the bit count.
package bitstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrClosed is returned when writing to a Writer after Close.
var ErrClosed = errors.New("bitstream: writer is closed")

// Writer accumulates bits into bytes and flushes each completed byte
// to the underlying sink. Close must be called to emit the zero-padded
// final byte and the valid-bit trailer.
type Writer struct {
	out    io.Writer
	bw     *bitio.Writer
	nbits  uint64
	closed bool
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w, bw: bitio.NewWriter(w)}
}

// WriteBit appends a single bit to the stream.
func (w *Writer) WriteBit(bit bool) error {
	if w.closed {
		return ErrClosed
	}
	if err := w.bw.WriteBool(bit); err != nil {
		return err
	}
	w.nbits++
	return nil
}

// WriteCode appends the n low-order bits of bits, most significant
// bit first.
func (w *Writer) WriteCode(bits uint64, n uint8) error {
	if w.closed {
		return ErrClosed
	}
	if err := w.bw.WriteBits(bits, n); err != nil {
		return err
	}
	w.nbits += uint64(n)
	return nil
}

// BitsWritten returns the number of payload bits written so far.
func (w *Writer) BitsWritten() uint64 { return w.nbits }

// Close zero-pads and flushes the in-progress byte, then appends the
// trailer byte. It does not close the underlying writer. Calling Close
// more than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.bw.Close(); err != nil {
		return err
	}
	trailer := byte(w.nbits % 8)
	if w.nbits > 0 && trailer == 0 {
		trailer = 8
	}
	if _, err := w.out.Write([]byte{trailer}); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}
	return nil
}
