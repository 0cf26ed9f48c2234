package bitstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrBadTrailer is returned when the valid-bit trailer of a stream is
// inconsistent with the number of data bytes.
var ErrBadTrailer = errors.New("bitstream: invalid valid-bit trailer")

// Reader replays the bits of a stream produced by Writer, honoring the
// trailing metadata byte. It hands out exactly the bits that were
// written; padding bits are never visible.
type Reader struct {
	br        *bitio.Reader
	remaining uint64
}

// NewReader consumes the whole byte stream from r up front so the
// trailer can be interpreted before any bit is handed out. A fully
// empty stream is valid and holds zero bits.
func NewReader(r io.Reader) (*Reader, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return &Reader{}, nil
	}
	trailer := buf[len(buf)-1]
	data := buf[:len(buf)-1]
	switch {
	case trailer > 8:
		return nil, fmt.Errorf("%w: value %d", ErrBadTrailer, trailer)
	case trailer == 0 && len(data) > 0:
		return nil, fmt.Errorf("%w: zero valid bits with %d data bytes", ErrBadTrailer, len(data))
	case trailer > 0 && len(data) == 0:
		return nil, fmt.Errorf("%w: %d valid bits but no data bytes", ErrBadTrailer, trailer)
	}
	var total uint64
	if len(data) > 0 {
		total = 8*uint64(len(data)-1) + uint64(trailer)
	}
	return &Reader{
		br:        bitio.NewReader(bytes.NewReader(data)),
		remaining: total,
	}, nil
}

// Next reports whether at least one valid bit remains.
func (r *Reader) Next() bool { return r.remaining > 0 }

// Remaining returns the count of valid bits not yet read.
func (r *Reader) Remaining() uint64 { return r.remaining }

// ReadBit returns the next valid bit. Reading past the end of the
// stream returns io.ErrUnexpectedEOF.
func (r *Reader) ReadBit() (bool, error) {
	if r.remaining == 0 {
		return false, io.ErrUnexpectedEOF
	}
	bit, err := r.br.ReadBool()
	if err != nil {
		return false, err
	}
	r.remaining--
	return bit, nil
}
