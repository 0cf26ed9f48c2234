// Package huffcode implements two-pass Huffman coding over byte
// streams. A first pass counts symbol frequencies, a code tree is
// built from the counts, and a second pass replaces every byte with
// its variable-length codeword. Characters that appear more often get
// shorter codes, which is what makes the output smaller.
//
// The compressed stream carries no table or header of its own (see
// package bitstream for the framing); a decoder needs the same
// frequency table the encoder used, typically via the freqwire
// sidecar, and rebuilds an identical tree from it.
package huffcode

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var (
	// ErrUnknownSymbol means the input contains a byte the code table
	// has no entry for, i.e. the data being encoded is not the data
	// that was frequency-scanned.
	ErrUnknownSymbol = errors.New("huffcode: symbol not in code table")

	// ErrCorrupt means a decode walk stepped where the code tree has
	// no child: the stream and the tree do not belong together.
	ErrCorrupt = errors.New("huffcode: corrupt bit stream")

	// ErrTruncated means the stream ended in the middle of a codeword.
	ErrTruncated = errors.New("huffcode: bit stream ends mid-codeword")
)

// FrequencyTable maps each distinct input byte to its occurrence
// count. The keys are exactly the set of bytes seen in the input.
type FrequencyTable map[byte]uint64

// CountFrequencies reads r to the end and counts every byte. An empty
// input yields an empty table. Read errors propagate unmasked.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	ft := make(FrequencyTable)
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return nil, err
		}
		ft[b]++
	}
}

// Total returns the sum of all counts, i.e. the input length.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft {
		total += count
	}
	return total
}

// CompressBytes encodes data and returns the compressed stream along
// with the frequency table a decoder needs to reverse it.
func CompressBytes(data []byte) ([]byte, FrequencyTable, error) {
	ft, err := CountFrequencies(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	codes := Build(ft).Codes()
	var buf bytes.Buffer
	if err := Encode(codes, bytes.NewReader(data), &buf); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), ft, nil
}

// DecompressBytes decodes a stream produced by CompressBytes using the
// frequency table that accompanied it.
func DecompressBytes(data []byte, ft FrequencyTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(Build(ft), bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
