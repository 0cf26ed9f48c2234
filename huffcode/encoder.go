package huffcode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/garrettjohnston99/Huffman-Encoder/bitstream"
)

// Encode writes the codeword for every byte of r to w, most
// significant bit first, then closes the bit stream, which appends the
// valid-bit trailer. Encoding a byte with no table entry fails with
// ErrUnknownSymbol; the output is left truncated in that case, never
// silently wrong.
func Encode(codes CodeTable, r io.Reader, w io.Writer) error {
	bw := bitstream.NewWriter(w)
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		code, ok := codes[b]
		if !ok {
			return fmt.Errorf("%w: 0x%02x", ErrUnknownSymbol, b)
		}
		if err := bw.WriteCode(code.Bits, code.Len); err != nil {
			return err
		}
	}
	return bw.Close()
}
