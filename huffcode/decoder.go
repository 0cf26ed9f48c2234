package huffcode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/garrettjohnston99/Huffman-Encoder/bitstream"
)

// Decode replays the bit stream from r against the code tree, walking
// left on 0 and right on 1 from the root, emitting the leaf symbol at
// the end of each walk and starting over. The tree must be the one the
// stream was encoded with (Build is deterministic, so rebuilding it
// from the same frequency table is enough).
//
// A step onto a missing child fails with ErrCorrupt; a stream that
// ends between leaves fails with ErrTruncated. A nil tree is only
// valid for a stream holding zero bits.
func Decode(root *Node, r io.Reader, w io.Writer) error {
	br, err := bitstream.NewReader(r)
	if err != nil {
		return err
	}
	if root == nil {
		if br.Next() {
			return fmt.Errorf("%w: %d bits but empty code tree", ErrCorrupt, br.Remaining())
		}
		return nil
	}

	bw := bufio.NewWriter(w)
	node := root
	for br.Next() {
		bit, err := br.ReadBit()
		if err != nil {
			return err
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node == nil {
			return fmt.Errorf("%w: walk stepped off the tree", ErrCorrupt)
		}
		if node.Leaf {
			if err := bw.WriteByte(node.Symbol); err != nil {
				return err
			}
			node = root
		}
	}
	if node != root {
		return ErrTruncated
	}
	return bw.Flush()
}
