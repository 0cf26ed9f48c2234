package huffcode

import (
	"bytes"
	"testing"
)

func FuzzRoundtrip(f *testing.F) {
	// Seed corpus
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("aaaa"))
	f.Add([]byte("hello world"))
	f.Add([]byte{0x00, 0xff, 0x00, 0xff})
	f.Add(bytes.Repeat([]byte("abc"), 500))

	f.Fuzz(func(t *testing.T, data []byte) {
		packed, ft, err := CompressBytes(data)
		if err != nil {
			t.Fatalf("CompressBytes failed: %v", err)
		}
		got, err := DecompressBytes(packed, ft)
		if err != nil {
			t.Fatalf("DecompressBytes failed: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("roundtrip failed.\nOriginal: %v\nDecoded: %v", data, got)
		}
	})
}

// FuzzDecodeGarbage feeds arbitrary bytes to the decoder with a fixed
// tree; it must either decode cleanly or fail with an error, never
// panic.
func FuzzDecodeGarbage(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{0xff, 0xff, 0x03})
	f.Add([]byte{0b10000000, 1})

	root := Build(FrequencyTable{'a': 3, 'b': 2, 'c': 1})
	f.Fuzz(func(t *testing.T, stream []byte) {
		var buf bytes.Buffer
		_ = Decode(root, bytes.NewReader(stream), &buf)
	})
}
