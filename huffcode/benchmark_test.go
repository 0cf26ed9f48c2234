package huffcode

import (
	"bytes"
	"strings"
	"testing"
)

func benchData() []byte {
	sample := "The quick brown fox jumps over the lazy dog. " +
		"Common English letters dominate the frequency table, which is " +
		"exactly the distribution Huffman coding rewards. "
	return []byte(strings.Repeat(sample, 700)) // ~100KB
}

func BenchmarkCompress(b *testing.B) {
	data := benchData()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := CompressBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchData()
	packed, ft, err := CompressBytes(data)
	if err != nil {
		b.Fatal(err)
	}
	root := Build(ft)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := Decode(root, bytes.NewReader(packed), &buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	ft, err := CountFrequencies(bytes.NewReader(benchData()))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if root := Build(ft); root == nil {
			b.Fatal("nil tree")
		}
	}
}
