package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompressFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	original := bytes.Repeat([]byte("huffman coding over a real file\n"), 200)
	require.NoError(t, os.WriteFile(src, original, 0o644))

	app := newApp()
	require.NoError(t, app.Run([]string{"huffenc", "compress", src}))

	packed, err := os.ReadFile(src + ".huf")
	require.NoError(t, err)
	assert.Less(t, len(packed), len(original), "compressed output should be smaller")
	_, err = os.Stat(src + ".huf.freq")
	require.NoError(t, err, "frequency sidecar must exist")

	require.NoError(t, app.Run([]string{"huffenc", "decompress", src + ".huf"}))

	got, err := os.ReadFile(src + ".huf.out")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestCompressEmptyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	app := newApp()
	require.NoError(t, app.Run([]string{"huffenc", "compress", src}))
	require.NoError(t, app.Run([]string{"huffenc", "decompress", src + ".huf"}))

	got, err := os.ReadFile(src + ".huf.out")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecompressCorruptStream(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(src, []byte("aaaa"), 0o644))

	app := newApp()
	require.NoError(t, app.Run([]string{"huffenc", "compress", src}))

	// The single-symbol tree only has a left branch, so a stream of
	// 1-bits must walk off it.
	require.NoError(t, os.WriteFile(src+".huf", []byte{0xff, 8}, 0o644))

	err := app.Run([]string{"huffenc", "decompress", src + ".huf"})
	require.Error(t, err)
	_, statErr := os.Stat(src + ".huf.out")
	assert.True(t, os.IsNotExist(statErr), "no partial output may survive a failed decode")
}

func TestDecompressMissingSidecar(t *testing.T) {
	dir := t.TempDir()
	huf := filepath.Join(dir, "orphan.huf")
	require.NoError(t, os.WriteFile(huf, []byte{0}, 0o644))

	app := newApp()
	assert.Error(t, app.Run([]string{"huffenc", "decompress", huf}))
}
