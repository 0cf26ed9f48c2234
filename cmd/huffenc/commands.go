package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/garrettjohnston99/Huffman-Encoder/freqwire"
	"github.com/garrettjohnston99/Huffman-Encoder/huffcode"
)

func compress(ctx *cli.Context) error {
	src := ctx.Args().First()
	if src == "" {
		return cli.NewExitError("compress: missing input file", 1)
	}
	dst := ctx.String("output")
	if dst == "" {
		dst = src + ".huf"
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	ft, err := huffcode.CountFrequencies(in)
	if err != nil {
		return fmt.Errorf("scan %s: %w", src, err)
	}
	// Second pass over the same file.
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	codes := huffcode.Build(ft).Codes()
	if err := writeOutput(dst, func(w io.Writer) error {
		return huffcode.Encode(codes, in, w)
	}); err != nil {
		return err
	}

	if err := freqwire.WriteFile(dst+".freq", ft); err != nil {
		os.Remove(dst)
		return err
	}

	log.WithFields(logrus.Fields{
		"input":   src,
		"output":  dst,
		"symbols": len(ft),
		"bytes":   ft.Total(),
	}).Info("compressed")
	return nil
}

func decompress(ctx *cli.Context) error {
	src := ctx.Args().First()
	if src == "" {
		return cli.NewExitError("decompress: missing input file", 1)
	}
	dst := ctx.String("output")
	if dst == "" {
		dst = src + ".out"
	}
	sidecar := ctx.String("freq")
	if sidecar == "" {
		sidecar = src + ".freq"
	}

	ft, err := freqwire.ReadFile(sidecar)
	if err != nil {
		return err
	}
	root := huffcode.Build(ft)

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := writeOutput(dst, func(w io.Writer) error {
		return huffcode.Decode(root, in, w)
	}); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input":  src,
		"output": dst,
	}).Info("decompressed")
	return nil
}

// writeOutput creates path, runs fn against the file, and removes the
// file again if fn or the close fails, so no ambiguous partial output
// survives an aborted run.
func writeOutput(path string, fn func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(out); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
