// huffenc is a two-pass Huffman file compressor. compress writes the
// bit-packed stream next to a frequency-table sidecar; decompress
// rebuilds the code tree from the sidecar and reverses the stream.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"
)

var log = logrus.New()

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "huffenc"
	app.Usage = "two-pass Huffman file compressor"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	app.Commands = []cli.Command{
		{
			Name:      "compress",
			Usage:     "compress a file, writing <file>.huf and <file>.huf.freq",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Usage: "compressed output path (sidecar gets a .freq suffix)",
				},
			},
			Action: compress,
		},
		{
			Name:      "decompress",
			Usage:     "decompress a .huf file using its .freq sidecar",
			ArgsUsage: "<file.huf>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Usage: "decompressed output path",
				},
				cli.StringFlag{
					Name:  "freq",
					Usage: "frequency sidecar path (default <file.huf>.freq)",
				},
			},
			Action: decompress,
		},
	}
	return app
}
