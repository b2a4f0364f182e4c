// Command huff compresses and decompresses files with a Huffman code.
//
//	huff [-c|-d] [-o outfile] [-p] [-verify] [-v|-q] [infile]
//
// Input defaults to stdin and output to stdout. Diagnostics, the tree
// diagram (-p) and the compression ratio go to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Mode uint8

const (
	CompressMode Mode = iota
	DecompressMode
)

func (m Mode) String() string {
	if m == DecompressMode {
		return "decompress"
	}
	return "compress"
}

const usage = `usage: huff [-c|-d] [-o outfile] [-p] [-verify] [-v|-q] [infile]

  -c        compress (default)
  -d        decompress
  -o FILE   write to FILE instead of stdout
  -p        print the Huffman tree to stderr
  -verify   after compressing, decompress the result and compare checksums
  -v        verbose logging
  -q        only log warnings and errors
  -h        show this help
`

type options struct {
	mode      Mode
	inName    string
	outName   string
	printTree bool
	verify    bool
	level     logrus.Level
	help      bool
}

var errUsage = errors.New("invalid arguments")

func parseArgs(args []string) (options, error) {
	opts := options{mode: CompressMode, level: logrus.InfoLevel}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c":
			opts.mode = CompressMode
		case "-d":
			opts.mode = DecompressMode
		case "-o":
			if i+1 >= len(args) {
				return opts, errors.Wrap(errUsage, "-o must be followed by an output file")
			}
			opts.outName = args[i+1]
			i++
		case "-p":
			opts.printTree = true
		case "-verify":
			opts.verify = true
		case "-v":
			opts.level = logrus.DebugLevel
		case "-q":
			opts.level = logrus.WarnLevel
		case "-h", "-help", "--help":
			opts.help = true
		default:
			if len(args[i]) > 1 && args[i][0] == '-' {
				return opts, errors.Wrapf(errUsage, "unknown flag %s", args[i])
			}
			if opts.inName != "" {
				return opts, errors.Wrap(errUsage, "only one input file may be given")
			}
			opts.inName = args[i]
		}
	}
	if opts.verify && opts.mode != CompressMode {
		return opts, errors.Wrap(errUsage, "-verify only applies to compression")
	}
	return opts, nil
}

func main() {
	log := logrus.New()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		log.WithError(err).Fatal("huff")
	}
	if opts.help {
		fmt.Fprint(os.Stdout, usage)
		return
	}
	log.SetLevel(opts.level)

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr, log); err != nil {
		log.WithError(err).Fatalf("%s failed", opts.mode)
	}
}

// run opens the streams named by opts and hands them to the codec. An empty
// name selects stdin or stdout. The input is opened before the output is
// created, so a bad input name leaves no output file behind.
func run(opts options, stdin io.Reader, stdout, stderr io.Writer, log *logrus.Logger) (err error) {
	var (
		in      io.Reader
		seeker  io.ReadSeeker
		closeIn func()
	)
	if opts.mode == DecompressMode {
		in, closeIn, err = openInput(opts.inName, stdin)
	} else {
		seeker, closeIn, err = openSeekable(opts.inName, stdin)
	}
	if err != nil {
		return err
	}
	defer closeIn()

	var out io.Writer = stdout
	if opts.outName != "" {
		f, cerr := os.Create(opts.outName)
		if cerr != nil {
			return errors.Wrap(cerr, "create output")
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close output")
			}
		}()
		out = f
	}

	if opts.mode == DecompressMode {
		return decompressStream(in, out, stderr, opts, log)
	}
	return compressStream(seeker, out, stderr, opts, log)
}
