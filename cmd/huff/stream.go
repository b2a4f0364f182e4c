package main

import (
	"bytes"
	"io"
	"os"

	"github.com/atiedebee/huffstream/huffman"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// openSeekable opens name, or buffers all of stdin when name is empty,
// since the compressor reads its input twice.
func openSeekable(name string, stdin io.Reader) (io.ReadSeeker, func(), error) {
	if name == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, errors.Wrap(err, "read stdin")
		}
		return bytes.NewReader(data), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	return f, func() { f.Close() }, nil
}

// openInput opens name for a single pass, or returns stdin when name is empty.
func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	return f, func() { f.Close() }, nil
}

func treeLogger(stderr io.Writer, opts options, log *logrus.Logger) huffman.Option {
	return huffman.WithTreeHook(func(root *huffman.Node) {
		log.WithFields(logrus.Fields{
			"leaves": root.Leaves(),
			"depth":  root.Depth(),
		}).Debug("Huffman tree ready")
		if opts.printTree {
			if err := huffman.PrintTree(stderr, root); err != nil {
				log.WithError(err).Warn("could not print tree")
			}
		}
	})
}

var stageMessages = map[huffman.Stage]string{
	huffman.StageCount:     "Building frequency table...",
	huffman.StageBuildTree: "Building huffman tree...",
	huffman.StagePaths:     "Filling path table...",
	huffman.StageEncode:    "Writing to file...",
	huffman.StageReadTree:  "Reading huffman tree...",
	huffman.StageDecode:    "Decoding...",
}

func progressLogger(log *logrus.Logger) huffman.Option {
	return huffman.WithProgress(func(s huffman.Stage) {
		log.Debug(stageMessages[s])
	})
}

func compressStream(in io.ReadSeeker, out, stderr io.Writer, opts options, log *logrus.Logger) error {
	log.Debug("Compressing file...")

	var copyOut *bytes.Buffer
	if opts.verify {
		copyOut = new(bytes.Buffer)
		out = io.MultiWriter(out, copyOut)
	}

	st, err := huffman.Compress(out, in, treeLogger(stderr, opts, log), progressLogger(log))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input_bytes":  st.InputBytes,
		"output_bytes": st.OutputBytes,
		"header_bytes": st.HeaderBytes,
		"payload_bits": st.PayloadBits,
		"ratio":        st.Ratio(),
	}).Infof("Compression complete, ratio %.2f%%", st.Ratio())

	if opts.verify {
		return verify(in, copyOut, log)
	}
	return nil
}

func decompressStream(in io.Reader, out, stderr io.Writer, opts options, log *logrus.Logger) error {
	log.Debug("Decompressing file...")
	st, err := huffman.Decompress(out, in, treeLogger(stderr, opts, log), progressLogger(log))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input_bytes":  st.InputBytes,
		"output_bytes": st.OutputBytes,
	}).Info("Decompression complete")
	return nil
}

// verify decompresses compressed and checks that it hashes to the same
// value as the original input.
func verify(original io.ReadSeeker, compressed io.Reader, log *logrus.Logger) error {
	if _, err := original.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewind input")
	}
	want := xxhash.New()
	if _, err := io.Copy(want, original); err != nil {
		return errors.Wrap(err, "hash input")
	}
	got := xxhash.New()
	if _, err := huffman.Decompress(got, compressed); err != nil {
		return errors.Wrap(err, "verify")
	}
	if got.Sum64() != want.Sum64() {
		return errors.Errorf("verify: checksum mismatch: input %016x, round trip %016x", want.Sum64(), got.Sum64())
	}
	log.WithField("xxhash", want.Sum64()).Info("Round trip verified")
	return nil
}
