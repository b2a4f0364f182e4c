package huffman

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Stats describes one Compress or Decompress pass.
type Stats struct {
	InputBytes  int64 // bytes consumed from the source
	OutputBytes int64 // bytes handed to the sink
	HeaderBytes int64 // size of the serialized tree
	PayloadBits int64 // codeword bits, EOS included, padding excluded
}

// Ratio returns the output size as a percentage of the input size, or 0
// for empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes) * 100
}

// Compress reads all of r, which is rewound first, and writes the
// compressed form to w. r is read twice: once to count byte frequencies and
// once to encode. Neither stream is closed.
func Compress(w io.Writer, r io.ReadSeeker, opts ...Option) (Stats, error) {
	cfg := newConfig(opts)
	var st Stats

	cfg.stage(StageCount)
	freq, err := countFrequencies(r, cfg.BufferSize)
	if err != nil {
		return st, err
	}
	cfg.stage(StageBuildTree)
	root, err := BuildTree(freq)
	if err != nil {
		return st, err
	}
	if cfg.TreeHook != nil {
		cfg.TreeHook(root)
	}
	cfg.stage(StagePaths)
	paths, err := BuildPathTable(root, cfg.MaxCodeLen)
	if err != nil {
		return st, err
	}

	cfg.stage(StageEncode)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return st, errors.Wrap(err, "rewind input")
	}
	in := bufio.NewReaderSize(&countingReader{r: r, n: &st.InputBytes}, cfg.BufferSize)
	out := bufio.NewWriterSize(&countingWriter{w: w, n: &st.OutputBytes}, cfg.BufferSize)

	if err := WriteTree(out, root); err != nil {
		return st, err
	}
	st.HeaderBytes = headerSize(root)
	if err := encodeSymbols(out, in, paths, &st); err != nil {
		return st, err
	}
	if err := out.Flush(); err != nil {
		return st, errors.Wrap(err, "write output")
	}
	return st, nil
}

func encodeSymbols(out *bufio.Writer, in *bufio.Reader, paths *PathTable, st *Stats) error {
	bits := NewBitWriter(out)
	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		p := paths[b]
		if p.Len == 0 {
			// The input changed between the two passes.
			return errors.Errorf("byte %#02x has no codeword", b)
		}
		if err := bits.WriteBits(p.Bits, p.Len); err != nil {
			return err
		}
	}
	eos := paths[EOS]
	if err := bits.WriteBits(eos.Bits, eos.Len); err != nil {
		return err
	}
	if err := bits.Close(); err != nil {
		return err
	}
	st.PayloadBits = bits.Bits()
	return nil
}

// Decompress reads a stream written by Compress from r and writes the
// original bytes to w. It stops at the EOS codeword; anything after the
// padding of that byte is left unread or ignored. Neither stream is closed.
func Decompress(w io.Writer, r io.Reader, opts ...Option) (Stats, error) {
	cfg := newConfig(opts)
	var st Stats

	in := bufio.NewReaderSize(&countingReader{r: r, n: &st.InputBytes}, cfg.BufferSize)
	out := bufio.NewWriterSize(&countingWriter{w: w, n: &st.OutputBytes}, cfg.BufferSize)

	cfg.stage(StageReadTree)
	root, err := ReadTree(in)
	if err != nil {
		return st, err
	}
	st.HeaderBytes = headerSize(root)
	if cfg.TreeHook != nil {
		cfg.TreeHook(root)
	}

	cfg.stage(StageDecode)
	bits := NewBitReader(in)
	err = decodeSymbols(out, bits, root)
	st.PayloadBits = bits.Bits()
	if err != nil {
		return st, err
	}
	if err := out.Flush(); err != nil {
		return st, errors.Wrap(err, "write output")
	}
	// Read-ahead past the final byte is not part of this stream.
	st.InputBytes -= int64(in.Buffered())
	return st, nil
}

func decodeSymbols(out *bufio.Writer, bits *BitReader, root *Node) error {
	switch root.Kind {
	case KindEOS:
		// A lone EOS leaf encodes the empty input without payload bits.
		return nil
	case KindData:
		return errors.Wrap(ErrMalformedHeader, "tree root is a data leaf")
	}
	n := root
	for {
		switch n.Kind {
		case KindEOS:
			return nil
		case KindData:
			if err := out.WriteByte(n.Value); err != nil {
				return errors.Wrap(err, "write output")
			}
			n = root
			continue
		}
		bit, err := bits.ReadBit()
		if err == io.EOF {
			return errors.Wrapf(ErrTruncated, "input ends after %d payload bits", bits.Bits())
		}
		if err != nil {
			return err
		}
		if bit == 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
}

type countingReader struct {
	r io.Reader
	n *int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	*c.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n *int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	*c.n += int64(n)
	return n, err
}
