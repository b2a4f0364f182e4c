package huffman

import (
	"bufio"
	"io"

	bitstream "github.com/dgryski/go-bitstream"
	"github.com/pkg/errors"
)

// A BitWriter packs codewords MSB-first into bytes. Each BitWriter belongs
// to one output stream for one encode pass; complete bytes go to the
// underlying writer as soon as they fill up, and Close pads the last partial
// byte with zero bits.
type BitWriter struct {
	bw     *bitstream.BitWriter
	nbits  int64
	closed bool
	err    error
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{bw: bitstream.NewWriter(w)}
}

// WriteBits appends the low length bits of pattern, most significant first.
func (w *BitWriter) WriteBits(pattern uint64, length int) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrWriterClosed
	}
	if length < 0 || length > MaxCodeLen {
		return errors.Wrapf(ErrCodeTooLong, "cannot write %d bits", length)
	}
	if err := w.bw.WriteBits(pattern, length); err != nil {
		w.err = errors.Wrap(err, "write bits")
		return w.err
	}
	w.nbits += int64(length)
	return nil
}

// Close flushes the partial byte, if any. Further writes fail with
// ErrWriterClosed. It does not close the underlying writer.
func (w *BitWriter) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.bw.Flush(bitstream.Zero); err != nil {
		w.err = errors.Wrap(err, "flush bits")
	}
	return w.err
}

// Bits returns the number of bits written so far, padding excluded.
func (w *BitWriter) Bits() int64 {
	return w.nbits
}

// A BitReader hands out the bits of an input stream one at a time, most
// significant bit of each byte first. Bytes are fetched only when needed.
type BitReader struct {
	br    *bitstream.BitReader
	nbits int64
}

// NewBitReader returns a BitReader that reads from r. If r is not an
// io.ByteReader it is wrapped in a bufio.Reader.
func NewBitReader(r io.Reader) *BitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &BitReader{br: bitstream.NewReader(byteSource{br})}
}

// byteSource feeds the bit reader one byte per Read. A plain io.Reader may
// return (0, nil), which the bit reader would take as a zero byte; ReadByte
// either yields a byte or fails.
type byteSource struct {
	r io.ByteReader
}

func (s byteSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}

// ReadBit returns the next bit as 0 or 1. When no further byte can be
// obtained it returns io.EOF.
func (r *BitReader) ReadBit() (uint8, error) {
	bit, err := r.br.ReadBit()
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "read bit")
	}
	r.nbits++
	if bit == bitstream.One {
		return 1, nil
	}
	return 0, nil
}

// Bits returns the number of bits read so far.
func (r *BitReader) Bits() int64 {
	return r.nbits
}
