package huffman

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// A FrequencyTable holds the initial leaves, indexed by symbol. Slots of
// bytes that never occur are nil; the EOS slot is always set.
type FrequencyTable [NumSymbols]*Node

// NewFrequencyTable builds the initial leaves from per-byte counts.
func NewFrequencyTable(counts [256]uint64) *FrequencyTable {
	var t FrequencyTable
	for b, c := range counts {
		if c == 0 {
			continue
		}
		t[b] = NewLeaf(byte(b), c)
	}
	// EOS is emitted once at encode time but counts as zero, which makes
	// it the first candidate for merging.
	t[EOS] = NewEOSLeaf(0)
	return &t
}

// CountFrequencies rewinds r to its start and counts every byte in it.
func CountFrequencies(r io.ReadSeeker) (*FrequencyTable, error) {
	return countFrequencies(r, defaultBufferSize)
}

func countFrequencies(r io.ReadSeeker, bufSize int) (*FrequencyTable, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewind input")
	}
	var counts [256]uint64
	br := bufio.NewReaderSize(r, bufSize)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read input")
		}
		counts[b]++
	}
	return NewFrequencyTable(counts), nil
}

// Live returns the number of non-nil slots.
func (t *FrequencyTable) Live() int {
	n := 0
	for _, node := range t {
		if node != nil {
			n++
		}
	}
	return n
}
