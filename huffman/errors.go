package huffman

import "github.com/pkg/errors"

var (
	// ErrMalformedHeader reports a tree header that could not have been
	// written by Compress.
	ErrMalformedHeader = errors.New("not a valid compressed stream")
	// ErrTruncated reports a stream that ended before the EOS codeword.
	ErrTruncated = errors.New("compressed stream is truncated")
	// ErrEmptyTable reports a frequency table without live symbols.
	ErrEmptyTable = errors.New("frequency table has no live symbols")
	// ErrMissingEOS reports a frequency table whose EOS slot was pruned.
	ErrMissingEOS = errors.New("frequency table has no EOS leaf")
	// ErrDegenerateTree reports a tree whose root is a leaf.
	ErrDegenerateTree = errors.New("tree root is a leaf")
	// ErrCodeTooLong reports a codeword longer than the configured limit.
	ErrCodeTooLong = errors.New("codeword too long")
	// ErrWriterClosed reports a write after the terminating flush.
	ErrWriterClosed = errors.New("bit writer already flushed")
)
