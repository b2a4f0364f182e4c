package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// A tree over 257 leaves is never deeper than this.
const maxTreeDepth = NumSymbols - 1

// WriteTree serializes root in pre-order, one tag byte per node. A data
// leaf is followed by its value; forks are followed by their left and then
// their right subtree.
func WriteTree(w io.ByteWriter, root *Node) error {
	if err := w.WriteByte(byte(root.Kind)); err != nil {
		return errors.Wrap(err, "write tree")
	}
	switch root.Kind {
	case KindData:
		if err := w.WriteByte(root.Value); err != nil {
			return errors.Wrap(err, "write tree")
		}
	case KindFork:
		if err := WriteTree(w, root.Left); err != nil {
			return err
		}
		return WriteTree(w, root.Right)
	}
	return nil
}

// ReadTree rebuilds a tree written by WriteTree. Unknown tags, trees that
// could not come from a 257-symbol alphabet and headers that repeat a symbol
// are reported as ErrMalformedHeader; a header that ends early is
// ErrTruncated.
func ReadTree(r io.ByteReader) (*Node, error) {
	tr := treeReader{r: r}
	root, err := tr.read(0)
	if err != nil {
		return nil, err
	}
	if !tr.seen[EOS] {
		return nil, errors.Wrap(ErrMalformedHeader, "tree has no EOS leaf")
	}
	return root, nil
}

// headerSize returns the number of bytes WriteTree produces for root.
func headerSize(root *Node) int64 {
	switch root.Kind {
	case KindData:
		return 2
	case KindFork:
		return 1 + headerSize(root.Left) + headerSize(root.Right)
	}
	return 1
}

type treeReader struct {
	r      io.ByteReader
	offset int64
	seen   [NumSymbols]bool
}

func (tr *treeReader) readByte() (byte, error) {
	b, err := tr.r.ReadByte()
	if err == io.EOF {
		return 0, errors.Wrapf(ErrTruncated, "tree header ends at offset %d", tr.offset)
	}
	if err != nil {
		return 0, errors.Wrap(err, "read tree")
	}
	tr.offset++
	return b, nil
}

func (tr *treeReader) read(depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, errors.Wrapf(ErrMalformedHeader, "tree deeper than %d", maxTreeDepth)
	}
	tag, err := tr.readByte()
	if err != nil {
		return nil, err
	}
	var n *Node
	switch Kind(tag) {
	case KindFork:
		left, err := tr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := tr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		return NewFork(left, right), nil
	case KindData:
		b, err := tr.readByte()
		if err != nil {
			return nil, err
		}
		n = NewLeaf(b, 0)
	case KindEOS:
		n = NewEOSLeaf(0)
	default:
		return nil, errors.Wrapf(ErrMalformedHeader, "unknown tag %#02x at offset %d", tag, tr.offset-1)
	}
	sym := n.Symbol()
	if tr.seen[sym] {
		return nil, errors.Wrapf(ErrMalformedHeader, "symbol %d appears twice", sym)
	}
	tr.seen[sym] = true
	return n, nil
}
