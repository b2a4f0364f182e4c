package huffman

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Path is a codeword: the low Len bits of Bits, read from the most
// significant end. Left is 0, right is 1.
type Path struct {
	Bits uint64
	Len  int
}

func (p Path) String() string {
	if p.Len == 0 {
		return "-"
	}
	s := fmt.Sprintf("%064b", p.Bits)
	return s[64-p.Len:]
}

// A PathTable maps every symbol to its codeword. Symbols that are not in the
// tree have Len 0.
type PathTable [NumSymbols]Path

// BuildPathTable walks root once and records the path to every leaf.
// Paths longer than maxLen bits are rejected, as is a tree without forks.
func BuildPathTable(root *Node, maxLen int) (*PathTable, error) {
	if root.IsLeaf() {
		return nil, ErrDegenerateTree
	}
	if maxLen <= 0 || maxLen > MaxCodeLen {
		maxLen = MaxCodeLen
	}
	var p PathTable
	if err := fillPathTable(root, &p, 0, 0, maxLen); err != nil {
		return nil, err
	}
	return &p, nil
}

func fillPathTable(n *Node, p *PathTable, pos uint64, length, maxLen int) error {
	if n.IsLeaf() {
		p[n.Symbol()] = Path{Bits: pos, Len: length}
		return nil
	}
	if length == maxLen {
		return errors.Wrapf(ErrCodeTooLong, "tree is deeper than %d", maxLen)
	}
	if err := fillPathTable(n.Left, p, pos<<1, length+1, maxLen); err != nil {
		return err
	}
	return fillPathTable(n.Right, p, pos<<1|1, length+1, maxLen)
}

// String lists the symbols that have a codeword, one per line.
func (p *PathTable) String() string {
	var sb strings.Builder
	for sym, path := range p {
		if path.Len == 0 {
			continue
		}
		if sym == EOS {
			sb.WriteString("EOS")
		} else {
			fmt.Fprintf(&sb, "%.2X", sym)
		}
		fmt.Fprintf(&sb, "\t%s\n", path)
	}
	return sb.String()
}
