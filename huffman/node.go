// Package huffman implements a lossless byte-stream compressor built on a
// Huffman tree with an explicit end-of-stream symbol.
//
// A compressed stream is the pre-order serialization of the tree followed by
// the MSB-first codewords of every input byte, the codeword of the EOS
// symbol, and zero bits up to the next byte boundary. There is no magic
// number or length prefix; the tree header terminates itself.
package huffman

import (
	"fmt"
	"strings"
)

const (
	// NumSymbols is the size of the alphabet: every byte value plus EOS.
	NumSymbols = 257
	// EOS is the symbol index of the end-of-stream sentinel.
	EOS = 256
	// MaxCodeLen is the longest codeword a path table can hold.
	MaxCodeLen = 64
)

// Kind tells the three node variants apart. The values double as the tag
// bytes of the serialized tree.
type Kind uint8

const (
	KindData Kind = 0x00
	KindFork Kind = 0x01
	KindEOS  Kind = 0x02
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindFork:
		return "fork"
	case KindEOS:
		return "eos"
	}
	return fmt.Sprintf("kind(%#02x)", uint8(k))
}

// A Node is a leaf holding a byte value, the EOS leaf, or a fork with
// exactly two children. A fork owns its children; subtrees are never shared.
type Node struct {
	Kind  Kind
	Value byte   // valid for KindData only
	Freq  uint64 // for a fork, the sum of its children's frequencies

	Left, Right *Node // set for KindFork only
}

// NewLeaf returns a data leaf for b.
func NewLeaf(b byte, freq uint64) *Node {
	return &Node{Kind: KindData, Value: b, Freq: freq}
}

// NewEOSLeaf returns the end-of-stream leaf.
func NewEOSLeaf(freq uint64) *Node {
	return &Node{Kind: KindEOS, Freq: freq}
}

// NewFork joins two subtrees. Both children are required.
func NewFork(left, right *Node) *Node {
	if left == nil || right == nil {
		panic("huffman: fork needs two children")
	}
	return &Node{
		Kind:  KindFork,
		Freq:  left.Freq + right.Freq,
		Left:  left,
		Right: right,
	}
}

// IsLeaf reports whether n is a data or EOS leaf.
func (n *Node) IsLeaf() bool {
	return n.Kind != KindFork
}

// Symbol returns the alphabet index of a leaf: the byte value, or EOS.
// It returns -1 for a fork.
func (n *Node) Symbol() int {
	switch n.Kind {
	case KindData:
		return int(n.Value)
	case KindEOS:
		return EOS
	}
	return -1
}

// Depth returns the length of the longest root-to-leaf path below n.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Leaves returns the number of leaves below n.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// String dumps the subtree in a nested, one node per line form.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder) {
	switch n.Kind {
	case KindData:
		fmt.Fprintf(sb, "Data:[%.2X]\tFreq:[%d]\n", n.Value, n.Freq)
	case KindEOS:
		sb.WriteString("EOS\n")
	case KindFork:
		sb.WriteString("Left:[\n")
		n.Left.dump(sb)
		sb.WriteString("]\nRight:[\n")
		n.Right.dump(sb)
		sb.WriteString("]\n")
	}
}
