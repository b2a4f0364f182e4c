package huffman

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const indent = "    "

// branch says where a fork hangs off its parent.
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// PrintTree draws the tree sideways, left subtree on top. Forks are shown
// as '<' and leaves as the quoted byte or EOS.
func PrintTree(w io.Writer, root *Node) error {
	var sb strings.Builder
	if root.IsLeaf() {
		fmt.Fprintf(&sb, "---%s\n", leafLabel(root))
	} else {
		drawFork(&sb, root, 1, branchRoot)
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "print tree")
}

func drawFork(sb *strings.Builder, n *Node, depth int, b branch) {
	if n.Left.IsLeaf() {
		pad(sb, depth)
		fmt.Fprintf(sb, "/--%s\n", leafLabel(n.Left))
	} else {
		drawFork(sb, n.Left, depth+1, branchLeft)
	}

	pad(sb, depth-1)
	switch b {
	case branchLeft:
		sb.WriteString("/--<\n")
	case branchRight:
		sb.WriteString("\\--<\n")
	default:
		sb.WriteString("---<\n")
	}

	if n.Right.IsLeaf() {
		pad(sb, depth)
		fmt.Fprintf(sb, "\\--%s\n", leafLabel(n.Right))
	} else {
		drawFork(sb, n.Right, depth+1, branchRight)
	}
}

func pad(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indent)
	}
}

func leafLabel(n *Node) string {
	if n.Kind == KindEOS {
		return "EOS"
	}
	return fmt.Sprintf("%q", n.Value)
}
