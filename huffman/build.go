package huffman

import "container/heap"

// BuildTree merges the live leaves of t into one tree and empties t.
//
// Each round takes the two lightest nodes, ties going to the lower slot, and
// replaces the first with a fork over both (first on the left) while clearing
// the slot of the second. The fork keeps the slot of its left child, so the
// order of later ties does not depend on how the minimum is found.
//
// A table with a single live leaf produces a fork over that leaf and an
// unused zero-frequency data leaf, so that every real symbol has a path of
// at least one bit.
func BuildTree(t *FrequencyTable) (*Node, error) {
	if t[EOS] == nil {
		return nil, ErrMissingEOS
	}
	h := newSlotHeap(t)
	if h.Len() == 0 {
		return nil, ErrEmptyTable
	}
	for h.Len() > 1 {
		a := heap.Pop(h).(slotItem)
		b := heap.Pop(h).(slotItem)
		fork := NewFork(a.node, b.node)
		t[a.slot] = fork
		t[b.slot] = nil
		heap.Push(h, slotItem{node: fork, slot: a.slot})
	}
	last := heap.Pop(h).(slotItem)
	t[last.slot] = nil

	root := last.node
	if root.IsLeaf() {
		root = NewFork(root, placeholderFor(root))
	}
	return root, nil
}

// placeholderFor returns a data leaf that never collides with the lone leaf.
func placeholderFor(leaf *Node) *Node {
	var b byte
	if leaf.Kind == KindData && leaf.Value == 0 {
		b = 1
	}
	return NewLeaf(b, 0)
}

type slotItem struct {
	node *Node
	slot int
}

// slotHeap orders nodes by frequency, then by table slot.
type slotHeap []slotItem

func newSlotHeap(t *FrequencyTable) *slotHeap {
	h := make(slotHeap, 0, NumSymbols)
	for i, n := range t {
		if n != nil {
			h = append(h, slotItem{node: n, slot: i})
		}
	}
	heap.Init(&h)
	return &h
}

func (h slotHeap) Len() int { return len(h) }
func (h slotHeap) Less(i, j int) bool {
	if h[i].node.Freq != h[j].node.Freq {
		return h[i].node.Freq < h[j].node.Freq
	}
	return h[i].slot < h[j].slot
}
func (h slotHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *slotHeap) Push(x any) {
	*h = append(*h, x.(slotItem))
}

func (h *slotHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
