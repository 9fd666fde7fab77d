package huff

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// node is a node of the Huffman tree. Leaves carry a symbol value in
// the range 0 to 255; internal nodes carry the combined frequency of
// their children and have sym set to -1.
type node struct {
	sym         int
	freq        int
	left, right *node
}

// leaf reports whether the node has no children.
func (n *node) leaf() bool { return n.left == nil && n.right == nil }

// nodeHeap is a min-heap of tree nodes ordered by frequency, with the
// symbol value breaking ties.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].sym < h[j].sym
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// buildTree constructs the Huffman tree for the frequency table. The
// two nodes with the lowest frequencies are merged under a new
// internal node until a single root remains. The heap is seeded in
// symbol order, so the same table always yields the same tree.
//
// A table with a single symbol yields a root whose only child is the
// leaf, on the left. The symbol's code becomes "0" instead of the
// empty string.
func buildTree(f FreqTable) *node {
	assert.Assertf(len(f) > 0, "empty frequency table")

	syms := make([]int, 0, len(f))
	for s := range f {
		syms = append(syms, int(s))
	}
	sort.Ints(syms)

	h := make(nodeHeap, 0, len(f))
	for _, s := range syms {
		freq := f[Symbol(s)]
		assert.Assertf(freq > 0, "frequency %d of symbol %d not positive",
			freq, s)
		h = append(h, &node{sym: s, freq: freq})
	}
	heap.Init(&h)

	if h.Len() == 1 {
		single := heap.Pop(&h).(*node)
		return &node{sym: -1, freq: single.freq, left: single}
	}

	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			sym:   -1,
			freq:  left.freq + right.freq,
			left:  left,
			right: right,
		})
	}
	return heap.Pop(&h).(*node)
}
