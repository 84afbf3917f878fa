package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// ErrInvalidInput is reported when a caller violates an input contract, such
// as building a tree from an empty frequency map or generating codes from a
// nil root.
var ErrInvalidInput = errors.New("invalid input")

// Node is one node of the Huffman merge tree.  A leaf carries a Symbol and
// its frequency as Weight; an internal node carries the sum of its children's
// weights and always has exactly two children.
type Node struct {
	Symbol Symbol
	Weight int
	Left   *Node
	Right  *Node

	// seq is the tie-break rank: leaves are numbered in ascending symbol
	// order, merged nodes in creation order after them.
	seq int
}

// IsLeaf reports whether n carries a symbol and has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds the Huffman merge tree for the given frequency map and
// returns its root.  It fails with an error wrapping ErrInvalidInput if the
// map is empty.  The root's Weight equals the sum of all frequencies.
//
// Each merge step removes the two lightest nodes from the forest and inserts
// a new internal node holding their combined weight.  Ties on weight are
// broken by insertion sequence: leaves enter the forest in ascending symbol
// order, merged nodes in creation order, and of the two nodes removed per
// merge the first becomes the left child.  The convention is arbitrary but
// fixed, so repeated builds over the same input yield the same tree.
//
// A map with a single entry yields a root that is the bare leaf for that
// symbol; GenerateCodes assigns it a one-bit code.
func BuildTree(freqs map[Symbol]int) (*Node, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("huffman: cannot build tree: %w: empty frequency map", ErrInvalidInput)
	}

	symbols := make([]Symbol, 0, len(freqs))
	for sym := range freqs {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	forest := make(nodeHeap, 0, len(freqs))
	for seq, sym := range symbols {
		freq := freqs[sym]
		assert.Assertf(freq > 0, "symbol %q has non-positive frequency %d", sym, freq)
		forest = append(forest, &Node{Symbol: sym, Weight: freq, seq: seq})
	}
	heap.Init(&forest)

	nextSeq := forest.Len()
	for forest.Len() > 1 {
		left := heap.Pop(&forest).(*Node)
		right := heap.Pop(&forest).(*Node)
		heap.Push(&forest, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			seq:    nextSeq,
		})
		nextSeq++
	}

	assert.Assertf(forest.Len() == 1, "forest holds %d nodes after merging", forest.Len())
	return forest[0], nil
}

// type nodeHeap {{{

type nodeHeap []*Node

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	x := old[last]
	old[last] = nil
	*h = old[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
