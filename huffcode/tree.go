package huffcode

import (
	"container/heap"
	"sort"
)

// Node is one node of a code tree. Leaves carry a symbol; internal
// nodes only aggregate the weight of their subtree. Every internal
// node produced by Build has two children, except the synthetic parent
// wrapped around a lone leaf.
type Node struct {
	Symbol byte
	Leaf   bool
	Weight uint64
	Left   *Node
	Right  *Node
}

// item pairs a subtree with the sequence number of its heap insertion
// so that equal weights pop in a reproducible order.
type item struct {
	node *Node
	seq  int
}

type nodeHeap []item

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.Weight != h[j].node.Weight {
		return h[i].node.Weight < h[j].node.Weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(item)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Build constructs the code tree for the given frequencies by
// repeatedly merging the two lightest subtrees under a new parent,
// the first extraction becoming the left child. Leaves are seeded in
// ascending symbol order and weight ties break on insertion sequence,
// so the tree is a pure function of the table: an encoder and a
// decoder working from the same counts always agree on the codes.
//
// Build returns nil for an empty table. A table with one distinct
// symbol yields a parent whose left child is the lone leaf and whose
// right child is nil, so the symbol still gets a one-bit code.
func Build(ft FrequencyTable) *Node {
	if len(ft) == 0 {
		return nil
	}

	symbols := make([]int, 0, len(ft))
	for s := range ft {
		symbols = append(symbols, int(s))
	}
	sort.Ints(symbols)

	h := make(nodeHeap, 0, len(symbols))
	seq := 0
	for _, s := range symbols {
		leaf := &Node{Symbol: byte(s), Leaf: true, Weight: ft[byte(s)]}
		h = append(h, item{node: leaf, seq: seq})
		seq++
	}
	heap.Init(&h)

	for len(h) > 1 {
		left := heap.Pop(&h).(item).node
		right := heap.Pop(&h).(item).node
		merged := &Node{Weight: left.Weight + right.Weight, Left: left, Right: right}
		heap.Push(&h, item{node: merged, seq: seq})
		seq++
	}

	root := h[0].node
	if root.Leaf {
		root = &Node{Weight: root.Weight, Left: root}
	}
	return root
}
