package vocab

import (
	"container/heap"
)

// Node is an entry of the Huffman arena. Leaves take ids [0, n) and
// match word indices; internal nodes take ids [n, 2n-1) in creation
// order. Left and Right are -1 on leaves.
type Node struct {
	Count uint32
	Left  int32
	Right int32
}

func (n *Node) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

type Tree struct {
	Nodes    []Node
	LeafNum  int
	MaxDepth int
}

// Root returns the id of the root node.
func (t *Tree) Root() int32 {
	return int32(len(t.Nodes) - 1)
}

// InternalNum is the number of internal nodes, n-1 for n leaves.
func (t *Tree) InternalNum() int {
	return len(t.Nodes) - t.LeafNum
}

// min-count priority queue over node ids, ties broken by id
type nodeHeap struct {
	ids   []int32
	nodes []Node
}

func (h *nodeHeap) Len() int { return len(h.ids) }
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.ids[i], h.ids[j]
	if h.nodes[a].Count != h.nodes[b].Count {
		return h.nodes[a].Count < h.nodes[b].Count
	}
	return a < b
}
func (h *nodeHeap) Swap(i, j int)      { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }
func (h *nodeHeap) Push(x interface{}) { h.ids = append(h.ids, x.(int32)) }
func (h *nodeHeap) Pop() interface{} {
	old := h.ids
	id := old[len(old)-1]
	h.ids = old[:len(old)-1]
	return id
}

// BuildTree builds the Huffman tree over words, which must be ordered
// by Index over [0, len(words)), and stores every word's Codes and
// Points. Descending left appends bit 0, right appends bit 1. Points
// hold internal node ids offset by the leaf count so they index rows of
// the output table.
func BuildTree(words []*Word) *Tree {
	n := len(words)
	t := &Tree{LeafNum: n}
	if n == 0 {
		return t
	}

	t.Nodes = make([]Node, n, 2*n-1)
	for _, w := range words {
		t.Nodes[w.Index] = Node{Count: w.Count, Left: -1, Right: -1}
	}

	h := &nodeHeap{ids: make([]int32, n)}
	for i := range h.ids {
		h.ids[i] = int32(i)
	}
	h.nodes = t.Nodes
	heap.Init(h)

	for i := 0; i < n-1; i += 1 {
		min1 := heap.Pop(h).(int32)
		min2 := heap.Pop(h).(int32)
		t.Nodes = append(t.Nodes, Node{
			Count: t.Nodes[min1].Count + t.Nodes[min2].Count,
			Left:  min1,
			Right: min2,
		})
		h.nodes = t.Nodes
		heap.Push(h, int32(n+i))
	}

	type frame struct {
		id     int32
		points []int32
		codes  []uint8
	}
	stack := []frame{{id: t.Root()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.Nodes[f.id]
		if node.IsLeaf() {
			w := words[f.id]
			w.Points = f.points
			w.Codes = f.codes
			if len(f.codes) > t.MaxDepth {
				t.MaxDepth = len(f.codes)
			}
			continue
		}

		depth := len(f.codes)
		points := make([]int32, depth+1)
		copy(points, f.points)
		points[depth] = f.id - int32(n)

		left := make([]uint8, depth+1)
		copy(left, f.codes)
		right := make([]uint8, depth+1)
		copy(right, f.codes)
		right[depth] = 1

		stack = append(stack,
			frame{id: node.Left, points: points, codes: left},
			frame{id: node.Right, points: points, codes: right})
	}
	return t
}
