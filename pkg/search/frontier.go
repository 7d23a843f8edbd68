package search

import (
	"container/heap"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
)

// node is internal to one invocation. The parent pointer is only for path
// reconstruction; the frontier and visited table own all nodes, and the
// whole graph is dropped when the invocation returns.
type node struct {
	state  puzzle.GameState
	parent *node
	action puzzle.Action
	g      float64
	h      float64
	f      float64
	depth  int
	order  int64
}

func (n *node) path() (actions []puzzle.Action) {
	for cur := n; cur.parent != nil; cur = cur.parent {
		actions = append(actions, cur.action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return
}

type frontier interface {
	push(*node)
	pop() *node
	len() int
}

// fifoFrontier is the BFS queue.
type fifoFrontier struct {
	nodes []*node
	head  int
}

func (f *fifoFrontier) push(n *node) { f.nodes = append(f.nodes, n) }

func (f *fifoFrontier) pop() *node {
	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++
	return n
}

func (f *fifoFrontier) len() int { return len(f.nodes) - f.head }

// lifoFrontier is the DFS/DLS stack.
type lifoFrontier struct {
	nodes []*node
}

func (f *lifoFrontier) push(n *node) { f.nodes = append(f.nodes, n) }

func (f *lifoFrontier) pop() *node {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	return n
}

func (f *lifoFrontier) len() int { return len(f.nodes) }

// priorityFrontier orders nodes by an evaluation function, breaking ties
// by insertion order so expansion stays deterministic.
type priorityFrontier struct {
	eval  func(*node) float64
	items nodeHeap
	next  int64
}

func (f *priorityFrontier) push(n *node) {
	n.f = f.eval(n)
	n.order = f.next
	f.next++
	heap.Push(&f.items, n)
}

func (f *priorityFrontier) pop() *node { return heap.Pop(&f.items).(*node) }

func (f *priorityFrontier) len() int { return len(f.items) }

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].order < h[j].order
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	*h = old[:last]
	return n
}

// newFrontier maps a strategy to its frontier discipline.
func newFrontier(strategy Strategy, opt Options) (frontier, error) {
	switch strategy {
	case BFS:
		return &fifoFrontier{}, nil
	case DFS, DLS, IDS:
		return &lifoFrontier{}, nil
	case UCS:
		return &priorityFrontier{eval: func(n *node) float64 { return n.g }}, nil
	case Greedy:
		return &priorityFrontier{eval: func(n *node) float64 { return n.h }}, nil
	case AStar:
		return &priorityFrontier{eval: func(n *node) float64 { return n.g + n.h }}, nil
	case WeightedAStar:
		weight := opt.Weight
		return &priorityFrontier{eval: func(n *node) float64 { return n.g + weight*n.h }}, nil
	}
	return nil, ErrUnknownStrategy
}
