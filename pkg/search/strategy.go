package search

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/wood-block-puzzle/pkg/heuristic"
)

// Strategy selects the frontier discipline and cost accounting of one
// search invocation. All eight strategies run through the same skeleton.
type Strategy string

const (
	BFS           Strategy = "bfs"
	DFS           Strategy = "dfs"
	UCS           Strategy = "ucs"
	DLS           Strategy = "dls"
	IDS           Strategy = "ids"
	Greedy        Strategy = "greedy"
	AStar         Strategy = "astar"
	WeightedAStar Strategy = "wastar"
)

// Strategies lists every supported strategy in a stable order.
var Strategies = []Strategy{BFS, DFS, UCS, DLS, IDS, Greedy, AStar, WeightedAStar}

var (
	ErrUnknownStrategy  = errors.New("search: unknown strategy")
	ErrMissingHeuristic = errors.New("search: informed strategy requires a heuristic")
)

// ParseStrategy resolves a strategy selection from a request.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Informed reports whether the strategy ranks states with a heuristic.
func (s Strategy) Informed() bool {
	switch s {
	case Greedy, AStar, WeightedAStar:
		return true
	}
	return false
}

// depthFirst reports whether the strategy keeps textbook depth-first
// semantics: LIFO expansion and no visited-state dedup.
func (s Strategy) depthFirst() bool {
	switch s {
	case DFS, DLS, IDS:
		return true
	}
	return false
}

const (
	DefaultMaxExpansions = 20000
	DefaultDepthLimit    = 10
	DefaultMaxDepth      = 50
	DefaultWeight        = 1.5
)

// Options tune one invocation. The zero value picks sensible defaults;
// informed strategies additionally need a Heuristic.
type Options struct {
	Heuristic heuristic.Func
	// Weight scales the heuristic for WeightedAStar.
	Weight float64
	// MaxExpansions is the invocation's expansion budget.
	MaxExpansions int
	// DepthLimit bounds DLS.
	DepthLimit int
	// MaxDepth is the last bound IDS iterates up to.
	MaxDepth int
	// ScoreDeltaCost accounts steps as the negated score delta of the
	// action instead of a unit cost.
	ScoreDeltaCost bool
}

func (o Options) withDefaults() Options {
	if o.Weight <= 0 {
		o.Weight = DefaultWeight
	}
	if o.MaxExpansions <= 0 {
		o.MaxExpansions = DefaultMaxExpansions
	}
	if o.DepthLimit <= 0 {
		o.DepthLimit = DefaultDepthLimit
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
