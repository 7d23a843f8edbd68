// Package search explores the space of reachable board configurations.
// One generic best-first skeleton implements all eight strategies,
// parameterized by frontier discipline, cost accounting and an optional
// heuristic. Each invocation is single-shot: it owns its frontier and
// visited table and shares nothing with the live game or other runs.
package search

import (
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
)

// Outcome is the terminal status of one invocation.
type Outcome string

const (
	// Solved means a goal state was reached; Result.Path leads to it.
	Solved Outcome = "solved"
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted Outcome = "exhausted"
	// BudgetExceeded means the expansion ceiling was hit first.
	BudgetExceeded Outcome = "budget_exceeded"
)

// Result reports what one invocation found.
type Result struct {
	Outcome  Outcome
	Path     []puzzle.Action
	Expanded int
	MaxDepth int
}

// Run executes one search over copies of root. The live game state is
// never touched: every expansion works on fresh values produced by the
// transition function.
func Run(root puzzle.GameState, strategy Strategy, opt Options) (Result, error) {
	opt = opt.withDefaults()
	if strategy.Informed() && opt.Heuristic == nil {
		return Result{}, ErrMissingHeuristic
	}
	if strategy == IDS {
		return runIDS(root, opt)
	}
	return runBounded(root, strategy, opt, boundFor(strategy, opt))
}

// boundFor returns the depth bound of a strategy, or -1 for unbounded.
func boundFor(strategy Strategy, opt Options) int {
	if strategy == DLS {
		return opt.DepthLimit
	}
	return -1
}

func runBounded(root puzzle.GameState, strategy Strategy, opt Options, depthBound int) (Result, error) {
	front, err := newFrontier(strategy, opt)
	if err != nil {
		return Result{}, err
	}

	// Depth-first strategies keep the textbook memory-bounded semantics
	// and skip the visited table on purpose.
	dedup := !strategy.depthFirst()
	visited := make(map[string]float64)

	rootNode := &node{state: root}
	if strategy.Informed() {
		rootNode.h = opt.Heuristic(root)
	}
	front.push(rootNode)
	if dedup {
		visited[root.Fingerprint()] = 0
	}

	res := Result{Outcome: Exhausted}
	for front.len() > 0 {
		if res.Expanded >= opt.MaxExpansions {
			res.Outcome = BudgetExceeded
			return res, nil
		}

		n := front.pop()
		res.Expanded++
		if n.depth > res.MaxDepth {
			res.MaxDepth = n.depth
		}

		if n.state.IsGoal() {
			res.Outcome = Solved
			res.Path = n.path()
			return res, nil
		}
		if n.state.IsFailed() {
			continue
		}
		if depthBound >= 0 && n.depth >= depthBound {
			continue
		}

		actions := n.state.LegalPlacements()
		if strategy.depthFirst() {
			// Reverse so the stack explores placements in row-major order.
			for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
				actions[i], actions[j] = actions[j], actions[i]
			}
		}

		for _, a := range actions {
			child, err := n.state.ApplyAction(a)
			if err != nil {
				continue
			}

			g := n.g + stepCost(opt, n.state, child)
			if dedup {
				fp := child.Fingerprint()
				if best, c := visited[fp]; c && best <= g {
					continue
				}
				visited[fp] = g
			}

			childNode := &node{
				state:  child,
				parent: n,
				action: a,
				g:      g,
				depth:  n.depth + 1,
			}
			if strategy.Informed() {
				childNode.h = opt.Heuristic(child)
			}
			front.push(childNode)
		}
	}
	return res, nil
}

// stepCost is the unit cost unless score-delta accounting is requested,
// in which case a score gain makes the step cheaper.
func stepCost(opt Options, parent, child puzzle.GameState) float64 {
	if opt.ScoreDeltaCost {
		return float64(parent.Score - child.Score)
	}
	return 1
}

// runIDS re-invokes the depth-limited skeleton with increasing bounds,
// sharing one expansion budget across iterations.
func runIDS(root puzzle.GameState, opt Options) (Result, error) {
	total := Result{Outcome: Exhausted}
	remaining := opt.MaxExpansions

	for limit := 1; limit <= opt.MaxDepth; limit++ {
		iter := opt
		iter.MaxExpansions = remaining

		res, err := runBounded(root, IDS, iter, limit)
		if err != nil {
			return Result{}, err
		}

		total.Expanded += res.Expanded
		if res.MaxDepth > total.MaxDepth {
			total.MaxDepth = res.MaxDepth
		}

		if res.Outcome == Solved {
			total.Outcome = Solved
			total.Path = res.Path
			return total, nil
		}

		remaining -= res.Expanded
		if res.Outcome == BudgetExceeded || remaining <= 0 {
			total.Outcome = BudgetExceeded
			return total, nil
		}
	}
	return total, nil
}
