// Package advisor turns one search invocation into one next move.
package advisor

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/wood-block-puzzle/pkg/heuristic"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/HuXin0817/wood-block-puzzle/pkg/search"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrNoMoveAvailable      = errors.New("advisor: no move available")
	ErrInvalidConfiguration = errors.New("advisor: invalid configuration")
)

// DefaultHeuristic ranks states for informed strategies when the request
// leaves the heuristic unset, and orders the degraded fallback move.
const DefaultHeuristic = "diamond-proximity"

// MaxConsecutiveRerolls caps how often auto-play rerolls a stuck piece
// before giving up.
const MaxConsecutiveRerolls = 5

// Request selects strategy, heuristic and budget for one suggestion.
type Request struct {
	Strategy      string
	Heuristic     string
	Weight        float64
	MaxExpansions int
	DepthLimit    int
}

func (r Request) options() (search.Strategy, search.Options, error) {
	strategy, err := search.ParseStrategy(r.Strategy)
	if err != nil {
		return "", search.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	opt := search.Options{
		Weight:        r.Weight,
		MaxExpansions: r.MaxExpansions,
		DepthLimit:    r.DepthLimit,
	}

	name := r.Heuristic
	if name == "" {
		name = DefaultHeuristic
	}
	h, err := heuristic.ByName(name)
	if err != nil {
		return "", search.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	opt.Heuristic = h

	return strategy, opt, nil
}

// SuggestMove runs one search from a snapshot of the state and returns
// the first action of the solution path. When the search exhausts its
// frontier or budget without reaching a goal, the single best immediate
// move by heuristic is returned instead; ErrNoMoveAvailable is reserved
// for states with no legal placement at all.
func SuggestMove(state puzzle.GameState, req Request) (puzzle.Action, error) {
	moves := state.LegalPlacements()
	if len(moves) == 0 {
		return puzzle.Action{}, ErrNoMoveAvailable
	}

	strategy, opt, err := req.options()
	if err != nil {
		return puzzle.Action{}, err
	}

	res, err := search.Run(state, strategy, opt)
	if err != nil {
		return puzzle.Action{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	if res.Outcome == search.Solved && len(res.Path) > 0 {
		return res.Path[0], nil
	}

	logx.Infof("advisor: %s %s after %d expansions, falling back to best immediate move",
		strategy, res.Outcome, res.Expanded)
	return bestImmediate(state, moves, opt.Heuristic), nil
}

// bestImmediate ranks the legal placements by the heuristic value of the
// state they produce, breaking ties in row-major order.
func bestImmediate(state puzzle.GameState, moves []puzzle.Action, h heuristic.Func) puzzle.Action {
	best := moves[0]
	bestValue := 0.0
	for i, a := range moves {
		next, err := state.ApplyAction(a)
		if err != nil {
			continue
		}
		if v := h(next); i == 0 || v < bestValue {
			best = a
			bestValue = v
		}
	}
	return best
}

// Observer reports each auto-play step back to the front-end. action is
// nil when the step was a reroll.
type Observer func(step int, action *puzzle.Action, state puzzle.GameState)

// AutoPlay repeatedly suggests and applies moves until the game ends,
// rerolling a stuck piece up to MaxConsecutiveRerolls times.
func AutoPlay(state puzzle.GameState, req Request, observe Observer) (puzzle.GameState, error) {
	rerolls := 0
	for step := 1; ; step++ {
		if state.IsGoal() || state.IsFailed() {
			return state, nil
		}

		move, err := SuggestMove(state, req)
		if errors.Is(err, ErrNoMoveAvailable) {
			if rerolls >= MaxConsecutiveRerolls {
				return state, ErrNoMoveAvailable
			}
			next, err := state.Reroll()
			if err != nil {
				return state, err
			}
			rerolls++
			state = next
			if observe != nil {
				observe(step, nil, state)
			}
			continue
		}
		if err != nil {
			return state, err
		}

		rerolls = 0
		next, err := state.ApplyAction(move)
		if err != nil {
			return state, err
		}
		state = next
		if observe != nil {
			observe(step, &move, state)
		}
	}
}
