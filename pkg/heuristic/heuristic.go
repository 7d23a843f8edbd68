// Package heuristic holds the pure evaluation functions the informed
// search strategies rank states with. Lower values are more promising.
package heuristic

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
)

// Func estimates the remaining cost of a state. It must be total over
// every reachable state and nonnegative; terminal states evaluate to 0.
type Func func(puzzle.GameState) float64

// NoBonusInReach is the sentinel proximity when no bonus is on the board.
const NoBonusInReach = 100

var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic name")

// MaximizeScore favors states whose piece in hand can realize the largest
// immediate score gain. The best reachable gain is subtracted from the
// state's gain ceiling so the value stays nonnegative.
func MaximizeScore(s puzzle.GameState) float64 {
	if s.IsGoal() || s.IsFailed() {
		return 0
	}

	moves := s.LegalPlacements()
	if len(moves) == 0 {
		return 0
	}

	ceiling := gainCeiling(s)
	best := -ceiling
	for _, a := range moves {
		next, err := s.ApplyAction(a)
		if err != nil {
			continue
		}
		if gain := next.Score - s.Score; gain > best {
			best = gain
		}
	}
	return float64(ceiling - best)
}

// gainCeiling bounds the score delta of any single placement: every row
// and column clears at once, with full combo and every remaining bonus.
func gainCeiling(s puzzle.GameState) int {
	base := puzzle.BaseLineClear * s.Difficulty
	lines := 2 * s.Board.Size
	ceiling := lines*base + base/puzzle.ComboDivisor*(lines-1)
	ceiling += s.RemainingBonuses * puzzle.DiamondBonus * s.Difficulty
	return ceiling
}

// DiamondProximity is the minimum Manhattan distance from any cell the
// piece in hand could occupy to the nearest uncollected bonus.
func DiamondProximity(s puzzle.GameState) float64 {
	if s.IsGoal() || s.IsFailed() {
		return 0
	}

	var bonuses []puzzle.Offset
	for r := 0; r < s.Board.Size; r++ {
		for c := 0; c < s.Board.Size; c++ {
			if s.Board.At(r, c).CarriesBonus() {
				bonuses = append(bonuses, puzzle.Offset{Row: r, Col: c})
			}
		}
	}
	if len(bonuses) == 0 {
		return NoBonusInReach
	}

	moves := s.LegalPlacements()
	if len(moves) == 0 {
		return 0
	}

	minDistance := NoBonusInReach
	for _, a := range moves {
		for _, off := range a.Piece.Cells {
			r, c := a.Row+off.Row, a.Col+off.Col
			for _, b := range bonuses {
				if d := abs(b.Row-r) + abs(b.Col-c); d < minDistance {
					minDistance = d
				}
			}
		}
	}
	return float64(minDistance)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var registry = map[string]Func{
	"max-score":         MaximizeScore,
	"maximize-score":    MaximizeScore,
	"diamond":           DiamondProximity,
	"diamond-proximity": DiamondProximity,
}

// ByName resolves a heuristic selection from a request.
func ByName(name string) (Func, error) {
	if h, c := registry[name]; c {
		return h, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}
