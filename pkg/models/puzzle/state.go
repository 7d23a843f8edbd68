package puzzle

import (
	"errors"

	"github.com/bytedance/sonic"
)

// Scoring constants, multiplied by difficulty where they apply.
const (
	PlacePenalty     = 10
	RerollPenalty    = 10
	BaseLineClear    = 50
	DiamondBonus     = 100
	ComboDivisor     = 2
	InitialScoreBase = 100
)

var (
	ErrIllegalAction = errors.New("puzzle: action is not a legal placement")
	ErrNoPiece       = errors.New("puzzle: no piece in hand")
)

// GameState is one immutable snapshot of the game. Every transition
// returns a new value, so live game and speculative search branches can
// never alias each other's boards.
type GameState struct {
	Board            Board
	CurrentPiece     Piece
	Score            int
	Difficulty       int
	RemainingBonuses int
	BonusesCollected int
	PieceSeed        uint64
	MovesApplied     []Action `json:",omitempty"`
}

func (s GameState) clone() (newState GameState) {
	newState = s
	newState.Board = s.Board.Clone()
	newState.MovesApplied = append([]Action{}, s.MovesApplied...)
	return
}

func (s GameState) canPlace(r, c int) bool {
	for _, off := range s.CurrentPiece.Cells {
		rr, cc := r+off.Row, c+off.Col
		if !s.Board.InBounds(rr, cc) {
			return false
		}
		if !s.Board.At(rr, cc).Placeable() {
			return false
		}
	}
	return true
}

// LegalPlacements enumerates every legal anchor for the current piece in
// row-major order. The order is deterministic so search tie-breaking is
// reproducible.
func (s GameState) LegalPlacements() (actions []Action) {
	if s.CurrentPiece.Empty() {
		return
	}
	for r := 0; r < s.Board.Size; r++ {
		for c := 0; c < s.Board.Size; c++ {
			if s.canPlace(r, c) {
				actions = append(actions, Action{Row: r, Col: c, Piece: s.CurrentPiece})
			}
		}
	}
	return
}

// ApplyAction places the piece, resolves line clears and scoring, and
// draws the next piece. Illegal actions are rejected and the receiver is
// returned unchanged.
func (s GameState) ApplyAction(a Action) (GameState, error) {
	if s.CurrentPiece.Empty() {
		return s, ErrNoPiece
	}
	if a.Piece.Name != s.CurrentPiece.Name || !s.canPlace(a.Row, a.Col) {
		return s, ErrIllegalAction
	}

	next := s.clone()
	for _, off := range a.Piece.Cells {
		i := next.Board.index(a.Row+off.Row, a.Col+off.Col)
		if next.Board.Cells[i] == Bonus {
			next.Board.Cells[i] = FilledBonus
		} else {
			next.Board.Cells[i] = Filled
		}
	}

	next.Score -= PlacePenalty * next.Difficulty
	next.resolveLines()
	next.MovesApplied = append(next.MovesApplied, a)

	if next.Score > 0 {
		next.CurrentPiece, next.PieceSeed = DrawPiece(next.Difficulty, next.PieceSeed)
	} else {
		next.CurrentPiece = Piece{}
	}
	return next, nil
}

// resolveLines clears every full row and column simultaneously, collects
// the bonuses inside them and applies clear, combo and bonus scoring.
func (s *GameState) resolveLines() {
	rows := s.Board.FullRows()
	cols := s.Board.FullColumns()
	k := len(rows) + len(cols)
	if k == 0 {
		return
	}

	cleared := make(map[int]struct{})
	for _, r := range rows {
		for c := 0; c < s.Board.Size; c++ {
			cleared[s.Board.index(r, c)] = struct{}{}
		}
	}
	for _, c := range cols {
		for r := 0; r < s.Board.Size; r++ {
			cleared[s.Board.index(r, c)] = struct{}{}
		}
	}

	bonuses := 0
	for i := range cleared {
		if s.Board.Cells[i].CarriesBonus() {
			bonuses++
		}
		s.Board.Cells[i] = Empty
	}

	basePoints := BaseLineClear * s.Difficulty
	gain := k * basePoints
	if k > 1 {
		gain += basePoints / ComboDivisor * (k - 1)
	}
	gain += bonuses * DiamondBonus * s.Difficulty

	s.Score += gain
	s.RemainingBonuses -= bonuses
	s.BonusesCollected += bonuses
}

// Reroll discards the piece in hand and draws a new one for a penalty.
// It does not count as a placement.
func (s GameState) Reroll() (GameState, error) {
	if s.CurrentPiece.Empty() {
		return s, ErrNoPiece
	}
	next := s.clone()
	next.Score -= RerollPenalty * next.Difficulty
	if next.Score > 0 {
		next.CurrentPiece, next.PieceSeed = DrawPiece(next.Difficulty, next.PieceSeed)
	} else {
		next.CurrentPiece = Piece{}
	}
	return next, nil
}

// IsGoal reports whether every bonus has been collected while staying
// above zero points.
func (s GameState) IsGoal() bool {
	return s.RemainingBonuses <= 0 && s.Score > 0
}

func (s GameState) IsFailed() bool {
	return s.Score <= 0
}

// IsStuck reports whether the piece in hand has no legal placement.
func (s GameState) IsStuck() bool {
	return len(s.LegalPlacements()) == 0
}

func (s GameState) IsTerminal() bool {
	return s.IsGoal() || s.IsFailed() || s.IsStuck()
}

type fingerprintKey struct {
	Cells   []Cell
	Bonuses int
	Score   int
}

// Fingerprint is the normalized identity used for visited-state dedup:
// board contents, remaining bonuses and score.
func (s GameState) Fingerprint() string {
	str, _ := sonic.MarshalString(fingerprintKey{
		Cells:   s.Board.Cells,
		Bonuses: s.RemainingBonuses,
		Score:   s.Score,
	})
	return str
}

// Snapshot serializes the state for saving, caching or wire transfer.
func (s GameState) Snapshot() (string, error) {
	return sonic.MarshalString(s)
}

// RestoreSnapshot is the inverse of Snapshot.
func RestoreSnapshot(data string) (s GameState, err error) {
	err = sonic.UnmarshalString(data, &s)
	return
}
