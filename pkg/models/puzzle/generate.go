package puzzle

import "math/rand"

const (
	MinDifficulty = 1
	MaxDifficulty = 4

	boardSizeBase      = 3
	bonusPercentage    = 0.10
	obstaclePercentage = 0.10
	minBonuses         = 1
	minObstacles       = 1
)

var difficultyNames = [...]string{"Easy", "Medium", "Hard", "Expert"}

// DifficultyName returns the display name of a clamped difficulty.
func DifficultyName(difficulty int) string {
	return difficultyNames[ClampDifficulty(difficulty)-1]
}

func ClampDifficulty(difficulty int) int {
	if difficulty < MinDifficulty {
		return MinDifficulty
	}
	if difficulty > MaxDifficulty {
		return MaxDifficulty
	}
	return difficulty
}

// NewGame builds a fresh random game: an N×N board (N = 3 + difficulty)
// seeded with ~10% bonus and ~10% obstacle cells, the initial score and
// the first piece. The same (difficulty, seed) always builds the same game.
func NewGame(difficulty int, seed int64) (s GameState) {
	difficulty = ClampDifficulty(difficulty)
	size := boardSizeBase + difficulty
	r := rand.New(rand.NewSource(seed))

	s = GameState{
		Board:      NewBoard(size),
		Difficulty: difficulty,
		Score:      InitialScoreBase * difficulty,
		PieceSeed:  uint64(seed),
	}

	area := size * size
	bonuses := max(minBonuses, int(float64(area)*bonusPercentage+0.5))
	obstacles := max(minObstacles, int(float64(area)*obstaclePercentage+0.5))

	place := func(cell Cell, count int) {
		for placed := 0; placed < count; {
			i := r.Intn(area)
			if s.Board.Cells[i] != Empty {
				continue
			}
			s.Board.Cells[i] = cell
			placed++
		}
	}
	place(Bonus, bonuses)
	place(Obstacle, obstacles)

	s.RemainingBonuses = bonuses
	s.CurrentPiece, s.PieceSeed = DrawPiece(difficulty, s.PieceSeed)
	return
}
