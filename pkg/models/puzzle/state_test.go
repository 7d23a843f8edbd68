package puzzle

import "testing"

// boardFromRows builds a board from glyph rows: ' ' empty, '#' filled,
// 'X' obstacle, 'D' bonus, '@' filled bonus.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	b := NewBoard(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, glyph := range row {
			var cell Cell
			switch glyph {
			case ' ':
				cell = Empty
			case '#':
				cell = Filled
			case 'X':
				cell = Obstacle
			case 'D':
				cell = Bonus
			case '@':
				cell = FilledBonus
			default:
				t.Fatalf("unknown glyph %q", glyph)
			}
			b.Cells[b.index(r, c)] = cell
		}
	}
	return b
}

func quadPiece() Piece {
	return newPiece("quad-h", "####")
}

// singleClearState has exactly one legal placement: a 1x4 piece into row
// 2, which clears the row and collects its bonus. Every other line is
// blocked by an obstacle.
func singleClearState(t *testing.T) GameState {
	return GameState{
		Board: boardFromRows(t,
			"##XX",
			"X###",
			"   D",
			"#X##",
		),
		CurrentPiece:     quadPiece(),
		Score:            100,
		Difficulty:       1,
		RemainingBonuses: 1,
	}
}

func TestLegalPlacementsStayInBoundsAndOffBlockedCells(t *testing.T) {
	s := NewGame(2, 7)
	for _, a := range s.LegalPlacements() {
		for _, off := range a.Piece.Cells {
			r, c := a.Row+off.Row, a.Col+off.Col
			if !s.Board.InBounds(r, c) {
				t.Fatalf("placement %v leaves the board at (%d, %d)", a, r, c)
			}
			if cell := s.Board.At(r, c); !cell.Placeable() {
				t.Fatalf("placement %v lands on %v at (%d, %d)", a, cell, r, c)
			}
		}
	}
}

func TestLegalPlacementsRowMajorOrder(t *testing.T) {
	s := NewGame(3, 13)
	actions := s.LegalPlacements()
	for i := 1; i < len(actions); i++ {
		prev, cur := actions[i-1], actions[i]
		if prev.Row > cur.Row || (prev.Row == cur.Row && prev.Col >= cur.Col) {
			t.Fatalf("placements out of row-major order: %v before %v", prev, cur)
		}
	}
}

func TestSingleClearStateHasOnePlacement(t *testing.T) {
	s := singleClearState(t)
	actions := s.LegalPlacements()
	if len(actions) != 1 {
		t.Fatalf("got %d placements, want 1: %v", len(actions), actions)
	}
	if actions[0].Row != 2 || actions[0].Col != 0 {
		t.Fatalf("got placement %v, want (2, 0)", actions[0])
	}
}

func TestApplyActionDeterministic(t *testing.T) {
	s := NewGame(1, 42)
	actions := s.LegalPlacements()
	if len(actions) == 0 {
		t.Fatal("expected at least one legal placement on a fresh board")
	}

	first, err := s.ApplyAction(actions[0])
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.ApplyAction(actions[0])
	if err != nil {
		t.Fatal(err)
	}

	if first.Fingerprint() != second.Fingerprint() {
		t.Fatal("same (state, action) produced different states")
	}
	if first.CurrentPiece.Name != second.CurrentPiece.Name {
		t.Fatalf("piece draw is not deterministic: %s vs %s",
			first.CurrentPiece.Name, second.CurrentPiece.Name)
	}
}

func TestApplyActionRejectsIllegal(t *testing.T) {
	s := singleClearState(t)
	before := s.Fingerprint()

	if _, err := s.ApplyAction(Action{Row: 0, Col: 0, Piece: s.CurrentPiece}); err != ErrIllegalAction {
		t.Fatalf("got %v, want ErrIllegalAction", err)
	}
	if s.Fingerprint() != before {
		t.Fatal("rejected action mutated the state")
	}
}

func TestSingleLineClearScoring(t *testing.T) {
	s := singleClearState(t)
	next, err := s.ApplyAction(s.LegalPlacements()[0])
	if err != nil {
		t.Fatal(err)
	}

	// -10 placement, +50 line, +100 bonus at difficulty 1.
	if delta := next.Score - s.Score; delta != 140 {
		t.Fatalf("got score delta %d, want 140", delta)
	}
	if next.RemainingBonuses != 0 {
		t.Fatalf("got %d remaining bonuses, want 0", next.RemainingBonuses)
	}
	if !next.IsGoal() {
		t.Fatal("expected goal state after collecting the last bonus")
	}
	for c := 0; c < next.Board.Size; c++ {
		if cell := next.Board.At(2, c); cell != Empty {
			t.Fatalf("row 2 cell %d is %v after clear, want Empty", c, cell)
		}
	}
}

func TestComboClearScoring(t *testing.T) {
	s := GameState{
		Board: boardFromRows(t,
			"  ##",
			"  ##",
			"XX##",
			"##XX",
		),
		CurrentPiece:     newPiece("square", "##", "##"),
		Score:            100,
		Difficulty:       1,
		RemainingBonuses: 1,
	}

	next, err := s.ApplyAction(Action{Row: 0, Col: 0, Piece: s.CurrentPiece})
	if err != nil {
		t.Fatal(err)
	}

	// -10 placement, +100 for two lines, +25 combo.
	if delta := next.Score - s.Score; delta != 115 {
		t.Fatalf("got score delta %d, want 115", delta)
	}
	if next.RemainingBonuses != 1 {
		t.Fatalf("combo clear collected a bonus it should not have: %d left", next.RemainingBonuses)
	}
}

func TestObstacleLineNeverClears(t *testing.T) {
	b := boardFromRows(t,
		"###X",
		"####",
		"####",
		"####",
	)
	for _, r := range b.FullRows() {
		if r == 0 {
			t.Fatal("row with an obstacle reported as full")
		}
	}
	if cols := b.FullColumns(); len(cols) != 3 {
		t.Fatalf("got %d full columns, want 3", len(cols))
	}
}

func TestCoveredBonusSurvivesUntilClear(t *testing.T) {
	s := GameState{
		Board: boardFromRows(t,
			" D  ",
			"    ",
			"    ",
			"    ",
		),
		CurrentPiece:     newPiece("duo-h", "##"),
		Score:            100,
		Difficulty:       1,
		RemainingBonuses: 1,
	}

	next, err := s.ApplyAction(Action{Row: 0, Col: 0, Piece: s.CurrentPiece})
	if err != nil {
		t.Fatal(err)
	}
	if cell := next.Board.At(0, 1); cell != FilledBonus {
		t.Fatalf("covered bonus is %v, want FilledBonus", cell)
	}
	if next.RemainingBonuses != 1 {
		t.Fatal("covering a bonus must not collect it")
	}
	if next.Board.BonusCount() != 1 {
		t.Fatalf("got %d bonuses on board, want 1", next.Board.BonusCount())
	}
}

func TestRerollCostAndDeterminism(t *testing.T) {
	s := NewGame(3, 9)

	first, err := s.Reroll()
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Reroll()
	if err != nil {
		t.Fatal(err)
	}

	if got, want := s.Score-first.Score, RerollPenalty*3; got != want {
		t.Fatalf("got reroll cost %d, want %d", got, want)
	}
	if first.CurrentPiece.Name != second.CurrentPiece.Name {
		t.Fatal("reroll draw is not deterministic")
	}
	if len(first.MovesApplied) != len(s.MovesApplied) {
		t.Fatal("reroll must not count as a placement")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewGame(2, 11)

	snapshot, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	restored, err := RestoreSnapshot(snapshot)
	if err != nil {
		t.Fatal(err)
	}

	if restored.Fingerprint() != s.Fingerprint() {
		t.Fatal("restored state has a different fingerprint")
	}
	if got, want := len(restored.LegalPlacements()), len(s.LegalPlacements()); got != want {
		t.Fatalf("restored state has %d placements, want %d", got, want)
	}

	a := s.LegalPlacements()[0]
	fromOriginal, err := s.ApplyAction(a)
	if err != nil {
		t.Fatal(err)
	}
	fromRestored, err := restored.ApplyAction(a)
	if err != nil {
		t.Fatal(err)
	}
	if fromOriginal.Fingerprint() != fromRestored.Fingerprint() {
		t.Fatal("transition after round trip diverged from the original")
	}
}

func TestNewGameLayout(t *testing.T) {
	for difficulty := 1; difficulty <= 4; difficulty++ {
		s := NewGame(difficulty, 5)
		if got, want := s.Board.Size, 3+difficulty; got != want {
			t.Fatalf("difficulty %d: board size %d, want %d", difficulty, got, want)
		}
		if got, want := s.Score, InitialScoreBase*difficulty; got != want {
			t.Fatalf("difficulty %d: initial score %d, want %d", difficulty, got, want)
		}
		if s.RemainingBonuses != s.Board.BonusCount() {
			t.Fatalf("difficulty %d: remaining bonuses %d, board has %d",
				difficulty, s.RemainingBonuses, s.Board.BonusCount())
		}
		if s.CurrentPiece.Empty() {
			t.Fatalf("difficulty %d: no piece drawn", difficulty)
		}
	}
}
