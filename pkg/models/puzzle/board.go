package puzzle

import "strings"

// Board is a fixed-size square grid. It is a value type: transitions copy
// it and never mutate a board shared with someone else.
type Board struct {
	Size  int
	Cells []Cell
}

func NewBoard(size int) Board {
	return Board{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

func (b Board) index(r, c int) int {
	return r*b.Size + c
}

func (b Board) At(r, c int) Cell {
	return b.Cells[b.index(r, c)]
}

func (b Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Size && c >= 0 && c < b.Size
}

func (b Board) Clone() (newBoard Board) {
	newBoard = Board{
		Size:  b.Size,
		Cells: make([]Cell, len(b.Cells)),
	}
	copy(newBoard.Cells, b.Cells)
	return
}

// FullRows returns the rows with no Empty and no Obstacle cell.
func (b Board) FullRows() (rows []int) {
	for r := 0; r < b.Size; r++ {
		full := true
		for c := 0; c < b.Size; c++ {
			if b.At(r, c).BlocksLine() {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}
	return
}

// FullColumns returns the columns with no Empty and no Obstacle cell.
func (b Board) FullColumns() (cols []int) {
	for c := 0; c < b.Size; c++ {
		full := true
		for r := 0; r < b.Size; r++ {
			if b.At(r, c).BlocksLine() {
				full = false
				break
			}
		}
		if full {
			cols = append(cols, c)
		}
	}
	return
}

// BonusCount counts the uncollected bonuses still on the board.
func (b Board) BonusCount() (count int) {
	for _, c := range b.Cells {
		if c.CarriesBonus() {
			count++
		}
	}
	return
}

func (b Board) String() string {
	var builder strings.Builder
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			builder.WriteString(b.At(r, c).String())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
