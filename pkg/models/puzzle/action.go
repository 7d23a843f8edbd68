package puzzle

import "fmt"

// Action anchors the piece that was in hand at a board cell.
type Action struct {
	Row   int
	Col   int
	Piece Piece
}

func (a Action) String() string {
	return fmt.Sprintf("%s @ (%d, %d)", a.Piece.Name, a.Row, a.Col)
}
