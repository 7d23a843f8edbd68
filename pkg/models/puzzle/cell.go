package puzzle

// Cell is the content of one board square.
type Cell int8

const (
	Empty Cell = iota
	Filled
	Obstacle
	Bonus
	// FilledBonus marks a bonus square covered by a piece. The bonus stays
	// uncollected until a line clear removes the square.
	FilledBonus
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return " "
	case Filled:
		return "#"
	case Obstacle:
		return "X"
	case Bonus:
		return "D"
	case FilledBonus:
		return "@"
	}
	return "?"
}

// Placeable reports whether a piece cell may land on this square.
func (c Cell) Placeable() bool {
	return c == Empty || c == Bonus
}

// BlocksLine reports whether this square keeps its row/column from clearing.
func (c Cell) BlocksLine() bool {
	return c == Empty || c == Obstacle
}

// CarriesBonus reports whether clearing this square collects a bonus.
func (c Cell) CarriesBonus() bool {
	return c == Bonus || c == FilledBonus
}
