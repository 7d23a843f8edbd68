package main

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/logrusorgru/aurora"
)

func cellGlyph(c puzzle.Cell) string {
	switch c {
	case puzzle.Filled:
		return aurora.Yellow("#").String()
	case puzzle.Obstacle:
		return aurora.Red("X").String()
	case puzzle.Bonus:
		return aurora.Cyan("D").String()
	case puzzle.FilledBonus:
		return aurora.Magenta("@").String()
	}
	return aurora.Gray(8, "·").String()
}

func renderState(s puzzle.GameState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s  score %s  bonuses left %s\n",
		aurora.Bold(puzzle.DifficultyName(s.Difficulty)),
		aurora.Bold(s.Score),
		aurora.Bold(s.RemainingBonuses))

	b.WriteString("   ")
	for c := 0; c < s.Board.Size; c++ {
		fmt.Fprintf(&b, "%2d", c)
	}
	b.WriteByte('\n')

	for r := 0; r < s.Board.Size; r++ {
		fmt.Fprintf(&b, "%2d ", r)
		for c := 0; c < s.Board.Size; c++ {
			b.WriteByte(' ')
			b.WriteString(cellGlyph(s.Board.At(r, c)))
		}
		b.WriteByte('\n')
	}

	if !s.CurrentPiece.Empty() {
		fmt.Fprintf(&b, "piece in hand: %s\n", aurora.Bold(s.CurrentPiece.Name))
		b.WriteString(renderPiece(s.CurrentPiece))
	}
	return b.String()
}

func renderPiece(p puzzle.Piece) string {
	height, width := p.Height(), p.Width()
	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}
	for _, off := range p.Cells {
		grid[off.Row][off.Col] = true
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString("   ")
		for _, occupied := range row {
			if occupied {
				b.WriteString(aurora.Yellow("#").String())
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
