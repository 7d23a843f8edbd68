package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/HuXin0817/wood-block-puzzle/pkg/advisor"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
)

const defaultSaveFile = "woodblock.save.json"

// shell is the interactive text front-end. It owns the live game state;
// the advisor only ever sees snapshots of it.
type shell struct {
	state puzzle.GameState
	req   advisor.Request
}

func newShell(state puzzle.GameState, req advisor.Request) *shell {
	return &shell{state: state, req: req}
}

func (s *shell) run() {
	fmt.Print(renderState(s.state))
	fmt.Println(`commands: place <row> <col> | hint | reroll | auto | save [file] | load [file] | quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if s.gameOver() {
			return
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "place":
			s.place(fields[1:])
		case "hint":
			s.hint()
		case "reroll":
			s.reroll()
		case "auto":
			s.state = runAuto(s.state, s.req)
		case "save":
			s.save(fileArg(fields[1:]))
		case "load":
			s.load(fileArg(fields[1:]))
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func fileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultSaveFile
}

func (s *shell) place(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: place <row> <col>")
		return
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("usage: place <row> <col>")
		return
	}

	next, err := s.state.ApplyAction(puzzle.Action{Row: row, Col: col, Piece: s.state.CurrentPiece})
	if err != nil {
		fmt.Printf("cannot place there: %v\n", err)
		return
	}
	s.state = next
	fmt.Print(renderState(s.state))
}

func (s *shell) hint() {
	move, err := advisor.SuggestMove(s.state, s.req)
	if errors.Is(err, advisor.ErrNoMoveAvailable) {
		fmt.Println("no move available, try a reroll")
		return
	}
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("suggested: %v\n", move)
}

func (s *shell) reroll() {
	next, err := s.state.Reroll()
	if err != nil {
		fmt.Println(err)
		return
	}
	s.state = next
	fmt.Print(renderState(s.state))
}

func (s *shell) save(path string) {
	snapshot, err := s.state.Snapshot()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("saved to %s\n", path)
}

func (s *shell) load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	state, err := puzzle.RestoreSnapshot(string(data))
	if err != nil {
		fmt.Println(err)
		return
	}
	s.state = state
	fmt.Print(renderState(s.state))
}

func (s *shell) gameOver() bool {
	switch {
	case s.state.IsGoal():
		fmt.Printf("all bonuses collected, you win! final score: %d\n", s.state.Score)
		return true
	case s.state.IsFailed():
		fmt.Printf("score dropped to %d, game over\n", s.state.Score)
		return true
	case s.state.IsStuck():
		fmt.Println("no legal placement for the current piece, try a reroll")
		return false
	}
	return false
}

// runAuto lets the advisor play from the given state, rendering every
// intermediate state, and returns where the game ended up.
func runAuto(state puzzle.GameState, req advisor.Request) puzzle.GameState {
	final, err := advisor.AutoPlay(state, req, func(step int, action *puzzle.Action, state puzzle.GameState) {
		if action != nil {
			fmt.Printf("step %d: %v\n", step, *action)
		} else {
			fmt.Printf("step %d: reroll -> %s\n", step, state.CurrentPiece)
		}
		fmt.Print(renderState(state))
	})
	if err != nil {
		fmt.Printf("auto-play stopped: %v\n", err)
		return final
	}

	switch {
	case final.IsGoal():
		fmt.Printf("goal reached with score %d after %d placements\n", final.Score, len(final.MovesApplied))
	case final.IsFailed():
		fmt.Printf("ran out of points after %d placements\n", len(final.MovesApplied))
	}
	return final
}
