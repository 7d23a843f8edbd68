package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/advisor"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/HuXin0817/wood-block-puzzle/pkg/search"
)

var (
	difficulty    = flag.Int("difficulty", 1, "difficulty level (1-4)")
	seed          = flag.Int64("seed", 0, "board seed (0 picks one from the clock)")
	mode          = flag.String("mode", "play", "play | auto | bench")
	strategyName  = flag.String("strategy", "astar", "search strategy for hints and auto-play")
	heuristicName = flag.String("heuristic", "", "heuristic for informed strategies")
	weight        = flag.Float64("weight", search.DefaultWeight, "heuristic weight for wastar")
	budget        = flag.Int("budget", search.DefaultMaxExpansions, "search expansion budget")
	loadPath      = flag.String("load", "", "load a saved game snapshot instead of generating one")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var state puzzle.GameState
	if *loadPath != "" {
		data, err := os.ReadFile(*loadPath)
		if err != nil {
			log.Fatalln(err)
		}
		state, err = puzzle.RestoreSnapshot(string(data))
		if err != nil {
			log.Fatalln(err)
		}
	} else {
		state = puzzle.NewGame(*difficulty, *seed)
	}

	req := advisor.Request{
		Strategy:      *strategyName,
		Heuristic:     *heuristicName,
		Weight:        *weight,
		MaxExpansions: *budget,
	}

	switch *mode {
	case "play":
		newShell(state, req).run()
	case "auto":
		runAuto(state, req)
	case "bench":
		runBench(state, req, *budget)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}
