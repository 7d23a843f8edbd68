package main

import (
	"fmt"

	"github.com/HuXin0817/wood-block-puzzle/pkg/advisor"
	"github.com/HuXin0817/wood-block-puzzle/pkg/heuristic"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/model"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/HuXin0817/wood-block-puzzle/pkg/search"
	"github.com/logrusorgru/aurora"
)

// runBench runs every strategy against the same root state and prints a
// comparison table. Each run gets its own invocation; the root is only
// ever read, never mutated, so no copies need to be coordinated.
func runBench(root puzzle.GameState, req advisor.Request, budget int) {
	heuristicName := req.Heuristic
	if heuristicName == "" {
		heuristicName = advisor.DefaultHeuristic
	}
	h, err := heuristic.ByName(heuristicName)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Print(renderState(root))

	type row struct {
		strategy search.Strategy
		result   search.Result
	}
	rows := make([]row, 0, len(search.Strategies))

	bar := model.NewBar(len(search.Strategies), "benchmarking strategies")
	for _, strategy := range search.Strategies {
		res, err := search.Run(root, strategy, search.Options{
			Heuristic:     h,
			Weight:        req.Weight,
			MaxExpansions: budget,
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		rows = append(rows, row{strategy: strategy, result: res})
		bar.Add(1)
	}
	bar.Close()

	fmt.Printf("\n%-8s %-16s %10s %10s %6s\n", "strategy", "outcome", "expanded", "max depth", "path")
	for _, r := range rows {
		outcome := aurora.Red(string(r.result.Outcome))
		if r.result.Outcome == search.Solved {
			outcome = aurora.Green(string(r.result.Outcome))
		}
		fmt.Printf("%-8s %-25v %10d %10d %6d\n",
			r.strategy, outcome, r.result.Expanded, r.result.MaxDepth, len(r.result.Path))
	}
}
