package engine

import (
	"context"
	"fmt"
	"sort"
)

// puzzle describes one solvable day.
type puzzle struct {
	title string
	solve func(e *Engine, ctx context.Context, req *PuzzleRequest, out *SolveResult) error
}

var puzzles = map[int]puzzle{
	1: {
		title: "Chronal Calibration",
		solve: func(e *Engine, ctx context.Context, req *PuzzleRequest, out *SolveResult) error {
			res, err := e.Frequency(ctx, req)
			out.Frequency = res
			return err
		},
	},
	2: {
		title: "Inventory Management System",
		solve: func(e *Engine, ctx context.Context, req *PuzzleRequest, out *SolveResult) error {
			res, err := e.BoxIDs(ctx, req)
			out.BoxIDs = res
			return err
		},
	},
	3: {
		title: "No Matter How You Slice It",
		solve: func(e *Engine, ctx context.Context, req *PuzzleRequest, out *SolveResult) error {
			res, err := e.Fabric(ctx, req)
			out.Fabric = res
			return err
		},
	},
}

// Days returns the puzzle days the engine can solve, in ascending order.
func Days() []int {
	days := make([]int, 0, len(puzzles))
	for day := range puzzles {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Title returns the short name of the puzzle for day, or "" if unknown.
func Title(day int) string {
	return puzzles[day].title
}

// Solve solves the puzzle for req.Day.
func (e *Engine) Solve(ctx context.Context, req *SolveRequest) (*SolveResult, error) {
	p, ok := puzzles[req.Day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrUnknownPuzzle, req.Day)
	}

	out := &SolveResult{Day: req.Day, Title: p.title}
	err := p.solve(e, ctx, &PuzzleRequest{
		InputPath: req.InputPath,
		Workers:   req.Workers,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
