package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/aoc/internal/frequency"
)

// Frequency solves the frequency calibration puzzle (day 1).
func (e *Engine) Frequency(ctx context.Context, req *PuzzleRequest) (*FrequencyResult, error) {
	in, err := e.load(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	changes := frequency.Parse(in.lines)
	repeat, err := frequency.FirstRepeat(changes)
	if err != nil {
		return nil, fmt.Errorf("failed to find repeated frequency: %w", err)
	}

	return &FrequencyResult{
		Resulting:   frequency.Sum(changes),
		FirstRepeat: repeat,
		Summary:     e.summary(in, len(changes)),
	}, nil
}
