package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/aoc/internal/boxid"
)

// BoxIDs solves the box inventory puzzle (day 2).
func (e *Engine) BoxIDs(ctx context.Context, req *PuzzleRequest) (*BoxIDResult, error) {
	in, err := e.load(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	common, err := boxid.CommonLetters(in.lines)
	if err != nil {
		return nil, fmt.Errorf("failed to find matching box ids: %w", err)
	}

	return &BoxIDResult{
		Checksum:      boxid.Checksum(in.lines),
		CommonLetters: common,
		Summary:       e.summary(in, len(in.lines)),
	}, nil
}
