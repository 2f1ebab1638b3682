package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/aoc/internal/claims"
	"github.com/danieljhkim/aoc/internal/overlap"
)

// Fabric solves the fabric claims puzzle (day 3).
func (e *Engine) Fabric(ctx context.Context, req *PuzzleRequest) (*FabricResult, error) {
	in, err := e.load(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	workers := e.workers
	if req.Workers > 0 {
		workers = req.Workers
	}

	list := claims.Parse(in.lines)
	if dropped := len(in.lines) - len(list); dropped > 0 {
		e.logger.Debug("Skipped malformed claim records", zap.Int("count", dropped))
	}

	resolver, err := overlap.New(ctx, list, workers)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Accumulated claims",
		zap.Int("claims", len(list)),
		zap.Int("workers", workers))

	id, err := resolver.UniqueClaim()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve claims in %s: %w", in.path, err)
	}

	return &FabricResult{
		Overlapping: resolver.Overlapping(),
		UniqueClaim: id,
		Summary:     e.summary(in, len(list)),
	}, nil
}
