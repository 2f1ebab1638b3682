// Package engine provides the core orchestration for aoc puzzle runs.
//
// The engine sits between CLI commands and the puzzle packages. For every
// run it reads the input through fsops, digests it, times the solve and
// hands the parsed records to the puzzle's solver.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Frequency/BoxIDs/Fabric: One operation per 2018 puzzle day
//   - Solve: Dispatch by day number
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/aoc/internal/clock"
	"github.com/danieljhkim/aoc/internal/fsops"
	"github.com/danieljhkim/aoc/internal/hash"
)

// Engine orchestrates all aoc operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	hasher  hash.Hasher
	clock   clock.Clock
	logger  *zap.Logger
	workers int
}

// New creates a new Engine with the given dependencies.
// A nil logger is replaced with a no-op logger.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	logger *zap.Logger,
	workers int,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fs:      fs,
		hasher:  hasher,
		clock:   clk,
		logger:  logger,
		workers: workers,
	}
}

// input is a loaded puzzle input.
type input struct {
	path   string
	digest string
	lines  []string
	start  time.Time
}

// load reads and digests the input at path and starts the run timer.
func (e *Engine) load(ctx context.Context, path string) (*input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: input path is required", ErrValidation)
	}

	start := e.clock.Now()
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	in := &input{
		path:   path,
		digest: e.hasher.Sum(data),
		lines:  fsops.SplitLines(data),
		start:  start,
	}
	e.logger.Debug("Loaded input",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("lines", len(in.lines)),
		zap.String("digest", in.digest))
	return in, nil
}

// summary fills the fields shared by every result.
func (e *Engine) summary(in *input, records int) Summary {
	elapsed := clock.Since(e.clock, in.start)
	e.logger.Debug("Solved input",
		zap.String("path", in.path),
		zap.Int("records", records),
		zap.Duration("elapsed", elapsed))
	return Summary{
		InputPath:   in.path,
		InputDigest: in.digest,
		Records:     records,
		Elapsed:     elapsed,
	}
}
