package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/danieljhkim/aoc/internal/clock"
	"github.com/danieljhkim/aoc/internal/config"
	"github.com/danieljhkim/aoc/internal/engine"
	"github.com/danieljhkim/aoc/internal/fsops"
	"github.com/danieljhkim/aoc/internal/hash"
)

var (
	// cfg and logger are set by the root command's PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// loadConfig loads the config file named by --config, or the default one.
func loadConfig() (*config.Config, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	path := configPath
	if path == "" {
		path = paths.Config
	}

	c, err := config.Load(path, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return c, nil
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	workers := 1
	if cfg != nil {
		workers = cfg.Workers
	}
	return engine.New(
		fsops.NewRealFS(),
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
		logger,
		workers,
	)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printSummary prints the run details shared by every puzzle.
func printSummary(w io.Writer, s engine.Summary) {
	PrintLabelValue(w, "Input", s.InputPath)
	PrintLabelValue(w, "Records", fmt.Sprintf("%d", s.Records))
	PrintLabelValue(w, "Digest", shortDigest(s.InputDigest))
	PrintLabelValue(w, "Elapsed", s.Elapsed.String())
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
