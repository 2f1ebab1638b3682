// Package config manages aoc configuration and filesystem paths.
//
// Configuration lives under a root directory, ~/.aoc by default, holding an
// optional config.yaml and an inputs/ directory with one file per puzzle day.
// Both locations can be overridden with environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by aoc.
type Paths struct {
	// Root is the base directory for all aoc data (default: ~/.aoc)
	Root string

	// Inputs is the default directory holding dayNN.txt puzzle inputs
	Inputs string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for aoc.
// Paths can be overridden with environment variables:
// - AOC_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("AOC_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".aoc")
	}

	return &Paths{
		Root:   root,
		Inputs: filepath.Join(root, "inputs"),
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

// InputPath returns the conventional input file for day, e.g. inputs/day03.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}
