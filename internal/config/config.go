package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc configuration.
type Config struct {
	// InputDir is where "solve --day" looks for dayNN.txt files.
	InputDir string `yaml:"input_dir"`

	// Workers is the number of shards used to accumulate fabric claims.
	// Values below 2 accumulate sequentially.
	Workers int `yaml:"workers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(paths *Paths) *Config {
	return &Config{
		InputDir: paths.Inputs,
		Workers:  1,
		LogLevel: "info",
	}
}

// Load reads the YAML config at path on top of the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string, paths *Paths) (*Config, error) {
	cfg := DefaultConfig(paths)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies AOC_INPUT_DIR and AOC_WORKERS.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if raw := os.Getenv("AOC_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid AOC_WORKERS %q: %w", raw, err)
		}
		c.Workers = n
	}
	return nil
}
