// Package config loads the salesman CLI configuration from the environment.
//
// Every knob carries a SALESMAN_ prefix and a sensible default, so a bare
// invocation with just a dataset path works out of the box.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Algorithm selector values accepted by SALESMAN_ALGO.
const (
	AlgoBruteForce      = "brute_force"
	AlgoNearestNeighbor = "nearest_neighbor"
	AlgoBoth            = "both"
)

// ErrBadAlgo is returned when SALESMAN_ALGO names an unknown solver.
var ErrBadAlgo = errors.New("config: unknown algorithm selector")

// Config holds every runtime knob of the salesman CLI.
type Config struct {
	Dataset struct {
		// Path points at a CSV of "x,y" rows; a positional CLI argument
		// overrides it.
		Path string `env:"SALESMAN_DATASET"`
	}
	Solve struct {
		Algo          string        `env:"SALESMAN_ALGO" envDefault:"both"`
		StartVertex   int           `env:"SALESMAN_START" envDefault:"0"`
		MaxExactNodes int           `env:"SALESMAN_MAX_EXACT_NODES" envDefault:"0"`
		Workers       int           `env:"SALESMAN_WORKERS" envDefault:"1"`
		TimeLimit     time.Duration `env:"SALESMAN_TIME_LIMIT" envDefault:"0"`
	}
	Logging struct {
		Level  string `env:"SALESMAN_LOG_LEVEL" envDefault:"info"`
		Format string `env:"SALESMAN_LOG_FORMAT" envDefault:"console"`
	}
	Output struct {
		// PlotPath, when non-empty, is where the tour rendering is written.
		PlotPath string `env:"SALESMAN_PLOT"`
		NoColor  bool   `env:"SALESMAN_NO_COLOR" envDefault:"false"`
	}
}

// Load parses the environment into a Config and validates cross-field rules.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	switch cfg.Solve.Algo {
	case AlgoBruteForce, AlgoNearestNeighbor, AlgoBoth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadAlgo, cfg.Solve.Algo)
	}

	return cfg, nil
}

// WantExact reports whether the brute-force solver should run.
func (c *Config) WantExact() bool {
	return c.Solve.Algo == AlgoBruteForce || c.Solve.Algo == AlgoBoth
}

// WantHeuristic reports whether the nearest-neighbor solver should run.
func (c *Config) WantHeuristic() bool {
	return c.Solve.Algo == AlgoNearestNeighbor || c.Solve.Algo == AlgoBoth
}
