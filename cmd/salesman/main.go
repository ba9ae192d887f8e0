// Command salesman solves planar travelling-salesman instances from CSV
// point sets, exactly (brute force) and/or heuristically (nearest neighbor),
// and reports tours, costs, timings and the heuristic gap.
//
// Usage:
//
//	salesman [points.csv]
//
// The dataset path may also come from SALESMAN_DATASET; all other knobs are
// environment variables (see internal/config).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/internal/config"
	"github.com/katalvlaran/salesman/internal/dataset"
	"github.com/katalvlaran/salesman/internal/logging"
	"github.com/katalvlaran/salesman/internal/render"
	"github.com/katalvlaran/salesman/internal/report"
	"github.com/katalvlaran/salesman/tsp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "salesman: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(os.Args) > 1 {
		cfg.Dataset.Path = os.Args[1]
	}
	if cfg.Dataset.Path == "" {
		return errors.New("no dataset: pass a CSV path or set SALESMAN_DATASET")
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	pts, err := dataset.LoadCSV(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("points", len(pts)))

	opts := tsp.DefaultOptions()
	opts.StartVertex = cfg.Solve.StartVertex
	opts.MaxExactNodes = cfg.Solve.MaxExactNodes
	opts.Workers = cfg.Solve.Workers

	ctx := context.Background()
	if cfg.Solve.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solve.TimeLimit)
		defer cancel()
	}

	rep := report.New(os.Stdout, cfg.Output.NoColor)
	var exactRun, heurRun *report.Run

	if cfg.WantExact() {
		started := time.Now()
		res, serr := tsp.SolveExact(ctx, pts, opts)
		if serr != nil {
			if errors.Is(serr, tsp.ErrIntractableInstance) {
				logger.Warn("exact solve skipped: instance too large",
					zap.Int("points", len(pts)))
			} else {
				return fmt.Errorf("exact solve: %w", serr)
			}
		} else {
			exactRun = &report.Run{
				Label:   "exact (brute force)",
				Result:  res,
				Elapsed: time.Since(started),
			}
			rep.Print(*exactRun)
		}
	}

	if cfg.WantHeuristic() {
		started := time.Now()
		res, serr := tsp.SolveHeuristic(pts, opts)
		if serr != nil {
			return fmt.Errorf("heuristic solve: %w", serr)
		}
		heurRun = &report.Run{
			Label:   "heuristic (nearest neighbor)",
			Result:  res,
			Elapsed: time.Since(started),
		}
		rep.Print(*heurRun)
	}

	if exactRun != nil && heurRun != nil {
		rep.Gap(*exactRun, *heurRun)
	}

	if cfg.Output.PlotPath != "" {
		best := heurRun
		if exactRun != nil {
			best = exactRun
		}
		if best == nil {
			return errors.New("no tour to plot")
		}
		if err = render.TourPNG(pts, best.Result.Tour, cfg.Output.PlotPath); err != nil {
			return err
		}
		logger.Info("tour rendered", zap.String("path", cfg.Output.PlotPath))
	}

	return nil
}
