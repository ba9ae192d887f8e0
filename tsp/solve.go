// Package tsp - unified dispatcher and point-level entry points.
//
// This file provides the canonical ways to run the solvers:
//
//   - SolveExact / SolveHeuristic: accept raw 2D points, build the distance
//     matrix via geom, and delegate to the matrix-level solver.
//   - Solve: route on Options.Algo, for callers that select the algorithm at
//     runtime.
//   - ExactOnMatrix / NearestNeighborOnMatrix (exact.go, nearest.go): consume
//     a prebuilt matrix, so one read-only matrix can serve any number of
//     concurrent solver invocations on the same dataset.
//
// Design principles:
//   - Deterministic: fixed enumeration order, strict tie-breaks, no randomness.
//   - Strict sentinels: only errors from types.go and geom; no fmt.Errorf
//     where a sentinel suffices.
//   - The solvers compute; presentation (printing, timing, plotting) lives
//     with the callers.
package tsp

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/salesman/geom"
)

// SolveExact computes the minimum-cost closed tour over pts, starting and
// ending at opts.StartVertex. It builds the Euclidean distance matrix once
// and delegates to ExactOnMatrix.
//
// Errors: geom.ErrNonFiniteCoordinate for bad coordinates, then everything
// ExactOnMatrix can return.
//
// Complexity: O(n²) matrix build + O((n−1)!·n) search.
func SolveExact(ctx context.Context, pts []orb.Point, opts Options) (Result, error) {
	dist, err := geom.DistanceMatrix(pts)
	if err != nil {
		return Result{}, err
	}

	return ExactOnMatrix(ctx, dist, opts)
}

// SolveHeuristic builds one greedy nearest-neighbor tour over pts from
// opts.StartVertex. It builds the Euclidean distance matrix once and
// delegates to NearestNeighborOnMatrix.
//
// Errors: geom.ErrNonFiniteCoordinate for bad coordinates, then everything
// NearestNeighborOnMatrix can return.
//
// Complexity: O(n²).
func SolveHeuristic(pts []orb.Point, opts Options) (Result, error) {
	dist, err := geom.DistanceMatrix(pts)
	if err != nil {
		return Result{}, err
	}

	return NearestNeighborOnMatrix(dist, opts)
}

// Solve routes to the solver selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm for an unknown Algo, otherwise those of the
// routed solver.
func Solve(ctx context.Context, pts []orb.Point, opts Options) (Result, error) {
	switch opts.Algo {
	case BruteForce:
		return SolveExact(ctx, pts, opts)
	case NearestNeighbor:
		return SolveHeuristic(pts, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
