// Package tsp - validation utilities shared by the exact and greedy solvers.
//
// This file contains small, tight helpers that:
//  1. Validate distance matrices (shape, diagonal, negativity, finiteness, symmetry).
//  2. Validate the start vertex and Options combinations.
//  3. Prefetch a validated matrix into a flat buffer for the hot loops.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations
//     beyond the prefetch buffer.
package tsp

import (
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks. Distance
// matrices built by geom satisfy both exactly; the tolerance exists for
// alternative Matrix implementations fed in by callers.
const symTol = 1e-12

// validateSolveInputs verifies Options + distance matrix + start vertex.
// It returns n (matrix order) on success.
//
// Contract:
//   - dist must be non-nil, square, of size n ≥ 2, with zero diagonal,
//     finite non-negative entries, and symmetric within symTol.
//   - opts.StartVertex must lie in [0, n).
//   - opts.Workers and opts.MaxExactNodes must be non-negative.
//
// Complexity: O(n²) time, O(1) extra space.
func validateSolveInputs(dist matrix.Matrix, opts Options) (int, error) {
	// Stage 1: Options-only sanity.
	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Stage 2: matrix shape and values.
	n, err := validateDistMatrix(dist, symTol)
	if err != nil {
		return 0, err
	}

	// Stage 3: start vertex range (after n is known).
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing matrices.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// Negative capacity bounds and worker counts are undefined; zero means
	// "use the default" for both and is accepted.
	if opts.MaxExactNodes < 0 {
		return ErrDimensionMismatch
	}
	if opts.Workers < 0 {
		return ErrDimensionMismatch
	}

	// Accept only known algorithms; the dispatcher re-checks on routing.
	switch opts.Algo {
	case BruteForce, NearestNeighbor:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// validateStartVertex verifies that start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative, NaN, or ±Inf entries anywhere,
//   - |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, tol float64) (int, error) {
	// Stage 1: shape checks (non-nil, square, big enough to tour).
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		// 0×0 and 1×1 matrices are well-formed but admit no closed tour.
		return 0, ErrTooFewNodes
	}
	n := nr

	// Stage 2: diagonal, negativity, finiteness, symmetry.
	var (
		i, j     int     // loop indices
		aij, aji float64 // matrix entries a[i][j] and a[j][i]
		err      error
		abs      float64 // scratch for |value|
	)

	// Diagonal: a_ii ≈ 0 within tol, finite.
	for i = 0; i < n; i++ {
		aij, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrDimensionMismatch
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Upper triangle: values and symmetry in one pass (the lower triangle is
	// covered by the symmetry comparison).
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			aji, err = dist.At(j, i)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return 0, ErrDimensionMismatch
			}
			if math.IsInf(aij, 0) || math.IsInf(aji, 0) {
				// Euclidean instances are complete; a missing edge is a
				// malformed input here, not a reachable graph state.
				return 0, ErrDimensionMismatch
			}
			if aij < 0 || aji < 0 {
				return 0, ErrNegativeWeight
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs
			}
			if abs > tol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

// prefetch loads a validated n×n matrix into a flat row-major buffer so the
// hot loops read w[u*n+v] without interface-call overhead.
//
// Complexity: O(n²) time, O(n²) space.
func prefetch(dist matrix.Matrix, n int) ([]float64, error) {
	var (
		w    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}
