// Package geom bridges 2D point sets and the packed distance matrices the
// solvers consume.
//
// Points are orb.Point values in a planar (non-geodesic) coordinate system;
// the only metric offered is the Euclidean one, via orb/planar. The produced
// matrix satisfies the solver contract structurally: square, symmetric, zero
// diagonal, all entries finite and non-negative.
//
// Design principles:
//   - Pure functions, no logging, no panics on user input - only sentinel errors.
//   - Point sets of size 0 and 1 build trivially valid matrices; rejecting
//     undersized instances is the solvers' concern, not the builder's.
//
// Complexity: DistanceMatrix is O(n²) time and O(n·(n−1)/2) stored memory.
package geom

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/salesman/matrix"
)

// ErrNonFiniteCoordinate is returned when any input coordinate is NaN or ±Inf.
// Non-finite coordinates would poison every distance derived from the point.
var ErrNonFiniteCoordinate = errors.New("geom: point coordinate is not finite")

// ValidatePoints verifies that every coordinate of every point is finite.
//
// Complexity: O(n) time, O(1) space.
func ValidatePoints(pts []orb.Point) error {
	var (
		i int       // loop index
		p orb.Point // current point under validation
	)
	for i = 0; i < len(pts); i++ {
		p = pts[i]
		if math.IsNaN(p.X()) || math.IsInf(p.X(), 0) {
			return ErrNonFiniteCoordinate
		}
		if math.IsNaN(p.Y()) || math.IsInf(p.Y(), 0) {
			return ErrNonFiniteCoordinate
		}
	}

	return nil
}

// DistanceMatrix builds the n×n symmetric Euclidean distance matrix of pts,
// where entry (i, j) is planar.Distance(pts[i], pts[j]).
//
// Contract:
//   - Every coordinate must be finite; otherwise ErrNonFiniteCoordinate.
//   - n ∈ {0, 1} produces an empty/1×1 zero matrix, which is valid here;
//     solvers reject undersized instances themselves.
//   - The result is exclusively owned by the caller and read-only by
//     convention once handed to a solver.
//
// Complexity: O(n²) time, O(n·(n−1)/2) stored memory.
func DistanceMatrix(pts []orb.Point) (*matrix.Symmetric, error) {
	// Stage 1: coordinate validation (fail before any allocation).
	if err := ValidatePoints(pts); err != nil {
		return nil, err
	}

	// Stage 2: allocate the packed matrix.
	n := len(pts)
	m, err := matrix.NewSymmetric(n)
	if err != nil {
		return nil, err
	}

	// Stage 3: fill the strict upper triangle; symmetry and the zero diagonal
	// come from the storage layout.
	var (
		i, j int     // loop indices over the strict upper triangle
		d    float64 // distance between pts[i] and pts[j]
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = planar.Distance(pts[i], pts[j])
			if serr := m.Set(i, j, d); serr != nil {
				return nil, serr
			}
		}
	}

	return m, nil
}
