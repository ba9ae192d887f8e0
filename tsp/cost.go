// Package tsp — tour-cost evaluation shared by both solvers.
//
// Costs accumulate in natural float64 addition, in tour order, with no
// rounding or compensated summation. Evaluation order is fixed, so identical
// inputs always produce bit-identical costs, which the strict less-than
// tie-break in exact.go relies on.
package tsp

import (
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// TourCost sums the edge distances along a closed tour, including the edge
// from the last vertex back to the first.
//
// Contract:
//   - tour must be a closed cycle: len(tour) ≥ 2 and tour[0] == tour[len-1]
//     is expected but not enforced; every consecutive pair is charged.
//   - dist must be square (n×n) with indices covering the tour.
//   - Returns ErrNonSquare, ErrDimensionMismatch, or ErrNegativeWeight.
//
// Note: solvers validate inputs upfront via validateSolveInputs and use the
// flat-buffer fast path below; this entry point guards against misuse when
// called directly.
//
// Complexity: O(n), no allocation beyond the accumulator.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	// Shape guard.
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	// Main accumulation.
	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
		n    = nr
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrDimensionMismatch
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return sum, nil
}

// ringCost evaluates one candidate ordering of the non-start nodes against
// the prefetched weight buffer: start → ordering… → start.
//
// The caller guarantees w is a validated n×n row-major buffer and every
// ordering element lies in [0..n-1]; there are no checks on this hot path.
//
// Complexity: O(n), zero allocations.
func ringCost(w []float64, n int, start int, ordering []int) float64 {
	var (
		sum  = w[start*n+ordering[0]] // opening edge from the start node
		i    int
		last = len(ordering) - 1
	)
	for i = 0; i < last; i++ {
		sum += w[ordering[i]*n+ordering[i+1]]
	}
	sum += w[ordering[last]*n+start] // closing edge back to the start node

	return sum
}

// closeTour materializes a full closed tour from the start vertex and an
// ordering of the remaining nodes: [start, ordering…, start].
//
// Complexity: O(n) time, O(n) space.
func closeTour(start int, ordering []int) []int {
	tour := make([]int, len(ordering)+2)
	tour[0] = start
	copy(tour[1:], ordering)
	tour[len(tour)-1] = start

	return tour
}
