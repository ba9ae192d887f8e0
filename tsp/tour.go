// Package tsp — tour structure utilities.
//
// These helpers operate purely on index sequences, without distance matrices.
// They exist for callers and tests that need to check or normalize solver
// output; the solvers construct tours that satisfy ValidateTour by design.
package tsp

// ValidateTour enforces the closed Hamiltonian-cycle invariants used across
// this module:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n < 2 {
		return ErrTooFewNodes
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
