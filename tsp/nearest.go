// Package tsp — greedy nearest-neighbor heuristic.
//
// The solver is a three-state machine over a visited set:
//
//	Init:      current = start; visited = {start}; cost = 0; path = [start].
//	Advancing: scan the unvisited nodes, step to the closest one (lowest node
//	           index wins distance ties), charge the edge, repeat until every
//	           node is visited.
//	Done:      charge the closing edge back to start and close the path.
//
// The produced tour is feasible but not guaranteed optimal; that gap is a
// documented property of the algorithm, characterized (not fixed) in tests.
// Unlike the exact solver there is no capacity guard: O(n²) is always
// tractable, which is exactly why this solver exists for large n.
package tsp

import (
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// NearestNeighborOnMatrix builds one greedy tour on a prebuilt distance
// matrix.
//
// Contracts:
//   - dist: square, n ≥ 2, symmetric, zero diagonal, finite non-negative
//     entries (validateSolveInputs).
//   - opts.StartVertex ∈ [0..n-1]; MaxExactNodes and Workers are ignored.
//
// Errors: ErrTooFewNodes, ErrStartOutOfRange, and the matrix-shape sentinels.
//
// Complexity: O(n²) time (n steps × O(n) scan), O(n) space beyond the
// prefetched buffer.
func NearestNeighborOnMatrix(dist matrix.Matrix, opts Options) (Result, error) {
	// Stage 1: unified validation.
	n, err := validateSolveInputs(dist, opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: prefetch the matrix for the scan loops.
	w, err := prefetch(dist, n)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: Init state.
	var (
		start   = opts.StartVertex
		visited = make([]bool, n)     // membership of the visited set
		tour    = make([]int, 0, n+1) // path under construction, closed at the end
		current = start               // node the machine stands on
		cost    float64               // accumulated edge cost
		step    int                   // how many nodes are already visited
	)
	visited[start] = true
	tour = append(tour, start)

	// Stage 4: Advancing state, repeated until every node is visited.
	var (
		chosen int     // next node for this step
		bestD  float64 // distance to chosen
		v      int     // scan index
		d      float64 // distance to the scanned candidate
	)
	for step = 1; step < n; step++ {
		chosen = -1
		bestD = math.Inf(1)
		// Ascending scan + strict less-than: the lowest node index wins ties.
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d = w[current*n+v]
			if d < bestD {
				bestD = d
				chosen = v
			}
		}

		cost += bestD
		visited[chosen] = true
		tour = append(tour, chosen)
		current = chosen
	}

	// Stage 5: Done state — close the cycle back to start.
	cost += w[current*n+start]
	tour = append(tour, start)

	return Result{Tour: tour, Cost: cost}, nil
}
