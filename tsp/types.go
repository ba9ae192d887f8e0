package tsp

import "errors"

// Sentinel errors returned by the solvers. Callers match them with errors.Is;
// no error here wraps another and none carries dynamic text.
var (
	// ErrTooFewNodes is returned when the instance has fewer than 2 nodes.
	// A closed tour needs at least an out-and-back pair.
	ErrTooFewNodes = errors.New("tsp: instance needs at least 2 nodes")

	// ErrStartOutOfRange is returned when the start vertex is outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrIntractableInstance is returned by the exact solver, before any
	// enumeration begins, when n exceeds the configured capacity bound.
	ErrIntractableInstance = errors.New("tsp: instance exceeds exact-solver capacity bound")

	// ErrCancelled is returned by the exact solver when the caller's context
	// fires mid-enumeration. No partial minimum is ever returned.
	ErrCancelled = errors.New("tsp: solve cancelled before enumeration finished")

	// ErrNonSquare is returned when the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrNonZeroDiagonal is returned when some self-distance is not ≈ 0.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal must be zero")

	// ErrNegativeWeight is returned when some distance entry is negative.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry is returned when d(i,j) and d(j,i) differ beyond tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix must be symmetric")

	// ErrDimensionMismatch is returned for malformed shapes and values that
	// fit no more specific sentinel (nil matrices, NaN/Inf entries, tours of
	// the wrong length, out-of-range tour vertices).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrUnsupportedAlgorithm is returned by the dispatcher for an unknown Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// DefaultMaxExactNodes bounds the exact solver when Options.MaxExactNodes is
// left at zero. 12 nodes mean 11! ≈ 4·10⁷ evaluated orderings, which stays in
// interactive territory on one core.
const DefaultMaxExactNodes = 12

// maxEnumerableNodes is the hard ceiling on the exact solver regardless of
// configuration: with n−1 = 21 the ordering count 21! no longer fits in int64
// and rank arithmetic would wrap.
const maxEnumerableNodes = 21

// cancelCheckStride controls how often the exact solver polls the context:
// once per this many evaluated orderings. Power of two so the check compiles
// to a mask.
const cancelCheckStride = 1024

// Algo selects the solving algorithm in the dispatcher.
type Algo int

const (
	// BruteForce is the exhaustive exact solver.
	BruteForce Algo = iota

	// NearestNeighbor is the greedy heuristic solver.
	NearestNeighbor
)

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the sequence of vertex indices, starting and ending at the
	// start vertex. For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n].
	Tour []int

	// Cost is the total distance of the cycle, accumulated in natural
	// float64 addition with no rounding.
	Cost float64
}

// Options configures a solver invocation.
//
// Algo          – which solver the dispatcher routes to (BruteForce default).
// StartVertex   – index of the distinguished start node; must be in [0, n).
// MaxExactNodes – capacity bound for BruteForce; 0 means DefaultMaxExactNodes.
// Workers       – BruteForce shard count; values ≤ 1 run sequentially.
//
// NearestNeighbor ignores MaxExactNodes and Workers: it is O(n²) and
// inherently sequential within one tour.
type Options struct {
	Algo          Algo // solving algorithm for the dispatcher
	StartVertex   int  // distinguished start node, fixed for the whole solve
	MaxExactNodes int  // exact-solver capacity bound (0 ⇒ default)
	Workers       int  // exact-solver parallel shards (≤ 1 ⇒ sequential)
}

// DefaultOptions returns an Options value with the documented defaults:
// brute force from vertex 0, DefaultMaxExactNodes capacity, sequential run.
func DefaultOptions() Options {
	return Options{
		Algo:          BruteForce,
		StartVertex:   0,
		MaxExactNodes: DefaultMaxExactNodes,
		Workers:       1,
	}
}
