// Package tsp — exhaustive exact solver.
//
// ExactOnMatrix enumerates every ordering of the non-start nodes, evaluates
// the closed-tour cost of each, and keeps the minimum as an explicit fold:
// identity +∞, combining function "strictly smaller cost wins; on equal cost
// the smaller enumeration rank wins". The combining function is associative,
// which is what makes the sharded parallel path below return the same answer
// as the sequential scan, bit for bit.
//
// Guard rails, both evaluated before enumeration begins:
//   - Capacity bound: n above Options.MaxExactNodes (default
//     DefaultMaxExactNodes) fails with ErrIntractableInstance — factorial
//     growth makes an unguarded run a denial-of-service on the caller.
//   - Cancellation: the caller's context is polled every cancelCheckStride
//     evaluations; a fired context fails the whole call with ErrCancelled,
//     never a partial minimum.
package tsp

import (
	"context"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/salesman/matrix"
)

// ExactOnMatrix solves the TSP exactly on a prebuilt distance matrix.
//
// Contracts:
//   - dist: square, n ≥ 2, symmetric, zero diagonal, finite non-negative
//     entries (validateSolveInputs).
//   - opts.StartVertex ∈ [0..n-1]; opts.MaxExactNodes caps n (0 ⇒ default);
//     opts.Workers > 1 shards the enumeration without changing the result.
//   - ctx may be nil, which disables cancellation.
//
// Errors: ErrTooFewNodes, ErrStartOutOfRange, ErrIntractableInstance,
// ErrCancelled, and the matrix-shape sentinels from types.go.
//
// Complexity: O((n−1)!·n) time, O(n²) space for the prefetched buffer plus
// O(n) per shard.
func ExactOnMatrix(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	// Stage 1: unified validation.
	n, err := validateSolveInputs(dist, opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: capacity guard, before any enumeration work.
	bound := opts.MaxExactNodes
	if bound == 0 {
		bound = DefaultMaxExactNodes
	}
	if bound > maxEnumerableNodes {
		bound = maxEnumerableNodes
	}
	if n > bound {
		return Result{}, ErrIntractableInstance
	}

	// Stage 3: prefetch the matrix for the hot loops.
	w, err := prefetch(dist, n)
	if err != nil {
		return Result{}, err
	}

	// Stage 4: run, sequentially or sharded.
	if opts.Workers <= 1 {
		return exactSequential(ctx, w, n, opts.StartVertex)
	}

	return exactParallel(ctx, w, n, opts.StartVertex, opts.Workers)
}

// cancelled reports whether the (possibly nil) context has fired.
func cancelled(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}

// exactSequential is the single-goroutine fold over the full enumeration.
// The strict less-than update keeps the first minimal ordering in stream
// order, which is the documented tie-break.
func exactSequential(ctx context.Context, w []float64, n, start int) (Result, error) {
	enum, err := NewEnumerator(n, start)
	if err != nil {
		return Result{}, err
	}

	var (
		bestCost = math.Inf(1)      // fold identity
		bestOrd  = make([]int, n-1) // ordering achieving bestCost
		steps    int                // evaluations since start, for ctx polling
		cost     float64            // cost of the current ordering
	)
	for enum.Next() {
		if steps&(cancelCheckStride-1) == 0 && cancelled(ctx) {
			return Result{}, ErrCancelled
		}
		steps++

		cost = ringCost(w, n, start, enum.Current())
		if cost < bestCost {
			bestCost = cost
			copy(bestOrd, enum.Current())
		}
	}

	return Result{Tour: closeTour(start, bestOrd), Cost: bestCost}, nil
}

// shardMin is one shard's partial fold state: the minimal cost seen, the
// global rank of the ordering that achieved it, and the ordering itself.
type shardMin struct {
	cost float64
	rank int // global enumeration rank; -1 while the shard has seen nothing
	ord  []int
	err  error
}

// exactParallel shards the rank space [0, (n−1)!) into contiguous ranges,
// scans each on its own goroutine, and reduces the partial minima with the
// same (cost, rank) combining function the sequential fold applies — so
// cross-shard cost ties resolve to the globally first ordering.
func exactParallel(ctx context.Context, w []float64, n, start, workers int) (Result, error) {
	// Fixed ascending reference frame shared by every shard.
	var (
		k     = n - 1
		nodes = make([]int, 0, k)
		v     int
	)
	for v = 0; v < n; v++ {
		if v != start {
			nodes = append(nodes, v)
		}
	}

	total := combin.NumPermutations(k, k)
	if workers > total {
		workers = total // no empty shards
	}

	// Contiguous shard ranges; the first (total mod workers) shards take one
	// extra rank.
	var (
		per     = total / workers
		rem     = total % workers
		partial = make([]shardMin, workers)
		wg      sync.WaitGroup
		lo      = 0
		s       int
	)
	for s = 0; s < workers; s++ {
		hi := lo + per
		if s < rem {
			hi++
		}
		wg.Add(1)
		go func(slot, lo, hi int) {
			defer wg.Done()
			partial[slot] = scanShard(ctx, w, n, start, nodes, lo, hi)
		}(s, lo, hi)
		lo = hi
	}
	wg.Wait()

	// Deterministic reduction in shard (= rank) order.
	best := shardMin{cost: math.Inf(1), rank: -1}
	for s = 0; s < workers; s++ {
		p := partial[s]
		if p.err != nil {
			return Result{}, p.err
		}
		if p.rank < 0 {
			continue
		}
		if p.cost < best.cost || (p.cost == best.cost && p.rank < best.rank) {
			best = p
		}
	}

	return Result{Tour: closeTour(start, best.ord), Cost: best.cost}, nil
}

// scanShard folds the orderings with global ranks in [lo, hi). Each rank is
// materialized via combin.IndexToPermutation, which is the same mapping the
// sequential Enumerator streams through, so rank r here is ordering r there.
func scanShard(ctx context.Context, w []float64, n, start int, nodes []int, lo, hi int) shardMin {
	var (
		k    = len(nodes)
		idx  = make([]int, k) // positions into nodes for the current rank
		ord  = make([]int, k) // current ordering in node-index terms
		out  = shardMin{cost: math.Inf(1), rank: -1}
		cost float64
		rank int
		i    int
	)
	for rank = lo; rank < hi; rank++ {
		if (rank-lo)&(cancelCheckStride-1) == 0 && cancelled(ctx) {
			out.err = ErrCancelled

			return out
		}

		combin.IndexToPermutation(idx, rank, k, k)
		for i = 0; i < k; i++ {
			ord[i] = nodes[idx[i]]
		}

		cost = ringCost(w, n, start, ord)
		if cost < out.cost {
			out.cost = cost
			out.rank = rank
			if out.ord == nil {
				out.ord = make([]int, k)
			}
			copy(out.ord, ord)
		}
	}

	return out
}
