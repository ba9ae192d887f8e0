// Package tsp — lazy permutation enumeration for the exact solver.
//
// The Enumerator streams every ordering of the non-start nodes one at a time,
// without materializing the (n−1)! sequence. Emission order is the factorial
// index order of gonum's stat/combin package, which for a full permutation is
// lexicographic over the ascending non-start node list. That order is the
// module-wide tie-break authority: the exact solver keeps the first minimal
// ordering it sees, and parallel shards compare permutation ranks, so every
// run — sequential or sharded — resolves cost ties identically.
package tsp

import "gonum.org/v1/gonum/stat/combin"

// Enumerator is a lazy, finite, restartable stream over all orderings of the
// nodes {0..n-1} \ {start}. It is not safe for concurrent use; parallel
// consumers shard the rank space instead (see exact.go).
type Enumerator struct {
	nodes []int                        // non-start node indices, ascending
	k     int                          // len(nodes) == n-1
	gen   *combin.PermutationGenerator // underlying index stream; nil when k == 0
	buf   []int                        // scratch for generator output (indices into nodes)
	cur   []int                        // current ordering in node-index terms
	rank  int                          // rank of cur; -1 before the first Next
}

// NewEnumerator builds an enumerator over the orderings of the non-start
// nodes of an n-node instance.
//
// Contracts:
//   - n ≥ 1 and start ∈ [0..n-1]; n == 1 yields an empty sequence.
//   - n ≤ maxEnumerableNodes, so ordering counts and ranks fit in int.
//
// Complexity: O(n) construction, O(1) memory per emitted ordering.
func NewEnumerator(n, start int) (*Enumerator, error) {
	if n < 1 {
		return nil, ErrDimensionMismatch
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}
	if n > maxEnumerableNodes {
		return nil, ErrIntractableInstance
	}

	// Collect the non-start nodes in ascending order; this fixes the
	// lexicographic reference frame for the whole enumeration.
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

	e := &Enumerator{
		nodes: nodes,
		k:     k,
		buf:   make([]int, k),
		cur:   make([]int, k),
		rank:  -1,
	}
	if k > 0 {
		e.gen = combin.NewPermutationGenerator(k, k)
	}

	return e, nil
}

// Count returns the total number of orderings the stream emits: (n−1)!,
// or 0 for the single-node instance.
//
// Complexity: O(n).
func (e *Enumerator) Count() int {
	if e.k == 0 {
		return 0
	}

	return combin.NumPermutations(e.k, e.k)
}

// Next advances to the next ordering. It returns false once the sequence is
// exhausted (immediately, for the single-node instance).
//
// Complexity: O(n) per call, no allocations.
func (e *Enumerator) Next() bool {
	if e.gen == nil || !e.gen.Next() {
		return false
	}
	e.gen.Permutation(e.buf)

	// Translate positions into node indices.
	var i int
	for i = 0; i < e.k; i++ {
		e.cur[i] = e.nodes[e.buf[i]]
	}
	e.rank++

	return true
}

// Current returns the ordering produced by the last successful Next call.
// The slice is reused by the enumerator and is only valid until the next
// Next or Reset; callers keeping it must copy.
func (e *Enumerator) Current() []int {
	return e.cur
}

// Rank returns the zero-based position of the current ordering within the
// full enumeration, or -1 before the first Next.
func (e *Enumerator) Rank() int {
	return e.rank
}

// Reset rewinds the stream to its initial state, so the same sequence can be
// replayed from the first ordering.
//
// Complexity: O(1).
func (e *Enumerator) Reset() {
	if e.k > 0 {
		e.gen = combin.NewPermutationGenerator(e.k, e.k)
	}
	e.rank = -1
}

// OrderingAt materializes the ordering with the given rank without touching
// the stream position. It allocates its own result; the hot sharded path in
// exact.go performs the same mapping with caller-owned buffers instead.
//
// Complexity: O(n) time, O(n) space.
func (e *Enumerator) OrderingAt(rank int) ([]int, error) {
	if e.k == 0 || rank < 0 || rank >= e.Count() {
		return nil, ErrDimensionMismatch
	}
	var (
		idx = make([]int, e.k)
		out = make([]int, e.k)
		i   int
	)
	combin.IndexToPermutation(idx, rank, e.k, e.k)
	for i = 0; i < e.k; i++ {
		out[i] = e.nodes[idx[i]]
	}

	return out, nil
}
