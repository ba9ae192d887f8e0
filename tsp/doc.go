// Package tsp provides Travelling Salesman Problem solvers over symmetric
// Euclidean distance matrices.
//
// It includes two algorithms:
//
//   - BruteForce — exhaustive search over every ordering of the non-start
//     nodes, guaranteed optimal.
//
//   - Complexity: O((n−1)!·n)
//
//   - Guarded by a configurable capacity bound (DefaultMaxExactNodes) and a
//     cooperative context cancellation checked between evaluations.
//
//   - NearestNeighbor — greedy tour construction stepping to the closest
//     unvisited node, always tractable, not guaranteed optimal.
//
//   - Complexity: O(n²)
//
// Both solvers are deterministic: the brute-force tie-break keeps the first
// minimal ordering in enumeration order (strict less-than updates), and the
// greedy tie-break prefers the lowest node index. Repeated runs on identical
// input return bit-identical tours and costs, including sharded parallel
// brute-force runs, which resolve cross-shard cost ties by permutation rank.
//
// The package never logs or prints; all failures are strict sentinel errors.
// Use SolveExact/SolveHeuristic for point inputs, or the *OnMatrix variants
// to share one prebuilt read-only matrix across several solver invocations.
package tsp
