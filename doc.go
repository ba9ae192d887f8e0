// Package salesman solves planar travelling-salesman instances: load a set
// of 2-D points, build their Euclidean distance matrix, then find a closed
// tour — exactly by exhaustive search, or quickly by a greedy heuristic.
//
// 🚀 What is salesman?
//
//	A small, deterministic TSP toolkit built from four layers:
//		• geom/   — point validation & Euclidean distance matrices
//		• matrix/ — packed symmetric float64 matrix storage
//		• tsp/    — solvers: brute force (exact) & nearest neighbor (heuristic)
//		• cmd/    — the salesman CLI: CSV in, tours, timings & plots out
//
// ✨ Why choose salesman?
//
//   - Deterministic – identical input yields bit-identical tours and costs,
//     sequential or sharded across workers
//   - Guarded – exhaustive search refuses instances past a configurable
//     node ceiling instead of running forever
//   - Cancellable – long solves honor context cancellation mid-enumeration
//   - Strict – malformed matrices and degenerate inputs fail fast with
//     typed sentinel errors
//
// Quick example:
//
//	pts := []orb.Point{{2, 7}, {4, 6}, {18, 3}, {12, 50}, {7, 29}}
//	res, err := tsp.SolveExact(ctx, pts, tsp.DefaultOptions())
//	// res.Tour = [0 4 3 2 1 0], res.Cost ≈ 108.083381
//
// See tsp/doc.go for solver contracts and complexity bounds.
package salesman
