package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

func TestSolveHeuristic_ReferenceInstance(t *testing.T) {
	res, err := tsp.SolveHeuristic(specPoints(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(res.Tour, 5, startV))

	// Greedy walk from A: B is nearest, then C, then E, then D remains.
	require.Equal(t, []int{0, 1, 2, 4, 3, 0}, res.Tour)

	// The reported cost is exactly the cost of the reported tour.
	dist, err := geom.DistanceMatrix(specPoints())
	require.NoError(t, err)
	want, err := tsp.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.Equal(t, want, res.Cost)
}

func TestSolveHeuristic_NeverBeatsExact(t *testing.T) {
	// Suboptimality is a documented property: the greedy cost may exceed the
	// optimum but can never undercut it.
	heur, err := tsp.SolveHeuristic(specPoints(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, heur.Cost, specExactCost-costTol)

	exact, err := tsp.SolveExact(context.Background(), specPoints(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, heur.Cost, exact.Cost)
}

func TestSolveHeuristic_TwoNodesMatchesExact(t *testing.T) {
	pts := specTriangle()[:2]

	heur, err := tsp.SolveHeuristic(pts, tsp.DefaultOptions())
	require.NoError(t, err)

	exact, err := tsp.SolveExact(context.Background(), pts, tsp.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, exact.Tour, heur.Tour)
	require.Equal(t, exact.Cost, heur.Cost)
	require.InDelta(t, 6.0, heur.Cost, tightTol) // out-and-back: 2 × d(p0,p1)
}

func TestNearestNeighbor_TieBreakPrefersLowestIndex(t *testing.T) {
	// Hand-built symmetric matrix with deliberate distance ties:
	// from 0 both 1 and 2 sit at distance 1; from 1 both 2 and 3 sit at 1.
	dist := gridMatrix{a: [][]float64{
		{0, 1, 1, 2},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{2, 1, 1, 0},
	}}

	res, err := tsp.NearestNeighborOnMatrix(dist, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	require.Equal(t, 5.0, res.Cost)
}

func TestSolveHeuristic_NoCapacityGuard(t *testing.T) {
	// Sizes far beyond the exact bound stay tractable for the greedy solver.
	pts := ringPoints(200, 100)

	res, err := tsp.SolveHeuristic(pts, tsp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(res.Tour, 200, startV))
	require.Greater(t, res.Cost, 0.0)
}

func TestSolveHeuristic_Determinism(t *testing.T) {
	first, err := tsp.SolveHeuristic(specPoints(), tsp.DefaultOptions())
	require.NoError(t, err)

	Repeat(t, 10, func(t *testing.T) {
		res, rerr := tsp.SolveHeuristic(specPoints(), tsp.DefaultOptions())
		require.NoError(t, rerr)
		require.Equal(t, first.Tour, res.Tour)
		require.Equal(t, first.Cost, res.Cost)
	})
}

func TestSolveHeuristic_InvalidInputs(t *testing.T) {
	_, err := tsp.SolveHeuristic(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooFewNodes)

	_, err = tsp.SolveHeuristic(specPoints()[:1], tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooFewNodes)

	opts := tsp.DefaultOptions()
	opts.StartVertex = 17
	_, err = tsp.SolveHeuristic(specPoints(), opts)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestSolveHeuristic_StartVertexVariants(t *testing.T) {
	// Every start vertex yields a valid closed tour anchored at that vertex;
	// independent starts are how callers parallelize the heuristic.
	var start int
	for start = 0; start < 5; start++ {
		opts := tsp.DefaultOptions()
		opts.StartVertex = start
		res, err := tsp.SolveHeuristic(specPoints(), opts)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(res.Tour, 5, start))
		require.GreaterOrEqual(t, res.Cost, specExactCost-costTol)
	}
}
