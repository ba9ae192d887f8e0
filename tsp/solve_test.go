package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

func TestSolve_RoutesOnAlgo(t *testing.T) {
	ctx := context.Background()

	exactOpts := tsp.DefaultOptions() // Algo: BruteForce
	exact, err := tsp.Solve(ctx, specPoints(), exactOpts)
	require.NoError(t, err)
	require.InDelta(t, specExactCost, exact.Cost, costTol)

	heurOpts := tsp.DefaultOptions()
	heurOpts.Algo = tsp.NearestNeighbor
	heur, err := tsp.Solve(ctx, specPoints(), heurOpts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 4, 3, 0}, heur.Tour)
}

func TestSolve_UnknownAlgoIsRejected(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algo(42)
	_, err := tsp.Solve(context.Background(), specPoints(), opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestSolve_NonFiniteCoordinatesAreRejected(t *testing.T) {
	pts := []orb.Point{{0, 0}, {math.NaN(), 1}, {2, 2}}

	_, err := tsp.SolveExact(context.Background(), pts, tsp.DefaultOptions())
	require.ErrorIs(t, err, geom.ErrNonFiniteCoordinate)

	_, err = tsp.SolveHeuristic(pts, tsp.DefaultOptions())
	require.ErrorIs(t, err, geom.ErrNonFiniteCoordinate)
}

func TestSolve_SharedMatrixServesBothSolvers(t *testing.T) {
	// One read-only matrix, consumed by both solvers concurrently.
	dist, err := geom.DistanceMatrix(specPoints())
	require.NoError(t, err)

	type outcome struct {
		res tsp.Result
		err error
	}
	exactCh := make(chan outcome, 1)
	heurCh := make(chan outcome, 1)

	go func() {
		res, serr := tsp.ExactOnMatrix(context.Background(), dist, tsp.DefaultOptions())
		exactCh <- outcome{res: res, err: serr}
	}()
	go func() {
		res, serr := tsp.NearestNeighborOnMatrix(dist, tsp.DefaultOptions())
		heurCh <- outcome{res: res, err: serr}
	}()

	exact := <-exactCh
	heur := <-heurCh
	require.NoError(t, exact.err)
	require.NoError(t, heur.err)
	require.InDelta(t, specExactCost, exact.res.Cost, costTol)
	require.GreaterOrEqual(t, heur.res.Cost, exact.res.Cost)
}

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{0, 1, 2, 0}, 3, 0))
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 2}, 3, 2))

	// Wrong length.
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 0}, 3, 0), tsp.ErrDimensionMismatch)
	// Not closed at start.
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 1}, 3, 0), tsp.ErrDimensionMismatch)
	// Duplicate vertex.
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 1, 0}, 3, 0), tsp.ErrDimensionMismatch)
	// Undersized instance and bad start.
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 0}, 1, 0), tsp.ErrTooFewNodes)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 0}, 3, 3), tsp.ErrStartOutOfRange)
}

func TestCopyTour(t *testing.T) {
	require.Nil(t, tsp.CopyTour(nil))

	src := []int{0, 2, 1, 0}
	cp := tsp.CopyTour(src)
	require.Equal(t, src, cp)

	cp[1] = 9
	require.Equal(t, []int{0, 2, 1, 0}, src) // original untouched
}
