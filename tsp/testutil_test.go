// Package tsp_test provides lightweight testing helpers shared across the
// *_test.go files in this package. The helpers are intentionally minimal and
// avoid duplicating functionality that lives in focused test files.
package tsp_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/salesman/matrix"
)

const (
	// startV is the canonical start vertex used across tests.
	startV = 0

	// costTol is the tolerance for comparing solver costs against reference
	// values computed outside this module.
	costTol = 1e-6

	// tightTol is the tolerance for comparisons within this module, where
	// both sides accumulate in the same order.
	tightTol = 1e-9
)

// specPoints is the reference five-point instance from the module docs:
// A(2,7) B(4,6) C(18,3) D(12,50) E(7,29). The optimal closed tour from A
// costs ≈ 108.08338149298454; nearest-neighbor from A walks A→B→C→E→D→A.
func specPoints() []orb.Point {
	return []orb.Point{{2, 7}, {4, 6}, {18, 3}, {12, 50}, {7, 29}}
}

// specExactCost is the reference optimum for specPoints from start 0.
const specExactCost = 108.08338149298454

// gridMatrix is a plain [][]float64 implementation of matrix.Matrix used to
// feed the validators shapes and values the packed Symmetric type cannot
// represent (asymmetry, non-zero diagonals, NaN, non-square).
type gridMatrix struct{ a [][]float64 }

var _ matrix.Matrix = gridMatrix{}

func (m gridMatrix) Rows() int { return len(m.a) }
func (m gridMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m gridMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}
func (m gridMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}
func (m gridMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return gridMatrix{a: cp}
}

// ringPoints places n points evenly on a circle of the given radius; the
// optimal tour visits them in angular order.
func ringPoints(n int, radius float64) []orb.Point {
	pts := make([]orb.Point, n)
	var i int
	for i = 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}

	return pts
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}
