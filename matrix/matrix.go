// Package matrix provides the square float64 matrix primitives used by the
// distance-based solvers in this module.
//
// What & Why:
//
//	Pairwise Euclidean distances are symmetric with a zero diagonal, so the
//	canonical storage here is Symmetric: a packed upper-triangular layout that
//	holds n·(n−1)/2 entries instead of n². Algorithms accept the Matrix
//	interface, which keeps them independent from the storage layout and lets
//	tests substitute alternative implementations.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(n²) of the logical size (O(n·(n−1)/2) stored).
package matrix

import "errors"

// ErrInvalidDimensions indicates that a requested matrix order is negative.
var ErrInvalidDimensions = errors.New("matrix: order must be >= 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDiagonalWrite indicates an attempt to store a non-zero value on the
// diagonal of a Symmetric matrix, whose diagonal is fixed at zero.
var ErrDiagonalWrite = errors.New("matrix: symmetric diagonal is fixed at zero")

// Matrix represents a two-dimensional array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
