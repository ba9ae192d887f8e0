// Package matrix - Symmetric, a packed upper-triangular implementation of the
// Matrix interface. Entry (i, j) and entry (j, i) share one storage cell and
// the diagonal is implicitly zero, which encodes the distance-matrix
// invariants (symmetry, zero self-distance) structurally instead of by
// convention.
package matrix

import "fmt"

// symErrorf wraps an underlying error with Symmetric method context.
func symErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Symmetric.%s(%d,%d): %w", method, row, col, err)
}

// Symmetric is an n×n symmetric float64 matrix with a fixed zero diagonal.
// Only the strict upper triangle is stored, row by row, in a flat slice of
// length n·(n−1)/2.
type Symmetric struct {
	n    int       // matrix order (rows == cols == n)
	data []float64 // packed strict upper triangle, length n*(n-1)/2
}

// NewSymmetric creates an n×n Symmetric matrix initialized to zeros.
// Stage 1 (Validate): ensure n ≥ 0 (n == 0 yields a valid empty matrix).
// Stage 2 (Prepare): allocate the packed backing slice.
// Stage 3 (Finalize): return the new Symmetric or ErrInvalidDimensions.
// Complexity: O(n²) time and O(n²) memory in the logical size (half stored).
func NewSymmetric(n int) (*Symmetric, error) {
	// Validate order; zero is allowed so empty point sets build empty matrices.
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate the packed triangle.
	data := make([]float64, n*(n-1)/2)

	return &Symmetric{n: n, data: data}, nil
}

// Rows returns the matrix order.
// Complexity: O(1).
func (m *Symmetric) Rows() int {
	return m.n
}

// Cols returns the matrix order.
// Complexity: O(1).
func (m *Symmetric) Cols() int {
	return m.n
}

// indexOf maps (row, col) with row < col onto the packed triangle offset.
// Callers must have ordered the pair and excluded the diagonal.
// Complexity: O(1).
func (m *Symmetric) indexOf(row, col int) int {
	// Offset of the row block plus the column position inside it.
	return row*(2*m.n-row-1)/2 + (col - row - 1)
}

// At retrieves the element at (row, col); (i, j) and (j, i) are the same cell
// and the diagonal always reads zero.
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): order the pair, read from the packed triangle.
// Complexity: O(1).
func (m *Symmetric) At(row, col int) (float64, error) {
	// Validate both indices against the order.
	if row < 0 || row >= m.n {
		return 0, symErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, symErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	// The diagonal is structurally zero.
	if row == col {
		return 0, nil
	}
	// Normalize to the stored (upper) orientation.
	if row > col {
		row, col = col, row
	}

	return m.data[m.indexOf(row, col)], nil
}

// Set assigns value v at (row, col) and, by construction, at (col, row).
// Writing a non-zero value onto the diagonal returns ErrDiagonalWrite;
// writing zero onto the diagonal is a no-op.
// Complexity: O(1).
func (m *Symmetric) Set(row, col int, v float64) error {
	// Validate both indices against the order.
	if row < 0 || row >= m.n {
		return symErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return symErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	// Diagonal writes: only the fixed zero is representable.
	if row == col {
		if v != 0 {
			return symErrorf("Set", row, col, ErrDiagonalWrite)
		}

		return nil
	}
	// Normalize to the stored (upper) orientation.
	if row > col {
		row, col = col, row
	}
	m.data[m.indexOf(row, col)] = v

	return nil
}

// Clone returns a deep copy of the Symmetric matrix.
// Complexity: O(n²) logical, O(n·(n−1)/2) copied.
func (m *Symmetric) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Symmetric{n: m.n, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Symmetric) String() string {
	var (
		s    string
		i, j int
		v    float64
	)
	for i = 0; i < m.n; i++ { // iterate over rows
		s += "["
		for j = 0; j < m.n; j++ { // iterate over columns
			v, _ = m.At(i, j) // in-bounds by construction
			s += fmt.Sprintf("%g", v)
			if j < m.n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
