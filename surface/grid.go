package surface

import (
	"fmt"

	"github.com/arloliu/moebius/errs"
)

// Grid is a square n×n grid of float64 values in row-major order: row index
// follows the u axis, column index follows the v axis.
//
// Grid is a small value wrapping a shared backing slice. Grids owned by a
// Strip are derived state and must be treated as read-only by callers.
type Grid struct {
	n    int
	vals []float64
}

// NewGrid creates a zero-filled n×n grid.
func NewGrid(n int) Grid {
	return Grid{n: n, vals: make([]float64, n*n)}
}

// GridFromValues creates an n×n grid backed by vals, which must have exactly
// n*n elements. The slice is adopted, not copied.
//
// Returns:
//   - Grid: The constructed grid
//   - error: An error wrapping errs.ErrResolutionMismatch when len(vals) != n*n
func GridFromValues(n int, vals []float64) (Grid, error) {
	if n < 1 || len(vals) != n*n {
		return Grid{}, fmt.Errorf("%w: expected %d values for resolution %d, got %d",
			errs.ErrResolutionMismatch, n*n, n, len(vals))
	}

	return Grid{n: n, vals: vals}, nil
}

// Resolution returns the grid dimension n; the grid holds n*n values.
func (g Grid) Resolution() int {
	return g.n
}

// At returns the value at row i (u index) and column j (v index).
func (g Grid) At(i, j int) float64 {
	return g.vals[i*g.n+j]
}

// Row returns the contiguous backing slice of row i. The slice aliases the
// grid storage and must not be modified.
func (g Grid) Row(i int) []float64 {
	return g.vals[i*g.n : (i+1)*g.n]
}

// Values returns the row-major backing slice of the grid. The slice aliases
// the grid storage and must not be modified.
func (g Grid) Values() []float64 {
	return g.vals
}
