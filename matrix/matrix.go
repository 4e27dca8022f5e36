/*
Package matrix adapts gonum dense matrices to the disjoint access
contracts, indexed by (row, column) pairs.

It is also the model for writing adapters for other data structures: an
adapter implements disjoint.Access for its own index type, and everything
else (uniqueness proofs, narrowing, parallel iteration) comes from the
rest of the library unchanged.
*/
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/disjoint"
	"github.com/exascience/disjoint/index"
)

/*
A Dense provides unsynchronized access to the elements of a dense
matrix. The index type is an index.Pair holding (row, column), and the
record type is *float64, pointing into the matrix's backing storage.

The usual contract applies: distinct goroutines may hold records for
distinct coordinates concurrently, and must not hold records for the
same coordinate concurrently.
*/
type Dense struct {
	data       []float64
	rows, cols int
	stride     int
}

// FromDense wraps m. The access aliases the matrix's backing storage;
// the matrix must not be resized while the access is alive.
func FromDense(m *mat.Dense) *Dense {
	raw := m.RawMatrix()
	return &Dense{
		data:   raw.Data,
		rows:   raw.Rows,
		cols:   raw.Cols,
		stride: raw.Stride,
	}
}

// Dims returns the row and column extents of the matrix.
func (a *Dense) Dims() (rows, cols int) {
	return a.rows, a.cols
}

// CheckBounds implements the method of the disjoint.Access interface.
// Each coordinate is checked against the corresponding extent; the
// reported bound is the (rows, cols) pair.
func (a *Dense) CheckBounds(idx index.Pair[int, int]) error {
	if idx.First < 0 || idx.First >= a.rows || idx.Second < 0 || idx.Second >= a.cols {
		return &disjoint.OutOfBoundsError{
			Index: idx,
			Bound: index.Pair[int, int]{First: a.rows, Second: a.cols},
		}
	}
	return nil
}

// UnsyncRecord returns a pointer to the element at (row, column). The
// contract is that of disjoint.Access.
func (a *Dense) UnsyncRecord(idx index.Pair[int, int]) *float64 {
	return &a.data[idx.First*a.stride+idx.Second]
}

var _ disjoint.Access[index.Pair[int, int], *float64] = (*Dense)(nil)
