package disjoint

/*
A SliceAccess provides unsynchronized access to the elements of a slice.
It is the base case of the access contracts: position i maps to element i,
and the record type is *T.

The usual contract applies: distinct goroutines may hold records for
distinct positions concurrently, and must not hold records for the same
position concurrently.
*/
type SliceAccess[T any] struct {
	data []T
}

// FromSlice wraps a slice in a SliceAccess. The access aliases the
// slice's backing array; the slice must not be resized while the access
// is alive.
func FromSlice[T any](data []T) *SliceAccess[T] {
	return &SliceAccess[T]{data: data}
}

// Len returns the number of elements in the underlying slice.
func (a *SliceAccess[T]) Len() int {
	return len(a.data)
}

// CheckBounds implements the method of the Access interface.
func (a *SliceAccess[T]) CheckBounds(index int) error {
	if index < 0 || index >= len(a.data) {
		return &OutOfBoundsError{Index: index, Bound: len(a.data)}
	}
	return nil
}

// UnsyncRecord returns a pointer to element index. See the Access
// contract for the obligations that make this safe.
func (a *SliceAccess[T]) UnsyncRecord(index int) *T {
	return &a.data[index]
}

var _ Linear[*int] = (*SliceAccess[int])(nil)
