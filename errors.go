package disjoint

import "fmt"

// An OutOfBoundsError reports an index that falls outside the extent of
// an access. Index and Bound have the shape of the access's index type:
// for a slice access they are ints, for a matrix access they are
// (row, column) pairs.
type OutOfBoundsError struct {
	Index any // the offending index
	Bound any // the extent that was violated
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %v out of bounds for extent %v", e.Index, e.Bound)
}
