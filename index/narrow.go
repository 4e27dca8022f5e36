package index

import (
	"fmt"

	"github.com/exascience/disjoint"
)

/*
A Narrowed is an access restricted to exactly the positions of a base
access named by a unique index list, reindexed from zero. It implements
disjoint.Linear: position i forwards to the base access at the i-th
index of the list.

A Narrowed holds references to the base access and the index list for its
lifetime; it does not own the underlying collection.
*/
type Narrowed[I comparable, R any] struct {
	base    disjoint.Access[I, R]
	indices Unique[I]
}

/*
Narrow restricts base to the positions named by indices. Every index is
validated against the bounds of base before the narrowed access is
constructed; if any index is out of bounds, Narrow returns an error
wrapping the base's *disjoint.OutOfBoundsError and naming the position in
the index list at which it occurred, and no access is constructed.

The returned access has Len() == indices.Len(). Because indices is
proven unique, any two distinct positions of the narrowed access address
distinct records of base, so the narrowed access inherits the base's
contract: concurrent unsynchronized access to distinct positions is safe.
*/
func Narrow[I comparable, R any](base disjoint.Access[I, R], indices Unique[I]) (*Narrowed[I, R], error) {
	for i, n := 0, indices.Len(); i < n; i++ {
		if err := base.CheckBounds(indices.At(i)); err != nil {
			return nil, fmt.Errorf("narrow: position %d: %w", i, err)
		}
	}
	return &Narrowed[I, R]{base: base, indices: indices}, nil
}

// Len returns the number of records in the narrowed access, which equals
// the length of the index list it was constructed from.
func (a *Narrowed[I, R]) Len() int {
	return a.indices.Len()
}

// CheckBounds implements the method of the disjoint.Access interface.
func (a *Narrowed[I, R]) CheckBounds(index int) error {
	if index < 0 || index >= a.indices.Len() {
		return &disjoint.OutOfBoundsError{Index: index, Bound: a.indices.Len()}
	}
	return nil
}

// UnsyncRecord forwards to the base access at the index stored at the
// given position. The contract is that of disjoint.Access.
func (a *Narrowed[I, R]) UnsyncRecord(index int) R {
	return a.base.UnsyncRecord(a.indices.At(index))
}

var _ disjoint.Linear[*int] = (*Narrowed[int, *int])(nil)
