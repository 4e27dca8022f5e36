/*
Package par distributes the records of an access across parallel workers.

A Producer is a splittable window over the domain of a linear access. An
external fork-join engine only needs the split/length protocol: query
Len, divide the window with SplitAt, recurse, and at a window of length 1
consume the single record. All disjointness reasoning stays inside the
producer; the engine never sees index semantics.

ForEach and Reduce are such engines, provided so that the common cases do
not require writing the recursion by hand. They divide the domain into
batches, run the recursion with one goroutine per fork, and propagate
errors and panics from the workers.
*/
package par

import (
	"fmt"

	"github.com/exascience/disjoint"
)

/*
A Producer is a window [lo, hi) over the domain of a linear access. The
zero value is an empty window over no access; use NewProducer.

Producers are values: splitting produces two new windows sharing the same
underlying access, with no data copied and no additional proof
obligation. The windows produced by a split address strictly disjoint
positions, and repeated splitting partitions the original window exactly,
so an engine that hands each window to at most one goroutine preserves
the disjointness that makes unsynchronized access sound.
*/
type Producer[R any] struct {
	access disjoint.Linear[R]
	lo, hi int
}

// NewProducer returns a Producer covering the full domain of access.
func NewProducer[R any](access disjoint.Linear[R]) Producer[R] {
	return Producer[R]{access: access, lo: 0, hi: access.Len()}
}

// Len returns the number of records in the window.
func (p Producer[R]) Len() int {
	return p.hi - p.lo
}

/*
SplitAt divides the window into two producers covering its first k and
remaining Len()-k records, in order. Both halves share the underlying
access; only the window bounds differ.

SplitAt panics if k is outside [0, Len()]. A split point is never
silently clamped: an engine that computes an invalid split point is
broken, and clamping would hide it.
*/
func (p Producer[R]) SplitAt(k int) (left, right Producer[R]) {
	if k < 0 || k > p.Len() {
		panic(fmt.Sprintf("invalid split point %v for window %v:%v", k, p.lo, p.hi))
	}
	mid := p.lo + k
	left = Producer[R]{access: p.access, lo: p.lo, hi: mid}
	right = Producer[R]{access: p.access, lo: mid, hi: p.hi}
	return
}

// Record returns the record at window position i, with 0 <= i < Len(),
// via the unsynchronized accessor. A window of length 1 is a leaf, and
// Record(0) is how an engine consumes it. Record panics if i is outside
// the window.
func (p Producer[R]) Record(i int) R {
	if i < 0 || i >= p.Len() {
		panic(fmt.Sprintf("invalid position %v for window %v:%v", i, p.lo, p.hi))
	}
	return p.access.UnsyncRecord(p.lo + i)
}

/*
Each visits every record in the window serially, in order, calling f with
the position in the access's domain and the record handle. It stops at
the first non-nil error and returns it.

Each is the sequential mirror of ForEach, for testing, debugging, and as
the per-batch base case of the parallel engines.
*/
func (p Producer[R]) Each(f func(pos int, record R) error) error {
	for i := p.lo; i < p.hi; i++ {
		if err := f(i, p.access.UnsyncRecord(i)); err != nil {
			return err
		}
	}
	return nil
}
