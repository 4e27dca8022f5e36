package par

import (
	"fmt"
	"sync"

	"github.com/exascience/disjoint"
	"github.com/exascience/disjoint/internal"
)

/*
ForEach visits every record of access in parallel, calling f with the
position in the access's domain and the record handle, each position
exactly once.

The domain is divided into batches determined by dividing the domain size
by n. If n is 0, a reasonable default is used that takes
runtime.GOMAXPROCS(0) into account. Each batch is visited serially by
exactly one goroutine, and the batches are produced by recursively
splitting a Producer, so they address strictly disjoint positions: f may
mutate its record without synchronization. ForEach returns only when all
batches have terminated, returning the left-most error value that is
different from nil.

ForEach panics if n < 0.

If one or more invocations of f panic, the corresponding goroutines
recover the panics, and ForEach eventually panics with the left-most
recovered panic value, wrapped with the worker's stack trace.
*/
func ForEach[R any](access disjoint.Linear[R], n int, f func(pos int, record R) error) error {
	var recur func(Producer[R], int) error
	recur = func(p Producer[R], n int) (err error) {
		switch {
		case n == 1:
			return p.Each(f)
		case n > 1:
			batchSize := ((p.Len() - 1) / n) + 1
			half := n / 2
			mid := batchSize * half
			if mid >= p.Len() {
				return p.Each(f)
			}
			left, right := p.SplitAt(mid)
			var err0, err1 error
			var pnc interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					pnc = recover()
					wg.Done()
				}()
				err1 = recur(right, n-half)
			}()
			err0 = recur(left, half)
			wg.Wait()
			if pnc != nil {
				panic(internal.WrapPanic(pnc))
			}
			if err0 != nil {
				err = err0
			} else {
				err = err1
			}
			return
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	p := NewProducer(access)
	return recur(p, internal.ComputeNofBatches(p.Len(), n))
}

/*
Reduce divides the domain of access into batches, invokes the batch
reducer for each batch in parallel, and combines the results of the batch
reducers by repeated invocations of the pair reducer.

The batches are determined by dividing the domain size by n. If n is 0, a
reasonable default is used that takes runtime.GOMAXPROCS(0) into account.
Each batch producer is handed to exactly one goroutine, so the batch
reducer may use the records of its batch without synchronization. Reduce
returns only when all batch reducers and pair reducers have terminated.
Reduce also returns the left-most error value that is different from nil
as a second return value.

Reduce panics if n < 0.

If one or more reducer invocations panic, the corresponding goroutines
recover the panics, and Reduce eventually panics with the left-most
recovered panic value, wrapped with the worker's stack trace.
*/
func Reduce[R any, T any](
	access disjoint.Linear[R],
	n int,
	reduce func(batch Producer[R]) (T, error),
	pair func(x, y T) (T, error),
) (T, error) {
	var recur func(Producer[R], int) (T, error)
	recur = func(p Producer[R], n int) (result T, err error) {
		switch {
		case n == 1:
			return reduce(p)
		case n > 1:
			batchSize := ((p.Len() - 1) / n) + 1
			half := n / 2
			mid := batchSize * half
			if mid >= p.Len() {
				return reduce(p)
			}
			left, right := p.SplitAt(mid)
			var x, y T
			var err0, err1 error
			var pnc interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					pnc = recover()
					wg.Done()
				}()
				y, err1 = recur(right, n-half)
			}()
			x, err0 = recur(left, half)
			wg.Wait()
			if pnc != nil {
				panic(internal.WrapPanic(pnc))
			}
			if err0 != nil {
				err = err0
			} else if err1 != nil {
				err = err1
			} else {
				result, err = pair(x, y)
			}
			return
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	p := NewProducer(access)
	return recur(p, internal.ComputeNofBatches(p.Len(), n))
}
