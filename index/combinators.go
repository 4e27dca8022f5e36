package index

import (
	"fmt"
	"iter"
)

// A Pair is a two-dimensional index, used for example as a
// (row, column) coordinate into a matrix access.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

type span struct {
	start, end int
}

func (s span) Len() int {
	return s.end - s.start
}

func (s span) At(i int) int {
	return s.start + i
}

func (s span) unique() {}

// Range returns the contiguous interval [start, end) as a Unique list:
// any interval of integers is unique by definition, so no scan is
// performed. The interval is empty when start == end. Range panics if
// end < start.
func Range(start, end int) Unique[int] {
	if end < start {
		panic(fmt.Sprintf("invalid range: %v:%v", start, end))
	}
	return span{start, end}
}

// A LengthMismatchError reports two index lists whose lengths differ
// where equal lengths are required.
type LengthMismatchError struct {
	LenA, LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.LenA, e.LenB)
}

type zipped[A, B comparable] struct {
	a Unique[A]
	b Unique[B]
}

func (z zipped[A, B]) Len() int {
	return z.a.Len()
}

func (z zipped[A, B]) At(i int) Pair[A, B] {
	return Pair[A, B]{z.a.At(i), z.b.At(i)}
}

func (z zipped[A, B]) unique() {}

/*
Zip pairs two unique index lists pointwise: the result holds
(a.At(i), b.At(i)) at position i. It returns a *LengthMismatchError when
the lengths differ.

The pairs are unique without a scan: positions i != j satisfy
a.At(i) != a.At(j), so the pairs at i and j differ at least in their
first coordinate. Note that this is uniqueness of the pairs as pairs; it
claims nothing about the coordinates beyond what the inputs guarantee.
*/
func Zip[A, B comparable](a Unique[A], b Unique[B]) (Unique[Pair[A, B]], error) {
	if a.Len() != b.Len() {
		return nil, &LengthMismatchError{LenA: a.Len(), LenB: b.Len()}
	}
	return zipped[A, B]{a, b}, nil
}

type product[A, B comparable] struct {
	a Unique[A]
	b Unique[B]
}

func (p product[A, B]) Len() int {
	return p.a.Len() * p.b.Len()
}

func (p product[A, B]) At(i int) Pair[A, B] {
	n := p.b.Len()
	return Pair[A, B]{p.a.At(i / n), p.b.At(i % n)}
}

func (p product[A, B]) unique() {}

// Product returns the Cartesian product of two unique index lists, in
// row-major order: all pairs with first coordinate a.At(0) come first,
// then all pairs with first coordinate a.At(1), and so on. Two product
// positions differ in at least one coordinate, so the pairs are unique
// without a scan. The product's length is a.Len() * b.Len(), which must
// not overflow int.
func Product[A, B comparable](a Unique[A], b Unique[B]) Unique[Pair[A, B]] {
	return product[A, B]{a, b}
}

type sublist[I comparable] struct {
	list     Unique[I]
	from, to int
}

func (s sublist[I]) Len() int {
	return s.to - s.from
}

func (s sublist[I]) At(i int) I {
	return s.list.At(s.from + i)
}

func (s sublist[I]) unique() {}

/*
Chunks partitions a unique index list into maximal contiguous blocks of
the given size, with a possibly shorter final block. Each block is a
contiguous sub-list of a unique list and therefore unique itself, with no
scan.

The result is a lazy, finite, restartable sequence: ranging over it twice
yields the same blocks. The blocks are views into the input list; no
indices are copied. Chunks panics if size < 1.
*/
func Chunks[I comparable](indices Unique[I], size int) iter.Seq[Unique[I]] {
	if size < 1 {
		panic(fmt.Sprintf("invalid chunk size: %v", size))
	}
	return func(yield func(Unique[I]) bool) {
		n := indices.Len()
		for from := 0; from < n; from += size {
			to := from + size
			if to > n {
				to = n
			}
			if !yield(sublist[I]{indices, from, to}) {
				return
			}
		}
	}
}
