package disjoint

/*
An Access provides unsynchronized access to the records of a collection
indexed by I. The record type R varies per implementation: it may be a
pointer into the underlying storage, a struct of several field pointers,
or any other handle that lets the caller read and write one record.

An implementation must guarantee that concurrent calls to UnsyncRecord for
distinct in-bounds indices are safe from any number of goroutines. It is
the caller's responsibility that no two live uses of UnsyncRecord target
the same index; the disjoint/index and disjoint/par packages exist to
discharge that obligation. An access is purely a view: it performs no
synchronization and holds no resources beyond a reference to the
underlying collection.

The collection's bounds must not change while an access is alive.
*/
type Access[I comparable, R any] interface {
	// CheckBounds returns nil if idx addresses a record of the
	// collection, and a *OutOfBoundsError naming the index and the
	// violated extent otherwise.
	CheckBounds(idx I) error

	// UnsyncRecord returns a handle to the record at idx without any
	// synchronization and without bounds checking. Calling it with an
	// index for which CheckBounds does not return nil, or concurrently
	// with another use of the same index, is a contract violation with
	// undefined consequences, not a reported error.
	UnsyncRecord(idx I) R
}

// A Linear is an Access over the contiguous domain [0, Len()). The
// narrowing layer produces Linear accesses, and the splittable producers
// in disjoint/par consume them.
type Linear[R any] interface {
	Access[int, R]

	// Len returns the number of accessible records. It must not change
	// while the access is alive.
	Len() int
}
