/*
Package index describes sequences of indices into an access, and the
uniqueness proofs that make unsynchronized parallel mutation through those
indices sound.

A List is any finite sequence of indices. A Unique is a List whose
indices are known to be pairwise distinct. The proof is established in
one of two ways: by a runtime scan (CheckUnique), or structurally, by
building the list with combinators (Range, Zip, Chunks, Product) whose
construction makes duplicates unreachable. The structural path carries no
runtime cost and is closed: combining unique lists through a combinator
always yields a unique list, with no scan.

A proven-unique list can narrow an access to exactly the positions it
names (Narrow). Because the positions are distinct, distinct positions of
the narrowed access address distinct records of the base access, which is
what lets disjoint/par hand disjoint partitions to concurrent workers.
*/
package index

// A List is a finite sequence of indices of type I.
type List[I comparable] interface {
	// Len returns the number of indices in the list.
	Len() int

	// At returns the index at position i, with 0 <= i < Len().
	At(i int) I
}

// A Slice attaches the methods of the List interface to a Go slice of
// indices.
type Slice[I comparable] []I

func (s Slice[I]) Len() int {
	return len(s)
}

func (s Slice[I]) At(i int) I {
	return s[i]
}

/*
A Unique is a List whose indices are pairwise distinct. For lists of
tuple indices, distinctness is pairwise inequality of whole tuples: two
pairs that differ in only one coordinate are still distinct.

Values of this type originate only from CheckUnique, from AssumeUnique,
or from the combinators in this package. There is no other way to obtain
one: the marker method is unexported, so an arbitrary List cannot be cast
into a Unique, and the combinators reject unproven inputs at the type
level rather than by scanning.
*/
type Unique[I comparable] interface {
	List[I]

	// unique marks the pairwise-distinctness proof.
	unique()
}
