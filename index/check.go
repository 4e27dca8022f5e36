package index

import "fmt"

// A NotUniqueError reports the first duplicated index found by
// CheckUnique, together with the two positions at which it occurs.
type NotUniqueError[I comparable] struct {
	Index         I   // the duplicated index value
	First, Second int // positions of the two occurrences, First < Second
}

func (e *NotUniqueError[I]) Error() string {
	return fmt.Sprintf("index %v occurs at both position %d and position %d", e.Index, e.First, e.Second)
}

type checked[I comparable] []I

func (c checked[I]) Len() int {
	return len(c)
}

func (c checked[I]) At(i int) I {
	return c[i]
}

func (c checked[I]) unique() {}

/*
CheckUnique scans indices and, if all of them are pairwise distinct,
returns them as a Unique list with the same length and order. If a
duplicate exists, it returns a *NotUniqueError naming the colliding index
and the positions of its first two occurrences, and no Unique list is
constructed.

The scan is a single O(n) pass over a hash set keyed by the index type.
An empty list and a single-element list are trivially unique.

CheckUnique copies the indices as it scans them, so the proof remains
valid even if the caller later mutates the list that was passed in.
*/
func CheckUnique[I comparable](indices List[I]) (Unique[I], error) {
	n := indices.Len()
	list := make(checked[I], n)
	seen := make(map[I]int, n)
	for i := 0; i < n; i++ {
		idx := indices.At(i)
		if first, dup := seen[idx]; dup {
			return nil, &NotUniqueError[I]{Index: idx, First: first, Second: i}
		}
		seen[idx] = i
		list[i] = idx
	}
	return list, nil
}

type assumed[I comparable] struct {
	List[I]
}

func (assumed[I]) unique() {}

/*
AssumeUnique declares, without scanning, that the indices in the list are
pairwise distinct.

This is the explicit escape hatch for callers who can prove uniqueness by
means the library cannot express. If the declaration is false, or if the
caller later mutates the backing storage so that it becomes false, then
concurrent workers obtained through Narrow and disjoint/par may mutate
the same record without synchronization; that is a data race. Unlike
CheckUnique, AssumeUnique does not copy the indices. Prefer CheckUnique
or the combinators wherever possible.
*/
func AssumeUnique[I comparable](indices List[I]) Unique[I] {
	return assumed[I]{indices}
}
