/*
Package disjoint provides the building blocks for parallel algorithms that
mutate a strict subset of the records of a collection, where each worker's
subset is guaranteed disjoint from every other worker's subset. The
disjointness guarantee is what allows workers to mutate their records
without locks, atomics, or any other synchronization, while remaining free
of data races.

The library is layered:

The root package defines the unsynchronized access contracts. An Access
knows how many records a collection holds and can, for an in-bounds index,
produce a handle to a record's data with no synchronization whatsoever.
Nothing at this layer is checked; safety comes from the layers above.

disjoint/index describes sequences of indices into an access together with
a uniqueness proof, established either by a runtime scan (CheckUnique) or
structurally by combinators (Range, Zip, Chunks, Product) whose
construction makes duplicates unreachable. A proven-unique index list can
narrow an access to exactly the positions it names (Narrow), reindexed
from zero.

disjoint/par wraps an access as a splittable producer that a fork-join
engine can recursively divide at arbitrary split points, handing disjoint
windows to different goroutines. ForEach and Reduce are such engines.

disjoint/matrix adapts gonum dense matrices to the access contracts, for
algorithms indexed by row and column pairs.

The fork-join execution model used by disjoint/par has been influenced by
ideas from Cilk and Threading Building Blocks; see
http://supertech.csail.mit.edu/papers/steal.pdf for some theoretical
background. The split/length producer protocol follows the shape used by
work-stealing schedulers.
*/
package disjoint
