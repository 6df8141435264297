// Package vector provides a generic, dynamically sized numeric vector
// with bounds-checked access, structural edits, reductions, and vector
// algebra.
//
// Vector[T] works for any integer or floating-point element type. It is
// an owning container: every structural edit reallocates to the exact
// new length, storage is never shared implicitly, and copies happen only
// through Clone. Ownership moves explicitly via Adopt (in), Detach (out)
// and Move (between vectors).
//
// # Quick Start
//
//	v := vector.Of(3.0, 4.0)
//	v.Magnitude()                  // 5
//
//	v.Insert(1, 9)                 // [3, 9, 4]
//	x, err := v.At(3)              // errors.Is(err, vector.ErrOutOfRange)
//
//	u := vector.Of(1, 2, 3)
//	w := vector.Of(4, 5, 6)
//	c, _ := vector.Cross(u, w)     // [-3, 6, -3]
//
// # Failure Model
//
// Fallible operations return errors, never panic on bad indices. Each
// error matches one of the package sentinels through errors.Is and
// carries its context in a typed error reachable through errors.As:
//
//	if _, err := v.At(i); err != nil {
//	    var ie *vector.IndexError
//	    if errors.As(err, &ie) {
//	        fmt.Println(ie.Index, ie.Len)
//	    }
//	}
//
// Sizing arguments follow make: a negative length or count panics.
//
// # Extrema
//
// Max and Min distinguish a unique extreme element from a tie. A unique
// result carries the value; a tie carries every position, ascending:
//
//	m, _ := vector.Of(1, 5, 5, 2).Max()
//	m.Unique()   // false
//	m.Indices()  // [1, 2]
//
// # Selection
//
// Where collects the indices satisfying a predicate into an IndexSet,
// which Gather turns back into a vector:
//
//	even := v.Where(func(x int) bool { return x%2 == 0 })
//	sub, _ := v.Gather(even)
//
// The subpackages build on the container: snapshot serializes vectors to
// a checksummed binary format, blobstore places snapshots in memory, on
// disk, or in object storage, and vecstore ties both together as a named
// collection.
package vector
