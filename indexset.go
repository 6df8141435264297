package vector

import (
	"iter"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// IndexSet is a set of element indices backed by a 32-bit Roaring
// bitmap. Iteration order is always ascending. It is produced by Where
// and by extremum ties, and consumed by Gather.
type IndexSet struct {
	rb *roaring.Bitmap
}

// NewIndexSet returns an empty index set.
func NewIndexSet() *IndexSet {
	return &IndexSet{
		rb: roaring.New(),
	}
}

// Add inserts index i. It panics if i is negative; indices address
// vector elements and are never negative.
func (s *IndexSet) Add(i int) {
	if i < 0 {
		panic("vector: negative index")
	}
	s.rb.Add(uint32(i))
}

// Remove deletes index i from the set, if present.
func (s *IndexSet) Remove(i int) {
	if i < 0 {
		return
	}
	s.rb.Remove(uint32(i))
}

// Contains reports whether index i is in the set.
func (s *IndexSet) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return s.rb.Contains(uint32(i))
}

// Len returns the number of indices in the set.
func (s *IndexSet) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set has no indices.
func (s *IndexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Values returns the indices ascending.
func (s *IndexSet) Values() []int {
	arr := s.rb.ToArray()
	out := make([]int, len(arr))
	for i, x := range arr {
		out[i] = int(x)
	}
	return out
}

// All returns an iterator over the indices, ascending.
func (s *IndexSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// And intersects the set with other, in place.
func (s *IndexSet) And(other *IndexSet) {
	s.rb.And(other.rb)
}

// Or unions the set with other, in place.
func (s *IndexSet) Or(other *IndexSet) {
	s.rb.Or(other.rb)
}

// Clone returns a deep copy of the set.
func (s *IndexSet) Clone() *IndexSet {
	return &IndexSet{
		rb: s.rb.Clone(),
	}
}

// maxIndex returns the largest index in the set. The set must not be
// empty.
func (s *IndexSet) maxIndex() int {
	return int(s.rb.Maximum())
}

// String renders the set as "[i0, i1, ...]", ascending.
func (s *IndexSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	it := s.rb.Iterator()
	for it.HasNext() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(it.Next()), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
