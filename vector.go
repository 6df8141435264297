package vector

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number constrains the element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is an owning, resizable, contiguous sequence of numeric elements.
//
// A vector exclusively owns its buffer. Every structural edit reallocates
// to the exact new length, so no spare capacity outlives an operation and
// no two vectors share storage unless ownership is transferred explicitly
// (Adopt, Move, Detach). The zero value is an empty vector ready to use.
//
// A Vector is not safe for concurrent mutation; callers own synchronization,
// matching value-type usage.
type Vector[T Number] struct {
	elems []T
}

// New returns a vector of n zero-valued elements.
// It panics if n is negative, like make.
func New[T Number](n int) *Vector[T] {
	if n == 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{elems: make([]T, n)}
}

// Of returns a vector holding a copy of elems.
func Of[T Number](elems ...T) *Vector[T] {
	if len(elems) == 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{elems: slices.Clone(elems)}
}

// Adopt returns a vector that takes ownership of buf without copying.
// A nil or empty buf yields an empty vector.
//
// The buffer belongs to the vector after the call: the caller must treat
// buf as moved-from and not read or write it again.
func Adopt[T Number](buf []T) *Vector[T] {
	if len(buf) == 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{elems: buf[:len(buf):len(buf)]}
}

// Move transfers src's buffer to a new vector. src is left valid and
// empty (length 0, no storage).
func Move[T Number](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{elems: src.elems}
	src.elems = nil
	return v
}

// Swap exchanges the contents of a and b.
func Swap[T Number](a, b *Vector[T]) {
	a.elems, b.elems = b.elems, a.elems
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.elems) }

// At returns the element at index i. It fails with an error matching
// ErrOutOfRange unless 0 <= i < Len(); i == Len() is rejected.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, &IndexError{Index: i, Len: len(v.elems)}
	}
	return v.elems[i], nil
}

// Set stores x at index i, under the same bounds contract as At.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.elems) {
		return &IndexError{Index: i, Len: len(v.elems)}
	}
	v.elems[i] = x
	return nil
}

// Clone returns a deep copy. Vectors are never duplicated implicitly;
// this is the one copying operation.
func (v *Vector[T]) Clone() *Vector[T] {
	if len(v.elems) == 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{elems: slices.Clone(v.elems)}
}

// Detach releases ownership of the buffer to the caller and leaves the
// vector empty. The returned slice is the vector's former storage.
func (v *Vector[T]) Detach() []T {
	elems := v.elems
	v.elems = nil
	return elems
}

// ToSlice returns a copy of the elements. The vector keeps its storage.
func (v *Vector[T]) ToSlice() []T {
	if len(v.elems) == 0 {
		return nil
	}
	return slices.Clone(v.elems)
}

// Elems returns the underlying storage without copying.
//
// The slice is valid only until the next structural edit: Resize, Insert,
// Erase and friends reallocate, after which the returned slice aliases
// dead storage. Callers must not grow the slice.
func (v *Vector[T]) Elems() []T { return v.elems }

// All returns an iterator over (index, element) pairs in storage order.
// The sequence is finite and restartable; each traversal observes the
// storage current at that time.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.elems {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over elements in storage order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.elems {
			if !yield(x) {
				return
			}
		}
	}
}

// Apply replaces every element with fn(element), in place.
func (v *Vector[T]) Apply(fn func(T) T) {
	for i, x := range v.elems {
		v.elems[i] = fn(x)
	}
}

// Sort orders the elements ascending, in place.
func (v *Vector[T]) Sort() {
	slices.Sort(v.elems)
}

// SortFunc orders the elements by cmp, in place. cmp must be a total
// order returning negative, zero or positive as in the slices package.
func (v *Vector[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(v.elems, cmp)
}

// Where returns the set of indices whose elements satisfy pred.
func (v *Vector[T]) Where(pred func(T) bool) *IndexSet {
	s := NewIndexSet()
	for i, x := range v.elems {
		if pred(x) {
			s.Add(i)
		}
	}
	return s
}

// Gather returns a new vector of the elements at the set's indices, in
// ascending index order. It fails with an error matching ErrOutOfRange
// when the set addresses an index >= Len().
func (v *Vector[T]) Gather(set *IndexSet) (*Vector[T], error) {
	if set == nil || set.IsEmpty() {
		return &Vector[T]{}, nil
	}
	if maxIdx := set.maxIndex(); maxIdx >= len(v.elems) {
		return nil, &IndexError{Index: maxIdx, Len: len(v.elems)}
	}
	out := make([]T, 0, set.Len())
	for i := range set.All() {
		out = append(out, v.elems[i])
	}
	return &Vector[T]{elems: out}, nil
}

// String renders the vector as "[e0, e1, ..., en-1]". An empty vector
// renders as "[]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')
	return sb.String()
}
