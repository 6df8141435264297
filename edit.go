package vector

import "slices"

// Clear removes all elements and releases the storage.
func (v *Vector[T]) Clear() {
	v.elems = nil
}

// Resize sets the length to n. Kept elements retain their values; on
// growth the new tail positions are set to fill. The buffer is
// reallocated to the exact new length, so elements dropped by a shrink
// do not reappear on a later regrow. Resizing to the current length is
// a no-op. It panics if n is negative, like make.
func (v *Vector[T]) Resize(n int, fill T) {
	if n == len(v.elems) {
		return
	}
	if n == 0 {
		v.elems = nil
		return
	}
	next := make([]T, n)
	kept := copy(next, v.elems)
	for i := kept; i < n; i++ {
		next[i] = fill
	}
	v.elems = next
}

// Subrange returns a new vector holding a copy of the half-open range
// [first, last). It fails with an error matching ErrInvalidRange when
// first >= last, and with one matching ErrOutOfRange when the range
// extends past the vector.
func (v *Vector[T]) Subrange(first, last int) (*Vector[T], error) {
	if first >= last || first < 0 || last > len(v.elems) {
		return nil, &RangeError{First: first, Last: last, Len: len(v.elems)}
	}
	return &Vector[T]{elems: slices.Clone(v.elems[first:last])}, nil
}

// Insert places values before position pos. pos may be any value in
// [0, Len()]; pos == Len() appends. It fails with an error matching
// ErrOutOfRange otherwise. Inserting nothing validates pos and leaves
// the vector untouched.
func (v *Vector[T]) Insert(pos int, values ...T) error {
	if pos < 0 || pos > len(v.elems) {
		return &PositionError{Pos: pos, Len: len(v.elems)}
	}
	if len(values) == 0 {
		return nil
	}
	next := make([]T, len(v.elems)+len(values))
	copy(next, v.elems[:pos])
	copy(next[pos:], values)
	copy(next[pos+len(values):], v.elems[pos:])
	v.elems = next
	return nil
}

// InsertN places count copies of value before position pos, under the
// same position contract as Insert. It panics if count is negative,
// like make. A zero count validates pos and leaves the vector untouched.
func (v *Vector[T]) InsertN(pos, count int, value T) error {
	if count < 0 {
		panic("vector: negative insert count")
	}
	if pos < 0 || pos > len(v.elems) {
		return &PositionError{Pos: pos, Len: len(v.elems)}
	}
	if count == 0 {
		return nil
	}
	next := make([]T, len(v.elems)+count)
	copy(next, v.elems[:pos])
	for i := pos; i < pos+count; i++ {
		next[i] = value
	}
	copy(next[pos+count:], v.elems[pos:])
	v.elems = next
	return nil
}

// Erase removes the element at pos. It fails with an error matching
// ErrOutOfRange unless 0 <= pos < Len().
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= len(v.elems) {
		return &IndexError{Index: pos, Len: len(v.elems)}
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the half-open range [first, last), under the same
// range contract as Subrange.
func (v *Vector[T]) EraseRange(first, last int) error {
	if first >= last || first < 0 || last > len(v.elems) {
		return &RangeError{First: first, Last: last, Len: len(v.elems)}
	}
	n := len(v.elems) - (last - first)
	if n == 0 {
		v.elems = nil
		return nil
	}
	next := make([]T, n)
	copy(next, v.elems[:first])
	copy(next[first:], v.elems[last:])
	v.elems = next
	return nil
}

// Concat returns a new vector holding a's elements followed by b's.
// Neither input is modified.
func Concat[T Number](a, b *Vector[T]) *Vector[T] {
	if a.Len()+b.Len() == 0 {
		return &Vector[T]{}
	}
	out := make([]T, 0, a.Len()+b.Len())
	out = append(out, a.elems...)
	out = append(out, b.elems...)
	return &Vector[T]{elems: out}
}
