package vector

import "slices"

// Equal reports whether v and other have the same length and equal
// elements at every index. Equality is structural; two distinct vectors
// with the same contents are equal.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return slices.Equal(v.elems, other.elems)
}

// Compare orders v against other lexicographically, element by element,
// with the shorter vector ordering first when one is a prefix of the
// other. It returns -1, 0 or +1.
func (v *Vector[T]) Compare(other *Vector[T]) int {
	return slices.Compare(v.elems, other.elems)
}

// Less reports whether v orders strictly before other.
func (v *Vector[T]) Less(other *Vector[T]) bool {
	return v.Compare(other) < 0
}

// Greater reports whether v orders strictly after other.
func (v *Vector[T]) Greater(other *Vector[T]) bool {
	return v.Compare(other) > 0
}

// LessEqual reports whether v does not order after other.
func (v *Vector[T]) LessEqual(other *Vector[T]) bool {
	return !v.Greater(other)
}

// GreaterEqual reports whether v does not order before other.
func (v *Vector[T]) GreaterEqual(other *Vector[T]) bool {
	return !v.Less(other)
}
