package vector

import (
	"fmt"
	"slices"
)

// Sum returns the sum of all elements. The empty sum is 0.
func (v *Vector[T]) Sum() T {
	var s T
	for _, x := range v.elems {
		s += x
	}
	return s
}

// Product returns the product of all elements. The empty product is 1.
func (v *Vector[T]) Product() T {
	p := T(1)
	for _, x := range v.elems {
		p *= x
	}
	return p
}

// Mean returns the arithmetic mean. It fails with ErrEmptyVector on an
// empty vector; the division is never attempted.
func (v *Vector[T]) Mean() (float64, error) {
	if len(v.elems) == 0 {
		return 0, ErrEmptyVector
	}
	var s float64
	for _, x := range v.elems {
		s += float64(x)
	}
	return s / float64(len(v.elems)), nil
}

// Median returns the median. For an odd length it is the middle element
// of the sorted order; for an even length it is the mean of the two
// middle elements. It fails with ErrEmptyVector on an empty vector.
//
// Selection runs on a scratch copy, so the vector's own element order
// is untouched.
func (v *Vector[T]) Median() (float64, error) {
	n := len(v.elems)
	if n == 0 {
		return 0, ErrEmptyVector
	}
	work := slices.Clone(v.elems)
	upper := quickselect(work, n/2)
	if n%2 == 1 {
		return float64(upper), nil
	}
	// quickselect leaves the n/2 smaller elements in work[:n/2]; the
	// lower middle is the largest of them.
	lower := work[0]
	for _, x := range work[1 : n/2] {
		if x > lower {
			lower = x
		}
	}
	return (float64(lower) + float64(upper)) / 2, nil
}

// quickselect partially orders s so that s[k] holds the k-th smallest
// element, everything before it is no larger, and everything after it
// is no smaller. It mutates s.
func quickselect[T Number](s []T, k int) T {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case p == k:
			return s[k]
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	return s[k]
}

// partition rearranges s[lo:hi+1] around a median-of-three pivot and
// returns the pivot's final position.
func partition[T Number](s []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if s[mid] < s[lo] {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if s[hi] < s[lo] {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if s[hi] < s[mid] {
		s[hi], s[mid] = s[mid], s[hi]
	}
	s[mid], s[hi] = s[hi], s[mid]
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if s[j] < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}

// Max returns the largest element as an Extremum: the value itself when
// it occurs once, or the ascending indices of every occurrence when it
// ties. It fails with ErrEmptyVector on an empty vector.
func (v *Vector[T]) Max() (Extremum[T], error) {
	return v.extremum(func(a, b T) bool { return a > b })
}

// Min returns the smallest element, under the same contract as Max.
func (v *Vector[T]) Min() (Extremum[T], error) {
	return v.extremum(func(a, b T) bool { return a < b })
}

func (v *Vector[T]) extremum(better func(a, b T) bool) (Extremum[T], error) {
	if len(v.elems) == 0 {
		return Extremum[T]{}, ErrEmptyVector
	}
	best := v.elems[0]
	for _, x := range v.elems[1:] {
		if better(x, best) {
			best = x
		}
	}
	ties := NewIndexSet()
	for i, x := range v.elems {
		if x == best {
			ties.Add(i)
		}
	}
	if ties.Len() == 1 {
		return Extremum[T]{value: best, unique: true}, nil
	}
	return Extremum[T]{value: best, ties: ties}, nil
}

// Extremum is the result of Max or Min. It takes one of two forms:
// a value form when the extreme element occurs exactly once, and an
// index form listing every occurrence, ascending, when it ties.
type Extremum[T Number] struct {
	value  T
	unique bool
	ties   *IndexSet
}

// Unique reports whether the extreme element occurred exactly once.
func (e Extremum[T]) Unique() bool { return e.unique }

// Value returns the extreme element and true in the value form. In the
// index form it returns the zero value and false.
func (e Extremum[T]) Value() (T, bool) {
	if !e.unique {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Indices returns the ascending positions of the tied extreme element.
// In the value form it returns nil.
func (e Extremum[T]) Indices() []int {
	if e.unique || e.ties == nil {
		return nil
	}
	return e.ties.Values()
}

// String renders the value form as the value and the index form as the
// ascending index list.
func (e Extremum[T]) String() string {
	if e.unique {
		return fmt.Sprintf("%v", e.value)
	}
	if e.ties == nil {
		return "[]"
	}
	return e.ties.String()
}
