package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Magnitude returns the Euclidean norm, sqrt of the sum of squared
// elements. The empty vector has magnitude 0.
func (v *Vector[T]) Magnitude() float64 {
	var s float64
	for _, x := range v.elems {
		f := float64(x)
		s += f * f
	}
	return math.Sqrt(s)
}

// Normalize scales v in place to unit magnitude and reports whether it
// did. A vector of zero magnitude is left unchanged and Normalize
// returns false. Only floating-point vectors can be normalized; the
// constraint enforces that at compile time.
func Normalize[T constraints.Float](v *Vector[T]) bool {
	mag := v.Magnitude()
	if mag == 0 {
		return false
	}
	for i, x := range v.elems {
		v.elems[i] = T(float64(x) / mag)
	}
	return true
}

// Dot returns the dot product of u and v. It fails with an error
// matching ErrSizeMismatch when the lengths differ.
func Dot[T Number](u, v *Vector[T]) (T, error) {
	if len(u.elems) != len(v.elems) {
		var zero T
		return zero, &SizeMismatchError{Left: len(u.elems), Right: len(v.elems)}
	}
	var s T
	for i, x := range u.elems {
		s += x * v.elems[i]
	}
	return s, nil
}

// Cross returns the cross product of u and v. Both vectors must have
// the same length, at least 3; violations fail with errors matching
// ErrSizeMismatch and ErrInvalidDimension respectively.
//
// Components follow the cyclic convention
//
//	w[i] = u[(i+1)%n]*v[(i+2)%n] - u[(i+2)%n]*v[(i+1)%n]
//
// which is the standard cross product at n == 3.
func Cross[T Number](u, v *Vector[T]) (*Vector[T], error) {
	n := len(u.elems)
	if n != len(v.elems) {
		return nil, &SizeMismatchError{Left: n, Right: len(v.elems)}
	}
	if n < 3 {
		return nil, &DimensionError{Dim: n, Min: 3}
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		j, k := (i+1)%n, (i+2)%n
		out[i] = u.elems[j]*v.elems[k] - u.elems[k]*v.elems[j]
	}
	return &Vector[T]{elems: out}, nil
}

// Scale multiplies every element by scalar, in place.
func (v *Vector[T]) Scale(scalar T) {
	for i := range v.elems {
		v.elems[i] *= scalar
	}
}

// Add returns the element-wise sum of u and v as a new vector. It fails
// with an error matching ErrSizeMismatch when the lengths differ.
func Add[T Number](u, v *Vector[T]) (*Vector[T], error) {
	if len(u.elems) != len(v.elems) {
		return nil, &SizeMismatchError{Left: len(u.elems), Right: len(v.elems)}
	}
	if len(u.elems) == 0 {
		return &Vector[T]{}, nil
	}
	out := make([]T, len(u.elems))
	for i, x := range u.elems {
		out[i] = x + v.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

// Subtract returns the element-wise difference u - v as a new vector,
// under the same length contract as Add.
func Subtract[T Number](u, v *Vector[T]) (*Vector[T], error) {
	if len(u.elems) != len(v.elems) {
		return nil, &SizeMismatchError{Left: len(u.elems), Right: len(v.elems)}
	}
	if len(u.elems) == 0 {
		return &Vector[T]{}, nil
	}
	out := make([]T, len(u.elems))
	for i, x := range u.elems {
		out[i] = x - v.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

// AddAssign adds other to v element-wise, in place. It fails with an
// error matching ErrSizeMismatch when the lengths differ, leaving v
// untouched.
func (v *Vector[T]) AddAssign(other *Vector[T]) error {
	if len(v.elems) != len(other.elems) {
		return &SizeMismatchError{Left: len(v.elems), Right: len(other.elems)}
	}
	for i, x := range other.elems {
		v.elems[i] += x
	}
	return nil
}

// SubAssign subtracts other from v element-wise, in place, under the
// same length contract as AddAssign.
func (v *Vector[T]) SubAssign(other *Vector[T]) error {
	if len(v.elems) != len(other.elems) {
		return &SizeMismatchError{Left: len(v.elems), Right: len(other.elems)}
	}
	for i, x := range other.elems {
		v.elems[i] -= x
	}
	return nil
}
