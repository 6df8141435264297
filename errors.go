package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or position exceeds its
	// valid bound.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned when a (first, last) pair violates
	// first < last <= Len.
	ErrInvalidRange = errors.New("invalid range")

	// ErrSizeMismatch is returned when a binary operation requires two
	// vectors of equal length and they differ.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrInvalidDimension is returned when an operation requires a
	// minimum dimensionality that is not met.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrEmptyVector is returned when a reduction requiring at least one
	// element is invoked on a zero-length vector.
	ErrEmptyVector = errors.New("vector is empty")
)

// IndexError reports an element access outside [0, Len).
//
// It matches ErrOutOfRange via errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// PositionError reports an insertion position outside [0, Len]. Unlike an
// element index, a position may equal Len (append).
//
// It matches ErrOutOfRange via errors.Is.
type PositionError struct {
	Pos int
	Len int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d]", e.Pos, e.Len)
}

func (e *PositionError) Unwrap() error { return ErrOutOfRange }

// RangeError reports a half-open element range that violates
// first < last <= Len.
//
// A degenerate or inverted pair (first >= last) matches ErrInvalidRange;
// a well-formed pair reaching outside the vector matches ErrOutOfRange.
type RangeError struct {
	First int
	Last  int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) invalid for length %d", e.First, e.Last, e.Len)
}

func (e *RangeError) Unwrap() error {
	if e.First >= e.Last {
		return ErrInvalidRange
	}
	return ErrOutOfRange
}

// SizeMismatchError reports two vectors of different lengths where equal
// lengths are required.
//
// It matches ErrSizeMismatch via errors.Is.
type SizeMismatchError struct {
	Left  int
	Right int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch: %d != %d", e.Left, e.Right)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }

// DimensionError reports an operation invoked below its minimum
// dimensionality.
//
// It matches ErrInvalidDimension via errors.Is.
type DimensionError struct {
	Dim int
	Min int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %d: need at least %d", e.Dim, e.Min)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }
