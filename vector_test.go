package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New[int](3)
	require.Equal(t, 3, v.Len())

	for i := 0; i < 3; i++ {
		x, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, 0, x)
	}

	empty := New[float64](0)
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Elems())
}

func TestNew_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { New[int](-1) })
}

func TestOf(t *testing.T) {
	src := []int{1, 2, 3}
	v := Of(src...)
	require.Equal(t, 3, v.Len())

	// The vector owns a copy; mutating the source must not show through.
	src[0] = 99
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)
}

func TestAdopt(t *testing.T) {
	buf := []int{1, 2, 3}
	v := Adopt(buf)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Elems())

	t.Run("NilBuffer", func(t *testing.T) {
		v := Adopt[int](nil)
		assert.Equal(t, 0, v.Len())
		assert.Nil(t, v.Elems())
	})

	t.Run("EmptyBuffer", func(t *testing.T) {
		v := Adopt([]int{})
		assert.Equal(t, 0, v.Len())
		assert.Nil(t, v.Elems())
	})
}

func TestMove(t *testing.T) {
	src := Of(1, 2, 3)
	dst := Move(src)

	assert.Equal(t, 0, src.Len())
	assert.Nil(t, src.Elems())
	assert.Equal(t, []int{1, 2, 3}, dst.Elems())

	// The moved-from vector stays usable.
	require.NoError(t, dst.Insert(0, 0))
	src.Resize(2, 7)
	assert.Equal(t, []int{7, 7}, src.Elems())
}

func TestAtSet_Bounds(t *testing.T) {
	v := Of(10, 20, 30)

	tests := []struct {
		name  string
		index int
	}{
		{"Negative", -1},
		{"EqualLength", 3},
		{"PastEnd", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.At(tt.index)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)

			var ie *IndexError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.index, ie.Index)
			assert.Equal(t, 3, ie.Len)

			err = v.Set(tt.index, 99)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}

	// In-range access and write-back.
	require.NoError(t, v.Set(1, 99))
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 99, x)
}

func TestClone_Independent(t *testing.T) {
	v := Of(1, 2, 3)
	c := v.Clone()

	require.NoError(t, c.Set(0, 99))
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.True(t, v.Equal(Of(1, 2, 3)))
	assert.True(t, c.Equal(Of(99, 2, 3)))
}

func TestDetach(t *testing.T) {
	v := Of(1, 2, 3)
	buf := v.Detach()

	assert.Equal(t, []int{1, 2, 3}, buf)
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Elems())

	// The detached buffer round-trips through Adopt.
	w := Adopt(buf)
	assert.True(t, w.Equal(Of(1, 2, 3)))
}

func TestToSlice_Copies(t *testing.T) {
	v := Of(1, 2, 3)
	s := v.ToSlice()
	s[0] = 99

	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)
}

func TestSwap(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4, 5)

	Swap(a, b)
	assert.Equal(t, []int{3, 4, 5}, a.Elems())
	assert.Equal(t, []int{1, 2}, b.Elems())
}

func TestIteration(t *testing.T) {
	v := Of(10, 20, 30)

	t.Run("All", func(t *testing.T) {
		var idx []int
		var vals []int
		for i, x := range v.All() {
			idx = append(idx, i)
			vals = append(vals, x)
		}
		assert.Equal(t, []int{0, 1, 2}, idx)
		assert.Equal(t, []int{10, 20, 30}, vals)
	})

	t.Run("Values", func(t *testing.T) {
		var vals []int
		for x := range v.Values() {
			vals = append(vals, x)
		}
		assert.Equal(t, []int{10, 20, 30}, vals)
	})

	t.Run("EarlyStop", func(t *testing.T) {
		count := 0
		for range v.Values() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("Restartable", func(t *testing.T) {
		seq := v.Values()
		for range 2 {
			n := 0
			for range seq {
				n++
			}
			assert.Equal(t, 3, n)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		e := New[int](0)
		for range e.All() {
			t.Fatal("empty vector yielded an element")
		}
	})
}

func TestApply(t *testing.T) {
	v := Of(1, 2, 3)
	v.Apply(func(x int) int { return x * x })
	assert.Equal(t, []int{1, 4, 9}, v.Elems())
}

func TestSort(t *testing.T) {
	v := Of(3, 1, 2)
	v.Sort()
	assert.Equal(t, []int{1, 2, 3}, v.Elems())

	v.SortFunc(func(a, b int) int { return b - a })
	assert.Equal(t, []int{3, 2, 1}, v.Elems())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    *Vector[int]
		want string
	}{
		{"Empty", New[int](0), "[]"},
		{"Single", Of(7), "[7]"},
		{"Several", Of(1, 2, 3), "[1, 2, 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}

	t.Run("Float", func(t *testing.T) {
		assert.Equal(t, "[1.5, -2]", Of(1.5, -2.0).String())
	})
}

func TestExactCapacity(t *testing.T) {
	// Structural edits reallocate to the exact length; no spare capacity
	// survives an edit.
	v := Of(1, 2, 3, 4, 5, 6, 7, 8)
	require.NoError(t, v.EraseRange(2, 6))
	assert.Equal(t, len(v.Elems()), cap(v.Elems()))

	require.NoError(t, v.Insert(1, 9))
	assert.Equal(t, len(v.Elems()), cap(v.Elems()))

	v.Resize(2, 0)
	assert.Equal(t, len(v.Elems()), cap(v.Elems()))

	// Adopt clamps capacity so appends to the old buffer cannot land in
	// vector-owned storage.
	buf := make([]int, 3, 10)
	w := Adopt(buf)
	assert.Equal(t, w.Len(), cap(w.Elems()))
}

func TestErrorMatching(t *testing.T) {
	v := Of(1, 2, 3)

	_, errAt := v.At(3)
	errInsert := v.Insert(4, 0)
	_, errSub := v.Subrange(2, 1)
	_, errDot := Dot(v, Of(1, 2))
	_, errCross := Cross(Of(1, 2), Of(1, 2))
	_, errMean := New[int](0).Mean()

	assert.True(t, errors.Is(errAt, ErrOutOfRange))
	assert.True(t, errors.Is(errInsert, ErrOutOfRange))
	assert.True(t, errors.Is(errSub, ErrInvalidRange))
	assert.True(t, errors.Is(errDot, ErrSizeMismatch))
	assert.True(t, errors.Is(errCross, ErrInvalidDimension))
	assert.True(t, errors.Is(errMean, ErrEmptyVector))

	var pe *PositionError
	require.ErrorAs(t, errInsert, &pe)
	assert.Equal(t, 4, pe.Pos)
	assert.Equal(t, 3, pe.Len)

	var se *SizeMismatchError
	require.ErrorAs(t, errDot, &se)
	assert.Equal(t, 3, se.Left)
	assert.Equal(t, 2, se.Right)

	var de *DimensionError
	require.ErrorAs(t, errCross, &de)
	assert.Equal(t, 2, de.Dim)
	assert.Equal(t, 3, de.Min)
}
