package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSet(t *testing.T) {
	s := NewIndexSet()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	s.Add(5)
	s.Add(1)
	s.Add(3)
	s.Add(3) // duplicate

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.False(t, s.Contains(-1))

	// Values are always ascending, regardless of insertion order.
	assert.Equal(t, []int{1, 3, 5}, s.Values())
	assert.Equal(t, "[1, 3, 5]", s.String())

	s.Remove(3)
	assert.Equal(t, []int{1, 5}, s.Values())

	t.Run("All", func(t *testing.T) {
		var got []int
		for i := range s.All() {
			got = append(got, i)
		}
		assert.Equal(t, []int{1, 5}, got)
	})

	t.Run("NegativePanics", func(t *testing.T) {
		assert.Panics(t, func() { NewIndexSet().Add(-1) })
	})

	t.Run("EmptyString", func(t *testing.T) {
		assert.Equal(t, "[]", NewIndexSet().String())
	})
}

func TestIndexSet_SetOps(t *testing.T) {
	a := NewIndexSet()
	for _, i := range []int{0, 1, 2, 3} {
		a.Add(i)
	}
	b := NewIndexSet()
	for _, i := range []int{2, 3, 4} {
		b.Add(i)
	}

	t.Run("And", func(t *testing.T) {
		x := a.Clone()
		x.And(b)
		assert.Equal(t, []int{2, 3}, x.Values())
	})

	t.Run("Or", func(t *testing.T) {
		x := a.Clone()
		x.Or(b)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, x.Values())
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		c := a.Clone()
		c.Add(9)
		assert.True(t, c.Contains(9))
		assert.False(t, a.Contains(9))
	})
}

func TestWhere(t *testing.T) {
	v := Of(4, 7, 2, 9, 6)

	even := v.Where(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{0, 2, 4}, even.Values())

	none := v.Where(func(x int) bool { return x > 100 })
	assert.True(t, none.IsEmpty())
}

func TestGather(t *testing.T) {
	v := Of(10, 20, 30, 40)

	s := NewIndexSet()
	s.Add(3)
	s.Add(0)

	got, err := v.Gather(s)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 40}, got.Elems())

	t.Run("EmptySet", func(t *testing.T) {
		got, err := v.Gather(NewIndexSet())
		require.NoError(t, err)
		assert.Equal(t, 0, got.Len())
	})

	t.Run("NilSet", func(t *testing.T) {
		got, err := v.Gather(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Len())
	})

	t.Run("IndexPastEnd", func(t *testing.T) {
		s := NewIndexSet()
		s.Add(1)
		s.Add(4)
		_, err := v.Gather(s)
		require.ErrorIs(t, err, ErrOutOfRange)

		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, 4, ie.Index)
	})
}

func TestWhereGatherFlow(t *testing.T) {
	v := Of(5.0, -1.0, 2.5, -3.0, 8.0)

	positive := v.Where(func(x float64) bool { return x > 0 })
	sub, err := v.Gather(positive)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 2.5, 8}, sub.Elems())
	assert.Equal(t, 3, positive.Len())
}
