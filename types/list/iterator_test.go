package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleIteration(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := New[int]()
		for it := l.Begin(); !it.Equal(l.End()); it.Next() {
			t.Fatal("no cycle for empty list")
		}
		require.True(t, l.Begin().IsEnd())
		require.True(t, l.CBegin().Equal(l.CEnd()))
	})

	t.Run("step iteration", func(t *testing.T) {
		l := From(1, 2, 3)
		it := l.Begin()
		require.Equal(t, 1, *it.Value())
		it.Next()
		require.Equal(t, 2, *it.Value())
		it.Next()
		require.Equal(t, 3, *it.Value())
		it.Next()
		require.True(t, it.IsEnd())
		require.True(t, it.Equal(l.End()))
	})

	t.Run("copy iteration", func(t *testing.T) {
		testCases := [][]int{
			{1},
			{1, 2, 3},
			{4, 3, 2, 1},
		}
		for _, tc := range testCases {
			l := From(tc...)
			result := []int{}
			for it := l.CBegin(); !it.IsEnd(); it.Next() {
				result = append(result, it.Value())
			}
			require.Equal(t, tc, result)
		}
	})

	t.Run("mutable iteration", func(t *testing.T) {
		l := From(1, 2, 3)
		for it := l.Begin(); !it.IsEnd(); it.Next() {
			*it.Value() *= 10
		}
		require.Equal(t, []int{10, 20, 30}, l.Values())
	})

	t.Run("before begin", func(t *testing.T) {
		l := From(1, 2)
		it := l.BeforeBegin()
		require.False(t, it.IsEnd())
		require.True(t, it.Equal(l.CBeforeBegin()))
		it.Next()
		require.True(t, it.Equal(l.Begin()))
		require.Equal(t, 1, *it.Value())
	})

	t.Run("const conversion", func(t *testing.T) {
		l := From(7)
		it := l.Begin()
		cit := it.Const()
		require.True(t, cit.Equal(it))
		require.True(t, it.Equal(cit))
		require.Equal(t, 7, cit.Value())
	})
}

func TestIteratorPreconditions(t *testing.T) {
	t.Run("dereference end", func(t *testing.T) {
		l := From(1)
		require.PanicsWithValue(t, ErrIteratorIsEnd, func() { l.End().Value() })
		require.PanicsWithValue(t, ErrIteratorIsEnd, func() { l.CEnd().Value() })
	})

	t.Run("advance end", func(t *testing.T) {
		l := New[int]()
		it := l.End()
		require.PanicsWithValue(t, ErrIteratorIsEnd, func() { it.Next() })
	})

	t.Run("dereference before begin", func(t *testing.T) {
		l := From(1)
		require.PanicsWithValue(t, ErrIteratorIsBeforeBegin, func() { l.BeforeBegin().Value() })
		require.PanicsWithValue(t, ErrIteratorIsBeforeBegin, func() { l.CBeforeBegin().Value() })
	})

	t.Run("before begin of swapped list", func(t *testing.T) {
		a, b := From(1), From(2)
		it := a.BeforeBegin()
		a.Swap(b)
		it.Next()
		require.Equal(t, 2, *it.Value())
	})
}
