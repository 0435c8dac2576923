package timedmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc(t *testing.T) *Map[string, int] {
	t.Helper()

	return newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 1}, {"B", 2}, {"C", 3}})
}

func TestMap_Clone(t *testing.T) {
	m := abc(t)

	c := m.Clone()
	assert.True(t, m.Equals(c))
	assert.NotSame(t, m, c)

	c.Set("D", 4)
	assert.False(t, m.Has("D"), "clone is independent of its source")
}

func TestMap_Filter(t *testing.T) {
	m := abc(t)

	odd := func(v int, _ string) bool { return v%2 == 1 }
	even := func(v int, k string) bool { return !odd(v, k) }

	kept := m.Filter(odd)
	assert.Equal(t, []string{"A", "C"}, kept.Keys())
	assert.Equal(t, 3, m.Len(), "filter leaves the source untouched")

	// the two halves rebuild the source.
	union := m.Filter(odd).Concat(m.Filter(even))
	assert.True(t, union.Equals(m))
}

func TestMap_Partition(t *testing.T) {
	m := newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 1}, {"B", 2}})

	odd := func(v int, _ string) bool { return v%2 == 1 }

	first, second := m.Partition(odd, nil, nil)

	assert.True(t, first.Equals(newTestMap[int](t, Options{}, Pair[string, int]{Key: "A", Value: 1})))
	assert.True(t, second.Equals(newTestMap[int](t, Options{}, Pair[string, int]{Key: "B", Value: 2})))

	t.Run("into existing maps, overwriting", func(t *testing.T) {
		dst := newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 100}, {"Z", 26}})

		first, second := m.Partition(odd, dst, nil)

		assert.Same(t, dst, first)
		assert.Equal(t, []string{"A", "Z"}, first.Keys())
		assert.Equal(t, []int{1, 26}, first.Values())
		assert.Equal(t, []string{"B"}, second.Keys())
	})
}

func TestMap_Concat(t *testing.T) {
	m := newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 1}, {"B", 2}})
	other := newTestMap[int](t, Options{}, Pairs[string, int]{{"B", 20}, {"C", 30}})

	assert.Same(t, m, m.Concat(other))

	// the receiver keeps its values, only new keys come from other.
	assert.Equal(t, []string{"A", "B", "C"}, m.Keys())
	assert.Equal(t, []int{1, 2, 30}, m.Values())
	assert.Equal(t, 2, other.Len())

	assert.Same(t, m, m.Concat(m))
	assert.Equal(t, 3, m.Len())

	assert.Same(t, m, m.Concat(nil))
}

func TestMap_Sort(t *testing.T) {
	tests := []struct {
		name     string
		cmp      Comparator[string, int]
		seed     Pairs[string, int]
		expected []string
	}{
		{
			name:     "default ascending by value",
			seed:     Pairs[string, int]{{"A", 3}, {"B", 1}, {"C", 2}},
			expected: []string{"B", "C", "A"},
		},
		{
			name:     "descending",
			cmp:      Descending[string, int],
			seed:     Pairs[string, int]{{"A", 3}, {"B", 1}, {"C", 2}},
			expected: []string{"A", "C", "B"},
		},
		{
			name: "by key",
			cmp: func(_, _ int, ka, kb string) int {
				return strings.Compare(ka, kb)
			},
			seed:     Pairs[string, int]{{"C", 1}, {"A", 1}, {"B", 1}},
			expected: []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMap[int](t, Options{}, tt.seed)

			assert.Same(t, m, m.Sort(tt.cmp))
			assert.Equal(t, tt.expected, m.Keys())

			k, _, ok := m.At(-1)
			assert.True(t, ok)
			assert.Equal(t, tt.expected[len(tt.expected)-1], k)
		})
	}
}

func TestMap_SortComparatorReentrant(t *testing.T) {
	m := abc(t)

	// the comparator runs without the lock held.
	m.Sort(func(a, b int, ka, kb string) int {
		_ = m.Has(ka)

		return b - a
	})

	assert.Equal(t, []string{"C", "B", "A"}, m.Keys())
}

func TestMap_Each(t *testing.T) {
	m := abc(t)

	var seen []string

	assert.Same(t, m, m.Each(func(v int, k string) {
		seen = append(seen, fmt.Sprintf("%s%d", k, v))
	}))

	assert.Equal(t, []string{"A1", "B2", "C3"}, seen)
}

func TestCollect(t *testing.T) {
	m := abc(t)

	got := Collect(m, func(v int, k string) string {
		return strings.Repeat(k, v)
	})

	assert.Equal(t, []string{"A", "BB", "CCC"}, got)
	assert.Empty(t, Collect(newTestMap[int](t, Options{}), func(v int, _ string) int { return v }))
}

func TestReduce(t *testing.T) {
	m := abc(t)

	sum := Reduce(m, func(acc int, p Pair[string, int]) int {
		return acc + p.Value
	}, 0)
	assert.Equal(t, 6, sum)

	last, err := ReducePairs(m, func(acc, cur Pair[string, int]) Pair[string, int] {
		return Pair[string, int]{Key: cur.Key, Value: acc.Value + cur.Value}
	})
	require.NoError(t, err)
	assert.Equal(t, Pair[string, int]{Key: "C", Value: 6}, last)

	empty := newTestMap[int](t, Options{})

	_, err = ReducePairs(empty, func(acc, cur Pair[string, int]) Pair[string, int] { return acc })
	assert.ErrorIs(t, err, ErrEmptyReduction)

	assert.Equal(t, 7, Reduce(empty, func(acc int, _ Pair[string, int]) int { return acc + 1 }, 7))
}
