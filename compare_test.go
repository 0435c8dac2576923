package timedmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Equals(t *testing.T) {
	m := abc(t)

	tests := []struct {
		name     string
		other    *Map[string, int]
		expected bool
	}{
		{name: "same map", other: m, expected: true},
		{name: "equal snapshot", other: abc(t), expected: true},
		{name: "different order", other: newTestMap[int](t, Options{}, Pairs[string, int]{{"C", 3}, {"B", 2}, {"A", 1}}), expected: true},
		{name: "smaller", other: newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 1}, {"B", 2}})},
		{name: "different value", other: newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 1}, {"B", 2}, {"C", 4}})},
		{name: "different key", other: newTestMap[int](t, Options{}, Pairs[string, int]{{"A", 1}, {"B", 2}, {"D", 3}})},
		{name: "nil", other: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Equals(tt.other))

			if tt.other != nil {
				assert.Equal(t, tt.expected, tt.other.Equals(m), "equals is symmetric")
			}
		})
	}
}

func TestMap_EqualsCompositeValues(t *testing.T) {
	type item struct {
		Name string
		Tags []string
	}

	m := newTestMap[item](t, Options{}, Pairs[string, item]{
		{Key: "a", Value: item{Name: "a", Tags: []string{"x"}}},
		{Key: "b", Value: item{Name: "b"}},
	})

	c := m.Clone()
	assert.True(t, m.Equals(m))
	assert.True(t, m.Equals(c))
	assert.True(t, c.Equals(m))

	// same content, but a slice of its own.
	other := newTestMap[item](t, Options{}, Pairs[string, item]{
		{Key: "a", Value: item{Name: "a", Tags: []string{"x"}}},
		{Key: "b", Value: item{Name: "b"}},
	})
	assert.False(t, m.Equals(other))
}

func TestSameValue(t *testing.T) {
	s := []int{1, 2}
	mp := map[string]int{"a": 1}

	type point struct{ x, y int }

	type tagged struct {
		name string
		tags []string
	}

	type boxed struct{ v any }

	tags := []string{"a"}
	buf := make([]int, 0, 4)
	other := make([]int, 0, 4)

	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{name: "equal ints", a: 1, b: 1, expected: true},
		{name: "different ints", a: 1, b: 2},
		{name: "different types", a: 1, b: int64(1)},
		{name: "equal strings", a: "x", b: "x", expected: true},
		{name: "nan", a: math.NaN(), b: math.NaN(), expected: true},
		{name: "same slice", a: s, b: s, expected: true},
		{name: "equal but distinct slices", a: []int{1, 2}, b: []int{1, 2}},
		{name: "same map", a: mp, b: mp, expected: true},
		{name: "distinct maps", a: map[string]int{"a": 1}, b: map[string]int{"a": 1}},
		{name: "equal structs", a: point{1, 2}, b: point{1, 2}, expected: true},
		{name: "nils", a: nil, b: nil, expected: true},
		{name: "nil and value", a: nil, b: 0},
		{name: "struct sharing a slice", a: tagged{"x", tags}, b: tagged{"x", tags}, expected: true},
		{name: "struct with equal but distinct slices", a: tagged{"x", []string{"a"}}, b: tagged{"x", []string{"a"}}},
		{name: "struct with different field", a: tagged{"x", tags}, b: tagged{"y", tags}},
		{name: "array of the same map", a: [2]map[string]int{mp, mp}, b: [2]map[string]int{mp, mp}, expected: true},
		{name: "array of distinct maps", a: [1]map[string]int{mp}, b: [1]map[string]int{{"a": 1}}},
		{name: "interface field holding the same slice", a: boxed{s}, b: boxed{s}, expected: true},
		{name: "interface fields of different types", a: boxed{1}, b: boxed{int64(1)}},
		{name: "nil interface fields", a: boxed{}, b: boxed{}, expected: true},
		{name: "nan field", a: boxed{math.NaN()}, b: boxed{math.NaN()}, expected: true},
		{name: "empty slices without storage", a: make([]int, 0), b: make([]int, 0), expected: true},
		{name: "empty and nil slice", a: make([]int, 0), b: []int(nil)},
		{name: "empty slices over distinct arrays", a: buf, b: other},
		{name: "empty slice over one array", a: buf, b: buf, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sameValue(tt.a, tt.b))
		})
	}
}

func TestMap_EveryFind(t *testing.T) {
	m := abc(t)

	assert.True(t, m.Every(func(v int, _ string) bool { return v > 0 }))
	assert.False(t, m.Every(func(v int, _ string) bool { return v > 1 }))
	assert.True(t, newTestMap[int](t, Options{}).Every(func(int, string) bool { return false }))

	p, ok := m.Find(func(v int, _ string) bool { return v > 1 })
	assert.True(t, ok)
	assert.Equal(t, Pair[string, int]{Key: "B", Value: 2}, p)

	_, ok = m.Find(func(v int, _ string) bool { return v > 3 })
	assert.False(t, ok)
}

func TestCompareValues(t *testing.T) {
	type celsius float64

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{name: "ints", a: 2, b: 10, expected: -1},
		{name: "equal ints", a: 3, b: 3, expected: 0},
		{name: "uints", a: uint8(9), b: uint8(1), expected: 1},
		{name: "floats", a: 1.5, b: 1.25, expected: 1},
		{name: "named floats", a: celsius(-3), b: celsius(2), expected: -1},
		{name: "strings", a: "apple", b: "banana", expected: -1},
		{name: "bools", a: false, b: true, expected: -1},
		{name: "mixed kinds by text", a: 10, b: "9", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compareValues(tt.a, tt.b))
		})
	}
}
