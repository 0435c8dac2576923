// Package orderedmap implements a map that remembers insertion order.
package orderedmap

import (
	"container/list"
	"iter"
)

// element is a key-value pair stored in the list.
type element[K comparable, V any] struct {
	key   K
	value V
}

// Map is an insertion-ordered map. Overwriting a key keeps its position.
// The zero value is not usable, call New.
type Map[K comparable, V any] struct {
	index map[K]*list.Element
	list  *list.List
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]*list.Element),
		list:  list.New(),
	}
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return m.list.Len()
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]

	return ok
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if elem, ok := m.index[key]; ok {
		return elem.Value.(*element[K, V]).value, true
	}

	var zero V

	return zero, false
}

// Set stores value for key. New keys go to the back; existing keys keep
// their position. It reports whether the key was newly inserted.
func (m *Map[K, V]) Set(key K, value V) bool {
	if elem, ok := m.index[key]; ok {
		elem.Value.(*element[K, V]).value = value

		return false
	}

	m.index[key] = m.list.PushBack(&element[K, V]{key: key, value: value})

	return true
}

// Delete removes key and returns the value it held.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	elem, ok := m.index[key]
	if !ok {
		var zero V

		return zero, false
	}

	m.list.Remove(elem)
	delete(m.index, key)

	return elem.Value.(*element[K, V]).value, true
}

// Clear removes every key.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]*list.Element)
	m.list.Init()
}

// At returns the pair at position i in insertion order, 0 <= i < Len().
// The walk starts from whichever end is closer.
func (m *Map[K, V]) At(i int) (K, V, bool) {
	n := m.list.Len()
	if i < 0 || i >= n {
		var (
			k K
			v V
		)

		return k, v, false
	}

	var elem *list.Element

	if i < n/2 {
		elem = m.list.Front()
		for ; i > 0; i-- {
			elem = elem.Next()
		}
	} else {
		elem = m.list.Back()
		for j := n - 1; j > i; j-- {
			elem = elem.Prev()
		}
	}

	e := elem.Value.(*element[K, V])

	return e.key, e.value, true
}

// All iterates the pairs front to back.
// Mutating the map during iteration is not supported.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for elem := m.list.Front(); elem != nil; elem = elem.Next() {
			e := elem.Value.(*element[K, V])
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Backward iterates the pairs back to front.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for elem := m.list.Back(); elem != nil; elem = elem.Prev() {
			e := elem.Value.(*element[K, V])
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.list.Len())

	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}
