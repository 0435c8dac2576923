package timedmap

import (
	"math"
	"reflect"
)

// Equals reports whether other holds the same keys with the same values.
// Values are compared by identity: == for plain values, the underlying
// pointer for slices, maps, funcs and channels, and field by field (element
// by element) for structs and arrays. NaN equals NaN. Timers are ignored and
// not refreshed.
func (m *Map[K, V]) Equals(other *Map[K, V]) bool {
	if other == m {
		return true
	}

	if other == nil {
		return false
	}

	mine := m.snapshot()
	theirs := other.snapshot()

	if len(mine) != len(theirs) {
		return false
	}

	values := make(map[K]V, len(theirs))
	for _, r := range theirs {
		values[r.key] = r.value
	}

	for _, r := range mine {
		v, ok := values[r.key]
		if !ok || !sameValue(r.value, v) {
			return false
		}
	}

	return true
}

// Every reports whether pred holds for every entry. True for an empty map.
func (m *Map[K, V]) Every(pred func(V, K) bool) bool {
	for _, r := range m.snapshot() {
		if !pred(r.value, r.key) {
			return false
		}
	}

	return true
}

// Find returns the first pair, in insertion order, that pred accepts.
func (m *Map[K, V]) Find(pred func(V, K) bool) (Pair[K, V], bool) {
	for _, r := range m.snapshot() {
		if pred(r.value, r.key) {
			return Pair[K, V]{Key: r.key, Value: r.value}, true
		}
	}

	return Pair[K, V]{}, false
}

// HasAll reports whether every key is present.
func (m *Map[K, V]) HasAll(keys ...K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		if !m.store.Has(k) {
			return false
		}
	}

	return true
}

// HasAny reports whether at least one key is present.
func (m *Map[K, V]) HasAny(keys ...K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		if m.store.Has(k) {
			return true
		}
	}

	return false
}

func sameValue(a, b any) bool {
	return sameReflect(reflect.ValueOf(a), reflect.ValueOf(b))
}

// sameReflect walks structs, arrays and interfaces down to their leaves, so
// a composite holding a slice matches itself. Slices match when they share
// length and backing array; empty slices with no backing array (cap 0) all
// match each other, since the runtime may hand them one shared base pointer.
func sameReflect(va, vb reflect.Value) bool {
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}

	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}

		if va.Cap() == 0 || vb.Cap() == 0 {
			return va.Cap() == vb.Cap()
		}

		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()

	case reflect.Map, reflect.Func, reflect.Chan:
		return va.Pointer() == vb.Pointer()

	case reflect.Float32, reflect.Float64:
		x, y := va.Float(), vb.Float()

		return x == y || (math.IsNaN(x) && math.IsNaN(y))

	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}

		return sameReflect(va.Elem(), vb.Elem())

	case reflect.Struct:
		for i := range va.NumField() {
			if !sameReflect(va.Field(i), vb.Field(i)) {
				return false
			}
		}

		return true

	case reflect.Array:
		for i := range va.Len() {
			if !sameReflect(va.Index(i), vb.Index(i)) {
				return false
			}
		}

		return true
	}

	return va.Equal(vb)
}
