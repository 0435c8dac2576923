package timedmap

import (
	"iter"
	"time"
)

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Len()
}

// Has reports whether key is present. It does not refresh the timer.
func (m *Map[K, V]) Has(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Has(key)
}

// TTL returns the time left before key expires. It reports false when the
// key is absent or permanent, and does not refresh the timer.
func (m *Map[K, V]) TTL(key K) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.store.Get(key)
	if !ok {
		return 0, false
	}

	r := m.remaining(e, true)

	switch r.state {
	case remainingLeft:
		return r.duration, true
	case remainingExpired:
		return 0, true
	default:
		return 0, false
	}
}

// touch records a refreshing access to key.
// Must be called with m.mu held.
func (m *Map[K, V]) touch(key K, e *entry[V], refresh bool) {
	if !refresh {
		return
	}

	m.refresh(key, e)
	m.e.Get(key)
}

// Get returns the value stored for key, restarting its timer unless
// NoRefresh is given.
func (m *Map[K, V]) Get(key K, opts ...Option) (V, bool) {
	o := buildOptions(opts)

	m.mu.Lock()
	defer m.unlock()

	e, ok := m.store.Get(key)
	if !ok {
		var zero V

		return zero, false
	}

	m.touch(key, e, o.refresh)

	return e.value, true
}

// At returns the pair at position index in insertion order. A negative index
// counts from the end, so At(-1) is the last pair. It refreshes like Get.
func (m *Map[K, V]) At(index int, opts ...Option) (K, V, bool) {
	o := buildOptions(opts)

	m.mu.Lock()
	defer m.unlock()

	if index < 0 {
		index += m.store.Len()
	}

	k, e, ok := m.store.At(index)
	if !ok {
		var zero V

		return k, zero, false
	}

	m.touch(k, e, o.refresh)

	return k, e.value, true
}

// Ensure returns the value stored for key, refreshing like Get. When the key
// is absent it stores value with the timeout given by WithTimeout and
// returns it.
func (m *Map[K, V]) Ensure(key K, value V, opts ...Option) V {
	o := buildOptions(opts)

	m.mu.Lock()
	defer m.unlock()

	return m.ensure(key, value, o.timeout, o.refresh)
}

// EnsureFunc is Ensure with the value produced by fn, called only when the
// key is absent.
func (m *Map[K, V]) EnsureFunc(key K, fn func(K) V, opts ...Option) V {
	o := buildOptions(opts)

	m.mu.Lock()

	if e, ok := m.store.Get(key); ok {
		m.touch(key, e, o.refresh)
		v := e.value

		m.unlock()

		return v
	}

	m.unlock()

	value := fn(key)

	m.mu.Lock()
	defer m.unlock()

	return m.ensure(key, value, o.timeout, o.refresh)
}

// ensure must be called with m.mu held.
func (m *Map[K, V]) ensure(key K, value V, t Timeout, refresh bool) V {
	if e, ok := m.store.Get(key); ok {
		m.touch(key, e, refresh)

		return e.value
	}

	m.insert(key, value, t)

	return value
}

// First returns up to n pairs from the front. The sequence is read lazily,
// can be ranged over once, and never refreshes timers.
func (m *Map[K, V]) First(n int) iter.Seq2[K, V] {
	return m.take(n, false)
}

// Last returns up to n pairs from the back, last inserted first. Like
// First it is single use and never refreshes timers.
func (m *Map[K, V]) Last(n int) iter.Seq2[K, V] {
	return m.take(n, true)
}

func (m *Map[K, V]) take(n int, backward bool) iter.Seq2[K, V] {
	used := false

	return func(yield func(K, V) bool) {
		if used || n <= 0 {
			return
		}

		used = true

		for _, p := range m.pairs(n, backward) {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// All iterates every pair in insertion order over a snapshot taken when the
// range starts. Each range is a new sequence. Timers are not refreshed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.pairs(-1, false) {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Keys()
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	pairs := m.pairs(-1, false)

	values := make([]V, 0, len(pairs))
	for _, p := range pairs {
		values = append(values, p.Value)
	}

	return values
}

// pairs copies up to limit pairs, all of them when limit is negative.
func (m *Map[K, V]) pairs(limit int, backward bool) []Pair[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.store.Len()
	if limit >= 0 {
		n = min(n, limit)
	}

	seq := m.store.All()
	if backward {
		seq = m.store.Backward()
	}

	out := make([]Pair[K, V], 0, n)

	for k, e := range seq {
		if len(out) == n {
			break
		}

		out = append(out, Pair[K, V]{Key: k, Value: e.value})
	}

	return out
}

// Set stores value for key and applies the WithTimeout behaviour
// (Unspecified by default). It returns value.
func (m *Map[K, V]) Set(key K, value V, opts ...Option) V {
	o := buildOptions(opts)

	m.mu.Lock()
	defer m.unlock()

	m.set(key, value, o.timeout)

	m.l.Debugf("set key '%v' (%s)", key, o.timeout)

	return value
}

// set must be called with m.mu held.
func (m *Map[K, V]) set(key K, value V, t Timeout) {
	if e, ok := m.store.Get(key); ok {
		m.overwrite(key, e, value, t)

		return
	}

	m.insert(key, value, t)
}

// insert creates the entry for an absent key.
// Must be called with m.mu held.
func (m *Map[K, V]) insert(key K, value V, t Timeout) {
	e := &entry[V]{value: value}

	m.store.Set(key, e)

	if d, ok := t.Duration(); ok {
		m.schedule(key, e, d)
	}

	// may evict another key once the capacity is reached.
	m.e.Put(key)
}

// overwrite replaces the value of an existing entry.
// Must be called with m.mu held.
func (m *Map[K, V]) overwrite(key K, e *entry[V], value V, t Timeout) {
	e.value = value

	m.applyTimeout(key, e, t)
	m.e.Put(key)
}

// Add stores value only when key is absent. It reports false, changing
// nothing, when the key exists.
func (m *Map[K, V]) Add(key K, value V, opts ...Option) (V, bool) {
	o := buildOptions(opts)

	m.mu.Lock()
	defer m.unlock()

	if m.store.Has(key) {
		var zero V

		return zero, false
	}

	m.insert(key, value, o.timeout)

	m.l.Debugf("added key '%v' (%s)", key, o.timeout)

	return value, true
}

// AddFunc is Add with the value produced by fn, called only when the key is absent.
func (m *Map[K, V]) AddFunc(key K, fn func(K) V, opts ...Option) (V, bool) {
	if m.Has(key) {
		var zero V

		return zero, false
	}

	return m.Add(key, fn(key), opts...)
}

// Update replaces the value of an existing key and applies the WithTimeout
// behaviour. It reports false, changing nothing, when the key is absent.
func (m *Map[K, V]) Update(key K, value V, opts ...Option) (V, bool) {
	o := buildOptions(opts)

	m.mu.Lock()
	defer m.unlock()

	e, ok := m.store.Get(key)
	if !ok {
		var zero V

		return zero, false
	}

	m.overwrite(key, e, value, o.timeout)

	m.l.Debugf("updated key '%v' (%s)", key, o.timeout)

	return value, true
}

// UpdateFunc is Update with the value produced by fn, called only when the
// key is present.
func (m *Map[K, V]) UpdateFunc(key K, fn func(K) V, opts ...Option) (V, bool) {
	if !m.Has(key) {
		var zero V

		return zero, false
	}

	return m.Update(key, fn(key), opts...)
}

// Delete removes key, cancelling its timer, and returns the value it held.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	m.mu.Lock()
	defer m.unlock()

	e, ok := m.remove(key)
	if !ok {
		var zero V

		return zero, false
	}

	m.l.Debugf("deleted key '%v'", key)

	return e.value, true
}

// remove must be called with m.mu held.
func (m *Map[K, V]) remove(key K) (*entry[V], bool) {
	e, ok := m.store.Delete(key)
	if !ok {
		return nil, false
	}

	m.cancel(e)
	m.e.Delete(key)

	return e, true
}

// Sweep removes every entry for which pred returns true and returns how
// many were removed. Note the polarity is the opposite of Filter, which
// keeps the entries pred accepts.
func (m *Map[K, V]) Sweep(pred func(V, K) bool) int {
	var doomed []record[K, V]

	for _, r := range m.snapshot() {
		if pred(r.value, r.key) {
			doomed = append(doomed, r)
		}
	}

	m.mu.Lock()
	defer m.unlock()

	n := 0

	for _, r := range doomed {
		// skip keys rewritten while pred ran.
		if e, ok := m.store.Get(r.key); !ok || e != r.entry {
			continue
		}

		m.remove(r.key)
		n++
	}

	m.l.Debugf("swept %d keys", n)

	return n
}

// Clear removes every entry and returns how many there were.
func (m *Map[K, V]) Clear() int {
	m.mu.Lock()
	defer m.unlock()

	n := m.clear()

	m.l.Debugf("cleared %d keys", n)

	return n
}

// clear must be called with m.mu held.
func (m *Map[K, V]) clear() int {
	n := m.store.Len()

	for _, e := range m.store.All() {
		m.cancel(e)
	}

	m.store.Clear()
	m.e.Clear()

	return n
}
