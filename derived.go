package timedmap

import (
	"slices"
)

// record is an entry sampled under the lock, handed to user callbacks and
// to the copy primitive once the lock is released.
type record[K comparable, V any] struct {
	key   K
	value V
	entry *entry[V]
	rem   remaining
}

// snapshot samples keys and values in insertion order.
func (m *Map[K, V]) snapshot() []record[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]record[K, V], 0, m.store.Len())

	for k, e := range m.store.All() {
		out = append(out, record[K, V]{key: k, value: e.value, entry: e})
	}

	return out
}

// snapshotTimers is snapshot plus the timer state of each entry, sampled for
// a copy under the given refresh policy.
func (m *Map[K, V]) snapshotTimers(refresh bool) []record[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]record[K, V], 0, m.store.Len())

	for k, e := range m.store.All() {
		out = append(out, record[K, V]{key: k, value: e.value, entry: e, rem: m.remaining(e, !refresh)})
	}

	return out
}

// copyEntry is the copy primitive every derived collection goes through.
// It writes r into m with the timer r was sampled with; an entry whose time
// ran out before its callback fired is dropped. It reports whether r was copied.
// Must be called with m.mu held.
func (m *Map[K, V]) copyEntry(r record[K, V], mode mergeMode) bool {
	if r.rem.state == remainingExpired {
		m.l.Debugf("key '%v' expired while being copied, dropped", r.key)

		return false
	}

	t := r.rem.timeout()

	switch mode {
	case mergeEnsure:
		m.ensure(r.key, r.value, t, true)
	case mergeRestore:
		e := &entry[V]{value: r.value}
		m.store.Set(r.key, e)

		if d, ok := t.Duration(); ok {
			m.schedule(r.key, e, d)
		}
	default:
		m.set(r.key, r.value, t)
	}

	return true
}

// copyAll copies records into m in order.
func (m *Map[K, V]) copyAll(records []record[K, V], mode mergeMode) {
	m.mu.Lock()
	defer m.unlock()

	for _, r := range records {
		m.copyEntry(r, mode)
	}
}

// Clone returns a new map holding a copy of every entry.
func (m *Map[K, V]) Clone(opts ...Option) *Map[K, V] {
	o := buildOptions(opts)

	d := m.derive()
	d.copyAll(m.snapshotTimers(o.refresh), mergeOverwrite)

	return d
}

// Filter returns a new map with the entries pred accepts.
func (m *Map[K, V]) Filter(pred func(V, K) bool, opts ...Option) *Map[K, V] {
	o := buildOptions(opts)

	var kept []record[K, V]

	for _, r := range m.snapshotTimers(o.refresh) {
		if pred(r.value, r.key) {
			kept = append(kept, r)
		}
	}

	d := m.derive()
	d.copyAll(kept, mergeOverwrite)

	return d
}

// Partition copies the entries pred accepts into first and the others into
// second, overwriting existing keys. A nil destination is replaced with a
// new map. It returns the two destinations.
func (m *Map[K, V]) Partition(pred func(V, K) bool, first, second *Map[K, V], opts ...Option) (*Map[K, V], *Map[K, V]) {
	o := buildOptions(opts)

	if first == nil {
		first = m.derive()
	}

	if second == nil {
		second = m.derive()
	}

	var in, out []record[K, V]

	for _, r := range m.snapshotTimers(o.refresh) {
		if pred(r.value, r.key) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}

	first.copyAll(in, mergeOverwrite)
	second.copyAll(out, mergeOverwrite)

	return first, second
}

// Concat adds the entries of other to m in place. Keys already in m keep
// their current value; only absent keys are copied, with their timers.
// It returns m.
func (m *Map[K, V]) Concat(other *Map[K, V], opts ...Option) *Map[K, V] {
	if other == nil || other == m {
		return m
	}

	o := buildOptions(opts)

	m.copyAll(other.snapshotTimers(o.refresh), mergeEnsure)

	return m
}

// Sort reorders m in place by cmp, Ascending when cmp is nil. Every entry is
// rewritten, so timers are rebuilt under the refresh policy whatever the
// outcome. Equal entries may change relative order. Usage recorded for the
// eviction policy is kept. It returns m.
func (m *Map[K, V]) Sort(cmp Comparator[K, V], opts ...Option) *Map[K, V] {
	o := buildOptions(opts)

	if cmp == nil {
		cmp = Ascending[K, V]
	}

	records := m.snapshotTimers(o.refresh)

	slices.SortFunc(records, func(a, b record[K, V]) int {
		return cmp(a.value, b.value, a.key, b.key)
	})

	m.mu.Lock()
	defer m.unlock()

	// the capacity tracker survives the rebuild; only keys that did not
	// make it back are dropped from it.
	previous := m.store.Keys()

	for _, e := range m.store.All() {
		m.cancel(e)
	}

	m.store.Clear()

	for _, r := range records {
		m.copyEntry(r, mergeRestore)
	}

	for _, k := range previous {
		if !m.store.Has(k) {
			m.e.Delete(k)
		}
	}

	m.l.Debugf("sorted %d keys", len(records))

	return m
}

// Each calls fn for every entry in insertion order and returns m.
func (m *Map[K, V]) Each(fn func(V, K)) *Map[K, V] {
	for _, r := range m.snapshot() {
		fn(r.value, r.key)
	}

	return m
}

// Collect returns fn applied to every entry in insertion order. Timers are
// not refreshed.
func Collect[K comparable, V any, R any](m *Map[K, V], fn func(V, K) R) []R {
	records := m.snapshot()

	out := make([]R, 0, len(records))
	for _, r := range records {
		out = append(out, fn(r.value, r.key))
	}

	return out
}

// Reduce folds fn over the pairs of m in insertion order, starting from initial.
func Reduce[K comparable, V any, A any](m *Map[K, V], fn func(A, Pair[K, V]) A, initial A) A {
	acc := initial

	for _, r := range m.snapshot() {
		acc = fn(acc, Pair[K, V]{Key: r.key, Value: r.value})
	}

	return acc
}

// ReducePairs folds fn over the pairs of m, seeding the accumulator with
// the first pair. It fails with ErrEmptyReduction on an empty map.
func ReducePairs[K comparable, V any](m *Map[K, V], fn func(acc, cur Pair[K, V]) Pair[K, V]) (Pair[K, V], error) {
	records := m.snapshot()
	if len(records) == 0 {
		return Pair[K, V]{}, ErrEmptyReduction
	}

	acc := Pair[K, V]{Key: records[0].key, Value: records[0].value}

	for _, r := range records[1:] {
		acc = fn(acc, Pair[K, V]{Key: r.key, Value: r.value})
	}

	return acc, nil
}
