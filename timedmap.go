// Package timedmap provides an insertion-ordered in-memory map whose entries
// may carry their own time-to-live.
//
// A timed entry is removed by a callback on the map's scheduler once its
// duration elapses. Refreshing reads (Get, At, Ensure) restart the timer;
// First, Last and the iteration helpers never do. Derived maps (Clone, Filter,
// Partition) and in-place rebuilds (Concat, Sort) copy every entry together
// with its timer, either restarted at its full duration or, with NoRefresh,
// carrying the time actually left. An entry whose time is up but whose
// callback has not run yet is dropped by such copies.
//
// A Map is safe for use by multiple goroutines, but it is designed for one
// logical writer: user callbacks (predicates, factories, comparators) run on
// snapshots without the map lock held.
package timedmap

import (
	"context"
	"fmt"
	"sync"

	"github.com/achu-1612/timedmap/eviction"
	"github.com/achu-1612/timedmap/orderedmap"
	"github.com/achu-1612/timedmap/scheduler"
)

// Map is an insertion-ordered key-value map with optional per-entry timers.
type Map[K comparable, V any] struct {
	mu    sync.Mutex
	store *orderedmap.Map[K, *entry[V]]

	sched    scheduler.Scheduler
	timerSeq uint64

	e eviction.Eviction[K] // capacity bound, no-op without a policy

	finalizer func(key, value any)
	pending   []Pair[K, V] // finalizer calls deferred until the lock is released

	opt Options
	l   logger
}

// New creates a map seeded from sources, in order. A key present in several
// sources keeps the first value seen.
func New[K comparable, V any](ctx context.Context, opt Options, sources ...Source[K, V]) (*Map[K, V], error) {
	if opt.Name == "" {
		opt.Name = defaultName
	}

	l := newLogger(opt.Name, opt.SupressLog, opt.DebugLogs)

	if opt.Scheduler == nil {
		opt.Scheduler = scheduler.New(ctx)
	}

	if opt.Finalizer == nil {
		l.Debug("no finalizer provided, using default finalizer")

		opt.Finalizer = func(key, value any) {}
	}

	if opt.EvictionPolicy != eviction.PolicyNone && opt.MaxSize <= 0 {
		return nil, fmt.Errorf("eviction policy %q: %w", opt.EvictionPolicy, ErrInvalidMaxSize)
	}

	m, err := newMap[K, V](opt, l)
	if err != nil {
		return nil, fmt.Errorf("setting up eviction: %w", err)
	}

	for _, s := range sources {
		s.mergeInto(m)
	}

	return m, nil
}

func newMap[K comparable, V any](opt Options, l logger) (*Map[K, V], error) {
	m := &Map[K, V]{
		store:     orderedmap.New[K, *entry[V]](),
		sched:     opt.Scheduler,
		finalizer: opt.Finalizer,
		opt:       opt,
		l:         l,
	}

	e, err := eviction.New(eviction.Options[K]{
		Capacity:       opt.MaxSize,
		Policy:         opt.EvictionPolicy,
		EvictFinalizer: m.evict,
	})
	if err != nil {
		return nil, err
	}

	m.e = e

	return m, nil
}

// derive returns an empty map sharing the options, scheduler and logger of m.
func (m *Map[K, V]) derive() *Map[K, V] {
	// the options were validated when m was created.
	d, _ := newMap[K, V](m.opt, m.l)

	return d
}

// unlock releases m.mu, then runs the finalizer calls queued while it was held.
func (m *Map[K, V]) unlock() {
	pending := m.pending
	m.pending = nil

	m.mu.Unlock()

	for _, p := range pending {
		m.finalizer(p.Key, p.Value)
	}
}

// finalize queues a finalizer call. Must be called with m.mu held.
func (m *Map[K, V]) finalize(key K, value V) {
	m.pending = append(m.pending, Pair[K, V]{Key: key, Value: value})
}

// evict is the eviction tracker's finalizer. It runs inside store writes,
// with m.mu held.
func (m *Map[K, V]) evict(key K) {
	e, ok := m.store.Delete(key)
	if !ok {
		return
	}

	m.cancel(e)
	m.finalize(key, e.value)

	m.l.Debugf("key '%v' evicted", key)
}
