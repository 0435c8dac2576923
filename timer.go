package timedmap

import (
	"time"

	"github.com/achu-1612/timedmap/scheduler"
)

// timer is the scheduled deletion of one entry.
type timer struct {
	id       uint64 // matches the callback armed for this timer
	duration time.Duration
	started  time.Time
	handle   scheduler.Handle
}

// entry is a stored value and its optional timer.
type entry[V any] struct {
	value V
	timer *timer
}

type remainingState uint8

const (
	remainingUnset   remainingState = iota // no timer
	remainingNominal                       // full configured duration
	remainingLeft                          // time actually left
	remainingExpired                       // elapsed, callback not run yet
)

// remaining is what the timer manager reports about an entry's timer.
type remaining struct {
	state    remainingState
	duration time.Duration
}

// timeout translates the report into the write that recreates the timer.
func (r remaining) timeout() Timeout {
	switch r.state {
	case remainingNominal, remainingLeft:
		return After(r.duration)
	default:
		return Unspecified
	}
}

// remaining reports the timer state of e. With wantLeft false the configured
// duration is reported instead of the time left.
// Must be called with m.mu held.
func (m *Map[K, V]) remaining(e *entry[V], wantLeft bool) remaining {
	if e.timer == nil {
		return remaining{state: remainingUnset}
	}

	if !wantLeft {
		return remaining{state: remainingNominal, duration: e.timer.duration}
	}

	left := e.timer.duration - m.sched.Now().Sub(e.timer.started)
	if left <= 0 {
		return remaining{state: remainingExpired}
	}

	return remaining{state: remainingLeft, duration: left}
}

// schedule arms a timer of d for key, replacing any timer e holds.
// Must be called with m.mu held.
func (m *Map[K, V]) schedule(key K, e *entry[V], d time.Duration) {
	m.cancel(e)

	m.timerSeq++
	id := m.timerSeq

	e.timer = &timer{
		id:       id,
		duration: d,
		started:  m.sched.Now(),
		handle: m.sched.Schedule(d, func() {
			m.expire(key, id)
		}),
	}
}

// cancel disarms and drops the timer of e, if any.
// Must be called with m.mu held.
func (m *Map[K, V]) cancel(e *entry[V]) {
	if e.timer == nil {
		return
	}

	e.timer.handle.Cancel()
	e.timer = nil
}

// refresh restarts the timer of e with its configured duration.
// Must be called with m.mu held.
func (m *Map[K, V]) refresh(key K, e *entry[V]) {
	if e.timer == nil {
		return
	}

	m.schedule(key, e, e.timer.duration)
}

// applyTimeout updates the timer of an existing entry.
// Must be called with m.mu held.
func (m *Map[K, V]) applyTimeout(key K, e *entry[V], t Timeout) {
	switch t.kind {
	case timeoutUnspecified:
		m.refresh(key, e)

	case timeoutKeep:

	case timeoutClear:
		m.cancel(e)

	case timeoutSet:
		m.schedule(key, e, t.duration)
	}
}

// expire is the timer callback. The key is removed only while it still holds
// the timer that armed the callback: a callback already dispatched when its
// timer was replaced or cancelled finds a different id and does nothing.
func (m *Map[K, V]) expire(key K, id uint64) {
	m.mu.Lock()
	defer m.unlock()

	e, ok := m.store.Get(key)
	if !ok || e.timer == nil || e.timer.id != id {
		m.l.Debugf("stale timer for key '%v' ignored", key)

		return
	}

	// the timer is consumed, nothing left to cancel.
	e.timer = nil

	m.store.Delete(key)
	m.e.Delete(key)
	m.finalize(key, e.value)

	m.l.Debugf("key '%v' expired", key)
}
