// Package scheduler provides the deferred callback machinery behind entry
// expiration: a cancellable one-shot timer per call, with all callbacks of
// one scheduler executed serially on a single goroutine.
package scheduler

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// idleWait is how long the loop sleeps when nothing is queued.
const idleWait = time.Hour

// Handle is a cancellable token for a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}

// Scheduler runs callbacks after a delay and supplies the clock used to
// measure elapsed time.
type Scheduler interface {
	// Now returns the current monotonic time.
	Now() time.Time
	// Schedule arranges for fn to run once after d.
	Schedule(d time.Duration, fn func()) Handle
}

// make sure EventLoop implements the Scheduler interface
var _ Scheduler = (*EventLoop)(nil)

// EventLoop is a Scheduler that keeps its pending callbacks in a min-heap
// and runs the due ones, one at a time, on a single goroutine.
type EventLoop struct {
	mu   sync.Mutex
	pq   taskQueue
	seq  uint64
	wake chan struct{}

	now func() time.Time
}

// New returns a started EventLoop. The loop goroutine exits when ctx is done;
// callbacks still queued at that point never run.
func New(ctx context.Context) *EventLoop {
	l := &EventLoop{
		pq:   make(taskQueue, 0),
		wake: make(chan struct{}, 1),
		now:  time.Now,
	}

	go l.run(ctx)

	return l
}

// Now returns the current time.
func (l *EventLoop) Now() time.Time {
	return l.now()
}

// Len returns the number of pending callbacks.
func (l *EventLoop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.pq.Len()
}

// Schedule queues fn to run after d. A non-positive d makes it due immediately.
func (l *EventLoop) Schedule(d time.Duration, fn func()) Handle {
	l.mu.Lock()

	l.seq++

	t := &task{
		id:   l.seq,
		due:  l.now().Add(d),
		fn:   fn,
		loop: l,
	}

	heap.Push(&l.pq, t)

	// the loop only needs waking when the earliest deadline moved.
	front := l.pq.top() == t

	l.mu.Unlock()

	if front {
		select {
		case l.wake <- struct{}{}:
		default:
		}
	}

	return t
}

// run is the loop goroutine: it pops every due task, runs them in due order
// and then sleeps until the next deadline or until woken.
func (l *EventLoop) run(ctx context.Context) {
	timer := time.NewTimer(idleWait)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return
		}

		l.mu.Lock()

		now := l.now()

		var due []*task

		for l.pq.Len() > 0 && !l.pq.top().due.After(now) {
			due = append(due, heap.Pop(&l.pq).(*task))
		}

		wait := idleWait
		if next := l.pq.top(); next != nil {
			wait = next.due.Sub(now)
		}

		l.mu.Unlock()

		for _, t := range due {
			t.fn()
		}

		if len(due) > 0 {
			// callbacks may have taken a while, re-check the queue first.
			continue
		}

		timer.Reset(wait)

		select {
		case <-timer.C:
		case <-l.wake:
		case <-ctx.Done():
			return
		}
	}
}
