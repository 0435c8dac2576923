package scheduler

import (
	"container/heap"
	"time"
)

// make sure taskQueue implements heap.Interface
var _ heap.Interface = (*taskQueue)(nil)

// task is a pending callback in the event loop.
type task struct {
	id    uint64
	due   time.Time
	fn    func()
	index int // position in the queue, -1 once popped or cancelled

	loop *EventLoop
}

// Cancel removes the task from its loop. It returns false when the task
// already left the queue (fired, being dispatched, or cancelled before).
func (t *task) Cancel() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()

	if t.index < 0 {
		return false
	}

	heap.Remove(&t.loop.pq, t.index)

	return true
}

// taskQueue is a min-heap of tasks ordered by due time, then by scheduling order.
type taskQueue []*task

// Len returns the length of the queue
func (q taskQueue) Len() int {
	return len(q)
}

// Less returns true if the task at index i is due before the task at index j
func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].id < q[j].id
	}

	return q[i].due.Before(q[j].due)
}

// Swap swaps the tasks at index i and j
func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}

// Push pushes a task onto the queue
func (q *taskQueue) Push(x any) {
	n := len(*q)

	t := x.(*task)
	t.index = n

	*q = append(*q, t)
}

// Pop pops a task from the queue
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)

	t := old[n-1]
	old[n-1] = nil
	t.index = -1

	*q = old[0 : n-1]

	return t
}

// top returns the earliest task without removing it.
func (q taskQueue) top() *task {
	if len(q) == 0 {
		return nil
	}

	return q[0]
}
