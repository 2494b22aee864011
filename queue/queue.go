// This file is part of govita.
//
// govita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// govita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with govita.  If not, see <https://www.gnu.org/licenses/>.

// Package queue implements a thread-safe FIFO with blocking dequeue and a
// one-shot abort.
//
// The queue is unbounded. Push() never blocks and so a slow consumer never
// stalls a producer. Producers that want to be paced by the consumer call
// WaitPending(), which blocks until the number of queued items falls to the
// value given to SetMaxPending().
//
// Once Abort() has been called the queue is stopped forever. Every goroutine
// blocked in Pop() or WaitPending() is woken and every future call returns
// immediately:
//
//	for {
//		item, ok := q.Pop()
//		if !ok {
//			// queue has been aborted
//			return
//		}
//		process(item)
//	}
package queue

import (
	"sync"
)

// DefaultMaxPending is the number of items WaitPending() allows to be queued
// if SetMaxPending() has not been called.
const DefaultMaxPending = 3

// Queue is a FIFO of items of type T. The zero value is not usable; use
// NewQueue().
type Queue[T any] struct {
	crit sync.Mutex

	// consumers wait on available. pacing producers wait on drained. both
	// are broadcast on abort and every waiter rechecks the aborted field
	// after waking
	available *sync.Cond
	drained   *sync.Cond

	// items[head:] are the queued items
	items []T
	head  int

	maxPending int
	aborted    bool
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{
		maxPending: DefaultMaxPending,
	}
	q.available = sync.NewCond(&q.crit)
	q.drained = sync.NewCond(&q.crit)
	return q
}

// SetMaxPending sets the maximum number of items that can be queued before
// WaitPending() blocks. Values less than zero are treated as zero.
func (q *Queue[T]) SetMaxPending(n int) {
	q.crit.Lock()
	defer q.crit.Unlock()
	if n < 0 {
		n = 0
	}
	q.maxPending = n

	// the new value might release a pacing goroutine
	q.drained.Broadcast()
}

// Push adds an item to the end of the queue and wakes a consumer. Pushing to
// an aborted queue is allowed but the item is discarded.
func (q *Queue[T]) Push(item T) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.aborted {
		return
	}

	q.items = append(q.items, item)

	// exactly one item has become available
	q.available.Signal()
}

// Pop removes and returns the item at the front of the queue, blocking until
// one is available. The second return value is false if the queue has been
// aborted, in which case the item is the zero value.
func (q *Queue[T]) Pop() (T, bool) {
	q.crit.Lock()
	defer q.crit.Unlock()

	for !q.aborted && q.len() == 0 {
		q.available.Wait()
	}

	return q.pop()
}

// TryPop is the non-blocking version of Pop(). The second return value is false
// if the queue is empty or if it has been aborted.
func (q *Queue[T]) TryPop() (T, bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.pop()
}

// pop must be called with the critical section held
func (q *Queue[T]) pop() (T, bool) {
	var zero T

	if q.aborted || q.len() == 0 {
		return zero, false
	}

	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// reclaim space once the queue has drained. the backing array is reused
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	// any number of pacing producers may be waiting for the queue to shrink
	q.drained.Broadcast()

	return item, true
}

// WaitPending blocks until the number of queued items is no greater than the
// maximum pending value. Returns false if the queue has been aborted.
func (q *Queue[T]) WaitPending() bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	for !q.aborted && q.len() > q.maxPending {
		q.drained.Wait()
	}

	return !q.aborted
}

// Abort stops the queue. All blocked goroutines are woken. Abort is idempotent.
func (q *Queue[T]) Abort() {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.aborted = true

	// queued items will never be consumed
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0

	q.available.Broadcast()
	q.drained.Broadcast()
}

// Aborted returns true if Abort() has been called.
func (q *Queue[T]) Aborted() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.aborted
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.len()
}

func (q *Queue[T]) len() int {
	return len(q.items) - q.head
}
