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

package queue_test

import (
	"sync"
	"testing"
	"time"

	"github.com/govita/govita/queue"
	"github.com/govita/govita/test"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFIFO(t *testing.T) {
	q := queue.NewQueue[int]()

	go func() {
		for i := 1; i <= 100; i++ {
			q.Push(i)
		}
	}()

	for i := 1; i <= 100; i++ {
		v, ok := q.Pop()
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, v, i)
	}

	test.ExpectEquality(t, q.Len(), 0)
}

func TestTryPop(t *testing.T) {
	q := queue.NewQueue[string]()

	_, ok := q.TryPop()
	test.ExpectFailure(t, ok)

	q.Push("a")
	q.Push("b")
	test.ExpectEquality(t, q.Len(), 2)

	v, ok := q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "a")

	v, ok = q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "b")

	_, ok = q.TryPop()
	test.ExpectFailure(t, ok)
}

// every consumer blocked on an empty queue is released by Abort()
func TestAbortWakesAllConsumers(t *testing.T) {
	const consumers = 8

	q := queue.NewQueue[int]()

	var started sync.WaitGroup
	results := make(chan bool, consumers)
	for range consumers {
		started.Add(1)
		go func() {
			started.Done()
			_, ok := q.Pop()
			results <- ok
		}()
	}
	started.Wait()

	// give the consumers a chance to block in Pop()
	time.Sleep(10 * time.Millisecond)

	q.Abort()

	for range consumers {
		select {
		case ok := <-results:
			test.ExpectFailure(t, ok)
		case <-time.After(time.Second):
			t.Fatalf("consumer not released by abort")
		}
	}

	// future calls to Pop() never block
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := q.Pop()
		test.ExpectFailure(t, ok)
	}()
	test.DemandWithin(t, done, time.Second)
}

// items pushed after an abort are discarded and items queued before an abort
// are never delivered
func TestPushAfterAbort(t *testing.T) {
	q := queue.NewQueue[int]()
	q.Push(1)
	q.Abort()
	test.ExpectEquality(t, q.Len(), 0)

	q.Push(2)
	test.ExpectEquality(t, q.Len(), 0)

	_, ok := q.Pop()
	test.ExpectFailure(t, ok)
	_, ok = q.TryPop()
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, q.Aborted())
}

func TestAbortIdempotent(t *testing.T) {
	q := queue.NewQueue[int]()
	q.Abort()
	q.Abort()
	test.ExpectSuccess(t, q.Aborted())
	_, ok := q.Pop()
	test.ExpectFailure(t, ok)
}

func TestWaitPending(t *testing.T) {
	q := queue.NewQueue[int]()
	q.SetMaxPending(1)

	// nothing pending
	test.ExpectSuccess(t, q.WaitPending())

	q.Push(1)
	q.Push(2)

	released := make(chan bool)
	go func() {
		released <- q.WaitPending()
	}()

	// producer should still be waiting because two items are queued
	select {
	case <-released:
		t.Fatalf("WaitPending() returned with too many items queued")
	case <-time.After(20 * time.Millisecond):
	}

	_, ok := q.Pop()
	test.DemandSuccess(t, ok)

	select {
	case ok := <-released:
		test.ExpectSuccess(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("WaitPending() not released after Pop()")
	}
}

func TestWaitPendingAbort(t *testing.T) {
	q := queue.NewQueue[int]()
	q.SetMaxPending(0)
	q.Push(1)

	released := make(chan bool)
	go func() {
		released <- q.WaitPending()
	}()

	time.Sleep(10 * time.Millisecond)
	q.Abort()

	select {
	case ok := <-released:
		test.ExpectFailure(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("WaitPending() not released by abort")
	}

	// and never blocks again
	test.ExpectFailure(t, q.WaitPending())
}

// many producers, one consumer. every item is delivered exactly once and the
// order of items from any one producer is preserved
func TestManyProducers(t *testing.T) {
	const producers = 4
	const items = 250

	q := queue.NewQueue[[2]int]()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range items {
				q.Push([2]int{p, i})
			}
		}()
	}

	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}

	for range producers * items {
		v, ok := q.Pop()
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, v[1], last[v[0]]+1)
		last[v[0]] = v[1]
	}

	wg.Wait()
	test.ExpectEquality(t, q.Len(), 0)
}
