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

package renderer

import (
	"sync"

	"github.com/govita/govita/logger"
	"github.com/govita/govita/queue"
)

// Stats is a snapshot of the pipeline counters.
type Stats struct {
	Submitted uint64
	Processed uint64
	Pending   int

	SceneProcessedSinceLastFrame uint32
	AverageScenePerFrame         uint32

	Aborted bool
}

// State is the command pipeline.
type State struct {
	backend Backend
	queue   *queue.Queue[CommandList]

	// finishCrit protects every field below it. finishOne is broadcast after
	// every processed command list and on abort
	finishCrit sync.Mutex
	finishOne  *sync.Cond

	submitted uint64
	processed uint64
	aborted   bool

	sceneProcessedSinceLastFrame uint32
	averageScenePerFrame         uint32
}

// NewState is the preferred method of initialisation for the State type.
// The maxPending value is used by WaitPending().
func NewState(backend Backend, maxPending int) *State {
	st := &State{
		backend:              backend,
		queue:                queue.NewQueue[CommandList](),
		averageScenePerFrame: 1,
	}
	st.finishOne = sync.NewCond(&st.finishCrit)
	st.queue.SetMaxPending(maxPending)
	return st
}

// Backend returns the kind of backend used by the pipeline.
func (st *State) Backend() BackendKind {
	return st.backend.Kind()
}

// Submit a command list. Submit never waits for the backend. The list is
// discarded if the pipeline has been aborted. Returns the sequence number
// given to the list, which is zero for discarded lists.
func (st *State) Submit(cl CommandList) uint64 {
	st.finishCrit.Lock()
	defer st.finishCrit.Unlock()

	if st.aborted {
		return 0
	}

	// sequence numbers reach the queue in order
	st.submitted++
	cl.Seq = st.submitted
	st.queue.Push(cl)

	return cl.Seq
}

// WaitPending blocks until the number of queued command lists is no more than
// the maxPending value given to NewState(). Returns false if the pipeline has
// been aborted.
func (st *State) WaitPending() bool {
	return st.queue.WaitPending()
}

// WaitCaughtUp blocks until every submitted command list has been processed.
// Returns false if the pipeline has been aborted.
func (st *State) WaitCaughtUp() bool {
	st.finishCrit.Lock()
	defer st.finishCrit.Unlock()

	for !st.aborted && st.processed < st.submitted {
		st.finishOne.Wait()
	}

	return !st.aborted
}

// ProcessBatches executes command lists until the pipeline is aborted. It must
// be run by exactly one goroutine.
func (st *State) ProcessBatches() {
	for {
		cl, ok := st.queue.Pop()
		if !ok {
			return
		}

		if err := st.backend.Execute(cl); err != nil {
			logger.Logf(logger.Allow, "renderer", "%s: %v", st.backend.Kind(), err)
		}

		st.finishCrit.Lock()
		st.processed++
		st.sceneProcessedSinceLastFrame++
		st.finishOne.Broadcast()
		st.finishCrit.Unlock()
	}
}

// FrameBoundary consumes the number of command lists processed since the
// previous call and updates the average per frame. It is called once per
// frame by the frame pacing goroutine.
func (st *State) FrameBoundary() uint32 {
	st.finishCrit.Lock()
	defer st.finishCrit.Unlock()

	count := st.sceneProcessedSinceLastFrame
	st.sceneProcessedSinceLastFrame = 0

	st.averageScenePerFrame = max(1, (st.averageScenePerFrame+count)/2)

	return count
}

// Stats returns a consistent snapshot of the pipeline counters.
func (st *State) Stats() Stats {
	st.finishCrit.Lock()
	defer st.finishCrit.Unlock()

	return Stats{
		Submitted:                    st.submitted,
		Processed:                    st.processed,
		Pending:                      st.queue.Len(),
		SceneProcessedSinceLastFrame: st.sceneProcessedSinceLastFrame,
		AverageScenePerFrame:         st.averageScenePerFrame,
		Aborted:                      st.aborted,
	}
}

// Abort stops the pipeline. Every goroutine blocked on the pipeline is
// released. Abort is idempotent.
func (st *State) Abort() {
	st.queue.Abort()

	st.finishCrit.Lock()
	defer st.finishCrit.Unlock()
	st.aborted = true
	st.finishOne.Broadcast()
}

// Aborted returns true if Abort() has been called.
func (st *State) Aborted() bool {
	st.finishCrit.Lock()
	defer st.finishCrit.Unlock()
	return st.aborted
}
