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

package renderer_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/test"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// starts the backend goroutine and returns a function that aborts the
// pipeline and waits for the goroutine to end
func run(st *renderer.State) func() {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		st.ProcessBatches()
	}()
	return func() {
		st.Abort()
		wg.Wait()
	}
}

func TestFIFO(t *testing.T) {
	var seen []int32
	backend := &renderer.NullBackend{
		OnExecute: func(cl renderer.CommandList) {
			seen = append(seen, cl.Commands[0].Rect.X)
		},
	}

	st := renderer.NewState(backend, 3)
	stop := run(st)
	defer stop()

	for i := int32(1); i <= 100; i++ {
		var cl renderer.CommandList
		cl.FillRect(renderer.Rect{X: i}, renderer.Colour{})
		seq := st.Submit(cl)
		test.ExpectEquality(t, seq, uint64(i))
	}

	test.DemandSuccess(t, st.WaitCaughtUp())

	// seen is only written by the backend goroutine. WaitCaughtUp() is the
	// synchronisation point
	test.DemandEquality(t, len(seen), 100)
	for i, v := range seen {
		test.ExpectEquality(t, v, int32(i+1))
	}

	lists, commands := backend.Counts()
	test.ExpectEquality(t, lists, 100)
	test.ExpectEquality(t, commands, 100)
	test.ExpectEquality(t, backend.Last().Seq, uint64(100))

	stats := st.Stats()
	test.ExpectEquality(t, stats.Submitted, uint64(100))
	test.ExpectEquality(t, stats.Processed, uint64(100))
	test.ExpectEquality(t, stats.Pending, 0)
}

func TestFrameStatistics(t *testing.T) {
	st := renderer.NewState(&renderer.NullBackend{}, 3)
	stop := run(st)
	defer stop()

	test.ExpectEquality(t, st.Stats().AverageScenePerFrame, uint32(1))

	for range 5 {
		st.Submit(renderer.CommandList{})
	}
	test.DemandSuccess(t, st.WaitCaughtUp())
	test.ExpectEquality(t, st.Stats().SceneProcessedSinceLastFrame, uint32(5))

	test.ExpectEquality(t, st.FrameBoundary(), uint32(5))
	stats := st.Stats()
	test.ExpectEquality(t, stats.SceneProcessedSinceLastFrame, uint32(0))
	test.ExpectEquality(t, stats.AverageScenePerFrame, uint32(3))

	// an empty frame. the average never drops below one
	test.ExpectEquality(t, st.FrameBoundary(), uint32(0))
	test.ExpectEquality(t, st.Stats().AverageScenePerFrame, uint32(1))
	test.ExpectEquality(t, st.FrameBoundary(), uint32(0))
	test.ExpectEquality(t, st.Stats().AverageScenePerFrame, uint32(1))
}

// a backend that blocks until released
type gateBackend struct {
	gate chan bool
}

func (b *gateBackend) Kind() renderer.BackendKind {
	return renderer.Null
}

func (b *gateBackend) Execute(_ renderer.CommandList) error {
	<-b.gate
	return nil
}

func TestAbort(t *testing.T) {
	backend := &gateBackend{gate: make(chan bool)}
	st := renderer.NewState(backend, 0)

	done := make(chan bool)
	go func() {
		st.ProcessBatches()
		close(done)
	}()

	st.Submit(renderer.CommandList{})
	st.Submit(renderer.CommandList{})

	// waiters on every condition in the pipeline
	caughtUp := make(chan bool)
	go func() {
		caughtUp <- st.WaitCaughtUp()
	}()
	pending := make(chan bool)
	go func() {
		pending <- st.WaitPending()
	}()

	time.Sleep(10 * time.Millisecond)
	st.Abort()

	// release the batch being executed. the second batch is never executed
	close(backend.gate)

	test.DemandWithin(t, done, time.Second)

	select {
	case ok := <-caughtUp:
		test.ExpectFailure(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("WaitCaughtUp() not released by abort")
	}
	select {
	case ok := <-pending:
		test.ExpectFailure(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("WaitPending() not released by abort")
	}

	test.ExpectSuccess(t, st.Aborted())
	test.ExpectSuccess(t, st.Stats().Aborted)

	// submissions after abort are discarded and nothing blocks
	test.ExpectEquality(t, st.Submit(renderer.CommandList{}), uint64(0))
	test.ExpectFailure(t, st.WaitCaughtUp())
	test.ExpectFailure(t, st.WaitPending())

	// idempotent
	st.Abort()
	st.ProcessBatches()
}

type failingBackend struct {
	renderer.NullBackend
}

func (b *failingBackend) Execute(cl renderer.CommandList) error {
	b.NullBackend.Execute(cl)
	return errors.New("backend failure")
}

// errors from the backend are logged and do not stop the pipeline
func TestBackendError(t *testing.T) {
	backend := &failingBackend{}
	st := renderer.NewState(backend, 3)
	stop := run(st)
	defer stop()

	st.Submit(renderer.CommandList{})
	st.Submit(renderer.CommandList{})
	test.DemandSuccess(t, st.WaitCaughtUp())

	lists, _ := backend.Counts()
	test.ExpectEquality(t, lists, 2)
}

func TestManyProducers(t *testing.T) {
	backend := &renderer.NullBackend{}
	st := renderer.NewState(backend, 3)
	stop := run(st)
	defer stop()

	var wg sync.WaitGroup
	for p := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				st.WaitPending()
				st.Submit(renderer.CommandList{Thread: int32(p)})
			}
		}()
	}
	wg.Wait()

	test.DemandSuccess(t, st.WaitCaughtUp())
	lists, _ := backend.Counts()
	test.ExpectEquality(t, lists, 100)
	test.ExpectEquality(t, st.FrameBoundary(), uint32(100))
}

func TestBackendKind(t *testing.T) {
	k, err := renderer.ParseBackendKind("OpenGL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, renderer.OpenGL)

	k, err = renderer.ParseBackendKind("null")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, renderer.Null)

	_, err = renderer.ParseBackendKind("vulkan")
	test.ExpectSuccess(t, curated.Is(err, renderer.UnknownBackend))

	st := renderer.NewState(&renderer.NullBackend{}, 1)
	test.ExpectEquality(t, st.Backend(), renderer.Null)
	test.ExpectEquality(t, renderer.OpenGL.String(), "opengl")
}

func TestCommandListString(t *testing.T) {
	var cl renderer.CommandList
	cl.Clear(renderer.Colour{R: 0xff})
	cl.FillRect(renderer.Rect{X: 1, Y: 2, W: 3, H: 4}, renderer.Colour{G: 0x10})
	test.ExpectEquality(t, cl.String(), "#0 (thread 0): clear #ff0000 fill #001000 (1,2 3x4)")
}
