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

// Package shutdown coordinates the one-shot shutdown of the guest threads,
// the command pipeline and the display.
//
// The Coordinator has two states, Running and ShuttingDown. The transition
// from Running to ShuttingDown happens exactly once, on the first call to
// Shutdown(). There is no transition back to Running.
package shutdown

import (
	"sync/atomic"

	"github.com/govita/govita/logger"
	"github.com/govita/govita/signals"
)

// State of the Coordinator.
type State int32

// List of valid State values.
const (
	Running State = iota
	ShuttingDown
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	}
	return "unknown"
}

// ThreadStopper is implemented by the kernel.
type ThreadStopper interface {
	StopAllThreads()
}

// Aborter is implemented by the command pipeline and the display.
type Aborter interface {
	Abort()
}

// Coordinator performs the shutdown sequence.
type Coordinator struct {
	sig      *signals.Signals
	threads  ThreadStopper
	pipeline Aborter
	display  Aborter

	state atomic.Int32
	done  chan struct{}
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type.
func NewCoordinator(sig *signals.Signals, threads ThreadStopper, pipeline Aborter, display Aborter) *Coordinator {
	return &Coordinator{
		sig:      sig,
		threads:  threads,
		pipeline: pipeline,
		display:  display,
		done:     make(chan struct{}),
	}
}

// Shutdown raises the abort signal, stops every guest thread, aborts the
// command pipeline and aborts the display, in that order.
//
// Only the first call performs the sequence and returns true. Every other
// call, concurrent or later, waits for the sequence to complete and returns
// false.
func (c *Coordinator) Shutdown() bool {
	if !c.state.CompareAndSwap(int32(Running), int32(ShuttingDown)) {
		<-c.done
		return false
	}

	logger.Log(logger.Allow, "shutdown", "stopping guest threads and command pipeline")

	c.sig.Abort()
	c.threads.StopAllThreads()
	c.pipeline.Abort()
	c.display.Abort()

	close(c.done)
	return true
}

// State returns the current state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Done returns a channel that is closed once the shutdown sequence has
// completed.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}
