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

package sdlimgui

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// time in milliseconds that wait() blocks for an SDL event
const pollPeriod = 5

type polling struct {
	// functions that need to be performed in the main thread are queued for
	// serving by the wait() function
	service chan func()

	// closed by stop(). Call() never blocks once stopped
	stopped  chan struct{}
	stopOnce sync.Once
}

func newPolling() *polling {
	return &polling{
		service: make(chan func(), 1),
		stopped: make(chan struct{}),
	}
}

// Call runs the function on the main thread and waits for it to complete.
// Returns false if the function was not run because the service loop has
// stopped. Must not be called from the main thread.
func (pol *polling) Call(f func()) bool {
	done := make(chan struct{})

	select {
	case pol.service <- func() {
		f()
		close(done)
	}:
	case <-pol.stopped:
		return false
	}

	select {
	case <-done:
		return true
	case <-pol.stopped:
		// the function may have completed at the same moment as the stop
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// stop releases every caller waiting in Call() and any future caller.
func (pol *polling) stop() {
	pol.stopOnce.Do(func() {
		close(pol.stopped)
	})
}

// serve runs every function waiting to be run on the main thread.
func (pol *polling) serve() {
	for {
		select {
		case f := <-pol.service:
			f()
		default:
			return
		}
	}
}

// wait services queued functions and then waits for an SDL event or until the
// poll period has elapsed. Returns nil if there was no event.
func (pol *polling) wait() sdl.Event {
	pol.serve()
	return sdl.WaitEventTimeout(pollPeriod)
}

// poll returns the next waiting SDL event without blocking. Returns nil if
// there is no event.
func (pol *polling) poll() sdl.Event {
	return sdl.PollEvent()
}
