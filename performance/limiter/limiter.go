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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter is created with the required rate:
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations are then stalled with the Wait() function. Wait() returns false
// once the limiter has been stopped:
//
//	for fps.Wait() {
//		vblank()
//	}
package limiter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/govita/govita/curated"
)

// InvalidRate is returned by NewFPSLimiter() for rates of zero or less.
const InvalidRate = "limiter: invalid rate: %d"

// FpsLimiter triggers at the requested number of frames per second.
type FpsLimiter struct {
	// nanoseconds per frame. changed by SetLimit()
	period atomic.Int64

	tick chan bool
	stop chan bool

	stopOnce sync.Once
	done     chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}

	lim := &FpsLimiter{
		tick: make(chan bool),
		stop: make(chan bool),
		done: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	go lim.run()

	return lim, nil
}

// the ticker compensates for oversleeping by shortening the next sleep. this
// is only any good if the host is well above the required rate
func (lim *FpsLimiter) run() {
	defer close(lim.done)

	adjusted := time.Duration(lim.period.Load())
	t := time.Now()

	for {
		select {
		case lim.tick <- true:
		case <-lim.stop:
			return
		}

		if adjusted > 0 {
			select {
			case <-time.After(adjusted):
			case <-lim.stop:
				return
			}
		}

		period := time.Duration(lim.period.Load())
		nt := time.Now()
		adjusted -= nt.Sub(t) - period

		// don't let a long stall cause a burst of ticks
		if adjusted < -period {
			adjusted = period
		}
		t = nt
	}
}

// SetLimit changes the rate of the limiter. Rates of zero or less are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.period.Store(int64(time.Second) / int64(framesPerSecond))
}

// Wait blocks until the next trigger. Returns false if the limiter has been
// stopped.
func (lim *FpsLimiter) Wait() bool {
	select {
	case <-lim.tick:
		return true
	case <-lim.done:
		return false
	}
}

// HasWaited returns true if the trigger has already happened and false if it
// is yet to happen or if the limiter has been stopped.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. The ticker goroutine has ended by the time Stop() returns.
// Safe to call more than once.
func (lim *FpsLimiter) Stop() {
	lim.stopOnce.Do(func() {
		close(lim.stop)
	})
	<-lim.done
}
