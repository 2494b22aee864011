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

// Package signals holds the process-wide flags shared by the event loop, the
// guest threads, the command pipeline and the debug GUI.
//
// There is no package level instance. A single Signals value is created at
// startup and passed to every component that needs it.
package signals

import (
	"sync/atomic"
)

// Signals is the set of process-wide flags. The zero value is ready to use
// with every flag false.
type Signals struct {
	abort   atomic.Bool
	debugUI atomic.Bool
	touch   atomic.Bool
}

// NewSignals is the preferred method of initialisation for the Signals type.
func NewSignals(debugUI bool, touch bool) *Signals {
	s := &Signals{}
	s.debugUI.Store(debugUI)
	s.touch.Store(touch)
	return s
}

// Abort raises the abort signal. The signal can never be lowered. Returns true
// if this call raised the signal and false if it was already raised.
func (s *Signals) Abort() bool {
	return s.abort.CompareAndSwap(false, true)
}

// Aborted returns true if the abort signal has been raised.
func (s *Signals) Aborted() bool {
	return s.abort.Load()
}

// ToggleDebugUI flips the debug UI flag and returns the new value.
func (s *Signals) ToggleDebugUI() bool {
	return toggle(&s.debugUI)
}

// DebugUIVisible returns true if the debug UI should be drawn.
func (s *Signals) DebugUIVisible() bool {
	return s.debugUI.Load()
}

// ToggleTouch flips the touch emulation flag and returns the new value.
func (s *Signals) ToggleTouch() bool {
	return toggle(&s.touch)
}

// TouchEnabled returns true if host pointer events should be forwarded to the
// touch emulation.
func (s *Signals) TouchEnabled() bool {
	return s.touch.Load()
}

// flips the flag with a compare-and-swap retry loop. the loop only repeats if
// another toggle landed between the load and the swap
func toggle(flag *atomic.Bool) bool {
	for {
		old := flag.Load()
		if flag.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
