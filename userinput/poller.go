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

package userinput

import (
	"github.com/govita/govita/logger"
)

// Poller is the source of host events. Poll returns false when there are no
// more events waiting. Poll never blocks.
type Poller interface {
	Poll() (Event, bool)
}

// Channel is a Poller fed by goroutines that are not the event loop. The
// zero value is not usable; use NewChannel().
type Channel struct {
	events chan Event
}

// NewChannel is the preferred method of initialisation for the Channel type.
// The size is the number of events that can wait before events are dropped.
func NewChannel(size int) *Channel {
	return &Channel{
		events: make(chan Event, size),
	}
}

// Push adds an event. If the channel is full the event is dropped and false
// is returned. Push never blocks.
func (ch *Channel) Push(ev Event) bool {
	select {
	case ch.events <- ev:
		return true
	default:
		logger.Logf(logger.Allow, "userinput", "dropped %T event", ev)
		return false
	}
}

// Poll implements the Poller interface.
func (ch *Channel) Poll() (Event, bool) {
	select {
	case ev := <-ch.events:
		return ev, true
	default:
		return nil, false
	}
}

// Slice is a Poller over a fixed list of events. Useful for scripted input.
type Slice struct {
	Events []Event
}

// Poll implements the Poller interface.
func (s *Slice) Poll() (Event, bool) {
	if len(s.Events) == 0 {
		return nil, false
	}
	ev := s.Events[0]
	s.Events = s.Events[1:]
	return ev, true
}
