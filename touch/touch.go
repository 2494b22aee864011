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

// Package touch emulates the front touch panel of the guest. Host finger
// events are converted to panel reports. The guest reads the current reports
// with Peek().
//
// Finger events are only accepted while touch emulation is enabled in the
// process signals. Disabling touch emulation releases every finger.
package touch

import (
	"fmt"
	"sync"

	"github.com/govita/govita/signals"
	"github.com/govita/govita/userinput"
	"golang.org/x/exp/slices"
)

// Dimensions of the front panel in panel units.
const (
	PanelWidth  = 1920
	PanelHeight = 1088
)

// MaxReports is the number of fingers the panel can track at once.
const MaxReports = 8

// Report is one finger on the panel.
type Report struct {
	ID    uint8
	X, Y  int16
	Force uint8
}

func (r Report) String() string {
	return fmt.Sprintf("%d: %d,%d", r.ID, r.X, r.Y)
}

// Data is a snapshot of the panel.
type Data struct {
	// incremented for every accepted finger event
	Timestamp uint64

	// ordered by report id
	Reports []Report
}

type finger struct {
	host   int64
	report Report
}

// Touch is the front panel.
type Touch struct {
	sig *signals.Signals

	crit      sync.Mutex
	fingers   []finger
	nextID    uint8
	timestamp uint64
}

// NewTouch is the preferred method of initialisation for the Touch type.
func NewTouch(sig *signals.Signals) *Touch {
	return &Touch{sig: sig}
}

func toPanel(v float32, size int) int16 {
	v = min(max(v, 0.0), 1.0)
	return int16(v * float32(size-1))
}

// HandleFinger updates the panel from a host finger event. Returns false if
// the event was not accepted.
func (t *Touch) HandleFinger(ev userinput.EventFinger) bool {
	t.crit.Lock()
	defer t.crit.Unlock()

	if !t.sig.TouchEnabled() {
		t.fingers = t.fingers[:0]
		return false
	}

	idx := slices.IndexFunc(t.fingers, func(f finger) bool {
		return f.host == ev.ID
	})

	switch ev.Phase {
	case userinput.FingerDown:
		if idx != -1 {
			// a repeated down for the same finger is treated as motion
			t.fingers[idx].report = t.report(t.fingers[idx].report.ID, ev)
			break
		}
		if len(t.fingers) >= MaxReports {
			return false
		}
		t.fingers = append(t.fingers, finger{
			host:   ev.ID,
			report: t.report(t.nextID, ev),
		})
		t.nextID++

	case userinput.FingerMotion:
		if idx == -1 {
			return false
		}
		t.fingers[idx].report = t.report(t.fingers[idx].report.ID, ev)

	case userinput.FingerUp:
		if idx == -1 {
			return false
		}
		t.fingers = slices.Delete(t.fingers, idx, idx+1)

	default:
		return false
	}

	t.timestamp++
	return true
}

func (t *Touch) report(id uint8, ev userinput.EventFinger) Report {
	force := uint8(min(max(ev.Pressure, 0.0), 1.0) * 127)
	if force == 0 {
		force = 1
	}
	return Report{
		ID:    id,
		X:     toPanel(ev.X, PanelWidth),
		Y:     toPanel(ev.Y, PanelHeight),
		Force: force,
	}
}

// Peek returns a snapshot of the panel.
func (t *Touch) Peek() Data {
	t.crit.Lock()
	defer t.crit.Unlock()

	d := Data{
		Timestamp: t.timestamp,
		Reports:   make([]Report, 0, len(t.fingers)),
	}
	for _, f := range t.fingers {
		d.Reports = append(d.Reports, f.report)
	}
	slices.SortFunc(d.Reports, func(a, b Report) int {
		return int(a.ID) - int(b.ID)
	})

	return d
}

// Reset releases every finger.
func (t *Touch) Reset() {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.fingers = t.fingers[:0]
}
