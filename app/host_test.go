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

package app_test

import (
	"testing"

	"github.com/govita/govita/app"
	"github.com/govita/govita/shutdown"
	"github.com/govita/govita/test"
	"github.com/govita/govita/userinput"
)

func TestHandleEvents(t *testing.T) {
	host, _, _ := newHost(t, 1024*1024)
	defer end(host)

	poller := &userinput.Slice{Events: []userinput.Event{
		userinput.EventKeyboard{Key: "g", Down: true},
		userinput.EventKeyboard{Key: "g", Down: false},
		userinput.EventKeyboard{Key: "t", Down: true},
		userinput.EventKeyboard{Key: "t", Down: true, Repeat: true},
		userinput.EventWindowResized{Width: 2000, Height: 544},
		userinput.EventMouseMotion{},
		struct{}{},
	}}

	test.ExpectSuccess(t, host.HandleEvents(poller))
	test.ExpectEquality(t, len(poller.Events), 0)

	test.ExpectSuccess(t, host.Signals.DebugUIVisible())
	test.ExpectFailure(t, host.Signals.TouchEnabled())
	test.ExpectEquality(t, host.Viewport(), app.Viewport{X: 520, W: 960, H: 544})
	test.ExpectEquality(t, host.Shutdown.State(), shutdown.Running)
	test.ExpectFailure(t, host.Signals.Aborted())
}

func TestHandleFinger(t *testing.T) {
	host, _, _ := newHost(t, 1024*1024)
	defer end(host)

	poller := &userinput.Slice{Events: []userinput.Event{
		userinput.EventFinger{Phase: userinput.FingerDown, ID: 7, X: 0.5, Y: 0.5, Pressure: 1.0},
	}}
	test.ExpectSuccess(t, host.HandleEvents(poller))
	test.ExpectEquality(t, len(host.Touch.Peek().Reports), 1)

	// touch emulation off. the panel is released and fingers are ignored
	poller.Events = []userinput.Event{
		userinput.EventKeyboard{Key: "t", Down: true},
		userinput.EventFinger{Phase: userinput.FingerDown, ID: 8, X: 0.1, Y: 0.1},
	}
	test.ExpectSuccess(t, host.HandleEvents(poller))
	test.ExpectEquality(t, len(host.Touch.Peek().Reports), 0)
}

func TestHandleQuit(t *testing.T) {
	host, _, _ := newHost(t, 1024*1024)
	defer host.Kernel.Wait()

	poller := &userinput.Slice{Events: []userinput.Event{
		userinput.EventKeyboard{Key: "x", Down: true},
		userinput.EventQuit{},
		userinput.EventKeyboard{Key: "g", Down: true},
	}}

	test.ExpectFailure(t, host.HandleEvents(poller))

	// events after the quit are not handled
	test.ExpectEquality(t, len(poller.Events), 1)
	test.ExpectFailure(t, host.Signals.DebugUIVisible())

	test.ExpectEquality(t, host.Shutdown.State(), shutdown.ShuttingDown)
	test.ExpectSuccess(t, host.Signals.Aborted())
	test.ExpectSuccess(t, host.Pipeline.Aborted())
	test.ExpectSuccess(t, host.Display.Aborted())
	test.ExpectSuccess(t, host.Kernel.Stopping())

	// a second quit is harmless
	test.ExpectFailure(t, host.HandleEvents(&userinput.Slice{Events: []userinput.Event{userinput.EventQuit{}}}))
}
