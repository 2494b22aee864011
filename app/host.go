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

package app

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/govita/govita/display"
	"github.com/govita/govita/kernel"
	"github.com/govita/govita/loader"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/shutdown"
	"github.com/govita/govita/signals"
	"github.com/govita/govita/touch"
	"github.com/govita/govita/userinput"
	"github.com/govita/govita/version"
)

// Window is the host window.
type Window interface {
	SetTitle(title string)

	// ShowError reports an error to the user. It may block until the user has
	// acknowledged the error.
	ShowError(message string)
}

// the window title is updated no more than once per interval
const titleInterval = time.Second

// Host is the state of the running application.
type Host struct {
	Kernel   *kernel.Kernel
	Signals  *signals.Signals
	Pipeline *renderer.State
	Display  *display.Display
	Touch    *touch.Touch
	Window   Window
	Shutdown *shutdown.Coordinator

	// the main thread once RunApp() has started it. zero otherwise
	mainThread atomic.Int32

	crit     sync.Mutex
	entry    loader.Entry
	frames   uint32
	ticks    time.Time
	viewport Viewport
}

// NewHost is the preferred method of initialisation for the Host type. The
// shutdown coordinator is created from the kernel, pipeline and display.
func NewHost(k *kernel.Kernel, sig *signals.Signals, pipeline *renderer.State, disp *display.Display, tch *touch.Touch, win Window) *Host {
	return &Host{
		Kernel:   k,
		Signals:  sig,
		Pipeline: pipeline,
		Display:  disp,
		Touch:    tch,
		Window:   win,
		Shutdown: shutdown.NewCoordinator(sig, k, pipeline, disp),
		ticks:    time.Now(),
		viewport: Letterbox(display.ScreenWidth, display.ScreenHeight),
	}
}

func (host *Host) setEntry(entry loader.Entry) {
	host.crit.Lock()
	defer host.crit.Unlock()
	host.entry = entry
}

// MainThread returns the id of the main thread. The bool is false if the main
// thread has not been started.
func (host *Host) MainThread() (kernel.ThreadID, bool) {
	id := host.mainThread.Load()
	return kernel.ThreadID(id), id != 0
}

// HandleEvents dispatches every event waiting in the poller. Returns false if
// the user has asked to quit, in which case the shutdown coordinator has
// already run. Events that have no meaning to the host are ignored.
func (host *Host) HandleEvents(poller userinput.Poller) bool {
	for {
		ev, ok := poller.Poll()
		if !ok {
			return true
		}

		switch ev := ev.(type) {
		case userinput.EventQuit:
			logger.Log(logger.Allow, "app", "quit")
			host.Shutdown.Shutdown()
			return false

		case userinput.EventKeyboard:
			if !ev.Down || ev.Repeat {
				break
			}
			switch ev.Key {
			case "g":
				host.Signals.ToggleDebugUI()
			case "t":
				if host.Signals.ToggleTouch() {
					logger.Log(logger.Allow, "app", "touch emulation enabled")
				} else {
					logger.Log(logger.Allow, "app", "touch emulation disabled")
				}
			}

		case userinput.EventWindowResized:
			host.crit.Lock()
			host.viewport = Letterbox(ev.Width, ev.Height)
			host.crit.Unlock()

		case userinput.EventFinger:
			host.Touch.HandleFinger(ev)
		}
	}
}

// Viewport returns the area of the host window that the guest screen is
// drawn in.
func (host *Host) Viewport() Viewport {
	host.crit.Lock()
	defer host.crit.Unlock()
	return host.viewport
}

// EndFrame is called once per host frame. It counts the frame and consumes
// the pipeline's frame boundary.
func (host *Host) EndFrame() {
	host.Pipeline.FrameBoundary()

	host.crit.Lock()
	defer host.crit.Unlock()
	host.frames++
}

// UpdateWindowTitle sets the window title if at least a second has passed
// since the last update and at least one frame has ended in that time. The
// title shows the running program and the frame rate.
func (host *Host) UpdateWindowTitle(now time.Time) {
	host.crit.Lock()

	ms := uint32(now.Sub(host.ticks).Milliseconds())
	if ms < uint32(titleInterval.Milliseconds()) || host.frames == 0 {
		host.crit.Unlock()
		return
	}

	fps := host.frames * 1000 / ms
	msPerFrame := ms / host.frames
	title := fmt.Sprintf("%s | %s (%s) | %d ms/frame (%d frames/sec)",
		version.ApplicationName, host.entry.Title, host.entry.TitleID, msPerFrame, fps)

	host.ticks = now
	host.frames = 0
	host.crit.Unlock()

	host.Window.SetTitle(title)
}
