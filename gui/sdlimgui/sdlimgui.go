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
	"sync/atomic"

	"github.com/govita/govita/app"
	"github.com/govita/govita/assert"
	"github.com/govita/govita/display"
	"github.com/govita/govita/renderer/gl32"
	"github.com/govita/govita/userinput"
	"github.com/inkyblackness/imgui-go/v4"
)

// Sentinel errors.
const (
	PlatformError = "sdl: %v"
	GLError       = "glsl: %v"
	ShaderError   = "glsl: shader: %v"
)

// SdlImgui is the windowed host.
type SdlImgui struct {
	context *imgui.Context
	io      imgui.IO

	plt     *platform
	glsl    *glsl
	polling *polling
	backend *gl32.Backend
	overlay *overlay

	host *app.Host

	// the goroutine that created the window
	main assert.Goroutine

	// title requested by SetTitle(). applied by Service()
	title   atomic.Value
	current string

	// events waiting to be handed to the host
	events []userinput.Event
}

// NewSdlImgui is the preferred method of initialisation for the SdlImgui
// type. Must be called from the main thread.
func NewSdlImgui(scale float32) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		polling: newPolling(),
		overlay: newOverlay(),
		main:    assert.CurrentGoroutine(),
	}

	// overlay window positions are not saved between runs
	img.io.SetIniFilename("")

	var err error

	img.plt, err = newPlatform(scale)
	if err != nil {
		img.context.Destroy()
		return nil, err
	}

	img.glsl, err = newGlsl()
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, err
	}

	img.backend = gl32.NewBackend(img, display.ScreenWidth, display.ScreenHeight)
	err = img.backend.Init()
	if err != nil {
		img.glsl.destroy()
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, err
	}

	img.title.Store("")

	// the host does not see a resize event for the initial window size
	w, h := img.plt.drawableSize()
	img.events = append(img.events, userinput.EventWindowResized{Width: w, Height: h})

	return img, nil
}

// Backend returns the OpenGL backend that draws into this window.
func (img *SdlImgui) Backend() *gl32.Backend {
	return img.backend
}

// Call implements the gl32.Caller interface. The function is run immediately
// if Call() is made from the main thread.
func (img *SdlImgui) Call(f func()) bool {
	if img.main.IsCurrent() {
		f()
		return true
	}
	return img.polling.Call(f)
}

// Attach the host. Events are not handled until a host has been attached.
func (img *SdlImgui) Attach(host *app.Host) {
	img.host = host
}

// Service performs one iteration of the main thread loop: functions queued
// by other goroutines are run, SDL events are handed to the host, and the
// window is redrawn. Returns false when the host has asked to quit.
//
// Must only be called from the main thread.
func (img *SdlImgui) Service() bool {
	ev := img.polling.wait()
	for ev != nil {
		if uev, ok := translate(ev); ok {
			if _, ok := uev.(userinput.EventWindowResized); ok {
				w, h := img.plt.drawableSize()
				uev = userinput.EventWindowResized{Width: w, Height: h}
			}
			img.events = append(img.events, uev)
		}
		ev = img.polling.poll()
	}

	running := true
	if img.host != nil {
		running = img.host.HandleEvents(&userinput.Slice{Events: img.events})
		img.events = img.events[:0]
	}

	if title := img.title.Load().(string); title != img.current {
		img.plt.window.SetTitle(title)
		img.current = title
	}

	img.render()

	return running
}

func (img *SdlImgui) render() {
	fbw, fbh := img.plt.drawableSize()

	img.plt.newFrame()
	imgui.NewFrame()
	if img.host != nil && img.host.Signals.DebugUIVisible() {
		img.overlay.draw(img.host)
	}
	imgui.Render()

	img.glsl.preRender(fbw, fbh)
	if img.host != nil {
		vp := img.host.Viewport()
		img.backend.Blit(vp.X, vp.Y, vp.W, vp.H, fbh)
	}
	img.glsl.render(img.plt.displaySize(), fbw, fbh, imgui.RenderedDrawData())

	img.plt.postRender()
}

// Stop releases any goroutine waiting for the main thread. Service() should
// not be called after Stop().
func (img *SdlImgui) Stop() {
	img.polling.stop()
}

// Destroy cleans up the resources used by the window. Stop() is called if it
// has not been called already. Must only be called from the main thread and
// only once the goroutines that use the backend have finished.
func (img *SdlImgui) Destroy() error {
	img.polling.stop()
	img.backend.Destroy()
	img.glsl.destroy()
	err := img.plt.destroy()
	img.context.Destroy()
	return err
}
