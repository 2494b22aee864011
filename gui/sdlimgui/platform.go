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
	"runtime"
	"time"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/display"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/version"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// time of the previous newFrame()
	last time.Time
}

// newPlatform is the preferred method of initialisation for the platform type.
// The scale is applied to the guest screen size to give the initial window
// size.
func newPlatform(scale float32) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(PlatformError, err)
	}

	for _, attr := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	} {
		err = sdl.GLSetAttribute(attr.attr, attr.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(PlatformError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(PlatformError, err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	w, h := windowSize(scale)
	plt.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(PlatformError, err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, curated.Errorf(PlatformError, err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, curated.Errorf(PlatformError, err)
	}

	err = sdl.GLSetSwapInterval(syncWithVerticalRetrace)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", syncWithVerticalRetrace, err)
	}

	plt.last = time.Now()

	return plt, nil
}

// swap interval value expected by the SDL.GLSetSwapInterval() function
const syncWithVerticalRetrace = 1

// windowSize returns the initial size of the window for the scale value.
// Scale values less than or equal to zero are treated as 1.0
func windowSize(scale float32) (int32, int32) {
	if scale <= 0 {
		scale = 1.0
	}
	return int32(display.ScreenWidth * scale), int32(display.ScreenHeight * scale)
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// displaySize returns the dimension of the window.
func (plt *platform) displaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// drawableSize returns the dimension of the drawable area in pixels. This
// differs from the window size on high DPI displays.
func (plt *platform) drawableSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// newFrame forwards the window and mouse state to imgui.
func (plt *platform) newFrame() {
	io := imgui.CurrentIO()

	displaySize := plt.displaySize()
	io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	now := time.Now()
	delta := float32(now.Sub(plt.last).Seconds())
	if delta <= 0 {
		delta = 1.0 / float32(display.DefaultRefreshRate)
	}
	io.SetDeltaTime(delta)
	plt.last = now

	x, y, state := sdl.GetMouseState()
	io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		io.SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
