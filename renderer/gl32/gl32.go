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

package gl32

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/govita/govita/curated"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/renderer"
)

// Sentinel errors.
const (
	HostNotRunning   = "gl32: host is not running"
	FramebufferError = "gl32: framebuffer incomplete: 0x%04x"
	NotInitialised   = "gl32: backend not initialised"
)

// Caller runs a function on the goroutine that owns the GL context. Call
// returns false if the function could not be run because the owner has
// stopped servicing requests.
type Caller interface {
	Call(func()) bool
}

// Backend implements the renderer.Backend interface with OpenGL.
type Backend struct {
	caller Caller

	width  int32
	height int32

	// offscreen target. only accessed on the GL goroutine
	fbo     uint32
	texture uint32
}

// NewBackend is the preferred method of initialisation for the Backend type.
// The width and height are the size of the guest screen.
func NewBackend(caller Caller, width int32, height int32) *Backend {
	return &Backend{
		caller: caller,
		width:  width,
		height: height,
	}
}

// Init creates the offscreen framebuffer. Must be called on the GL goroutine
// after the GL context has been made current and gl.Init() has succeeded.
func (be *Backend) Init() error {
	gl.GenTextures(1, &be.texture)
	gl.BindTexture(gl.TEXTURE_2D, be.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, be.width, be.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &be.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, be.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, be.texture, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return curated.Errorf(FramebufferError, status)
	}

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	logger.Logf(logger.Allow, "gl32", "offscreen framebuffer %dx%d", be.width, be.height)
	return nil
}

// Destroy releases the GL resources. Must be called on the GL goroutine.
func (be *Backend) Destroy() {
	if be.fbo != 0 {
		gl.DeleteFramebuffers(1, &be.fbo)
		be.fbo = 0
	}
	if be.texture != 0 {
		gl.DeleteTextures(1, &be.texture)
		be.texture = 0
	}
}

// Kind implements the renderer.Backend interface.
func (be *Backend) Kind() renderer.BackendKind {
	return renderer.OpenGL
}

// Execute implements the renderer.Backend interface. The command list is
// drawn on the GL goroutine and Execute() returns once drawing has finished.
func (be *Backend) Execute(cl renderer.CommandList) error {
	var err error
	if !be.caller.Call(func() {
		err = be.draw(cl)
	}) {
		return curated.Errorf(HostNotRunning)
	}
	return err
}

func (be *Backend) draw(cl renderer.CommandList) error {
	if be.fbo == 0 {
		return curated.Errorf(NotInitialised)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, be.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	gl.Viewport(0, 0, be.width, be.height)
	defer gl.Disable(gl.SCISSOR_TEST)

	for _, cmd := range cl.Commands {
		r, g, b, a := normalise(cmd.Colour)
		gl.ClearColor(r, g, b, a)

		switch cmd.Op {
		case renderer.OpClear:
			gl.Disable(gl.SCISSOR_TEST)
			gl.Clear(gl.COLOR_BUFFER_BIT)

		case renderer.OpFillRect:
			x, y, w, h, ok := scissor(cmd.Rect, be.width, be.height)
			if !ok {
				continue
			}
			gl.Enable(gl.SCISSOR_TEST)
			gl.Scissor(x, y, w, h)
			gl.Clear(gl.COLOR_BUFFER_BIT)
		}
	}

	return nil
}

// Blit copies the offscreen framebuffer into the area of the default
// framebuffer given in window coordinates. The windowHeight is the height of
// the drawable area. Must be called on the GL goroutine.
func (be *Backend) Blit(x, y, w, h int32, windowHeight int32) {
	if be.fbo == 0 || w <= 0 || h <= 0 {
		return
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, be.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	dy := windowHeight - y - h
	gl.BlitFramebuffer(0, 0, be.width, be.height, x, dy, x+w, dy+h, gl.COLOR_BUFFER_BIT, gl.LINEAR)
}
