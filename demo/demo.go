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

// Package demo is a small guest program. Two library modules are started
// during bootstrap and the main thread draws a bouncing square, one command
// list per vblank. A finger on the touch panel moves the square to the
// finger's position.
//
// The main thread ends when any of its system functions reports that the
// emulation has been aborted.
package demo

import (
	"github.com/govita/govita/cpu/hle"
	"github.com/govita/govita/display"
	"github.com/govita/govita/imports"
	"github.com/govita/govita/loader"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/touch"
)

// Title and TitleID of the demo program.
const (
	Title   = "govita demo"
	TitleID = "GOVT00000"
)

// Size of the bouncing square.
const Size = 64

// values returned by the module start routines
const (
	startLibGxm   = 0
	startLibTouch = 0x10
)

var (
	background = renderer.Colour{R: 0x20, G: 0x20, B: 0x30, A: 0xff}
	foreground = renderer.Colour{R: 0xe0, G: 0x80, B: 0x20, A: 0xff}
	touched    = renderer.Colour{R: 0x20, G: 0xe0, B: 0x80, A: 0xff}
)

// NewProgram returns the demo program with its routines registered on tab.
func NewProgram(tab *hle.Table) loader.Program {
	return loader.Program{
		Title:   Title,
		TitleID: TitleID,
		Modules: []loader.Module{
			{
				Name: "libgxm_demo",
				Start: func(_ *hle.Context) uint32 {
					return startLibGxm
				},
			},
			{
				Name: "libtouch_demo",
				Start: func(_ *hle.Context) uint32 {
					return startLibTouch
				},
			},
		},
		Main:  Main,
		Table: tab,
	}
}

// Square is the position and velocity of the square.
type Square struct {
	X, Y   int32
	DX, DY int32
}

// Step moves the square by its velocity, bouncing off the edges of the
// screen.
func (sq *Square) Step() {
	sq.X += sq.DX
	sq.Y += sq.DY
	if sq.X < 0 || sq.X+Size > display.ScreenWidth {
		sq.DX = -sq.DX
		sq.X = min(max(sq.X, 0), display.ScreenWidth-Size)
	}
	if sq.Y < 0 || sq.Y+Size > display.ScreenHeight {
		sq.DY = -sq.DY
		sq.Y = min(max(sq.Y, 0), display.ScreenHeight-Size)
	}
}

// MoveTo centres the square on a front panel position.
func (sq *Square) MoveTo(panelX, panelY int32) {
	sq.X = panelX*display.ScreenWidth/touch.PanelWidth - Size/2
	sq.Y = panelY*display.ScreenHeight/touch.PanelHeight - Size/2
	sq.X = min(max(sq.X, 0), display.ScreenWidth-Size)
	sq.Y = min(max(sq.Y, 0), display.ScreenHeight-Size)
}

// Main is the routine of the main thread.
func Main(ctx *hle.Context) uint32 {
	const pitch = display.ScreenWidth * 4
	ctx.Call(imports.NIDDisplaySetFrameBuf, 0, pitch, display.ScreenWidth, display.ScreenHeight)

	sq := Square{X: 0, Y: 0, DX: 4, DY: 3}

	for !ctx.Stopped() {
		if ctx.Call(imports.NIDDisplayWaitVblankStart) != imports.ResultOK {
			return imports.ResultAborted
		}

		col := foreground
		if ctx.Call(imports.NIDTouchPeek) > 0 {
			x, y := imports.UnpackPair(ctx.Reg(1))
			sq.MoveTo(x, y)
			col = touched
		} else {
			sq.Step()
		}

		r := ctx.Call(imports.NIDGxmEndScene,
			imports.PackColour(background),
			imports.PackPair(sq.X, sq.Y),
			imports.PackPair(Size, Size),
			imports.PackColour(col),
		)
		if r != imports.ResultOK {
			return r
		}
	}

	return imports.ResultAborted
}
