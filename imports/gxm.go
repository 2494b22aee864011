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

package imports

import (
	"github.com/govita/govita/cpu"
	"github.com/govita/govita/renderer"
)

// Graphics NIDs.
const (
	NIDGxmEndScene = 0xFE300E2F
	NIDGxmFinish   = 0x0733D8AE
)

// UnpackColour converts a guest colour (0xAABBGGRR) to a renderer colour.
func UnpackColour(v uint32) renderer.Colour {
	return renderer.Colour{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// PackColour is the inverse of UnpackColour().
func PackColour(c renderer.Colour) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// PackPair packs two 16 bit values into one register.
func PackPair(lo, hi int32) uint32 {
	return uint32(uint16(lo)) | uint32(uint16(hi))<<16
}

// UnpackPair is the inverse of PackPair(). Values are sign extended.
func UnpackPair(v uint32) (int32, int32) {
	return int32(int16(v)), int32(int16(v >> 16))
}

func registerGxm(tab *Table) {
	// a scene is a clear colour (r0) and one filled rectangle: position (r1),
	// size (r2) and colour (r3). the command list is submitted and the
	// calling thread is paced by the number of pending command lists
	tab.Register(NIDGxmEndScene, "sceGxmEndScene", func(env *Env, st cpu.State, thread int32) {
		cl := renderer.CommandList{Thread: thread}
		cl.Clear(UnpackColour(st.Reg(0)))

		x, y := UnpackPair(st.Reg(1))
		w, h := UnpackPair(st.Reg(2))
		if w > 0 && h > 0 {
			cl.FillRect(renderer.Rect{X: x, Y: y, W: w, H: h}, UnpackColour(st.Reg(3)))
		}

		if env.Pipeline.Submit(cl) == 0 || !env.Pipeline.WaitPending() {
			st.SetReg(cpu.RegResult, ResultAborted)
			return
		}
		st.SetReg(cpu.RegResult, ResultOK)
	})

	tab.Register(NIDGxmFinish, "sceGxmFinish", func(env *Env, st cpu.State, _ int32) {
		if !env.Pipeline.WaitCaughtUp() {
			st.SetReg(cpu.RegResult, ResultAborted)
			return
		}
		st.SetReg(cpu.RegResult, ResultOK)
	})
}
