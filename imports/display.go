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
	"github.com/govita/govita/display"
	"github.com/govita/govita/memory"
)

// Display NIDs.
const (
	NIDDisplaySetFrameBuf     = 0x7A410B64
	NIDDisplayWaitVblankStart = 0x5795E898
	NIDDisplayGetVcount       = 0xB6FDE0BA
)

func registerDisplay(tab *Table) {
	tab.Register(NIDDisplaySetFrameBuf, "sceDisplaySetFrameBuf", func(env *Env, st cpu.State, _ int32) {
		env.Display.SetFrame(display.Frame{
			Base:   memory.Address(st.Reg(0)),
			Pitch:  st.Reg(1),
			Width:  st.Reg(2),
			Height: st.Reg(3),
		})
		st.SetReg(cpu.RegResult, ResultOK)
	})

	tab.Register(NIDDisplayWaitVblankStart, "sceDisplayWaitVblankStart", func(env *Env, st cpu.State, _ int32) {
		if !env.Display.WaitVblank(1) {
			st.SetReg(cpu.RegResult, ResultAborted)
			return
		}
		st.SetReg(cpu.RegResult, ResultOK)
	})

	tab.Register(NIDDisplayGetVcount, "sceDisplayGetVcount", func(env *Env, st cpu.State, _ int32) {
		st.SetReg(cpu.RegResult, uint32(env.Display.VblankCount()))
	})
}
