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
	"time"

	"github.com/govita/govita/cpu"
)

// Kernel NIDs.
const (
	NIDKernelGetThreadId = 0x0FB972F9
	NIDKernelDelayThread = 0x4B675D05
)

// longest sleep between checks of the abort signal
const delayGranularity = 5 * time.Millisecond

func registerKernel(tab *Table) {
	tab.Register(NIDKernelGetThreadId, "sceKernelGetThreadId", func(_ *Env, st cpu.State, thread int32) {
		st.SetReg(cpu.RegResult, uint32(thread))
	})

	// delay in microseconds. the delay ends early if the abort signal is
	// raised
	tab.Register(NIDKernelDelayThread, "sceKernelDelayThread", func(env *Env, st cpu.State, _ int32) {
		end := time.Now().Add(time.Duration(st.Reg(0)) * time.Microsecond)
		for {
			if env.Signals.Aborted() {
				st.SetReg(cpu.RegResult, ResultAborted)
				return
			}
			remaining := time.Until(end)
			if remaining <= 0 {
				break
			}
			time.Sleep(min(remaining, delayGranularity))
		}
		st.SetReg(cpu.RegResult, ResultOK)
	})
}
