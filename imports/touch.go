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
)

// Touch NIDs.
const (
	NIDTouchPeek = 0xFF082DF0
)

func registerTouch(tab *Table) {
	// result is the number of reports. the position of the first report is
	// in r1
	tab.Register(NIDTouchPeek, "sceTouchPeek", func(env *Env, st cpu.State, _ int32) {
		d := env.Touch.Peek()
		if len(d.Reports) > 0 {
			st.SetReg(1, PackPair(int32(d.Reports[0].X), int32(d.Reports[0].Y)))
		} else {
			st.SetReg(1, 0)
		}
		st.SetReg(cpu.RegResult, uint32(len(d.Reports)))
	})
}
