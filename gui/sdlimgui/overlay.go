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
	"fmt"

	"github.com/govita/govita/app"
	"github.com/govita/govita/kernel"
	"github.com/govita/govita/memory"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/touch"
	"github.com/inkyblackness/imgui-go/v4"
)

// overlay is the debug UI. It is drawn over the guest screen when the debug
// UI signal is set.
type overlay struct {
	threadsOpen  bool
	pipelineOpen bool
	memoryOpen   bool
}

func newOverlay() *overlay {
	return &overlay{
		threadsOpen:  true,
		pipelineOpen: true,
		memoryOpen:   true,
	}
}

func (ovl *overlay) draw(host *app.Host) {
	if ovl.threadsOpen {
		imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
		if imgui.BeginV("Threads", &ovl.threadsOpen, imgui.WindowFlagsAlwaysAutoResize) {
			text(threadRows(host.Kernel.Threads()))
		}
		imgui.End()
	}

	if ovl.pipelineOpen {
		imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 220}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
		if imgui.BeginV("Pipeline", &ovl.pipelineOpen, imgui.WindowFlagsAlwaysAutoResize) {
			text(pipelineRows(host.Pipeline.Backend(), host.Pipeline.Stats()))
			imgui.Separator()
			imgui.Text(fmt.Sprintf("viewport: %s", host.Viewport()))
			imgui.Text(fmt.Sprintf("vblank: %d", host.Display.VblankCount()))
			imgui.Separator()
			text(touchRows(host.Signals.TouchEnabled(), host.Touch.Peek()))
		}
		imgui.End()
	}

	if ovl.memoryOpen {
		mem := host.Kernel.Memory()
		imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 400}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
		if imgui.BeginV("Memory", &ovl.memoryOpen, imgui.WindowFlagsAlwaysAutoResize) {
			text(memoryRows(mem.Used(), mem.Capacity(), mem.Blocks()))
		}
		imgui.End()
	}
}

func text(rows []string) {
	for _, r := range rows {
		imgui.Text(r)
	}
}

func threadRows(threads []kernel.ThreadInfo) []string {
	if len(threads) == 0 {
		return []string{"no threads"}
	}

	rows := make([]string, 0, len(threads))
	for _, t := range threads {
		s := fmt.Sprintf("%d %s pri=%d entry=%v stack=%v+%d %s", t.ID, t.Name, t.Priority, t.Entry, t.Stack, t.StackSize, t.ToDo)
		if t.Running {
			s += " (running)"
		}
		rows = append(rows, s)
	}
	return rows
}

func pipelineRows(kind renderer.BackendKind, st renderer.Stats) []string {
	rows := []string{
		fmt.Sprintf("backend: %s", kind),
		fmt.Sprintf("submitted: %d", st.Submitted),
		fmt.Sprintf("processed: %d", st.Processed),
		fmt.Sprintf("pending: %d", st.Pending),
		fmt.Sprintf("scenes per frame: %d", st.AverageScenePerFrame),
	}
	if st.Aborted {
		rows = append(rows, "aborted")
	}
	return rows
}

func memoryRows(used uint32, capacity uint32, blocks []memory.Block) []string {
	rows := []string{
		fmt.Sprintf("used: %d of %d bytes", used, capacity),
	}
	for _, b := range blocks {
		rows = append(rows, b.String())
	}
	return rows
}

func touchRows(enabled bool, data touch.Data) []string {
	if !enabled {
		return []string{"touch: disabled"}
	}

	rows := []string{fmt.Sprintf("touch: %d reports", len(data.Reports))}
	for _, r := range data.Reports {
		rows = append(rows, r.String())
	}
	return rows
}
