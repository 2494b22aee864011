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

package demo_test

import (
	"sync"
	"testing"
	"time"

	"github.com/govita/govita/app"
	"github.com/govita/govita/cpu/hle"
	"github.com/govita/govita/demo"
	"github.com/govita/govita/display"
	"github.com/govita/govita/imports"
	"github.com/govita/govita/kernel"
	"github.com/govita/govita/memory"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/signals"
	"github.com/govita/govita/test"
	"github.com/govita/govita/touch"
	"github.com/govita/govita/userinput"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSquare(t *testing.T) {
	sq := demo.Square{X: display.ScreenWidth - demo.Size - 2, Y: 1, DX: 4, DY: -3}
	sq.Step()
	test.ExpectEquality(t, sq, demo.Square{X: display.ScreenWidth - demo.Size, Y: 0, DX: -4, DY: 3})
	sq.Step()
	test.ExpectEquality(t, sq, demo.Square{X: display.ScreenWidth - demo.Size - 4, Y: 3, DX: -4, DY: 3})

	// centre of the panel is the centre of the screen
	sq.MoveTo(touch.PanelWidth/2, touch.PanelHeight/2)
	test.ExpectEquality(t, sq.X, int32(display.ScreenWidth/2-demo.Size/2))
	test.ExpectEquality(t, sq.Y, int32(display.ScreenHeight/2-demo.Size/2))

	// positions near the edge keep the square on screen
	sq.MoveTo(0, touch.PanelHeight-1)
	test.ExpectEquality(t, sq.X, int32(0))
	test.ExpectEquality(t, sq.Y, int32(display.ScreenHeight-demo.Size))
}

type window struct{}

func (window) SetTitle(string)  {}
func (window) ShowError(string) {}

func TestRun(t *testing.T) {
	sig := signals.NewSignals(false, true)
	backend := &renderer.NullBackend{}
	pipeline := renderer.NewState(backend, 2)
	disp := display.NewDisplay()
	tch := touch.NewTouch(sig)

	tab := imports.NewTable(imports.Env{
		Signals:  sig,
		Display:  disp,
		Pipeline: pipeline,
		Touch:    tch,
	})

	mem, err := memory.NewMemory(16 * 1024 * 1024)
	test.DemandSuccess(t, err)
	routines := hle.NewTable()
	k := kernel.NewKernel(mem, routines, tab.CallImport)

	host := app.NewHost(k, sig, pipeline, disp, tch, window{})

	entry, err := demo.NewProgram(routines).Load(k)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(k.LoadedModules()), 3)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pipeline.ProcessBatches()
	}()
	go func() {
		defer wg.Done()
		_ = disp.RunVblank(500, host.EndFrame)
	}()

	test.DemandSuccess(t, app.RunApp(host, entry))

	deadline := time.Now().Add(2 * time.Second)
	for lists, _ := backend.Counts(); lists < 5 && time.Now().Before(deadline); lists, _ = backend.Counts() {
		time.Sleep(time.Millisecond)
	}
	lists, cmds := backend.Counts()
	test.ExpectSuccess(t, lists >= 5)
	test.ExpectEquality(t, cmds, lists*2)

	last := backend.Last()
	id, _ := host.MainThread()
	test.ExpectEquality(t, last.Thread, int32(id))
	test.DemandEquality(t, len(last.Commands), 2)
	test.ExpectEquality(t, last.Commands[0].Op, renderer.OpClear)
	test.ExpectEquality(t, last.Commands[1].Op, renderer.OpFillRect)
	test.ExpectEquality(t, last.Commands[1].Rect.W, int32(demo.Size))

	// quit ends every goroutine
	test.ExpectFailure(t, host.HandleEvents(&userinput.Slice{Events: []userinput.Event{userinput.EventQuit{}}}))
	done := make(chan struct{})
	go func() {
		k.Wait()
		wg.Wait()
		close(done)
	}()
	test.DemandWithin(t, done, time.Second)
}
