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

package display_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/display"
	"github.com/govita/govita/performance/limiter"
	"github.com/govita/govita/test"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWaitVblank(t *testing.T) {
	d := display.NewDisplay()

	released := make(chan bool)
	go func() {
		released <- d.WaitVblank(2)
	}()

	time.Sleep(10 * time.Millisecond)
	d.Vblank()

	select {
	case <-released:
		t.Fatalf("WaitVblank(2) returned after one vblank")
	case <-time.After(10 * time.Millisecond):
	}

	d.Vblank()

	select {
	case ok := <-released:
		test.ExpectSuccess(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("WaitVblank(2) not released after two vblanks")
	}

	test.ExpectEquality(t, d.VblankCount(), uint64(2))

	// waiting for zero vblanks never blocks
	test.ExpectSuccess(t, d.WaitVblank(0))
}

func TestAbort(t *testing.T) {
	d := display.NewDisplay()

	const waiters = 4
	released := make(chan bool, waiters)
	for range waiters {
		go func() {
			released <- d.WaitVblank(1000)
		}()
	}

	time.Sleep(10 * time.Millisecond)
	d.Abort()

	for range waiters {
		select {
		case ok := <-released:
			test.ExpectFailure(t, ok)
		case <-time.After(time.Second):
			t.Fatalf("WaitVblank() not released by abort")
		}
	}

	test.ExpectSuccess(t, d.Aborted())
	test.ExpectFailure(t, d.WaitVblank(1))

	// idempotent
	d.Abort()
}

func TestRunVblank(t *testing.T) {
	d := display.NewDisplay()

	var calls atomic.Int32
	done := make(chan error)
	go func() {
		done <- d.RunVblank(200, func() {
			calls.Add(1)
		})
	}()

	test.DemandSuccess(t, d.WaitVblank(5))
	d.Abort()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(time.Second):
		t.Fatalf("RunVblank() not stopped by abort")
	}

	test.ExpectSuccess(t, calls.Load() >= 5)
	test.ExpectSuccess(t, d.VblankCount() >= 5)

	// running again after abort returns immediately
	test.ExpectSuccess(t, d.RunVblank(60, nil))
}

func TestRunVblankInvalidRate(t *testing.T) {
	d := display.NewDisplay()
	err := d.RunVblank(0, nil)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))
}

func TestFrame(t *testing.T) {
	d := display.NewDisplay()
	f := d.Frame()
	test.ExpectEquality(t, f.Width, uint32(display.ScreenWidth))
	test.ExpectEquality(t, f.Height, uint32(display.ScreenHeight))

	d.SetFrame(display.Frame{Base: 0x1000, Pitch: 1024, Width: 960, Height: 544})
	test.ExpectEquality(t, d.Frame().Base, 0x1000)
	test.ExpectEquality(t, d.Frame().Pitch, uint32(1024))
}
