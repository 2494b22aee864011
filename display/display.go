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

// Package display emulates the guest display controller. It owns the vblank
// counter and the description of the framebuffer the guest has asked to be
// shown.
//
// The vblank counter is advanced by RunVblank() at a fixed rate. Guest threads
// wait for vblanks with WaitVblank(). The display shares the abort protocol of
// the command pipeline: Abort() sets the abort flag and wakes every goroutine
// waiting on the display.
package display

import (
	"sync"
	"sync/atomic"

	"github.com/govita/govita/memory"
	"github.com/govita/govita/performance/limiter"
)

// Dimensions of the guest screen.
const (
	ScreenWidth  = 960
	ScreenHeight = 544
)

// DefaultRefreshRate is the vblank rate of the guest display.
const DefaultRefreshRate = 60

// Frame describes the framebuffer to be shown.
type Frame struct {
	Base   memory.Address
	Pitch  uint32
	Width  uint32
	Height uint32
}

// Display is the guest display controller.
type Display struct {
	abort atomic.Bool

	crit sync.Mutex

	// broadcast on every vblank and on abort
	cond *sync.Cond

	vblank uint64
	frame  Frame
	lmtr   *limiter.FpsLimiter
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	d := &Display{
		frame: Frame{
			Pitch:  ScreenWidth,
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
	}
	d.cond = sync.NewCond(&d.crit)
	return d
}

// Vblank advances the vblank counter and wakes every waiting goroutine.
func (d *Display) Vblank() {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.vblank++
	d.cond.Broadcast()
}

// VblankCount returns the number of vblanks since the display was created.
func (d *Display) VblankCount() uint64 {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.vblank
}

// WaitVblank blocks until n more vblanks have happened. Returns false if the
// display has been aborted.
func (d *Display) WaitVblank(n uint64) bool {
	d.crit.Lock()
	defer d.crit.Unlock()

	target := d.vblank + n
	for !d.abort.Load() && d.vblank < target {
		d.cond.Wait()
	}

	return !d.abort.Load()
}

// RunVblank advances the vblank counter at the given rate until the display
// is aborted. The onVblank function, if not nil, is called after every
// vblank.
func (d *Display) RunVblank(rate int, onVblank func()) error {
	lmtr, err := limiter.NewFPSLimiter(rate)
	if err != nil {
		return err
	}
	defer lmtr.Stop()

	d.crit.Lock()
	if d.abort.Load() {
		d.crit.Unlock()
		return nil
	}
	d.lmtr = lmtr
	d.crit.Unlock()

	for lmtr.Wait() {
		if d.abort.Load() {
			break
		}
		d.Vblank()
		if onVblank != nil {
			onVblank()
		}
	}

	return nil
}

// SetFrame changes the framebuffer to be shown.
func (d *Display) SetFrame(f Frame) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.frame = f
}

// Frame returns the framebuffer to be shown.
func (d *Display) Frame() Frame {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.frame
}

// Abort sets the abort flag and wakes every waiting goroutine. RunVblank()
// returns soon after. Abort is idempotent.
func (d *Display) Abort() {
	d.abort.Store(true)

	d.crit.Lock()
	lmtr := d.lmtr
	d.cond.Broadcast()
	d.crit.Unlock()

	if lmtr != nil {
		lmtr.Stop()
	}
}

// Aborted returns true if Abort() has been called.
func (d *Display) Aborted() bool {
	return d.abort.Load()
}
