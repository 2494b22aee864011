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
	"testing"

	"github.com/govita/govita/renderer"
	"github.com/govita/govita/test"
)

func TestScissor(t *testing.T) {
	type result struct {
		x, y, w, h int32
		ok         bool
	}

	sc := func(r renderer.Rect) result {
		x, y, w, h, ok := scissor(r, 960, 544)
		return result{x, y, w, h, ok}
	}

	// top left corner of the guest screen is at the top of the GL surface
	test.ExpectEquality(t, sc(renderer.Rect{X: 0, Y: 0, W: 64, H: 64}), result{0, 480, 64, 64, true})

	// bottom right
	test.ExpectEquality(t, sc(renderer.Rect{X: 896, Y: 480, W: 64, H: 64}), result{896, 0, 64, 64, true})

	// partially off screen
	test.ExpectEquality(t, sc(renderer.Rect{X: -10, Y: 500, W: 20, H: 100}), result{0, 0, 10, 44, true})

	// entirely off screen
	test.ExpectEquality(t, sc(renderer.Rect{X: 960, Y: 0, W: 10, H: 10}).ok, false)
	test.ExpectEquality(t, sc(renderer.Rect{X: 0, Y: -20, W: 10, H: 10}).ok, false)

	// empty
	test.ExpectEquality(t, sc(renderer.Rect{X: 10, Y: 10, W: 0, H: 10}).ok, false)
}

func TestNormalise(t *testing.T) {
	r, g, b, a := normalise(renderer.Colour{R: 255, G: 0, B: 51, A: 255})
	test.ExpectEquality(t, r, float32(1))
	test.ExpectEquality(t, g, float32(0))
	test.ExpectEquality(t, b, float32(0.2))
	test.ExpectEquality(t, a, float32(1))
}

type stoppedCaller struct{}

func (stoppedCaller) Call(func()) bool {
	return false
}

func TestExecuteStopped(t *testing.T) {
	be := NewBackend(stoppedCaller{}, 960, 544)
	test.ExpectEquality(t, be.Kind(), renderer.OpenGL)

	var cl renderer.CommandList
	cl.Clear(renderer.Colour{A: 255})
	err := be.Execute(cl)
	test.ExpectFailure(t, err)
}

type directCaller struct{}

func (directCaller) Call(f func()) bool {
	f()
	return true
}

// without Init() there is no framebuffer and no GL call is made
func TestExecuteUninitialised(t *testing.T) {
	be := NewBackend(directCaller{}, 960, 544)
	err := be.Execute(renderer.CommandList{})
	test.ExpectFailure(t, err)
}
