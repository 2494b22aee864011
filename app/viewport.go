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

package app

import (
	"fmt"

	"github.com/govita/govita/display"
)

// Viewport is an area of the host window in pixels.
type Viewport struct {
	X, Y int32
	W, H int32
}

func (vp Viewport) String() string {
	return fmt.Sprintf("%dx%d at %d,%d", vp.W, vp.H, vp.X, vp.Y)
}

// Letterbox returns the largest area of a window of the given size that has
// the aspect ratio of the guest screen. The area is centred in the window.
func Letterbox(width, height int32) Viewport {
	if width <= 0 || height <= 0 {
		return Viewport{}
	}

	// compare width/height with ScreenWidth/ScreenHeight without division
	if int64(width)*display.ScreenHeight > int64(height)*display.ScreenWidth {
		// window is wider than the guest screen. bars at the sides
		w := int32(int64(height) * display.ScreenWidth / display.ScreenHeight)
		return Viewport{X: (width - w) / 2, W: w, H: height}
	}

	// bars at the top and bottom
	h := int32(int64(width) * display.ScreenHeight / display.ScreenWidth)
	return Viewport{Y: (height - h) / 2, W: width, H: h}
}
