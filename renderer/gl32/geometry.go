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

import "github.com/govita/govita/renderer"

func normalise(c renderer.Colour) (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// scissor converts a rectangle in guest coordinates (origin top left) to GL
// coordinates (origin bottom left), clipped to the guest screen. Returns
// false if nothing of the rectangle is visible.
func scissor(r renderer.Rect, width int32, height int32) (int32, int32, int32, int32, bool) {
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, width)
	y1 := min(r.Y+r.H, height)

	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}

	return x0, height - y1, x1 - x0, y1 - y0, true
}
