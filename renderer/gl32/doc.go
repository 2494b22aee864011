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

// Package gl32 is the OpenGL 3.2 rendering backend. Command lists are drawn
// into an offscreen framebuffer the size of the guest screen. The host window
// copies that framebuffer into its letterboxed viewport once per host frame.
//
// Every GL call must be made on the goroutine that owns the GL context. The
// Backend hands its work to that goroutine through the Caller interface.
package gl32
