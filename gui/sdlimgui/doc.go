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

// Package sdlimgui is the windowed host. It owns the SDL window and the GL
// context, translates SDL events into userinput events, executes OpenGL
// command lists on behalf of the pipeline and draws the debug overlay with
// Dear Imgui.
//
// SDL requires that window creation and event handling happen on the main
// thread. NewSdlImgui(), Service() and Destroy() must therefore be called
// from the main goroutine. Other goroutines reach the main thread through the
// gl32.Caller implemented by SdlImgui.
package sdlimgui
