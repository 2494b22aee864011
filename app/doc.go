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

// Package app ties the subsystems together. RunApp() is the bootstrap
// sequence that starts the loaded modules and then the main thread. The Host
// type is the state shared by the event loop on the main goroutine: it
// dispatches host events, keeps the window title up to date and counts
// frames.
//
// Host windows are abstracted by the Window interface. The SDL window in
// gui/sdlimgui and the terminal window in termhost both implement it.
package app
