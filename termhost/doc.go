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

// Package termhost is the host used in HEADLESS mode. There is no window and
// no rendering. Keyboard input comes from the controlling terminal, which is
// put into raw mode for the duration, and errors are written to the terminal.
//
// Keys:
//
//	q, ctrl-c   quit
//	g           toggle debug UI flag
//	t           toggle touch emulation
package termhost
