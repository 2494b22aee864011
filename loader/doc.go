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

// Package loader prepares a guest program for bootstrap. A Loader places the
// program's modules in the kernel's list of loaded modules and returns the
// Entry that describes the main thread.
//
// Program is the in-memory Loader used by govita. Its routines are Go
// functions that are registered with an hle.Table when the program is
// loaded. The Program type says nothing about how a guest binary is parsed
// and the Loader interface is the place where a binary loader would fit.
package loader
