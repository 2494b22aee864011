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

// Package modalflag wraps the flag package in the standard library. It adds
// program modes: a command line argument that selects a mode of operation,
// each mode having its own set of flags. govita has the modes RUN, HEADLESS
// and VERSION.
//
// Arguments are given once with NewArgs() and are then consumed by calls to
// Parse(). Before each Parse() the flags and sub-modes for that layer are
// added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "VERSION")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		backend := md.AddString("backend", "opengl", "rendering backend")
//		...
//	}
//
// The first sub-mode is the default and is selected when the first argument
// after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive. The Path() of a Modes value is the list of modes selected so
// far, for example "RUN".
//
// A -help flag is always available. The help message lists the flags and
// sub-modes of the current layer and is written to the Output field.
package modalflag
