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

// Package paths should be used whenever a file is written by the application.
// ResourcePath() returns the path of a file in the resource directory,
// creating directories as required.
//
// For development builds the resource directory is rooted in the current
// working directory:
//
//	.govita
//
// For builds with the "release" build tag it is rooted in the user's
// configuration directory. On modern Linux systems the full path would be
// something like:
//
//	/home/user/.config/govita/
//
// UniqueFilename() creates names for files written by a session, such as
// profiles and registry graphs.
package paths
