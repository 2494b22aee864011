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

// Package userinput is the translation layer between the host windowing
// system and the event loop. Host implementations convert their native events
// into the Event types of this package and deliver them through a Poller.
//
// The package hides the details of the host implementation. The SDL
// implementation was the one in use during development and so there will be a
// bias towards that system.
package userinput
