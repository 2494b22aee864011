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

// Package config is the set of runtime settings. Values are layered: the
// defaults are overridden by the environment, which is overridden by the
// command line prefs string.
//
// Environment variables:
//
//	GOVITA_BACKEND          rendering backend (opengl or null)
//	GOVITA_VBLANK_RATE      vblanks per second
//	GOVITA_MAX_PENDING      command lists queued before a guest thread waits
//	GOVITA_MEMORY_SIZE      guest memory in bytes
//	GOVITA_DEBUG_UI         debug UI visible at startup
//	GOVITA_TOUCH            touch emulation enabled at startup
//	GOVITA_LOG_ECHO         echo log entries to the terminal
//	GOVITA_WINDOW_SCALE     initial window size relative to the guest screen
//
// The keys of the command line prefs string are the same as the names of the
// environment variables, in lower case and without the prefix, with
// underscores replaced by dots. For example:
//
//	-prefs "backend::null; vblank.rate::30"
package config
