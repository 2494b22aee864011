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

// Package prefs holds live preference values. Each value type (Bool, Int,
// Float and String) can be set from its own Go type or from a string, which
// is how values arrive from the environment and the command line. Values are
// safe to read from any goroutine.
//
// Hook functions can be attached to a value. The pre-hook sees the new value
// before it is stored and can refuse it by returning an error. The post-hook
// sees the value after it has been stored.
//
// The command line stack is a simple way of passing preference values on the
// command line, as a single string of the form:
//
//	key::value; key::value
//
// Values are taken from the top of the stack with GetCommandLinePref().
// Values remaining in the group when it is popped were not used by anything.
package prefs
