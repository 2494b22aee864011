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

// Package assert helps code check the goroutine it is running on. Functions
// that must only be called from a particular goroutine, for example the main
// thread of a windowed host, record the goroutine with CurrentGoroutine() and
// compare it later.
//
// The goroutine identifier is parsed from the runtime stack. It is consistent
// for the lifetime of a goroutine and different between goroutines, but it
// should never be used for anything other than these checks.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// Goroutine identifies a goroutine.
type Goroutine uint64

// CurrentGoroutine returns the identifier of the calling goroutine.
func CurrentGoroutine() Goroutine {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return Goroutine(n)
}

// IsCurrent returns true if called from the goroutine.
func (g Goroutine) IsCurrent() bool {
	return g == CurrentGoroutine()
}
