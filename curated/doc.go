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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is the identity of the error. Packages export their patterns as
// constants so that callers can branch on them with the Is() function:
//
//	const InitThreadFailed = "failed to init thread: %v"
//
//	err := curated.Errorf(InitThreadFailed, "stack exhausted")
//	if curated.Is(err, InitThreadFailed) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("out of guest memory: %d bytes", n)
//	f := curated.Errorf(InitThreadFailed, e)
//
//	curated.Has(f, "out of guest memory: %d bytes") // true
//	curated.Is(f, "out of guest memory: %d bytes")  // false
//
// Any value that is itself an error (curated or not) is returned by the
// Unwrap() method, so the standard errors.Is() and errors.As() functions see
// through curated errors too.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being 'expected' and 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, "thread: thread: stopping" is
// reported as "thread: stopping".
package curated
