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

package app

import (
	"github.com/govita/govita/curated"
)

// ExitCode is the process exit code.
type ExitCode int

// List of valid ExitCode values.
const (
	Success ExitCode = iota
	InitConfigFailedCode
	InitThreadFailedCode
	RunThreadFailedCode
	Failure
)

func (c ExitCode) String() string {
	switch c {
	case Success:
		return "success"
	case InitConfigFailedCode:
		return "init config failed"
	case InitThreadFailedCode:
		return "init thread failed"
	case RunThreadFailedCode:
		return "run thread failed"
	}
	return "failure"
}

// ExitCodeOf returns the exit code for an error returned by RunApp() or by
// the configuration layer. A nil error is Success.
func ExitCodeOf(err error) ExitCode {
	switch {
	case err == nil:
		return Success
	case curated.Has(err, InitConfigFailed):
		return InitConfigFailedCode
	case curated.Has(err, InitThreadFailed):
		return InitThreadFailedCode
	case curated.Has(err, RunThreadFailed):
		return RunThreadFailedCode
	}
	return Failure
}
