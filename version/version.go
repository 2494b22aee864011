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

// Package version reports the application name and the build version. The
// version is taken from the linker (-X version.number=...) when the project
// is built by the makefile and from the embedded VCS information otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name used when referring to the application.
const ApplicationName = "govita"

// set by the linker
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// A version of "unreleased" means the binary was built from a VCS checkout
// without the makefile. A version of "local" means no version information is
// available at all, which is the case with "go run .".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name with the version, suitable for window
// titles and the VERSION mode.
func Title() string {
	if number == "" {
		return fmt.Sprintf("%s (%s)", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s", ApplicationName, version)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(num string) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case num != "":
		return num, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
