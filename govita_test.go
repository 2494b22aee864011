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

package main

import (
	"strings"
	"testing"

	"github.com/govita/govita/app"
	"github.com/govita/govita/test"
	"github.com/govita/govita/version"
)

func TestVersionMode(t *testing.T) {
	out := &test.Writer{}
	err := launch([]string{"VERSION"}, out)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), version.ApplicationName))
}

func TestHelp(t *testing.T) {
	out := &test.Writer{}
	err := launch([]string{"-help"}, out)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "HEADLESS"))
}

func TestUnknownFlag(t *testing.T) {
	out := &test.Writer{}
	err := launch([]string{"-nosuchflag"}, out)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, app.ExitCodeOf(err), app.Failure)
}

// configuration errors are reported before any host resources are created
func TestConfigFailure(t *testing.T) {
	out := &test.Writer{}
	err := launch([]string{"HEADLESS", "-prefs", "vblank.rate::0"}, out)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, app.ExitCodeOf(err), app.InitConfigFailedCode)

	err = launch([]string{"RUN", "-prefs", "backend::vulkan"}, out)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, app.ExitCodeOf(err), app.InitConfigFailedCode)

	err = launch([]string{"HEADLESS", "-profile", "trace"}, out)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, app.ExitCodeOf(err), app.InitConfigFailedCode)
}
