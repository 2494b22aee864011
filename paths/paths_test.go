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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/govita/govita/paths"
	"github.com/govita/govita/test"
)

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("profiles", "cpu.profile")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".govita", "profiles", "cpu.profile"))

	// directory has been created but the file has not
	info, err := os.Stat(filepath.Dir(pth))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".govita")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilename("govita", "GOVT00000", n), "govita_GOVT00000_20240307_090503")
	test.ExpectEquality(t, paths.UniqueFilename("govita", " ", n), "govita_20240307_090503")
}
