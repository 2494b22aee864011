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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/performance"
	"github.com/govita/govita/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	_, err = performance.ParseProfile("trace")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	dir := t.TempDir()

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, dir, "run", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(filepath.Join(dir, "run_cpu.profile"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, "run_mem.profile"))
	test.ExpectSuccess(t, err)
}

func TestRunProfilerNone(t *testing.T) {
	dir := t.TempDir()

	err := performance.RunProfiler(performance.ProfileNone, dir, "run", func() error {
		return nil
	})
	test.ExpectSuccess(t, err)

	entries, err := os.ReadDir(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)
}
