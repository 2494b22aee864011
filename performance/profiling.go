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

package performance

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/govita/govita/curated"
)

// Sentinel errors.
const (
	ProfilerError  = "profiler: %v"
	UnknownProfile = "profiler: unknown profile type: %s"
)

// Profile specifies which profiles to generate.
type Profile int

// List of valid Profile flags.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are CPU, MEM and NONE. The empty string is NONE.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, name := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, name)
		}
	}
	return p, nil
}

// RunProfiler runs the function with the requested profiles enabled. Profile
// files are written to the directory with names beginning with the
// filenameHeader. For example "run_cpu.profile".
func RunProfiler(profile Profile, dir string, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%s_cpu.profile", filenameHeader)))
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfilerError, err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%s_mem.profile", filenameHeader)))
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfilerError, err)
		}
	}

	return nil
}
