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

package loader

import (
	"fmt"
	"strings"

	"github.com/govita/govita/cpu/hle"
	"github.com/govita/govita/curated"
	"github.com/govita/govita/kernel"
	"github.com/govita/govita/memory"
)

// Sentinel errors.
const (
	NoMainRoutine = "loader: %s has no main routine"
	NoTitleID     = "loader: %s has no title id"
	LoadFailed    = "loader: %v"
)

// MainPath is the path given to the main module of a Program.
const MainPath = "app0:eboot.bin"

// Entry describes the main thread of a loaded program.
type Entry struct {
	Title   string
	TitleID string

	// address of the main thread's entry point
	Main memory.Address
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Title, e.TitleID)
}

// Loader implementations add modules to the kernel.
type Loader interface {
	Load(k *kernel.Kernel) (Entry, error)
}

// Module is a library module of a Program.
type Module struct {
	Name string

	// empty string indicates a path under app0:sce_module
	Path string

	// the module start routine. a nil routine returns zero
	Start hle.Routine
}

// Program is a guest program made of Go routines.
type Program struct {
	Title   string
	TitleID string

	// library modules in load order
	Modules []Module

	// routine of the main thread. it is also the start routine of the main
	// module
	Main hle.Routine

	// routines are registered with this table. the same table must be the
	// cpu.Factory given to the kernel
	Table *hle.Table
}

func moduleStartOK(_ *hle.Context) uint32 {
	return 0
}

// Load implements the Loader interface.
func (p Program) Load(k *kernel.Kernel) (Entry, error) {
	if p.Main == nil {
		return Entry{}, curated.Errorf(NoMainRoutine, p.Title)
	}
	if strings.TrimSpace(p.TitleID) == "" {
		return Entry{}, curated.Errorf(NoTitleID, p.Title)
	}

	for _, m := range p.Modules {
		start := m.Start
		if start == nil {
			start = moduleStartOK
		}

		path := m.Path
		if path == "" {
			path = fmt.Sprintf("app0:sce_module/%s.suprx", strings.ToLower(m.Name))
		}

		err := k.LoadModule(kernel.LoadedModule{
			Name:  m.Name,
			Path:  path,
			Start: p.Table.Register(fmt.Sprintf("%s.module_start", m.Name), start),
		})
		if err != nil {
			return Entry{}, curated.Errorf(LoadFailed, err)
		}
	}

	main := p.Table.Register(fmt.Sprintf("%s.main", p.TitleID), p.Main)
	err := k.LoadModule(kernel.LoadedModule{
		Name:  p.TitleID,
		Path:  MainPath,
		Start: main,
		Main:  true,
	})
	if err != nil {
		return Entry{}, curated.Errorf(LoadFailed, err)
	}

	return Entry{
		Title:   p.Title,
		TitleID: p.TitleID,
		Main:    main,
	}, nil
}
