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

package kernel

import (
	"fmt"

	"github.com/govita/govita/memory"
)

// LoadedModule is a guest binary unit loaded before bootstrap.
type LoadedModule struct {
	Name string
	Path string

	// address of the module start routine
	Start memory.Address

	// Main is true for the one module that is the main executable. The start
	// routine of the main module is not run during bootstrap
	Main bool
}

func (m LoadedModule) String() string {
	return fmt.Sprintf("%s (at %q)", m.Name, m.Path)
}
